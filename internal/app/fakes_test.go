package app_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"quiz-author/internal/domain"
)

var errBackend = errors.New("backend down")

type fakeQuizAPI struct {
	mu      sync.Mutex
	creates []domain.CreateQuizRequest
	updates []domain.UpdateQuizRequest
	err     error
	gate    chan struct{} // when set, calls block until closed
	entered chan struct{}
}

func (f *fakeQuizAPI) CreateQuiz(_ context.Context, req domain.CreateQuizRequest) error {
	f.wait()
	f.mu.Lock()
	defer f.mu.Unlock()
	f.creates = append(f.creates, req)
	return f.err
}

func (f *fakeQuizAPI) UpdateQuiz(_ context.Context, req domain.UpdateQuizRequest) error {
	f.wait()
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updates = append(f.updates, req)
	return f.err
}

func (f *fakeQuizAPI) wait() {
	if f.entered != nil {
		f.entered <- struct{}{}
	}
	if f.gate != nil {
		<-f.gate
	}
}

func (f *fakeQuizAPI) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.creates) + len(f.updates)
}

type fakeRoomAPI struct {
	reqs []domain.GameRoomRequest
	err  error
}

func (f *fakeRoomAPI) CreatePrivateRoom(_ context.Context, req domain.GameRoomRequest) (json.RawMessage, error) {
	f.reqs = append(f.reqs, req)
	if f.err != nil {
		return nil, f.err
	}
	return json.RawMessage(`{"roomId":"r-1"}`), nil
}

type fakeCommentAPI struct {
	reqs []domain.CommentRequest
	err  error
}

func (f *fakeCommentAPI) AddComment(_ context.Context, req domain.CommentRequest) error {
	f.reqs = append(f.reqs, req)
	return f.err
}

type toastRecord struct {
	text    string
	success bool
}

type recordingNotifier struct {
	mu    sync.Mutex
	shown []toastRecord
}

func (n *recordingNotifier) Success(text string) { n.add(text, true) }
func (n *recordingNotifier) Warning(text string) { n.add(text, false) }

func (n *recordingNotifier) add(text string, success bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.shown = append(n.shown, toastRecord{text: text, success: success})
}

func (n *recordingNotifier) last() toastRecord {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.shown) == 0 {
		return toastRecord{}
	}
	return n.shown[len(n.shown)-1]
}

type recordingNavigator struct {
	paths  []string
	states []any
}

func (n *recordingNavigator) Navigate(path string, state any) {
	n.paths = append(n.paths, path)
	n.states = append(n.states, state)
}

type staticLoader struct {
	records map[int64]domain.QuizRecord
	err     error
}

func (l *staticLoader) LoadQuiz(_ context.Context, quizID int64) (domain.QuizRecord, error) {
	if l.err != nil {
		return domain.QuizRecord{}, l.err
	}
	rec, ok := l.records[quizID]
	if !ok {
		return domain.QuizRecord{}, domain.ErrQuizNotFound
	}
	return rec, nil
}

type recordingRepo struct {
	rec           domain.QuizRecord
	invalidations []int64
}

func (r *recordingRepo) GetQuiz(_ context.Context, _ int64) (domain.QuizRecord, error) {
	return r.rec, nil
}

func (r *recordingRepo) Invalidate(_ context.Context, quizID int64) error {
	r.invalidations = append(r.invalidations, quizID)
	return nil
}
