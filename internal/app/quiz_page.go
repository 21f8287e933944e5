package app

import (
	"context"
	"fmt"
	"log"
	"sync"

	"quiz-author/internal/domain"
	"quiz-author/internal/form"
)

// Toast texts shown by the quiz pages.
const (
	MsgFillAllFields  = "Please fill in every field."
	MsgQuizCreated    = "Quiz created!"
	MsgQuizCreateFail = "Failed to create quiz."
	MsgQuizUpdated    = "Quiz updated!"
	MsgQuizUpdateFail = "Failed to update quiz."
	MsgQuizLoadFailed = "Failed to load quiz data."
)

// QuizPage is one instance of the create or edit quiz page. It owns the
// current form snapshot and serializes submits.
type QuizPage struct {
	quizID  int64 // zero on the create page
	api     QuizAPI
	quizzes QuizRepository
	toast   Notifier
	nav     Navigator

	mu         sync.Mutex
	form       form.QuizForm
	submitting bool
}

// NewCreateQuizPage starts an empty creation page.
func NewCreateQuizPage(api QuizAPI, toast Notifier, nav Navigator) *QuizPage {
	return &QuizPage{
		api:   api,
		toast: toast,
		nav:   nav,
		form:  form.NewQuizForm(form.CreateLimits),
	}
}

// NewEditQuizPage starts an edit page for quizID; call Load to hydrate it.
func NewEditQuizPage(quizID int64, api QuizAPI, quizzes QuizRepository, toast Notifier, nav Navigator) *QuizPage {
	return &QuizPage{
		quizID:  quizID,
		api:     api,
		quizzes: quizzes,
		toast:   toast,
		nav:     nav,
		form:    form.NewQuizForm(form.EditLimits),
	}
}

// Form returns the current snapshot.
func (p *QuizPage) Form() form.QuizForm {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.form
}

// Submitting reports whether a submit request is in flight.
func (p *QuizPage) Submitting() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.submitting
}

// Update applies a state transition to the current snapshot.
func (p *QuizPage) Update(fn func(form.QuizForm) form.QuizForm) form.QuizForm {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.form = fn(p.form)
	return p.form
}

// Load hydrates the edit page from the stored quiz.
func (p *QuizPage) Load(ctx context.Context) error {
	if p.quizzes == nil || p.quizID == 0 {
		return fmt.Errorf("load: %w", domain.ErrQuizNotFound)
	}
	rec, err := p.quizzes.GetQuiz(ctx, p.quizID)
	if err == nil {
		var hydrated form.QuizForm
		if hydrated, err = form.FromRecord(rec, form.EditLimits); err == nil {
			p.mu.Lock()
			p.form = hydrated
			p.mu.Unlock()
			return nil
		}
	}
	log.Printf("load quiz %d: %v", p.quizID, err)
	p.toast.Warning(MsgQuizLoadFailed)
	return err
}

// Submit validates the draft and, when clean, sends exactly one create or
// update request. A failed request leaves the draft as entered.
func (p *QuizPage) Submit(ctx context.Context) error {
	p.mu.Lock()
	if p.submitting {
		p.mu.Unlock()
		return domain.ErrSubmitInProgress
	}
	validated, ok := p.form.Validate()
	p.form = validated
	if !ok {
		p.mu.Unlock()
		p.toast.Warning(MsgFillAllFields)
		return domain.ErrValidation
	}
	p.submitting = true
	p.mu.Unlock()

	defer func() {
		p.mu.Lock()
		p.submitting = false
		p.mu.Unlock()
	}()

	if p.quizID == 0 {
		return p.create(ctx, validated)
	}
	return p.update(ctx, validated)
}

func (p *QuizPage) create(ctx context.Context, f form.QuizForm) error {
	req, err := f.CreateRequest()
	if err == nil {
		err = p.api.CreateQuiz(ctx, req)
	}
	if err != nil {
		log.Printf("create quiz: %v", err)
		p.toast.Warning(MsgQuizCreateFail)
		return err
	}

	p.mu.Lock()
	p.form = p.form.Reset()
	p.mu.Unlock()
	p.toast.Success(MsgQuizCreated)
	return nil
}

func (p *QuizPage) update(ctx context.Context, f form.QuizForm) error {
	req, err := f.UpdateRequest(p.quizID)
	if err == nil {
		err = p.api.UpdateQuiz(ctx, req)
	}
	if err != nil {
		log.Printf("update quiz %d: %v", p.quizID, err)
		p.toast.Warning(MsgQuizUpdateFail)
		return err
	}

	if p.quizzes != nil {
		if err := p.quizzes.Invalidate(ctx, p.quizID); err != nil {
			log.Printf("invalidate quiz %d: %v", p.quizID, err)
		}
	}
	p.toast.Success(MsgQuizUpdated)
	p.nav.Navigate(PathQuizManagement, nil)
	return nil
}
