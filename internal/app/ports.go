package app

import (
	"context"
	"encoding/json"

	"quiz-author/internal/domain"
)

// QuizAPI creates and updates quizzes on the backend.
type QuizAPI interface {
	CreateQuiz(ctx context.Context, req domain.CreateQuizRequest) error
	UpdateQuiz(ctx context.Context, req domain.UpdateQuizRequest) error
}

// QuizRepository loads quiz records for the edit page (cache in front of the API).
type QuizRepository interface {
	GetQuiz(ctx context.Context, quizID int64) (domain.QuizRecord, error)
	Invalidate(ctx context.Context, quizID int64) error
}

// RoomAPI creates private game rooms.
type RoomAPI interface {
	CreatePrivateRoom(ctx context.Context, req domain.GameRoomRequest) (json.RawMessage, error)
}

// CommentAPI posts quiz comments.
type CommentAPI interface {
	AddComment(ctx context.Context, req domain.CommentRequest) error
}

// ProfileLoader loads the current player's profile.
type ProfileLoader interface {
	LoadProfile(ctx context.Context) (domain.Profile, error)
}

// Notifier surfaces transient messages to the user.
type Notifier interface {
	Success(text string)
	Warning(text string)
}

// Navigator moves the user to another view, optionally with handoff state.
type Navigator interface {
	Navigate(path string, state any)
}

// View paths the pages navigate to.
const (
	PathQuizManagement = "/profile/quizManagement"
	PathWaitingRoom    = "/game/waiting"
)
