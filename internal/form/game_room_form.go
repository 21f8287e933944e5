package form

import (
	"strings"

	"quiz-author/internal/domain"
)

// GameRoomForm is an immutable snapshot of the create-game page.
type GameRoomForm struct {
	Config            domain.GameRoomConfig
	TopicMissing      bool
	DifficultyMissing bool
}

// NewGameRoomForm starts with no topic, no difficulty and the minimum count.
func NewGameRoomForm() GameRoomForm {
	return GameRoomForm{Config: domain.GameRoomConfig{QuizCount: domain.DefaultQuizCount}}
}

func (g GameRoomForm) SetTopic(label string) GameRoomForm {
	g.Config.Topic = label
	g.TopicMissing = false
	return g
}

func (g GameRoomForm) SetDifficulty(label string) GameRoomForm {
	g.Config.Difficulty = label
	g.DifficultyMissing = false
	return g
}

// SetQuizCount stores n when it is within bounds. Out-of-range values are
// rejected and the previous count is kept.
func (g GameRoomForm) SetQuizCount(n int) GameRoomForm {
	if n < domain.MinQuizCount || n > domain.MaxQuizCount {
		return g
	}
	g.Config.QuizCount = n
	return g
}

// Validate flags a missing topic or difficulty.
func (g GameRoomForm) Validate() (GameRoomForm, bool) {
	g.TopicMissing = strings.TrimSpace(g.Config.Topic) == ""
	g.DifficultyMissing = strings.TrimSpace(g.Config.Difficulty) == ""
	return g, !g.TopicMissing && !g.DifficultyMissing
}

// Request builds the room creation payload. The topic is sent as its
// backend category code.
func (g GameRoomForm) Request() (domain.GameRoomRequest, error) {
	subject, err := domain.ToBackendCode(g.Config.Topic)
	if err != nil {
		return domain.GameRoomRequest{}, err
	}
	level, err := domain.DifficultyCode(g.Config.Difficulty)
	if err != nil {
		return domain.GameRoomRequest{}, err
	}
	return domain.GameRoomRequest{
		Subject:   subject,
		Level:     level,
		QuizCount: g.Config.QuizCount,
	}, nil
}

// Handoff is the navigation state passed to the waiting room.
func (g GameRoomForm) Handoff() domain.WaitingRoomState {
	return domain.WaitingRoomState{
		Topic:      g.Config.Topic,
		Difficulty: g.Config.Difficulty,
		QuizCount:  g.Config.QuizCount,
	}
}
