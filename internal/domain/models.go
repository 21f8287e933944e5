package domain

// NoAnswer marks a draft whose answer position has not been chosen.
// Option positions are 1-based, so zero never names a real option.
const NoAnswer = 0

// MultipleChoiceOptions is the fixed option count of a multiple-choice quiz.
const MultipleChoiceOptions = 4

// QuizTypeMultipleChoice is the backend type code for multiple-choice quizzes.
const QuizTypeMultipleChoice = "MULTIPLE_CHOICE"

// Option is one numbered choice of a quiz draft.
type Option struct {
	Position int    `json:"optionNumber"`
	Text     string `json:"content"`
	ImageID  *int64 `json:"imageId"`
}

// QuizDraft is the in-progress quiz being authored on a page.
type QuizDraft struct {
	Category    string // display label
	Content     string
	Options     []Option // positions 1..N, contiguous
	Answer      int      // option position or NoAnswer
	Explanation string
	Tags        []string
}

// FieldErrors mirrors QuizDraft with one flag per field and per option.
type FieldErrors struct {
	Category    bool
	Content     bool
	Options     []bool
	Answer      bool
	Explanation bool
}

// Any reports whether at least one flag is set.
func (e FieldErrors) Any() bool {
	if e.Category || e.Content || e.Answer || e.Explanation {
		return true
	}
	for _, bad := range e.Options {
		if bad {
			return true
		}
	}
	return false
}

// QuizRecord is the quiz as returned by GET /quiz/{id}.
type QuizRecord struct {
	ID           int64    `json:"id,omitempty"`
	Category     string   `json:"category"` // backend code
	Type         string   `json:"type,omitempty"`
	Content      string   `json:"content"`
	Options      []Option `json:"options"`
	Tags         []string `json:"tags"`
	AnswerNumber int      `json:"answerNumber"`
	Explanation  string   `json:"explanation"`
}

// CreateQuizRequest is the payload for creating a quiz.
type CreateQuizRequest struct {
	Category     string   `json:"category" validate:"required"`
	Type         string   `json:"type" validate:"required"`
	Content      string   `json:"content" validate:"required"`
	Options      []Option `json:"options" validate:"required,min=2,dive"`
	AnswerNumber int      `json:"answerNumber" validate:"required,min=1"`
	Explanation  string   `json:"explanation" validate:"required"`
	Tags         []string `json:"tags"`
}

// UpdateQuizRequest is the payload for updating an existing quiz.
type UpdateQuizRequest struct {
	ID             int64    `json:"id" validate:"required"`
	Category       string   `json:"category" validate:"required"`
	Type           string   `json:"type" validate:"required"`
	Content        string   `json:"content" validate:"required"`
	Options        []Option `json:"options" validate:"required,min=2,dive"`
	AnswerNumber   int      `json:"answerNumber" validate:"required,min=1"`
	Explanation    string   `json:"explanation" validate:"required"`
	Tags           []string `json:"tags"`
	DeleteImageIDs []int64  `json:"deleteImageIds"`
}

// GameRoomConfig is the room being configured on the create-game page.
type GameRoomConfig struct {
	Topic      string // display label
	Difficulty string // display label
	QuizCount  int
}

// Quiz count bounds for a private game room.
const (
	MinQuizCount     = 5
	MaxQuizCount     = 20
	DefaultQuizCount = MinQuizCount
)

// GameRoomRequest is the payload for POST /api/game/private.
type GameRoomRequest struct {
	Subject   string `json:"subject" validate:"required"`
	Level     string `json:"level" validate:"required,oneof=EASY NORMAL HARD"`
	QuizCount int    `json:"quizCount" validate:"min=5,max=20"`
}

// WaitingRoomState is handed to the waiting room after a room is created.
type WaitingRoomState struct {
	Topic      string `json:"topic"`
	Difficulty string `json:"difficulty"`
	QuizCount  int    `json:"quizCount"`
}

// CommentRequest is the payload for POST /quiz/comments.
type CommentRequest struct {
	QuizID          int64  `json:"quizId" validate:"required"`
	ParentCommentID int64  `json:"parentCommentId"`
	Content         string `json:"content" validate:"required"`
}

// Achievement is a badge shown on the profile page.
type Achievement struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Achieved    bool   `json:"achieved"`
}

// Profile summarizes a player for the profile page.
type Profile struct {
	Nickname     string        `json:"nickname"`
	AvatarURL    string        `json:"avatarUrl"`
	Rating       int           `json:"rating"`
	SolvedCount  int           `json:"solvedCount"`
	AccuracyPct  int           `json:"accuracy"`
	Achievements []Achievement `json:"achievements"`
}
