package domain

import "errors"

var (
	// ErrUnknownCategory is returned when a category label or code is outside the catalog.
	ErrUnknownCategory = errors.New("unknown quiz category")
	// ErrUnknownDifficulty is returned when a difficulty label or code is outside the catalog.
	ErrUnknownDifficulty = errors.New("unknown difficulty")
	// ErrQuizNotFound indicates the quiz record could not be loaded.
	ErrQuizNotFound = errors.New("quiz not found")
	// ErrValidation is returned when a form fails its submit-time checks.
	ErrValidation = errors.New("form has missing fields")
	// ErrSubmitInProgress is returned when a submit is attempted while one is in flight.
	ErrSubmitInProgress = errors.New("submission already in progress")
	// ErrEmptyComment is returned for blank comment content.
	ErrEmptyComment = errors.New("comment content is empty")
)
