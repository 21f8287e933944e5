package form

import (
	"strings"

	"quiz-author/internal/domain"
)

// Validate recomputes the whole error map from the draft and reports whether
// the draft is clean. Run it at submit time only.
func (f QuizForm) Validate() (QuizForm, bool) {
	next := f.clone()
	d := next.Draft
	errs := domain.FieldErrors{
		Category:    blank(d.Category),
		Content:     blank(d.Content),
		Options:     make([]bool, len(d.Options)),
		Answer:      !validAnswer(d),
		Explanation: blank(d.Explanation),
	}
	for i, opt := range d.Options {
		errs.Options[i] = blank(opt.Text)
	}
	next.Errors = errs
	return next, !errs.Any()
}

func validAnswer(d domain.QuizDraft) bool {
	if d.Answer == domain.NoAnswer {
		return false
	}
	for _, opt := range d.Options {
		if opt.Position == d.Answer {
			return true
		}
	}
	return false
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
