package form

import (
	"fmt"
	"sort"
	"strings"

	"quiz-author/internal/domain"
)

// Field names a free-text field of a quiz draft.
type Field int

const (
	FieldCategory Field = iota
	FieldContent
	FieldExplanation
)

// Limits are the per-flow character limits. Zero means unconstrained.
type Limits struct {
	Content     int
	Explanation int
	Option      int
}

// CreateLimits apply to the quiz creation page.
var CreateLimits = Limits{Content: 70, Explanation: 100, Option: 30}

// EditLimits apply to the quiz edit page; options are tracked but not capped.
var EditLimits = Limits{Content: 42, Explanation: 70, Option: 0}

// QuizForm is an immutable snapshot of a quiz page: the draft, its error map
// and the limits in force. Every update returns a new snapshot.
type QuizForm struct {
	Draft  domain.QuizDraft
	Errors domain.FieldErrors
	Limits Limits
}

// NewQuizForm returns an empty multiple-choice form.
func NewQuizForm(limits Limits) QuizForm {
	return QuizForm{
		Draft:  emptyDraft(domain.MultipleChoiceOptions),
		Errors: domain.FieldErrors{Options: make([]bool, domain.MultipleChoiceOptions)},
		Limits: limits,
	}
}

// FromRecord hydrates a form from a fetched quiz. The record's category code
// must be known and its option numbers must form 1..N in any order.
func FromRecord(rec domain.QuizRecord, limits Limits) (QuizForm, error) {
	label, err := domain.ToDisplayLabel(rec.Category)
	if err != nil {
		return QuizForm{}, err
	}
	options := make([]domain.Option, len(rec.Options))
	copy(options, rec.Options)
	sort.SliceStable(options, func(i, j int) bool { return options[i].Position < options[j].Position })
	for i, opt := range options {
		if opt.Position != i+1 {
			return QuizForm{}, fmt.Errorf("%w: option numbers are not 1..%d", domain.ErrValidation, len(options))
		}
	}
	answer := rec.AnswerNumber
	if answer < 1 || answer > len(options) {
		answer = domain.NoAnswer
	}
	return QuizForm{
		Draft: domain.QuizDraft{
			Category:    label,
			Content:     rec.Content,
			Options:     options,
			Answer:      answer,
			Explanation: rec.Explanation,
			Tags:        append([]string(nil), rec.Tags...),
		},
		Errors: domain.FieldErrors{Options: make([]bool, len(options))},
		Limits: limits,
	}, nil
}

// SetField stores value in field, truncated to maxLength runes when
// maxLength > 0, and clears that field's error.
func (f QuizForm) SetField(field Field, value string, maxLength int) QuizForm {
	next := f.clone()
	value = Truncate(value, maxLength)
	switch field {
	case FieldCategory:
		next.Draft.Category = value
		next.Errors.Category = false
	case FieldContent:
		next.Draft.Content = value
		next.Errors.Content = false
	case FieldExplanation:
		next.Draft.Explanation = value
		next.Errors.Explanation = false
	}
	return next
}

// SetContent stores the question text under the form's content limit.
func (f QuizForm) SetContent(value string) QuizForm {
	return f.SetField(FieldContent, value, f.Limits.Content)
}

// SetExplanation stores the explanation under the form's explanation limit.
func (f QuizForm) SetExplanation(value string) QuizForm {
	return f.SetField(FieldExplanation, value, f.Limits.Explanation)
}

// SetCategory stores the category label.
func (f QuizForm) SetCategory(label string) QuizForm {
	return f.SetField(FieldCategory, label, 0)
}

// SetOption updates the option at position and recomputes its error flag.
// Unknown positions leave the form unchanged.
func (f QuizForm) SetOption(position int, value string) QuizForm {
	idx := position - 1
	if idx < 0 || idx >= len(f.Draft.Options) {
		return f
	}
	next := f.clone()
	next.Draft.Options[idx].Text = Truncate(value, f.Limits.Option)
	next.Errors.Options[idx] = strings.TrimSpace(next.Draft.Options[idx].Text) == ""
	return next
}

// SetAnswer toggles the answer: choosing the current answer clears it.
func (f QuizForm) SetAnswer(position int) QuizForm {
	if position < 1 || position > len(f.Draft.Options) {
		return f
	}
	next := f.clone()
	if next.Draft.Answer == position {
		next.Draft.Answer = domain.NoAnswer
	} else {
		next.Draft.Answer = position
	}
	next.Errors.Answer = false
	return next
}

// SetTags replaces the tag set.
func (f QuizForm) SetTags(tags []string) QuizForm {
	next := f.clone()
	next.Draft.Tags = nil
	for _, tag := range tags {
		next.Draft.Tags = appendTag(next.Draft.Tags, tag)
	}
	return next
}

// AddTag appends a tag unless it is blank or already present.
func (f QuizForm) AddTag(tag string) QuizForm {
	next := f.clone()
	next.Draft.Tags = appendTag(next.Draft.Tags, tag)
	return next
}

// RemoveTag drops a tag if present.
func (f QuizForm) RemoveTag(tag string) QuizForm {
	next := f.clone()
	kept := next.Draft.Tags[:0]
	for _, t := range next.Draft.Tags {
		if t != tag {
			kept = append(kept, t)
		}
	}
	next.Draft.Tags = kept
	return next
}

// Reset returns an empty form with the same limits and option count.
func (f QuizForm) Reset() QuizForm {
	n := len(f.Draft.Options)
	if n == 0 {
		n = domain.MultipleChoiceOptions
	}
	return QuizForm{
		Draft:  emptyDraft(n),
		Errors: domain.FieldErrors{Options: make([]bool, n)},
		Limits: f.Limits,
	}
}

func (f QuizForm) clone() QuizForm {
	next := f
	next.Draft.Options = append([]domain.Option(nil), f.Draft.Options...)
	next.Draft.Tags = append([]string(nil), f.Draft.Tags...)
	next.Errors.Options = append([]bool(nil), f.Errors.Options...)
	if len(next.Errors.Options) < len(next.Draft.Options) {
		pad := make([]bool, len(next.Draft.Options)-len(next.Errors.Options))
		next.Errors.Options = append(next.Errors.Options, pad...)
	}
	return next
}

func emptyDraft(n int) domain.QuizDraft {
	options := make([]domain.Option, n)
	for i := range options {
		options[i].Position = i + 1
	}
	return domain.QuizDraft{Options: options, Answer: domain.NoAnswer}
}

func appendTag(tags []string, tag string) []string {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return tags
	}
	for _, t := range tags {
		if t == tag {
			return tags
		}
	}
	return append(tags, tag)
}

// Truncate keeps the first limit runes of value. limit <= 0 disables truncation.
func Truncate(value string, limit int) string {
	if limit <= 0 {
		return value
	}
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	return string(runes[:limit])
}
