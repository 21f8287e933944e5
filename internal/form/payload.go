package form

import "quiz-author/internal/domain"

// CreateRequest packages a validated draft for the create endpoint.
func (f QuizForm) CreateRequest() (domain.CreateQuizRequest, error) {
	code, err := domain.ToBackendCode(f.Draft.Category)
	if err != nil {
		return domain.CreateQuizRequest{}, err
	}
	return domain.CreateQuizRequest{
		Category:     code,
		Type:         domain.QuizTypeMultipleChoice,
		Content:      f.Draft.Content,
		Options:      flattenOptions(f.Draft.Options),
		AnswerNumber: f.Draft.Answer,
		Explanation:  f.Draft.Explanation,
		Tags:         tagsOrEmpty(f.Draft.Tags),
	}, nil
}

// UpdateRequest packages a validated draft for the update endpoint.
func (f QuizForm) UpdateRequest(id int64) (domain.UpdateQuizRequest, error) {
	create, err := f.CreateRequest()
	if err != nil {
		return domain.UpdateQuizRequest{}, err
	}
	return domain.UpdateQuizRequest{
		ID:             id,
		Category:       create.Category,
		Type:           create.Type,
		Content:        create.Content,
		Options:        create.Options,
		AnswerNumber:   create.AnswerNumber,
		Explanation:    create.Explanation,
		Tags:           create.Tags,
		DeleteImageIDs: []int64{},
	}, nil
}

func flattenOptions(options []domain.Option) []domain.Option {
	out := make([]domain.Option, len(options))
	for i, opt := range options {
		out[i] = domain.Option{Position: opt.Position, Text: opt.Text, ImageID: opt.ImageID}
	}
	return out
}

func tagsOrEmpty(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return append([]string(nil), tags...)
}
