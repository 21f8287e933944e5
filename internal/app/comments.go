package app

import (
	"context"
	"fmt"
	"log"
	"strings"

	"quiz-author/internal/domain"
)

// CommentService posts comments and replies on a quiz.
type CommentService struct {
	api CommentAPI
}

func NewCommentService(api CommentAPI) *CommentService {
	return &CommentService{api: api}
}

// AddComment posts content under quizID. parentCommentID is zero for a
// top-level comment.
func (s *CommentService) AddComment(ctx context.Context, quizID, parentCommentID int64, content string) error {
	if strings.TrimSpace(content) == "" {
		return domain.ErrEmptyComment
	}
	err := s.api.AddComment(ctx, domain.CommentRequest{
		QuizID:          quizID,
		ParentCommentID: parentCommentID,
		Content:         content,
	})
	if err != nil {
		log.Printf("add comment on quiz %d failed: %v", quizID, err)
		return fmt.Errorf("add comment: %w", err)
	}
	log.Printf("comment added on quiz %d", quizID)
	return nil
}
