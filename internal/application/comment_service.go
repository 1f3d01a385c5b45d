package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/mmasias/evaluacion-automatica/internal/domain"
)

// CommentService posts validation reports to pull requests, replacing the
// previous report instead of stacking a new comment per push.
type CommentService struct {
	publisher domain.CommentPublisher
	logger    *zerolog.Logger
}

func NewCommentService(publisher domain.CommentPublisher, logger *zerolog.Logger) *CommentService {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &CommentService{publisher: publisher, logger: logger}
}

// Publish creates or updates the tool's comment on pr.
func (s *CommentService) Publish(ctx context.Context, pr domain.PullRequestRef, body string) (domain.Comment, error) {
	if strings.TrimSpace(body) == "" {
		return domain.Comment{}, fmt.Errorf("refusing to publish an empty comment")
	}
	if !strings.Contains(body, domain.CommentMarker) {
		body = strings.TrimRight(body, "\n") + "\n\n" + domain.CommentMarker + "\n"
	}

	comments, err := s.publisher.ListComments(ctx, pr)
	if err != nil {
		return domain.Comment{}, fmt.Errorf("listing comments: %w", err)
	}

	for _, c := range comments {
		if strings.Contains(c.Body, domain.CommentMarker) {
			updated, err := s.publisher.UpdateComment(ctx, pr, c.ID, body)
			if err != nil {
				return domain.Comment{}, fmt.Errorf("updating comment %d: %w", c.ID, err)
			}
			s.logger.Info().Int64("comment_id", c.ID).Int("pr", pr.Number).Msg("updated report comment")
			return updated, nil
		}
	}

	created, err := s.publisher.CreateComment(ctx, pr, body)
	if err != nil {
		return domain.Comment{}, fmt.Errorf("creating comment: %w", err)
	}
	s.logger.Info().Int64("comment_id", created.ID).Int("pr", pr.Number).Msg("created report comment")
	return created, nil
}
