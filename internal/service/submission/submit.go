package submission

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/inklet-app/inklet-backend/internal/domain"
	"github.com/inklet-app/inklet-backend/pkg/ctxutil"
)

// Submit queues a new piece for moderation. The caller must be
// authenticated; the submission starts pending and is immutable until an
// admin reviews it.
func (s *Service) Submit(ctx context.Context, in SubmitInput) (*domain.Submission, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := in.Validate(s.cfg); err != nil {
		return nil, fmt.Errorf("submission.Submit: %w", err)
	}

	if in.CategoryID != nil {
		if _, err := s.categories.GetByID(ctx, *in.CategoryID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, domain.NewValidationError("category_id", "unknown category")
			}
			return nil, fmt.Errorf("submission.Submit: %w", err)
		}
	}

	var excerpt *string
	if in.Excerpt != "" {
		excerpt = &in.Excerpt
	}

	created, err := s.submissions.Create(ctx, &domain.Submission{
		Type:        in.Type,
		Title:       in.Title,
		Content:     in.Content,
		Excerpt:     excerpt,
		AuthorName:  in.AuthorName,
		AuthorBio:   in.AuthorBio,
		CategoryID:  in.CategoryID,
		Tags:        in.parsedTags,
		ReadingTime: in.ReadingTime,
		UserID:      userID,
		Status:      domain.SubmissionStatusPending,
	})
	if err != nil {
		return nil, fmt.Errorf("submission.Submit: %w", err)
	}

	s.log.InfoContext(ctx, "submission created",
		slog.String("submission_id", created.ID.String()),
		slog.String("type", created.Type.String()),
		slog.String("user_id", userID.String()))

	return created, nil
}
