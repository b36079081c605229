package content

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/inklet-app/inklet-backend/internal/domain"
	"github.com/inklet-app/inklet-backend/pkg/ctxutil"
)

// Create authors a content entity directly, bypassing the submission
// queue. Admin only; the entity starts as an unpublished draft.
func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.Content, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := in.Validate(s.cfg); err != nil {
		return nil, fmt.Errorf("content.Create: %w", err)
	}

	created, err := s.content.Create(ctx, &domain.Content{
		Type:        in.Type,
		Title:       in.Title,
		Content:     in.Content,
		Excerpt:     in.Excerpt,
		AuthorName:  in.AuthorName,
		AuthorBio:   in.AuthorBio,
		CategoryID:  in.CategoryID,
		Tags:        in.Tags,
		ReadingTime: in.ReadingTime,
		UserID:      userID,
	})
	if err != nil {
		return nil, fmt.Errorf("content.Create: %w", err)
	}

	s.log.InfoContext(ctx, "content created",
		slog.String("content_id", created.ID.String()),
		slog.String("type", created.Type.String()))

	return created, nil
}
