package content

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/inklet-app/inklet-backend/internal/domain"
	"github.com/inklet-app/inklet-backend/pkg/ctxutil"
)

// Get returns a single content entity. Unpublished drafts are visible to
// admins only; everyone else gets NotFound, not Forbidden, so drafts do
// not leak their existence. A public read of a published entity counts
// as a view.
func (s *Service) Get(ctx context.Context, contentType domain.ContentType, id uuid.UUID) (*domain.Content, error) {
	if !contentType.IsValid() {
		return nil, domain.NewValidationError("type", "must be poem or blog_post")
	}

	c, err := s.content.GetByID(ctx, contentType, id)
	if err != nil {
		return nil, fmt.Errorf("content.Get: %w", err)
	}

	admin := ctxutil.IsAdminCtx(ctx)
	if !c.Published && !admin {
		return nil, fmt.Errorf("content.Get: %s %s: %w", contentType, id, domain.ErrNotFound)
	}

	if c.Published && !admin {
		if err := s.content.IncrementViews(ctx, contentType, id); err != nil {
			// A lost view count never fails the read.
			s.log.WarnContext(ctx, "increment views failed",
				slog.String("content_id", id.String()),
				slog.Any("error", err))
		} else {
			c.ViewsCount++
		}
	}

	return c, nil
}

// Like increments the like counter of a published entity. There is no
// per-user bookkeeping; repeat likes count again.
func (s *Service) Like(ctx context.Context, contentType domain.ContentType, id uuid.UUID) error {
	if !contentType.IsValid() {
		return domain.NewValidationError("type", "must be poem or blog_post")
	}

	c, err := s.content.GetByID(ctx, contentType, id)
	if err != nil {
		return fmt.Errorf("content.Like: %w", err)
	}
	if !c.Published {
		return fmt.Errorf("content.Like: %s %s: %w", contentType, id, domain.ErrNotFound)
	}

	if err := s.content.IncrementLikes(ctx, contentType, id); err != nil {
		return fmt.Errorf("content.Like: %w", err)
	}
	return nil
}
