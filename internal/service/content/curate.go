package content

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/inklet-app/inklet-backend/internal/domain"
	"github.com/inklet-app/inklet-backend/pkg/ctxutil"
)

// SetPublished flips the publication flag (admin only). Setting the flag
// to its current value is a no-op that still succeeds.
func (s *Service) SetPublished(ctx context.Context, contentType domain.ContentType, id uuid.UUID, published bool) error {
	if err := s.curateCheck(ctx, contentType); err != nil {
		return err
	}

	if err := s.content.SetPublished(ctx, contentType, id, published); err != nil {
		return fmt.Errorf("content.SetPublished: %w", err)
	}

	s.log.InfoContext(ctx, "publication flag set",
		slog.String("content_id", id.String()),
		slog.String("type", contentType.String()),
		slog.Bool("published", published))
	return nil
}

// SetFeatured flips the featured flag (admin only). Idempotent like
// SetPublished.
func (s *Service) SetFeatured(ctx context.Context, contentType domain.ContentType, id uuid.UUID, featured bool) error {
	if err := s.curateCheck(ctx, contentType); err != nil {
		return err
	}

	if err := s.content.SetFeatured(ctx, contentType, id, featured); err != nil {
		return fmt.Errorf("content.SetFeatured: %w", err)
	}

	s.log.InfoContext(ctx, "featured flag set",
		slog.String("content_id", id.String()),
		slog.String("type", contentType.String()),
		slog.Bool("featured", featured))
	return nil
}

// Delete removes a content entity permanently (admin only). The owning
// submission, if any, keeps its approved status.
func (s *Service) Delete(ctx context.Context, contentType domain.ContentType, id uuid.UUID) error {
	if err := s.curateCheck(ctx, contentType); err != nil {
		return err
	}

	if err := s.content.Delete(ctx, contentType, id); err != nil {
		return fmt.Errorf("content.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "content deleted",
		slog.String("content_id", id.String()),
		slog.String("type", contentType.String()))
	return nil
}

func (s *Service) curateCheck(ctx context.Context, contentType domain.ContentType) error {
	if !contentType.IsValid() {
		return domain.NewValidationError("type", "must be poem or blog_post")
	}
	if !ctxutil.IsAdminCtx(ctx) {
		return domain.ErrForbidden
	}
	return nil
}
