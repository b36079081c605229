// Package content implements reading and curation of published poems
// and blog posts.
package content

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/inklet-app/inklet-backend/internal/config"
	"github.com/inklet-app/inklet-backend/internal/domain"
)

// contentRepo defines the content repository interface needed by the service.
type contentRepo interface {
	List(ctx context.Context, contentType domain.ContentType, onlyPublished bool) ([]domain.Content, error)
	GetByID(ctx context.Context, contentType domain.ContentType, id uuid.UUID) (*domain.Content, error)
	Create(ctx context.Context, c *domain.Content) (*domain.Content, error)
	SetPublished(ctx context.Context, contentType domain.ContentType, id uuid.UUID, published bool) error
	SetFeatured(ctx context.Context, contentType domain.ContentType, id uuid.UUID, featured bool) error
	IncrementViews(ctx context.Context, contentType domain.ContentType, id uuid.UUID) error
	IncrementLikes(ctx context.Context, contentType domain.ContentType, id uuid.UUID) error
	Delete(ctx context.Context, contentType domain.ContentType, id uuid.UUID) error
}

// Service implements content operations.
type Service struct {
	log     *slog.Logger
	cfg     config.ContentConfig
	content contentRepo
}

// NewService creates a new content service instance.
func NewService(logger *slog.Logger, cfg config.ContentConfig, content contentRepo) *Service {
	return &Service{
		log:     logger.With("service", "content"),
		cfg:     cfg,
		content: content,
	}
}
