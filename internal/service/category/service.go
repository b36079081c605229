// Package category implements category listing and administration.
package category

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/inklet-app/inklet-backend/internal/domain"
	"github.com/inklet-app/inklet-backend/pkg/ctxutil"
)

// categoryRepo defines the category repository interface needed by the service.
type categoryRepo interface {
	List(ctx context.Context) ([]domain.Category, error)
	Create(ctx context.Context, c *domain.Category) (*domain.Category, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Service implements category operations.
type Service struct {
	log        *slog.Logger
	categories categoryRepo
}

// NewService creates a new category service instance.
func NewService(logger *slog.Logger, categories categoryRepo) *Service {
	return &Service{
		log:        logger.With("service", "category"),
		categories: categories,
	}
}

// List returns all categories. Public operation.
func (s *Service) List(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("category.List: %w", err)
	}
	return categories, nil
}

// Create adds a new category (admin only). The slug is derived from the name.
// Returns ErrAlreadyExists if the name or derived slug is taken.
func (s *Service) Create(ctx context.Context, name, description string) (*domain.Category, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	name = strings.TrimSpace(name)
	description = strings.TrimSpace(description)
	if name == "" {
		return nil, domain.NewValidationError("name", "required")
	}
	if len(name) > 100 {
		return nil, domain.NewValidationError("name", "too long")
	}
	if len(description) > 500 {
		return nil, domain.NewValidationError("description", "too long")
	}

	slug := domain.Slugify(name)
	if slug == "" {
		return nil, domain.NewValidationError("name", "must contain letters or digits")
	}

	created, err := s.categories.Create(ctx, &domain.Category{
		Name:        name,
		Slug:        slug,
		Description: description,
	})
	if err != nil {
		return nil, fmt.Errorf("category.Create: %w", err)
	}

	s.log.InfoContext(ctx, "category created",
		slog.String("category_id", created.ID.String()),
		slog.String("slug", created.Slug))

	return created, nil
}

// Delete removes a category (admin only). Content keeps existing with its
// category reference cleared.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if !ctxutil.IsAdminCtx(ctx) {
		return domain.ErrForbidden
	}

	if err := s.categories.Delete(ctx, id); err != nil {
		return fmt.Errorf("category.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "category deleted", slog.String("category_id", id.String()))
	return nil
}
