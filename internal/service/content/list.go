package content

import (
	"context"
	"fmt"

	"github.com/inklet-app/inklet-backend/internal/domain"
	"github.com/inklet-app/inklet-backend/pkg/ctxutil"
)

// List returns content of the given type, newest first. Anonymous and
// regular users see published entities only; admins see everything and
// may narrow the result with the search and status filters.
func (s *Service) List(ctx context.Context, contentType domain.ContentType, in ListInput) ([]domain.Content, error) {
	if !contentType.IsValid() {
		return nil, domain.NewValidationError("type", "must be poem or blog_post")
	}
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("content.List: %w", err)
	}

	admin := ctxutil.IsAdminCtx(ctx)

	items, err := s.content.List(ctx, contentType, !admin)
	if err != nil {
		return nil, fmt.Errorf("content.List: %w", err)
	}

	if in.Category != "" {
		items = filterByCategorySlug(items, in.Category)
	}
	if admin {
		items = domain.FilterContent(items, in.Search, in.Status)
	}
	return items, nil
}

// filterByCategorySlug keeps items whose category name slugifies to slug.
// Slugs are derived from names with the same function that produced the
// stored slug, so the comparison round-trips.
func filterByCategorySlug(items []domain.Content, slug string) []domain.Content {
	out := make([]domain.Content, 0, len(items))
	for _, item := range items {
		if item.CategoryName == nil {
			continue
		}
		if domain.Slugify(*item.CategoryName) == slug {
			out = append(out, item)
		}
	}
	return out
}
