// Package dashboard aggregates the counters behind the admin overview.
package dashboard

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/inklet-app/inklet-backend/internal/domain"
	"github.com/inklet-app/inklet-backend/pkg/ctxutil"
)

// contentRepo exposes the per-table counters.
type contentRepo interface {
	Stats(ctx context.Context, contentType domain.ContentType) (total, published, featured int, err error)
}

// userRepo exposes the user count.
type userRepo interface {
	Count(ctx context.Context) (int, error)
}

// categoryRepo exposes the category count.
type categoryRepo interface {
	Count(ctx context.Context) (int, error)
}

// submissionRepo exposes the per-status submission count.
type submissionRepo interface {
	CountByStatus(ctx context.Context, status domain.SubmissionStatus) (int, error)
}

// ContentStats summarizes one content table.
type ContentStats struct {
	Total     int
	Published int
	Featured  int
}

// Stats is the admin overview: totals per content type plus queue and
// account counters.
type Stats struct {
	Poems              ContentStats
	BlogPosts          ContentStats
	Users              int
	Categories         int
	PendingSubmissions int
}

// Service computes dashboard statistics.
type Service struct {
	log         *slog.Logger
	content     contentRepo
	users       userRepo
	categories  categoryRepo
	submissions submissionRepo
}

// NewService creates a new dashboard service instance.
func NewService(
	logger *slog.Logger,
	content contentRepo,
	users userRepo,
	categories categoryRepo,
	submissions submissionRepo,
) *Service {
	return &Service{
		log:         logger.With("service", "dashboard"),
		content:     content,
		users:       users,
		categories:  categories,
		submissions: submissions,
	}
}

// GetStats returns the admin overview (admin only). Reads are independent
// and not wrapped in a transaction; any failing read fails the call.
func (s *Service) GetStats(ctx context.Context) (*Stats, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	var stats Stats
	var err error

	stats.Poems, err = s.contentStats(ctx, domain.ContentTypePoem)
	if err != nil {
		return nil, err
	}
	stats.BlogPosts, err = s.contentStats(ctx, domain.ContentTypeBlogPost)
	if err != nil {
		return nil, err
	}

	stats.Users, err = s.users.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard.GetStats: users: %w", err)
	}
	stats.Categories, err = s.categories.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard.GetStats: categories: %w", err)
	}
	stats.PendingSubmissions, err = s.submissions.CountByStatus(ctx, domain.SubmissionStatusPending)
	if err != nil {
		return nil, fmt.Errorf("dashboard.GetStats: submissions: %w", err)
	}

	return &stats, nil
}

func (s *Service) contentStats(ctx context.Context, contentType domain.ContentType) (ContentStats, error) {
	total, published, featured, err := s.content.Stats(ctx, contentType)
	if err != nil {
		return ContentStats{}, fmt.Errorf("dashboard.GetStats: %s: %w", contentType, err)
	}
	return ContentStats{Total: total, Published: published, Featured: featured}, nil
}
