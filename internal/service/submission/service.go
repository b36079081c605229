// Package submission implements the moderation workflow: readers submit
// poems and blog posts, admins review them, and approved pieces become
// draft content.
package submission

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/inklet-app/inklet-backend/internal/config"
	"github.com/inklet-app/inklet-backend/internal/domain"
)

// submissionRepo defines the submission repository interface needed by the service.
type submissionRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Submission, error)
	Create(ctx context.Context, s *domain.Submission) (*domain.Submission, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Submission, error)
	ListByStatus(ctx context.Context, status domain.SubmissionStatus) ([]domain.Submission, error)
	ListAll(ctx context.Context) ([]domain.Submission, error)
	UpdateReview(ctx context.Context, id uuid.UUID, status domain.SubmissionStatus, adminNotes *string) (*domain.Submission, error)
}

// contentRepo is the slice of the content repository the review step needs
// to materialize an approved submission.
type contentRepo interface {
	Create(ctx context.Context, c *domain.Content) (*domain.Content, error)
}

// categoryRepo validates category references on submit.
type categoryRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error)
}

// txManager defines the transaction manager interface needed by the service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements the submission workflow.
type Service struct {
	log         *slog.Logger
	cfg         config.ContentConfig
	submissions submissionRepo
	content     contentRepo
	categories  categoryRepo
	tx          txManager
}

// NewService creates a new submission service instance.
func NewService(
	logger *slog.Logger,
	cfg config.ContentConfig,
	submissions submissionRepo,
	content contentRepo,
	categories categoryRepo,
	tx txManager,
) *Service {
	return &Service{
		log:         logger.With("service", "submission"),
		cfg:         cfg,
		submissions: submissions,
		content:     content,
		categories:  categories,
		tx:          tx,
	}
}
