package submission

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/inklet-app/inklet-backend/internal/domain"
	"github.com/inklet-app/inklet-backend/pkg/ctxutil"
)

// ListMine returns the context user's submissions, newest first,
// optionally narrowed to one status.
func (s *Service) ListMine(ctx context.Context, status *domain.SubmissionStatus) ([]domain.Submission, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if status != nil && !status.IsValid() {
		return nil, domain.NewValidationError("status", "must be pending, approved, or rejected")
	}

	subs, err := s.submissions.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("submission.ListMine: %w", err)
	}

	if status != nil {
		filtered := subs[:0]
		for _, sub := range subs {
			if sub.Status == *status {
				filtered = append(filtered, sub)
			}
		}
		subs = filtered
	}
	return subs, nil
}

// List returns submissions across all users (admin only). With a status
// it returns that slice of the queue in arrival order; without one it
// returns everything, newest first.
func (s *Service) List(ctx context.Context, status *domain.SubmissionStatus) ([]domain.Submission, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}
	if status != nil && !status.IsValid() {
		return nil, domain.NewValidationError("status", "must be pending, approved, or rejected")
	}

	var (
		subs []domain.Submission
		err  error
	)
	if status != nil {
		subs, err = s.submissions.ListByStatus(ctx, *status)
	} else {
		subs, err = s.submissions.ListAll(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("submission.List: %w", err)
	}
	return subs, nil
}

// ListPending returns the review queue in arrival order (admin only).
func (s *Service) ListPending(ctx context.Context) ([]domain.Submission, error) {
	pending := domain.SubmissionStatusPending
	return s.List(ctx, &pending)
}

// GetByID returns one submission. Owners see their own; admins see all;
// anyone else gets Forbidden.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Submission, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	sub, err := s.submissions.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("submission.GetByID: %w", err)
	}

	if sub.UserID != userID && !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}
	return sub, nil
}
