package submission

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/inklet-app/inklet-backend/internal/domain"
	"github.com/inklet-app/inklet-backend/pkg/ctxutil"
)

// Review decides a pending submission (admin only). Approval flips the
// status and materializes the piece as an unpublished draft in a single
// transaction, so a submission is never approved without its content row
// and vice versa. Reviewing an already-reviewed submission fails with
// ErrInvalidState and changes nothing.
func (s *Service) Review(ctx context.Context, id uuid.UUID, in ReviewInput) (*domain.Submission, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("submission.Review: %w", err)
	}

	var reviewed *domain.Submission
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		updated, err := s.submissions.UpdateReview(ctx, id, in.Decision.Status(), in.AdminNotes)
		if err != nil {
			return err
		}

		if in.Decision == domain.ReviewDecisionApprove {
			draft := updated.Materialize()
			if _, err := s.content.Create(ctx, &draft); err != nil {
				return fmt.Errorf("materialize: %w", err)
			}
		}

		reviewed = updated
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("submission.Review: %w", err)
	}

	s.log.InfoContext(ctx, "submission reviewed",
		slog.String("submission_id", id.String()),
		slog.String("decision", in.Decision.String()))

	return reviewed, nil
}
