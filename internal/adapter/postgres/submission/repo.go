// Package submission implements the Submission repository using PostgreSQL.
package submission

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/inklet-app/inklet-backend/internal/adapter/postgres"
	"github.com/inklet-app/inklet-backend/internal/domain"
)

const columns = `id, type, title, content, excerpt, author_name, author_bio,
	category_id, tags, reading_time, status, admin_notes, user_id,
	reviewed_at, created_at, updated_at`

// Repo provides submission persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new submission repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByID returns a submission by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Submission, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx,
		`SELECT `+columns+` FROM submissions WHERE id = $1`, id)

	s, err := scan(row)
	if err != nil {
		return nil, mapError(err, "submission", id)
	}
	return s, nil
}

// Create inserts a new pending submission and returns the persisted row.
func (r *Repo) Create(ctx context.Context, s *domain.Submission) (*domain.Submission, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx,
		`INSERT INTO submissions
			(type, title, content, excerpt, author_name, author_bio,
			 category_id, tags, reading_time, user_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING `+columns,
		string(s.Type), s.Title, s.Content, s.Excerpt, s.AuthorName, s.AuthorBio,
		s.CategoryID, s.Tags, s.ReadingTime, s.UserID)

	created, err := scan(row)
	if err != nil {
		return nil, mapError(err, "submission", uuid.Nil)
	}
	return created, nil
}

// ListByUser returns all submissions of one author, newest first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Submission, error) {
	return r.list(ctx, sq.Eq{"user_id": userID})
}

// ListByStatus returns all submissions with the given status, oldest first
// so the moderation queue is processed in arrival order.
func (r *Repo) ListByStatus(ctx context.Context, status domain.SubmissionStatus) ([]domain.Submission, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := postgres.Builder.
		Select(columns).
		From("submissions").
		Where(sq.Eq{"status": string(status)}).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("submission list build: %w", err)
	}
	return r.query(ctx, q, query, args)
}

// ListAll returns every submission, newest first.
func (r *Repo) ListAll(ctx context.Context) ([]domain.Submission, error) {
	return r.list(ctx, nil)
}

func (r *Repo) list(ctx context.Context, where any) ([]domain.Submission, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	builder := postgres.Builder.
		Select(columns).
		From("submissions").
		OrderBy("created_at DESC")
	if where != nil {
		builder = builder.Where(where)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("submission list build: %w", err)
	}
	return r.query(ctx, q, query, args)
}

func (r *Repo) query(ctx context.Context, q postgres.Querier, query string, args []any) ([]domain.Submission, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("submission list: %w", err)
	}
	defer rows.Close()

	var subs []domain.Submission
	for rows.Next() {
		s, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("submission list scan: %w", err)
		}
		subs = append(subs, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("submission list rows: %w", err)
	}
	return subs, nil
}

// UpdateReview records a moderation decision. Only pending submissions are
// updated; reviewing an already-decided submission returns ErrInvalidState.
func (r *Repo) UpdateReview(ctx context.Context, id uuid.UUID, status domain.SubmissionStatus, adminNotes *string) (*domain.Submission, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx,
		`UPDATE submissions
		 SET status = $2, admin_notes = $3, reviewed_at = now(), updated_at = now()
		 WHERE id = $1 AND status = 'pending'
		 RETURNING `+columns,
		id, string(status), adminNotes)

	s, err := scan(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Either missing or already reviewed; let the caller distinguish.
			if _, getErr := r.GetByID(ctx, id); getErr != nil {
				return nil, getErr
			}
			return nil, fmt.Errorf("submission %s: %w", id, domain.ErrInvalidState)
		}
		return nil, mapError(err, "submission", id)
	}
	return s, nil
}

// CountByStatus returns the number of submissions with the given status.
func (r *Repo) CountByStatus(ctx context.Context, status domain.SubmissionStatus) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var n int
	err := q.QueryRow(ctx,
		`SELECT count(*) FROM submissions WHERE status = $1`, string(status)).
		Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("submission count: %w", err)
	}
	return n, nil
}

func scan(row pgx.Row) (*domain.Submission, error) {
	var s domain.Submission
	var typ, status string
	err := row.Scan(
		&s.ID, &typ, &s.Title, &s.Content, &s.Excerpt, &s.AuthorName, &s.AuthorBio,
		&s.CategoryID, &s.Tags, &s.ReadingTime, &status, &s.AdminNotes, &s.UserID,
		&s.ReviewedAt, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	s.Type = domain.ContentType(typ)
	s.Status = domain.SubmissionStatus(status)
	return &s, nil
}

// ---------------------------------------------------------------------------
// Error mapping
// ---------------------------------------------------------------------------

func mapError(err error, entity string, id uuid.UUID) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w", entity, id, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrAlreadyExists)
		case "23503": // foreign_key_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
		case "23514": // check_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrValidation)
		}
	}

	return fmt.Errorf("%s %s: %w", entity, id, err)
}
