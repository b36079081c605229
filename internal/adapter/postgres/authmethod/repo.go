// Package authmethod implements the AuthMethod repository using PostgreSQL.
package authmethod

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/inklet-app/inklet-backend/internal/adapter/postgres"
	"github.com/inklet-app/inklet-backend/internal/domain"
)

const columns = "id, user_id, method, password_hash, provider_id, created_at"

// Repo provides auth_methods persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new auth method repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByOAuth returns the auth method for the given OAuth provider + provider ID.
func (r *Repo) GetByOAuth(ctx context.Context, method domain.AuthMethodType, providerID string) (*domain.AuthMethod, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx,
		`SELECT `+columns+` FROM auth_methods WHERE method = $1 AND provider_id = $2`,
		string(method), providerID)

	am, err := scan(row)
	if err != nil {
		return nil, mapError(err, "auth_method")
	}
	return am, nil
}

// GetByUserAndMethod returns the auth method for a user with the given method type.
func (r *Repo) GetByUserAndMethod(ctx context.Context, userID uuid.UUID, method domain.AuthMethodType) (*domain.AuthMethod, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx,
		`SELECT `+columns+` FROM auth_methods WHERE user_id = $1 AND method = $2`,
		userID, string(method))

	am, err := scan(row)
	if err != nil {
		return nil, mapError(err, "auth_method")
	}
	return am, nil
}

// Create inserts a new auth method row.
func (r *Repo) Create(ctx context.Context, am *domain.AuthMethod) (*domain.AuthMethod, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx,
		`INSERT INTO auth_methods (user_id, method, password_hash, provider_id)
		 VALUES ($1, $2, $3, $4)
		 RETURNING `+columns,
		am.UserID, string(am.Method), am.PasswordHash, am.ProviderID)

	created, err := scan(row)
	if err != nil {
		return nil, mapError(err, "auth_method")
	}
	return created, nil
}

// ListByUser returns all auth methods for a user.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.AuthMethod, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx,
		`SELECT `+columns+` FROM auth_methods WHERE user_id = $1 ORDER BY created_at`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("auth_method list: %w", err)
	}
	defer rows.Close()

	var methods []domain.AuthMethod
	for rows.Next() {
		am, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("auth_method list scan: %w", err)
		}
		methods = append(methods, *am)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("auth_method list rows: %w", err)
	}
	return methods, nil
}

func scan(row pgx.Row) (*domain.AuthMethod, error) {
	var am domain.AuthMethod
	var method string
	err := row.Scan(&am.ID, &am.UserID, &method, &am.PasswordHash, &am.ProviderID, &am.CreatedAt)
	if err != nil {
		return nil, err
	}
	am.Method = domain.AuthMethodType(method)
	return &am, nil
}

// ---------------------------------------------------------------------------
// Error mapping
// ---------------------------------------------------------------------------

func mapError(err error, entity string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", entity, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", entity, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("%s: %w", entity, domain.ErrAlreadyExists)
		case "23503": // foreign_key_violation
			return fmt.Errorf("%s: %w", entity, domain.ErrNotFound)
		case "23514": // check_violation
			return fmt.Errorf("%s: %w", entity, domain.ErrValidation)
		}
	}

	return fmt.Errorf("%s: %w", entity, err)
}
