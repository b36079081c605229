// Package content implements the published-content repository using
// PostgreSQL. Poems and blog posts share one row shape and live in two
// separate tables; every method dispatches on domain.ContentType.
package content

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

// Repo provides poem and blog post persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new content repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

func tableFor(t domain.ContentType) string {
	if t == domain.ContentTypeBlogPost {
		return "blog_posts"
	}
	return "poems"
}

func selectContent(table string) sq.SelectBuilder {
	return postgres.Builder.
		Select(
			"c.id", "c.title", "c.content", "c.excerpt",
			"c.author_name", "c.author_bio",
			"c.category_id", "cat.name AS category_name",
			"c.tags", "c.featured", "c.published",
			"c.likes_count", "c.views_count", "c.reading_time",
			"c.user_id", "c.created_at", "c.updated_at",
		).
		From(table + " c").
		LeftJoin("categories cat ON cat.id = c.category_id")
}

// List returns content of one type with the category name joined in,
// newest first. When onlyPublished is true, drafts are excluded.
func (r *Repo) List(ctx context.Context, contentType domain.ContentType, onlyPublished bool) ([]domain.Content, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	builder := selectContent(tableFor(contentType)).
		OrderBy("c.created_at DESC")
	if onlyPublished {
		builder = builder.Where(sq.Eq{"c.published": true})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s list build: %w", contentType, err)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s list: %w", contentType, err)
	}
	defer rows.Close()

	var items []domain.Content
	for rows.Next() {
		c, err := scanContent(rows, contentType)
		if err != nil {
			return nil, fmt.Errorf("%s list scan: %w", contentType, err)
		}
		items = append(items, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s list rows: %w", contentType, err)
	}
	return items, nil
}

// GetByID returns one content item by primary key.
func (r *Repo) GetByID(ctx context.Context, contentType domain.ContentType, id uuid.UUID) (*domain.Content, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := selectContent(tableFor(contentType)).
		Where(sq.Eq{"c.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s get build: %w", contentType, err)
	}

	c, err := scanContent(q.QueryRow(ctx, query, args...), contentType)
	if err != nil {
		return nil, mapError(err, string(contentType), id)
	}
	return c, nil
}

// Create inserts a new content item and returns it with the generated ID
// and timestamps. The category name is not resolved here.
func (r *Repo) Create(ctx context.Context, c *domain.Content) (*domain.Content, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := postgres.Builder.
		Insert(tableFor(c.Type)).
		Columns("title", "content", "excerpt", "author_name", "author_bio",
			"category_id", "tags", "featured", "published", "reading_time", "user_id").
		Values(c.Title, c.Content, c.Excerpt, c.AuthorName, c.AuthorBio,
			c.CategoryID, c.Tags, c.Featured, c.Published, c.ReadingTime, c.UserID).
		Suffix(`RETURNING id, created_at, updated_at`).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s create build: %w", c.Type, err)
	}

	created := *c
	err = q.QueryRow(ctx, query, args...).
		Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return nil, mapError(err, string(c.Type), uuid.Nil)
	}
	return &created, nil
}

// SetPublished flips the published flag. Idempotent.
func (r *Repo) SetPublished(ctx context.Context, contentType domain.ContentType, id uuid.UUID, published bool) error {
	return r.setFlag(ctx, contentType, id, "published", published)
}

// SetFeatured flips the featured flag. Idempotent.
func (r *Repo) SetFeatured(ctx context.Context, contentType domain.ContentType, id uuid.UUID, featured bool) error {
	return r.setFlag(ctx, contentType, id, "featured", featured)
}

func (r *Repo) setFlag(ctx context.Context, contentType domain.ContentType, id uuid.UUID, column string, value bool) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := postgres.Builder.
		Update(tableFor(contentType)).
		Set(column, value).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s update build: %w", contentType, err)
	}

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return mapError(err, string(contentType), id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %s: %w", contentType, id, domain.ErrNotFound)
	}
	return nil
}

// IncrementViews bumps the view counter by one.
func (r *Repo) IncrementViews(ctx context.Context, contentType domain.ContentType, id uuid.UUID) error {
	return r.increment(ctx, contentType, id, "views_count")
}

// IncrementLikes bumps the like counter by one.
func (r *Repo) IncrementLikes(ctx context.Context, contentType domain.ContentType, id uuid.UUID) error {
	return r.increment(ctx, contentType, id, "likes_count")
}

func (r *Repo) increment(ctx context.Context, contentType domain.ContentType, id uuid.UUID, column string) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx,
		fmt.Sprintf(`UPDATE %s SET %s = %s + 1 WHERE id = $1`, tableFor(contentType), column, column),
		id)
	if err != nil {
		return mapError(err, string(contentType), id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %s: %w", contentType, id, domain.ErrNotFound)
	}
	return nil
}

// Delete removes a content item.
func (r *Repo) Delete(ctx context.Context, contentType domain.ContentType, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx,
		fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, tableFor(contentType)), id)
	if err != nil {
		return mapError(err, string(contentType), id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %s: %w", contentType, id, domain.ErrNotFound)
	}
	return nil
}

// Stats returns total, published and featured counts for one content type.
func (r *Repo) Stats(ctx context.Context, contentType domain.ContentType) (total, published, featured int, err error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	err = q.QueryRow(ctx,
		fmt.Sprintf(`SELECT count(*),
			count(*) FILTER (WHERE published),
			count(*) FILTER (WHERE featured)
		 FROM %s`, tableFor(contentType))).
		Scan(&total, &published, &featured)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("%s stats: %w", contentType, err)
	}
	return total, published, featured, nil
}

func scanContent(row pgx.Row, contentType domain.ContentType) (*domain.Content, error) {
	var c domain.Content
	err := row.Scan(
		&c.ID, &c.Title, &c.Content, &c.Excerpt,
		&c.AuthorName, &c.AuthorBio,
		&c.CategoryID, &c.CategoryName,
		&c.Tags, &c.Featured, &c.Published,
		&c.LikesCount, &c.ViewsCount, &c.ReadingTime,
		&c.UserID, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	c.Type = contentType
	return &c, nil
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
