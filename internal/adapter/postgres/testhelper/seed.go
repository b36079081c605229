package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/inklet-app/inklet-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a regular user. Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	return seedUserWithRole(t, pool, domain.UserRoleUser)
}

// SeedAdmin creates a user with the admin role.
func SeedAdmin(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	return seedUserWithRole(t, pool, domain.UserRoleAdmin)
}

func seedUserWithRole(t *testing.T, pool *pgxpool.Pool, role domain.UserRole) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	fullName := "Test User " + suffix
	user := domain.User{
		Email:    "testuser-" + suffix + "@example.com",
		FullName: &fullName,
		Role:     role,
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO users (email, full_name, role)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at, updated_at`,
		user.Email, user.FullName, string(user.Role),
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert: %v", err)
	}

	return user
}

// SeedCategory creates a category with a unique name and slug.
func SeedCategory(t *testing.T, pool *pgxpool.Pool) domain.Category {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	cat := domain.Category{
		Name: "Category " + suffix,
		Slug: "category-" + suffix,
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO categories (name, slug) VALUES ($1, $2)
		 RETURNING id, created_at`,
		cat.Name, cat.Slug,
	).Scan(&cat.ID, &cat.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedCategory insert: %v", err)
	}

	return cat
}

// SeedSubmission creates a pending poem submission owned by userID.
func SeedSubmission(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID) domain.Submission {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	sub := domain.Submission{
		Type:       domain.ContentTypePoem,
		Title:      "Seeded Poem " + suffix,
		Content:    "Line one\nLine two",
		AuthorName: "Seed Author " + suffix,
		Tags:       []string{"seed"},
		Status:     domain.SubmissionStatusPending,
		UserID:     userID,
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO submissions (type, title, content, author_name, tags, user_id)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at, updated_at`,
		string(sub.Type), sub.Title, sub.Content, sub.AuthorName, sub.Tags, sub.UserID,
	).Scan(&sub.ID, &sub.CreatedAt, &sub.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedSubmission insert: %v", err)
	}

	return sub
}

// SeedContent creates a content row of the given type owned by userID.
// published controls whether the row is publicly visible.
func SeedContent(t *testing.T, pool *pgxpool.Pool, contentType domain.ContentType, userID uuid.UUID, published bool) domain.Content {
	t.Helper()
	ctx := context.Background()

	table := "poems"
	if contentType == domain.ContentTypeBlogPost {
		table = "blog_posts"
	}

	suffix := uniqueSuffix()
	c := domain.Content{
		Type:       contentType,
		Title:      "Seeded Title " + suffix,
		Content:    "Seeded body " + suffix,
		AuthorName: "Seed Author " + suffix,
		Tags:       []string{"seed"},
		Published:  published,
		UserID:     userID,
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO `+table+` (title, content, author_name, tags, published, user_id)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at, updated_at`,
		c.Title, c.Content, c.AuthorName, c.Tags, c.Published, c.UserID,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedContent insert: %v", err)
	}

	return c
}
