package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Content is a poem or blog post: the publicly readable, admin-curated
// output of the submission workflow. Poems and blog posts live in separate
// tables but share this shape; ReadingTime is set for blog posts only.
type Content struct {
	ID           uuid.UUID
	Type         ContentType
	Title        string
	Content      string
	Excerpt      string
	AuthorName   string
	AuthorBio    *string
	CategoryID   *uuid.UUID
	CategoryName *string
	Tags         []string
	Featured     bool
	Published    bool
	LikesCount   int
	ViewsCount   int
	ReadingTime  *int
	UserID       uuid.UUID
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FilterContent applies the admin dashboard's search box and status selector
// to an already-loaded list. Search matches a case-insensitive substring of
// title or author name; the status filter requires published, draft, or
// passes everything. Input order is preserved.
func FilterContent(items []Content, search string, status PublishFilter) []Content {
	search = strings.ToLower(search)

	out := make([]Content, 0, len(items))
	for _, item := range items {
		if search != "" {
			title := strings.ToLower(item.Title)
			author := strings.ToLower(item.AuthorName)
			if !strings.Contains(title, search) && !strings.Contains(author, search) {
				continue
			}
		}
		switch status {
		case PublishFilterPublished:
			if !item.Published {
				continue
			}
		case PublishFilterDraft:
			if item.Published {
				continue
			}
		}
		out = append(out, item)
	}
	return out
}
