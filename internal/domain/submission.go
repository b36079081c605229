package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Submission is a user-authored piece awaiting admin moderation.
// Immutable once created except for Status, AdminNotes, and ReviewedAt,
// which only a review sets.
type Submission struct {
	ID          uuid.UUID
	Type        ContentType
	Title       string
	Content     string
	Excerpt     *string
	AuthorName  string
	AuthorBio   *string
	CategoryID  *uuid.UUID
	Tags        []string
	ReadingTime *int
	UserID      uuid.UUID
	Status      SubmissionStatus
	AdminNotes  *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	ReviewedAt  *time.Time
}

// CanReview reports whether the submission may still be reviewed.
// Approved and rejected are terminal.
func (s *Submission) CanReview() bool {
	return s.Status == SubmissionStatusPending
}

// Materialize converts an approved submission into a draft content entity.
// The caller assigns the ID and timestamps.
func (s *Submission) Materialize() Content {
	c := Content{
		Type:        s.Type,
		Title:       s.Title,
		Content:     s.Content,
		AuthorName:  s.AuthorName,
		AuthorBio:   s.AuthorBio,
		CategoryID:  s.CategoryID,
		Tags:        s.Tags,
		Featured:    false,
		Published:   false,
		ReadingTime: s.ReadingTime,
		UserID:      s.UserID,
	}
	if s.Excerpt != nil {
		c.Excerpt = *s.Excerpt
	}
	return c
}

// ParseTags derives a tag list from a comma-separated input: entries are
// trimmed and empties dropped, order preserved, duplicates kept.
func ParseTags(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		tags = append(tags, p)
	}
	if len(tags) == 0 {
		return nil
	}
	return tags
}
