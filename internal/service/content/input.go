package content

import (
	"strings"

	"github.com/google/uuid"

	"github.com/inklet-app/inklet-backend/internal/config"
	"github.com/inklet-app/inklet-backend/internal/domain"
)

// ListInput narrows a content listing. Category filters by slug; Search and
// Status are honored for admin callers only.
type ListInput struct {
	Category string
	Search   string
	Status   domain.PublishFilter
}

// Validate checks the listing filters.
func (in *ListInput) Validate() error {
	if in.Status == "" {
		in.Status = domain.PublishFilterAll
	}
	if !in.Status.IsValid() {
		return domain.NewValidationError("status", "must be all, published, or draft")
	}
	return nil
}

// CreateInput carries a new content entity authored directly by an admin.
// The entity is always created as an unpublished draft.
type CreateInput struct {
	Type        domain.ContentType
	Title       string
	Content     string
	Excerpt     string
	AuthorName  string
	AuthorBio   *string
	CategoryID  *uuid.UUID
	Tags        []string
	ReadingTime *int
}

// Validate checks the input against the configured content limits and
// applies defaults. Blog posts require an excerpt and get a default
// reading time when none is given; poems carry neither.
func (in *CreateInput) Validate(cfg config.ContentConfig) error {
	var fields []domain.FieldError

	if !in.Type.IsValid() {
		fields = append(fields, domain.FieldError{Field: "type", Message: "must be poem or blog_post"})
	}

	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		fields = append(fields, domain.FieldError{Field: "title", Message: "required"})
	} else if len(in.Title) > cfg.MaxTitleLen {
		fields = append(fields, domain.FieldError{Field: "title", Message: "too long"})
	}

	if strings.TrimSpace(in.Content) == "" {
		fields = append(fields, domain.FieldError{Field: "content", Message: "required"})
	} else if len(in.Content) > cfg.MaxBodyLen {
		fields = append(fields, domain.FieldError{Field: "content", Message: "too long"})
	}

	in.AuthorName = strings.TrimSpace(in.AuthorName)
	if in.AuthorName == "" {
		fields = append(fields, domain.FieldError{Field: "author_name", Message: "required"})
	} else if len(in.AuthorName) > 100 {
		fields = append(fields, domain.FieldError{Field: "author_name", Message: "too long"})
	}

	in.Excerpt = strings.TrimSpace(in.Excerpt)
	if in.Type == domain.ContentTypeBlogPost {
		if in.Excerpt == "" {
			fields = append(fields, domain.FieldError{Field: "excerpt", Message: "required for blog posts"})
		} else if len(in.Excerpt) > cfg.MaxExcerptLen {
			fields = append(fields, domain.FieldError{Field: "excerpt", Message: "too long"})
		}
	}

	if len(in.Tags) > cfg.MaxTags {
		fields = append(fields, domain.FieldError{Field: "tags", Message: "too many tags"})
	}

	switch in.Type {
	case domain.ContentTypeBlogPost:
		if in.ReadingTime == nil {
			rt := cfg.DefaultReadingTime
			in.ReadingTime = &rt
		} else if *in.ReadingTime < 1 || *in.ReadingTime > 60 {
			fields = append(fields, domain.FieldError{Field: "reading_time", Message: "must be between 1 and 60"})
		}
	case domain.ContentTypePoem:
		in.ReadingTime = nil
	}

	if len(fields) > 0 {
		return domain.NewValidationErrors(fields)
	}
	return nil
}
