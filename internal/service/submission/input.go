package submission

import (
	"strings"

	"github.com/google/uuid"

	"github.com/inklet-app/inklet-backend/internal/config"
	"github.com/inklet-app/inklet-backend/internal/domain"
)

// SubmitInput carries a reader's submission. Tags arrive as the raw
// comma-separated string the form collects and are parsed during
// validation.
type SubmitInput struct {
	Type        domain.ContentType
	Title       string
	Content     string
	Excerpt     string
	AuthorName  string
	AuthorBio   *string
	CategoryID  *uuid.UUID
	Tags        string
	ReadingTime *int

	parsedTags []string
}

// Validate checks the input against the configured limits and applies
// defaults. Blog posts require an excerpt and get the default reading
// time when none is provided; poems carry neither field.
func (in *SubmitInput) Validate(cfg config.ContentConfig) error {
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

	in.parsedTags = domain.ParseTags(in.Tags)
	if len(in.parsedTags) > cfg.MaxTags {
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

// ReviewInput carries an admin's review decision.
type ReviewInput struct {
	Decision   domain.ReviewDecision
	AdminNotes *string
}

// Validate checks the review decision and notes.
func (in *ReviewInput) Validate() error {
	if !in.Decision.IsValid() {
		return domain.NewValidationError("decision", "must be approve or reject")
	}
	if in.AdminNotes != nil {
		trimmed := strings.TrimSpace(*in.AdminNotes)
		if trimmed == "" {
			in.AdminNotes = nil
		} else if len(trimmed) > 2000 {
			return domain.NewValidationError("admin_notes", "too long")
		} else {
			in.AdminNotes = &trimmed
		}
	}
	return nil
}
