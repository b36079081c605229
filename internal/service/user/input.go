package user

import (
	"net/url"

	"github.com/inklet-app/inklet-backend/internal/domain"
)

// UpdateProfileInput holds the mutable profile fields.
// Nil pointers clear the corresponding field.
type UpdateProfileInput struct {
	FullName *string
	Bio      *string
	Website  *string
}

// Validate validates the profile update input.
func (i UpdateProfileInput) Validate() error {
	var errs []domain.FieldError

	if i.FullName != nil && len(*i.FullName) > 100 {
		errs = append(errs, domain.FieldError{Field: "full_name", Message: "too long"})
	}
	if i.Bio != nil && len(*i.Bio) > 1000 {
		errs = append(errs, domain.FieldError{Field: "bio", Message: "too long"})
	}
	if i.Website != nil {
		if len(*i.Website) > 300 {
			errs = append(errs, domain.FieldError{Field: "website", Message: "too long"})
		} else if u, err := url.Parse(*i.Website); err != nil || (u.Scheme != "http" && u.Scheme != "https") {
			errs = append(errs, domain.FieldError{Field: "website", Message: "must be an http(s) URL"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
