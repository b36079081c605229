package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Category groups content entities under an editor-chosen name.
// The slug is derived from the name and unique across categories.
type Category struct {
	ID          uuid.UUID
	Name        string
	Slug        string
	Description string
	CreatedAt   time.Time
}

// Slugify derives a URL-safe slug from a category name:
// lowercase, runs of non-alphanumeric characters collapse to a single
// hyphen, leading and trailing hyphens are trimmed.
func Slugify(name string) string {
	name = strings.ToLower(name)

	var b strings.Builder
	b.Grow(len(name))
	pendingHyphen := false
	for _, r := range name {
		alnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if !alnum {
			pendingHyphen = b.Len() > 0
			continue
		}
		if pendingHyphen {
			b.WriteByte('-')
			pendingHyphen = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
