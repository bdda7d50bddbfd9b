package resource

import (
	"time"

	"github.com/google/uuid"
)

// Resource is a shared library entry: a link, a note, or both.
type Resource struct {
	ID          uuid.UUID
	Title       string
	Type        string
	Tags        []string
	Link        *string
	Description *string
	UserID      uuid.UUID
	CreatedAt   time.Time
}

type ResourceWithUser struct {
	Resource
	UserName string
}
