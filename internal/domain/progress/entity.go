package progress

import (
	"time"

	"github.com/google/uuid"
)

// Entry is one weekly progress report for a project.
type Entry struct {
	ID                 uuid.UUID
	ProjectName        string
	ProjectDescription *string
	ProjectCompletion  int
	UserID             uuid.UUID
	Week               string
	Status             string
	Completion         int
	Notes              *string
	CreatedAt          time.Time
}

// EntryWithUser joins an entry with its submitter for admin review.
type EntryWithUser struct {
	Entry
	UserName  string
	UserEmail string
}
