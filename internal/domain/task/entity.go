package task

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusOngoing   = "ongoing"
	StatusCompleted = "completed"
	StatusBlocked   = "blocked"
)

type Task struct {
	ID          uuid.UUID
	Task        string
	Description *string
	Status      string
	UserID      uuid.UUID
	CreatedAt   time.Time
}

type TaskWithUser struct {
	Task
	UserName  string
	UserEmail string
}
