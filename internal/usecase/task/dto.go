package task

import (
	"time"

	"github.com/google/uuid"
	domainTask "team-portal/internal/domain/task"
)

type CreateRequest struct {
	Task        string    `json:"task" validate:"required,max=255"`
	Description *string   `json:"description" validate:"omitempty,max=2000"`
	Status      string    `json:"status" validate:"required,task_status"`
	UserID      uuid.UUID `json:"userId" validate:"required"`
}

type TaskResponse struct {
	ID          uuid.UUID `json:"id"`
	Task        string    `json:"task"`
	Description *string   `json:"description"`
	Status      string    `json:"status"`
	UserID      uuid.UUID `json:"userId"`
	CreatedAt   time.Time `json:"createdAt"`
	UserName    string    `json:"userName,omitempty"`
	UserEmail   string    `json:"userEmail,omitempty"`
}

func ToTaskResponse(t *domainTask.TaskWithUser) *TaskResponse {
	return &TaskResponse{
		ID:          t.ID,
		Task:        t.Task.Task,
		Description: t.Description,
		Status:      t.Status,
		UserID:      t.UserID,
		CreatedAt:   t.CreatedAt,
		UserName:    t.UserName,
		UserEmail:   t.UserEmail,
	}
}
