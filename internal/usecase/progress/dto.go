package progress

import (
	"time"

	"github.com/google/uuid"
	domainProgress "team-portal/internal/domain/progress"
)

type SubmitRequest struct {
	ProjectName        string    `json:"projectName" validate:"required,max=255"`
	ProjectDescription *string   `json:"projectDescription" validate:"omitempty,max=2000"`
	ProjectCompletion  int       `json:"projectCompletion" validate:"gte=0,lte=100"`
	UserID             uuid.UUID `json:"userId" validate:"required"`
	Week               string    `json:"week" validate:"required,max=100"`
	Status             string    `json:"status" validate:"required,max=100"`
	Completion         int       `json:"completion" validate:"gte=0,lte=100"`
	Notes              *string   `json:"notes" validate:"omitempty,max=2000"`
}

type EntryResponse struct {
	ID                 uuid.UUID `json:"id"`
	ProjectName        string    `json:"projectName"`
	ProjectDescription *string   `json:"projectDescription"`
	ProjectCompletion  int       `json:"projectCompletion"`
	UserID             uuid.UUID `json:"userId"`
	Week               string    `json:"week"`
	Status             string    `json:"status"`
	Completion         int       `json:"completion"`
	Notes              *string   `json:"notes"`
	CreatedAt          time.Time `json:"createdAt"`
	UserName           string    `json:"userName,omitempty"`
	UserEmail          string    `json:"userEmail,omitempty"`
}

func ToEntryResponse(e *domainProgress.EntryWithUser) *EntryResponse {
	return &EntryResponse{
		ID:                 e.ID,
		ProjectName:        e.ProjectName,
		ProjectDescription: e.ProjectDescription,
		ProjectCompletion:  e.ProjectCompletion,
		UserID:             e.UserID,
		Week:               e.Week,
		Status:             e.Status,
		Completion:         e.Completion,
		Notes:              e.Notes,
		CreatedAt:          e.CreatedAt,
		UserName:           e.UserName,
		UserEmail:          e.UserEmail,
	}
}
