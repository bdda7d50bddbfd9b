package resource

import (
	"time"

	"github.com/google/uuid"
	domainResource "team-portal/internal/domain/resource"
)

type CreateRequest struct {
	Title       string    `json:"title" validate:"required,max=255"`
	Type        string    `json:"type" validate:"required,max=100"`
	Tags        []string  `json:"tags" validate:"required,min=1,dive,max=100"`
	Link        *string   `json:"link" validate:"omitempty,url,max=1000"`
	Description *string   `json:"description" validate:"omitempty,max=2000"`
	UserID      uuid.UUID `json:"userId" validate:"required"`
}

type ResourceResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Type        string    `json:"type"`
	Tags        []string  `json:"tags"`
	Link        *string   `json:"link"`
	Description *string   `json:"description"`
	UserID      uuid.UUID `json:"userId"`
	CreatedAt   time.Time `json:"createdAt"`
	UserName    string    `json:"userName,omitempty"`
}

func ToResourceResponse(r *domainResource.ResourceWithUser) *ResourceResponse {
	tags := r.Tags
	if tags == nil {
		tags = []string{}
	}

	return &ResourceResponse{
		ID:          r.ID,
		Title:       r.Title,
		Type:        r.Type,
		Tags:        tags,
		Link:        r.Link,
		Description: r.Description,
		UserID:      r.UserID,
		CreatedAt:   r.CreatedAt,
		UserName:    r.UserName,
	}
}
