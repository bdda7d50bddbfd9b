package project

import (
	"time"

	"github.com/google/uuid"
	domainProject "team-portal/internal/domain/project"
)

type CreateRequest struct {
	Title       string    `json:"title" validate:"required,max=255"`
	Description string    `json:"description" validate:"required,max=5000"`
	TechStack   string    `json:"techStack" validate:"required,max=1000"`
	ImageURL    *string   `json:"imageUrl" validate:"omitempty,url,max=1000"`
	AdminID     uuid.UUID `json:"adminId" validate:"required"`
}

type LikeRequest struct {
	ProjectID uuid.UUID `json:"projectId" validate:"required"`
	UserID    uuid.UUID `json:"userId" validate:"required"`
}

type CommentRequest struct {
	ProjectID uuid.UUID `json:"projectId" validate:"required"`
	UserID    uuid.UUID `json:"userId" validate:"required"`
	Content   string    `json:"content" validate:"required,max=2000"`
}

type ProjectResponse struct {
	ID          uuid.UUID                   `json:"id"`
	Title       string                      `json:"title"`
	Description string                      `json:"description"`
	TechStack   string                      `json:"techStack"`
	ImageURL    *string                     `json:"imageUrl"`
	CreatedAt   time.Time                   `json:"createdAt"`
	AdminName   string                      `json:"adminName"`
	HasLiked    bool                        `json:"hasLiked"`
	Likes       []domainProject.Liker       `json:"likes"`
	Comments    []domainProject.CommentView `json:"comments"`
}

func ToProjectResponse(p *domainProject.ProjectView) *ProjectResponse {
	likes := p.Likes
	if likes == nil {
		likes = []domainProject.Liker{}
	}
	comments := p.Comments
	if comments == nil {
		comments = []domainProject.CommentView{}
	}

	return &ProjectResponse{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		TechStack:   p.TechStack,
		ImageURL:    p.ImageURL,
		CreatedAt:   p.CreatedAt,
		AdminName:   p.AdminName,
		HasLiked:    p.HasLiked,
		Likes:       likes,
		Comments:    comments,
	}
}
