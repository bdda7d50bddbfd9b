package project

import (
	"time"

	"github.com/google/uuid"
)

type Project struct {
	ID          uuid.UUID
	Title       string
	Description string
	TechStack   string
	ImageURL    *string
	AdminID     uuid.UUID
	CreatedAt   time.Time
}

// Like is keyed by the (project, user) pair; a member likes a project
// at most once.
type Like struct {
	ProjectID uuid.UUID
	UserID    uuid.UUID
	CreatedAt time.Time
}

type Comment struct {
	ID        uuid.UUID
	ProjectID uuid.UUID
	UserID    uuid.UUID
	Content   string
	CreatedAt time.Time
}

type Liker struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

type CommentView struct {
	ID       uuid.UUID `json:"id"`
	Content  string    `json:"content"`
	UserName string    `json:"userName"`
}

// ProjectView is a project as seen by one member in the showcase.
type ProjectView struct {
	Project
	AdminName string
	HasLiked  bool
	Likes     []Liker
	Comments  []CommentView
}
