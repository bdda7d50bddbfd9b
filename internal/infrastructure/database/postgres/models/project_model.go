package models

import (
	"time"

	"github.com/google/uuid"
)

type ProjectModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text;not null"`
	TechStack   string    `gorm:"type:text;not null"`
	ImageURL    *string   `gorm:"type:varchar(1000)"`
	AdminID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Admin       UserModel `gorm:"foreignKey:AdminID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time `gorm:"not null;index"`
}

func (ProjectModel) TableName() string {
	return "projects"
}

// ProjectLikeModel keys on the (project, user) pair; at most one like
// per member per project, enforced by the store.
type ProjectLikeModel struct {
	ProjectID uuid.UUID    `gorm:"type:uuid;primaryKey"`
	Project   ProjectModel `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	UserID    uuid.UUID    `gorm:"type:uuid;primaryKey"`
	User      UserModel    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time    `gorm:"not null"`
}

func (ProjectLikeModel) TableName() string {
	return "project_likes"
}

type ProjectCommentModel struct {
	ID        uuid.UUID    `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ProjectID uuid.UUID    `gorm:"type:uuid;not null;index"`
	Project   ProjectModel `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	UserID    uuid.UUID    `gorm:"type:uuid;not null;index"`
	User      UserModel    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Content   string       `gorm:"type:text;not null"`
	CreatedAt time.Time    `gorm:"not null"`
}

func (ProjectCommentModel) TableName() string {
	return "project_comments"
}
