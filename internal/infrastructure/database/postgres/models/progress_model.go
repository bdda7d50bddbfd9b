package models

import (
	"time"

	"github.com/google/uuid"
)

type ProgressModel struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ProjectName        string    `gorm:"type:varchar(255);not null"`
	ProjectDescription *string   `gorm:"type:text"`
	ProjectCompletion  int       `gorm:"not null"`
	UserID             uuid.UUID `gorm:"type:uuid;not null;index"`
	User               UserModel `gorm:"foreignKey:UserID"`
	Week               string    `gorm:"type:varchar(100);not null"`
	Status             string    `gorm:"type:varchar(100);not null"`
	Completion         int       `gorm:"not null"`
	Notes              *string   `gorm:"type:text"`
	CreatedAt          time.Time `gorm:"not null;index"`
}

func (ProgressModel) TableName() string {
	return "progress"
}
