package models

import (
	"time"

	"github.com/google/uuid"
)

// ResourceModel stores tags as a JSON-encoded text column.
type ResourceModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Type        string    `gorm:"type:varchar(100);not null"`
	Tags        string    `gorm:"type:text;not null"`
	Link        *string   `gorm:"type:varchar(1000)"`
	Description *string   `gorm:"type:text"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	User        UserModel `gorm:"foreignKey:UserID"`
	CreatedAt   time.Time `gorm:"not null;index"`
}

func (ResourceModel) TableName() string {
	return "resources"
}
