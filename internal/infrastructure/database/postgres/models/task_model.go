package models

import (
	"time"

	"github.com/google/uuid"
)

type TaskModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Task        string    `gorm:"type:varchar(255);not null"`
	Description *string   `gorm:"type:text"`
	Status      string    `gorm:"type:varchar(50);not null"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	User        UserModel `gorm:"foreignKey:UserID"`
	CreatedAt   time.Time `gorm:"not null;index"`
}

func (TaskModel) TableName() string {
	return "tasks"
}
