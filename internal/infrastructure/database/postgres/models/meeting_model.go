package models

import (
	"time"

	"github.com/google/uuid"
)

type MeetingModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Time        string    `gorm:"type:varchar(100);not null"`
	Description *string   `gorm:"type:text"`
	AdminID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Admin       UserModel `gorm:"foreignKey:AdminID"`
	CreatedAt   time.Time `gorm:"not null"`
}

func (MeetingModel) TableName() string {
	return "meetings"
}

// MeetingAcceptanceModel keys on the (meeting, user) pair so a repeated
// acceptance fails at the store even under concurrent requests.
type MeetingAcceptanceModel struct {
	MeetingID  uuid.UUID    `gorm:"type:uuid;primaryKey"`
	Meeting    MeetingModel `gorm:"foreignKey:MeetingID;constraint:OnDelete:CASCADE"`
	UserID     uuid.UUID    `gorm:"type:uuid;primaryKey"`
	User       UserModel    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	AcceptedAt time.Time    `gorm:"not null"`
}

func (MeetingAcceptanceModel) TableName() string {
	return "meeting_acceptances"
}
