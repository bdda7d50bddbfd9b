package meeting

import (
	"time"

	"github.com/google/uuid"
	domainMeeting "team-portal/internal/domain/meeting"
)

type CreateRequest struct {
	Title       string    `json:"title" validate:"required,max=255"`
	Time        string    `json:"time" validate:"required,max=100"`
	Description *string   `json:"description" validate:"omitempty,max=2000"`
	AdminID     uuid.UUID `json:"adminId" validate:"required"`
}

type AcceptRequest struct {
	MeetingID uuid.UUID `json:"meetingId" validate:"required"`
	UserID    uuid.UUID `json:"userId" validate:"required"`
}

type MeetingResponse struct {
	ID            uuid.UUID               `json:"id"`
	Title         string                  `json:"title"`
	Time          string                  `json:"time"`
	Description   *string                 `json:"description"`
	CreatedAt     time.Time               `json:"createdAt"`
	AdminName     string                  `json:"adminName"`
	HasAccepted   bool                    `json:"hasAccepted"`
	AcceptedUsers []domainMeeting.Attendee `json:"acceptedUsers"`
}

func ToMeetingResponse(m *domainMeeting.MeetingView) *MeetingResponse {
	accepted := m.AcceptedUsers
	if accepted == nil {
		accepted = []domainMeeting.Attendee{}
	}

	return &MeetingResponse{
		ID:            m.ID,
		Title:         m.Title,
		Time:          m.Time,
		Description:   m.Description,
		CreatedAt:     m.CreatedAt,
		AdminName:     m.AdminName,
		HasAccepted:   m.HasAccepted,
		AcceptedUsers: accepted,
	}
}
