package meeting

import (
	"time"

	"github.com/google/uuid"
)

type Meeting struct {
	ID          uuid.UUID
	Title       string
	Time        string
	Description *string
	AdminID     uuid.UUID
	CreatedAt   time.Time
}

// Acceptance records one member's acceptance of a meeting. The
// (meeting, user) pair is the primary key, so a member accepts at most
// once.
type Acceptance struct {
	MeetingID  uuid.UUID
	UserID     uuid.UUID
	AcceptedAt time.Time
}

// Attendee is a user summary embedded in meeting listings.
type Attendee struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

// MeetingView is a meeting as seen by one member: creator name,
// whether that member accepted, and who else did.
type MeetingView struct {
	Meeting
	AdminName     string
	HasAccepted   bool
	AcceptedUsers []Attendee
}
