package meeting

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, meeting *Meeting) error
	GetByID(ctx context.Context, meetingID uuid.UUID) (*Meeting, error)

	// ListForUser returns all meetings ordered by time, with the given
	// user's acceptance flag and the accepted-user lists resolved.
	ListForUser(ctx context.Context, userID uuid.UUID) ([]*MeetingView, error)

	// Accept inserts an acceptance; the composite primary key makes a
	// repeat fail with ErrAlreadyAccepted even under concurrency.
	Accept(ctx context.Context, acceptance *Acceptance) error

	// Delete removes the meeting and, by cascade, its acceptances.
	Delete(ctx context.Context, meetingID uuid.UUID) error
}
