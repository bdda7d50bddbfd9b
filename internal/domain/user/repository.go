package user

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Repository defines the credential store. All operations are point
// lookups or writes keyed by unique indices; uniqueness of email and
// reset-token value is enforced by the store, not the caller.
type Repository interface {
	Create(ctx context.Context, user *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, userID uuid.UUID) (*User, error)
	GetAll(ctx context.Context) ([]*User, error)

	// UpdateProfile writes name, skills and linkedin URL in a single
	// statement; a vanished user surfaces as ErrUserNotFound.
	UpdateProfile(ctx context.Context, user *User) error

	// Approve performs the pending->approved transition atomically and
	// reports ErrUserAlreadyApproved when the row was not pending.
	Approve(ctx context.Context, userID uuid.UUID) error

	UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) error

	CreatePasswordResetToken(ctx context.Context, token *PasswordResetToken) error
	GetValidPasswordResetToken(ctx context.Context, token string, now time.Time) (*PasswordResetToken, error)

	// ConsumePasswordResetToken deletes the token, failing with
	// ErrResetTokenInvalid if it was already consumed. Exactly one
	// concurrent consumer wins.
	ConsumePasswordResetToken(ctx context.Context, token string) error
}
