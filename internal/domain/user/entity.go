package user

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"

	// StatusPending is the initial status of every self-registered
	// member; only an admin moves it forward. Admin signups start
	// approved. The transition is one-way.
	StatusPending  = "pending"
	StatusApproved = "approved"
)

// User is the root entity; every other record in the portal references
// a user by id.
type User struct {
	ID             uuid.UUID
	Email          string
	PasswordHashed string
	Name           string
	Role           string
	Status         string
	Skills         string
	LinkedinURL    *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// PasswordResetToken is the persisted single-use reset credential.
// Expiry is logical, checked at read time; tokens are deleted on use.
type PasswordResetToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Token     string
	ExpiresAt time.Time
	CreatedAt time.Time
}
