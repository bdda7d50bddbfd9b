package user

import (
	"time"

	"github.com/google/uuid"
	domainUser "team-portal/internal/domain/user"
)

type SignupRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"name" validate:"required,min=2,max=255"`
	Skills   string `json:"skills" validate:"omitempty,max=1000"`
	Role     string `json:"role" validate:"omitempty,user_role"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Token    string `json:"token" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type UpdateProfileRequest struct {
	Name        string  `json:"name" validate:"required,min=2,max=255"`
	Skills      string  `json:"skills" validate:"required,max=1000"`
	LinkedinURL *string `json:"linkedinUrl" validate:"omitempty,url,max=500"`
}

type UserResponse struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	Name        string    `json:"name"`
	Role        string    `json:"role"`
	Status      string    `json:"status"`
	Skills      string    `json:"skills"`
	LinkedinURL *string   `json:"linkedinUrl"`
	CreatedAt   time.Time `json:"createdAt"`
}

// AuthResponse carries the signed session token alongside the user so
// non-cookie clients can replay it as a bearer header.
type AuthResponse struct {
	User  *UserResponse `json:"user"`
	Token string        `json:"token"`
}

func ToUserResponse(u *domainUser.User) *UserResponse {
	return &UserResponse{
		ID:          u.ID,
		Email:       u.Email,
		Name:        u.Name,
		Role:        u.Role,
		Status:      u.Status,
		Skills:      u.Skills,
		LinkedinURL: u.LinkedinURL,
		CreatedAt:   u.CreatedAt,
	}
}
