package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"team-portal/internal/config"
	domainUser "team-portal/internal/domain/user"
	"team-portal/internal/logger"
	appErrors "team-portal/pkg/errors"
	"team-portal/pkg/utils"
)

const resetTokenTTL = 1 * time.Hour

// Service implements the signup/login/approval/reset use cases.
type Service struct {
	userRepo domainUser.Repository
	config   *config.Config
}

func NewService(userRepo domainUser.Repository, cfg *config.Config) *Service {
	return &Service{
		userRepo: userRepo,
		config:   cfg,
	}
}

// Signup registers a new member. Self-registered users start pending;
// admins start approved. A duplicate email is a conflict regardless of
// how the race with a concurrent identical signup resolves.
func (s *Service) Signup(ctx context.Context, req *SignupRequest) (*UserResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Email, password, and name are required", err)
	}

	role := req.Role
	if role == "" {
		role = domainUser.RoleUser
	}

	status := domainUser.StatusPending
	if role == domainUser.RoleAdmin {
		status = domainUser.StatusApproved
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domainUser.User{
		Email:          req.Email,
		PasswordHashed: hashedPassword,
		Name:           req.Name,
		Role:           role,
		Status:         status,
		Skills:         req.Skills,
	}

	// The unique index on email is the real guard; the repository
	// translates a duplicate-key failure into ErrUserAlreadyExists.
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domainUser.ErrUserAlreadyExists) {
			logger.Warn("Signup attempt with existing email",
				zap.String("email", req.Email),
				zap.String("event", "signup_duplicate_email"),
			)
		}
		return nil, err
	}

	logger.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email),
		zap.String("role", user.Role),
		zap.String("status", user.Status),
		zap.String("event", "user_registered"),
	)

	return ToUserResponse(user), nil
}

// Login verifies credentials and mints a session token. Unknown email
// and wrong password fail with the same generic error so the response
// never reveals whether an account exists. Pending members may log in;
// approval gates admin surfaces, not authentication.
func (s *Service) Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Email and password are required", err)
	}

	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, domainUser.ErrUserNotFound) {
			return nil, appErrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !utils.CheckPassword(user.PasswordHashed, req.Password) {
		logger.Warn("Login failed",
			zap.String("email", req.Email),
			zap.String("event", "login_failed"),
		)
		return nil, appErrors.ErrInvalidCredentials
	}

	token, err := utils.GenerateSessionToken(
		user.ID,
		user.Email,
		user.Name,
		user.Role,
		s.config.JWT.Secret,
		s.config.JWT.ExpiryHours,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to generate session token: %w", err)
	}

	logger.Info("Login successful",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email),
		zap.String("event", "login_success"),
	)

	return &AuthResponse{
		User:  ToUserResponse(user),
		Token: token,
	}, nil
}

// GetUser resolves the authenticated identity back to its row; used by
// the verify/check endpoints to detect a deleted account behind a
// still-valid token.
func (s *Service) GetUser(ctx context.Context, userID uuid.UUID) (*UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return ToUserResponse(user), nil
}

func (s *Service) ListUsers(ctx context.Context) ([]*UserResponse, error) {
	users, err := s.userRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, ToUserResponse(u))
	}
	return responses, nil
}

// Approve moves a pending member to approved. The transition is
// one-way; approving an approved user is a conflict, not a no-op.
func (s *Service) Approve(ctx context.Context, targetID uuid.UUID) error {
	if err := s.userRepo.Approve(ctx, targetID); err != nil {
		return err
	}

	logger.Info("User approved",
		zap.String("user_id", targetID.String()),
		zap.String("event", "user_approved"),
	)
	return nil
}

// UpdateProfile is strictly self-service: not even an admin may edit
// another member's profile.
func (s *Service) UpdateProfile(ctx context.Context, actorID, targetID uuid.UUID, req *UpdateProfileRequest) (*UserResponse, error) {
	if actorID != targetID {
		return nil, appErrors.ErrForbidden
	}

	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Name and skills are required", err)
	}

	user := &domainUser.User{
		ID:          targetID,
		Name:        req.Name,
		Skills:      req.Skills,
		LinkedinURL: req.LinkedinURL,
	}

	if err := s.userRepo.UpdateProfile(ctx, user); err != nil {
		return nil, err
	}

	updated, err := s.userRepo.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	logger.Info("Profile updated",
		zap.String("user_id", targetID.String()),
		zap.String("event", "profile_updated"),
	)

	return ToUserResponse(updated), nil
}

// ForgotPassword issues a persisted single-use reset token. An unknown
// email is not an error: the caller always gets the same answer so the
// endpoint cannot be used to enumerate accounts.
func (s *Service) ForgotPassword(ctx context.Context, req *ForgotPasswordRequest) error {
	if err := utils.ValidateStruct(req); err != nil {
		return appErrors.NewAppError("VALIDATION_ERROR", "Email is required", err)
	}

	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, domainUser.ErrUserNotFound) {
			logger.Info("Password reset requested for unknown email",
				zap.String("event", "password_reset_unknown_email"),
			)
			return nil
		}
		return fmt.Errorf("failed to retrieve user: %w", err)
	}

	resetToken := &domainUser.PasswordResetToken{
		UserID:    user.ID,
		Token:     utils.GenerateResetToken(),
		ExpiresAt: time.Now().Add(resetTokenTTL),
	}

	if err := s.userRepo.CreatePasswordResetToken(ctx, resetToken); err != nil {
		return fmt.Errorf("failed to create reset token: %w", err)
	}

	// TODO: deliver the link by email once an SMTP relay is provisioned;
	// until then the link is only surfaced in the server log.
	logger.Info("Password reset link issued",
		zap.String("user_id", user.ID.String()),
		zap.String("reset_link", fmt.Sprintf("%s/reset-password/%s", s.config.Server.FrontendBaseURL, resetToken.Token)),
		zap.String("event", "password_reset_issued"),
	)

	return nil
}

// ResetPassword redeems a reset token. The token is consumed before the
// password write, so a replayed token loses even when two requests race.
func (s *Service) ResetPassword(ctx context.Context, req *ResetPasswordRequest) error {
	if err := utils.ValidateStruct(req); err != nil {
		return appErrors.NewAppError("VALIDATION_ERROR", "Token and new password are required", err)
	}

	resetToken, err := s.userRepo.GetValidPasswordResetToken(ctx, req.Token, time.Now())
	if err != nil {
		return err
	}

	if err := s.userRepo.ConsumePasswordResetToken(ctx, req.Token); err != nil {
		return err
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.userRepo.UpdatePassword(ctx, resetToken.UserID, hashedPassword); err != nil {
		return err
	}

	logger.Info("Password reset completed",
		zap.String("user_id", resetToken.UserID.String()),
		zap.String("event", "password_reset_completed"),
	)

	return nil
}
