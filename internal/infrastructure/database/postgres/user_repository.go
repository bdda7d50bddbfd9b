package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	domainUser "team-portal/internal/domain/user"
	"team-portal/internal/infrastructure/database/postgres/models"
)

// UserRepository implements the credential store over Postgres.
type UserRepository struct {
	db *DB
}

func NewUserRepository(db *DB) domainUser.Repository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u *domainUser.User) error {
	u.ID = uuid.New()
	u.CreatedAt = time.Now()
	u.UpdatedAt = time.Now()

	dbModel := toUserModel(u)
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		// The unique index on email serializes concurrent identical
		// signups; exactly one insert wins.
		if strings.Contains(strings.ToLower(err.Error()), "duplicate key") {
			return domainUser.ErrUserAlreadyExists
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domainUser.User, error) {
	var dbModel models.UserModel
	err := r.db.DB.WithContext(ctx).Where("email = ?", email).First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainUser.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return toUserEntity(&dbModel), nil
}

func (r *UserRepository) GetByID(ctx context.Context, userID uuid.UUID) (*domainUser.User, error) {
	var dbModel models.UserModel
	err := r.db.DB.WithContext(ctx).First(&dbModel, "id = ?", userID).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainUser.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return toUserEntity(&dbModel), nil
}

func (r *UserRepository) GetAll(ctx context.Context) ([]*domainUser.User, error) {
	var dbModels []models.UserModel
	if err := r.db.DB.WithContext(ctx).Order("created_at ASC").Find(&dbModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	users := make([]*domainUser.User, 0, len(dbModels))
	for i := range dbModels {
		users = append(users, toUserEntity(&dbModels[i]))
	}
	return users, nil
}

// UpdateProfile writes the editable profile fields in one statement so
// a concurrent deletion yields a clean not-found, never a half-applied
// update.
func (r *UserRepository) UpdateProfile(ctx context.Context, u *domainUser.User) error {
	result := r.db.DB.WithContext(ctx).Model(&models.UserModel{}).
		Where("id = ?", u.ID).
		Updates(map[string]interface{}{
			"name":         u.Name,
			"skills":       u.Skills,
			"linkedin_url": u.LinkedinURL,
			"updated_at":   time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainUser.ErrUserNotFound
	}
	return nil
}

// Approve flips pending to approved guarded by the current status, so
// two concurrent approvals cannot both report success.
func (r *UserRepository) Approve(ctx context.Context, userID uuid.UUID) error {
	result := r.db.DB.WithContext(ctx).Model(&models.UserModel{}).
		Where("id = ? AND status = ?", userID, domainUser.StatusPending).
		Updates(map[string]interface{}{
			"status":     domainUser.StatusApproved,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to approve user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		// Row missing or already approved; look again to say which.
		var dbModel models.UserModel
		err := r.db.DB.WithContext(ctx).First(&dbModel, "id = ?", userID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domainUser.ErrUserNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to approve user: %w", err)
		}
		return domainUser.ErrUserAlreadyApproved
	}
	return nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) error {
	result := r.db.DB.WithContext(ctx).Model(&models.UserModel{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"password_hashed": passwordHash,
			"updated_at":      time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update password: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainUser.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) CreatePasswordResetToken(ctx context.Context, token *domainUser.PasswordResetToken) error {
	token.ID = uuid.New()
	token.CreatedAt = time.Now()

	dbModel := &models.PasswordResetTokenModel{
		ID:        token.ID,
		UserID:    token.UserID,
		Token:     token.Token,
		ExpiresAt: token.ExpiresAt,
		CreatedAt: token.CreatedAt,
	}
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		return fmt.Errorf("failed to create reset token: %w", err)
	}
	return nil
}

func (r *UserRepository) GetValidPasswordResetToken(ctx context.Context, token string, now time.Time) (*domainUser.PasswordResetToken, error) {
	var dbModel models.PasswordResetTokenModel
	err := r.db.DB.WithContext(ctx).
		Where("token = ? AND expires_at > ?", token, now).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainUser.ErrResetTokenInvalid
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get reset token: %w", err)
	}

	return &domainUser.PasswordResetToken{
		ID:        dbModel.ID,
		UserID:    dbModel.UserID,
		Token:     dbModel.Token,
		ExpiresAt: dbModel.ExpiresAt,
		CreatedAt: dbModel.CreatedAt,
	}, nil
}

// ConsumePasswordResetToken deletes by unique token value; the
// RowsAffected guard means a replayed token loses the race cleanly.
func (r *UserRepository) ConsumePasswordResetToken(ctx context.Context, token string) error {
	result := r.db.DB.WithContext(ctx).
		Where("token = ?", token).
		Delete(&models.PasswordResetTokenModel{})

	if result.Error != nil {
		return fmt.Errorf("failed to consume reset token: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainUser.ErrResetTokenInvalid
	}
	return nil
}

func toUserModel(u *domainUser.User) *models.UserModel {
	return &models.UserModel{
		ID:             u.ID,
		Email:          u.Email,
		PasswordHashed: u.PasswordHashed,
		Name:           u.Name,
		Role:           u.Role,
		Status:         u.Status,
		Skills:         u.Skills,
		LinkedinURL:    u.LinkedinURL,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}

func toUserEntity(m *models.UserModel) *domainUser.User {
	return &domainUser.User{
		ID:             m.ID,
		Email:          m.Email,
		PasswordHashed: m.PasswordHashed,
		Name:           m.Name,
		Role:           m.Role,
		Status:         m.Status,
		Skills:         m.Skills,
		LinkedinURL:    m.LinkedinURL,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}
