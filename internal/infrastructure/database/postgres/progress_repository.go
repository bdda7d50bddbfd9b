package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	domainProgress "team-portal/internal/domain/progress"
	"team-portal/internal/infrastructure/database/postgres/models"
)

type ProgressRepository struct {
	db *DB
}

func NewProgressRepository(db *DB) domainProgress.Repository {
	return &ProgressRepository{db: db}
}

func (r *ProgressRepository) Create(ctx context.Context, e *domainProgress.Entry) error {
	e.ID = uuid.New()
	e.CreatedAt = time.Now()

	dbModel := &models.ProgressModel{
		ID:                 e.ID,
		ProjectName:        e.ProjectName,
		ProjectDescription: e.ProjectDescription,
		ProjectCompletion:  e.ProjectCompletion,
		UserID:             e.UserID,
		Week:               e.Week,
		Status:             e.Status,
		Completion:         e.Completion,
		Notes:              e.Notes,
		CreatedAt:          e.CreatedAt,
	}
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		return fmt.Errorf("failed to create progress entry: %w", err)
	}
	return nil
}

func (r *ProgressRepository) GetAllWithUsers(ctx context.Context) ([]*domainProgress.EntryWithUser, error) {
	type row struct {
		models.ProgressModel
		UserName  string
		UserEmail string
	}

	var rows []row
	err := r.db.DB.WithContext(ctx).
		Model(&models.ProgressModel{}).
		Select("progress.*, users.name AS user_name, users.email AS user_email").
		Joins("JOIN users ON users.id = progress.user_id").
		Order("progress.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list progress entries: %w", err)
	}

	entries := make([]*domainProgress.EntryWithUser, 0, len(rows))
	for i := range rows {
		entries = append(entries, &domainProgress.EntryWithUser{
			Entry: domainProgress.Entry{
				ID:                 rows[i].ID,
				ProjectName:        rows[i].ProjectName,
				ProjectDescription: rows[i].ProjectDescription,
				ProjectCompletion:  rows[i].ProjectCompletion,
				UserID:             rows[i].UserID,
				Week:               rows[i].Week,
				Status:             rows[i].Status,
				Completion:         rows[i].Completion,
				Notes:              rows[i].Notes,
				CreatedAt:          rows[i].CreatedAt,
			},
			UserName:  rows[i].UserName,
			UserEmail: rows[i].UserEmail,
		})
	}
	return entries, nil
}
