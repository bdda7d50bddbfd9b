package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	domainTask "team-portal/internal/domain/task"
	"team-portal/internal/infrastructure/database/postgres/models"
)

type TaskRepository struct {
	db *DB
}

func NewTaskRepository(db *DB) domainTask.Repository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, t *domainTask.Task) error {
	t.ID = uuid.New()
	t.CreatedAt = time.Now()

	dbModel := &models.TaskModel{
		ID:          t.ID,
		Task:        t.Task,
		Description: t.Description,
		Status:      t.Status,
		UserID:      t.UserID,
		CreatedAt:   t.CreatedAt,
	}
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}
	return nil
}

func (r *TaskRepository) GetAllWithUsers(ctx context.Context) ([]*domainTask.TaskWithUser, error) {
	type row struct {
		models.TaskModel
		UserName  string
		UserEmail string
	}

	var rows []row
	err := r.db.DB.WithContext(ctx).
		Model(&models.TaskModel{}).
		Select("tasks.*, users.name AS user_name, users.email AS user_email").
		Joins("JOIN users ON users.id = tasks.user_id").
		Order("tasks.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	tasks := make([]*domainTask.TaskWithUser, 0, len(rows))
	for i := range rows {
		tasks = append(tasks, &domainTask.TaskWithUser{
			Task: domainTask.Task{
				ID:          rows[i].ID,
				Task:        rows[i].TaskModel.Task,
				Description: rows[i].Description,
				Status:      rows[i].Status,
				UserID:      rows[i].UserID,
				CreatedAt:   rows[i].CreatedAt,
			},
			UserName:  rows[i].UserName,
			UserEmail: rows[i].UserEmail,
		})
	}
	return tasks, nil
}
