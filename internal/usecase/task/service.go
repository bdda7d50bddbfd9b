package task

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	domainTask "team-portal/internal/domain/task"
	domainUser "team-portal/internal/domain/user"
	"team-portal/internal/logger"
	appErrors "team-portal/pkg/errors"
	"team-portal/pkg/utils"
)

type Service struct {
	taskRepo domainTask.Repository
	userRepo domainUser.Repository
}

func NewService(taskRepo domainTask.Repository, userRepo domainUser.Repository) *Service {
	return &Service{
		taskRepo: taskRepo,
		userRepo: userRepo,
	}
}

// Create records a task. Status is accepted case-insensitively and
// stored lowercase. Members create for themselves; admins may create on
// a member's behalf.
func (s *Service) Create(ctx context.Context, actorID uuid.UUID, actorRole string, req *CreateRequest) error {
	if err := utils.ValidateStruct(req); err != nil {
		return appErrors.NewAppError("VALIDATION_ERROR", "Missing required fields: task, status, userId", err)
	}

	status := strings.ToLower(req.Status)
	switch status {
	case domainTask.StatusOngoing, domainTask.StatusCompleted, domainTask.StatusBlocked:
	default:
		return domainTask.ErrInvalidStatus
	}

	if req.UserID != actorID && actorRole != domainUser.RoleAdmin {
		logger.Warn("Unauthorized task submission",
			zap.String("actor_id", actorID.String()),
			zap.String("target_id", req.UserID.String()),
			zap.String("event", "task_create_forbidden"),
		)
		return appErrors.ErrForbidden
	}

	if _, err := s.userRepo.GetByID(ctx, req.UserID); err != nil {
		if errors.Is(err, domainUser.ErrUserNotFound) {
			return domainTask.ErrInvalidUser
		}
		return err
	}

	task := &domainTask.Task{
		Task:        req.Task,
		Description: req.Description,
		Status:      status,
		UserID:      req.UserID,
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return err
	}

	logger.Info("Task created",
		zap.String("user_id", req.UserID.String()),
		zap.String("status", status),
		zap.String("event", "task_created"),
	)
	return nil
}

// ListAll returns every task with owner details. Admin only; the
// routing layer enforces the role.
func (s *Service) ListAll(ctx context.Context) ([]*TaskResponse, error) {
	tasks, err := s.taskRepo.GetAllWithUsers(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		responses = append(responses, ToTaskResponse(t))
	}
	return responses, nil
}
