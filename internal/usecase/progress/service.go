package progress

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	domainProgress "team-portal/internal/domain/progress"
	domainUser "team-portal/internal/domain/user"
	"team-portal/internal/logger"
	appErrors "team-portal/pkg/errors"
	"team-portal/pkg/utils"
)

type Service struct {
	progressRepo domainProgress.Repository
	userRepo     domainUser.Repository
}

func NewService(progressRepo domainProgress.Repository, userRepo domainUser.Repository) *Service {
	return &Service{
		progressRepo: progressRepo,
		userRepo:     userRepo,
	}
}

// Submit records a weekly progress entry. Members submit for
// themselves; admins may submit on a member's behalf. The target user
// id comes from the body and is never trusted without comparing it to
// the authenticated actor.
func (s *Service) Submit(ctx context.Context, actorID uuid.UUID, actorRole string, req *SubmitRequest) error {
	if err := utils.ValidateStruct(req); err != nil {
		return appErrors.NewAppError("VALIDATION_ERROR", "Missing required fields: projectName, userId, week, status", err)
	}

	if req.UserID != actorID && actorRole != domainUser.RoleAdmin {
		logger.Warn("Unauthorized progress submission",
			zap.String("actor_id", actorID.String()),
			zap.String("target_id", req.UserID.String()),
			zap.String("event", "progress_submit_forbidden"),
		)
		return appErrors.ErrForbidden
	}

	if _, err := s.userRepo.GetByID(ctx, req.UserID); err != nil {
		if errors.Is(err, domainUser.ErrUserNotFound) {
			return domainProgress.ErrInvalidUser
		}
		return err
	}

	entry := &domainProgress.Entry{
		ProjectName:        req.ProjectName,
		ProjectDescription: req.ProjectDescription,
		ProjectCompletion:  req.ProjectCompletion,
		UserID:             req.UserID,
		Week:               req.Week,
		Status:             req.Status,
		Completion:         req.Completion,
		Notes:              req.Notes,
	}

	if err := s.progressRepo.Create(ctx, entry); err != nil {
		return err
	}

	logger.Info("Progress submitted",
		zap.String("user_id", req.UserID.String()),
		zap.String("project", req.ProjectName),
		zap.String("week", req.Week),
		zap.String("event", "progress_submitted"),
	)
	return nil
}

// ListAll returns every entry with submitter details, newest first.
// Admin only; the routing layer enforces the role.
func (s *Service) ListAll(ctx context.Context) ([]*EntryResponse, error) {
	entries, err := s.progressRepo.GetAllWithUsers(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*EntryResponse, 0, len(entries))
	for _, e := range entries {
		responses = append(responses, ToEntryResponse(e))
	}
	return responses, nil
}
