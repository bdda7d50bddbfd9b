package project

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	domainProject "team-portal/internal/domain/project"
	"team-portal/internal/logger"
	appErrors "team-portal/pkg/errors"
	"team-portal/pkg/utils"
)

// ToggleResult distinguishes which way a like toggle went.
type ToggleResult int

const (
	Liked ToggleResult = iota
	Unliked
)

type Service struct {
	projectRepo domainProject.Repository
}

func NewService(projectRepo domainProject.Repository) *Service {
	return &Service{projectRepo: projectRepo}
}

// Create publishes a showcase project. The routing layer requires the
// admin role; the body's adminId must match the actor.
func (s *Service) Create(ctx context.Context, actorID uuid.UUID, req *CreateRequest) (uuid.UUID, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return uuid.Nil, appErrors.NewAppError("VALIDATION_ERROR", "Title, description, techStack, and adminId are required", err)
	}

	if req.AdminID != actorID {
		return uuid.Nil, appErrors.ErrForbidden
	}

	project := &domainProject.Project{
		Title:       req.Title,
		Description: req.Description,
		TechStack:   req.TechStack,
		ImageURL:    req.ImageURL,
		AdminID:     req.AdminID,
	}

	if err := s.projectRepo.Create(ctx, project); err != nil {
		return uuid.Nil, err
	}

	logger.Info("Project published",
		zap.String("project_id", project.ID.String()),
		zap.String("admin_id", actorID.String()),
		zap.String("event", "project_published"),
	)
	return project.ID, nil
}

// List returns the showcase personalized with the actor's like flags.
func (s *Service) List(ctx context.Context, actorID uuid.UUID) ([]*ProjectResponse, error) {
	projects, err := s.projectRepo.ListForUser(ctx, actorID)
	if err != nil {
		return nil, err
	}

	responses := make([]*ProjectResponse, 0, len(projects))
	for _, p := range projects {
		responses = append(responses, ToProjectResponse(p))
	}
	return responses, nil
}

// ToggleLike likes an unliked project and unlikes a liked one. A
// concurrent duplicate like resolves through the composite primary key
// and is reported as the toggle-off path losing, never a double row.
func (s *Service) ToggleLike(ctx context.Context, actorID uuid.UUID, req *LikeRequest) (ToggleResult, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return Liked, appErrors.NewAppError("VALIDATION_ERROR", "Project ID and user ID are required", err)
	}

	if req.UserID != actorID {
		return Liked, appErrors.ErrForbidden
	}

	if _, err := s.projectRepo.GetByID(ctx, req.ProjectID); err != nil {
		return Liked, err
	}

	liked, err := s.projectRepo.HasLiked(ctx, req.ProjectID, req.UserID)
	if err != nil {
		return Liked, err
	}

	if liked {
		if err := s.projectRepo.RemoveLike(ctx, req.ProjectID, req.UserID); err != nil {
			return Liked, err
		}
		logger.Info("Project unliked",
			zap.String("project_id", req.ProjectID.String()),
			zap.String("user_id", req.UserID.String()),
			zap.String("event", "project_unliked"),
		)
		return Unliked, nil
	}

	like := &domainProject.Like{
		ProjectID: req.ProjectID,
		UserID:    req.UserID,
	}
	if err := s.projectRepo.AddLike(ctx, like); err != nil {
		// Lost a race with an identical like; treat as toggled off next time.
		if errors.Is(err, domainProject.ErrAlreadyLiked) {
			return Liked, err
		}
		return Liked, err
	}

	logger.Info("Project liked",
		zap.String("project_id", req.ProjectID.String()),
		zap.String("user_id", req.UserID.String()),
		zap.String("event", "project_liked"),
	)
	return Liked, nil
}

// Comment adds a comment under the actor's name.
func (s *Service) Comment(ctx context.Context, actorID uuid.UUID, req *CommentRequest) error {
	if err := utils.ValidateStruct(req); err != nil {
		return appErrors.NewAppError("VALIDATION_ERROR", "Project ID, user ID, and content are required", err)
	}

	if req.UserID != actorID {
		return appErrors.ErrForbidden
	}

	if _, err := s.projectRepo.GetByID(ctx, req.ProjectID); err != nil {
		return err
	}

	comment := &domainProject.Comment{
		ProjectID: req.ProjectID,
		UserID:    req.UserID,
		Content:   req.Content,
	}

	if err := s.projectRepo.AddComment(ctx, comment); err != nil {
		return err
	}

	logger.Info("Project comment added",
		zap.String("project_id", req.ProjectID.String()),
		zap.String("user_id", req.UserID.String()),
		zap.String("event", "project_commented"),
	)
	return nil
}

// Delete removes a project and its likes and comments. Admin only; the
// routing layer enforces the role.
func (s *Service) Delete(ctx context.Context, actorID, projectID uuid.UUID) error {
	if _, err := s.projectRepo.GetByID(ctx, projectID); err != nil {
		return err
	}

	if err := s.projectRepo.Delete(ctx, projectID); err != nil {
		return err
	}

	logger.Info("Project deleted",
		zap.String("project_id", projectID.String()),
		zap.String("admin_id", actorID.String()),
		zap.String("event", "project_deleted"),
	)
	return nil
}
