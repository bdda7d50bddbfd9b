package resource

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
	domainResource "team-portal/internal/domain/resource"
	domainUser "team-portal/internal/domain/user"
	"team-portal/internal/logger"
	appErrors "team-portal/pkg/errors"
	"team-portal/pkg/utils"
)

type Service struct {
	resourceRepo domainResource.Repository
}

func NewService(resourceRepo domainResource.Repository) *Service {
	return &Service{resourceRepo: resourceRepo}
}

// Create publishes a library resource under the actor's name. A
// resource needs a link, a description, or both.
func (s *Service) Create(ctx context.Context, actorID uuid.UUID, req *CreateRequest) (uuid.UUID, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return uuid.Nil, appErrors.NewAppError("VALIDATION_ERROR", "Title, type, tags, and either link or description are required", err)
	}

	if req.Link == nil && req.Description == nil {
		return uuid.Nil, appErrors.NewAppError("VALIDATION_ERROR", "Title, type, tags, and either link or description are required", nil)
	}

	if req.UserID != actorID {
		return uuid.Nil, appErrors.ErrForbidden
	}

	resource := &domainResource.Resource{
		Title:       req.Title,
		Type:        req.Type,
		Tags:        req.Tags,
		Link:        req.Link,
		Description: req.Description,
		UserID:      req.UserID,
	}

	if err := s.resourceRepo.Create(ctx, resource); err != nil {
		return uuid.Nil, err
	}

	logger.Info("Resource published",
		zap.String("resource_id", resource.ID.String()),
		zap.String("user_id", actorID.String()),
		zap.String("event", "resource_published"),
	)
	return resource.ID, nil
}

func (s *Service) List(ctx context.Context) ([]*ResourceResponse, error) {
	resources, err := s.resourceRepo.GetAllWithUsers(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*ResourceResponse, 0, len(resources))
	for _, r := range resources {
		responses = append(responses, ToResourceResponse(r))
	}
	return responses, nil
}

// Delete removes a resource. The owner may always delete their own;
// an admin may delete any.
func (s *Service) Delete(ctx context.Context, actorID uuid.UUID, actorRole string, resourceID uuid.UUID) error {
	resource, err := s.resourceRepo.GetByID(ctx, resourceID)
	if err != nil {
		return err
	}

	if resource.UserID != actorID && actorRole != domainUser.RoleAdmin {
		logger.Warn("Unauthorized resource deletion",
			zap.String("resource_id", resourceID.String()),
			zap.String("actor_id", actorID.String()),
			zap.String("event", "resource_delete_forbidden"),
		)
		return appErrors.ErrForbidden
	}

	if err := s.resourceRepo.Delete(ctx, resourceID); err != nil {
		return err
	}

	logger.Info("Resource deleted",
		zap.String("resource_id", resourceID.String()),
		zap.String("actor_id", actorID.String()),
		zap.String("event", "resource_deleted"),
	)
	return nil
}
