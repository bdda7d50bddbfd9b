package resource

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, resource *Resource) error
	GetByID(ctx context.Context, resourceID uuid.UUID) (*Resource, error)
	GetAllWithUsers(ctx context.Context) ([]*ResourceWithUser, error)
	Delete(ctx context.Context, resourceID uuid.UUID) error
}
