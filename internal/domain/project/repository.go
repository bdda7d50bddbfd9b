package project

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, project *Project) error
	GetByID(ctx context.Context, projectID uuid.UUID) (*Project, error)

	// ListForUser returns all projects newest first with the given
	// user's like flag and the like/comment lists resolved.
	ListForUser(ctx context.Context, userID uuid.UUID) ([]*ProjectView, error)

	HasLiked(ctx context.Context, projectID, userID uuid.UUID) (bool, error)
	AddLike(ctx context.Context, like *Like) error
	RemoveLike(ctx context.Context, projectID, userID uuid.UUID) error

	AddComment(ctx context.Context, comment *Comment) error

	// Delete removes the project and, by cascade, its likes and comments.
	Delete(ctx context.Context, projectID uuid.UUID) error
}
