package task

import "context"

type Repository interface {
	Create(ctx context.Context, task *Task) error
	GetAllWithUsers(ctx context.Context) ([]*TaskWithUser, error)
}
