package progress

import "context"

type Repository interface {
	Create(ctx context.Context, entry *Entry) error
	GetAllWithUsers(ctx context.Context) ([]*EntryWithUser, error)
}
