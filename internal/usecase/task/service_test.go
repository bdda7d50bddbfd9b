package task

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	domainTask "team-portal/internal/domain/task"
	domainUser "team-portal/internal/domain/user"
	appErrors "team-portal/pkg/errors"
)

type fakeTaskRepo struct {
	tasks []*domainTask.Task
}

func (f *fakeTaskRepo) Create(ctx context.Context, t *domainTask.Task) error {
	t.ID = uuid.New()
	t.CreatedAt = time.Now()
	copied := *t
	f.tasks = append(f.tasks, &copied)
	return nil
}

func (f *fakeTaskRepo) GetAllWithUsers(ctx context.Context) ([]*domainTask.TaskWithUser, error) {
	tasks := make([]*domainTask.TaskWithUser, 0, len(f.tasks))
	for _, t := range f.tasks {
		tasks = append(tasks, &domainTask.TaskWithUser{
			Task:      *t,
			UserName:  "Member",
			UserEmail: "member@example.com",
		})
	}
	return tasks, nil
}

type fakeUserDirectory struct {
	known map[uuid.UUID]bool
}

func (f *fakeUserDirectory) GetByID(ctx context.Context, userID uuid.UUID) (*domainUser.User, error) {
	if !f.known[userID] {
		return nil, domainUser.ErrUserNotFound
	}
	return &domainUser.User{ID: userID}, nil
}

func (f *fakeUserDirectory) Create(ctx context.Context, u *domainUser.User) error { return nil }
func (f *fakeUserDirectory) GetByEmail(ctx context.Context, email string) (*domainUser.User, error) {
	return nil, domainUser.ErrUserNotFound
}
func (f *fakeUserDirectory) GetAll(ctx context.Context) ([]*domainUser.User, error) {
	return nil, nil
}
func (f *fakeUserDirectory) UpdateProfile(ctx context.Context, u *domainUser.User) error { return nil }
func (f *fakeUserDirectory) Approve(ctx context.Context, userID uuid.UUID) error         { return nil }
func (f *fakeUserDirectory) UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) error {
	return nil
}
func (f *fakeUserDirectory) CreatePasswordResetToken(ctx context.Context, token *domainUser.PasswordResetToken) error {
	return nil
}
func (f *fakeUserDirectory) GetValidPasswordResetToken(ctx context.Context, token string, now time.Time) (*domainUser.PasswordResetToken, error) {
	return nil, domainUser.ErrResetTokenInvalid
}
func (f *fakeUserDirectory) ConsumePasswordResetToken(ctx context.Context, token string) error {
	return nil
}

func newTestService(known ...uuid.UUID) (*Service, *fakeTaskRepo) {
	repo := &fakeTaskRepo{}
	users := &fakeUserDirectory{known: make(map[uuid.UUID]bool)}
	for _, id := range known {
		users.known[id] = true
	}
	return NewService(repo, users), repo
}

func TestCreateNormalizesStatus(t *testing.T) {
	t.Parallel()
	memberID := uuid.New()
	svc, repo := newTestService(memberID)

	err := svc.Create(context.Background(), memberID, domainUser.RoleUser, &CreateRequest{
		Task:   "Write migration",
		Status: "Ongoing",
		UserID: memberID,
	})
	require.NoError(t, err)
	require.Len(t, repo.tasks, 1)
	assert.Equal(t, domainTask.StatusOngoing, repo.tasks[0].Status)
}

func TestCreateRejectsInvalidStatus(t *testing.T) {
	t.Parallel()
	memberID := uuid.New()
	svc, repo := newTestService(memberID)

	err := svc.Create(context.Background(), memberID, domainUser.RoleUser, &CreateRequest{
		Task:   "Write migration",
		Status: "done",
		UserID: memberID,
	})

	// "done" never reaches the custom validator result mapping; both
	// the validator tag and the switch reject it.
	assert.Error(t, err)
	assert.Empty(t, repo.tasks)
}

func TestCreateForOtherRequiresAdmin(t *testing.T) {
	t.Parallel()
	actorID := uuid.New()
	targetID := uuid.New()
	svc, repo := newTestService(actorID, targetID)

	req := &CreateRequest{
		Task:   "Review PR",
		Status: "blocked",
		UserID: targetID,
	}

	err := svc.Create(context.Background(), actorID, domainUser.RoleUser, req)
	assert.ErrorIs(t, err, appErrors.ErrForbidden)
	assert.Empty(t, repo.tasks)

	err = svc.Create(context.Background(), actorID, domainUser.RoleAdmin, req)
	assert.NoError(t, err)
	assert.Len(t, repo.tasks, 1)
}

func TestCreateUnknownTargetUser(t *testing.T) {
	t.Parallel()
	actorID := uuid.New()
	svc, _ := newTestService(actorID)

	err := svc.Create(context.Background(), actorID, domainUser.RoleAdmin, &CreateRequest{
		Task:   "Review PR",
		Status: "ongoing",
		UserID: uuid.New(),
	})
	assert.ErrorIs(t, err, domainTask.ErrInvalidUser)
}

func TestListAll(t *testing.T) {
	t.Parallel()
	memberID := uuid.New()
	svc, _ := newTestService(memberID)

	require.NoError(t, svc.Create(context.Background(), memberID, domainUser.RoleUser, &CreateRequest{
		Task:   "Write migration",
		Status: "completed",
		UserID: memberID,
	}))

	tasks, err := svc.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Member", tasks[0].UserName)
}
