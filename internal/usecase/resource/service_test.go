package resource

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	domainResource "team-portal/internal/domain/resource"
	domainUser "team-portal/internal/domain/user"
	appErrors "team-portal/pkg/errors"
)

type fakeResourceRepo struct {
	resources map[uuid.UUID]*domainResource.Resource
}

func newFakeResourceRepo() *fakeResourceRepo {
	return &fakeResourceRepo{resources: make(map[uuid.UUID]*domainResource.Resource)}
}

func (f *fakeResourceRepo) Create(ctx context.Context, r *domainResource.Resource) error {
	r.ID = uuid.New()
	r.CreatedAt = time.Now()
	copied := *r
	f.resources[r.ID] = &copied
	return nil
}

func (f *fakeResourceRepo) GetByID(ctx context.Context, resourceID uuid.UUID) (*domainResource.Resource, error) {
	r, ok := f.resources[resourceID]
	if !ok {
		return nil, domainResource.ErrResourceNotFound
	}
	copied := *r
	return &copied, nil
}

func (f *fakeResourceRepo) GetAllWithUsers(ctx context.Context) ([]*domainResource.ResourceWithUser, error) {
	resources := make([]*domainResource.ResourceWithUser, 0, len(f.resources))
	for _, r := range f.resources {
		resources = append(resources, &domainResource.ResourceWithUser{
			Resource: *r,
			UserName: "Member",
		})
	}
	return resources, nil
}

func (f *fakeResourceRepo) Delete(ctx context.Context, resourceID uuid.UUID) error {
	if _, ok := f.resources[resourceID]; !ok {
		return domainResource.ErrResourceNotFound
	}
	delete(f.resources, resourceID)
	return nil
}

func share(t *testing.T, svc *Service, ownerID uuid.UUID) uuid.UUID {
	t.Helper()
	link := "https://go.dev/doc/effective_go"
	id, err := svc.Create(context.Background(), ownerID, &CreateRequest{
		Title:  "Effective Go",
		Type:   "article",
		Tags:   []string{"go", "style"},
		Link:   &link,
		UserID: ownerID,
	})
	require.NoError(t, err)
	return id
}

func TestCreateRequiresLinkOrDescription(t *testing.T) {
	t.Parallel()
	svc := NewService(newFakeResourceRepo())
	ownerID := uuid.New()

	_, err := svc.Create(context.Background(), ownerID, &CreateRequest{
		Title:  "Effective Go",
		Type:   "article",
		Tags:   []string{"go"},
		UserID: ownerID,
	})

	var appErr *appErrors.AppError
	assert.ErrorAs(t, err, &appErr)
}

func TestCreateDescriptionOnly(t *testing.T) {
	t.Parallel()
	svc := NewService(newFakeResourceRepo())
	ownerID := uuid.New()

	description := "Notes from the last review session"
	_, err := svc.Create(context.Background(), ownerID, &CreateRequest{
		Title:       "Review notes",
		Type:        "note",
		Tags:        []string{"review"},
		Description: &description,
		UserID:      ownerID,
	})
	assert.NoError(t, err)
}

func TestCreateRejectsMismatchedOwner(t *testing.T) {
	t.Parallel()
	svc := NewService(newFakeResourceRepo())

	link := "https://go.dev"
	_, err := svc.Create(context.Background(), uuid.New(), &CreateRequest{
		Title:  "Go",
		Type:   "link",
		Tags:   []string{"go"},
		Link:   &link,
		UserID: uuid.New(),
	})
	assert.ErrorIs(t, err, appErrors.ErrForbidden)
}

func TestDeleteOwnerOrAdmin(t *testing.T) {
	t.Parallel()
	repo := newFakeResourceRepo()
	svc := NewService(repo)

	ownerID := uuid.New()
	resourceID := share(t, svc, ownerID)

	err := svc.Delete(context.Background(), uuid.New(), domainUser.RoleUser, resourceID)
	assert.ErrorIs(t, err, appErrors.ErrForbidden)

	require.NoError(t, svc.Delete(context.Background(), ownerID, domainUser.RoleUser, resourceID))

	adminDeletable := share(t, svc, ownerID)
	require.NoError(t, svc.Delete(context.Background(), uuid.New(), domainUser.RoleAdmin, adminDeletable))
	assert.Empty(t, repo.resources)
}

func TestDeleteUnknownResource(t *testing.T) {
	t.Parallel()
	svc := NewService(newFakeResourceRepo())

	err := svc.Delete(context.Background(), uuid.New(), domainUser.RoleAdmin, uuid.New())
	assert.ErrorIs(t, err, domainResource.ErrResourceNotFound)
}

func TestList(t *testing.T) {
	t.Parallel()
	svc := NewService(newFakeResourceRepo())
	ownerID := uuid.New()
	share(t, svc, ownerID)

	resources, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, resources, 1)
	assert.Equal(t, "Member", resources[0].UserName)
	assert.Equal(t, []string{"go", "style"}, resources[0].Tags)
}
