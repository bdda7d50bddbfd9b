package project

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	domainProject "team-portal/internal/domain/project"
	appErrors "team-portal/pkg/errors"
)

type likeKey struct {
	projectID uuid.UUID
	userID    uuid.UUID
}

type fakeProjectRepo struct {
	projects map[uuid.UUID]*domainProject.Project
	likes    map[likeKey]bool
	comments []*domainProject.Comment
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{
		projects: make(map[uuid.UUID]*domainProject.Project),
		likes:    make(map[likeKey]bool),
	}
}

func (f *fakeProjectRepo) Create(ctx context.Context, p *domainProject.Project) error {
	p.ID = uuid.New()
	p.CreatedAt = time.Now()
	copied := *p
	f.projects[p.ID] = &copied
	return nil
}

func (f *fakeProjectRepo) GetByID(ctx context.Context, projectID uuid.UUID) (*domainProject.Project, error) {
	p, ok := f.projects[projectID]
	if !ok {
		return nil, domainProject.ErrProjectNotFound
	}
	copied := *p
	return &copied, nil
}

func (f *fakeProjectRepo) ListForUser(ctx context.Context, userID uuid.UUID) ([]*domainProject.ProjectView, error) {
	views := make([]*domainProject.ProjectView, 0, len(f.projects))
	for _, p := range f.projects {
		views = append(views, &domainProject.ProjectView{
			Project:   *p,
			AdminName: "Admin",
			HasLiked:  f.likes[likeKey{p.ID, userID}],
		})
	}
	return views, nil
}

func (f *fakeProjectRepo) HasLiked(ctx context.Context, projectID, userID uuid.UUID) (bool, error) {
	return f.likes[likeKey{projectID, userID}], nil
}

func (f *fakeProjectRepo) AddLike(ctx context.Context, like *domainProject.Like) error {
	key := likeKey{like.ProjectID, like.UserID}
	if f.likes[key] {
		return domainProject.ErrAlreadyLiked
	}
	f.likes[key] = true
	return nil
}

func (f *fakeProjectRepo) RemoveLike(ctx context.Context, projectID, userID uuid.UUID) error {
	delete(f.likes, likeKey{projectID, userID})
	return nil
}

func (f *fakeProjectRepo) AddComment(ctx context.Context, comment *domainProject.Comment) error {
	comment.ID = uuid.New()
	comment.CreatedAt = time.Now()
	copied := *comment
	f.comments = append(f.comments, &copied)
	return nil
}

func (f *fakeProjectRepo) Delete(ctx context.Context, projectID uuid.UUID) error {
	if _, ok := f.projects[projectID]; !ok {
		return domainProject.ErrProjectNotFound
	}
	delete(f.projects, projectID)
	return nil
}

func publish(t *testing.T, svc *Service, adminID uuid.UUID) uuid.UUID {
	t.Helper()
	id, err := svc.Create(context.Background(), adminID, &CreateRequest{
		Title:       "Portal",
		Description: "Team collaboration portal",
		TechStack:   "Go, Postgres",
		AdminID:     adminID,
	})
	require.NoError(t, err)
	return id
}

func TestCreateRejectsMismatchedAdmin(t *testing.T) {
	t.Parallel()
	svc := NewService(newFakeProjectRepo())

	_, err := svc.Create(context.Background(), uuid.New(), &CreateRequest{
		Title:       "Portal",
		Description: "Team collaboration portal",
		TechStack:   "Go, Postgres",
		AdminID:     uuid.New(),
	})
	assert.ErrorIs(t, err, appErrors.ErrForbidden)
}

func TestToggleLike(t *testing.T) {
	t.Parallel()
	svc := NewService(newFakeProjectRepo())

	adminID := uuid.New()
	memberID := uuid.New()
	projectID := publish(t, svc, adminID)

	req := &LikeRequest{ProjectID: projectID, UserID: memberID}

	result, err := svc.ToggleLike(context.Background(), memberID, req)
	require.NoError(t, err)
	assert.Equal(t, Liked, result)

	projects, err := svc.List(context.Background(), memberID)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.True(t, projects[0].HasLiked)

	result, err = svc.ToggleLike(context.Background(), memberID, req)
	require.NoError(t, err)
	assert.Equal(t, Unliked, result)

	projects, err = svc.List(context.Background(), memberID)
	require.NoError(t, err)
	assert.False(t, projects[0].HasLiked)
}

func TestToggleLikeUnknownProject(t *testing.T) {
	t.Parallel()
	svc := NewService(newFakeProjectRepo())

	memberID := uuid.New()
	_, err := svc.ToggleLike(context.Background(), memberID, &LikeRequest{
		ProjectID: uuid.New(),
		UserID:    memberID,
	})
	assert.ErrorIs(t, err, domainProject.ErrProjectNotFound)
}

func TestToggleLikeOnBehalfOfOtherForbidden(t *testing.T) {
	t.Parallel()
	svc := NewService(newFakeProjectRepo())

	adminID := uuid.New()
	projectID := publish(t, svc, adminID)

	_, err := svc.ToggleLike(context.Background(), uuid.New(), &LikeRequest{
		ProjectID: projectID,
		UserID:    uuid.New(),
	})
	assert.ErrorIs(t, err, appErrors.ErrForbidden)
}

func TestComment(t *testing.T) {
	t.Parallel()
	repo := newFakeProjectRepo()
	svc := NewService(repo)

	adminID := uuid.New()
	memberID := uuid.New()
	projectID := publish(t, svc, adminID)

	err := svc.Comment(context.Background(), memberID, &CommentRequest{
		ProjectID: projectID,
		UserID:    memberID,
		Content:   "Nice work!",
	})
	require.NoError(t, err)
	require.Len(t, repo.comments, 1)
	assert.Equal(t, "Nice work!", repo.comments[0].Content)

	// Empty content fails validation.
	err = svc.Comment(context.Background(), memberID, &CommentRequest{
		ProjectID: projectID,
		UserID:    memberID,
	})
	var appErr *appErrors.AppError
	assert.ErrorAs(t, err, &appErr)
}

func TestDelete(t *testing.T) {
	t.Parallel()
	repo := newFakeProjectRepo()
	svc := NewService(repo)

	adminID := uuid.New()
	projectID := publish(t, svc, adminID)

	require.NoError(t, svc.Delete(context.Background(), adminID, projectID))
	assert.Empty(t, repo.projects)

	err := svc.Delete(context.Background(), adminID, projectID)
	assert.ErrorIs(t, err, domainProject.ErrProjectNotFound)
}
