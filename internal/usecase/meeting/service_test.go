package meeting

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	domainMeeting "team-portal/internal/domain/meeting"
	appErrors "team-portal/pkg/errors"
)

type fakeMeetingRepo struct {
	meetings    map[uuid.UUID]*domainMeeting.Meeting
	acceptances map[uuid.UUID]map[uuid.UUID]bool
}

func newFakeMeetingRepo() *fakeMeetingRepo {
	return &fakeMeetingRepo{
		meetings:    make(map[uuid.UUID]*domainMeeting.Meeting),
		acceptances: make(map[uuid.UUID]map[uuid.UUID]bool),
	}
}

func (f *fakeMeetingRepo) Create(ctx context.Context, m *domainMeeting.Meeting) error {
	m.ID = uuid.New()
	m.CreatedAt = time.Now()
	copied := *m
	f.meetings[m.ID] = &copied
	return nil
}

func (f *fakeMeetingRepo) GetByID(ctx context.Context, meetingID uuid.UUID) (*domainMeeting.Meeting, error) {
	m, ok := f.meetings[meetingID]
	if !ok {
		return nil, domainMeeting.ErrMeetingNotFound
	}
	copied := *m
	return &copied, nil
}

func (f *fakeMeetingRepo) ListForUser(ctx context.Context, userID uuid.UUID) ([]*domainMeeting.MeetingView, error) {
	views := make([]*domainMeeting.MeetingView, 0, len(f.meetings))
	for _, m := range f.meetings {
		views = append(views, &domainMeeting.MeetingView{
			Meeting:     *m,
			AdminName:   "Admin",
			HasAccepted: f.acceptances[m.ID][userID],
		})
	}
	return views, nil
}

func (f *fakeMeetingRepo) Accept(ctx context.Context, a *domainMeeting.Acceptance) error {
	if f.acceptances[a.MeetingID] == nil {
		f.acceptances[a.MeetingID] = make(map[uuid.UUID]bool)
	}
	if f.acceptances[a.MeetingID][a.UserID] {
		return domainMeeting.ErrAlreadyAccepted
	}
	f.acceptances[a.MeetingID][a.UserID] = true
	return nil
}

func (f *fakeMeetingRepo) Delete(ctx context.Context, meetingID uuid.UUID) error {
	if _, ok := f.meetings[meetingID]; !ok {
		return domainMeeting.ErrMeetingNotFound
	}
	delete(f.meetings, meetingID)
	delete(f.acceptances, meetingID)
	return nil
}

func schedule(t *testing.T, svc *Service, adminID uuid.UUID) uuid.UUID {
	t.Helper()
	id, err := svc.Create(context.Background(), adminID, &CreateRequest{
		Title:   "Sprint planning",
		Time:    "2026-09-07 10:00",
		AdminID: adminID,
	})
	require.NoError(t, err)
	return id
}

func TestCreateRejectsMismatchedAdmin(t *testing.T) {
	t.Parallel()
	svc := NewService(newFakeMeetingRepo())

	_, err := svc.Create(context.Background(), uuid.New(), &CreateRequest{
		Title:   "Sprint planning",
		Time:    "2026-09-07 10:00",
		AdminID: uuid.New(),
	})
	assert.ErrorIs(t, err, appErrors.ErrForbidden)
}

func TestAcceptFlow(t *testing.T) {
	t.Parallel()
	repo := newFakeMeetingRepo()
	svc := NewService(repo)

	adminID := uuid.New()
	memberID := uuid.New()
	meetingID := schedule(t, svc, adminID)

	err := svc.Accept(context.Background(), memberID, &AcceptRequest{
		MeetingID: meetingID,
		UserID:    memberID,
	})
	require.NoError(t, err)

	meetings, err := svc.List(context.Background(), memberID)
	require.NoError(t, err)
	require.Len(t, meetings, 1)
	assert.True(t, meetings[0].HasAccepted)

	// Accepting the same meeting twice is a conflict.
	err = svc.Accept(context.Background(), memberID, &AcceptRequest{
		MeetingID: meetingID,
		UserID:    memberID,
	})
	assert.ErrorIs(t, err, domainMeeting.ErrAlreadyAccepted)
}

func TestAcceptOwnMeetingForbidden(t *testing.T) {
	t.Parallel()
	svc := NewService(newFakeMeetingRepo())

	adminID := uuid.New()
	meetingID := schedule(t, svc, adminID)

	err := svc.Accept(context.Background(), adminID, &AcceptRequest{
		MeetingID: meetingID,
		UserID:    adminID,
	})
	assert.ErrorIs(t, err, domainMeeting.ErrOwnMeetingAccept)
}

func TestAcceptOnBehalfOfOtherForbidden(t *testing.T) {
	t.Parallel()
	svc := NewService(newFakeMeetingRepo())

	adminID := uuid.New()
	meetingID := schedule(t, svc, adminID)

	err := svc.Accept(context.Background(), uuid.New(), &AcceptRequest{
		MeetingID: meetingID,
		UserID:    uuid.New(),
	})
	assert.ErrorIs(t, err, appErrors.ErrForbidden)
}

func TestAcceptUnknownMeeting(t *testing.T) {
	t.Parallel()
	svc := NewService(newFakeMeetingRepo())

	memberID := uuid.New()
	err := svc.Accept(context.Background(), memberID, &AcceptRequest{
		MeetingID: uuid.New(),
		UserID:    memberID,
	})
	assert.ErrorIs(t, err, domainMeeting.ErrMeetingNotFound)
}

func TestDeleteCreatorOnly(t *testing.T) {
	t.Parallel()
	repo := newFakeMeetingRepo()
	svc := NewService(repo)

	adminID := uuid.New()
	meetingID := schedule(t, svc, adminID)

	err := svc.Delete(context.Background(), uuid.New(), meetingID)
	assert.ErrorIs(t, err, domainMeeting.ErrNotMeetingCreator)

	require.NoError(t, svc.Delete(context.Background(), adminID, meetingID))
	assert.Empty(t, repo.meetings)

	err = svc.Delete(context.Background(), adminID, meetingID)
	assert.ErrorIs(t, err, domainMeeting.ErrMeetingNotFound)
}
