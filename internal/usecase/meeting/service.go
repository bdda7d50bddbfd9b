package meeting

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
	domainMeeting "team-portal/internal/domain/meeting"
	"team-portal/internal/logger"
	appErrors "team-portal/pkg/errors"
	"team-portal/pkg/utils"
)

type Service struct {
	meetingRepo domainMeeting.Repository
}

func NewService(meetingRepo domainMeeting.Repository) *Service {
	return &Service{meetingRepo: meetingRepo}
}

// Create schedules a meeting. The routing layer has already required
// the admin role; the body's adminId must still match the actor so a
// meeting cannot be scheduled in someone else's name.
func (s *Service) Create(ctx context.Context, actorID uuid.UUID, req *CreateRequest) (uuid.UUID, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return uuid.Nil, appErrors.NewAppError("VALIDATION_ERROR", "Title, time, and adminId are required", err)
	}

	if req.AdminID != actorID {
		return uuid.Nil, appErrors.ErrForbidden
	}

	meeting := &domainMeeting.Meeting{
		Title:       req.Title,
		Time:        req.Time,
		Description: req.Description,
		AdminID:     req.AdminID,
	}

	if err := s.meetingRepo.Create(ctx, meeting); err != nil {
		return uuid.Nil, err
	}

	logger.Info("Meeting scheduled",
		zap.String("meeting_id", meeting.ID.String()),
		zap.String("admin_id", actorID.String()),
		zap.String("event", "meeting_scheduled"),
	)
	return meeting.ID, nil
}

// List returns all meetings ordered by time, personalized with the
// actor's acceptance flag.
func (s *Service) List(ctx context.Context, actorID uuid.UUID) ([]*MeetingResponse, error) {
	meetings, err := s.meetingRepo.ListForUser(ctx, actorID)
	if err != nil {
		return nil, err
	}

	responses := make([]*MeetingResponse, 0, len(meetings))
	for _, m := range meetings {
		responses = append(responses, ToMeetingResponse(m))
	}
	return responses, nil
}

// Accept records the actor's acceptance. The meeting's creator cannot
// accept their own meeting, and accepting twice is a conflict.
func (s *Service) Accept(ctx context.Context, actorID uuid.UUID, req *AcceptRequest) error {
	if err := utils.ValidateStruct(req); err != nil {
		return appErrors.NewAppError("VALIDATION_ERROR", "Meeting ID and user ID are required", err)
	}

	if req.UserID != actorID {
		return appErrors.ErrForbidden
	}

	meeting, err := s.meetingRepo.GetByID(ctx, req.MeetingID)
	if err != nil {
		return err
	}

	if meeting.AdminID == req.UserID {
		return domainMeeting.ErrOwnMeetingAccept
	}

	acceptance := &domainMeeting.Acceptance{
		MeetingID: req.MeetingID,
		UserID:    req.UserID,
	}

	if err := s.meetingRepo.Accept(ctx, acceptance); err != nil {
		return err
	}

	logger.Info("Meeting accepted",
		zap.String("meeting_id", req.MeetingID.String()),
		zap.String("user_id", req.UserID.String()),
		zap.String("event", "meeting_accepted"),
	)
	return nil
}

// Delete removes a meeting; only its creator may do so.
func (s *Service) Delete(ctx context.Context, actorID, meetingID uuid.UUID) error {
	meeting, err := s.meetingRepo.GetByID(ctx, meetingID)
	if err != nil {
		return err
	}

	if meeting.AdminID != actorID {
		return domainMeeting.ErrNotMeetingCreator
	}

	if err := s.meetingRepo.Delete(ctx, meetingID); err != nil {
		return err
	}

	logger.Info("Meeting deleted",
		zap.String("meeting_id", meetingID.String()),
		zap.String("admin_id", actorID.String()),
		zap.String("event", "meeting_deleted"),
	)
	return nil
}
