package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	domainMeeting "team-portal/internal/domain/meeting"
	"team-portal/internal/infrastructure/database/postgres/models"
)

type MeetingRepository struct {
	db *DB
}

func NewMeetingRepository(db *DB) domainMeeting.Repository {
	return &MeetingRepository{db: db}
}

func (r *MeetingRepository) Create(ctx context.Context, m *domainMeeting.Meeting) error {
	m.ID = uuid.New()
	m.CreatedAt = time.Now()

	dbModel := &models.MeetingModel{
		ID:          m.ID,
		Title:       m.Title,
		Time:        m.Time,
		Description: m.Description,
		AdminID:     m.AdminID,
		CreatedAt:   m.CreatedAt,
	}
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		return fmt.Errorf("failed to create meeting: %w", err)
	}
	return nil
}

func (r *MeetingRepository) GetByID(ctx context.Context, meetingID uuid.UUID) (*domainMeeting.Meeting, error) {
	var dbModel models.MeetingModel
	err := r.db.DB.WithContext(ctx).First(&dbModel, "id = ?", meetingID).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainMeeting.ErrMeetingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get meeting: %w", err)
	}

	return toMeetingEntity(&dbModel), nil
}

func (r *MeetingRepository) ListForUser(ctx context.Context, userID uuid.UUID) ([]*domainMeeting.MeetingView, error) {
	type meetingRow struct {
		models.MeetingModel
		AdminName string
	}

	var rows []meetingRow
	err := r.db.DB.WithContext(ctx).
		Model(&models.MeetingModel{}).
		Select("meetings.*, users.name AS admin_name").
		Joins("JOIN users ON users.id = meetings.admin_id").
		Order("meetings.time ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list meetings: %w", err)
	}

	if len(rows) == 0 {
		return []*domainMeeting.MeetingView{}, nil
	}

	meetingIDs := make([]uuid.UUID, 0, len(rows))
	for i := range rows {
		meetingIDs = append(meetingIDs, rows[i].ID)
	}

	// One batched query for all acceptances instead of one per meeting.
	type acceptanceRow struct {
		MeetingID uuid.UUID
		UserID    uuid.UUID
		Name      string
		Email     string
	}
	var acceptances []acceptanceRow
	err = r.db.DB.WithContext(ctx).
		Model(&models.MeetingAcceptanceModel{}).
		Select("meeting_acceptances.meeting_id, meeting_acceptances.user_id, users.name, users.email").
		Joins("JOIN users ON users.id = meeting_acceptances.user_id").
		Where("meeting_acceptances.meeting_id IN ?", meetingIDs).
		Order("meeting_acceptances.accepted_at ASC").
		Scan(&acceptances).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list meeting acceptances: %w", err)
	}

	attendeesByMeeting := make(map[uuid.UUID][]domainMeeting.Attendee)
	acceptedByUser := make(map[uuid.UUID]bool)
	for _, a := range acceptances {
		attendeesByMeeting[a.MeetingID] = append(attendeesByMeeting[a.MeetingID], domainMeeting.Attendee{
			ID:    a.UserID,
			Name:  a.Name,
			Email: a.Email,
		})
		if a.UserID == userID {
			acceptedByUser[a.MeetingID] = true
		}
	}

	views := make([]*domainMeeting.MeetingView, 0, len(rows))
	for i := range rows {
		views = append(views, &domainMeeting.MeetingView{
			Meeting:       *toMeetingEntity(&rows[i].MeetingModel),
			AdminName:     rows[i].AdminName,
			HasAccepted:   acceptedByUser[rows[i].ID],
			AcceptedUsers: attendeesByMeeting[rows[i].ID],
		})
	}
	return views, nil
}

func (r *MeetingRepository) Accept(ctx context.Context, a *domainMeeting.Acceptance) error {
	a.AcceptedAt = time.Now()

	dbModel := &models.MeetingAcceptanceModel{
		MeetingID:  a.MeetingID,
		UserID:     a.UserID,
		AcceptedAt: a.AcceptedAt,
	}
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		// Composite primary key: a concurrent duplicate acceptance
		// fails here rather than inserting twice.
		if strings.Contains(strings.ToLower(err.Error()), "duplicate key") {
			return domainMeeting.ErrAlreadyAccepted
		}
		return fmt.Errorf("failed to record acceptance: %w", err)
	}
	return nil
}

func (r *MeetingRepository) Delete(ctx context.Context, meetingID uuid.UUID) error {
	result := r.db.DB.WithContext(ctx).Delete(&models.MeetingModel{}, "id = ?", meetingID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete meeting: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainMeeting.ErrMeetingNotFound
	}
	return nil
}

func toMeetingEntity(m *models.MeetingModel) *domainMeeting.Meeting {
	return &domainMeeting.Meeting{
		ID:          m.ID,
		Title:       m.Title,
		Time:        m.Time,
		Description: m.Description,
		AdminID:     m.AdminID,
		CreatedAt:   m.CreatedAt,
	}
}
