package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	domainProject "team-portal/internal/domain/project"
	"team-portal/internal/infrastructure/database/postgres/models"
)

type ProjectRepository struct {
	db *DB
}

func NewProjectRepository(db *DB) domainProject.Repository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) Create(ctx context.Context, p *domainProject.Project) error {
	p.ID = uuid.New()
	p.CreatedAt = time.Now()

	dbModel := &models.ProjectModel{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		TechStack:   p.TechStack,
		ImageURL:    p.ImageURL,
		AdminID:     p.AdminID,
		CreatedAt:   p.CreatedAt,
	}
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}
	return nil
}

func (r *ProjectRepository) GetByID(ctx context.Context, projectID uuid.UUID) (*domainProject.Project, error) {
	var dbModel models.ProjectModel
	err := r.db.DB.WithContext(ctx).First(&dbModel, "id = ?", projectID).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainProject.ErrProjectNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	return toProjectEntity(&dbModel), nil
}

func (r *ProjectRepository) ListForUser(ctx context.Context, userID uuid.UUID) ([]*domainProject.ProjectView, error) {
	type projectRow struct {
		models.ProjectModel
		AdminName string
	}

	var rows []projectRow
	err := r.db.DB.WithContext(ctx).
		Model(&models.ProjectModel{}).
		Select("projects.*, users.name AS admin_name").
		Joins("JOIN users ON users.id = projects.admin_id").
		Order("projects.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	if len(rows) == 0 {
		return []*domainProject.ProjectView{}, nil
	}

	projectIDs := make([]uuid.UUID, 0, len(rows))
	for i := range rows {
		projectIDs = append(projectIDs, rows[i].ID)
	}

	// Likes and comments for the whole page in two batched queries.
	type likeRow struct {
		ProjectID uuid.UUID
		UserID    uuid.UUID
		Name      string
		Email     string
	}
	var likes []likeRow
	err = r.db.DB.WithContext(ctx).
		Model(&models.ProjectLikeModel{}).
		Select("project_likes.project_id, project_likes.user_id, users.name, users.email").
		Joins("JOIN users ON users.id = project_likes.user_id").
		Where("project_likes.project_id IN ?", projectIDs).
		Order("project_likes.created_at ASC").
		Scan(&likes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list project likes: %w", err)
	}

	type commentRow struct {
		ID        uuid.UUID
		ProjectID uuid.UUID
		Content   string
		UserName  string
	}
	var comments []commentRow
	err = r.db.DB.WithContext(ctx).
		Model(&models.ProjectCommentModel{}).
		Select("project_comments.id, project_comments.project_id, project_comments.content, users.name AS user_name").
		Joins("JOIN users ON users.id = project_comments.user_id").
		Where("project_comments.project_id IN ?", projectIDs).
		Order("project_comments.created_at ASC").
		Scan(&comments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list project comments: %w", err)
	}

	likersByProject := make(map[uuid.UUID][]domainProject.Liker)
	likedByUser := make(map[uuid.UUID]bool)
	for _, l := range likes {
		likersByProject[l.ProjectID] = append(likersByProject[l.ProjectID], domainProject.Liker{
			ID:    l.UserID,
			Name:  l.Name,
			Email: l.Email,
		})
		if l.UserID == userID {
			likedByUser[l.ProjectID] = true
		}
	}

	commentsByProject := make(map[uuid.UUID][]domainProject.CommentView)
	for _, c := range comments {
		commentsByProject[c.ProjectID] = append(commentsByProject[c.ProjectID], domainProject.CommentView{
			ID:       c.ID,
			Content:  c.Content,
			UserName: c.UserName,
		})
	}

	views := make([]*domainProject.ProjectView, 0, len(rows))
	for i := range rows {
		views = append(views, &domainProject.ProjectView{
			Project:   *toProjectEntity(&rows[i].ProjectModel),
			AdminName: rows[i].AdminName,
			HasLiked:  likedByUser[rows[i].ID],
			Likes:     likersByProject[rows[i].ID],
			Comments:  commentsByProject[rows[i].ID],
		})
	}
	return views, nil
}

func (r *ProjectRepository) HasLiked(ctx context.Context, projectID, userID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.DB.WithContext(ctx).
		Model(&models.ProjectLikeModel{}).
		Where("project_id = ? AND user_id = ?", projectID, userID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check like: %w", err)
	}
	return count > 0, nil
}

func (r *ProjectRepository) AddLike(ctx context.Context, like *domainProject.Like) error {
	like.CreatedAt = time.Now()

	dbModel := &models.ProjectLikeModel{
		ProjectID: like.ProjectID,
		UserID:    like.UserID,
		CreatedAt: like.CreatedAt,
	}
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		// Composite primary key: two racing likes collapse to one.
		if strings.Contains(strings.ToLower(err.Error()), "duplicate key") {
			return domainProject.ErrAlreadyLiked
		}
		return fmt.Errorf("failed to add like: %w", err)
	}
	return nil
}

func (r *ProjectRepository) RemoveLike(ctx context.Context, projectID, userID uuid.UUID) error {
	err := r.db.DB.WithContext(ctx).
		Where("project_id = ? AND user_id = ?", projectID, userID).
		Delete(&models.ProjectLikeModel{}).Error
	if err != nil {
		return fmt.Errorf("failed to remove like: %w", err)
	}
	return nil
}

func (r *ProjectRepository) AddComment(ctx context.Context, comment *domainProject.Comment) error {
	comment.ID = uuid.New()
	comment.CreatedAt = time.Now()

	dbModel := &models.ProjectCommentModel{
		ID:        comment.ID,
		ProjectID: comment.ProjectID,
		UserID:    comment.UserID,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
	}
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		return fmt.Errorf("failed to add comment: %w", err)
	}
	return nil
}

func (r *ProjectRepository) Delete(ctx context.Context, projectID uuid.UUID) error {
	result := r.db.DB.WithContext(ctx).Delete(&models.ProjectModel{}, "id = ?", projectID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete project: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainProject.ErrProjectNotFound
	}
	return nil
}

func toProjectEntity(m *models.ProjectModel) *domainProject.Project {
	return &domainProject.Project{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		TechStack:   m.TechStack,
		ImageURL:    m.ImageURL,
		AdminID:     m.AdminID,
		CreatedAt:   m.CreatedAt,
	}
}
