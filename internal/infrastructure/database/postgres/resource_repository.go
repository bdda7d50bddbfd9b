package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	domainResource "team-portal/internal/domain/resource"
	"team-portal/internal/infrastructure/database/postgres/models"
)

type ResourceRepository struct {
	db *DB
}

func NewResourceRepository(db *DB) domainResource.Repository {
	return &ResourceRepository{db: db}
}

func (r *ResourceRepository) Create(ctx context.Context, res *domainResource.Resource) error {
	res.ID = uuid.New()
	res.CreatedAt = time.Now()

	tags, err := json.Marshal(res.Tags)
	if err != nil {
		return fmt.Errorf("failed to encode tags: %w", err)
	}

	dbModel := &models.ResourceModel{
		ID:          res.ID,
		Title:       res.Title,
		Type:        res.Type,
		Tags:        string(tags),
		Link:        res.Link,
		Description: res.Description,
		UserID:      res.UserID,
		CreatedAt:   res.CreatedAt,
	}
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		return fmt.Errorf("failed to create resource: %w", err)
	}
	return nil
}

func (r *ResourceRepository) GetByID(ctx context.Context, resourceID uuid.UUID) (*domainResource.Resource, error) {
	var dbModel models.ResourceModel
	err := r.db.DB.WithContext(ctx).First(&dbModel, "id = ?", resourceID).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainResource.ErrResourceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get resource: %w", err)
	}

	return toResourceEntity(&dbModel)
}

func (r *ResourceRepository) GetAllWithUsers(ctx context.Context) ([]*domainResource.ResourceWithUser, error) {
	type resourceRow struct {
		models.ResourceModel
		UserName string
	}

	var rows []resourceRow
	err := r.db.DB.WithContext(ctx).
		Model(&models.ResourceModel{}).
		Select("resources.*, users.name AS user_name").
		Joins("JOIN users ON users.id = resources.user_id").
		Order("resources.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list resources: %w", err)
	}

	resources := make([]*domainResource.ResourceWithUser, 0, len(rows))
	for i := range rows {
		entity, err := toResourceEntity(&rows[i].ResourceModel)
		if err != nil {
			return nil, err
		}
		resources = append(resources, &domainResource.ResourceWithUser{
			Resource: *entity,
			UserName: rows[i].UserName,
		})
	}
	return resources, nil
}

func (r *ResourceRepository) Delete(ctx context.Context, resourceID uuid.UUID) error {
	result := r.db.DB.WithContext(ctx).Delete(&models.ResourceModel{}, "id = ?", resourceID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete resource: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainResource.ErrResourceNotFound
	}
	return nil
}

func toResourceEntity(m *models.ResourceModel) (*domainResource.Resource, error) {
	var tags []string
	if m.Tags != "" {
		if err := json.Unmarshal([]byte(m.Tags), &tags); err != nil {
			return nil, fmt.Errorf("failed to decode tags for resource %s: %w", m.ID, err)
		}
	}
	return &domainResource.Resource{
		ID:          m.ID,
		Title:       m.Title,
		Type:        m.Type,
		Tags:        tags,
		Link:        m.Link,
		Description: m.Description,
		UserID:      m.UserID,
		CreatedAt:   m.CreatedAt,
	}, nil
}
