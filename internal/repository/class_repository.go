//go:generate mockery --name ClassRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"go_5_flashcard_keep/internal/middleware"
	"go_5_flashcard_keep/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClassRepository interface {
	Create(ctx context.Context, tx *gorm.DB, class *model.Class) error
	FindByID(ctx context.Context, db *gorm.DB, tenantID, classID uuid.UUID) (*model.Class, error)
	FindByTenant(ctx context.Context, db *gorm.DB, tenantID uuid.UUID) ([]*model.Class, error)
	Update(ctx context.Context, tx *gorm.DB, tenantID, classID uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, tx *gorm.DB, tenantID, classID uuid.UUID) error
	CheckNameExists(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, name string, excludeClassID *uuid.UUID) (bool, error)
}

type gormClassRepository struct{}

func NewGormClassRepository() ClassRepository {
	return &gormClassRepository{}
}

func (r *gormClassRepository) Create(ctx context.Context, tx *gorm.DB, class *model.Class) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(class)
	if result.Error != nil {
		logger.Error("Error creating class in DB",
			"error", result.Error,
			"tenant_id", class.TenantID.String(),
			"name", class.Name,
		)
		return fmt.Errorf("gormClassRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormClassRepository) FindByID(ctx context.Context, db *gorm.DB, tenantID, classID uuid.UUID) (*model.Class, error) {
	logger := middleware.GetLogger(ctx)
	var class model.Class
	result := db.WithContext(ctx).Where("tenant_id = ? AND class_id = ?", tenantID, classID).First(&class)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding class by ID in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
			"class_id", classID.String(),
		)
		return nil, fmt.Errorf("gormClassRepository.FindByID: %w", result.Error)
	}
	return &class, nil
}

func (r *gormClassRepository) FindByTenant(ctx context.Context, db *gorm.DB, tenantID uuid.UUID) ([]*model.Class, error) {
	logger := middleware.GetLogger(ctx)
	var classes []*model.Class
	result := db.WithContext(ctx).Where("tenant_id = ?", tenantID).Order("created_at DESC").Find(&classes)
	if result.Error != nil {
		logger.Error("Error finding classes by tenant in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
		)
		return nil, fmt.Errorf("gormClassRepository.FindByTenant: %w", result.Error)
	}
	return classes, nil
}

func (r *gormClassRepository) Update(ctx context.Context, tx *gorm.DB, tenantID, classID uuid.UUID, updates map[string]interface{}) error {
	logger := middleware.GetLogger(ctx)
	if len(updates) == 0 {
		return nil
	}
	result := tx.WithContext(ctx).Model(&model.Class{}).Where("tenant_id = ? AND class_id = ?", tenantID, classID).Updates(updates)
	if result.Error != nil {
		logger.Error("Error updating class in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
			"class_id", classID.String(),
		)
		return fmt.Errorf("gormClassRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormClassRepository) Delete(ctx context.Context, tx *gorm.DB, tenantID, classID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Where("tenant_id = ?", tenantID).Delete(&model.Class{}, classID)
	if result.Error != nil {
		logger.Error("Error deleting class in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
			"class_id", classID.String(),
		)
		return fmt.Errorf("gormClassRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormClassRepository) CheckNameExists(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, name string, excludeClassID *uuid.UUID) (bool, error) {
	logger := middleware.GetLogger(ctx)
	var count int64
	query := db.WithContext(ctx).Model(&model.Class{}).Where("tenant_id = ? AND name = ?", tenantID, name)
	if excludeClassID != nil {
		query = query.Where("class_id != ?", *excludeClassID)
	}
	result := query.Count(&count)
	if result.Error != nil {
		logger.Error("Error checking class name existence in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
			"name", name,
		)
		return false, fmt.Errorf("gormClassRepository.CheckNameExists: %w", result.Error)
	}
	return count > 0, nil
}
