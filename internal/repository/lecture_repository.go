//go:generate mockery --name LectureRepository --output ./mocks --outpkg mocks --case=underscore
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

type LectureRepository interface {
	Create(ctx context.Context, tx *gorm.DB, lecture *model.Lecture) error
	FindByID(ctx context.Context, db *gorm.DB, tenantID, lectureID uuid.UUID) (*model.Lecture, error)
	FindByClass(ctx context.Context, db *gorm.DB, tenantID, classID uuid.UUID) ([]*model.Lecture, error)
	Delete(ctx context.Context, tx *gorm.DB, tenantID, lectureID uuid.UUID) error
	// DeleteByClass はクラス配下の全講義を論理削除します。クラス削除時に使用します。
	DeleteByClass(ctx context.Context, tx *gorm.DB, tenantID, classID uuid.UUID) error
}

type gormLectureRepository struct{}

func NewGormLectureRepository() LectureRepository {
	return &gormLectureRepository{}
}

func (r *gormLectureRepository) Create(ctx context.Context, tx *gorm.DB, lecture *model.Lecture) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(lecture)
	if result.Error != nil {
		logger.Error("Error creating lecture in DB",
			"error", result.Error,
			"tenant_id", lecture.TenantID.String(),
			"class_id", lecture.ClassID.String(),
			"title", lecture.Title,
		)
		return fmt.Errorf("gormLectureRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormLectureRepository) FindByID(ctx context.Context, db *gorm.DB, tenantID, lectureID uuid.UUID) (*model.Lecture, error) {
	logger := middleware.GetLogger(ctx)
	var lecture model.Lecture
	result := db.WithContext(ctx).Where("tenant_id = ? AND lecture_id = ?", tenantID, lectureID).First(&lecture)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding lecture by ID in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
			"lecture_id", lectureID.String(),
		)
		return nil, fmt.Errorf("gormLectureRepository.FindByID: %w", result.Error)
	}
	return &lecture, nil
}

func (r *gormLectureRepository) FindByClass(ctx context.Context, db *gorm.DB, tenantID, classID uuid.UUID) ([]*model.Lecture, error) {
	logger := middleware.GetLogger(ctx)
	var lectures []*model.Lecture
	result := db.WithContext(ctx).
		Where("tenant_id = ? AND class_id = ?", tenantID, classID).
		Order("created_at ASC").
		Find(&lectures)
	if result.Error != nil {
		logger.Error("Error finding lectures by class in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
			"class_id", classID.String(),
		)
		return nil, fmt.Errorf("gormLectureRepository.FindByClass: %w", result.Error)
	}
	return lectures, nil
}

func (r *gormLectureRepository) Delete(ctx context.Context, tx *gorm.DB, tenantID, lectureID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Where("tenant_id = ?", tenantID).Delete(&model.Lecture{}, lectureID)
	if result.Error != nil {
		logger.Error("Error deleting lecture in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
			"lecture_id", lectureID.String(),
		)
		return fmt.Errorf("gormLectureRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormLectureRepository) DeleteByClass(ctx context.Context, tx *gorm.DB, tenantID, classID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).
		Where("tenant_id = ? AND class_id = ?", tenantID, classID).
		Delete(&model.Lecture{})
	if result.Error != nil {
		logger.Error("Error deleting lectures by class in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
			"class_id", classID.String(),
		)
		return fmt.Errorf("gormLectureRepository.DeleteByClass: %w", result.Error)
	}
	return nil
}
