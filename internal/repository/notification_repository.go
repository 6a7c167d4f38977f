//go:generate mockery --name NotificationRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"fmt"
	"time"

	"go_5_flashcard_keep/internal/middleware"
	"go_5_flashcard_keep/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NotificationRepository interface {
	CreateBatch(ctx context.Context, tx *gorm.DB, logs []*model.NotificationLog) error
	// CancelPlannedInWindow は [from, until) に予定されたままの通知を canceled に落とします。
	// 計画を立て直すときに古い計画を打ち消すために使います。
	CancelPlannedInWindow(ctx context.Context, tx *gorm.DB, tenantID uuid.UUID, from, until time.Time) error
	FindSentCardIDsSince(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, since time.Time) ([]uuid.UUID, error)
	FindDuePlanned(ctx context.Context, db *gorm.DB, now time.Time, limit int) ([]*model.NotificationLog, error)
	MarkSent(ctx context.Context, db *gorm.DB, notificationIDs []uuid.UUID, sentAt time.Time) error
	MarkSkipped(ctx context.Context, db *gorm.DB, notificationIDs []uuid.UUID) error
}

type gormNotificationRepository struct{}

func NewGormNotificationRepository() NotificationRepository {
	return &gormNotificationRepository{}
}

func (r *gormNotificationRepository) CreateBatch(ctx context.Context, tx *gorm.DB, logs []*model.NotificationLog) error {
	logger := middleware.GetLogger(ctx)
	if len(logs) == 0 {
		return nil
	}
	if err := tx.WithContext(ctx).Create(logs).Error; err != nil {
		logger.Error("Failed to create notification logs", "error", err, "count", len(logs))
		return fmt.Errorf("gormNotificationRepository.CreateBatch: %w", err)
	}
	return nil
}

func (r *gormNotificationRepository) CancelPlannedInWindow(ctx context.Context, tx *gorm.DB, tenantID uuid.UUID, from, until time.Time) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).
		Model(&model.NotificationLog{}).
		Where("tenant_id = ? AND status = ? AND scheduled_at >= ? AND scheduled_at < ?",
			tenantID, model.NotificationStatusPlanned, from, until).
		Update("status", model.NotificationStatusCanceled)
	if result.Error != nil {
		logger.Error("Failed to cancel planned notifications",
			"error", result.Error,
			"tenant_id", tenantID.String(),
		)
		return fmt.Errorf("gormNotificationRepository.CancelPlannedInWindow: %w", result.Error)
	}
	if result.RowsAffected > 0 {
		logger.Debug("Superseded planned notifications",
			"tenant_id", tenantID.String(),
			"count", result.RowsAffected,
		)
	}
	return nil
}

func (r *gormNotificationRepository) FindSentCardIDsSince(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, since time.Time) ([]uuid.UUID, error) {
	logger := middleware.GetLogger(ctx)
	var cardIDs []uuid.UUID
	err := db.WithContext(ctx).
		Model(&model.NotificationLog{}).
		Distinct("card_id").
		Where("tenant_id = ? AND status = ? AND sent_at >= ?", tenantID, model.NotificationStatusSent, since).
		Pluck("card_id", &cardIDs).Error
	if err != nil {
		logger.Error("Failed to find sent card IDs",
			"error", err,
			"tenant_id", tenantID.String(),
		)
		return nil, fmt.Errorf("gormNotificationRepository.FindSentCardIDsSince: %w", err)
	}
	return cardIDs, nil
}

func (r *gormNotificationRepository) FindDuePlanned(ctx context.Context, db *gorm.DB, now time.Time, limit int) ([]*model.NotificationLog, error) {
	logger := middleware.GetLogger(ctx)
	var logs []*model.NotificationLog
	result := db.WithContext(ctx).
		Where("status = ? AND scheduled_at <= ?", model.NotificationStatusPlanned, now).
		Order("scheduled_at ASC").
		Limit(limit).
		Find(&logs)
	if result.Error != nil {
		logger.Error("Failed to find due planned notifications", "error", result.Error)
		return nil, fmt.Errorf("gormNotificationRepository.FindDuePlanned: %w", result.Error)
	}
	return logs, nil
}

func (r *gormNotificationRepository) MarkSent(ctx context.Context, db *gorm.DB, notificationIDs []uuid.UUID, sentAt time.Time) error {
	logger := middleware.GetLogger(ctx)
	if len(notificationIDs) == 0 {
		return nil
	}
	err := db.WithContext(ctx).
		Model(&model.NotificationLog{}).
		Where("notification_id IN ?", notificationIDs).
		Updates(map[string]interface{}{
			"status":  model.NotificationStatusSent,
			"sent_at": sentAt,
		}).Error
	if err != nil {
		logger.Error("Failed to mark notifications as sent", "error", err, "count", len(notificationIDs))
		return fmt.Errorf("gormNotificationRepository.MarkSent: %w", err)
	}
	return nil
}

func (r *gormNotificationRepository) MarkSkipped(ctx context.Context, db *gorm.DB, notificationIDs []uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	if len(notificationIDs) == 0 {
		return nil
	}
	err := db.WithContext(ctx).
		Model(&model.NotificationLog{}).
		Where("notification_id IN ?", notificationIDs).
		Update("status", model.NotificationStatusSkipped).Error
	if err != nil {
		logger.Error("Failed to mark notifications as skipped", "error", err, "count", len(notificationIDs))
		return fmt.Errorf("gormNotificationRepository.MarkSkipped: %w", err)
	}
	return nil
}
