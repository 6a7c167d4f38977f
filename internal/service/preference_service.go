// internal/service/preference_service.go
package service

import (
	"context"
	"errors"

	"go_5_flashcard_keep/internal/middleware"
	"go_5_flashcard_keep/internal/model"
	"go_5_flashcard_keep/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PreferenceService interface {
	GetPreferences(ctx context.Context, tenantID uuid.UUID) (*model.SchedulingPreference, error)
	PatchPreferences(ctx context.Context, tenantID uuid.UUID, req *model.PatchPreferenceRequest) (*model.SchedulingPreference, error)
}

type preferenceService struct {
	db        *gorm.DB
	prefRepo  repository.PreferenceRepository
	classRepo repository.ClassRepository
}

func NewPreferenceService(db *gorm.DB, prefRepo repository.PreferenceRepository, classRepo repository.ClassRepository) PreferenceService {
	return &preferenceService{
		db:        db,
		prefRepo:  prefRepo,
		classRepo: classRepo,
	}
}

// GetPreferences はテナントの設定を返します。未作成ならデフォルト値で払い出します
func (s *preferenceService) GetPreferences(ctx context.Context, tenantID uuid.UUID) (*model.SchedulingPreference, error) {
	logger := middleware.GetLogger(ctx).With("tenant_id", tenantID)

	prefs, err := s.prefRepo.FindByTenant(ctx, s.db, tenantID)
	if err == nil {
		return prefs, nil
	}
	if !errors.Is(err, model.ErrNotFound) {
		logger.Error("Failed to load scheduling preferences", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "設定の取得に失敗しました。", "", err)
	}

	prefs = model.DefaultSchedulingPreference(tenantID)
	if err := s.prefRepo.Upsert(ctx, s.db, prefs); err != nil {
		logger.Error("Failed to provision default preferences", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "設定の初期化に失敗しました。", "", err)
	}
	logger.Info("Provisioned default scheduling preferences")
	return prefs, nil
}

// PatchPreferences は nil でないフィールドだけを上書きします。
// priority_class_id に uuid.Nil を渡すと優先クラスの指定を解除します
func (s *preferenceService) PatchPreferences(ctx context.Context, tenantID uuid.UUID, req *model.PatchPreferenceRequest) (*model.SchedulingPreference, error) {
	logger := middleware.GetLogger(ctx).With("tenant_id", tenantID)

	var updated *model.SchedulingPreference
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		prefs, err := s.prefRepo.FindByTenant(ctx, tx, tenantID)
		if err != nil {
			if !errors.Is(err, model.ErrNotFound) {
				logger.Error("Failed to load scheduling preferences", "error", err)
				return model.NewAppError("INTERNAL_SERVER_ERROR", "設定の取得に失敗しました。", "", err)
			}
			prefs = model.DefaultSchedulingPreference(tenantID)
		}

		if req.DailyCardBudget != nil {
			prefs.DailyCardBudget = *req.DailyCardBudget
		}
		if req.QuietHoursStart != nil {
			prefs.QuietHoursStart = *req.QuietHoursStart
		}
		if req.QuietHoursEnd != nil {
			prefs.QuietHoursEnd = *req.QuietHoursEnd
		}
		if req.NotificationIntervalMinutes != nil {
			prefs.NotificationIntervalMinutes = *req.NotificationIntervalMinutes
		}
		if req.MaxNotificationsPerDay != nil {
			prefs.MaxNotificationsPerDay = *req.MaxNotificationsPerDay
		}
		if req.MaxCardsPerBatch != nil {
			prefs.MaxCardsPerBatch = *req.MaxCardsPerBatch
		}
		if req.WeekendsEnabled != nil {
			prefs.WeekendsEnabled = *req.WeekendsEnabled
		}
		if req.AllowCardRepetition != nil {
			prefs.AllowCardRepetition = *req.AllowCardRepetition
		}
		if req.PriorityClassID != nil {
			if *req.PriorityClassID == uuid.Nil {
				prefs.PriorityClassID = nil
			} else {
				if _, err := s.classRepo.FindByID(ctx, tx, tenantID, *req.PriorityClassID); err != nil {
					if errors.Is(err, model.ErrNotFound) {
						logger.Warn("Priority class not found", "class_id", *req.PriorityClassID)
						return model.NewAppError("CLASS_NOT_FOUND", "指定されたクラスが見つかりません。", "priority_class_id", model.ErrNotFound)
					}
					logger.Error("Failed to check priority class", "error", err)
					return model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
				}
				prefs.PriorityClassID = req.PriorityClassID
			}
		}

		// 範囲チェックはバリデータが行う。時間帯の前後関係だけここで確認する
		if prefs.QuietHoursStart >= prefs.QuietHoursEnd {
			logger.Warn("Rejected inverted quiet hours", "start", prefs.QuietHoursStart, "end", prefs.QuietHoursEnd)
			return model.NewAppError("VALIDATION_ERROR", "通知時間帯の開始は終了より前である必要があります。", "quiet_hours_start", model.ErrInvalidInput)
		}

		if err := s.prefRepo.Upsert(ctx, tx, prefs); err != nil {
			logger.Error("Failed to save scheduling preferences", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "設定の保存に失敗しました。", "", err)
		}
		updated = prefs
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Scheduling preferences updated")
	return updated, nil
}
