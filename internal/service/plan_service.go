// internal/service/plan_service.go
package service

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"go_5_flashcard_keep/internal/middleware"
	"go_5_flashcard_keep/internal/model"
	"go_5_flashcard_keep/internal/repository"
	"go_5_flashcard_keep/internal/scheduler"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PlanService interface {
	ComputeNotificationPlan(ctx context.Context, tenantID uuid.UUID) (*model.NotificationPlanResponse, error)
}

type planService struct {
	db        *gorm.DB
	cardRepo  repository.CardRepository
	prefRepo  repository.PreferenceRepository
	notifRepo repository.NotificationRepository
	clock     scheduler.Clock
}

func NewPlanService(db *gorm.DB, cardRepo repository.CardRepository, prefRepo repository.PreferenceRepository, notifRepo repository.NotificationRepository, clock scheduler.Clock) PlanService {
	if clock == nil {
		clock = scheduler.SystemClock()
	}
	return &planService{
		db:        db,
		cardRepo:  cardRepo,
		prefRepo:  prefRepo,
		notifRepo: notifRepo,
		clock:     clock,
	}
}

// ComputeNotificationPlan は当日の通知計画を計算し、planned の通知ログとして保存します。
// 同じ日に再計算した場合は既存の planned 行を canceled にしてから作り直します。
// 設定不備 (quiet_hours の逆転など) のときは既存の計画に触れず、空の計画と警告を返します
func (s *planService) ComputeNotificationPlan(ctx context.Context, tenantID uuid.UUID) (*model.NotificationPlanResponse, error) {
	logger := middleware.GetLogger(ctx).With("tenant_id", tenantID)

	prefs, err := s.prefRepo.FindByTenant(ctx, s.db, tenantID)
	if err != nil {
		if !errors.Is(err, model.ErrNotFound) {
			logger.Error("Failed to load scheduling preferences", "error", err)
			return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "設定の取得に失敗しました。", "", err)
		}
		prefs = model.DefaultSchedulingPreference(tenantID)
	}

	cards, err := s.cardRepo.FindActiveByTenant(ctx, s.db, tenantID)
	if err != nil {
		logger.Error("Failed to load active cards", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "カードの取得に失敗しました。", "", err)
	}

	now := s.clock.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	response := &model.NotificationPlanResponse{
		PlanDate: now.Format("2006-01-02"),
		Batches:  []model.NotificationBatchResponse{},
	}

	selection, err := scheduler.SelectDaily(cards, prefs, now, rng)
	if err != nil {
		if errors.Is(err, model.ErrInvalidConfig) {
			logger.Warn("Notification plan degraded by invalid preferences", "error", err)
			response.ConfigWarning = err.Error()
			return response, nil
		}
		logger.Error("Failed to select cards for notification plan", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "通知計画の作成に失敗しました。", "", err)
	}

	// 同一カードの重複通知を避ける場合は、当日すでに送信済みのカードを除外する
	var alreadyNotified map[uuid.UUID]bool
	if !prefs.AllowCardRepetition {
		sentIDs, err := s.notifRepo.FindSentCardIDsSince(ctx, s.db, tenantID, startOfDay)
		if err != nil {
			logger.Error("Failed to load sent notifications", "error", err)
			return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "通知履歴の取得に失敗しました。", "", err)
		}
		alreadyNotified = make(map[uuid.UUID]bool, len(sentIDs))
		for _, id := range sentIDs {
			alreadyNotified[id] = true
		}
	}

	batches, err := scheduler.BuildNotificationPlan(selection, prefs, alreadyNotified, now, rng)
	if err != nil {
		if errors.Is(err, model.ErrInvalidConfig) {
			logger.Warn("Notification plan degraded by invalid preferences", "error", err)
			response.ConfigWarning = err.Error()
			return response, nil
		}
		logger.Error("Failed to build notification plan", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "通知計画の作成に失敗しました。", "", err)
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.notifRepo.CancelPlannedInWindow(ctx, tx, tenantID, startOfDay, startOfDay.AddDate(0, 0, 1)); err != nil {
			logger.Error("Failed to cancel previous plan", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "既存の通知計画の取り消しに失敗しました。", "", err)
		}

		logs := make([]*model.NotificationLog, 0, len(batches))
		for _, batch := range batches {
			for _, cardID := range batch.CardIDs {
				logs = append(logs, &model.NotificationLog{
					NotificationID: uuid.New(),
					TenantID:       tenantID,
					CardID:         cardID,
					ScheduledAt:    batch.ScheduledAt,
					Status:         model.NotificationStatusPlanned,
				})
			}
		}
		if err := s.notifRepo.CreateBatch(ctx, tx, logs); err != nil {
			logger.Error("Failed to save notification plan", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "通知計画の保存に失敗しました。", "", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	for _, batch := range batches {
		response.Batches = append(response.Batches, model.NotificationBatchResponse{
			ScheduledAt: batch.ScheduledAt,
			CardIDs:     batch.CardIDs,
		})
	}

	logger.Info("Notification plan computed", "plan_date", response.PlanDate, "batches", len(response.Batches))
	return response, nil
}
