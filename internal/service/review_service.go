// internal/service/review_service.go
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

type ReviewService interface {
	GetTodayCards(ctx context.Context, tenantID uuid.UUID) ([]*model.TodayCardResponse, error)
	SubmitAnswer(ctx context.Context, tenantID, cardID uuid.UUID, req *model.SubmitAnswerRequest) (*model.AnswerResultResponse, error)
	GetPromotion(ctx context.Context, tenantID, cardID uuid.UUID) (*model.PromotionStatusResponse, error)
	PostPromotion(ctx context.Context, tenantID, cardID uuid.UUID, req *model.PromoteCardRequest) (*model.AnswerResultResponse, error)
}

type reviewService struct {
	db       *gorm.DB
	cardRepo repository.CardRepository
	prefRepo repository.PreferenceRepository
	clock    scheduler.Clock
}

func NewReviewService(db *gorm.DB, cardRepo repository.CardRepository, prefRepo repository.PreferenceRepository, clock scheduler.Clock) ReviewService {
	if clock == nil {
		clock = scheduler.SystemClock()
	}
	return &reviewService{
		db:       db,
		cardRepo: cardRepo,
		prefRepo: prefRepo,
		clock:    clock,
	}
}

// GetTodayCards は今日学習するカードを優先度順 (延滞 → 当日期日 → learning) に返します。
// 結果は永続化せず、呼び出しのたびに現在のカード状態から再計算します
func (s *reviewService) GetTodayCards(ctx context.Context, tenantID uuid.UUID) ([]*model.TodayCardResponse, error) {
	logger := middleware.GetLogger(ctx).With("tenant_id", tenantID)

	prefs, err := s.prefRepo.FindByTenant(ctx, s.db, tenantID)
	if err != nil {
		if !errors.Is(err, model.ErrNotFound) {
			logger.Error("Failed to load scheduling preferences", "error", err)
			return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "設定の取得に失敗しました。", "", err)
		}
		// 設定未作成のテナントはデフォルト値で選択する (行の払い出しは設定APIが行う)
		prefs = model.DefaultSchedulingPreference(tenantID)
	}

	cards, err := s.cardRepo.FindActiveByTenant(ctx, s.db, tenantID)
	if err != nil {
		logger.Error("Failed to load active cards", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "カードの取得に失敗しました。", "", err)
	}

	now := s.clock.Now()
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	selection, err := scheduler.SelectDaily(cards, prefs, now, rng)
	if err != nil {
		if errors.Is(err, model.ErrInvalidConfig) {
			logger.Warn("Scheduling preferences are invalid", "error", err)
			return nil, model.NewAppError("INVALID_SCHEDULING_CONFIG", "スケジュール設定に不備があります。設定を見直してください。", "daily_card_budget", err)
		}
		logger.Error("Failed to select today's cards", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "今日のカードの選択に失敗しました。", "", err)
	}

	responses := make([]*model.TodayCardResponse, 0, selection.Len())
	appendPool := func(cards []*model.Card, pool string) {
		for _, c := range cards {
			responses = append(responses, &model.TodayCardResponse{
				CardID:    c.CardID,
				ClassID:   c.ClassID,
				Question:  c.Question,
				Answer:    c.Answer,
				Tier:      c.Tier,
				NextDueAt: c.NextDueAt,
				Pool:      pool,
			})
		}
	}
	appendPool(selection.Overdue, model.PoolOverdue)
	appendPool(selection.DueToday, model.PoolDueToday)
	appendPool(selection.Learning, model.PoolLearning)

	logger.Info("Successfully selected today's cards",
		"total", selection.Len(),
		"overdue", len(selection.Overdue),
		"due_today", len(selection.DueToday),
		"learning", len(selection.Learning))
	return responses, nil
}

// SubmitAnswer は回答結果を反映し、次回期日と通算成績を更新します
func (s *reviewService) SubmitAnswer(ctx context.Context, tenantID, cardID uuid.UUID, req *model.SubmitAnswerRequest) (*model.AnswerResultResponse, error) {
	logger := middleware.GetLogger(ctx).With("tenant_id", tenantID, "card_id", cardID)

	if req.IsCorrect == nil {
		return nil, model.NewAppError("VALIDATION_ERROR", "is_correctは必須項目です。", "is_correct", model.ErrInvalidInput)
	}
	var responseTimeMs int64
	if req.ResponseTimeMs != nil {
		responseTimeMs = *req.ResponseTimeMs
	}

	var result *model.AnswerResultResponse
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		card, err := s.cardRepo.FindByIDForUpdate(ctx, tx, tenantID, cardID)
		if err != nil {
			return err
		}

		now := s.clock.Now()
		updated, err := scheduler.ScheduleAnswer(*card, *req.IsCorrect, responseTimeMs, now)
		if err != nil {
			if errors.Is(err, model.ErrInvalidOperation) {
				logger.Warn("Answer submitted for inactive card")
				return model.NewAppError("CARD_INACTIVE", "停止中のカードには回答できません。", "", model.ErrInvalidOperation)
			}
			logger.Error("Failed to schedule answer", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "回答の反映に失敗しました。", "", err)
		}

		// 平均回答時間の平滑化は期日計算の後。期日計算は更新前の平均を参照する
		if responseTimeMs > 0 {
			updated.AvgResponseTimeMs = scheduler.SmoothResponseTime(card.AvgResponseTimeMs, responseTimeMs)
		}

		if err := s.cardRepo.Update(ctx, tx, &updated); err != nil {
			logger.Error("Failed to save scheduled card", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "回答の保存に失敗しました。", "", err)
		}

		result = &model.AnswerResultResponse{
			CardID:            updated.CardID,
			Tier:              updated.Tier,
			CorrectStreak:     updated.CorrectStreak,
			TotalAttempts:     updated.TotalAttempts,
			NextDueAt:         updated.NextDueAt,
			AvgResponseTimeMs: updated.AvgResponseTimeMs,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Answer recorded", "is_correct", *req.IsCorrect, "tier", result.Tier, "next_due_at", result.NextDueAt)
	return result, nil
}

// GetPromotion は昇格条件を満たしているかを評価します。カードの状態は変更しません
func (s *reviewService) GetPromotion(ctx context.Context, tenantID, cardID uuid.UUID) (*model.PromotionStatusResponse, error) {
	card, err := s.cardRepo.FindByID(ctx, s.db, tenantID, cardID)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	status := &model.PromotionStatusResponse{
		CardID:      card.CardID,
		Eligible:    scheduler.IsEligibleForPromotion(*card, now),
		CurrentTier: card.Tier,
	}
	if status.Eligible {
		status.NextTier = scheduler.NextTier(card.Tier)
	}
	return status, nil
}

// PostPromotion は昇格を確定します。行ロック下で条件を再評価するため、
// 評価と確定の間に回答が割り込んでも不正な昇格は起きません
func (s *reviewService) PostPromotion(ctx context.Context, tenantID, cardID uuid.UUID, req *model.PromoteCardRequest) (*model.AnswerResultResponse, error) {
	logger := middleware.GetLogger(ctx).With("tenant_id", tenantID, "card_id", cardID)

	var result *model.AnswerResultResponse
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		card, err := s.cardRepo.FindByIDForUpdate(ctx, tx, tenantID, cardID)
		if err != nil {
			return err
		}

		now := s.clock.Now()
		if !scheduler.IsEligibleForPromotion(*card, now) {
			logger.Warn("Promotion requested for ineligible card", "tier", card.Tier, "correct_streak", card.CorrectStreak)
			return model.NewAppError("PROMOTION_NOT_ELIGIBLE", "このカードは昇格条件を満たしていません。", "", model.ErrInvalidOperation)
		}

		promoted, err := scheduler.ApplyPromotion(*card, req.TargetTier, now)
		if err != nil {
			if errors.Is(err, model.ErrInvalidOperation) {
				logger.Warn("Invalid promotion target", "current_tier", card.Tier, "target_tier", req.TargetTier)
				return model.NewAppError("INVALID_TARGET_TIER", "指定された昇格先が不正です。", "target_tier", model.ErrInvalidOperation)
			}
			logger.Error("Failed to apply promotion", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "昇格の反映に失敗しました。", "", err)
		}

		if err := s.cardRepo.Update(ctx, tx, &promoted); err != nil {
			logger.Error("Failed to save promoted card", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "昇格の保存に失敗しました。", "", err)
		}

		result = &model.AnswerResultResponse{
			CardID:            promoted.CardID,
			Tier:              promoted.Tier,
			CorrectStreak:     promoted.CorrectStreak,
			TotalAttempts:     promoted.TotalAttempts,
			NextDueAt:         promoted.NextDueAt,
			AvgResponseTimeMs: promoted.AvgResponseTimeMs,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Card promoted", "tier", result.Tier, "next_due_at", result.NextDueAt)
	return result, nil
}
