// internal/scheduler/promotion.go
package scheduler

import (
	"time"

	"go_5_flashcard_keep/internal/model"
)

const (
	promotionMinStreak   = 5
	promotionMinAccuracy = 0.8
	promotionCooldown    = 3 * 24 * time.Hour
)

// IsEligibleForPromotion は昇格を提案してよいかを判定します。
// 提案するだけで、昇格の確定はユーザー承認後の ApplyPromotion が行う
func IsEligibleForPromotion(card model.Card, now time.Time) bool {
	if card.Tier == model.TierMastered || card.Tier == model.TierInactive {
		return false
	}
	if card.CorrectStreak < promotionMinStreak {
		return false
	}
	if card.Accuracy() < promotionMinAccuracy {
		return false
	}
	if card.LastPromotionOfferedAt != nil && now.Sub(*card.LastPromotionOfferedAt) < promotionCooldown {
		return false
	}
	return true
}

// NextTier は次の昇格先を返します。これ以上昇格できない場合は nil
func NextTier(tier model.Tier) *model.Tier {
	switch tier {
	case model.TierLearning:
		next := model.TierReviewing
		return &next
	case model.TierReviewing:
		next := model.TierMastered
		return &next
	default:
		return nil
	}
}

// ApplyPromotion は昇格を確定し、新しい段階での初回スケジュールを与えます。
// targetTier が正しい次の段階でない場合は model.ErrInvalidOperation を返す。
// ストリークはリセットしてから間隔を計算するため、ストリークボーナスは乗らない。
// 通算カウンタと lastStudiedAt は回答ではないので変更しない
func ApplyPromotion(card model.Card, targetTier model.Tier, now time.Time) (model.Card, error) {
	next := NextTier(card.Tier)
	if next == nil || *next != targetTier {
		return card, model.ErrInvalidOperation
	}

	card.Tier = targetTier
	card.CorrectStreak = 0
	offeredAt := now
	card.LastPromotionOfferedAt = &offeredAt

	days := correctIntervalDays(&card, 0)
	card.NextDueAt = now.AddDate(0, 0, days)
	return card, nil
}
