// internal/scheduler/review.go
package scheduler

import (
	"math"
	"time"

	"go_5_flashcard_keep/internal/model"
)

// 段階ごとの基準間隔 (日)
var baseIntervalDays = map[model.Tier]int{
	model.TierLearning:  1,
	model.TierReviewing: 3,
	model.TierMastered:  7,
}

// 段階ごとの間隔の下限・上限 (日)
var intervalBoundsDays = map[model.Tier]struct{ Min, Max int }{
	model.TierLearning:  {Min: 1, Max: 3},
	model.TierReviewing: {Min: 2, Max: 14},
	model.TierMastered:  {Min: 7, Max: 90},
}

const (
	// 平均回答時間が未計測のときに使う初期値 (ミリ秒)
	seedAvgResponseMs = 5000.0

	fastResponseRatio  = 0.7
	slowResponseRatio  = 1.5
	fastResponseFactor = 1.1
	slowResponseFactor = 0.9

	streakBonusStep = 0.1
	streakBonusCap  = 0.5

	// Learning段階で不正解だったときの再出題間隔 (分)
	retryBaseMinutes    = 10
	retryStepMinutes    = 5
	retryCeilingMinutes = 240
)

// ScheduleAnswer は回答結果をカードへ反映し、次回出題日時を計算します。
// card は値で受け取り、更新後のコピーを返す。now は明示的な入力で、
// グローバルな時計は読まない。Inactive のカードには model.ErrInvalidOperation を返す。
// responseTimeMs が 0 以下の場合は「未計測」として速度補正を行わない
func ScheduleAnswer(card model.Card, isCorrect bool, responseTimeMs int64, now time.Time) (model.Card, error) {
	if card.Tier == model.TierInactive {
		return card, model.ErrInvalidOperation
	}

	card.TotalAttempts++
	studiedAt := now
	card.LastStudiedAt = &studiedAt

	if isCorrect {
		card.CorrectTotal++
		card.CorrectStreak++
		days := correctIntervalDays(&card, responseTimeMs)
		card.NextDueAt = now.AddDate(0, 0, days)
		return card, nil
	}

	// 不正解: ストリークをリセットし、段階を1つ戻す (Learningは据え置き)
	previousTier := card.Tier
	card.CorrectStreak = 0
	switch previousTier {
	case model.TierLearning:
		minutes := retryBaseMinutes + card.TotalAttempts*retryStepMinutes
		if minutes > retryCeilingMinutes {
			minutes = retryCeilingMinutes
		}
		card.NextDueAt = now.Add(time.Duration(minutes) * time.Minute)
	case model.TierReviewing:
		card.Tier = model.TierLearning
		card.NextDueAt = now.AddDate(0, 0, 1)
	case model.TierMastered:
		card.Tier = model.TierReviewing
		card.NextDueAt = now.AddDate(0, 0, 2)
	}
	return card, nil
}

// correctIntervalDays は正解時の出題間隔 (日) を計算します。
// カウンタは加算済みの値を参照する
func correctIntervalDays(card *model.Card, responseTimeMs int64) int {
	base := baseIntervalDays[card.Tier]

	multiplier := accuracyMultiplier(card.Accuracy())

	bonus := float64(card.CorrectStreak) * streakBonusStep
	if bonus > streakBonusCap {
		bonus = streakBonusCap
	}
	multiplier += bonus

	if responseTimeMs > 0 {
		avg := card.AvgResponseTimeMs
		if avg == 0 {
			avg = seedAvgResponseMs
		}
		switch {
		case float64(responseTimeMs) < avg*fastResponseRatio:
			multiplier *= fastResponseFactor
		case float64(responseTimeMs) > avg*slowResponseRatio:
			multiplier *= slowResponseFactor
		}
	}

	days := int(math.Round(float64(base) * multiplier))

	bounds := intervalBoundsDays[card.Tier]
	if days < bounds.Min {
		days = bounds.Min
	}
	if days > bounds.Max {
		days = bounds.Max
	}
	return days
}

// accuracyMultiplier は通算正答率に応じた倍率を返します
func accuracyMultiplier(accuracy float64) float64 {
	switch {
	case accuracy >= 0.9:
		return 1.5
	case accuracy >= 0.8:
		return 1.2
	case accuracy >= 0.6:
		return 1.0
	default:
		return 0.8
	}
}

// SmoothResponseTime は平均回答時間を指数平滑 (0.7 : 0.3) で更新します。
// スケジュール計算の後に呼ぶこと。responseTimeMs が 0 以下なら現状維持
func SmoothResponseTime(avgMs float64, responseTimeMs int64) float64 {
	if responseTimeMs <= 0 {
		return avgMs
	}
	if avgMs == 0 {
		return float64(responseTimeMs)
	}
	return avgMs*0.7 + float64(responseTimeMs)*0.3
}
