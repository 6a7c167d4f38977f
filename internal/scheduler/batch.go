// internal/scheduler/batch.go
package scheduler

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"go_5_flashcard_keep/internal/model"
)

// 通知の初回送信は now の1時間後から (即時発火を避ける)
const firstNotificationDelay = time.Hour

// 通知容量の段階別配分。Learningに全体の60%、残りの70%をReviewingに充てる
const (
	learningSharePercent  = 60
	reviewingSharePercent = 70
)

// BuildNotificationPlan は当日の残り時間に通知バッチを割り付けます。
// alreadyNotified は当日すでに通知済みのカードID集合 (nil可)。集合が渡され、
// かつ allow_card_repetition が無効なら該当カードを除外する。
// quiet_hours は [start, end) を送信許可ウィンドウとして扱い、start >= end は
// 設定エラーとして空の計画とエラーを返す (日跨ぎウィンドウは未対応)。
// 週末無効設定の土日は計画なし・エラーなし
func BuildNotificationPlan(selection *model.DailySelection, prefs *model.SchedulingPreference, alreadyNotified map[uuid.UUID]bool, now time.Time, rng *rand.Rand) ([]model.NotificationBatch, error) {
	batches := []model.NotificationBatch{}

	if prefs.QuietHoursStart >= prefs.QuietHoursEnd {
		return batches, fmt.Errorf("quiet_hours_start (%d) must be before quiet_hours_end (%d): %w",
			prefs.QuietHoursStart, prefs.QuietHoursEnd, model.ErrInvalidConfig)
	}
	if prefs.NotificationIntervalMinutes <= 0 {
		return batches, fmt.Errorf("notification_interval_minutes must be positive (got %d): %w",
			prefs.NotificationIntervalMinutes, model.ErrInvalidConfig)
	}
	if prefs.MaxNotificationsPerDay < 0 {
		return batches, fmt.Errorf("max_notifications_per_day must not be negative (got %d): %w",
			prefs.MaxNotificationsPerDay, model.ErrInvalidConfig)
	}
	if prefs.MaxNotificationsPerDay == 0 {
		return batches, nil
	}

	if !prefs.WeekendsEnabled {
		wd := now.Weekday()
		if wd == time.Saturday || wd == time.Sunday {
			return batches, nil
		}
	}

	pool := selection.All()
	if alreadyNotified != nil && !prefs.AllowCardRepetition {
		filtered := make([]*model.Card, 0, len(pool))
		for _, c := range pool {
			if !alreadyNotified[c.CardID] {
				filtered = append(filtered, c)
			}
		}
		pool = filtered
	}
	if len(pool) == 0 {
		return batches, nil
	}

	times := candidateSendTimes(prefs, now)
	if len(times) == 0 {
		return batches, nil
	}

	batchSize := batchSizeFor(len(pool), prefs.MaxCardsPerBatch)
	capacity := len(times) * batchSize

	// 段階別に容量を配分し、各段階内はシャッフルで選ぶ
	var learning, reviewing, mastered []*model.Card
	for _, c := range pool {
		switch c.Tier {
		case model.TierLearning:
			learning = append(learning, c)
		case model.TierReviewing:
			reviewing = append(reviewing, c)
		case model.TierMastered:
			mastered = append(mastered, c)
		}
	}
	shuffleCards(learning, rng)
	shuffleCards(reviewing, rng)
	shuffleCards(mastered, rng)

	learningTake := minInt(len(learning), capacity*learningSharePercent/100)
	remaining := capacity - learningTake
	reviewingTake := minInt(len(reviewing), remaining*reviewingSharePercent/100)
	remaining -= reviewingTake
	masteredTake := minInt(len(mastered), remaining)

	selected := make([]*model.Card, 0, learningTake+reviewingTake+masteredTake)
	selected = append(selected, learning[:learningTake]...)
	selected = append(selected, reviewing[:reviewingTake]...)
	selected = append(selected, mastered[:masteredTake]...)

	// バッチ内で段階が固まらないよう、結合後にもう一度だけシャッフルする
	shuffleCards(selected, rng)

	for i := 0; i < len(times) && i*batchSize < len(selected); i++ {
		end := minInt((i+1)*batchSize, len(selected))
		chunk := selected[i*batchSize : end]
		ids := make([]uuid.UUID, len(chunk))
		for j, c := range chunk {
			ids[j] = c.CardID
		}
		batches = append(batches, model.NotificationBatch{
			ScheduledAt: times[i],
			CardIDs:     ids,
		})
	}
	return batches, nil
}

// candidateSendTimes は now+1時間 から interval 刻みで当日内の送信候補時刻を列挙します。
// 送信許可ウィンドウ [quiet_hours_start, quiet_hours_end) の外の候補は読み飛ばす
func candidateSendTimes(prefs *model.SchedulingPreference, now time.Time) []time.Time {
	times := make([]time.Time, 0, prefs.MaxNotificationsPerDay)
	endOfDay := dayFloor(now).AddDate(0, 0, 1)
	interval := time.Duration(prefs.NotificationIntervalMinutes) * time.Minute

	for t := now.Add(firstNotificationDelay); t.Before(endOfDay) && len(times) < prefs.MaxNotificationsPerDay; t = t.Add(interval) {
		hour := t.Hour()
		if hour >= prefs.QuietHoursStart && hour < prefs.QuietHoursEnd {
			times = append(times, t)
		}
	}
	return times
}

// batchSizeFor は対象カード数に応じた1バッチあたりの枚数を返します
func batchSizeFor(totalCards, maxCardsPerBatch int) int {
	switch {
	case totalCards < 20:
		return 1
	case totalCards < 100:
		return minInt(maxCardsPerBatch, 3)
	default:
		return minInt(maxCardsPerBatch, 5)
	}
}

func shuffleCards(cards []*model.Card, rng *rand.Rand) {
	rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
}
