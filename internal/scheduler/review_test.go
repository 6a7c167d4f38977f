// internal/scheduler/review_test.go
package scheduler

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go_5_flashcard_keep/internal/model"
)

func newTestCard(tier model.Tier, streak, attempts, correct int) model.Card {
	return model.Card{
		CardID:        uuid.New(),
		TenantID:      uuid.New(),
		ClassID:       uuid.New(),
		Question:      "What is the capital of Japan?",
		Answer:        "Tokyo",
		Tier:          tier,
		CorrectStreak: streak,
		TotalAttempts: attempts,
		CorrectTotal:  correct,
	}
}

func TestScheduleAnswer_Correct(t *testing.T) {
	now := time.Date(2024, 5, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name            string
		card            model.Card
		responseTimeMs  int64
		expectedTier    model.Tier
		expectedStreak  int
		expectedDueDays int
	}{
		{
			// 初回正解: 正答率1.0で倍率1.5、ストリークボーナス0.1 → round(1*1.6)=2日
			name:            "正常系: 新規カードの初回正解は2日後",
			card:            newTestCard(model.TierLearning, 0, 0, 0),
			responseTimeMs:  0,
			expectedTier:    model.TierLearning,
			expectedStreak:  1,
			expectedDueDays: 2,
		},
		{
			// 正答率 9/10=0.9 → 1.5、ストリーク5 → +0.5 (上限) → round(3*2.0)=6日
			name:            "正常系: Reviewingで好成績ならストリークボーナス上限",
			card:            newTestCard(model.TierReviewing, 4, 9, 8),
			responseTimeMs:  0,
			expectedTier:    model.TierReviewing,
			expectedStreak:  5,
			expectedDueDays: 6,
		},
		{
			// 平均未計測はシード5000ms。3000ms < 5000*0.7 → 倍率×1.1
			// 正答率1.0 ストリーク1 → (1.5+0.1)*1.1=1.76 → round(1*1.76)=2日
			name:            "正常系: 速い回答には間隔ボーナス",
			card:            newTestCard(model.TierLearning, 0, 0, 0),
			responseTimeMs:  3000,
			expectedTier:    model.TierLearning,
			expectedStreak:  1,
			expectedDueDays: 2,
		},
		{
			// 正答率 5/10=0.5 → 0.8、ストリーク1 → 0.9、8000ms > 5000*1.5 → ×0.9
			// round(7*0.81)=6日 だが Masteredの下限7日でクランプ
			name:            "正常系: Masteredの間隔は下限7日でクランプ",
			card:            newTestCard(model.TierMastered, 0, 9, 4),
			responseTimeMs:  8000,
			expectedTier:    model.TierMastered,
			expectedStreak:  1,
			expectedDueDays: 7,
		},
		{
			// 正答率 6/10=0.6 → 1.0、ストリーク3 → +0.3 → round(3*1.3)=4日
			name:            "正常系: 正答率0.6ちょうどは倍率1.0",
			card:            newTestCard(model.TierReviewing, 2, 9, 5),
			responseTimeMs:  0,
			expectedTier:    model.TierReviewing,
			expectedStreak:  3,
			expectedDueDays: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attemptsBefore := tt.card.TotalAttempts
			correctBefore := tt.card.CorrectTotal

			updated, err := ScheduleAnswer(tt.card, true, tt.responseTimeMs, now)

			require.NoError(t, err)
			assert.Equal(t, tt.expectedTier, updated.Tier)
			assert.Equal(t, tt.expectedStreak, updated.CorrectStreak)
			assert.Equal(t, attemptsBefore+1, updated.TotalAttempts)
			assert.Equal(t, correctBefore+1, updated.CorrectTotal)
			assert.Equal(t, now.AddDate(0, 0, tt.expectedDueDays), updated.NextDueAt)
			require.NotNil(t, updated.LastStudiedAt)
			assert.Equal(t, now, *updated.LastStudiedAt)
		})
	}
}

func TestScheduleAnswer_Incorrect(t *testing.T) {
	now := time.Date(2024, 5, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		card          model.Card
		expectedTier  model.Tier
		expectedDueAt time.Time
	}{
		{
			// 加算後 attempts=1 → 10+1*5=15分後
			name:          "正常系: Learningは段階据え置きで15分後に再出題",
			card:          newTestCard(model.TierLearning, 2, 0, 0),
			expectedTier:  model.TierLearning,
			expectedDueAt: now.Add(15 * time.Minute),
		},
		{
			// 加算後 attempts=51 → 10+255=265分 → 上限240分
			name:          "正常系: Learningの再出題間隔は240分が上限",
			card:          newTestCard(model.TierLearning, 0, 50, 30),
			expectedTier:  model.TierLearning,
			expectedDueAt: now.Add(240 * time.Minute),
		},
		{
			name:          "正常系: ReviewingはLearningに降格して1日後",
			card:          newTestCard(model.TierReviewing, 3, 10, 8),
			expectedTier:  model.TierLearning,
			expectedDueAt: now.AddDate(0, 0, 1),
		},
		{
			name:          "正常系: MasteredはReviewingに降格して2日後",
			card:          newTestCard(model.TierMastered, 6, 20, 18),
			expectedTier:  model.TierReviewing,
			expectedDueAt: now.AddDate(0, 0, 2),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attemptsBefore := tt.card.TotalAttempts
			correctBefore := tt.card.CorrectTotal

			updated, err := ScheduleAnswer(tt.card, false, 0, now)

			require.NoError(t, err)
			assert.Equal(t, tt.expectedTier, updated.Tier)
			assert.Equal(t, 0, updated.CorrectStreak)
			assert.Equal(t, attemptsBefore+1, updated.TotalAttempts)
			assert.Equal(t, correctBefore, updated.CorrectTotal)
			assert.Equal(t, tt.expectedDueAt, updated.NextDueAt)
			require.NotNil(t, updated.LastStudiedAt)
			assert.Equal(t, now, *updated.LastStudiedAt)
		})
	}
}

func TestScheduleAnswer_InactiveCard(t *testing.T) {
	now := time.Date(2024, 5, 15, 10, 0, 0, 0, time.UTC)
	card := newTestCard(model.TierInactive, 0, 5, 3)

	_, err := ScheduleAnswer(card, true, 0, now)

	assert.ErrorIs(t, err, model.ErrInvalidOperation)
}

func TestSmoothResponseTime(t *testing.T) {
	tests := []struct {
		name           string
		avgMs          float64
		responseTimeMs int64
		expected       float64
	}{
		{
			name:           "正常系: 初回計測はそのまま採用",
			avgMs:          0,
			responseTimeMs: 4000,
			expected:       4000,
		},
		{
			name:           "正常系: 2回目以降は0.7:0.3で平滑化",
			avgMs:          4000,
			responseTimeMs: 6000,
			expected:       4600,
		},
		{
			name:           "正常系: 未計測の回答では変化しない",
			avgMs:          4000,
			responseTimeMs: 0,
			expected:       4000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, SmoothResponseTime(tt.avgMs, tt.responseTimeMs), 0.0001)
		})
	}
}
