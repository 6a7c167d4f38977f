// internal/scheduler/selection_test.go
package scheduler

import (
	"math/rand"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go_5_flashcard_keep/internal/model"
)

func testPrefs(budget int) *model.SchedulingPreference {
	prefs := model.DefaultSchedulingPreference(uuid.New())
	prefs.DailyCardBudget = budget
	return prefs
}

func dueCard(tier model.Tier, nextDueAt time.Time) *model.Card {
	return &model.Card{
		CardID:    uuid.New(),
		TenantID:  uuid.New(),
		ClassID:   uuid.New(),
		Question:  "q",
		Answer:    "a",
		Tier:      tier,
		NextDueAt: nextDueAt,
		CreatedAt: nextDueAt.Add(-30 * 24 * time.Hour),
	}
}

func TestSelectDaily_PoolPriority(t *testing.T) {
	now := time.Date(2024, 5, 15, 10, 0, 0, 0, time.UTC)
	rng := rand.New(rand.NewSource(1))

	overdueThree := dueCard(model.TierReviewing, now.Add(-3*24*time.Hour)) // 3日超過ちょうど
	overdueTwo := dueCard(model.TierReviewing, now.Add(-2*24*time.Hour))
	overdueHour := dueCard(model.TierMastered, now.Add(-1*time.Hour))
	beyondCap := dueCard(model.TierReviewing, now.Add(-3*24*time.Hour-time.Hour)) // 3日超は対象外
	dueTonight := dueCard(model.TierReviewing, now.Add(8*time.Hour))
	learningIdle := dueCard(model.TierLearning, now.Add(24*time.Hour))
	learningStuck := dueCard(model.TierLearning, now.Add(-5*24*time.Hour)) // 延滞プール外でもLearning枠で拾う

	cards := []*model.Card{dueTonight, overdueTwo, learningIdle, overdueHour, beyondCap, overdueThree, learningStuck}

	selection, err := SelectDaily(cards, testPrefs(30), now, rng)

	require.NoError(t, err)
	// 延滞は超過が大きい順
	require.Len(t, selection.Overdue, 3)
	assert.Equal(t, overdueThree.CardID, selection.Overdue[0].CardID)
	assert.Equal(t, overdueTwo.CardID, selection.Overdue[1].CardID)
	assert.Equal(t, overdueHour.CardID, selection.Overdue[2].CardID)

	require.Len(t, selection.DueToday, 1)
	assert.Equal(t, dueTonight.CardID, selection.DueToday[0].CardID)

	// Learningは期日に関係なく毎日対象。入力順を保つ
	require.Len(t, selection.Learning, 2)
	assert.Equal(t, learningIdle.CardID, selection.Learning[0].CardID)
	assert.Equal(t, learningStuck.CardID, selection.Learning[1].CardID)

	for _, c := range selection.All() {
		assert.NotEqual(t, beyondCap.CardID, c.CardID, "3日を超えて滞留したカードは選択しない")
	}
}

func TestSelectDaily_DueTodayExcludesLearning(t *testing.T) {
	now := time.Date(2024, 5, 15, 10, 0, 0, 0, time.UTC)
	rng := rand.New(rand.NewSource(1))

	learningDueToday := dueCard(model.TierLearning, now.Add(4*time.Hour))
	reviewingDueToday := dueCard(model.TierReviewing, now.Add(4*time.Hour))

	selection, err := SelectDaily([]*model.Card{learningDueToday, reviewingDueToday}, testPrefs(10), now, rng)

	require.NoError(t, err)
	require.Len(t, selection.DueToday, 1)
	assert.Equal(t, reviewingDueToday.CardID, selection.DueToday[0].CardID)
	require.Len(t, selection.Learning, 1)
	assert.Equal(t, learningDueToday.CardID, selection.Learning[0].CardID)
}

func TestSelectDaily_BudgetTruncation(t *testing.T) {
	now := time.Date(2024, 5, 15, 10, 0, 0, 0, time.UTC)
	rng := rand.New(rand.NewSource(1))

	cards := []*model.Card{
		dueCard(model.TierReviewing, now.Add(-50*time.Hour)),
		dueCard(model.TierReviewing, now.Add(-40*time.Hour)),
		dueCard(model.TierReviewing, now.Add(-30*time.Hour)),
		dueCard(model.TierReviewing, now.Add(-20*time.Hour)),
		dueCard(model.TierReviewing, now.Add(-10*time.Hour)),
		dueCard(model.TierLearning, now.Add(24*time.Hour)),
	}

	selection, err := SelectDaily(cards, testPrefs(3), now, rng)

	require.NoError(t, err)
	// 延滞だけで予算を使い切る。当日期日とLearningには回らない
	require.Len(t, selection.Overdue, 3)
	assert.Equal(t, cards[0].CardID, selection.Overdue[0].CardID)
	assert.Equal(t, cards[1].CardID, selection.Overdue[1].CardID)
	assert.Equal(t, cards[2].CardID, selection.Overdue[2].CardID)
	assert.Empty(t, selection.DueToday)
	assert.Empty(t, selection.Learning)
	assert.Equal(t, 3, selection.Len())
}

func TestSelectDaily_LearningRotation(t *testing.T) {
	now := time.Date(2024, 5, 15, 10, 0, 0, 0, time.UTC)
	rng := rand.New(rand.NewSource(1))

	yesterday := now.Add(-24 * time.Hour)
	oneHourAgo := now.Add(-1 * time.Hour)

	var cards []*model.Card
	var staleIDs, strugglingIDs, recentIDs []uuid.UUID
	restIDs := make(map[uuid.UUID]bool)

	// (a) 2日以上学習していない (一度も学習していないものを含む)
	for i := 0; i < 10; i++ {
		c := dueCard(model.TierLearning, now.Add(24*time.Hour))
		c.CreatedAt = now.Add(-30 * 24 * time.Hour)
		cards = append(cards, c)
		staleIDs = append(staleIDs, c.CardID)
	}
	// (b) 正答率が0.7未満
	for i := 0; i < 5; i++ {
		c := dueCard(model.TierLearning, now.Add(24*time.Hour))
		c.CreatedAt = now.Add(-30 * 24 * time.Hour)
		c.LastStudiedAt = &yesterday
		c.TotalAttempts = 10
		c.CorrectTotal = 5
		cards = append(cards, c)
		strugglingIDs = append(strugglingIDs, c.CardID)
	}
	// (c) 作成7日以内
	for i := 0; i < 8; i++ {
		c := dueCard(model.TierLearning, now.Add(24*time.Hour))
		c.CreatedAt = now.Add(-2 * 24 * time.Hour)
		c.LastStudiedAt = &oneHourAgo
		c.TotalAttempts = 4
		c.CorrectTotal = 4
		cards = append(cards, c)
		recentIDs = append(recentIDs, c.CardID)
	}
	// (d) それ以外
	for i := 0; i < 27; i++ {
		c := dueCard(model.TierLearning, now.Add(24*time.Hour))
		c.CreatedAt = now.Add(-30 * 24 * time.Hour)
		c.LastStudiedAt = &oneHourAgo
		c.TotalAttempts = 10
		c.CorrectTotal = 9
		cards = append(cards, c)
		restIDs[c.CardID] = true
	}

	selection, err := SelectDaily(cards, testPrefs(30), now, rng)

	require.NoError(t, err)
	assert.Empty(t, selection.Overdue)
	assert.Empty(t, selection.DueToday)
	require.Len(t, selection.Learning, 30)

	got := selection.Learning
	for i, id := range staleIDs {
		assert.Equal(t, id, got[i].CardID, "先頭は学習間隔の空いたカード")
	}
	for i, id := range strugglingIDs {
		assert.Equal(t, id, got[10+i].CardID, "次に正答率の低いカード")
	}
	for i, id := range recentIDs {
		assert.Equal(t, id, got[15+i].CardID, "次に作成されたばかりのカード")
	}
	for _, c := range got[23:] {
		assert.True(t, restIDs[c.CardID], "端数は残りのカードからシャッフルで選ぶ")
	}
}

func TestSelectDaily_PriorityClass(t *testing.T) {
	now := time.Date(2024, 5, 15, 10, 0, 0, 0, time.UTC)
	rng := rand.New(rand.NewSource(1))

	priorityClass := uuid.New()
	otherClass := uuid.New()

	makeStale := func(classID uuid.UUID) *model.Card {
		c := dueCard(model.TierLearning, now.Add(24*time.Hour))
		c.ClassID = classID
		c.CreatedAt = now.Add(-30 * 24 * time.Hour)
		return c
	}
	other1 := makeStale(otherClass)
	pri1 := makeStale(priorityClass)
	other2 := makeStale(otherClass)
	pri2 := makeStale(priorityClass)

	prefs := testPrefs(2)
	prefs.PriorityClassID = &priorityClass

	selection, err := SelectDaily([]*model.Card{other1, pri1, other2, pri2}, prefs, now, rng)

	require.NoError(t, err)
	require.Len(t, selection.Learning, 2)
	assert.Equal(t, pri1.CardID, selection.Learning[0].CardID)
	assert.Equal(t, pri2.CardID, selection.Learning[1].CardID)
}

func TestSelectDaily_EdgeCases(t *testing.T) {
	now := time.Date(2024, 5, 15, 10, 0, 0, 0, time.UTC)

	t.Run("正常系: カードが無ければ空の選択", func(t *testing.T) {
		selection, err := SelectDaily(nil, testPrefs(30), now, rand.New(rand.NewSource(1)))

		require.NoError(t, err)
		assert.Equal(t, 0, selection.Len())
	})

	t.Run("正常系: 予算0は今日は学習なしの扱い", func(t *testing.T) {
		cards := []*model.Card{dueCard(model.TierLearning, now)}

		selection, err := SelectDaily(cards, testPrefs(0), now, rand.New(rand.NewSource(1)))

		require.NoError(t, err)
		assert.Equal(t, 0, selection.Len())
	})

	t.Run("異常系: 負の予算は設定エラー", func(t *testing.T) {
		cards := []*model.Card{dueCard(model.TierLearning, now)}

		selection, err := SelectDaily(cards, testPrefs(-1), now, rand.New(rand.NewSource(1)))

		assert.ErrorIs(t, err, model.ErrInvalidConfig)
		assert.Equal(t, 0, selection.Len())
	})

	t.Run("正常系: Inactiveはどのプールにも現れない", func(t *testing.T) {
		inactive := dueCard(model.TierInactive, now.Add(-1*time.Hour))

		selection, err := SelectDaily([]*model.Card{inactive}, testPrefs(30), now, rand.New(rand.NewSource(1)))

		require.NoError(t, err)
		assert.Equal(t, 0, selection.Len())
	})
}
