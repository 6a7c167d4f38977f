// internal/scheduler/selection.go
package scheduler

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/google/uuid"

	"go_5_flashcard_keep/internal/model"
)

const (
	// これ以上延滞したカードは当日の選択対象にしない (外部のアーカイブ判断に委ねる)
	maxOverdueDays = 3

	// Learningローテーションで「しばらく学習していない」とみなす閾値
	staleLearningAfter = 2 * 24 * time.Hour

	// Learningローテーションで「作成されたばかり」とみなす閾値
	recentCreationWindow = 7 * 24 * time.Hour

	lowAccuracyThreshold = 0.7
)

// SelectDaily は「今日学習するカード」を優先度順に選びます。
// 優先順位は 延滞 → 当日期日 (Reviewing/Mastered) → Learningローテーション。
// cards の入力順が同値キーの安定ソート基準になるため、同じ入力列に対して
// 決定的な結果を返す (Learningの端数シャッフルを除く)。
// dailyCardBudget が 0 なら空の選択、負なら設定エラーとして空の選択とエラーを返す
func SelectDaily(cards []*model.Card, prefs *model.SchedulingPreference, now time.Time, rng *rand.Rand) (*model.DailySelection, error) {
	selection := &model.DailySelection{
		Overdue:  []*model.Card{},
		DueToday: []*model.Card{},
		Learning: []*model.Card{},
	}

	budget := prefs.DailyCardBudget
	if budget < 0 {
		return selection, fmt.Errorf("daily_card_budget must not be negative (got %d): %w", budget, model.ErrInvalidConfig)
	}
	if budget == 0 || len(cards) == 0 {
		return selection, nil
	}

	maxOverdue := time.Duration(maxOverdueDays) * 24 * time.Hour

	// 延滞プール: 期日超過が3日以内のカード。超過が大きい順 (= next_due_at 昇順)
	overdue := make([]*model.Card, 0)
	overdueIDs := make(map[uuid.UUID]bool)
	for _, c := range cards {
		if c.Tier == model.TierInactive {
			continue
		}
		over := now.Sub(c.NextDueAt)
		if over > 0 && over <= maxOverdue {
			overdue = append(overdue, c)
			overdueIDs[c.CardID] = true
		}
	}
	sort.SliceStable(overdue, func(i, j int) bool {
		return overdue[i].NextDueAt.Before(overdue[j].NextDueAt)
	})

	// 当日期日プール: Reviewing/Mastered のうち日付単位で期日に達したカード。
	// 延滞プールに入ったカードと、3日超の滞留カードは含めない
	today := dayFloor(now)
	dueToday := make([]*model.Card, 0)
	for _, c := range cards {
		if c.Tier != model.TierReviewing && c.Tier != model.TierMastered {
			continue
		}
		if overdueIDs[c.CardID] {
			continue
		}
		if now.Sub(c.NextDueAt) > maxOverdue {
			continue
		}
		if !dayFloor(c.NextDueAt).After(today) {
			dueToday = append(dueToday, c)
		}
	}
	sort.SliceStable(dueToday, func(i, j int) bool {
		return dueToday[i].NextDueAt.Before(dueToday[j].NextDueAt)
	})

	// 延滞は自然なサイズのまま予算上限まで確保し、残りを当日期日 → Learning に流す
	overdueTake := minInt(len(overdue), budget)
	selection.Overdue = overdue[:overdueTake]
	remaining := budget - overdueTake

	dueTake := minInt(len(dueToday), remaining)
	selection.DueToday = dueToday[:dueTake]
	remaining -= dueTake

	if remaining <= 0 {
		return selection, nil
	}

	// Learningプール: 期日に関係なく毎日出題対象。延滞プールに入った分は除く
	learning := make([]*model.Card, 0)
	for _, c := range cards {
		if c.Tier != model.TierLearning || overdueIDs[c.CardID] {
			continue
		}
		learning = append(learning, c)
	}

	if len(learning) <= remaining {
		selection.Learning = learning
		return selection, nil
	}
	selection.Learning = rotateLearning(learning, remaining, prefs.PriorityClassID, now, rng)
	return selection, nil
}

// rotateLearning は予算を超えるLearningカードからローテーション選択を行います。
// 優先グループ: (a) 2日以上学習していない (b) 正答率が低い (c) 作成7日以内、
// 最後に残りをシャッフルして詰める。1パスの振り分けなのでグループ間の重複はない
func rotateLearning(cards []*model.Card, budget int, priorityClassID *uuid.UUID, now time.Time, rng *rand.Rand) []*model.Card {
	var stale, struggling, recent, rest []*model.Card
	for _, c := range cards {
		switch {
		case c.LastStudiedAt == nil || now.Sub(*c.LastStudiedAt) >= staleLearningAfter:
			stale = append(stale, c)
		case c.TotalAttempts > 0 && c.Accuracy() < lowAccuracyThreshold:
			struggling = append(struggling, c)
		case now.Sub(c.CreatedAt) < recentCreationWindow:
			recent = append(recent, c)
		default:
			rest = append(rest, c)
		}
	}

	rng.Shuffle(len(rest), func(i, j int) {
		rest[i], rest[j] = rest[j], rest[i]
	})

	ordered := make([]*model.Card, 0, len(cards))
	ordered = append(ordered, priorityClassFirst(stale, priorityClassID)...)
	ordered = append(ordered, priorityClassFirst(struggling, priorityClassID)...)
	ordered = append(ordered, priorityClassFirst(recent, priorityClassID)...)
	ordered = append(ordered, rest...)

	if len(ordered) > budget {
		ordered = ordered[:budget]
	}
	return ordered
}

// priorityClassFirst は指定クラスのカードを相対順を保ったまま先頭に寄せます
func priorityClassFirst(cards []*model.Card, priorityClassID *uuid.UUID) []*model.Card {
	if priorityClassID == nil {
		return cards
	}
	prioritized := make([]*model.Card, 0, len(cards))
	others := make([]*model.Card, 0, len(cards))
	for _, c := range cards {
		if c.ClassID == *priorityClassID {
			prioritized = append(prioritized, c)
		} else {
			others = append(others, c)
		}
	}
	return append(prioritized, others...)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
