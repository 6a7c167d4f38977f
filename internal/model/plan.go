package model

import (
	"time"

	"github.com/google/uuid"
)

// DailySelection のプール名
const (
	PoolOverdue  = "overdue"
	PoolDueToday = "due_today"
	PoolLearning = "learning"
)

// DailySelection は「今日学習するカード」の計算結果。
// 永続化せず、要求のたびに再計算する
type DailySelection struct {
	Overdue  []*Card
	DueToday []*Card
	Learning []*Card
}

// All は overdue → due_today → learning の優先順で結合したリストを返します
func (s *DailySelection) All() []*Card {
	all := make([]*Card, 0, s.Len())
	all = append(all, s.Overdue...)
	all = append(all, s.DueToday...)
	all = append(all, s.Learning...)
	return all
}

func (s *DailySelection) Len() int {
	return len(s.Overdue) + len(s.DueToday) + len(s.Learning)
}

// NotificationBatch は1回の通知に載せるカード群と送信予定時刻
type NotificationBatch struct {
	ScheduledAt time.Time
	CardIDs     []uuid.UUID
}

// NotificationBatchResponse は通知計画1件分のレスポンスDTO
type NotificationBatchResponse struct {
	ScheduledAt time.Time   `json:"scheduled_at"`
	CardIDs     []uuid.UUID `json:"card_ids"`
}

// NotificationPlanResponse は当日の通知計画のレスポンスDTO。
// 設定不備で計画を立てられない場合は空の batches と警告を返す
type NotificationPlanResponse struct {
	PlanDate      string                      `json:"plan_date"`
	Batches       []NotificationBatchResponse `json:"batches"`
	ConfigWarning string                      `json:"config_warning,omitempty"`
}
