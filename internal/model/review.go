// internal/model/review.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// TodayCardResponse は今日の学習カードリストのレスポンスDTO
type TodayCardResponse struct {
	CardID    uuid.UUID `json:"card_id"`
	ClassID   uuid.UUID `json:"class_id"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"` // 正解表示用に含める
	Tier      Tier      `json:"tier"`
	NextDueAt time.Time `json:"next_due_at"`
	Pool      string    `json:"pool"` // overdue / due_today / learning
}

// SubmitAnswerRequest は回答結果送信リクエストのDTO
type SubmitAnswerRequest struct {
	IsCorrect      *bool  `json:"is_correct" validate:"required"`
	ResponseTimeMs *int64 `json:"response_time_ms,omitempty" validate:"omitempty,min=0"`
}

// AnswerResultResponse は回答反映後のスケジュール状態を返すDTO
type AnswerResultResponse struct {
	CardID            uuid.UUID `json:"card_id"`
	Tier              Tier      `json:"tier"`
	CorrectStreak     int       `json:"correct_streak"`
	TotalAttempts     int       `json:"total_attempts"`
	NextDueAt         time.Time `json:"next_due_at"`
	AvgResponseTimeMs float64   `json:"avg_response_time_ms"`
}

// PromotionStatusResponse は昇格可否の評価結果DTO
type PromotionStatusResponse struct {
	CardID      uuid.UUID `json:"card_id"`
	Eligible    bool      `json:"eligible"`
	CurrentTier Tier      `json:"current_tier"`
	NextTier    *Tier     `json:"next_tier,omitempty"`
}

// PromoteCardRequest は昇格確定リクエストのDTO
type PromoteCardRequest struct {
	TargetTier Tier `json:"target_tier" validate:"required"`
}
