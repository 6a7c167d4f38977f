// internal/model/card.go
package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Tier はカードの習熟段階を表します。
// learning → reviewing → mastered の順に昇格し、inactive は選択対象外。
type Tier string

const (
	TierLearning  Tier = "learning"
	TierReviewing Tier = "reviewing"
	TierMastered  Tier = "mastered"
	TierInactive  Tier = "inactive"
)

// Card は問題と解答のペア、およびスケジューリング用のカウンタを表します
type Card struct {
	CardID    uuid.UUID  `gorm:"type:uuid;primaryKey" json:"card_id"`
	TenantID  uuid.UUID  `gorm:"type:uuid;not null;index" json:"-"`
	ClassID   uuid.UUID  `gorm:"type:uuid;not null;index" json:"class_id"`
	LectureID *uuid.UUID `gorm:"type:uuid;index" json:"lecture_id,omitempty"`
	Question  string     `gorm:"not null" json:"question"` // 問題文
	Answer    string     `gorm:"not null" json:"answer"`   // 解答文

	// スケジューリング状態。ReviewScheduler と PromotionPolicy だけが更新する
	Tier                   Tier       `gorm:"type:varchar(16);not null;default:'learning';index" json:"tier"`
	CorrectStreak          int        `gorm:"not null;default:0" json:"correct_streak"`
	TotalAttempts          int        `gorm:"not null;default:0" json:"total_attempts"`
	CorrectTotal           int        `gorm:"not null;default:0" json:"correct_total"`
	LastStudiedAt          *time.Time `json:"last_studied_at,omitempty"`
	NextDueAt              time.Time  `gorm:"not null;index" json:"next_due_at"`
	LastPromotionOfferedAt *time.Time `json:"last_promotion_offered_at,omitempty"`
	AvgResponseTimeMs      float64    `gorm:"not null;default:0" json:"avg_response_time_ms"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"` // 論理削除用
}

func (Card) TableName() string {
	return "cards"
}

// Accuracy は通算正答率を返します。未回答の場合は 0
func (c *Card) Accuracy() float64 {
	if c.TotalAttempts == 0 {
		return 0
	}
	return float64(c.CorrectTotal) / float64(c.TotalAttempts)
}

// カード作成リクエストDTO
type PostCardRequest struct {
	ClassID   uuid.UUID  `json:"class_id" validate:"required"`
	LectureID *uuid.UUID `json:"lecture_id,omitempty"`
	Question  string     `json:"question" validate:"required,max=2000"`
	Answer    string     `json:"answer" validate:"required,max=2000"`
}

// カード更新（全体）リクエストDTO
type PutCardRequest struct {
	Question string `json:"question" validate:"required,max=2000"`
	Answer   string `json:"answer" validate:"required,max=2000"`
}

// カード更新（部分）リクエストDTO
type PatchCardRequest struct {
	Question *string `json:"question,omitempty" validate:"omitempty,min=1,max=2000"`
	Answer   *string `json:"answer,omitempty" validate:"omitempty,min=1,max=2000"`
}

// ParseTier は文字列を Tier に変換します。未知の値はエラー
func ParseTier(s string) (Tier, error) {
	switch Tier(s) {
	case TierLearning, TierReviewing, TierMastered, TierInactive:
		return Tier(s), nil
	default:
		return "", fmt.Errorf("unknown tier: %q", s)
	}
}
