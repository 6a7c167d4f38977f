package model

import (
	"time"

	"github.com/google/uuid"
)

// SchedulingPreference はテナントごとの通知・選択ポリシーを保持します。
// tenants と 1:1 のサテライト行で、未設定のテナントにはデフォルト値で払い出す。
type SchedulingPreference struct {
	TenantID uuid.UUID `gorm:"type:uuid;primaryKey" json:"-"`

	DailyCardBudget             int        `gorm:"not null;default:30" json:"daily_card_budget"`
	QuietHoursStart             int        `gorm:"not null;default:9" json:"quiet_hours_start"`
	QuietHoursEnd               int        `gorm:"not null;default:21" json:"quiet_hours_end"`
	NotificationIntervalMinutes int        `gorm:"not null;default:120" json:"notification_interval_minutes"`
	MaxNotificationsPerDay      int        `gorm:"not null;default:5" json:"max_notifications_per_day"`
	MaxCardsPerBatch            int        `gorm:"not null;default:5" json:"max_cards_per_batch"`
	WeekendsEnabled             bool       `gorm:"not null;default:true" json:"weekends_enabled"`
	AllowCardRepetition         bool       `gorm:"not null;default:false" json:"allow_card_repetition"`
	PriorityClassID             *uuid.UUID `gorm:"type:uuid" json:"priority_class_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (SchedulingPreference) TableName() string {
	return "scheduling_preferences"
}

// DefaultSchedulingPreference は未設定テナント向けのデフォルト値を返します
func DefaultSchedulingPreference(tenantID uuid.UUID) *SchedulingPreference {
	return &SchedulingPreference{
		TenantID:                    tenantID,
		DailyCardBudget:             30,
		QuietHoursStart:             9,
		QuietHoursEnd:               21,
		NotificationIntervalMinutes: 120,
		MaxNotificationsPerDay:      5,
		MaxCardsPerBatch:            5,
		WeekendsEnabled:             true,
		AllowCardRepetition:         false,
	}
}

// 設定更新（部分）リクエストDTO。nil のフィールドは変更しない
type PatchPreferenceRequest struct {
	DailyCardBudget             *int       `json:"daily_card_budget,omitempty" validate:"omitempty,min=0,max=500"`
	QuietHoursStart             *int       `json:"quiet_hours_start,omitempty" validate:"omitempty,min=0,max=23"`
	QuietHoursEnd               *int       `json:"quiet_hours_end,omitempty" validate:"omitempty,min=1,max=24"`
	NotificationIntervalMinutes *int       `json:"notification_interval_minutes,omitempty" validate:"omitempty,min=5,max=720"`
	MaxNotificationsPerDay      *int       `json:"max_notifications_per_day,omitempty" validate:"omitempty,min=0,max=20"`
	MaxCardsPerBatch            *int       `json:"max_cards_per_batch,omitempty" validate:"omitempty,min=1,max=20"`
	WeekendsEnabled             *bool      `json:"weekends_enabled,omitempty"`
	AllowCardRepetition         *bool      `json:"allow_card_repetition,omitempty"`
	PriorityClassID             *uuid.UUID `json:"priority_class_id,omitempty"`
}
