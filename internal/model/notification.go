package model

import (
	"time"

	"github.com/google/uuid"
)

type NotificationStatus string

const (
	NotificationStatusPlanned  NotificationStatus = "planned"
	NotificationStatusSent     NotificationStatus = "sent"
	NotificationStatusSkipped  NotificationStatus = "skipped"
	NotificationStatusCanceled NotificationStatus = "canceled"
)

// NotificationLog は通知計画の1カード分の配信記録を保持します。
// 同一日の再計画時には planned の行を canceled に落としてから作り直す
type NotificationLog struct {
	NotificationID uuid.UUID          `gorm:"type:uuid;primaryKey" json:"notification_id"`
	TenantID       uuid.UUID          `gorm:"type:uuid;not null;index:idx_notification_tenant_scheduled" json:"-"`
	CardID         uuid.UUID          `gorm:"type:uuid;not null;index" json:"card_id"`
	ScheduledAt    time.Time          `gorm:"not null;index:idx_notification_tenant_scheduled" json:"scheduled_at"`
	SentAt         *time.Time         `json:"sent_at,omitempty"`
	Status         NotificationStatus `gorm:"type:varchar(16);not null;default:'planned';index" json:"status"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
}

func (NotificationLog) TableName() string {
	return "notification_logs"
}
