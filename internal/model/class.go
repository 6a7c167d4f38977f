package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Class はカードをまとめる科目・コレクションを表します
type Class struct {
	ClassID     uuid.UUID      `gorm:"type:uuid;primaryKey" json:"class_id"`
	TenantID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"-"`
	Name        string         `gorm:"not null" json:"name"`
	Description string         `json:"description"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"` // 論理削除用
}

func (Class) TableName() string {
	return "classes"
}

// クラス作成リクエストDTO
type PostClassRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description" validate:"omitempty,max=500"`
}

// クラス更新（全体）リクエストDTO
type PutClassRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description" validate:"omitempty,max=500"`
}
