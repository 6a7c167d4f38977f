package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Lecture はクラス内の講義・章の区切りを表します
type Lecture struct {
	LectureID   uuid.UUID      `gorm:"type:uuid;primaryKey" json:"lecture_id"`
	TenantID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"-"`
	ClassID     uuid.UUID      `gorm:"type:uuid;not null;index" json:"class_id"`
	Title       string         `gorm:"not null" json:"title"`
	Description string         `json:"description"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"` // 論理削除用
}

func (Lecture) TableName() string {
	return "lectures"
}

// 講義作成リクエストDTO
type PostLectureRequest struct {
	Title       string `json:"title" validate:"required,min=1,max=255"`
	Description string `json:"description" validate:"omitempty,max=500"`
}

// 講義更新（全体）リクエストDTO
type PutLectureRequest struct {
	Title       string `json:"title" validate:"required,min=1,max=255"`
	Description string `json:"description" validate:"omitempty,max=500"`
}
