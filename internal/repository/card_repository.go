//go:generate mockery --name CardRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"go_5_flashcard_keep/internal/middleware"
	"go_5_flashcard_keep/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CardFilter は一覧取得時の絞り込み条件です。nil のフィールドは無視されます。
type CardFilter struct {
	ClassID   *uuid.UUID
	LectureID *uuid.UUID
	Tier      *model.Tier
}

type CardRepository interface {
	Create(ctx context.Context, tx *gorm.DB, card *model.Card) error
	FindByID(ctx context.Context, db *gorm.DB, tenantID, cardID uuid.UUID) (*model.Card, error)
	// FindByIDForUpdate は行ロック付きで取得します。トランザクション内でのみ使用します。
	FindByIDForUpdate(ctx context.Context, tx *gorm.DB, tenantID, cardID uuid.UUID) (*model.Card, error)
	FindByIDs(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, cardIDs []uuid.UUID) ([]*model.Card, error)
	FindByTenant(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, filter CardFilter) ([]*model.Card, error)
	FindActiveByTenant(ctx context.Context, db *gorm.DB, tenantID uuid.UUID) ([]*model.Card, error)
	Update(ctx context.Context, tx *gorm.DB, card *model.Card) error
	UpdateFields(ctx context.Context, tx *gorm.DB, tenantID, cardID uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, tx *gorm.DB, tenantID, cardID uuid.UUID) error
	// DeleteByClass はクラス配下の全カードを論理削除します。クラス削除時に使用します。
	DeleteByClass(ctx context.Context, tx *gorm.DB, tenantID, classID uuid.UUID) error
	// DetachLecture は講義に紐付く全カードの lecture_id を外します。講義削除時に使用します。
	DetachLecture(ctx context.Context, tx *gorm.DB, tenantID, lectureID uuid.UUID) error
	CheckQuestionExists(ctx context.Context, db *gorm.DB, tenantID, classID uuid.UUID, question string, excludeCardID *uuid.UUID) (bool, error)
}

type gormCardRepository struct{}

func NewGormCardRepository() CardRepository {
	return &gormCardRepository{}
}

func (r *gormCardRepository) Create(ctx context.Context, tx *gorm.DB, card *model.Card) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(card)
	if result.Error != nil {
		logger.Error("Error creating card in DB",
			"error", result.Error,
			"tenant_id", card.TenantID.String(),
			"class_id", card.ClassID.String(),
		)
		return fmt.Errorf("gormCardRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormCardRepository) FindByID(ctx context.Context, db *gorm.DB, tenantID, cardID uuid.UUID) (*model.Card, error) {
	logger := middleware.GetLogger(ctx)
	var card model.Card
	result := db.WithContext(ctx).Where("tenant_id = ? AND card_id = ?", tenantID, cardID).First(&card)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding card by ID in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
			"card_id", cardID.String(),
		)
		return nil, fmt.Errorf("gormCardRepository.FindByID: %w", result.Error)
	}
	return &card, nil
}

func (r *gormCardRepository) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, tenantID, cardID uuid.UUID) (*model.Card, error) {
	logger := middleware.GetLogger(ctx)
	var card model.Card
	result := tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("tenant_id = ? AND card_id = ?", tenantID, cardID).
		First(&card)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding card for update in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
			"card_id", cardID.String(),
		)
		return nil, fmt.Errorf("gormCardRepository.FindByIDForUpdate: %w", result.Error)
	}
	return &card, nil
}

func (r *gormCardRepository) FindByIDs(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, cardIDs []uuid.UUID) ([]*model.Card, error) {
	logger := middleware.GetLogger(ctx)
	if len(cardIDs) == 0 {
		return []*model.Card{}, nil
	}
	var cards []*model.Card
	result := db.WithContext(ctx).
		Where("tenant_id = ? AND card_id IN ?", tenantID, cardIDs).
		Find(&cards)
	if result.Error != nil {
		logger.Error("Error finding cards by IDs in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
		)
		return nil, fmt.Errorf("gormCardRepository.FindByIDs: %w", result.Error)
	}
	return cards, nil
}

func (r *gormCardRepository) FindByTenant(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, filter CardFilter) ([]*model.Card, error) {
	logger := middleware.GetLogger(ctx)
	var cards []*model.Card
	query := db.WithContext(ctx).Where("tenant_id = ?", tenantID)
	if filter.ClassID != nil {
		query = query.Where("class_id = ?", *filter.ClassID)
	}
	if filter.LectureID != nil {
		query = query.Where("lecture_id = ?", *filter.LectureID)
	}
	if filter.Tier != nil {
		query = query.Where("tier = ?", *filter.Tier)
	}
	result := query.Order("created_at DESC").Find(&cards)
	if result.Error != nil {
		logger.Error("Error finding cards by tenant in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
		)
		return nil, fmt.Errorf("gormCardRepository.FindByTenant: %w", result.Error)
	}
	return cards, nil
}

// FindActiveByTenant は inactive 以外の全カードを返します。
// 期日昇順・作成日時昇順で返すため、呼び出し側の選別処理は安定した入力順を前提にできます。
func (r *gormCardRepository) FindActiveByTenant(ctx context.Context, db *gorm.DB, tenantID uuid.UUID) ([]*model.Card, error) {
	logger := middleware.GetLogger(ctx)
	var cards []*model.Card
	result := db.WithContext(ctx).
		Where("tenant_id = ? AND tier != ?", tenantID, model.TierInactive).
		Order("next_due_at ASC, created_at ASC").
		Find(&cards)
	if result.Error != nil {
		logger.Error("Error finding active cards by tenant in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
		)
		return nil, fmt.Errorf("gormCardRepository.FindActiveByTenant: %w", result.Error)
	}
	return cards, nil
}

func (r *gormCardRepository) Update(ctx context.Context, tx *gorm.DB, card *model.Card) error {
	logger := middleware.GetLogger(ctx)
	// Save は主キーに基づく全カラム更新。呼び出し元で存在確認済みの前提。
	result := tx.WithContext(ctx).Save(card)
	if result.Error != nil {
		logger.Error("Error updating card in DB",
			"error", result.Error,
			"tenant_id", card.TenantID.String(),
			"card_id", card.CardID.String(),
		)
		return fmt.Errorf("gormCardRepository.Update: %w", result.Error)
	}
	return nil
}

func (r *gormCardRepository) UpdateFields(ctx context.Context, tx *gorm.DB, tenantID, cardID uuid.UUID, updates map[string]interface{}) error {
	logger := middleware.GetLogger(ctx)
	if len(updates) == 0 {
		return nil
	}
	result := tx.WithContext(ctx).Model(&model.Card{}).Where("tenant_id = ? AND card_id = ?", tenantID, cardID).Updates(updates)
	if result.Error != nil {
		logger.Error("Error updating card fields in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
			"card_id", cardID.String(),
		)
		return fmt.Errorf("gormCardRepository.UpdateFields: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormCardRepository) Delete(ctx context.Context, tx *gorm.DB, tenantID, cardID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Where("tenant_id = ?", tenantID).Delete(&model.Card{}, cardID)
	if result.Error != nil {
		logger.Error("Error deleting card in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
			"card_id", cardID.String(),
		)
		return fmt.Errorf("gormCardRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormCardRepository) DeleteByClass(ctx context.Context, tx *gorm.DB, tenantID, classID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).
		Where("tenant_id = ? AND class_id = ?", tenantID, classID).
		Delete(&model.Card{})
	if result.Error != nil {
		logger.Error("Error deleting cards by class in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
			"class_id", classID.String(),
		)
		return fmt.Errorf("gormCardRepository.DeleteByClass: %w", result.Error)
	}
	return nil
}

func (r *gormCardRepository) DetachLecture(ctx context.Context, tx *gorm.DB, tenantID, lectureID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Model(&model.Card{}).
		Where("tenant_id = ? AND lecture_id = ?", tenantID, lectureID).
		Update("lecture_id", nil)
	if result.Error != nil {
		logger.Error("Error detaching cards from lecture in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
			"lecture_id", lectureID.String(),
		)
		return fmt.Errorf("gormCardRepository.DetachLecture: %w", result.Error)
	}
	return nil
}

func (r *gormCardRepository) CheckQuestionExists(ctx context.Context, db *gorm.DB, tenantID, classID uuid.UUID, question string, excludeCardID *uuid.UUID) (bool, error) {
	logger := middleware.GetLogger(ctx)
	var count int64
	query := db.WithContext(ctx).Model(&model.Card{}).
		Where("tenant_id = ? AND class_id = ? AND question = ?", tenantID, classID, question)
	if excludeCardID != nil {
		query = query.Where("card_id != ?", *excludeCardID)
	}
	result := query.Count(&count)
	if result.Error != nil {
		logger.Error("Error checking question existence in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
			"class_id", classID.String(),
		)
		return false, fmt.Errorf("gormCardRepository.CheckQuestionExists: %w", result.Error)
	}
	return count > 0, nil
}
