//go:generate mockery --name PreferenceRepository --output ./mocks --outpkg mocks --case=underscore
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

type PreferenceRepository interface {
	FindByTenant(ctx context.Context, db *gorm.DB, tenantID uuid.UUID) (*model.SchedulingPreference, error)
	Upsert(ctx context.Context, tx *gorm.DB, pref *model.SchedulingPreference) error
}

type gormPreferenceRepository struct{}

func NewGormPreferenceRepository() PreferenceRepository {
	return &gormPreferenceRepository{}
}

func (r *gormPreferenceRepository) FindByTenant(ctx context.Context, db *gorm.DB, tenantID uuid.UUID) (*model.SchedulingPreference, error) {
	logger := middleware.GetLogger(ctx)
	var pref model.SchedulingPreference
	result := db.WithContext(ctx).Where("tenant_id = ?", tenantID).First(&pref)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding scheduling preference in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
		)
		return nil, fmt.Errorf("gormPreferenceRepository.FindByTenant: %w", result.Error)
	}
	return &pref, nil
}

// Upsert はテナントごとに1行の設定を作成または更新します。
func (r *gormPreferenceRepository) Upsert(ctx context.Context, tx *gorm.DB, pref *model.SchedulingPreference) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "tenant_id"}},
			UpdateAll: true,
		}).
		Create(pref)
	if result.Error != nil {
		logger.Error("Error upserting scheduling preference in DB",
			"error", result.Error,
			"tenant_id", pref.TenantID.String(),
		)
		return fmt.Errorf("gormPreferenceRepository.Upsert: %w", result.Error)
	}
	return nil
}
