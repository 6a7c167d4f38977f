// internal/service/preference_service_test.go
package service

import (
	"context"
	"errors"
	"testing"

	"go_5_flashcard_keep/internal/model"
	"go_5_flashcard_keep/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func Test_preferenceService_GetPreferences(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBReview()
	mockPrefRepo := new(mocks.PreferenceRepository)
	mockClassRepo := new(mocks.ClassRepository)
	preferenceService := NewPreferenceService(db, mockPrefRepo, mockClassRepo)

	tenantID := uuid.New()

	t.Run("正常系: 既存の設定をそのまま返す", func(t *testing.T) {
		mockPrefRepo.Mock = mock.Mock{}
		existing := model.DefaultSchedulingPreference(tenantID)
		existing.DailyCardBudget = 50
		mockPrefRepo.On("FindByTenant", ctx, db, tenantID).Return(existing, nil).Once()

		prefs, err := preferenceService.GetPreferences(ctx, tenantID)

		require.NoError(t, err)
		assert.Equal(t, 50, prefs.DailyCardBudget)
		mockPrefRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything, mock.Anything)
		mockPrefRepo.AssertExpectations(t)
	})

	t.Run("正常系: 未作成ならデフォルト値で払い出す", func(t *testing.T) {
		mockPrefRepo.Mock = mock.Mock{}
		mockPrefRepo.On("FindByTenant", ctx, db, tenantID).Return(nil, model.ErrNotFound).Once()
		mockPrefRepo.On("Upsert", ctx, db, mock.MatchedBy(func(p *model.SchedulingPreference) bool {
			assert.Equal(t, tenantID, p.TenantID)
			assert.Equal(t, 30, p.DailyCardBudget)
			assert.Equal(t, 9, p.QuietHoursStart)
			assert.Equal(t, 21, p.QuietHoursEnd)
			return true
		})).Return(nil).Once()

		prefs, err := preferenceService.GetPreferences(ctx, tenantID)

		require.NoError(t, err)
		assert.Equal(t, 30, prefs.DailyCardBudget)
		assert.True(t, prefs.WeekendsEnabled)
		mockPrefRepo.AssertExpectations(t)
	})

	t.Run("異常系: 取得でDBエラー", func(t *testing.T) {
		mockPrefRepo.Mock = mock.Mock{}
		mockPrefRepo.On("FindByTenant", ctx, db, tenantID).Return(nil, errors.New("db error")).Once()

		prefs, err := preferenceService.GetPreferences(ctx, tenantID)

		require.Error(t, err)
		var appErr *model.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, "INTERNAL_SERVER_ERROR", appErr.Detail.Code)
		assert.Nil(t, prefs)
		mockPrefRepo.AssertExpectations(t)
	})
}

func Test_preferenceService_PatchPreferences(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBReview()
	mockPrefRepo := new(mocks.PreferenceRepository)
	mockClassRepo := new(mocks.ClassRepository)
	preferenceService := NewPreferenceService(db, mockPrefRepo, mockClassRepo)

	tenantID := uuid.New()
	classID := uuid.New()

	intPtr := func(n int) *int { return &n }
	boolPtr := func(b bool) *bool { return &b }
	uuidPtr := func(id uuid.UUID) *uuid.UUID { return &id }

	t.Run("正常系: 指定したフィールドだけ更新される", func(t *testing.T) {
		mockPrefRepo.Mock = mock.Mock{}
		mockPrefRepo.On("FindByTenant", ctx, mock.AnythingOfType("*gorm.DB"), tenantID).
			Return(model.DefaultSchedulingPreference(tenantID), nil).Once()
		mockPrefRepo.On("Upsert", ctx, mock.AnythingOfType("*gorm.DB"), mock.MatchedBy(func(p *model.SchedulingPreference) bool {
			assert.Equal(t, 60, p.DailyCardBudget)
			assert.False(t, p.WeekendsEnabled)
			// 未指定フィールドはデフォルト値のまま
			assert.Equal(t, 9, p.QuietHoursStart)
			assert.Equal(t, 120, p.NotificationIntervalMinutes)
			return true
		})).Return(nil).Once()

		req := &model.PatchPreferenceRequest{
			DailyCardBudget: intPtr(60),
			WeekendsEnabled: boolPtr(false),
		}
		prefs, err := preferenceService.PatchPreferences(ctx, tenantID, req)

		require.NoError(t, err)
		assert.Equal(t, 60, prefs.DailyCardBudget)
		assert.False(t, prefs.WeekendsEnabled)
		mockPrefRepo.AssertExpectations(t)
	})

	t.Run("正常系: 優先クラスを設定できる", func(t *testing.T) {
		mockPrefRepo.Mock = mock.Mock{}
		mockClassRepo.Mock = mock.Mock{}
		mockPrefRepo.On("FindByTenant", ctx, mock.AnythingOfType("*gorm.DB"), tenantID).
			Return(model.DefaultSchedulingPreference(tenantID), nil).Once()
		mockClassRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), tenantID, classID).
			Return(&model.Class{ClassID: classID, TenantID: tenantID, Name: "英語"}, nil).Once()
		mockPrefRepo.On("Upsert", ctx, mock.AnythingOfType("*gorm.DB"), mock.MatchedBy(func(p *model.SchedulingPreference) bool {
			require.NotNil(t, p.PriorityClassID)
			assert.Equal(t, classID, *p.PriorityClassID)
			return true
		})).Return(nil).Once()

		req := &model.PatchPreferenceRequest{PriorityClassID: uuidPtr(classID)}
		prefs, err := preferenceService.PatchPreferences(ctx, tenantID, req)

		require.NoError(t, err)
		require.NotNil(t, prefs.PriorityClassID)
		mockPrefRepo.AssertExpectations(t)
		mockClassRepo.AssertExpectations(t)
	})

	t.Run("正常系: uuid.Nil の指定で優先クラスを解除する", func(t *testing.T) {
		mockPrefRepo.Mock = mock.Mock{}
		mockClassRepo.Mock = mock.Mock{}
		existing := model.DefaultSchedulingPreference(tenantID)
		existing.PriorityClassID = uuidPtr(classID)
		mockPrefRepo.On("FindByTenant", ctx, mock.AnythingOfType("*gorm.DB"), tenantID).
			Return(existing, nil).Once()
		mockPrefRepo.On("Upsert", ctx, mock.AnythingOfType("*gorm.DB"), mock.MatchedBy(func(p *model.SchedulingPreference) bool {
			return p.PriorityClassID == nil
		})).Return(nil).Once()

		req := &model.PatchPreferenceRequest{PriorityClassID: uuidPtr(uuid.Nil)}
		prefs, err := preferenceService.PatchPreferences(ctx, tenantID, req)

		require.NoError(t, err)
		assert.Nil(t, prefs.PriorityClassID)
		mockClassRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		mockPrefRepo.AssertExpectations(t)
	})

	t.Run("異常系: 通知時間帯の開始が終了以降なら拒否", func(t *testing.T) {
		mockPrefRepo.Mock = mock.Mock{}
		mockPrefRepo.On("FindByTenant", ctx, mock.AnythingOfType("*gorm.DB"), tenantID).
			Return(model.DefaultSchedulingPreference(tenantID), nil).Once()

		req := &model.PatchPreferenceRequest{
			QuietHoursStart: intPtr(22),
			QuietHoursEnd:   intPtr(8),
		}
		prefs, err := preferenceService.PatchPreferences(ctx, tenantID, req)

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrInvalidInput)
		var appErr *model.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, "VALIDATION_ERROR", appErr.Detail.Code)
		assert.Nil(t, prefs)
		mockPrefRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything, mock.Anything)
		mockPrefRepo.AssertExpectations(t)
	})

	t.Run("異常系: 優先クラスが見つからない", func(t *testing.T) {
		mockPrefRepo.Mock = mock.Mock{}
		mockClassRepo.Mock = mock.Mock{}
		mockPrefRepo.On("FindByTenant", ctx, mock.AnythingOfType("*gorm.DB"), tenantID).
			Return(model.DefaultSchedulingPreference(tenantID), nil).Once()
		mockClassRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), tenantID, classID).
			Return(nil, model.ErrNotFound).Once()

		req := &model.PatchPreferenceRequest{PriorityClassID: uuidPtr(classID)}
		prefs, err := preferenceService.PatchPreferences(ctx, tenantID, req)

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrNotFound)
		var appErr *model.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, "CLASS_NOT_FOUND", appErr.Detail.Code)
		assert.Nil(t, prefs)
		mockPrefRepo.AssertExpectations(t)
		mockClassRepo.AssertExpectations(t)
	})
}
