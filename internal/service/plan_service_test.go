// internal/service/plan_service_test.go
package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go_5_flashcard_keep/internal/model"
	"go_5_flashcard_keep/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupPlanServiceTest(now time.Time) (*gorm.DB, *mocks.CardRepository, *mocks.PreferenceRepository, *mocks.NotificationRepository, PlanService) {
	db := setupTestDBReview()
	mockCardRepo := new(mocks.CardRepository)
	mockPrefRepo := new(mocks.PreferenceRepository)
	mockNotifRepo := new(mocks.NotificationRepository)
	svc := NewPlanService(db, mockCardRepo, mockPrefRepo, mockNotifRepo, fixedClock{t: now})
	return db, mockCardRepo, mockPrefRepo, mockNotifRepo, svc
}

func planTestCards(tenantID uuid.UUID, count int) []*model.Card {
	cards := make([]*model.Card, count)
	for i := 0; i < count; i++ {
		cards[i] = &model.Card{
			CardID:    uuid.New(),
			TenantID:  tenantID,
			ClassID:   uuid.New(),
			Question:  "q",
			Answer:    "a",
			Tier:      model.TierLearning,
			NextDueAt: time.Date(2024, 5, 16, 0, 0, 0, 0, time.UTC),
		}
	}
	return cards
}

func Test_planService_ComputeNotificationPlan(t *testing.T) {
	ctx := context.Background()
	// 2024-05-15 は水曜日の正午
	now := time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC)
	startOfDay := time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC)
	db, mockCardRepo, mockPrefRepo, mockNotifRepo, planService := setupPlanServiceTest(now)

	tenantID := uuid.New()
	cards := planTestCards(tenantID, 2)

	invertedPrefs := model.DefaultSchedulingPreference(tenantID)
	invertedPrefs.QuietHoursStart = 22
	invertedPrefs.QuietHoursEnd = 8

	tests := []struct {
		name          string
		setupMock     func()
		wantErrCode   string
		wantWarning   bool
		wantBatches   int
		wantCardTotal int
	}{
		{
			name: "正常系: 既存計画を打ち消して planned 行を保存する",
			setupMock: func() {
				mockPrefRepo.On("FindByTenant", ctx, db, tenantID).
					Return(model.DefaultSchedulingPreference(tenantID), nil).Once()
				mockCardRepo.On("FindActiveByTenant", ctx, db, tenantID).
					Return(cards, nil).Once()
				mockNotifRepo.On("FindSentCardIDsSince", ctx, db, tenantID, startOfDay).
					Return([]uuid.UUID{}, nil).Once()
				mockNotifRepo.On("CancelPlannedInWindow", ctx, mock.AnythingOfType("*gorm.DB"), tenantID, startOfDay, startOfDay.AddDate(0, 0, 1)).
					Return(nil).Once()
				mockNotifRepo.On("CreateBatch", ctx, mock.AnythingOfType("*gorm.DB"), mock.MatchedBy(func(logs []*model.NotificationLog) bool {
					assert.Len(t, logs, 2)
					for _, l := range logs {
						assert.Equal(t, tenantID, l.TenantID)
						assert.Equal(t, model.NotificationStatusPlanned, l.Status)
						assert.NotEqual(t, uuid.Nil, l.NotificationID)
					}
					return true
				})).Return(nil).Once()
			},
			// 候補時刻は 13:00 から 2時間おき。カード2枚 (20枚未満) は1枚ずつのバッチになる
			wantBatches:   2,
			wantCardTotal: 2,
		},
		{
			name: "正常系: 当日送信済みのカードは計画から除外される",
			setupMock: func() {
				mockPrefRepo.On("FindByTenant", ctx, db, tenantID).
					Return(model.DefaultSchedulingPreference(tenantID), nil).Once()
				mockCardRepo.On("FindActiveByTenant", ctx, db, tenantID).
					Return(cards, nil).Once()
				mockNotifRepo.On("FindSentCardIDsSince", ctx, db, tenantID, startOfDay).
					Return([]uuid.UUID{cards[0].CardID}, nil).Once()
				mockNotifRepo.On("CancelPlannedInWindow", ctx, mock.AnythingOfType("*gorm.DB"), tenantID, startOfDay, startOfDay.AddDate(0, 0, 1)).
					Return(nil).Once()
				mockNotifRepo.On("CreateBatch", ctx, mock.AnythingOfType("*gorm.DB"), mock.MatchedBy(func(logs []*model.NotificationLog) bool {
					assert.Len(t, logs, 1)
					if len(logs) == 1 {
						assert.Equal(t, cards[1].CardID, logs[0].CardID)
					}
					return true
				})).Return(nil).Once()
			},
			wantBatches:   1,
			wantCardTotal: 1,
		},
		{
			name: "正常系: 設定不備なら既存計画に触れず警告付きの空計画を返す",
			setupMock: func() {
				mockPrefRepo.On("FindByTenant", ctx, db, tenantID).
					Return(invertedPrefs, nil).Once()
				mockCardRepo.On("FindActiveByTenant", ctx, db, tenantID).
					Return(cards, nil).Once()
				mockNotifRepo.On("FindSentCardIDsSince", ctx, db, tenantID, startOfDay).
					Return([]uuid.UUID{}, nil).Once()
			},
			wantWarning: true,
			wantBatches: 0,
		},
		{
			name: "異常系: 設定取得でDBエラー",
			setupMock: func() {
				mockPrefRepo.On("FindByTenant", ctx, db, tenantID).
					Return(nil, errors.New("db error")).Once()
			},
			wantErrCode: "INTERNAL_SERVER_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockCardRepo.Mock = mock.Mock{}
			mockPrefRepo.Mock = mock.Mock{}
			mockNotifRepo.Mock = mock.Mock{}
			tt.setupMock()

			resp, err := planService.ComputeNotificationPlan(ctx, tenantID)

			if tt.wantErrCode != "" {
				require.Error(t, err)
				var appErr *model.AppError
				require.True(t, errors.As(err, &appErr))
				assert.Equal(t, tt.wantErrCode, appErr.Detail.Code)
				assert.Nil(t, resp)
			} else {
				require.NoError(t, err)
				require.NotNil(t, resp)
				assert.Equal(t, "2024-05-15", resp.PlanDate)
				assert.Len(t, resp.Batches, tt.wantBatches)
				if tt.wantWarning {
					assert.NotEmpty(t, resp.ConfigWarning)
					mockNotifRepo.AssertNotCalled(t, "CancelPlannedInWindow", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
					mockNotifRepo.AssertNotCalled(t, "CreateBatch", mock.Anything, mock.Anything, mock.Anything)
				} else {
					assert.Empty(t, resp.ConfigWarning)
					total := 0
					for _, b := range resp.Batches {
						total += len(b.CardIDs)
						assert.True(t, b.ScheduledAt.After(now), "送信予定時刻は現在より後")
					}
					assert.Equal(t, tt.wantCardTotal, total)
				}
			}
			mockCardRepo.AssertExpectations(t)
			mockPrefRepo.AssertExpectations(t)
			mockNotifRepo.AssertExpectations(t)
		})
	}
}

// allow_card_repetition が有効なら送信履歴を参照しない
func Test_planService_ComputeNotificationPlan_AllowRepetition(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC)
	startOfDay := time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC)
	db, mockCardRepo, mockPrefRepo, mockNotifRepo, planService := setupPlanServiceTest(now)

	tenantID := uuid.New()
	prefs := model.DefaultSchedulingPreference(tenantID)
	prefs.AllowCardRepetition = true

	mockPrefRepo.On("FindByTenant", ctx, db, tenantID).Return(prefs, nil).Once()
	mockCardRepo.On("FindActiveByTenant", ctx, db, tenantID).
		Return(planTestCards(tenantID, 1), nil).Once()
	mockNotifRepo.On("CancelPlannedInWindow", ctx, mock.AnythingOfType("*gorm.DB"), tenantID, startOfDay, startOfDay.AddDate(0, 0, 1)).
		Return(nil).Once()
	mockNotifRepo.On("CreateBatch", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("[]*model.NotificationLog")).
		Return(nil).Once()

	resp, err := planService.ComputeNotificationPlan(ctx, tenantID)

	require.NoError(t, err)
	assert.Len(t, resp.Batches, 1)
	mockNotifRepo.AssertNotCalled(t, "FindSentCardIDsSince", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	mockNotifRepo.AssertExpectations(t)
}

// 週末無効設定の土曜日は空の計画になる (エラーでも警告でもない)
func Test_planService_ComputeNotificationPlan_Weekend(t *testing.T) {
	ctx := context.Background()
	// 2024-05-18 は土曜日
	now := time.Date(2024, 5, 18, 12, 0, 0, 0, time.UTC)
	startOfDay := time.Date(2024, 5, 18, 0, 0, 0, 0, time.UTC)
	db, mockCardRepo, mockPrefRepo, mockNotifRepo, planService := setupPlanServiceTest(now)

	tenantID := uuid.New()
	prefs := model.DefaultSchedulingPreference(tenantID)
	prefs.WeekendsEnabled = false

	mockPrefRepo.On("FindByTenant", ctx, db, tenantID).Return(prefs, nil).Once()
	mockCardRepo.On("FindActiveByTenant", ctx, db, tenantID).
		Return(planTestCards(tenantID, 3), nil).Once()
	mockNotifRepo.On("FindSentCardIDsSince", ctx, db, tenantID, startOfDay).
		Return([]uuid.UUID{}, nil).Once()
	mockNotifRepo.On("CancelPlannedInWindow", ctx, mock.AnythingOfType("*gorm.DB"), tenantID, startOfDay, startOfDay.AddDate(0, 0, 1)).
		Return(nil).Once()
	mockNotifRepo.On("CreateBatch", ctx, mock.AnythingOfType("*gorm.DB"), mock.MatchedBy(func(logs []*model.NotificationLog) bool {
		return len(logs) == 0
	})).Return(nil).Once()

	resp, err := planService.ComputeNotificationPlan(ctx, tenantID)

	require.NoError(t, err)
	assert.Equal(t, "2024-05-18", resp.PlanDate)
	assert.Empty(t, resp.Batches)
	assert.Empty(t, resp.ConfigWarning)
	mockNotifRepo.AssertExpectations(t)
}
