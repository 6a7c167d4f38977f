package handlers_test // テスト対象とは別のパッケージ名

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go_5_flashcard_keep/internal/handlers" // テスト対象
	"go_5_flashcard_keep/internal/model"

	svc_mocks "go_5_flashcard_keep/internal/service/mocks"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- ヘルパー: モックハンドラーのセットアップ ---
func setupTestReviewHandler(mockService *svc_mocks.ReviewService) *handlers.ReviewHandler {
	testLogger := slog.New(slog.NewTextHandler(io.Discard, nil)) // ログ出力を抑制
	return handlers.NewReviewHandler(mockService, testLogger)
}

// --- ヘルパー: JSONボディの作成 ---
func newJsonRequestReview(t *testing.T, method string, target string, body interface{}) *http.Request {
	var reqBody io.Reader
	if body != nil {
		if bodyStr, ok := body.(string); ok {
			reqBody = strings.NewReader(bodyStr)
		} else {
			jsonData, err := json.Marshal(body)
			require.NoError(t, err)
			reqBody = bytes.NewBuffer(jsonData)
		}
	}
	req, err := http.NewRequest(method, target, reqBody)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

// --- ヘルパー: chi の RouteContext を設定 ---
func contextWithChiURLParamReview(ctx context.Context, key, value string) context.Context {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return context.WithValue(ctx, chi.RouteCtxKey, rctx)
}

func boolPtr(b bool) *bool    { return &b }
func int64Ptr(i int64) *int64 { return &i }

// --- Test GetTodayCards ---
func TestReviewHandler_GetTodayCards(t *testing.T) {
	mockService := new(svc_mocks.ReviewService)
	handler := setupTestReviewHandler(mockService)

	testTenantID := uuid.New()
	ctxWithTenant := context.WithValue(context.Background(), model.TenantIDKey, testTenantID)
	now := time.Now()
	expectedCards := []*model.TodayCardResponse{
		{CardID: uuid.New(), ClassID: uuid.New(), Question: "配列とスライスの違いは?", Answer: "スライスは長さが可変", Tier: model.TierReviewing, NextDueAt: now.AddDate(0, 0, -2), Pool: "overdue"},
		{CardID: uuid.New(), ClassID: uuid.New(), Question: "goroutineとは?", Answer: "軽量スレッド", Tier: model.TierLearning, NextDueAt: now, Pool: "learning"},
	}

	tests := []struct {
		name           string
		setupContext   func() context.Context
		setupMock      func()
		expectedStatus int
		expectedBody   string
	}{
		{
			name:         "正常系: 複数件取得",
			setupContext: func() context.Context { return ctxWithTenant },
			setupMock: func() {
				mockService.On("GetTodayCards", mock.Anything, testTenantID).Return(expectedCards, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `[{"card_id":"`, // 配列で始まる
		},
		{
			name:         "正常系: 0件取得",
			setupContext: func() context.Context { return ctxWithTenant },
			setupMock: func() {
				mockService.On("GetTodayCards", mock.Anything, testTenantID).Return([]*model.TodayCardResponse{}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `[]`, // 空の配列
		},
		{
			name:         "正常系: サービスがnilを返す",
			setupContext: func() context.Context { return ctxWithTenant },
			setupMock: func() {
				mockService.On("GetTodayCards", mock.Anything, testTenantID).Return(nil, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `[]`, // ハンドラで空配列に変換
		},
		{
			name:           "異常系: 認証エラー",
			setupContext:   func() context.Context { return context.Background() },
			setupMock:      func() {},
			expectedStatus: http.StatusForbidden,
			expectedBody:   "UNAUTHORIZED",
		},
		{
			name:         "異常系: 設定不備",
			setupContext: func() context.Context { return ctxWithTenant },
			setupMock: func() {
				appErr := model.NewAppError("INVALID_SCHEDULING_CONFIG", "スケジュール設定に不備があります。設定を見直してください。", "daily_card_budget", model.ErrInvalidConfig)
				mockService.On("GetTodayCards", mock.Anything, testTenantID).Return(nil, appErr).Once()
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   "INVALID_SCHEDULING_CONFIG",
		},
		{
			name:         "異常系: サービスエラー",
			setupContext: func() context.Context { return ctxWithTenant },
			setupMock: func() {
				mockService.On("GetTodayCards", mock.Anything, testTenantID).Return(nil, errors.New("internal service error")).Once()
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   "INTERNAL_SERVER_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService.Mock = mock.Mock{}
			tt.setupMock()

			req := newJsonRequestReview(t, http.MethodGet, "/reviews/today", nil)
			req = req.WithContext(tt.setupContext())

			rr := httptest.NewRecorder()
			handler.GetTodayCards(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, rr.Body.String(), tt.expectedBody)
			}

			mockService.AssertExpectations(t)
		})
	}
}

// --- Test SubmitAnswer ---
func TestReviewHandler_SubmitAnswer(t *testing.T) {
	mockService := new(svc_mocks.ReviewService)
	handler := setupTestReviewHandler(mockService)

	testTenantID := uuid.New()
	testCardID := uuid.New()
	validCardIDStr := testCardID.String()
	ctxWithTenant := context.WithValue(context.Background(), model.TenantIDKey, testTenantID)

	correctResult := &model.AnswerResultResponse{
		CardID:            testCardID,
		Tier:              model.TierReviewing,
		CorrectStreak:     3,
		TotalAttempts:     10,
		NextDueAt:         time.Now().AddDate(0, 0, 4),
		AvgResponseTimeMs: 4200,
	}
	incorrectResult := &model.AnswerResultResponse{
		CardID:        testCardID,
		Tier:          model.TierLearning,
		CorrectStreak: 0,
		TotalAttempts: 11,
		NextDueAt:     time.Now().Add(30 * time.Minute),
	}

	tests := []struct {
		name           string
		cardIDParam    string
		reqBody        interface{}
		setupContext   func() context.Context
		setupMock      func()
		expectedStatus int
		expectedBody   string
	}{
		{
			name:         "正常系: 正解を送信",
			cardIDParam:  validCardIDStr,
			reqBody:      &model.SubmitAnswerRequest{IsCorrect: boolPtr(true), ResponseTimeMs: int64Ptr(3500)},
			setupContext: func() context.Context { return ctxWithTenant },
			setupMock: func() {
				mockService.On("SubmitAnswer", mock.Anything, testTenantID, testCardID,
					mock.MatchedBy(func(req *model.SubmitAnswerRequest) bool {
						return req.IsCorrect != nil && *req.IsCorrect && req.ResponseTimeMs != nil && *req.ResponseTimeMs == 3500
					})).Return(correctResult, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"correct_streak":3`,
		},
		{
			name:         "正常系: 不正解を送信 (応答時間なし)",
			cardIDParam:  validCardIDStr,
			reqBody:      &model.SubmitAnswerRequest{IsCorrect: boolPtr(false)},
			setupContext: func() context.Context { return ctxWithTenant },
			setupMock: func() {
				mockService.On("SubmitAnswer", mock.Anything, testTenantID, testCardID,
					mock.MatchedBy(func(req *model.SubmitAnswerRequest) bool {
						return req.IsCorrect != nil && !*req.IsCorrect && req.ResponseTimeMs == nil
					})).Return(incorrectResult, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"correct_streak":0`,
		},
		{
			name:           "異常系: 認証エラー",
			cardIDParam:    validCardIDStr,
			reqBody:        &model.SubmitAnswerRequest{IsCorrect: boolPtr(true)},
			setupContext:   func() context.Context { return context.Background() },
			setupMock:      func() {},
			expectedStatus: http.StatusForbidden,
			expectedBody:   "UNAUTHORIZED",
		},
		{
			name:           "異常系: 不正なCardID形式",
			cardIDParam:    "invalid-uuid",
			reqBody:        &model.SubmitAnswerRequest{IsCorrect: boolPtr(true)},
			setupContext:   func() context.Context { return ctxWithTenant },
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "INVALID_URL_PARAM",
		},
		{
			name:           "異常系: 不正なリクエストボディ (JSON)",
			cardIDParam:    validCardIDStr,
			reqBody:        `{"is_correct":`, // 不正なJSON
			setupContext:   func() context.Context { return ctxWithTenant },
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "INVALID_REQUEST_BODY",
		},
		{
			name:           "異常系: 不正なリクエストボディ (フィールド型違い)",
			cardIDParam:    validCardIDStr,
			reqBody:        `{"is_correct":"true"}`, // bool ではなく string
			setupContext:   func() context.Context { return ctxWithTenant },
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "INVALID_REQUEST_BODY", // デコードエラーになる
		},
		{
			name:           "異常系: is_correct未指定",
			cardIDParam:    validCardIDStr,
			reqBody:        `{"response_time_ms":1200}`,
			setupContext:   func() context.Context { return ctxWithTenant },
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "VALIDATION_ERROR",
		},
		{
			name:         "異常系: サービスエラー (NotFound)",
			cardIDParam:  validCardIDStr,
			reqBody:      &model.SubmitAnswerRequest{IsCorrect: boolPtr(true)},
			setupContext: func() context.Context { return ctxWithTenant },
			setupMock: func() {
				appErr := model.NewAppError("CARD_NOT_FOUND", "カードが見つかりません。", "", model.ErrNotFound)
				mockService.On("SubmitAnswer", mock.Anything, testTenantID, testCardID, mock.AnythingOfType("*model.SubmitAnswerRequest")).
					Return(nil, appErr).Once()
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   "CARD_NOT_FOUND",
		},
		{
			name:         "異常系: 停止中カードへの回答",
			cardIDParam:  validCardIDStr,
			reqBody:      &model.SubmitAnswerRequest{IsCorrect: boolPtr(false)},
			setupContext: func() context.Context { return ctxWithTenant },
			setupMock: func() {
				appErr := model.NewAppError("CARD_INACTIVE", "停止中のカードには回答できません。", "", model.ErrInvalidOperation)
				mockService.On("SubmitAnswer", mock.Anything, testTenantID, testCardID, mock.AnythingOfType("*model.SubmitAnswerRequest")).
					Return(nil, appErr).Once()
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   "CARD_INACTIVE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService.Mock = mock.Mock{}
			tt.setupMock()

			baseCtx := tt.setupContext()
			chiCtx := contextWithChiURLParamReview(baseCtx, "card_id", tt.cardIDParam)

			req := newJsonRequestReview(t, http.MethodPut, "/reviews/"+tt.cardIDParam+"/answer", tt.reqBody)
			req = req.WithContext(chiCtx)

			rr := httptest.NewRecorder()
			handler.SubmitAnswer(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, rr.Body.String(), tt.expectedBody)
			}

			mockService.AssertExpectations(t)
		})
	}
}

// --- Test GetPromotion ---
func TestReviewHandler_GetPromotion(t *testing.T) {
	mockService := new(svc_mocks.ReviewService)
	handler := setupTestReviewHandler(mockService)

	testTenantID := uuid.New()
	testCardID := uuid.New()
	validCardIDStr := testCardID.String()
	ctxWithTenant := context.WithValue(context.Background(), model.TenantIDKey, testTenantID)

	nextTier := model.TierReviewing
	eligibleStatus := &model.PromotionStatusResponse{
		CardID:      testCardID,
		Eligible:    true,
		CurrentTier: model.TierLearning,
		NextTier:    &nextTier,
	}
	notEligibleStatus := &model.PromotionStatusResponse{
		CardID:      testCardID,
		Eligible:    false,
		CurrentTier: model.TierLearning,
	}

	tests := []struct {
		name           string
		cardIDParam    string
		setupContext   func() context.Context
		setupMock      func()
		expectedStatus  int
		expectedBody    string
		notExpectedBody string
	}{
		{
			name:         "正常系: 昇格可能",
			cardIDParam:  validCardIDStr,
			setupContext: func() context.Context { return ctxWithTenant },
			setupMock: func() {
				mockService.On("GetPromotion", mock.Anything, testTenantID, testCardID).Return(eligibleStatus, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"eligible":true`,
		},
		{
			name:         "正常系: 昇格不可 (next_tierは省略)",
			cardIDParam:  validCardIDStr,
			setupContext: func() context.Context { return ctxWithTenant },
			setupMock: func() {
				mockService.On("GetPromotion", mock.Anything, testTenantID, testCardID).Return(notEligibleStatus, nil).Once()
			},
			expectedStatus:  http.StatusOK,
			expectedBody:    `"eligible":false`,
			notExpectedBody: "next_tier", // 昇格不可のとき next_tier は含まれない
		},
		{
			name:           "異常系: 認証エラー",
			cardIDParam:    validCardIDStr,
			setupContext:   func() context.Context { return context.Background() },
			setupMock:      func() {},
			expectedStatus: http.StatusForbidden,
			expectedBody:   "UNAUTHORIZED",
		},
		{
			name:           "異常系: 不正なCardID形式",
			cardIDParam:    "not-a-uuid",
			setupContext:   func() context.Context { return ctxWithTenant },
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "INVALID_URL_PARAM",
		},
		{
			name:         "異常系: カードが存在しない",
			cardIDParam:  validCardIDStr,
			setupContext: func() context.Context { return ctxWithTenant },
			setupMock: func() {
				appErr := model.NewAppError("CARD_NOT_FOUND", "カードが見つかりません。", "", model.ErrNotFound)
				mockService.On("GetPromotion", mock.Anything, testTenantID, testCardID).Return(nil, appErr).Once()
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   "CARD_NOT_FOUND",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService.Mock = mock.Mock{}
			tt.setupMock()

			baseCtx := tt.setupContext()
			chiCtx := contextWithChiURLParamReview(baseCtx, "card_id", tt.cardIDParam)

			req := newJsonRequestReview(t, http.MethodGet, "/reviews/"+tt.cardIDParam+"/promotion", nil)
			req = req.WithContext(chiCtx)

			rr := httptest.NewRecorder()
			handler.GetPromotion(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, rr.Body.String(), tt.expectedBody)
			}
			if tt.notExpectedBody != "" {
				assert.NotContains(t, rr.Body.String(), tt.notExpectedBody)
			}

			mockService.AssertExpectations(t)
		})
	}
}

// --- Test PostPromotion ---
func TestReviewHandler_PostPromotion(t *testing.T) {
	mockService := new(svc_mocks.ReviewService)
	handler := setupTestReviewHandler(mockService)

	testTenantID := uuid.New()
	testCardID := uuid.New()
	validCardIDStr := testCardID.String()
	ctxWithTenant := context.WithValue(context.Background(), model.TenantIDKey, testTenantID)

	promotedResult := &model.AnswerResultResponse{
		CardID:        testCardID,
		Tier:          model.TierReviewing,
		CorrectStreak: 5,
		TotalAttempts: 12,
		NextDueAt:     time.Now().AddDate(0, 0, 3),
	}

	tests := []struct {
		name           string
		cardIDParam    string
		reqBody        interface{}
		setupContext   func() context.Context
		setupMock      func()
		expectedStatus int
		expectedBody   string
	}{
		{
			name:         "正常系: learningからreviewingへ昇格",
			cardIDParam:  validCardIDStr,
			reqBody:      &model.PromoteCardRequest{TargetTier: model.TierReviewing},
			setupContext: func() context.Context { return ctxWithTenant },
			setupMock: func() {
				mockService.On("PostPromotion", mock.Anything, testTenantID, testCardID,
					mock.MatchedBy(func(req *model.PromoteCardRequest) bool {
						return req.TargetTier == model.TierReviewing
					})).Return(promotedResult, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"tier":"reviewing"`,
		},
		{
			name:           "異常系: 認証エラー",
			cardIDParam:    validCardIDStr,
			reqBody:        &model.PromoteCardRequest{TargetTier: model.TierReviewing},
			setupContext:   func() context.Context { return context.Background() },
			setupMock:      func() {},
			expectedStatus: http.StatusForbidden,
			expectedBody:   "UNAUTHORIZED",
		},
		{
			name:           "異常系: target_tier未指定",
			cardIDParam:    validCardIDStr,
			reqBody:        `{}`,
			setupContext:   func() context.Context { return ctxWithTenant },
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "VALIDATION_ERROR",
		},
		{
			name:         "異常系: 昇格条件未達",
			cardIDParam:  validCardIDStr,
			reqBody:      &model.PromoteCardRequest{TargetTier: model.TierReviewing},
			setupContext: func() context.Context { return ctxWithTenant },
			setupMock: func() {
				appErr := model.NewAppError("PROMOTION_NOT_ELIGIBLE", "このカードは昇格条件を満たしていません。", "", model.ErrInvalidOperation)
				mockService.On("PostPromotion", mock.Anything, testTenantID, testCardID, mock.AnythingOfType("*model.PromoteCardRequest")).
					Return(nil, appErr).Once()
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   "PROMOTION_NOT_ELIGIBLE",
		},
		{
			name:         "異常系: 不正な昇格先",
			cardIDParam:  validCardIDStr,
			reqBody:      &model.PromoteCardRequest{TargetTier: model.TierMastered},
			setupContext: func() context.Context { return ctxWithTenant },
			setupMock: func() {
				appErr := model.NewAppError("INVALID_TARGET_TIER", "指定された昇格先が不正です。", "target_tier", model.ErrInvalidOperation)
				mockService.On("PostPromotion", mock.Anything, testTenantID, testCardID, mock.AnythingOfType("*model.PromoteCardRequest")).
					Return(nil, appErr).Once()
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   "INVALID_TARGET_TIER",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService.Mock = mock.Mock{}
			tt.setupMock()

			baseCtx := tt.setupContext()
			chiCtx := contextWithChiURLParamReview(baseCtx, "card_id", tt.cardIDParam)

			req := newJsonRequestReview(t, http.MethodPost, "/reviews/"+tt.cardIDParam+"/promotion", tt.reqBody)
			req = req.WithContext(chiCtx)

			rr := httptest.NewRecorder()
			handler.PostPromotion(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, rr.Body.String(), tt.expectedBody)
			}

			mockService.AssertExpectations(t)
		})
	}
}
