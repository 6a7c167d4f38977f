package service_test // メインコードとは別のパッケージにすることで、公開されているものしかテストできなくなり、より良いテストになる

import (
	"context"
	"testing"

	"go_5_flashcard_keep/internal/config"
	"go_5_flashcard_keep/internal/model"
	"go_5_flashcard_keep/internal/repository/mocks"
	"go_5_flashcard_keep/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// --- テストスイートの定義 ---
// 関連するテストと、共通のセットアップをまとめる
type AuthServiceTestSuite struct {
	suite.Suite // testifyのSuiteを埋め込む

	db             *gorm.DB
	mockTenantRepo *mocks.TenantRepository
	mockPrefRepo   *mocks.PreferenceRepository
	cfg            *config.Config
	authService    service.AuthService
}

// --- セットアップメソッド ---
// 各テスト(`TestXxx`)が実行される直前に呼ばれる
func (s *AuthServiceTestSuite) SetupTest() {
	// トランザクション用のインメモリDB。SQLは発行しないためマイグレーションは不要
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	s.Require().NoError(err)
	s.db = db

	// 各テストの前に、モックを新しく生成してクリーンな状態にする
	s.mockTenantRepo = new(mocks.TenantRepository)
	s.mockPrefRepo = new(mocks.PreferenceRepository)

	// テスト用のダミー設定
	s.cfg = &config.Config{
		JWT: config.JWTConfig{
			SecretKey:             "test-secret",
			AccessTokenTTLMinutes: 15,
		},
	}
	s.cfg.App.Name = "flashcard-keep-test"

	// テスト対象のサービスにモックを注入してインスタンスを生成
	s.authService = service.NewAuthService(s.db, s.mockTenantRepo, s.mockPrefRepo, s.cfg)
}

// --- テストランナー ---
// この関数が `go test` から実際に呼ばれる
func TestAuthService(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}

// --- RegisterTenantメソッドのテスト ---
func (s *AuthServiceTestSuite) TestRegisterTenant() {
	// テストケースをテーブルとして定義
	testCases := []struct {
		name        string // テストケース名
		req         *model.RegisterRequest
		setupMocks  func()                                // このケースのためのモック設定
		checkResult func(tenant *model.Tenant, err error) // 結果の検証
	}{
		{
			name: "Success - 正常に登録できて既定の設定が作られる",
			req:  &model.RegisterRequest{Name: "test", Email: "test@example.com", Password: "password"},
			setupMocks: func() {
				s.mockTenantRepo.On("FindByEmail", mock.Anything, mock.Anything, "test@example.com").Return(nil, model.ErrNotFound).Once()
				s.mockTenantRepo.On("FindByName", mock.Anything, mock.Anything, "test").Return(nil, model.ErrNotFound).Once()
				s.mockTenantRepo.On("Create", mock.Anything, mock.Anything, mock.AnythingOfType("*model.Tenant")).Return(nil).Once()
				// 登録と同じトランザクションでデフォルト設定が払い出される
				s.mockPrefRepo.On("Upsert", mock.Anything, mock.Anything, mock.MatchedBy(func(p *model.SchedulingPreference) bool {
					return p.DailyCardBudget == 30 && p.QuietHoursStart == 9 && p.QuietHoursEnd == 21
				})).Return(nil).Once()
			},
			checkResult: func(tenant *model.Tenant, err error) {
				s.NoError(err)
				s.NotNil(tenant)
				s.Equal("test@example.com", tenant.Email)
				s.True(tenant.IsActive)
			},
		},
		{
			name: "Failure - Emailが重複している",
			req:  &model.RegisterRequest{Name: "test", Email: "test@example.com", Password: "password"},
			setupMocks: func() {
				s.mockTenantRepo.On("FindByEmail", mock.Anything, mock.Anything, "test@example.com").Return(&model.Tenant{}, nil).Once()
			},
			checkResult: func(tenant *model.Tenant, err error) {
				s.Nil(tenant)
				s.Error(err)
				var appErr *model.AppError
				s.ErrorAs(err, &appErr)
				s.Equal("DUPLICATE_EMAIL", appErr.Detail.Code)
			},
		},
		{
			name: "Failure - ユーザ名が重複している",
			req:  &model.RegisterRequest{Name: "taken", Email: "new@example.com", Password: "password"},
			setupMocks: func() {
				s.mockTenantRepo.On("FindByEmail", mock.Anything, mock.Anything, "new@example.com").Return(nil, model.ErrNotFound).Once()
				s.mockTenantRepo.On("FindByName", mock.Anything, mock.Anything, "taken").Return(&model.Tenant{}, nil).Once()
			},
			checkResult: func(tenant *model.Tenant, err error) {
				s.Nil(tenant)
				s.Error(err)
				var appErr *model.AppError
				s.ErrorAs(err, &appErr)
				s.Equal("DUPLICATE_NAME", appErr.Detail.Code)
			},
		},
		{
			name: "Failure - Create時の競合 (レースコンディション)",
			req:  &model.RegisterRequest{Name: "racer", Email: "racer@example.com", Password: "password"},
			setupMocks: func() {
				s.mockTenantRepo.On("FindByEmail", mock.Anything, mock.Anything, "racer@example.com").Return(nil, model.ErrNotFound).Once()
				s.mockTenantRepo.On("FindByName", mock.Anything, mock.Anything, "racer").Return(nil, model.ErrNotFound).Once()
				s.mockTenantRepo.On("Create", mock.Anything, mock.Anything, mock.AnythingOfType("*model.Tenant")).Return(model.ErrConflict).Once()
			},
			checkResult: func(tenant *model.Tenant, err error) {
				s.Nil(tenant)
				s.Error(err)
				var appErr *model.AppError
				s.ErrorAs(err, &appErr)
				s.Equal("DUPLICATE_ENTRY", appErr.Detail.Code)
			},
		},
	}

	// テーブルのループ実行
	for _, tc := range testCases {
		s.Run(tc.name, func() {
			// SetupTestが呼ばれてモックがリセットされる
			s.SetupTest()

			// 1. Arrange (準備)
			tc.setupMocks()

			// 2. Act (実行)
			createdTenant, err := s.authService.RegisterTenant(context.Background(), tc.req)

			// 3. Assert (検証)
			tc.checkResult(createdTenant, err)

			// モックの呼び出しが期待通りだったか全体を検証
			s.mockTenantRepo.AssertExpectations(s.T())
			s.mockPrefRepo.AssertExpectations(s.T())
		})
	}
}

// --- Loginメソッドのテスト ---
func (s *AuthServiceTestSuite) TestLogin() {
	tenantID := uuid.New()
	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	s.Require().NoError(err)
	activeTenant := &model.Tenant{
		TenantID:     tenantID,
		Name:         "login-user",
		Email:        "login@example.com",
		PasswordHash: string(hashed),
		IsActive:     true,
	}

	testCases := []struct {
		name        string
		req         *model.LoginRequest
		setupMocks  func()
		checkResult func(resp *model.LoginResponse, err error)
	}{
		{
			name: "Success - 正しい資格情報でトークンが返る",
			req:  &model.LoginRequest{Email: "login@example.com", Password: "password123"},
			setupMocks: func() {
				s.mockTenantRepo.On("FindByEmail", mock.Anything, mock.Anything, "login@example.com").Return(activeTenant, nil).Once()
			},
			checkResult: func(resp *model.LoginResponse, err error) {
				s.NoError(err)
				s.NotNil(resp)
				s.NotEmpty(resp.AccessToken)
				s.Equal("Bearer", resp.TokenType)
				s.Equal(15*60, resp.ExpiresIn)
			},
		},
		{
			name: "Failure - ユーザーが存在しない",
			req:  &model.LoginRequest{Email: "nobody@example.com", Password: "password123"},
			setupMocks: func() {
				s.mockTenantRepo.On("FindByEmail", mock.Anything, mock.Anything, "nobody@example.com").Return(nil, model.ErrNotFound).Once()
			},
			checkResult: func(resp *model.LoginResponse, err error) {
				s.Nil(resp)
				var appErr *model.AppError
				s.ErrorAs(err, &appErr)
				s.Equal("AUTHENTICATION_FAILED", appErr.Detail.Code)
			},
		},
		{
			name: "Failure - パスワードが一致しない",
			req:  &model.LoginRequest{Email: "login@example.com", Password: "wrong-password"},
			setupMocks: func() {
				s.mockTenantRepo.On("FindByEmail", mock.Anything, mock.Anything, "login@example.com").Return(activeTenant, nil).Once()
			},
			checkResult: func(resp *model.LoginResponse, err error) {
				s.Nil(resp)
				var appErr *model.AppError
				s.ErrorAs(err, &appErr)
				s.Equal("AUTHENTICATION_FAILED", appErr.Detail.Code)
			},
		},
		{
			name: "Failure - アカウントが無効化されている",
			req:  &model.LoginRequest{Email: "login@example.com", Password: "password123"},
			setupMocks: func() {
				inactive := *activeTenant
				inactive.IsActive = false
				s.mockTenantRepo.On("FindByEmail", mock.Anything, mock.Anything, "login@example.com").Return(&inactive, nil).Once()
			},
			checkResult: func(resp *model.LoginResponse, err error) {
				s.Nil(resp)
				var appErr *model.AppError
				s.ErrorAs(err, &appErr)
				s.Equal("ACCOUNT_NOT_ACTIVE", appErr.Detail.Code)
			},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.SetupTest()
			tc.setupMocks()

			resp, err := s.authService.Login(context.Background(), tc.req)

			tc.checkResult(resp, err)
			s.mockTenantRepo.AssertExpectations(s.T())
		})
	}
}

// --- GetTenantメソッドのテスト ---
func (s *AuthServiceTestSuite) TestGetTenant() {
	tenantID := uuid.New()

	s.Run("Success - テナントを取得できる", func() {
		s.SetupTest()
		s.mockTenantRepo.On("FindByID", mock.Anything, mock.Anything, tenantID).
			Return(&model.Tenant{TenantID: tenantID, Name: "found"}, nil).Once()

		tenant, err := s.authService.GetTenant(context.Background(), tenantID)

		s.NoError(err)
		s.Equal("found", tenant.Name)
		s.mockTenantRepo.AssertExpectations(s.T())
	})

	s.Run("Failure - テナントが見つからない", func() {
		s.SetupTest()
		s.mockTenantRepo.On("FindByID", mock.Anything, mock.Anything, tenantID).
			Return(nil, model.ErrNotFound).Once()

		tenant, err := s.authService.GetTenant(context.Background(), tenantID)

		s.Nil(tenant)
		var appErr *model.AppError
		s.ErrorAs(err, &appErr)
		s.Equal("TENANT_NOT_FOUND", appErr.Detail.Code)
		s.mockTenantRepo.AssertExpectations(s.T())
	})
}
