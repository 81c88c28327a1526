// internal/service/auth_service_test.go
package service

import (
	"context"
	"errors"
	"testing"

	"go_5_listen_keep/internal/config"
	"go_5_listen_keep/internal/model"
	"go_5_listen_keep/internal/repository/mocks"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// --- テストヘルパー関数 ---
func setupTestDBAuth() *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect database for testing: " + err.Error())
	}
	return db
}

func testAuthConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT.SecretKey = "test-secret-key"
	cfg.JWT.ExpiresInHours = 24
	return cfg
}

// --- Test SignUp ---
func Test_authService_SignUp(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBAuth()
	mockUserRepo := new(mocks.UserRepository)
	authService := NewAuthService(db, mockUserRepo, testAuthConfig())

	tests := []struct {
		name      string
		req       *model.SignUpRequest
		setupMock func()
		wantErr   error
		wantRole  string
	}{
		{
			name: "正常系: 一般ユーザーとして登録",
			req:  &model.SignUpRequest{Username: "hanako"},
			setupMock: func() {
				mockUserRepo.On("FindByUsername", ctx, mock.AnythingOfType("*gorm.DB"), "hanako").
					Return(nil, model.ErrNotFound).Once()
				mockUserRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.User")).
					Run(func(args mock.Arguments) {
						user := args.Get(2).(*model.User)
						assert.Equal(t, "hanako", user.Username)
						assert.Equal(t, model.RoleUser, user.Role)
						assert.NotEqual(t, uuid.Nil, user.UserID)
					}).Return(nil).Once()
			},
			wantErr:  nil,
			wantRole: model.RoleUser,
		},
		{
			name: "正常系: 末尾.adなら管理者として登録",
			req:  &model.SignUpRequest{Username: "teacher.ad"},
			setupMock: func() {
				mockUserRepo.On("FindByUsername", ctx, mock.AnythingOfType("*gorm.DB"), "teacher.ad").
					Return(nil, model.ErrNotFound).Once()
				mockUserRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.User")).
					Run(func(args mock.Arguments) {
						user := args.Get(2).(*model.User)
						assert.Equal(t, model.RoleAdmin, user.Role)
					}).Return(nil).Once()
			},
			wantErr:  nil,
			wantRole: model.RoleAdmin,
		},
		{
			name: "異常系: ユーザー名が重複",
			req:  &model.SignUpRequest{Username: "hanako"},
			setupMock: func() {
				mockUserRepo.On("FindByUsername", ctx, mock.AnythingOfType("*gorm.DB"), "hanako").
					Return(&model.User{UserID: uuid.New(), Username: "hanako"}, nil).Once()
			},
			wantErr: model.ErrConflict,
		},
		{
			name: "異常系: Create時に重複検知（レースコンディション）",
			req:  &model.SignUpRequest{Username: "hanako"},
			setupMock: func() {
				mockUserRepo.On("FindByUsername", ctx, mock.AnythingOfType("*gorm.DB"), "hanako").
					Return(nil, model.ErrNotFound).Once()
				mockUserRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.User")).
					Return(model.ErrConflict).Once()
			},
			wantErr: model.ErrConflict,
		},
		{
			name: "異常系: 重複チェックでDBエラー",
			req:  &model.SignUpRequest{Username: "hanako"},
			setupMock: func() {
				mockUserRepo.On("FindByUsername", ctx, mock.AnythingOfType("*gorm.DB"), "hanako").
					Return(nil, errors.New("db error")).Once()
			},
			wantErr: nil, // AppErrorのままなのでセンチネル比較はコード側で行う
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUserRepo.Mock = mock.Mock{}
			if tt.setupMock != nil {
				tt.setupMock()
			}

			user, err := authService.SignUp(ctx, tt.req)

			switch {
			case tt.wantErr != nil:
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				var appErr *model.AppError
				require.ErrorAs(t, err, &appErr)
				assert.Equal(t, "DUPLICATE_USERNAME", appErr.Detail.Code)
				assert.Nil(t, user)
			case tt.wantRole != "":
				require.NoError(t, err)
				require.NotNil(t, user)
				assert.Equal(t, tt.req.Username, user.Username)
				assert.Equal(t, tt.wantRole, user.Role)
			default:
				// DBエラー系: AppError(INTERNAL_SERVER_ERROR)
				require.Error(t, err)
				var appErr *model.AppError
				require.ErrorAs(t, err, &appErr)
				assert.Equal(t, "INTERNAL_SERVER_ERROR", appErr.Detail.Code)
				assert.Nil(t, user)
			}

			mockUserRepo.AssertExpectations(t)
		})
	}
}

// --- Test Login ---
func Test_authService_Login(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBAuth()
	mockUserRepo := new(mocks.UserRepository)
	cfg := testAuthConfig()
	authService := NewAuthService(db, mockUserRepo, cfg)

	existingUser := &model.User{
		UserID:   uuid.New(),
		Username: "hanako",
		Role:     model.RoleUser,
	}

	t.Run("正常系: JWTとユーザー情報が返る", func(t *testing.T) {
		mockUserRepo.Mock = mock.Mock{}
		mockUserRepo.On("FindByUsername", ctx, mock.AnythingOfType("*gorm.DB"), "hanako").
			Return(existingUser, nil).Once()

		resp, err := authService.Login(ctx, &model.LoginRequest{Username: "hanako"})

		require.NoError(t, err)
		require.NotNil(t, resp)
		assert.Equal(t, existingUser.UserID, resp.User.UserID)
		assert.Equal(t, "hanako", resp.User.Username)
		require.NotEmpty(t, resp.AccessToken)

		// 発行されたトークンが自分の鍵で検証でき、subにユーザーIDが入っていること
		token, err := jwt.ParseWithClaims(resp.AccessToken, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
			return []byte(cfg.JWT.SecretKey), nil
		})
		require.NoError(t, err)
		claims, ok := token.Claims.(*jwt.RegisteredClaims)
		require.True(t, ok)
		assert.Equal(t, existingUser.UserID.String(), claims.Subject)
		assert.Equal(t, config.AppName, claims.Issuer)
	})

	t.Run("異常系: ユーザーが存在しない", func(t *testing.T) {
		mockUserRepo.Mock = mock.Mock{}
		mockUserRepo.On("FindByUsername", ctx, mock.AnythingOfType("*gorm.DB"), "unknown").
			Return(nil, model.ErrNotFound).Once()

		resp, err := authService.Login(ctx, &model.LoginRequest{Username: "unknown"})

		require.Error(t, err)
		var appErr *model.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "AUTHENTICATION_FAILED", appErr.Detail.Code)
		assert.Nil(t, resp)
	})
}

// --- Test GetUser ---
func Test_authService_GetUser(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBAuth()
	mockUserRepo := new(mocks.UserRepository)
	authService := NewAuthService(db, mockUserRepo, testAuthConfig())

	userID := uuid.New()
	existingUser := &model.User{UserID: userID, Username: "hanako", Role: model.RoleUser}

	t.Run("正常系", func(t *testing.T) {
		mockUserRepo.Mock = mock.Mock{}
		mockUserRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), userID).
			Return(existingUser, nil).Once()

		user, err := authService.GetUser(ctx, userID)

		require.NoError(t, err)
		assert.Equal(t, existingUser, user)
	})

	t.Run("異常系: ユーザーが存在しない", func(t *testing.T) {
		mockUserRepo.Mock = mock.Mock{}
		mockUserRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), userID).
			Return(nil, model.ErrNotFound).Once()

		user, err := authService.GetUser(ctx, userID)

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrNotFound)
		assert.Nil(t, user)
	})
}
