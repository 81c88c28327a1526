// internal/service/week_service_test.go
package service

import (
	"context"
	"errors"
	"testing"

	"go_5_listen_keep/internal/model"
	"go_5_listen_keep/internal/repository/mocks"
	svcmocks "go_5_listen_keep/internal/service/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// --- テストヘルパー関数 ---
func setupTestDBWeek() *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect database for testing: " + err.Error())
	}
	return db
}

func intPtr(i int) *int { return &i }

// --- Test CreateWeek ---
func Test_weekService_CreateWeek(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBWeek()
	mockWeekRepo := new(mocks.WeekRepository)
	mockTrackRepo := new(mocks.TrackRepository)
	mockMedia := new(svcmocks.MockMediaStore)
	weekService := NewWeekService(db, mockWeekRepo, mockTrackRepo, mockMedia)

	tests := []struct {
		name      string
		req       *model.PostWeekRequest
		setupMock func(weekRepo *mocks.WeekRepository)
		wantErr   error
		wantOrder int
	}{
		{
			name: "正常系: order指定あり",
			req:  &model.PostWeekRequest{Title: "第1週", Order: intPtr(5)},
			setupMock: func(weekRepo *mocks.WeekRepository) {
				// 指定値をそのまま使うので MaxOrder は呼ばれない
				weekRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Week")).
					Run(func(args mock.Arguments) {
						week := args.Get(2).(*model.Week)
						assert.Equal(t, "第1週", week.Title)
						assert.Equal(t, 5, week.Order)
						assert.NotEqual(t, uuid.Nil, week.WeekID)
					}).Return(nil).Once()
			},
			wantErr:   nil,
			wantOrder: 5,
		},
		{
			name: "正常系: order未指定なら最大値+1を自動採番",
			req:  &model.PostWeekRequest{Title: "第4週"},
			setupMock: func(weekRepo *mocks.WeekRepository) {
				weekRepo.On("MaxOrder", ctx, mock.AnythingOfType("*gorm.DB")).
					Return(3, nil).Once()
				weekRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Week")).
					Run(func(args mock.Arguments) {
						week := args.Get(2).(*model.Week)
						assert.Equal(t, 4, week.Order)
					}).Return(nil).Once()
			},
			wantErr:   nil,
			wantOrder: 4,
		},
		{
			name: "正常系: 週が1つもないときは1番から",
			req:  &model.PostWeekRequest{Title: "第1週"},
			setupMock: func(weekRepo *mocks.WeekRepository) {
				weekRepo.On("MaxOrder", ctx, mock.AnythingOfType("*gorm.DB")).
					Return(0, nil).Once()
				weekRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Week")).
					Return(nil).Once()
			},
			wantErr:   nil,
			wantOrder: 1,
		},
		{
			name: "異常系: MaxOrderでDBエラー",
			req:  &model.PostWeekRequest{Title: "第1週"},
			setupMock: func(weekRepo *mocks.WeekRepository) {
				weekRepo.On("MaxOrder", ctx, mock.AnythingOfType("*gorm.DB")).
					Return(0, errors.New("db error on max order")).Once()
			},
			wantErr: model.ErrInternalServer,
		},
		{
			name: "異常系: CreateでDBエラー",
			req:  &model.PostWeekRequest{Title: "第1週", Order: intPtr(1)},
			setupMock: func(weekRepo *mocks.WeekRepository) {
				weekRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Week")).
					Return(errors.New("db error on create")).Once()
			},
			wantErr: model.ErrInternalServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockWeekRepo.Mock = mock.Mock{}
			if tt.setupMock != nil {
				tt.setupMock(mockWeekRepo)
			}

			createdWeek, err := weekService.CreateWeek(ctx, tt.req)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, createdWeek)
			} else {
				require.NoError(t, err)
				require.NotNil(t, createdWeek)
				assert.Equal(t, tt.req.Title, createdWeek.Title)
				assert.Equal(t, tt.wantOrder, createdWeek.Order)
				assert.NotEqual(t, uuid.Nil, createdWeek.WeekID)
			}

			mockWeekRepo.AssertExpectations(t)
		})
	}
}

// --- Test UpdateWeek ---
func Test_weekService_UpdateWeek(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBWeek()
	mockWeekRepo := new(mocks.WeekRepository)
	mockTrackRepo := new(mocks.TrackRepository)
	mockMedia := new(svcmocks.MockMediaStore)
	weekService := NewWeekService(db, mockWeekRepo, mockTrackRepo, mockMedia)

	weekID := uuid.New()
	existingWeek := &model.Week{WeekID: weekID, Title: "旧タイトル", Order: 1}
	updatedWeek := &model.Week{WeekID: weekID, Title: "新タイトル", Order: 2}

	tests := []struct {
		name      string
		req       *model.PutWeekRequest
		setupMock func(weekRepo *mocks.WeekRepository)
		wantErr   error
	}{
		{
			name: "正常系: タイトルと並び順の更新",
			req:  &model.PutWeekRequest{Title: "新タイトル", Order: intPtr(2)},
			setupMock: func(weekRepo *mocks.WeekRepository) {
				weekRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), weekID).
					Return(existingWeek, nil).Once()
				weekRepo.On("Update", ctx, mock.AnythingOfType("*gorm.DB"), weekID,
					map[string]interface{}{"title": "新タイトル", "display_order": 2}).
					Return(nil).Once()
				weekRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), weekID).
					Return(updatedWeek, nil).Once()
			},
			wantErr: nil,
		},
		{
			name: "異常系: 週が存在しない",
			req:  &model.PutWeekRequest{Title: "新タイトル", Order: intPtr(2)},
			setupMock: func(weekRepo *mocks.WeekRepository) {
				weekRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), weekID).
					Return(nil, model.ErrNotFound).Once()
			},
			wantErr: model.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockWeekRepo.Mock = mock.Mock{}
			if tt.setupMock != nil {
				tt.setupMock(mockWeekRepo)
			}

			got, err := weekService.UpdateWeek(ctx, weekID, tt.req)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				require.NotNil(t, got)
				assert.Equal(t, "新タイトル", got.Title)
				assert.Equal(t, 2, got.Order)
			}

			mockWeekRepo.AssertExpectations(t)
		})
	}
}

// --- Test DeleteWeek ---
func Test_weekService_DeleteWeek(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBWeek()

	weekID := uuid.New()
	audioTrack := &model.Track{
		TrackID: uuid.New(),
		WeekID:  weekID,
		Title:   "音声トラック",
		FileURL: "https://bucket.s3.ap-northeast-1.amazonaws.com/audio/a.mp3",
		Kind:    model.MediaKindAudio,
	}
	videoTrack := &model.Track{
		TrackID: uuid.New(),
		WeekID:  weekID,
		Title:   "外部動画",
		FileURL: "https://www.youtube.com/watch?v=xxxx",
		Kind:    model.MediaKindExternalVideo,
	}

	t.Run("正常系: 音声トラックのメディアだけ削除される", func(t *testing.T) {
		mockWeekRepo := new(mocks.WeekRepository)
		mockTrackRepo := new(mocks.TrackRepository)
		mockMedia := new(svcmocks.MockMediaStore)
		weekService := NewWeekService(db, mockWeekRepo, mockTrackRepo, mockMedia)

		mockTrackRepo.On("FindByWeek", ctx, mock.AnythingOfType("*gorm.DB"), weekID).
			Return([]*model.Track{audioTrack, videoTrack}, nil).Once()
		mockWeekRepo.On("Delete", ctx, mock.AnythingOfType("*gorm.DB"), weekID).
			Return(nil).Once()
		// AUDIO の分だけ呼ばれる。EXTERNAL_VIDEO のURLは預かり物なので触らない。
		mockMedia.On("Delete", ctx, audioTrack.FileURL).Return(nil).Once()

		err := weekService.DeleteWeek(ctx, weekID)

		require.NoError(t, err)
		mockWeekRepo.AssertExpectations(t)
		mockTrackRepo.AssertExpectations(t)
		mockMedia.AssertExpectations(t)
		mockMedia.AssertNotCalled(t, "Delete", ctx, videoTrack.FileURL)
	})

	t.Run("正常系: メディア削除の失敗はAPIの失敗にしない", func(t *testing.T) {
		mockWeekRepo := new(mocks.WeekRepository)
		mockTrackRepo := new(mocks.TrackRepository)
		mockMedia := new(svcmocks.MockMediaStore)
		weekService := NewWeekService(db, mockWeekRepo, mockTrackRepo, mockMedia)

		mockTrackRepo.On("FindByWeek", ctx, mock.AnythingOfType("*gorm.DB"), weekID).
			Return([]*model.Track{audioTrack}, nil).Once()
		mockWeekRepo.On("Delete", ctx, mock.AnythingOfType("*gorm.DB"), weekID).
			Return(nil).Once()
		mockMedia.On("Delete", ctx, audioTrack.FileURL).
			Return(errors.New("s3 is down")).Once()

		err := weekService.DeleteWeek(ctx, weekID)

		// コミット済みなので成功扱い
		require.NoError(t, err)
		mockMedia.AssertExpectations(t)
	})

	t.Run("異常系: 週が存在しない", func(t *testing.T) {
		mockWeekRepo := new(mocks.WeekRepository)
		mockTrackRepo := new(mocks.TrackRepository)
		mockMedia := new(svcmocks.MockMediaStore)
		weekService := NewWeekService(db, mockWeekRepo, mockTrackRepo, mockMedia)

		mockTrackRepo.On("FindByWeek", ctx, mock.AnythingOfType("*gorm.DB"), weekID).
			Return([]*model.Track{}, nil).Once()
		mockWeekRepo.On("Delete", ctx, mock.AnythingOfType("*gorm.DB"), weekID).
			Return(model.ErrNotFound).Once()

		err := weekService.DeleteWeek(ctx, weekID)

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrNotFound)
		mockMedia.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}
