// internal/repository/main_test.go
package repository

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"go_5_listen_keep/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// --- テストヘルパー関数 ---

// setupTestDB はテストごとに独立したインメモリSQLiteを用意します。
// DSNにテスト名を含めて、テスト間でデータが混ざらないようにする。
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "failed to connect database for testing")

	err = db.AutoMigrate(
		&model.User{},
		&model.Week{},
		&model.Track{},
		&model.Question{},
		&model.ListeningProgress{},
		&model.Answer{},
		&model.VoiceMessage{},
	)
	require.NoError(t, err, "failed to migrate database for testing")
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string) *model.User {
	t.Helper()
	user := &model.User{
		UserID:   uuid.New(),
		Username: username,
		Role:     model.RoleUser,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestWeek(t *testing.T, db *gorm.DB, title string, order int) *model.Week {
	t.Helper()
	week := &model.Week{
		WeekID: uuid.New(),
		Title:  title,
		Order:  order,
	}
	require.NoError(t, db.Create(week).Error)
	return week
}

func createTestTrack(t *testing.T, db *gorm.DB, weekID uuid.UUID, title string, order int) *model.Track {
	t.Helper()
	track := &model.Track{
		TrackID: uuid.New(),
		WeekID:  weekID,
		Title:   title,
		FileURL: "https://bucket.s3.ap-northeast-1.amazonaws.com/audio/" + title + ".mp3",
		Kind:    model.MediaKindAudio,
		Order:   order,
	}
	require.NoError(t, db.Create(track).Error)
	return track
}

func createTestQuestion(t *testing.T, db *gorm.DB, weekID uuid.UUID, text string, order int) *model.Question {
	t.Helper()
	question := &model.Question{
		QuestionID: uuid.New(),
		WeekID:     weekID,
		Text:       text,
		Order:      order,
	}
	require.NoError(t, db.Create(question).Error)
	return question
}

func createTestAnswer(t *testing.T, db *gorm.DB, userID, questionID uuid.UUID, text string, createdAt time.Time) *model.Answer {
	t.Helper()
	answer := &model.Answer{
		AnswerID:   uuid.New(),
		UserID:     userID,
		QuestionID: questionID,
		Text:       text,
		CreatedAt:  createdAt,
	}
	require.NoError(t, db.Create(answer).Error)
	return answer
}
