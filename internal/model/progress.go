// internal/model/progress.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// ListeningProgress は (ユーザー, トラック) ごとの再生状態を表します。
// (user_id, track_id) の複合ユニークインデックスが upsert の競合キーになります。
//
//   - Position: 再生位置（秒）。last-write-wins で上書きされる。
//   - Completed: 一度 true になったら通常フローでは false に戻らない片方向ラッチ。
//   - ListenCount: 聴き切った回数。RecordCompletion だけが加算する。
type ListeningProgress struct {
	ProgressID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"progress_id"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_track" json:"user_id"`
	TrackID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_track" json:"track_id"`
	Position       float64   `gorm:"not null;default:0" json:"position"`
	Completed      bool      `gorm:"not null;default:false" json:"completed"`
	ListenCount    int       `gorm:"not null;default:0" json:"listen_count"`
	LastListenedAt time.Time `gorm:"not null" json:"last_listened_at"`
	CreatedAt      time.Time `json:"created_at"`

	// 関連 (Preload用)
	User *User `gorm:"foreignKey:UserID;references:UserID" json:"-"`
}

func (ListeningProgress) TableName() string {
	return "listening_progress"
}

// 再生位置送信リクエストDTO
// Position はポインタにして「0秒」と「未指定」を区別する。
type PostProgressRequest struct {
	TrackID   uuid.UUID `json:"track_id" validate:"required"`
	Position  *float64  `json:"position" validate:"required,min=0"`
	Completed bool      `json:"completed"`
}

// 再生完了送信リクエストDTO
type PostCompletionRequest struct {
	TrackID uuid.UUID `json:"track_id" validate:"required"`
}

// ProgressView は射影結果に載せる進捗のサマリ
type ProgressView struct {
	Position    float64 `json:"position"`
	Completed   bool    `json:"completed"`
	ListenCount int     `json:"listen_count"`
}

// TrackListenerResponse はトラック別の視聴状況（生の行。集計はしない）
type TrackListenerResponse struct {
	UserID         uuid.UUID `json:"user_id"`
	Username       string    `json:"username"`
	Position       float64   `json:"position"`
	Completed      bool      `json:"completed"`
	ListenCount    int       `json:"listen_count"`
	LastListenedAt time.Time `json:"last_listened_at"`
}
