// internal/model/voice_message.go
package model

import (
	"io"
	"time"

	"github.com/google/uuid"
)

// VoiceMessage はユーザーが吹き込んだ音声メッセージを表します。
// トラックへの返信として録音される場合は TrackID が入り、
// 自由録音の場合は NULL のまま。
type VoiceMessage struct {
	MessageID uuid.UUID  `gorm:"type:uuid;primaryKey" json:"message_id"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	TrackID   *uuid.UUID `gorm:"type:uuid;index" json:"track_id,omitempty"`
	FileURL   string     `gorm:"not null" json:"file_url"`
	Viewed    bool       `gorm:"not null;default:false" json:"viewed"`
	CreatedAt time.Time  `json:"created_at"`
}

func (VoiceMessage) TableName() string {
	return "voice_messages"
}

// メッセージ投稿リクエストDTO
// multipart/form-data から組み立てる。track_id は省略可。
type SubmitMessageRequest struct {
	TrackID     *uuid.UUID
	Filename    string `validate:"required"`
	ContentType string
	File        io.Reader `validate:"required"`
}

// 既読フラグ更新リクエストDTO
type PatchMessageRequest struct {
	Viewed *bool `json:"viewed" validate:"required"`
}

// メッセージ一括削除リクエストDTO
type BatchDeleteMessagesRequest struct {
	IDs []uuid.UUID `json:"ids" validate:"required,min=1"`
}

// VoiceMessageListItemResponse は管理者向けメッセージ一覧の1行
// （メッセージ＋投稿者とトラック・週の文脈情報）。
// トラックに紐づかないメッセージでは Track/Week 系フィールドは空。
type VoiceMessageListItemResponse struct {
	MessageID  uuid.UUID  `json:"message_id"`
	FileURL    string     `json:"file_url"`
	Viewed     bool       `json:"viewed"`
	CreatedAt  time.Time  `json:"created_at"`
	UserID     uuid.UUID  `json:"user_id"`
	Username   string     `json:"username"`
	TrackID    *uuid.UUID `json:"track_id,omitempty"`
	TrackTitle string     `json:"track_title,omitempty"`
	WeekTitle  string     `json:"week_title,omitempty"`
	WeekOrder  int        `json:"week_order,omitempty"`
}
