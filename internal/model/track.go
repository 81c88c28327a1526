// internal/model/track.go
package model

import (
	"io"
	"time"

	"github.com/google/uuid"
)

// トラックのメディア種別
type MediaKind string

const (
	MediaKindAudio         MediaKind = "AUDIO"
	MediaKindExternalVideo MediaKind = "EXTERNAL_VIDEO"
)

// Track は週に属する音声/動画コンテンツを表します。
// Order は週の中で Question と共有する並び順キーです。
// DBレベルのユニーク制約はかけず、重複時はアセンブラ側のタイブレークで吸収します。
type Track struct {
	TrackID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"track_id"`
	WeekID    uuid.UUID `gorm:"type:uuid;not null;index" json:"week_id"`
	Title     string    `gorm:"not null" json:"title"`
	FileURL   string    `gorm:"not null" json:"file_url"`
	Kind      MediaKind `gorm:"type:varchar(20);not null;default:'AUDIO'" json:"kind"`
	Order     int       `gorm:"column:display_order;not null;default:0" json:"order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Track) TableName() string {
	return "tracks"
}

// トラック作成リクエストDTO
// メディア本体のアップロードは外部コラボレータ(MediaStore)の責務で、ここではURLを受け取るだけ。
type PostTrackRequest struct {
	WeekID  uuid.UUID `json:"week_id" validate:"required"`
	Title   string    `json:"title" validate:"required,min=1,max=200"`
	FileURL string    `json:"file_url" validate:"required,url"`
	Kind    MediaKind `json:"kind" validate:"required,oneof=AUDIO EXTERNAL_VIDEO"`
}

// トラックアップロードリクエストDTO
// multipart/form-data から組み立てる。ファイル本体を MediaStore に保存してから
// AUDIO トラックとして登録する。
type UploadTrackRequest struct {
	WeekID      uuid.UUID `validate:"required"`
	Title       string    `validate:"required,min=1,max=200"`
	Filename    string    `validate:"required"`
	ContentType string
	File        io.Reader `validate:"required"`
}

// トラック更新リクエストDTO
// order と week_id は更新させない（並び替えは週編集の責務）。
type PutTrackRequest struct {
	Title string `json:"title" validate:"required,min=1,max=200"`
}
