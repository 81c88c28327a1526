// internal/model/content.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// コンテンツの種別タグ
type ContentType string

const (
	ContentTypeTrack    ContentType = "TRACK"
	ContentTypeQuestion ContentType = "QUESTION"
)

// ContentItem は Track と Question を1本のストリームに束ねるための
// タグ付きユニオンです。物理的には2テーブルのまま持ち、読み取り時に
// アセンブラがこの形へ畳み込みます。
type ContentItem struct {
	ID        uuid.UUID   `json:"id"`
	WeekID    uuid.UUID   `json:"week_id"`
	Type      ContentType `json:"type"`
	Order     int         `json:"order"`
	CreatedAt time.Time   `json:"created_at"`

	// Track のみ
	Title   string    `json:"title,omitempty"`
	FileURL string    `json:"file_url,omitempty"`
	Kind    MediaKind `json:"kind,omitempty"`

	// Question のみ
	Text string `json:"text,omitempty"`
}

// NewTrackContentItem は Track をタグ付きユニオンへ変換します
func NewTrackContentItem(t *Track) ContentItem {
	return ContentItem{
		ID:        t.TrackID,
		WeekID:    t.WeekID,
		Type:      ContentTypeTrack,
		Order:     t.Order,
		CreatedAt: t.CreatedAt,
		Title:     t.Title,
		FileURL:   t.FileURL,
		Kind:      t.Kind,
	}
}

// NewQuestionContentItem は Question をタグ付きユニオンへ変換します
func NewQuestionContentItem(q *Question) ContentItem {
	return ContentItem{
		ID:        q.QuestionID,
		WeekID:    q.WeekID,
		Type:      ContentTypeQuestion,
		Order:     q.Order,
		CreatedAt: q.CreatedAt,
		Text:      q.Text,
	}
}

// ProjectedItem は射影結果の1要素です。
//   - Track:    Progress に進捗（未再生なら nil）、Answered は常に false
//   - Question: Progress は常に nil、Answered に回答済みフラグ
type ProjectedItem struct {
	Item     ContentItem   `json:"item"`
	Progress *ProgressView `json:"progress"`
	Answered bool          `json:"answered"`
}
