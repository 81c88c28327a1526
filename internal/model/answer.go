// internal/model/answer.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Answer は設問に対するユーザーの回答を表します。
// (user_id, question_id) のユニーク制約は意図的にかけない（同じ設問への
// 複数回答を許す元仕様を踏襲）。読み取り側は created_at DESC, answer_id DESC で
// 並べて決定的にする。どの行が「正」かのポリシーは定めない。
type Answer struct {
	AnswerID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"answer_id"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	QuestionID uuid.UUID `gorm:"type:uuid;not null;index" json:"question_id"`
	Text       string    `gorm:"not null" json:"text"`
	CreatedAt  time.Time `json:"created_at"`
}

func (Answer) TableName() string {
	return "answers"
}

// 回答送信リクエストDTO
type PostAnswerRequest struct {
	QuestionID uuid.UUID `json:"question_id" validate:"required"`
	Text       string    `json:"text" validate:"required,min=1,max=5000"`
}

// 回答一括削除リクエストDTO
type BatchDeleteAnswersRequest struct {
	IDs []uuid.UUID `json:"ids" validate:"required,min=1"`
}

// AnswerListItemResponse は管理者向け回答一覧の1行（回答＋文脈情報）
type AnswerListItemResponse struct {
	AnswerID     uuid.UUID `json:"answer_id"`
	Text         string    `json:"text"`
	CreatedAt    time.Time `json:"created_at"`
	UserID       uuid.UUID `json:"user_id"`
	Username     string    `json:"username"`
	QuestionID   uuid.UUID `json:"question_id"`
	QuestionText string    `json:"question_text"`
	WeekTitle    string    `json:"week_title"`
	WeekOrder    int       `json:"week_order"`
}
