// internal/model/question.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Question は週に属する自由記述の設問を表します。
// Order は同じ週の Track と共有する並び順キーです。
type Question struct {
	QuestionID uuid.UUID `gorm:"type:uuid;primaryKey" json:"question_id"`
	WeekID     uuid.UUID `gorm:"type:uuid;not null;index" json:"week_id"`
	Text       string    `gorm:"not null" json:"text"`
	Order      int       `gorm:"column:display_order;not null;default:0" json:"order"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (Question) TableName() string {
	return "questions"
}

// 設問作成リクエストDTO
// 一括登録に対応するため texts は配列。空行はサービス側でスキップする。
type PostQuestionsRequest struct {
	WeekID uuid.UUID `json:"week_id" validate:"required"`
	Texts  []string  `json:"texts" validate:"required,min=1,dive,max=2000"`
}

// 設問更新リクエストDTO
type PutQuestionRequest struct {
	Text string `json:"text" validate:"required,min=1,max=2000"`
}
