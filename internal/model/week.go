// internal/model/week.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Week はコンテンツのまとまり（週）を表します。
// Order は週同士の表示順で、重複禁止の制約はかけない（運用上は単調増加の想定）。
type Week struct {
	WeekID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"week_id"`
	Title     string    `gorm:"not null" json:"title"`
	Order     int       `gorm:"column:display_order;not null;default:0" json:"order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// 関連 (Preload用)
	Tracks    []Track    `gorm:"foreignKey:WeekID;references:WeekID" json:"-"`
	Questions []Question `gorm:"foreignKey:WeekID;references:WeekID" json:"-"`
}

func (Week) TableName() string {
	return "weeks"
}

// 週作成リクエストDTO
// Order 未指定なら既存の最大値+1を自動採番する。
type PostWeekRequest struct {
	Title string `json:"title" validate:"required,min=1,max=200"`
	Order *int   `json:"order" validate:"omitempty,min=0"`
}

// 週更新リクエストDTO
type PutWeekRequest struct {
	Title string `json:"title" validate:"required,min=1,max=200"`
	Order *int   `json:"order" validate:"required,min=0"`
}
