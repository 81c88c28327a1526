package model

import (
	"time"

	"github.com/google/uuid"
)

// ユーザーのロール
const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// User はアプリケーションの利用者を表します。
// パスワードは持たず、ユーザー名の存在確認のみで認証します（ロールはタグ付けのみで強制はしない）。
type User struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	Username  string    `gorm:"unique;not null" json:"username"`
	Role      string    `gorm:"type:varchar(20);not null;default:'USER'" json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func (User) TableName() string {
	return "users"
}

type ContextKey string

const (
	UserIDKey ContextKey = "userID"
)

// サインアップリクエストDTO
// パスワードは扱わない。末尾が ".ad" のユーザー名は管理者として登録される。
type SignUpRequest struct {
	Username string `json:"username" validate:"required,min=1,max=50"`
}

// ログインリクエストDTO
type LoginRequest struct {
	Username string `json:"username" validate:"required,min=1,max=50"`
}

// ログインレスポンスDTO
type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`
}

// UserResponse はクライアントに返すユーザー情報の構造体
type UserResponse struct {
	UserID    uuid.UUID `json:"user_id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}
