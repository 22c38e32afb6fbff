// Package dto defines data transfer objects for the users HTTP API.
package dto

import (
	"time"

	"myflix_backend/internal/feature/users/domain/entity"
)

// RegisterRequest は新規登録のリクエストボディです。
// ユーザー名は5文字以上の英数字、メールアドレスは形式チェックを行います。
type RegisterRequest struct {
	Username string     `json:"username" binding:"required,min=5,alphanum"`
	Password string     `json:"password" binding:"required,min=8"`
	Email    string     `json:"email" binding:"required,email"`
	Birthday *time.Time `json:"birthday"`
}

// UpdateUserRequest は部分更新のリクエストボディです。
// ポインタのnilで「未指定」を表し、指定されたフィールドのみ更新されます。
type UpdateUserRequest struct {
	Username *string    `json:"username" binding:"omitempty,min=5,alphanum"`
	Password *string    `json:"password" binding:"omitempty,min=8"`
	Email    *string    `json:"email" binding:"omitempty,email"`
	Birthday *time.Time `json:"birthday"`
}

// UserResponse はユーザーの安全な投影です。パスワードハッシュは含まれません。
type UserResponse struct {
	ID             uint       `json:"id"`
	Username       string     `json:"username"`
	Email          string     `json:"email"`
	Birthday       *time.Time `json:"birthday,omitempty"`
	FavoriteMovies []uint     `json:"favorite_movies"`
}

// NewUserResponse はエンティティから安全な投影を生成します。
func NewUserResponse(u *entity.User) UserResponse {
	favorites := u.FavoriteMovieIDs
	if favorites == nil {
		favorites = []uint{}
	}
	return UserResponse{
		ID:             u.ID,
		Username:       u.Username,
		Email:          u.Email,
		Birthday:       u.Birthday,
		FavoriteMovies: favorites,
	}
}
