// Package handler はusersフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"myflix_backend/internal/feature/users/domain/entity"
	"myflix_backend/internal/feature/users/transport/http/dto"
	"myflix_backend/internal/feature/users/usecase"
)

// UserUsecase はユーザー操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type UserUsecase interface {
	// Register は新規ユーザーを登録します。
	Register(ctx context.Context, in usecase.RegisterInput) (*entity.User, error)
	// Update はユーザーのプロフィールを部分更新します。
	Update(ctx context.Context, username string, in usecase.UpdateInput) (*entity.User, error)
	// Deregister はユーザーを削除します。
	Deregister(ctx context.Context, username string) error
	// AddFavorite はお気に入り集合に映画を追加します。
	AddFavorite(ctx context.Context, username string, movieID uint) (*entity.User, error)
	// RemoveFavorite はお気に入り集合から映画を削除します。
	RemoveFavorite(ctx context.Context, username string, movieID uint) (*entity.User, error)
}

// UserHandler はユーザー操作のHTTPリクエストを処理します。
type UserHandler struct {
	users UserUsecase
}

// NewUserHandler はUserHandlerの新しいインスタンスを生成します。
func NewUserHandler(users UserUsecase) *UserHandler {
	return &UserHandler{users: users}
}

// Register はユーザー登録APIエンドポイントを処理します。
// - バリデーションエラー時は400を返却
// - ユーザー名重複時は409を返却
// - 成功時は201と安全な投影（ハッシュなし）を返却
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("register validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	user, err := h.users.Register(c.Request.Context(), usecase.RegisterInput{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
		Birthday: req.Birthday,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrUsernameTaken) {
			slog.Warn("register conflict", "username", req.Username, "remote_addr", c.ClientIP())
			c.JSON(http.StatusConflict, gin.H{"error": "username already exists"})
			return
		}
		slog.Error("register failed", "error", err, "username", req.Username)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	slog.Info("user registered", "username", user.Username, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, dto.NewUserResponse(user))
}

// Update はユーザー情報の部分更新APIエンドポイントを処理します。
// 指定されたフィールドのみ更新し、パスワードは再ハッシュされます。
func (h *UserHandler) Update(c *gin.Context) {
	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("update validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	user, err := h.users.Update(c.Request.Context(), c.Param("username"), usecase.UpdateInput{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
		Birthday: req.Birthday,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		case errors.Is(err, usecase.ErrUsernameTaken):
			c.JSON(http.StatusConflict, gin.H{"error": "username already exists"})
		default:
			slog.Error("update failed", "error", err, "username", c.Param("username"))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// Deregister はユーザー削除APIエンドポイントを処理します。
func (h *UserHandler) Deregister(c *gin.Context) {
	username := c.Param("username")
	if err := h.users.Deregister(c.Request.Context(), username); err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		slog.Error("deregister failed", "error", err, "username", username)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	slog.Info("user deregistered", "username", username)
	c.JSON(http.StatusOK, gin.H{"message": "user deregistered"})
}

// AddFavorite はお気に入り追加APIエンドポイントを処理します。
// - ユーザーまたは映画が存在しない場合は404を返却
// - 既にお気に入りの場合は400を返却（暗黙の成功にはしない）
// - 成功時は200と更新後のユーザーを返却
func (h *UserHandler) AddFavorite(c *gin.Context) {
	movieID, ok := parseMovieID(c)
	if !ok {
		return
	}

	user, err := h.users.AddFavorite(c.Request.Context(), c.Param("username"), movieID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		case errors.Is(err, usecase.ErrMovieNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "movie not found"})
		case errors.Is(err, usecase.ErrAlreadyFavorite):
			c.JSON(http.StatusBadRequest, gin.H{"error": "movie already in favorites"})
		default:
			slog.Error("add favorite failed", "error", err,
				"username", c.Param("username"), "movie_id", movieID)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// RemoveFavorite はお気に入り削除APIエンドポイントを処理します。
// 存在しない参照の削除も200を返します（冪等な削除）。
func (h *UserHandler) RemoveFavorite(c *gin.Context) {
	movieID, ok := parseMovieID(c)
	if !ok {
		return
	}

	user, err := h.users.RemoveFavorite(c.Request.Context(), c.Param("username"), movieID)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		slog.Error("remove favorite failed", "error", err,
			"username", c.Param("username"), "movie_id", movieID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// parseMovieID はパスパラメータの映画IDを解析します。不正な場合は400を返します。
func parseMovieID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("movieID"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid movie id"})
		return 0, false
	}
	return uint(id), true
}
