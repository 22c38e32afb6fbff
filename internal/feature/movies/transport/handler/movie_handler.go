// Package handler はmoviesフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"myflix_backend/internal/feature/movies/domain/entity"
	"myflix_backend/internal/feature/movies/transport/http/dto"
	"myflix_backend/internal/feature/movies/usecase"
)

// MovieUsecase は映画カタログに関するユースケースのインターフェースです。
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type MovieUsecase interface {
	ListMovies(ctx context.Context) ([]entity.Movie, error)
	FindMovie(ctx context.Context, title string) (*entity.Movie, error)
	FindGenre(ctx context.Context, name string) (*entity.Movie, error)
	FindDirector(ctx context.Context, name string) (*entity.Movie, error)
}

// MovieHandler は映画カタログのHTTPリクエストを処理します。
type MovieHandler struct {
	uc MovieUsecase
}

// NewMovieHandler は新しい MovieHandler を作成します。
func NewMovieHandler(uc MovieUsecase) *MovieHandler {
	return &MovieHandler{uc: uc}
}

// List は全映画の一覧を取得するAPIです。
func (h *MovieHandler) List(c *gin.Context) {
	movies, err := h.uc.ListMovies(c.Request.Context())
	if err != nil {
		slog.Error("failed to list movies", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, movies)
}

// GetByTitle はタイトル指定で映画を1件取得するAPIです。
// - 見つからない場合は404を返却
// - 永続化層の障害時は500を返却（詳細はログのみ）
func (h *MovieHandler) GetByTitle(c *gin.Context) {
	movie, err := h.uc.FindMovie(c.Request.Context(), c.Param("title"))
	if err != nil {
		if errors.Is(err, usecase.ErrMovieNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "movie not found"})
			return
		}
		slog.Error("failed to find movie", "error", err, "title", c.Param("title"))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, movie)
}

// GetGenre はジャンル名でジャンル情報を取得するAPIです。
func (h *MovieHandler) GetGenre(c *gin.Context) {
	movie, err := h.uc.FindGenre(c.Request.Context(), c.Param("name"))
	if err != nil {
		if errors.Is(err, usecase.ErrMovieNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "genre not found"})
			return
		}
		slog.Error("failed to find genre", "error", err, "name", c.Param("name"))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, dto.GenreResponse{
		Name:        movie.GenreName,
		Description: movie.GenreDescription,
	})
}

// GetDirector は監督名で監督情報を取得するAPIです。
func (h *MovieHandler) GetDirector(c *gin.Context) {
	movie, err := h.uc.FindDirector(c.Request.Context(), c.Param("name"))
	if err != nil {
		if errors.Is(err, usecase.ErrMovieNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "director not found"})
			return
		}
		slog.Error("failed to find director", "error", err, "name", c.Param("name"))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, dto.DirectorResponse{
		Name: movie.DirectorName,
		Bio:  movie.DirectorBio,
	})
}
