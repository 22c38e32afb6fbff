// Package adapters はmoviesフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"myflix_backend/internal/feature/movies/domain/entity"
	"myflix_backend/internal/feature/movies/usecase"
)

// movieMySQL はMovieRepositoryインターフェースのMySQL実装です。
// GORMを使用してデータベース操作を行います。
type movieMySQL struct {
	db *gorm.DB
}

// movieMySQLがMovieRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.MovieRepository = (*movieMySQL)(nil)

// NewMovieRepository は指定されたgorm.DB接続でmovieMySQLの新しいインスタンスを生成します。
func NewMovieRepository(db *gorm.DB) *movieMySQL {
	return &movieMySQL{db: db}
}

// List は全映画をタイトル順に返します。
func (r *movieMySQL) List(ctx context.Context) ([]entity.Movie, error) {
	var movies []entity.Movie
	if err := r.db.WithContext(ctx).Order("title ASC").Find(&movies).Error; err != nil {
		return nil, err
	}
	return movies, nil
}

// FindByTitle はタイトル完全一致で映画を取得します。
// 映画が存在しない場合、usecase.ErrMovieNotFoundを返します。
func (r *movieMySQL) FindByTitle(ctx context.Context, title string) (*entity.Movie, error) {
	var m entity.Movie
	if err := r.db.WithContext(ctx).Where("title = ?", title).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrMovieNotFound
		}
		return nil, err
	}
	return &m, nil
}

// FindByGenreName はジャンル名に一致する最初の映画を取得します。
func (r *movieMySQL) FindByGenreName(ctx context.Context, name string) (*entity.Movie, error) {
	var m entity.Movie
	if err := r.db.WithContext(ctx).Where("genre_name = ?", name).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrMovieNotFound
		}
		return nil, err
	}
	return &m, nil
}

// FindByDirectorName は監督名に一致する最初の映画を取得します。
func (r *movieMySQL) FindByDirectorName(ctx context.Context, name string) (*entity.Movie, error) {
	var m entity.Movie
	if err := r.db.WithContext(ctx).Where("director_name = ?", name).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrMovieNotFound
		}
		return nil, err
	}
	return &m, nil
}

// ExistsByID は指定されたIDの映画が存在するかを返します。
// お気に入り追加時の存在チェック（Movie Lookup）に使われます。
func (r *movieMySQL) ExistsByID(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entity.Movie{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
