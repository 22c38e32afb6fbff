package usecase

import (
	"context"

	"myflix_backend/internal/feature/movies/domain/entity"
)

// MovieRepository abstracts the persistence layer for the movie catalog.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type MovieRepository interface {
	// List returns the whole catalog.
	List(ctx context.Context) ([]entity.Movie, error)

	// FindByTitle retrieves a movie matching the exact title.
	// It returns ErrMovieNotFound if no such movie exists.
	FindByTitle(ctx context.Context, title string) (*entity.Movie, error)

	// FindByGenreName retrieves the first movie whose genre matches the given name.
	// It returns ErrMovieNotFound if no such movie exists.
	FindByGenreName(ctx context.Context, name string) (*entity.Movie, error)

	// FindByDirectorName retrieves the first movie whose director matches the given name.
	// It returns ErrMovieNotFound if no such movie exists.
	FindByDirectorName(ctx context.Context, name string) (*entity.Movie, error)

	// ExistsByID reports whether a movie with the given ID exists.
	ExistsByID(ctx context.Context, id uint) (bool, error)
}

// MovieUsecase はカタログ読み取り系のビジネスロジックを提供します。
type MovieUsecase struct {
	repo MovieRepository
}

// NewMovieUsecase は指定されたリポジトリでMovieUsecaseを生成します。
func NewMovieUsecase(r MovieRepository) *MovieUsecase {
	return &MovieUsecase{repo: r}
}

// ListMovies は全映画を返します。
func (u *MovieUsecase) ListMovies(ctx context.Context) ([]entity.Movie, error) {
	return u.repo.List(ctx)
}

// FindMovie はタイトル完全一致で1件を返します。
func (u *MovieUsecase) FindMovie(ctx context.Context, title string) (*entity.Movie, error) {
	return u.repo.FindByTitle(ctx, title)
}

// FindGenre はジャンル名に一致する映画のジャンル情報を返します。
func (u *MovieUsecase) FindGenre(ctx context.Context, name string) (*entity.Movie, error) {
	return u.repo.FindByGenreName(ctx, name)
}

// FindDirector は監督名に一致する映画の監督情報を返します。
func (u *MovieUsecase) FindDirector(ctx context.Context, name string) (*entity.Movie, error) {
	return u.repo.FindByDirectorName(ctx, name)
}
