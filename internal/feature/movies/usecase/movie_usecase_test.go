package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"myflix_backend/internal/feature/movies/domain/entity"
)

// mockMovieRepository is a mock implementation of the MovieRepository interface.
type mockMovieRepository struct {
	ListFunc               func(ctx context.Context) ([]entity.Movie, error)
	FindByTitleFunc        func(ctx context.Context, title string) (*entity.Movie, error)
	FindByGenreNameFunc    func(ctx context.Context, name string) (*entity.Movie, error)
	FindByDirectorNameFunc func(ctx context.Context, name string) (*entity.Movie, error)
	ExistsByIDFunc         func(ctx context.Context, id uint) (bool, error)
}

func (m *mockMovieRepository) List(ctx context.Context) ([]entity.Movie, error) {
	return m.ListFunc(ctx)
}

func (m *mockMovieRepository) FindByTitle(ctx context.Context, title string) (*entity.Movie, error) {
	return m.FindByTitleFunc(ctx, title)
}

func (m *mockMovieRepository) FindByGenreName(ctx context.Context, name string) (*entity.Movie, error) {
	return m.FindByGenreNameFunc(ctx, name)
}

func (m *mockMovieRepository) FindByDirectorName(ctx context.Context, name string) (*entity.Movie, error) {
	return m.FindByDirectorNameFunc(ctx, name)
}

func (m *mockMovieRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	return m.ExistsByIDFunc(ctx, id)
}

func TestMovieUsecase_ListMovies(t *testing.T) {
	t.Run("returns the catalog from the repository", func(t *testing.T) {
		repo := &mockMovieRepository{
			ListFunc: func(ctx context.Context) ([]entity.Movie, error) {
				return []entity.Movie{{ID: 1, Title: "The Fountain"}}, nil
			},
		}

		uc := NewMovieUsecase(repo)
		movies, err := uc.ListMovies(context.Background())

		require.NoError(t, err)
		require.Len(t, movies, 1)
		assert.Equal(t, "The Fountain", movies[0].Title)
	})
}

func TestMovieUsecase_FindMovie(t *testing.T) {
	t.Run("unknown title propagates ErrMovieNotFound", func(t *testing.T) {
		repo := &mockMovieRepository{
			FindByTitleFunc: func(ctx context.Context, title string) (*entity.Movie, error) {
				return nil, ErrMovieNotFound
			},
		}

		uc := NewMovieUsecase(repo)
		movie, err := uc.FindMovie(context.Background(), "Nope")

		assert.Nil(t, movie)
		assert.ErrorIs(t, err, ErrMovieNotFound)
	})
}

func TestMovieUsecase_FindGenre(t *testing.T) {
	t.Run("passes the genre name through", func(t *testing.T) {
		repo := &mockMovieRepository{
			FindByGenreNameFunc: func(ctx context.Context, name string) (*entity.Movie, error) {
				assert.Equal(t, "Drama", name)
				return &entity.Movie{ID: 1, GenreName: "Drama"}, nil
			},
		}

		uc := NewMovieUsecase(repo)
		movie, err := uc.FindGenre(context.Background(), "Drama")

		require.NoError(t, err)
		assert.Equal(t, "Drama", movie.GenreName)
	})
}

func TestMovieUsecase_FindDirector(t *testing.T) {
	t.Run("passes the director name through", func(t *testing.T) {
		repo := &mockMovieRepository{
			FindByDirectorNameFunc: func(ctx context.Context, name string) (*entity.Movie, error) {
				assert.Equal(t, "Brady Corbet", name)
				return &entity.Movie{ID: 1, DirectorName: "Brady Corbet"}, nil
			},
		}

		uc := NewMovieUsecase(repo)
		movie, err := uc.FindDirector(context.Background(), "Brady Corbet")

		require.NoError(t, err)
		assert.Equal(t, "Brady Corbet", movie.DirectorName)
	})
}
