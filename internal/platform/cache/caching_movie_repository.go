// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"myflix_backend/internal/feature/movies/domain/entity"
	"myflix_backend/internal/feature/movies/usecase"
)

// CachingMovieRepository decorates a MovieRepository with Redis caching.
// It implements the decorator pattern, transparently adding caching without
// modifying the underlying repository. The catalog is read-only at runtime,
// so entries expire by TTL instead of being invalidated.
type CachingMovieRepository struct {
	inner     usecase.MovieRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// NewCachingMovieRepository decorates a MovieRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "movies".
func NewCachingMovieRepository(rdb *redis.Client, ttl time.Duration, inner usecase.MovieRepository, namespace string) *CachingMovieRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "movies"
	}
	return &CachingMovieRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// List retrieves the whole catalog, checking cache first then falling back to the database.
func (c *CachingMovieRepository) List(ctx context.Context) ([]entity.Movie, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.List(ctx)
	}

	key := c.cacheKey("list", "")

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Movie
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to database
	out, err := c.inner.List(ctx)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// FindByTitle retrieves a movie by title through the cache.
func (c *CachingMovieRepository) FindByTitle(ctx context.Context, title string) (*entity.Movie, error) {
	return c.findOne(ctx, c.cacheKey("title", title), func() (*entity.Movie, error) {
		return c.inner.FindByTitle(ctx, title)
	})
}

// FindByGenreName retrieves the first movie of a genre through the cache.
func (c *CachingMovieRepository) FindByGenreName(ctx context.Context, name string) (*entity.Movie, error) {
	return c.findOne(ctx, c.cacheKey("genre", name), func() (*entity.Movie, error) {
		return c.inner.FindByGenreName(ctx, name)
	})
}

// FindByDirectorName retrieves the first movie of a director through the cache.
func (c *CachingMovieRepository) FindByDirectorName(ctx context.Context, name string) (*entity.Movie, error) {
	return c.findOne(ctx, c.cacheKey("director", name), func() (*entity.Movie, error) {
		return c.inner.FindByDirectorName(ctx, name)
	})
}

// ExistsByID reports whether a movie exists. Primary-key lookups are cheap
// and feed the favorites conflict checks, so they always hit the database.
func (c *CachingMovieRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	return c.inner.ExistsByID(ctx, id)
}

// findOne は単一映画の読み取りをキャッシュ経由で行う共通処理です。
// 未検出（ErrMovieNotFound）はキャッシュしません。
func (c *CachingMovieRepository) findOne(ctx context.Context, key string, load func() (*entity.Movie, error)) (*entity.Movie, error) {
	if c.rdb == nil {
		return load()
	}

	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out entity.Movie
		if err := json.Unmarshal(b, &out); err == nil {
			return &out, nil
		}
		_ = c.rdb.Del(ctx, key).Err()
	}

	out, err := load()
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// cacheKey generates a cache key for a specific query.
func (c *CachingMovieRepository) cacheKey(kind, arg string) string {
	if arg == "" {
		return fmt.Sprintf("%s:%s", c.namespace, kind)
	}
	return fmt.Sprintf("%s:%s:%s", c.namespace, kind, safe(arg))
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
