package main

import (
	"log"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"myflix_backend/config"
	"myflix_backend/internal/app/router"
	authhandler "myflix_backend/internal/feature/auth/transport/handler"
	authusecase "myflix_backend/internal/feature/auth/usecase"
	moviesadapters "myflix_backend/internal/feature/movies/adapters"
	movieshandler "myflix_backend/internal/feature/movies/transport/handler"
	moviesusecase "myflix_backend/internal/feature/movies/usecase"
	usersadapters "myflix_backend/internal/feature/users/adapters"
	usershandler "myflix_backend/internal/feature/users/transport/handler"
	usersusecase "myflix_backend/internal/feature/users/usecase"
	"myflix_backend/internal/platform/cache"
	infradb "myflix_backend/internal/platform/db"
	jwtmw "myflix_backend/internal/platform/jwt"
	"myflix_backend/internal/platform/password"
	infraredis "myflix_backend/internal/platform/redis"
)

func main() {
	// 設定（署名シークレットは必須。未設定なら起動しない）
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// db
	db := infradb.OpenDB(&cfg.DB)

	// Redis（任意。未設定・接続不可の場合はキャッシュなしで継続）
	var rdb *redisv9.Client
	if cfg.Redis.Host == "" {
		log.Println("[INFO] Redis not configured. Running without cache.")
	} else if tmp, err := infraredis.NewRedisClient(&cfg.Redis); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Repository
	userRepo := usersadapters.NewUserMySQL(db)
	movieRepo := moviesadapters.NewMovieRepository(db)

	// Redisキャッシュでラップ
	cachedMovieRepo := cache.NewCachingMovieRepository(rdb, 10*time.Minute, movieRepo, "movies")

	// トークンの発行・検証（シークレットは起動時に一度だけ読み込み）
	generator := jwtmw.NewGenerator(cfg.JWT.Secret, cfg.JWT.ExpiresIn)
	verifier := jwtmw.NewVerifier(cfg.JWT.Secret)
	hasher := password.NewHasher()

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, hasher, generator)
	userUC := usersusecase.NewUserUsecase(userRepo, cachedMovieRepo, hasher)
	movieUC := moviesusecase.NewMovieUsecase(cachedMovieRepo)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	userH := usershandler.NewUserHandler(userUC)
	movieH := movieshandler.NewMovieHandler(movieUC)

	// ルータ生成
	r := router.NewRouter(authH, userH, movieH, verifier, userRepo)

	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatal(err)
	}
}
