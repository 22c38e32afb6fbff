package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authhandler "myflix_backend/internal/feature/auth/transport/handler"
	movieshandler "myflix_backend/internal/feature/movies/transport/handler"
	usershandler "myflix_backend/internal/feature/users/transport/handler"
	"myflix_backend/internal/platform/http/handler"
	jwtmw "myflix_backend/internal/platform/jwt"
)

// NewRouter は全ルートを登録したGinエンジンを生成します。
// 登録とログイン以外のルートはすべてトークン検証ミドルウェアを通過します。
func NewRouter(
	authHandler *authhandler.AuthHandler,
	userHandler *usershandler.UserHandler,
	movieHandler *movieshandler.MovieHandler,
	verifier *jwtmw.Verifier,
	users jwtmw.UserResolver,
) *gin.Engine {
	r := gin.Default()
	// CORS のデフォルト設定を有効
	r.Use(cors.Default())

	// 認証不要
	// 導通確認用
	r.GET("/healthz", handler.Health)
	// 新規ユーザー登録
	r.POST("/users", userHandler.Register)
	// ログイン（JWT 発行）
	r.POST("/login", authHandler.Login)

	// 認証必須のルート
	auth := r.Group("/")
	// jwtmw.AuthRequired() ミドルウェアを適用
	// → リクエストヘッダーに Bearer トークンが必要になる
	auth.Use(jwtmw.AuthRequired(verifier, users))
	{
		// 映画カタログ（読み取りのみ）
		auth.GET("/movies", movieHandler.List)
		auth.GET("/movies/:title", movieHandler.GetByTitle)
		auth.GET("/genres/:name", movieHandler.GetGenre)
		auth.GET("/directors/:name", movieHandler.GetDirector)

		// ユーザー情報
		auth.PUT("/users/:username", userHandler.Update)
		auth.DELETE("/users/:username", userHandler.Deregister)

		// お気に入り
		auth.POST("/users/:username/movies/:movieID", userHandler.AddFavorite)
		auth.DELETE("/users/:username/movies/:movieID", userHandler.RemoveFavorite)
	}

	return r
}
