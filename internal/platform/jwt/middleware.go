package jwtmw

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// ginコンテキストに格納する認証済みアイデンティティのキーです。
const (
	ContextUserID   = "userID"
	ContextUsername = "username"
)

// UserResolver はトークンのsubjectが現在も有効なアカウントかを解決します。
// Goの慣例に従い、インターフェースはプロバイダーではなくコンシューマー（ミドルウェア）が定義します。
type UserResolver interface {
	// ExistsByID は指定されたIDのユーザーが存在するかを返します。
	ExistsByID(ctx context.Context, id uint) (bool, error)
}

// AuthRequired は保護ルート用のGinミドルウェアを返します。
// 処理順: (1) Bearerトークン抽出 → (2) 署名・有効期限の検証 →
// (3) subjectをユーザーストアで解決（発行後に退会したアカウントのトークンを拒否）。
// いずれかの失敗で401を返し、副作用なしで処理を打ち切ります。
func AuthRequired(verifier *Verifier, users UserResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		tokenStr := strings.TrimPrefix(auth, "Bearer ")

		claims, err := verifier.Verify(tokenStr)
		if err != nil {
			// 期限切れ・署名不正の区別は外部に漏らさない
			slog.Warn("token verification failed", "error", err, "remote_addr", c.ClientIP())
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		// 退会済みアカウントの古いトークンを拒否する
		exists, err := users.ExistsByID(c.Request.Context(), claims.UserID)
		if err != nil {
			slog.Error("failed to resolve token subject", "error", err, "user_id", claims.UserID)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		if !exists {
			slog.Warn("token subject no longer exists", "user_id", claims.UserID, "remote_addr", c.ClientIP())
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextUsername, claims.Username)
		c.Next()
	}
}
