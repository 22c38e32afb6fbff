package jwtmw

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMain はテスト実行前にGinをテストモードに設定します。
func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// mockUserResolver is a mock implementation of the UserResolver interface.
type mockUserResolver struct {
	ExistsByIDFunc func(ctx context.Context, id uint) (bool, error)
}

// ExistsByID is the mock implementation of the ExistsByID method.
func (m *mockUserResolver) ExistsByID(ctx context.Context, id uint) (bool, error) {
	if m.ExistsByIDFunc != nil {
		return m.ExistsByIDFunc(ctx, id)
	}
	return true, nil // Default: user exists
}

// newProtectedRouter は認証ミドルウェア付きのテスト用ルータを生成します。
func newProtectedRouter(verifier *Verifier, users UserResolver) *gin.Engine {
	r := gin.New()
	r.GET("/protected", AuthRequired(verifier, users), func(c *gin.Context) {
		userID := c.GetUint(ContextUserID)
		username := c.GetString(ContextUsername)
		c.JSON(http.StatusOK, gin.H{"user_id": userID, "username": username})
	})
	return r
}

func doRequest(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// TestAuthRequired_MissingBearerToken はBearerトークンがない場合やプレフィックスが不正な場合に401が返されることを検証します。
func TestAuthRequired_MissingBearerToken(t *testing.T) {
	r := newProtectedRouter(NewVerifier(testSecret), &mockUserResolver{})

	tests := []struct {
		name       string
		authHeader string
	}{
		{"no header", ""},
		{"basic auth", "Basic dXNlcjpwYXNz"},
		{"bearer lowercase", "bearer token123"},
		{"no space after Bearer", "Bearertoken123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(r, tt.authHeader)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

// TestAuthRequired_ValidToken は有効なトークンでハンドラーに到達し、
// コンテキストにアイデンティティが格納されることを検証します。
func TestAuthRequired_ValidToken(t *testing.T) {
	resolver := &mockUserResolver{
		ExistsByIDFunc: func(ctx context.Context, id uint) (bool, error) {
			assert.Equal(t, uint(42), id)
			return true, nil
		},
	}
	r := newProtectedRouter(NewVerifier(testSecret), resolver)

	g := NewGenerator(testSecret, time.Hour)
	token, err := g.GenerateToken(42, "alice1")
	require.NoError(t, err)

	w := doRequest(r, "Bearer "+token)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user_id":42,"username":"alice1"}`, w.Body.String())
}

// TestAuthRequired_ExpiredToken は期限切れトークンで401が返されることを検証します。
func TestAuthRequired_ExpiredToken(t *testing.T) {
	resolverCalled := false
	resolver := &mockUserResolver{
		ExistsByIDFunc: func(ctx context.Context, id uint) (bool, error) {
			resolverCalled = true
			return true, nil
		},
	}
	r := newProtectedRouter(NewVerifier(testSecret), resolver)

	g := NewGenerator(testSecret, -time.Hour)
	token, err := g.GenerateToken(42, "alice1")
	require.NoError(t, err)

	w := doRequest(r, "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	// 署名・期限の検証前にペイロードを信頼しないこと
	assert.False(t, resolverCalled, "resolver must not be consulted for an invalid token")
}

// TestAuthRequired_WrongSecret は別のシークレットで署名されたトークンで401が返されることを検証します。
func TestAuthRequired_WrongSecret(t *testing.T) {
	r := newProtectedRouter(NewVerifier(testSecret), &mockUserResolver{})

	g := NewGenerator("another-secret", time.Hour)
	token, err := g.GenerateToken(42, "alice1")
	require.NoError(t, err)

	w := doRequest(r, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// TestAuthRequired_DeletedUser は退会済みユーザーの発行済みトークンで401が返されることを検証します。
func TestAuthRequired_DeletedUser(t *testing.T) {
	resolver := &mockUserResolver{
		ExistsByIDFunc: func(ctx context.Context, id uint) (bool, error) {
			return false, nil
		},
	}
	r := newProtectedRouter(NewVerifier(testSecret), resolver)

	g := NewGenerator(testSecret, time.Hour)
	token, err := g.GenerateToken(42, "alice1")
	require.NoError(t, err)

	w := doRequest(r, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// TestAuthRequired_ResolverFailure はユーザーストア障害時に500が返されることを検証します。
func TestAuthRequired_ResolverFailure(t *testing.T) {
	resolver := &mockUserResolver{
		ExistsByIDFunc: func(ctx context.Context, id uint) (bool, error) {
			return false, errors.New("connection refused")
		},
	}
	r := newProtectedRouter(NewVerifier(testSecret), resolver)

	g := NewGenerator(testSecret, time.Hour)
	token, err := g.GenerateToken(42, "alice1")
	require.NoError(t, err)

	w := doRequest(r, "Bearer "+token)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	// 内部エラーの詳細が応答に漏れないこと
	assert.NotContains(t, w.Body.String(), "connection refused")
}
