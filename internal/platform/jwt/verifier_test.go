package jwtmw

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

// signToken はテスト用にクレームを指定してトークンを生成します。
func signToken(t *testing.T, secret string, method jwt.SigningMethod, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(method, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestVerifier_Verify_ValidToken(t *testing.T) {
	v := NewVerifier(testSecret)

	// 発行直後のトークンは検証を通過し、元のアイデンティティに解決される
	g := NewGenerator(testSecret, time.Hour)
	tokenStr, err := g.GenerateToken(42, "alice1")
	require.NoError(t, err)

	claims, err := v.Verify(tokenStr)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "alice1", claims.Username)
}

func TestVerifier_Verify_ExpiredToken(t *testing.T) {
	v := NewVerifier(testSecret)

	tokenStr := signToken(t, testSecret, jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":      float64(42),
		"username": "alice1",
		"iat":      time.Now().Add(-2 * time.Hour).Unix(),
		"exp":      time.Now().Add(-time.Hour).Unix(),
	})

	claims, err := v.Verify(tokenStr)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerifier_Verify_WrongSecret(t *testing.T) {
	v := NewVerifier(testSecret)

	tokenStr := signToken(t, "another-secret", jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": float64(1),
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	claims, err := v.Verify(tokenStr)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, ErrInvalidToken)
	// 署名不正は期限切れとして報告されないこと
	assert.NotErrorIs(t, err, ErrTokenExpired)
}

func TestVerifier_Verify_TamperedToken(t *testing.T) {
	v := NewVerifier(testSecret)

	tokenStr := signToken(t, testSecret, jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":      float64(1),
		"username": "alice1",
		"exp":      time.Now().Add(time.Hour).Unix(),
	})

	// ペイロード部分を改ざんする
	tampered := tokenStr[:len(tokenStr)-4] + "xxxx"

	claims, err := v.Verify(tampered)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifier_Verify_RejectsNonHMAC(t *testing.T) {
	v := NewVerifier(testSecret)

	// alg=noneのトークンは拒否される
	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub": float64(1),
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	tokenStr, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	claims, err := v.Verify(tokenStr)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifier_Verify_MissingSubject(t *testing.T) {
	v := NewVerifier(testSecret)

	tokenStr := signToken(t, testSecret, jwt.SigningMethodHS256, jwt.MapClaims{
		"username": "alice1",
		"exp":      time.Now().Add(time.Hour).Unix(),
	})

	claims, err := v.Verify(tokenStr)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifier_Verify_Malformed(t *testing.T) {
	v := NewVerifier(testSecret)

	for _, tokenStr := range []string{"", "not-a-jwt", "a.b.c"} {
		claims, err := v.Verify(tokenStr)
		assert.Nil(t, claims)
		assert.ErrorIs(t, err, ErrInvalidToken)
	}
}
