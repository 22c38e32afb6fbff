package jwtmw

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// トークン検証の失敗種別です。上位層はこれらで分岐します。
var (
	// ErrTokenExpired はexpが現在時刻を過ぎているトークンに返されます。
	ErrTokenExpired = errors.New("token has expired")

	// ErrInvalidToken は署名不一致・形式不正・アルゴリズム不正のトークンに返されます。
	ErrInvalidToken = errors.New("invalid token")
)

// Claims はトークンから復元された最小限のアイデンティティ投影です。
type Claims struct {
	UserID   uint
	Username string
}

// Verifier はBearerトークンの署名と有効期限を検証します。
// 鍵はプロセス全体で単一・固定です（起動時に注入、ローテーションなし）。
type Verifier struct {
	secret []byte
}

// NewVerifier は指定されたシークレットで検証器を生成します。
func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret)}
}

// Verify はトークン文字列を検証し、ペイロードのクレームを返します。
// 検証順序: (1) 署名 → (2) 有効期限。ペイロードの内容は署名検証が
// 通るまで一切信頼しません（jwt/v5は署名検証後にクレーム検証を行います）。
func (v *Verifier) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		// HMAC以外の署名アルゴリズムは拒否（alg none / RS256混入対策）
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return v.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	claims := &Claims{}
	// JWTの数値はfloat64としてデコードされる
	if sub, ok := mapClaims["sub"].(float64); ok {
		claims.UserID = uint(sub)
	} else {
		return nil, fmt.Errorf("%w: missing subject claim", ErrInvalidToken)
	}
	if username, ok := mapClaims["username"].(string); ok {
		claims.Username = username
	}

	return claims, nil
}
