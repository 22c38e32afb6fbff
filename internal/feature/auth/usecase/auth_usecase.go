// Package usecase はauthフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"fmt"

	"myflix_backend/internal/feature/users/domain/entity"
	"myflix_backend/internal/platform/password"
)

// UserFinder はユーザーの検索を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type UserFinder interface {
	// FindByUsername はユーザー名でユーザーを取得します。
	// ユーザーが存在しない場合、エラーを返します。
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
}

// PasswordChecker は平文パスワードとハッシュの照合を抽象化します。
type PasswordChecker interface {
	// Check は平文パスワードとハッシュが一致するかを返します。
	Check(plain, hash string) bool
}

// JWTGenerator はJWTトークン生成のインターフェースを定義します。
type JWTGenerator interface {
	// GenerateToken は指定されたユーザーの署名済みJWTトークンを生成します。
	GenerateToken(userID uint, username string) (string, error)
}

// authUsecase は認証ビジネスロジックを実装します。
type authUsecase struct {
	users        UserFinder
	passwords    PasswordChecker
	jwtGenerator JWTGenerator
}

// NewAuthUsecase はauthUsecaseの新しいインスタンスを生成します。
func NewAuthUsecase(users UserFinder, passwords PasswordChecker, jwtGenerator JWTGenerator) *authUsecase {
	return &authUsecase{
		users:        users,
		passwords:    passwords,
		jwtGenerator: jwtGenerator,
	}
}

// Login はユーザーを認証し、成功時にユーザーとJWTトークンを返します。
// タイミング攻撃を防止するため、ユーザーが存在しない場合でもbcrypt比較を実行します。
// ユーザー未検出とパスワード不一致は同一のErrInvalidCredentialsにまとめられ、
// エラー内容からも応答時間からも区別できません。
func (u *authUsecase) Login(ctx context.Context, username, plain string) (*entity.User, string, error) {
	user, err := u.users.FindByUsername(ctx, username)

	// ユーザーが存在しない場合のタイミング攻撃緩和用ダミーハッシュ
	// パスワード照合が常に実行されることを保証する
	passwordHash := password.DummyHash
	if err == nil {
		passwordHash = user.Password
	}

	ok := u.passwords.Check(plain, passwordHash)

	if err != nil || !ok {
		return nil, "", ErrInvalidCredentials
	}

	token, tokenErr := u.jwtGenerator.GenerateToken(user.ID, user.Username)
	if tokenErr != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", tokenErr)
	}

	return user, token, nil
}
