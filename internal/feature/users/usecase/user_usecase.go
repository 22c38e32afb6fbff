package usecase

import (
	"context"
	"fmt"
	"time"

	"myflix_backend/internal/feature/users/domain/entity"
)

const (
	// minPasswordLength はパスワードの最低文字数を定義します。
	minPasswordLength = 8
)

// UserRepository はユーザーエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type UserRepository interface {
	// Create は新しいユーザーをストレージに永続化します。
	// 同じユーザー名が既に存在する場合、ErrUsernameTakenを返します。
	Create(ctx context.Context, user *entity.User) error

	// FindByUsername はユーザー名でユーザーを取得します（お気に入り込み）。
	// ユーザーが存在しない場合、ErrUserNotFoundを返します。
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// Update はユーザーのプロフィール行を保存します。
	// ユーザー名変更が重複する場合、ErrUsernameTakenを返します。
	Update(ctx context.Context, user *entity.User) error

	// DeleteByUsername はユーザーとそのお気に入り行を削除します。
	// ユーザーが存在しない場合、ErrUserNotFoundを返します。
	DeleteByUsername(ctx context.Context, username string) error

	// AddFavorite はお気に入り集合に1件追加します。
	// 既に存在する場合、ErrAlreadyFavoriteを返します（単一行の挿入で判定）。
	AddFavorite(ctx context.Context, userID, movieID uint) error

	// RemoveFavorite はお気に入り集合から1件削除します。
	// 存在しない場合もエラーにはなりません（冪等な削除）。
	RemoveFavorite(ctx context.Context, userID, movieID uint) error
}

// MovieLookup は映画カタログの存在チェックを抽象化します。
// お気に入り追加時のコラボレーターで、カタログ自体の変更は行いません。
type MovieLookup interface {
	// ExistsByID は指定されたIDの映画が存在するかを返します。
	ExistsByID(ctx context.Context, id uint) (bool, error)
}

// PasswordHasher はパスワードのハッシュ化を抽象化します。
type PasswordHasher interface {
	// Hash は平文パスワードからソルト付きハッシュを生成します。
	Hash(plain string) (string, error)
}

// RegisterInput は新規登録の入力です。
// ユーザー名の形式検証（5文字以上の英数字）はトランスポート層で行われます。
type RegisterInput struct {
	Username string
	Password string
	Email    string
	Birthday *time.Time
}

// UpdateInput は部分更新の入力です。nilのフィールドは変更されません。
// Passwordが指定された場合は必ず再ハッシュされ、既存ハッシュのコピーは行いません。
type UpdateInput struct {
	Username *string
	Password *string
	Email    *string
	Birthday *time.Time
}

// UserUsecase はユーザーのライフサイクルとお気に入り集合の変更を実装します。
type UserUsecase struct {
	users  UserRepository
	movies MovieLookup
	hasher PasswordHasher
}

// NewUserUsecase はUserUsecaseの新しいインスタンスを生成します。
func NewUserUsecase(users UserRepository, movies MovieLookup, hasher PasswordHasher) *UserUsecase {
	return &UserUsecase{
		users:  users,
		movies: movies,
		hasher: hasher,
	}
}

// validatePassword はパスワードがセキュリティ要件を満たしているかチェックします。
func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("password must be at least %d characters long", minPasswordLength)
	}
	return nil
}

// Register はハッシュ化されたパスワードで新規ユーザーを登録します。
func (u *UserUsecase) Register(ctx context.Context, in RegisterInput) (*entity.User, error) {
	if err := validatePassword(in.Password); err != nil {
		return nil, err
	}

	hashed, err := u.hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{
		Username: in.Username,
		Password: hashed,
		Email:    in.Email,
		Birthday: in.Birthday,
	}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Update はユーザーのプロフィールを部分更新します。
// 指定されたフィールドのみを上書きし、Passwordは再ハッシュしてから保存します。
func (u *UserUsecase) Update(ctx context.Context, username string, in UpdateInput) (*entity.User, error) {
	user, err := u.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	if in.Username != nil {
		user.Username = *in.Username
	}
	if in.Password != nil {
		if err := validatePassword(*in.Password); err != nil {
			return nil, err
		}
		hashed, err := u.hasher.Hash(*in.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.Password = hashed
	}
	if in.Email != nil {
		user.Email = *in.Email
	}
	if in.Birthday != nil {
		user.Birthday = in.Birthday
	}

	if err := u.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Deregister はユーザーを削除します。お気に入りは参照の集合であり、
// 映画カタログ側への連鎖削除はありません。
func (u *UserUsecase) Deregister(ctx context.Context, username string) error {
	return u.users.DeleteByUsername(ctx, username)
}

// AddFavorite はユーザーのお気に入り集合に映画を追加します。
// - 映画がカタログに存在しない場合はErrMovieNotFound
// - 既にお気に入りの場合はErrAlreadyFavorite（呼び出し側に明示的に通知）
// 変更の直前に永続化済みの最新状態を再取得し、追加は単一行の挿入として実行されます。
func (u *UserUsecase) AddFavorite(ctx context.Context, username string, movieID uint) (*entity.User, error) {
	user, err := u.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	exists, err := u.movies.ExistsByID(ctx, movieID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up movie: %w", err)
	}
	if !exists {
		return nil, ErrMovieNotFound
	}

	if err := u.users.AddFavorite(ctx, user.ID, movieID); err != nil {
		return nil, err
	}

	// 更新後の状態を返す
	return u.users.FindByUsername(ctx, username)
}

// RemoveFavorite はユーザーのお気に入り集合から映画を削除します。
// 存在しない参照の削除は成功として扱われ、集合は変化しません（冪等な削除）。
func (u *UserUsecase) RemoveFavorite(ctx context.Context, username string, movieID uint) (*entity.User, error) {
	user, err := u.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	if err := u.users.RemoveFavorite(ctx, user.ID, movieID); err != nil {
		return nil, err
	}

	return u.users.FindByUsername(ctx, username)
}
