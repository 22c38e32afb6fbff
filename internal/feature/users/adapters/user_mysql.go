// Package adapters はusersフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"myflix_backend/internal/feature/users/domain/entity"
	"myflix_backend/internal/feature/users/usecase"
)

// userMySQL はUserRepositoryインターフェースのMySQL実装です。
// GORMを使用してデータベース操作を行います。
type userMySQL struct {
	db *gorm.DB
}

// userMySQLがUserRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.UserRepository = (*userMySQL)(nil)

// NewUserMySQL は指定されたgorm.DB接続でuserMySQLの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタです。
func NewUserMySQL(db *gorm.DB) *userMySQL {
	return &userMySQL{db: db}
}

// isDuplicateKey はユニークキー重複エラーかを判定します。
// MySQLエラー1062に加え、GORMのTranslateErrorによる変換もカバーします。
func isDuplicateKey(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return true
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// Create はユーザーをデータベースに追加します。
// 同じユーザー名が既に存在する場合、usecase.ErrUsernameTakenを返します。
func (r *userMySQL) Create(ctx context.Context, u *entity.User) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		if isDuplicateKey(err) {
			return usecase.ErrUsernameTaken
		}
		return err
	}
	return nil
}

// FindByUsername はユーザー名でユーザーを取得し、お気に入りの映画ID集合を読み込みます。
// ユーザーが存在しない場合、usecase.ErrUserNotFoundを返します。
func (r *userMySQL) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	if err := r.loadFavorites(ctx, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// ExistsByID は指定されたIDのユーザーが存在するかを返します。
// トークンのsubject解決（退会済みアカウントの検出）に使われます。
func (r *userMySQL) ExistsByID(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entity.User{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Update はユーザーのプロフィール行を保存します。
// ユーザー名の変更が既存ユーザーと衝突する場合、usecase.ErrUsernameTakenを返します。
func (r *userMySQL) Update(ctx context.Context, u *entity.User) error {
	if err := r.db.WithContext(ctx).Save(u).Error; err != nil {
		if isDuplicateKey(err) {
			return usecase.ErrUsernameTaken
		}
		return err
	}
	return nil
}

// DeleteByUsername はユーザー行とそのお気に入り行をトランザクションで削除します。
// ユーザーが存在しない場合、usecase.ErrUserNotFoundを返します。
func (r *userMySQL) DeleteByUsername(ctx context.Context, username string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var u entity.User
		if err := tx.Where("username = ?", username).First(&u).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return usecase.ErrUserNotFound
			}
			return err
		}
		if err := tx.Where("user_id = ?", u.ID).Delete(&entity.FavoriteMovie{}).Error; err != nil {
			return err
		}
		return tx.Delete(&u).Error
	})
}

// AddFavorite は結合テーブルに1行挿入してお気に入り集合に追加します。
// 複合主キーにより重複挿入はデータベースで拒否され、usecase.ErrAlreadyFavoriteに
// 変換されます。挿入は単一行のステートメントで、部分的な書き込みは観測されません。
func (r *userMySQL) AddFavorite(ctx context.Context, userID, movieID uint) error {
	fav := &entity.FavoriteMovie{UserID: userID, MovieID: movieID}
	if err := r.db.WithContext(ctx).Create(fav).Error; err != nil {
		if isDuplicateKey(err) {
			return usecase.ErrAlreadyFavorite
		}
		return err
	}
	return nil
}

// RemoveFavorite は結合テーブルから1行削除します。
// 行が存在しない場合も成功として扱います（冪等な削除）。
func (r *userMySQL) RemoveFavorite(ctx context.Context, userID, movieID uint) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND movie_id = ?", userID, movieID).
		Delete(&entity.FavoriteMovie{}).Error
}

// loadFavorites はユーザーのお気に入り映画ID集合を読み込みます。
func (r *userMySQL) loadFavorites(ctx context.Context, u *entity.User) error {
	var ids []uint
	if err := r.db.WithContext(ctx).
		Model(&entity.FavoriteMovie{}).
		Where("user_id = ?", u.ID).
		Order("movie_id ASC").
		Pluck("movie_id", &ids).Error; err != nil {
		return err
	}
	u.FavoriteMovieIDs = ids
	return nil
}
