// Package password はパスワードのハッシュ化と照合を提供します。
package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DummyHash はユーザーが存在しない場合のタイミング攻撃緩和に使う固定bcryptハッシュです。
// ログイン処理では、ユーザー未検出時でもこのハッシュに対して照合を実行し、
// 「ユーザーなし」と「パスワード不一致」の応答時間差をなくします。
const DummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// Hasher はbcryptによるパスワードハッシュ化を実装します。
// コストは固定（bcrypt.DefaultCost）で、ソルトはbcryptが自動生成します。
type Hasher struct {
	cost int
}

// NewHasher はデフォルトコストのHasherを生成します。
func NewHasher() *Hasher {
	return &Hasher{cost: bcrypt.DefaultCost}
}

// Hash は平文パスワードからソルト付きハッシュを生成します。
func (h *Hasher) Hash(plain string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(bytes), nil
}

// Check は平文パスワードとハッシュを照合します。
// bcryptのダイジェスト比較は不一致位置に依存しない時間で実行されます。
// 保存ハッシュが不正な形式の場合も単にfalseを返します。形式エラーの検出は
// 呼び出し側がデータ破損として扱います（「パスワード誤り」とは区別しません）。
func (h *Hasher) Check(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
