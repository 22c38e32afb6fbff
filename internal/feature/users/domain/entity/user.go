// Package entity defines the domain entities for the users feature.
package entity

import "time"

// User represents a registered account (the authenticated identity).
// It contains the credentials, the profile, and the favorite-movie set.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey"`

	// Username is the unique, case-sensitive login identifier.
	// Format (at least 5 alphanumeric characters) is enforced at the
	// request-validation layer; uniqueness is enforced here.
	Username string `gorm:"uniqueIndex;size:255;not null"`

	// Password is the bcrypt hash of the user's password.
	// This never stores plaintext passwords.
	Password string `gorm:"size:255;not null"`

	// Email is the user's contact email address.
	Email string `gorm:"size:255;not null"`

	// Birthday is the user's optional date of birth.
	Birthday *time.Time

	// FavoriteMovieIDs holds the IDs of the user's favorite movies.
	// The set itself lives in the user_favorites join table; this field
	// is populated by the repository on load and is not a column.
	FavoriteMovieIDs []uint `gorm:"-"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time
}

// FavoriteMovie is one membership row of a user's favorite-movie set.
// The composite primary key makes duplicates impossible by construction.
type FavoriteMovie struct {
	UserID    uint `gorm:"primaryKey;autoIncrement:false"`
	MovieID   uint `gorm:"primaryKey;autoIncrement:false"`
	CreatedAt time.Time
}

// TableName はお気に入り集合の結合テーブル名を固定します。
func (FavoriteMovie) TableName() string {
	return "user_favorites"
}
