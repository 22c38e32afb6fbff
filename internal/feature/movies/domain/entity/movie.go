// Package entity defines the domain models for the movies feature.
package entity

import "time"

// Movie represents a single entry in the movie catalog.
// Genre and director are denormalized onto the movie row, mirroring the
// catalog's document shape (one genre and one director per movie).
type Movie struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	Title            string    `gorm:"size:255;not null;uniqueIndex" json:"title"`
	Description      string    `gorm:"type:text;not null" json:"description"`
	GenreName        string    `gorm:"size:100;index" json:"genre_name"`
	GenreDescription string    `gorm:"type:text" json:"genre_description"`
	DirectorName     string    `gorm:"size:255;index" json:"director_name"`
	DirectorBio      string    `gorm:"type:text" json:"director_bio"`
	Actors           []string  `gorm:"serializer:json" json:"actors"`
	ImagePath        string    `gorm:"size:512" json:"image_path"`
	Featured         bool      `gorm:"not null;default:false" json:"featured"`
	CreatedAt        time.Time `json:"-"`
	UpdatedAt        time.Time `json:"-"`
}
