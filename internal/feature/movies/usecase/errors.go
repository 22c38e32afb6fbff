// Package usecase implements the business logic for the movies feature.
package usecase

import "errors"

var (
	// ErrMovieNotFound is returned when no movie matches the given criteria.
	ErrMovieNotFound = errors.New("movie not found")
)
