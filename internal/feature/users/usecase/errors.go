// Package usecase implements the business logic for the users feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by username or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrUsernameTaken is returned when attempting to create or rename a user
	// to a username that already exists.
	ErrUsernameTaken = errors.New("username already exists")

	// ErrMovieNotFound is returned when a favorite operation references a
	// movie that does not resolve in the catalog.
	ErrMovieNotFound = errors.New("movie not found")

	// ErrAlreadyFavorite is returned when adding a movie that is already in
	// the user's favorites. Adding is a strict conflict; removing an absent
	// movie is a no-op success. The asymmetry is intentional.
	ErrAlreadyFavorite = errors.New("movie already in favorites")
)
