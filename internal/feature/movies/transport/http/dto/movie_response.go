// Package dto defines data transfer objects for the movies HTTP API.
package dto

// GenreResponse はジャンル情報の応答です。
type GenreResponse struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// DirectorResponse は監督情報の応答です。
type DirectorResponse struct {
	Name string `json:"name"`
	Bio  string `json:"bio"`
}
