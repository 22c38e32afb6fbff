// Package dto defines data transfer objects for the auth HTTP API.
package dto

// LoginRequest はログインのリクエストボディです。
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
