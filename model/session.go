// file: model/session.go

package model

import "time"

// Session binds an issued access/refresh token pair to its owning user.
// ExpiresAt bounds the refresh token's lifetime and is never extended;
// a refresh only swaps AccessToken for a freshly minted one.
type Session struct {
	ID           int       `json:"id"`
	UserID       int       `json:"user_id"`
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	CreatedAt    time.Time `json:"created_at"`
	ExpiresAt    time.Time `json:"expires_at"`
}
