package session

import "time"

// Session maps an opaque token to the account that authenticated.
// Expiry is fixed at issue time and never extended by use.
type Session struct {
	Token     string    `json:"token"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}
