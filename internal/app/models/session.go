package models

import "time"

type Session struct {
	ID        string    `json:"id"`
	Token     string    `json:"token"`
	User      User      `json:"user"`
	ExpiresAt time.Time `json:"expires_at"`
}

// AuthGrant is what the lab backend answers on a successful login.
type AuthGrant struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
