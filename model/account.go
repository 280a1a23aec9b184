package model

import "time"

// ExternalAccountEntity represents one connected marketplace account.
// Deactivated (never deleted) when the refresh token is rejected upstream.
type ExternalAccountEntity struct {
	ID             uint64     `db:"id" json:"id"`
	UserID         uint64     `db:"user_id" json:"user_id"`
	ExternalUserID int64      `db:"external_user_id" json:"external_user_id"`
	AccessToken    string     `db:"access_token" json:"-"`
	RefreshToken   string     `db:"refresh_token" json:"-"`
	ExpiresAt      time.Time  `db:"expires_at" json:"expires_at"`
	Active         bool       `db:"active" json:"active"`
	CreatedAt      time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt      *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}

type ConnectResponse struct {
	AuthorizationURL string `json:"authorization_url"`
	State            string `json:"state"`
}
