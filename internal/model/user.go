package model

import "time"

// User is the minimal identity row maintained by the auth layer.
// This service only reads it for attribution and notification fan-out.
type User struct {
	ID           int       `json:"id"`
	OpenID       string    `json:"-"`
	Name         string    `json:"name"`
	CreatedAt    time.Time `json:"-"`
	LastSignedIn time.Time `json:"-"`
}
