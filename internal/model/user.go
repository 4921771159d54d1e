package model

import "time"

// User is a system account used for authentication and referenced as the
// responsible party on expedientes and documents.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
