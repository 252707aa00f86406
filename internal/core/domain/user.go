package domain

import "time"

// User models a registered account. The password hash is excluded from JSON
// so it can never leak through a response or a serialized session snapshot.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	CreateDate   time.Time `json:"create_date"`
}
