package domain

import "time"

// User is an identity record. Username and email are each globally unique;
// the id is immutable once created.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string // argon2id encoded, never serialized outward
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
