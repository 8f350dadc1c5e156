package domain

import "time"

// User is the domain entity for an account. Email is unique, stored lowercased.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
