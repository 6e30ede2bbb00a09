package models

import (
	"time"

	"github.com/google/uuid"
)

// User roles
const (
	RoleUser   = "user"
	RoleDealer = "dealer"
	RoleAdmin  = "admin"
)

type User struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Role         string    `json:"role" db:"role"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
