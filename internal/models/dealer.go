package models

import (
	"time"

	"github.com/google/uuid"
)

type Dealer struct {
	ID            uuid.UUID         `json:"id" db:"id"`
	Name          string            `json:"name" db:"name"`
	Location      string            `json:"location" db:"location"`
	Description   *string           `json:"description,omitempty" db:"description"`
	ImageURL      *string           `json:"image_url,omitempty" db:"image_url"`
	Phone         *string           `json:"phone,omitempty" db:"phone"`
	Email         *string           `json:"email,omitempty" db:"email"`
	Address       *string           `json:"address,omitempty" db:"address"`
	Rating        float64           `json:"rating" db:"rating"`
	ReviewCount   int               `json:"review_count" db:"review_count"`
	Verified      bool              `json:"verified" db:"verified"`
	BusinessHours map[string]string `json:"business_hours,omitempty" db:"business_hours"`
	Services      []string          `json:"services,omitempty" db:"services"`
	UserID        *uuid.UUID        `json:"user_id,omitempty" db:"user_id"`
	CreatedAt     time.Time         `json:"created_at" db:"created_at"`
}
