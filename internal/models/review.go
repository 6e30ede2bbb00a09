package models

import (
	"time"

	"github.com/google/uuid"
)

// Review is immutable once created; there is no update path.
type Review struct {
	ID        uuid.UUID  `json:"id" db:"id"`
	UserID    *uuid.UUID `json:"user_id,omitempty" db:"user_id"`
	DealerID  *uuid.UUID `json:"dealer_id,omitempty" db:"dealer_id"`
	VehicleID *uuid.UUID `json:"vehicle_id,omitempty" db:"vehicle_id"`
	Rating    int        `json:"rating" db:"rating"` // 1-5
	Comment   *string    `json:"comment,omitempty" db:"comment"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
}
