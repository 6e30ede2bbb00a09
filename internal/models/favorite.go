package models

import (
	"time"

	"github.com/google/uuid"
)

type FavoriteVehicle struct {
	ID        uuid.UUID `json:"id" db:"id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	VehicleID uuid.UUID `json:"vehicle_id" db:"vehicle_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
