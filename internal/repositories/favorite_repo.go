package repositories

import (
	"context"
	"errors"

	"carmart/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type FavoriteRepository interface {
	Add(ctx context.Context, favorite *models.FavoriteVehicle) (*models.FavoriteVehicle, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.FavoriteVehicle, error)
	Remove(ctx context.Context, userID, vehicleID uuid.UUID) error
}

type favoriteRepo struct {
	db DB
}

func NewFavoriteRepo(db DB) FavoriteRepository {
	return &favoriteRepo{db: db}
}

// Add is idempotent: re-favoriting returns the existing row unchanged.
func (r *favoriteRepo) Add(ctx context.Context, f *models.FavoriteVehicle) (*models.FavoriteVehicle, error) {
	existing := &models.FavoriteVehicle{}
	err := r.db.QueryRow(ctx,
		`SELECT id, user_id, vehicle_id, created_at FROM favorites WHERE user_id = $1 AND vehicle_id = $2`,
		f.UserID, f.VehicleID,
	).Scan(&existing.ID, &existing.UserID, &existing.VehicleID, &existing.CreatedAt)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO favorites (id, user_id, vehicle_id, created_at) VALUES ($1, $2, $3, NOW())
		 ON CONFLICT (user_id, vehicle_id) DO NOTHING`,
		f.ID, f.UserID, f.VehicleID,
	)
	if err != nil {
		return nil, err
	}
	return f, nil
}

func (r *favoriteRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.FavoriteVehicle, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, vehicle_id, created_at FROM favorites WHERE user_id = $1 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var favorites []*models.FavoriteVehicle
	for rows.Next() {
		f := &models.FavoriteVehicle{}
		if err := rows.Scan(&f.ID, &f.UserID, &f.VehicleID, &f.CreatedAt); err != nil {
			return nil, err
		}
		favorites = append(favorites, f)
	}
	return favorites, rows.Err()
}

func (r *favoriteRepo) Remove(ctx context.Context, userID, vehicleID uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM favorites WHERE user_id = $1 AND vehicle_id = $2`, userID, vehicleID)
	return err
}
