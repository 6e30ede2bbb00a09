package repositories

import (
	"context"
	"errors"

	"carmart/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *models.Review) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Review, error)
	ListByDealer(ctx context.Context, dealerID uuid.UUID) ([]*models.Review, error)
	ListByVehicle(ctx context.Context, vehicleID uuid.UUID) ([]*models.Review, error)
}

const reviewColumns = `id, user_id, dealer_id, vehicle_id, rating, comment, created_at`

type reviewRepo struct {
	db DB
}

func NewReviewRepo(db DB) ReviewRepository {
	return &reviewRepo{db: db}
}

func scanReviews(rows pgx.Rows) ([]*models.Review, error) {
	defer rows.Close()
	var reviews []*models.Review
	for rows.Next() {
		rev := &models.Review{}
		if err := rows.Scan(&rev.ID, &rev.UserID, &rev.DealerID, &rev.VehicleID, &rev.Rating, &rev.Comment, &rev.CreatedAt); err != nil {
			return nil, err
		}
		reviews = append(reviews, rev)
	}
	return reviews, rows.Err()
}

func (r *reviewRepo) Create(ctx context.Context, review *models.Review) error {
	query := `
		INSERT INTO reviews (id, user_id, dealer_id, vehicle_id, rating, comment, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
	`
	_, err := r.db.Exec(ctx, query, review.ID, review.UserID, review.DealerID, review.VehicleID, review.Rating, review.Comment)
	return err
}

func (r *reviewRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Review, error) {
	rev := &models.Review{}
	query := `SELECT ` + reviewColumns + ` FROM reviews WHERE id = $1`
	err := r.db.QueryRow(ctx, query, id).Scan(&rev.ID, &rev.UserID, &rev.DealerID, &rev.VehicleID, &rev.Rating, &rev.Comment, &rev.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return rev, nil
}

func (r *reviewRepo) ListByDealer(ctx context.Context, dealerID uuid.UUID) ([]*models.Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews WHERE dealer_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, dealerID)
	if err != nil {
		return nil, err
	}
	return scanReviews(rows)
}

func (r *reviewRepo) ListByVehicle(ctx context.Context, vehicleID uuid.UUID) ([]*models.Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews WHERE vehicle_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, vehicleID)
	if err != nil {
		return nil, err
	}
	return scanReviews(rows)
}
