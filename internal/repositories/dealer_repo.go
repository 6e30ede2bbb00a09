package repositories

import (
	"context"
	"errors"

	"carmart/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type DealerRepository interface {
	Create(ctx context.Context, dealer *models.Dealer) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Dealer, error)
	List(ctx context.Context, limit, offset int) ([]*models.Dealer, error)
	ListByLocation(ctx context.Context, location string) ([]*models.Dealer, error)
	RefreshRating(ctx context.Context, id uuid.UUID) error
}

const dealerColumns = `id, name, location, description, image_url, phone, email, address,
		rating, review_count, verified, business_hours, services, user_id, created_at`

type dealerRepo struct {
	db DB
}

func NewDealerRepo(db DB) DealerRepository {
	return &dealerRepo{db: db}
}

func scanDealer(row rowScanner) (*models.Dealer, error) {
	d := &models.Dealer{}
	err := row.Scan(
		&d.ID, &d.Name, &d.Location, &d.Description, &d.ImageURL, &d.Phone, &d.Email, &d.Address,
		&d.Rating, &d.ReviewCount, &d.Verified, &d.BusinessHours, &d.Services, &d.UserID, &d.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return d, nil
}

func scanDealers(rows pgx.Rows) ([]*models.Dealer, error) {
	defer rows.Close()
	var dealers []*models.Dealer
	for rows.Next() {
		d, err := scanDealer(rows)
		if err != nil {
			return nil, err
		}
		dealers = append(dealers, d)
	}
	return dealers, rows.Err()
}

func (r *dealerRepo) Create(ctx context.Context, d *models.Dealer) error {
	query := `
		INSERT INTO dealers (id, name, location, description, image_url, phone, email, address,
			rating, review_count, verified, business_hours, services, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, NOW())
	`
	_, err := r.db.Exec(ctx, query,
		d.ID, d.Name, d.Location, d.Description, d.ImageURL, d.Phone, d.Email, d.Address,
		d.Rating, d.ReviewCount, d.Verified, jsonbArg(d.BusinessHours), jsonbArg(d.Services), d.UserID,
	)
	return err
}

func (r *dealerRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Dealer, error) {
	query := `SELECT ` + dealerColumns + ` FROM dealers WHERE id = $1`
	d, err := scanDealer(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (r *dealerRepo) List(ctx context.Context, limit, offset int) ([]*models.Dealer, error) {
	query := `SELECT ` + dealerColumns + ` FROM dealers ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	return scanDealers(rows)
}

func (r *dealerRepo) ListByLocation(ctx context.Context, location string) ([]*models.Dealer, error) {
	query := `SELECT ` + dealerColumns + ` FROM dealers WHERE location ILIKE $1 ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, "%"+location+"%")
	if err != nil {
		return nil, err
	}
	return scanDealers(rows)
}

// RefreshRating recomputes the dealer's mean rating and review count in a
// single statement, so two concurrent reviews cannot interleave a stale
// read-then-write.
func (r *dealerRepo) RefreshRating(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE dealers d
		SET rating = s.avg_rating, review_count = s.review_count
		FROM (
			SELECT COALESCE(AVG(rating), 0) AS avg_rating, COUNT(*) AS review_count
			FROM reviews
			WHERE dealer_id = $1
		) s
		WHERE d.id = $1
	`
	_, err := r.db.Exec(ctx, query, id)
	return err
}
