package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"carmart/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type VehicleRepository interface {
	Create(ctx context.Context, vehicle *models.Vehicle) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Vehicle, error)
	List(ctx context.Context, limit, offset int) ([]*models.Vehicle, error)
	ListByDealer(ctx context.Context, dealerID uuid.UUID) ([]*models.Vehicle, error)
	Search(ctx context.Context, filter *models.VehicleSearchFilter) ([]*models.Vehicle, int, error)
	Featured(ctx context.Context) ([]*models.Vehicle, error)
	Update(ctx context.Context, id uuid.UUID, patch *models.VehicleUpdate, pricePoint *models.PricePoint) error
	MarkSoldTx(ctx context.Context, tx pgx.Tx, id uuid.UUID, soldPrice float64, soldDate time.Time) (string, error)
	CountActiveByDealer(ctx context.Context, dealerID uuid.UUID) (int, error)
}

const vehicleColumns = `id, dealer_id, make, model, year, price, calculated_price, mileage,
		fuel_type, transmission, body_type, drivetrain, engine, horsepower, mpg_city, mpg_highway,
		safety_rating, color, vin, condition, features, image_urls, image_keys, google_drive_images,
		description, available, inventory_status, stock_quantity, reserved_by, reserved_until,
		sold_date, sold_price, price_history, created_at, updated_at`

type vehicleRepo struct {
	db DB
}

func NewVehicleRepo(db DB) VehicleRepository {
	return &vehicleRepo{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanVehicle(row rowScanner) (*models.Vehicle, error) {
	v := &models.Vehicle{}
	err := row.Scan(
		&v.ID, &v.DealerID, &v.Make, &v.Model, &v.Year, &v.Price, &v.CalculatedPrice, &v.Mileage,
		&v.FuelType, &v.Transmission, &v.BodyType, &v.Drivetrain, &v.Engine, &v.Horsepower, &v.MPGCity, &v.MPGHighway,
		&v.SafetyRating, &v.Color, &v.VIN, &v.Condition, &v.Features, &v.ImageURLs, &v.ImageKeys, &v.GoogleDriveImages,
		&v.Description, &v.Available, &v.InventoryStatus, &v.StockQuantity, &v.ReservedBy, &v.ReservedUntil,
		&v.SoldDate, &v.SoldPrice, &v.PriceHistory, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func scanVehicles(rows pgx.Rows) ([]*models.Vehicle, error) {
	defer rows.Close()
	var vehicles []*models.Vehicle
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, err
		}
		vehicles = append(vehicles, v)
	}
	return vehicles, rows.Err()
}

// jsonbArg marshals a Go value for a jsonb parameter. Without this pgx
// would infer a text[] encoding for string slices.
func jsonbArg(v any) []byte {
	data, err := json.Marshal(v)
	if err != nil {
		return []byte("null")
	}
	return data
}

func (r *vehicleRepo) Create(ctx context.Context, v *models.Vehicle) error {
	query := `
		INSERT INTO vehicles (id, dealer_id, make, model, year, price, calculated_price, mileage,
			fuel_type, transmission, body_type, drivetrain, engine, horsepower, mpg_city, mpg_highway,
			safety_rating, color, vin, condition, features, image_urls, image_keys, google_drive_images,
			description, available, inventory_status, stock_quantity, price_history, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16,
			$17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29, NOW(), NOW())
	`
	_, err := r.db.Exec(ctx, query,
		v.ID, v.DealerID, v.Make, v.Model, v.Year, v.Price, v.CalculatedPrice, v.Mileage,
		v.FuelType, v.Transmission, v.BodyType, v.Drivetrain, v.Engine, v.Horsepower, v.MPGCity, v.MPGHighway,
		v.SafetyRating, v.Color, v.VIN, v.Condition, jsonbArg(v.Features), jsonbArg(v.ImageURLs), jsonbArg(v.ImageKeys), jsonbArg(v.GoogleDriveImages),
		v.Description, v.Available, v.InventoryStatus, v.StockQuantity, jsonbArg(v.PriceHistory),
	)
	return err
}

// GetByID returns (nil, nil) when no vehicle matches; callers treat the nil
// vehicle as a not-found sentinel.
func (r *vehicleRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE id = $1`
	v, err := scanVehicle(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (r *vehicleRepo) List(ctx context.Context, limit, offset int) ([]*models.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	return scanVehicles(rows)
}

func (r *vehicleRepo) ListByDealer(ctx context.Context, dealerID uuid.UUID) ([]*models.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE dealer_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, dealerID)
	if err != nil {
		return nil, err
	}
	return scanVehicles(rows)
}

// Search translates the filter into one AND-combined WHERE clause, counts
// the matches before pagination, then applies sort, limit and offset.
func (r *vehicleRepo) Search(ctx context.Context, filter *models.VehicleSearchFilter) ([]*models.Vehicle, int, error) {
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	where := ` WHERE 1=1`
	args := []any{}
	n := 0
	add := func(clause string, val any) {
		n++
		where += fmt.Sprintf(clause, n)
		args = append(args, val)
	}

	if filter.Make != "" {
		add(` AND make ILIKE $%d`, "%"+filter.Make+"%")
	}
	if filter.Model != "" {
		add(` AND model ILIKE $%d`, "%"+filter.Model+"%")
	}
	if filter.MinPrice != nil {
		add(` AND price >= $%d`, *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		add(` AND price <= $%d`, *filter.MaxPrice)
	}
	if filter.MinYear != nil {
		add(` AND year >= $%d`, *filter.MinYear)
	}
	if filter.MaxYear != nil {
		add(` AND year <= $%d`, *filter.MaxYear)
	}
	if filter.FuelType != nil {
		add(` AND fuel_type = $%d`, *filter.FuelType)
	}
	if filter.Transmission != nil {
		add(` AND transmission = $%d`, *filter.Transmission)
	}
	if filter.BodyType != nil {
		add(` AND body_type = $%d`, *filter.BodyType)
	}
	if filter.Condition != nil {
		add(` AND condition = $%d`, *filter.Condition)
	}
	if filter.MaxMileage != nil {
		add(` AND mileage <= $%d`, *filter.MaxMileage)
	}
	if filter.DealerID != nil {
		add(` AND dealer_id = $%d`, *filter.DealerID)
	}

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM vehicles`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	// created_at DESC doubles as the stable secondary order for every key.
	var order string
	switch filter.SortBy {
	case "price_asc":
		order = ` ORDER BY price ASC, created_at DESC`
	case "price_desc":
		order = ` ORDER BY price DESC, created_at DESC`
	case "year_desc":
		order = ` ORDER BY year DESC, created_at DESC`
	case "mileage_asc":
		order = ` ORDER BY mileage ASC, created_at DESC`
	default:
		order = ` ORDER BY created_at DESC`
	}

	query := `SELECT ` + vehicleColumns + ` FROM vehicles` + where + order +
		fmt.Sprintf(` LIMIT $%d OFFSET $%d`, n+1, n+2)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	vehicles, err := scanVehicles(rows)
	if err != nil {
		return nil, 0, err
	}
	return vehicles, total, nil
}

// Featured returns the newest in-stock listings, capped at eight.
func (r *vehicleRepo) Featured(ctx context.Context) ([]*models.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles
		WHERE available = TRUE AND inventory_status = 'in_stock'
		ORDER BY created_at DESC
		LIMIT 8`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return scanVehicles(rows)
}

// Update applies a partial patch. When pricePoint is non-nil the point is
// appended to price_history inside the same statement, so concurrent
// updates cannot drop history entries.
func (r *vehicleRepo) Update(ctx context.Context, id uuid.UUID, patch *models.VehicleUpdate, pricePoint *models.PricePoint) error {
	sets := []string{"updated_at = NOW()"}
	args := []any{id}
	n := 1
	add := func(column string, val any) {
		n++
		sets = append(sets, fmt.Sprintf("%s = $%d", column, n))
		args = append(args, val)
	}

	if patch.Price != nil {
		add("price", *patch.Price)
	}
	if patch.Mileage != nil {
		add("mileage", *patch.Mileage)
	}
	if patch.Color != nil {
		add("color", *patch.Color)
	}
	if patch.Condition != nil {
		add("condition", *patch.Condition)
	}
	if patch.Description != nil {
		add("description", *patch.Description)
	}
	if patch.Features != nil {
		add("features", jsonbArg(patch.Features))
	}
	if patch.ImageURLs != nil {
		add("image_urls", jsonbArg(patch.ImageURLs))
	}
	if patch.ImageKeys != nil {
		add("image_keys", jsonbArg(patch.ImageKeys))
	}
	if patch.GoogleDriveImages != nil {
		add("google_drive_images", jsonbArg(patch.GoogleDriveImages))
	}
	if patch.Available != nil {
		add("available", *patch.Available)
	}
	if patch.InventoryStatus != nil {
		add("inventory_status", *patch.InventoryStatus)
	}
	if patch.StockQuantity != nil {
		add("stock_quantity", *patch.StockQuantity)
	}
	if patch.ReservedBy != nil {
		add("reserved_by", *patch.ReservedBy)
	}
	if patch.ReservedUntil != nil {
		add("reserved_until", *patch.ReservedUntil)
	}
	if patch.SoldDate != nil {
		add("sold_date", *patch.SoldDate)
	}
	if patch.SoldPrice != nil {
		add("sold_price", *patch.SoldPrice)
	}
	if pricePoint != nil {
		n++
		sets = append(sets, fmt.Sprintf("price_history = price_history || $%d::jsonb", n))
		args = append(args, jsonbArg([]models.PricePoint{*pricePoint}))
	}

	query := fmt.Sprintf(`UPDATE vehicles SET %s WHERE id = $1`, strings.Join(sets, ", "))
	_, err := r.db.Exec(ctx, query, args...)
	return err
}

// MarkSoldTx locks the vehicle row, forces it into the sold state and
// returns the status it held before. Runs inside the caller's transaction.
func (r *vehicleRepo) MarkSoldTx(ctx context.Context, tx pgx.Tx, id uuid.UUID, soldPrice float64, soldDate time.Time) (string, error) {
	var previous string
	err := tx.QueryRow(ctx, `SELECT inventory_status FROM vehicles WHERE id = $1 FOR UPDATE`, id).Scan(&previous)
	if err != nil {
		return "", err
	}

	_, err = tx.Exec(ctx, `
		UPDATE vehicles
		SET inventory_status = $2, available = FALSE, sold_date = $3, sold_price = $4, updated_at = NOW()
		WHERE id = $1
	`, id, models.StatusSold, soldDate, soldPrice)
	if err != nil {
		return "", err
	}
	return previous, nil
}

func (r *vehicleRepo) CountActiveByDealer(ctx context.Context, dealerID uuid.UUID) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM vehicles WHERE dealer_id = $1 AND available = TRUE`, dealerID).Scan(&count)
	return count, err
}
