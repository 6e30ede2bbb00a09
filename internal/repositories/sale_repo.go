package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"carmart/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type SaleRepository interface {
	CreateTx(ctx context.Context, tx pgx.Tx, sale *models.Sale) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Sale, error)
	ListByDealer(ctx context.Context, dealerID uuid.UUID) ([]*models.Sale, error)
	Update(ctx context.Context, id uuid.UUID, patch *models.SaleUpdate) error
	TotalsByDealer(ctx context.Context, dealerID uuid.UUID, since time.Time) (int, float64, float64, error)
}

const saleColumns = `id, vehicle_id, dealer_id, buyer_name, buyer_email, buyer_phone,
		sale_price, commission, payment_method, status, completed_at, notes, created_at`

type saleRepo struct {
	db DB
}

func NewSaleRepo(db DB) SaleRepository {
	return &saleRepo{db: db}
}

func scanSale(row rowScanner) (*models.Sale, error) {
	s := &models.Sale{}
	err := row.Scan(
		&s.ID, &s.VehicleID, &s.DealerID, &s.BuyerName, &s.BuyerEmail, &s.BuyerPhone,
		&s.SalePrice, &s.Commission, &s.PaymentMethod, &s.Status, &s.CompletedAt, &s.Notes, &s.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// CreateTx inserts the sale inside the caller's transaction so the sale row
// and the vehicle/log writes commit or roll back together.
func (r *saleRepo) CreateTx(ctx context.Context, tx pgx.Tx, sale *models.Sale) error {
	query := `
		INSERT INTO sales (id, vehicle_id, dealer_id, buyer_name, buyer_email, buyer_phone,
			sale_price, commission, payment_method, status, completed_at, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW())
	`
	_, err := tx.Exec(ctx, query,
		sale.ID, sale.VehicleID, sale.DealerID, sale.BuyerName, sale.BuyerEmail, sale.BuyerPhone,
		sale.SalePrice, sale.Commission, sale.PaymentMethod, sale.Status, sale.CompletedAt, sale.Notes,
	)
	return err
}

func (r *saleRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE id = $1`
	s, err := scanSale(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *saleRepo) ListByDealer(ctx context.Context, dealerID uuid.UUID) ([]*models.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE dealer_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, dealerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sales []*models.Sale
	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			return nil, err
		}
		sales = append(sales, s)
	}
	return sales, rows.Err()
}

// Update applies a partial patch. When the patch moves the sale to
// completed, completed_at is stamped only if it is still unset; a stamp is
// never overwritten by later updates.
func (r *saleRepo) Update(ctx context.Context, id uuid.UUID, patch *models.SaleUpdate) error {
	var sets []string
	args := []any{id}
	n := 1
	add := func(column string, val any) {
		n++
		sets = append(sets, fmt.Sprintf("%s = $%d", column, n))
		args = append(args, val)
	}

	if patch.BuyerName != nil {
		add("buyer_name", *patch.BuyerName)
	}
	if patch.BuyerEmail != nil {
		add("buyer_email", *patch.BuyerEmail)
	}
	if patch.BuyerPhone != nil {
		add("buyer_phone", *patch.BuyerPhone)
	}
	if patch.SalePrice != nil {
		add("sale_price", *patch.SalePrice)
	}
	if patch.Commission != nil {
		add("commission", *patch.Commission)
	}
	if patch.PaymentMethod != nil {
		add("payment_method", *patch.PaymentMethod)
	}
	if patch.Notes != nil {
		add("notes", *patch.Notes)
	}
	if patch.Status != nil {
		add("status", *patch.Status)
		if *patch.Status == models.SaleStatusCompleted {
			sets = append(sets, "completed_at = COALESCE(completed_at, NOW())")
		}
	}

	if len(sets) == 0 {
		return nil
	}

	query := fmt.Sprintf(`UPDATE sales SET %s WHERE id = $1`, strings.Join(sets, ", "))
	_, err := r.db.Exec(ctx, query, args...)
	return err
}

// TotalsByDealer returns the count, revenue and average price of completed
// sales recorded since the given time.
func (r *saleRepo) TotalsByDealer(ctx context.Context, dealerID uuid.UUID, since time.Time) (int, float64, float64, error) {
	query := `
		SELECT COUNT(*), COALESCE(SUM(sale_price), 0), COALESCE(AVG(sale_price), 0)
		FROM sales
		WHERE dealer_id = $1 AND status = 'completed' AND created_at >= $2
	`
	var count int
	var revenue, average float64
	err := r.db.QueryRow(ctx, query, dealerID, since).Scan(&count, &revenue, &average)
	if err != nil {
		return 0, 0, 0, err
	}
	return count, revenue, average, nil
}
