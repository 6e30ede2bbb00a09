package repositories

import (
	"context"

	"carmart/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// InventoryLogRepository is append-only by design: entries are never
// updated or deleted once written.
type InventoryLogRepository interface {
	Create(ctx context.Context, entry *models.InventoryLog) error
	CreateTx(ctx context.Context, tx pgx.Tx, entry *models.InventoryLog) error
	ListByDealer(ctx context.Context, dealerID uuid.UUID) ([]*models.InventoryLog, error)
	ListByVehicle(ctx context.Context, vehicleID uuid.UUID) ([]*models.InventoryLog, error)
}

const inventoryLogColumns = `id, vehicle_id, dealer_id, action, previous_status, new_status,
		previous_price, new_price, notes, performed_by, created_at`

const insertInventoryLog = `
		INSERT INTO inventory_logs (id, vehicle_id, dealer_id, action, previous_status, new_status,
			previous_price, new_price, notes, performed_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW())
	`

type inventoryLogRepo struct {
	db DB
}

func NewInventoryLogRepo(db DB) InventoryLogRepository {
	return &inventoryLogRepo{db: db}
}

func (r *inventoryLogRepo) Create(ctx context.Context, e *models.InventoryLog) error {
	_, err := r.db.Exec(ctx, insertInventoryLog,
		e.ID, e.VehicleID, e.DealerID, e.Action, e.PreviousStatus, e.NewStatus,
		e.PreviousPrice, e.NewPrice, e.Notes, e.PerformedBy,
	)
	return err
}

func (r *inventoryLogRepo) CreateTx(ctx context.Context, tx pgx.Tx, e *models.InventoryLog) error {
	_, err := tx.Exec(ctx, insertInventoryLog,
		e.ID, e.VehicleID, e.DealerID, e.Action, e.PreviousStatus, e.NewStatus,
		e.PreviousPrice, e.NewPrice, e.Notes, e.PerformedBy,
	)
	return err
}

func scanInventoryLogs(rows pgx.Rows) ([]*models.InventoryLog, error) {
	defer rows.Close()
	var entries []*models.InventoryLog
	for rows.Next() {
		e := &models.InventoryLog{}
		if err := rows.Scan(&e.ID, &e.VehicleID, &e.DealerID, &e.Action, &e.PreviousStatus, &e.NewStatus,
			&e.PreviousPrice, &e.NewPrice, &e.Notes, &e.PerformedBy, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *inventoryLogRepo) ListByDealer(ctx context.Context, dealerID uuid.UUID) ([]*models.InventoryLog, error) {
	query := `SELECT ` + inventoryLogColumns + ` FROM inventory_logs WHERE dealer_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, dealerID)
	if err != nil {
		return nil, err
	}
	return scanInventoryLogs(rows)
}

func (r *inventoryLogRepo) ListByVehicle(ctx context.Context, vehicleID uuid.UUID) ([]*models.InventoryLog, error) {
	query := `SELECT ` + inventoryLogColumns + ` FROM inventory_logs WHERE vehicle_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, vehicleID)
	if err != nil {
		return nil, err
	}
	return scanInventoryLogs(rows)
}
