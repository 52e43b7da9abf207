package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/assetbook/assetbook-backend/internal/domain"
)

// maintenanceRepository implements domain.MaintenanceRepository
type maintenanceRepository struct {
	db *DB
}

// NewMaintenanceRepository creates a new maintenance repository
func NewMaintenanceRepository(db *DB) domain.MaintenanceRepository {
	return &maintenanceRepository{db: db}
}

// Add creates a new maintenance record
func (r *maintenanceRepository) Add(ctx context.Context, record *domain.MaintenanceRecord) error {
	query := `
		INSERT INTO maintenance_records (id, asset_id, date, description, cost, performed_by)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.ExecContext(ctx, query,
		record.ID,
		record.AssetID,
		record.Date,
		record.Description,
		record.Cost.String(),
		record.PerformedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert maintenance record: %w", err)
	}

	return nil
}

// ListByAsset retrieves all maintenance records for an asset, newest first
func (r *maintenanceRepository) ListByAsset(ctx context.Context, assetID uuid.UUID) ([]*domain.MaintenanceRecord, error) {
	query := `
		SELECT id, asset_id, date, description, cost, performed_by
		FROM maintenance_records
		WHERE asset_id = $1
		ORDER BY date DESC
	`

	rows, err := r.db.QueryContext(ctx, query, assetID)
	if err != nil {
		return nil, fmt.Errorf("failed to list maintenance records: %w", err)
	}
	defer rows.Close()

	records := make([]*domain.MaintenanceRecord, 0)
	for rows.Next() {
		var record domain.MaintenanceRecord
		var costStr string

		err := rows.Scan(
			&record.ID,
			&record.AssetID,
			&record.Date,
			&record.Description,
			&costStr,
			&record.PerformedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan maintenance row: %w", err)
		}

		cost, err := decimal.NewFromString(costStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse cost: %w", err)
		}
		record.Cost = cost

		records = append(records, &record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate maintenance rows: %w", err)
	}

	return records, nil
}
