package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MaintenanceRecord represents a maintenance event logged against an asset
// Maintenance is recorded and reported only — it never extends useful life or
// resets depreciation
type MaintenanceRecord struct {
	ID          uuid.UUID
	AssetID     uuid.UUID
	Date        time.Time
	Description string
	Cost        decimal.Decimal
	PerformedBy string
}

// Validate ensures the maintenance record adheres to domain rules
func (m *MaintenanceRecord) Validate() error {
	if m.AssetID == uuid.Nil {
		return errors.New("maintenance record must reference an asset")
	}

	if m.Description == "" {
		return errors.New("maintenance description cannot be empty")
	}

	if m.Cost.IsNegative() {
		return errors.New("maintenance cost cannot be negative")
	}

	return nil
}
