package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReplacementTask represents a pending action to replace a heavily
// depreciated asset
type ReplacementTask struct {
	ID      uuid.UUID
	AssetID uuid.UUID

	// DepreciationRatePct is the rate observed when the task was generated
	DepreciationRatePct decimal.Decimal

	// EstimatedCost is the replacement budget, taken from the asset's
	// original purchase price
	EstimatedCost decimal.Decimal

	CreatedAt   time.Time
	IsCompleted bool
	CompletedAt *time.Time // NULL until task is completed
}
