package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Condition represents the physical condition of an asset
type Condition string

const (
	ConditionNew    Condition = "NEW"
	ConditionGood   Condition = "GOOD"
	ConditionFair   Condition = "FAIR"
	ConditionPoor   Condition = "POOR"
	ConditionBroken Condition = "BROKEN"
)

// Status represents the operational status of an asset
type Status string

const (
	StatusAvailable        Status = "AVAILABLE"
	StatusInUse            Status = "IN_USE"
	StatusUnderMaintenance Status = "UNDER_MAINTENANCE"
	StatusDisposed         Status = "DISPOSED"
)

// Asset represents a physical asset entity in the domain layer
// Condition and Status are reporting/filtering fields only — they never
// participate in valuation math
type Asset struct {
	ID          uuid.UUID
	Name        string
	Description string
	CategoryID  *uuid.UUID // NULL for uncategorized assets

	// Acquisition facts
	PurchaseDate  *time.Time // NULL means not yet depreciable
	PurchasePrice decimal.Decimal

	// Valuation inputs
	UsefulLifeYears *int            // Overrides the category default when set
	SalvageValue    decimal.Decimal // Depreciation floor, defaults to 0

	// Operational state
	Condition Condition
	Status    Status

	// Soft delete marker. Disposed assets are excluded from active portfolio
	// views but remain computable for historical reports
	DisposedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsDisposed reports whether the asset has been logically removed
func (a *Asset) IsDisposed() bool {
	return a.DisposedAt != nil || a.Status == StatusDisposed
}

// Validate ensures the asset adheres to domain rules
// Returns an error if validation fails
// Entry-time validation only: the valuation engine itself never rejects
// malformed numeric inputs, so bad data must be stopped here
func (a *Asset) Validate() error {
	if a.Name == "" {
		return errors.New("asset name cannot be empty")
	}

	if a.PurchasePrice.IsNegative() {
		return errors.New("purchase price cannot be negative")
	}

	if a.SalvageValue.IsNegative() {
		return errors.New("salvage value cannot be negative")
	}

	if a.SalvageValue.GreaterThan(a.PurchasePrice) {
		return errors.New("salvage value cannot exceed purchase price")
	}

	if a.UsefulLifeYears != nil && *a.UsefulLifeYears <= 0 {
		return errors.New("useful life years must be positive when set")
	}

	if err := a.Condition.validate(); err != nil {
		return err
	}

	return a.Status.validate()
}

func (c Condition) validate() error {
	switch c {
	case ConditionNew, ConditionGood, ConditionFair, ConditionPoor, ConditionBroken:
		return nil
	}
	return errors.New("condition must be NEW, GOOD, FAIR, POOR, or BROKEN")
}

func (s Status) validate() error {
	switch s {
	case StatusAvailable, StatusInUse, StatusUnderMaintenance, StatusDisposed:
		return nil
	}
	return errors.New("status must be AVAILABLE, IN_USE, UNDER_MAINTENANCE, or DISPOSED")
}
