package asset

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/assetbook/assetbook-backend/internal/domain"
)

// CreateAssetInput represents the input for registering a new asset
// Monetary and date fields arrive already coerced to strict types; string
// parsing happens once at the transport boundary
type CreateAssetInput struct {
	Name            string
	Description     string
	CategoryID      *uuid.UUID
	PurchaseDate    *time.Time
	PurchasePrice   decimal.Decimal
	UsefulLifeYears *int
	SalvageValue    decimal.Decimal
	Condition       domain.Condition
	Status          domain.Status
}

// UpdateAssetInput represents the input for editing an existing asset
type UpdateAssetInput struct {
	Name            string
	Description     string
	CategoryID      *uuid.UUID
	PurchaseDate    *time.Time
	PurchasePrice   decimal.Decimal
	UsefulLifeYears *int
	SalvageValue    decimal.Decimal
	Condition       domain.Condition
	Status          domain.Status
}

// RecordMaintenanceInput represents the input for logging a maintenance event
type RecordMaintenanceInput struct {
	AssetID     uuid.UUID
	Date        time.Time
	Description string
	Cost        decimal.Decimal
	PerformedBy string
}

// AssetService handles asset lifecycle operations
type AssetService struct {
	AssetRepo       domain.AssetRepository
	CategoryRepo    domain.CategoryRepository
	MaintenanceRepo domain.MaintenanceRepository
}

// NewAssetService creates a new AssetService instance
func NewAssetService(
	assetRepo domain.AssetRepository,
	categoryRepo domain.CategoryRepository,
	maintenanceRepo domain.MaintenanceRepository,
) *AssetService {
	return &AssetService{
		AssetRepo:       assetRepo,
		CategoryRepo:    categoryRepo,
		MaintenanceRepo: maintenanceRepo,
	}
}

// CreateAsset registers a new asset
// Logic:
//  1. Apply defaults (condition GOOD, status AVAILABLE)
//  2. Verify the referenced category exists, if any
//  3. Validate domain rules (this is where bad monetary data is stopped,
//     since the valuation engine deliberately never rejects input)
//  4. Persist
func (s *AssetService) CreateAsset(ctx context.Context, input CreateAssetInput) (*domain.Asset, error) {
	now := time.Now()

	asset := &domain.Asset{
		ID:              uuid.New(),
		Name:            input.Name,
		Description:     input.Description,
		CategoryID:      input.CategoryID,
		PurchaseDate:    input.PurchaseDate,
		PurchasePrice:   input.PurchasePrice,
		UsefulLifeYears: input.UsefulLifeYears,
		SalvageValue:    input.SalvageValue,
		Condition:       input.Condition,
		Status:          input.Status,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if asset.Condition == "" {
		asset.Condition = domain.ConditionGood
	}
	if asset.Status == "" {
		asset.Status = domain.StatusAvailable
	}

	if input.CategoryID != nil {
		if _, err := s.CategoryRepo.GetByID(ctx, *input.CategoryID); err != nil {
			return nil, err
		}
	}

	if err := asset.Validate(); err != nil {
		return nil, err
	}

	if err := s.AssetRepo.Create(ctx, asset); err != nil {
		return nil, err
	}

	return asset, nil
}

// UpdateAsset edits the acquisition and valuation fields of an asset
// Disposed assets cannot be edited
func (s *AssetService) UpdateAsset(ctx context.Context, id uuid.UUID, input UpdateAssetInput) (*domain.Asset, error) {
	asset, err := s.AssetRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if asset.IsDisposed() {
		return nil, errors.New("disposed assets cannot be edited")
	}

	if input.CategoryID != nil {
		if _, err := s.CategoryRepo.GetByID(ctx, *input.CategoryID); err != nil {
			return nil, err
		}
	}

	asset.Name = input.Name
	asset.Description = input.Description
	asset.CategoryID = input.CategoryID
	asset.PurchaseDate = input.PurchaseDate
	asset.PurchasePrice = input.PurchasePrice
	asset.UsefulLifeYears = input.UsefulLifeYears
	asset.SalvageValue = input.SalvageValue
	asset.Condition = input.Condition
	asset.Status = input.Status
	asset.UpdatedAt = time.Now()

	if err := asset.Validate(); err != nil {
		return nil, err
	}

	if err := s.AssetRepo.Update(ctx, asset); err != nil {
		return nil, err
	}

	return asset, nil
}

// GetAsset retrieves a single asset, including disposed ones
func (s *AssetService) GetAsset(ctx context.Context, id uuid.UUID) (*domain.Asset, error) {
	return s.AssetRepo.GetByID(ctx, id)
}

// ListAssets retrieves assets matching the filter
func (s *AssetService) ListAssets(ctx context.Context, filter domain.AssetFilter) ([]*domain.Asset, error) {
	return s.AssetRepo.List(ctx, filter)
}

// DisposeAsset soft-deletes an asset. The record stays queryable so
// historical reports can still value it
func (s *AssetService) DisposeAsset(ctx context.Context, id uuid.UUID) error {
	asset, err := s.AssetRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if asset.IsDisposed() {
		return errors.New("asset is already disposed")
	}

	return s.AssetRepo.Dispose(ctx, id, time.Now())
}

// RecordMaintenance logs a maintenance event against an asset
// Maintenance never touches depreciation; it is reporting data only
func (s *AssetService) RecordMaintenance(ctx context.Context, input RecordMaintenanceInput) (*domain.MaintenanceRecord, error) {
	// Verify the asset exists (disposed assets can still receive records,
	// e.g. a final decommissioning service)
	if _, err := s.AssetRepo.GetByID(ctx, input.AssetID); err != nil {
		return nil, err
	}

	record := &domain.MaintenanceRecord{
		ID:          uuid.New(),
		AssetID:     input.AssetID,
		Date:        input.Date,
		Description: input.Description,
		Cost:        input.Cost,
		PerformedBy: input.PerformedBy,
	}
	if record.Date.IsZero() {
		record.Date = time.Now()
	}

	if err := record.Validate(); err != nil {
		return nil, err
	}

	if err := s.MaintenanceRepo.Add(ctx, record); err != nil {
		return nil, err
	}

	return record, nil
}

// ListMaintenance retrieves the maintenance history of an asset
func (s *AssetService) ListMaintenance(ctx context.Context, assetID uuid.UUID) ([]*domain.MaintenanceRecord, error) {
	return s.MaintenanceRepo.ListByAsset(ctx, assetID)
}
