package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// AssetFilter narrows List results
// The zero value returns all active (non-disposed) assets
type AssetFilter struct {
	CategoryID      *uuid.UUID
	Status          Status
	IncludeDisposed bool
}

// AssetRepository defines the interface for asset persistence operations
type AssetRepository interface {
	// GetByID retrieves an asset by its ID, including disposed assets
	GetByID(ctx context.Context, id uuid.UUID) (*Asset, error)

	// Create creates a new asset
	Create(ctx context.Context, asset *Asset) error

	// Update overwrites the mutable fields of an existing asset
	Update(ctx context.Context, asset *Asset) error

	// List retrieves assets matching the filter
	List(ctx context.Context, filter AssetFilter) ([]*Asset, error)

	// Dispose marks an asset as disposed at the given time (soft delete)
	Dispose(ctx context.Context, id uuid.UUID, at time.Time) error
}

// CategoryRepository defines the interface for category persistence operations
type CategoryRepository interface {
	// GetByID retrieves a category by its ID
	GetByID(ctx context.Context, id uuid.UUID) (*Category, error)

	// Create creates a new category
	Create(ctx context.Context, category *Category) error

	// Update overwrites the mutable fields of an existing category
	Update(ctx context.Context, category *Category) error

	// List retrieves all categories
	List(ctx context.Context) ([]*Category, error)
}

// MaintenanceRepository defines the interface for maintenance record persistence
type MaintenanceRepository interface {
	// Add creates a new maintenance record
	Add(ctx context.Context, record *MaintenanceRecord) error

	// ListByAsset retrieves all maintenance records for an asset, newest first
	ListByAsset(ctx context.Context, assetID uuid.UUID) ([]*MaintenanceRecord, error)
}

// ReplacementTaskRepository defines the interface for replacement task persistence
type ReplacementTaskRepository interface {
	// Create creates a new replacement task
	Create(ctx context.Context, task *ReplacementTask) error

	// GetOpenByAssetID retrieves the open (not completed) task for an asset,
	// if one exists
	GetOpenByAssetID(ctx context.Context, assetID uuid.UUID) (*ReplacementTask, error)

	// List retrieves all replacement tasks
	List(ctx context.Context) ([]*ReplacementTask, error)

	// MarkCompleted flags a task as done
	MarkCompleted(ctx context.Context, id uuid.UUID, at time.Time) error
}
