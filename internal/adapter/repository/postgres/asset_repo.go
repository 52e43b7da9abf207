package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/assetbook/assetbook-backend/internal/domain"
)

// assetRepository implements domain.AssetRepository
type assetRepository struct {
	db *DB
}

// NewAssetRepository creates a new asset repository
func NewAssetRepository(db *DB) domain.AssetRepository {
	return &assetRepository{db: db}
}

const assetColumns = `
	id, name, description, category_id,
	purchase_date, purchase_price, useful_life_years, salvage_value,
	condition, status, disposed_at, created_at, updated_at
`

// scanAsset reads one asset row. Monetary columns are DECIMAL and scanned as
// strings before being parsed
func scanAsset(scan func(dest ...interface{}) error) (*domain.Asset, error) {
	var asset domain.Asset
	var categoryID sql.NullString
	var purchaseDate sql.NullTime
	var priceStr string
	var usefulLife sql.NullInt64
	var salvageStr string
	var disposedAt sql.NullTime

	err := scan(
		&asset.ID,
		&asset.Name,
		&asset.Description,
		&categoryID,
		&purchaseDate,
		&priceStr,
		&usefulLife,
		&salvageStr,
		&asset.Condition,
		&asset.Status,
		&disposedAt,
		&asset.CreatedAt,
		&asset.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if categoryID.Valid {
		id, err := uuid.Parse(categoryID.String)
		if err != nil {
			return nil, fmt.Errorf("failed to parse category_id: %w", err)
		}
		asset.CategoryID = &id
	}

	if purchaseDate.Valid {
		d := purchaseDate.Time
		asset.PurchaseDate = &d
	}

	price, err := decimal.NewFromString(priceStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse purchase_price: %w", err)
	}
	asset.PurchasePrice = price

	if usefulLife.Valid {
		years := int(usefulLife.Int64)
		asset.UsefulLifeYears = &years
	}

	salvage, err := decimal.NewFromString(salvageStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse salvage_value: %w", err)
	}
	asset.SalvageValue = salvage

	if disposedAt.Valid {
		d := disposedAt.Time
		asset.DisposedAt = &d
	}

	return &asset, nil
}

// GetByID retrieves an asset by its ID, including disposed assets
func (r *assetRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Asset, error) {
	query := `
		SELECT ` + assetColumns + `
		FROM assets
		WHERE id = $1
	`

	row := r.db.QueryRowContext(ctx, query, id)
	asset, err := scanAsset(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("asset not found: %w", err)
		}
		return nil, fmt.Errorf("failed to get asset by ID: %w", err)
	}

	return asset, nil
}

// Create creates a new asset
func (r *assetRepository) Create(ctx context.Context, asset *domain.Asset) error {
	query := `
		INSERT INTO assets (
			id, name, description, category_id,
			purchase_date, purchase_price, useful_life_years, salvage_value,
			condition, status, disposed_at, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	var categoryID interface{}
	if asset.CategoryID != nil {
		categoryID = *asset.CategoryID
	}
	var purchaseDate interface{}
	if asset.PurchaseDate != nil {
		purchaseDate = *asset.PurchaseDate
	}
	var usefulLife interface{}
	if asset.UsefulLifeYears != nil {
		usefulLife = *asset.UsefulLifeYears
	}
	var disposedAt interface{}
	if asset.DisposedAt != nil {
		disposedAt = *asset.DisposedAt
	}

	_, err := r.db.ExecContext(ctx, query,
		asset.ID,
		asset.Name,
		asset.Description,
		categoryID,
		purchaseDate,
		asset.PurchasePrice.String(),
		usefulLife,
		asset.SalvageValue.String(),
		string(asset.Condition),
		string(asset.Status),
		disposedAt,
		asset.CreatedAt,
		asset.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create asset: %w", err)
	}

	return nil
}

// Update overwrites the mutable fields of an existing asset
func (r *assetRepository) Update(ctx context.Context, asset *domain.Asset) error {
	query := `
		UPDATE assets
		SET name = $2, description = $3, category_id = $4,
			purchase_date = $5, purchase_price = $6, useful_life_years = $7,
			salvage_value = $8, condition = $9, status = $10, updated_at = $11
		WHERE id = $1
	`

	var categoryID interface{}
	if asset.CategoryID != nil {
		categoryID = *asset.CategoryID
	}
	var purchaseDate interface{}
	if asset.PurchaseDate != nil {
		purchaseDate = *asset.PurchaseDate
	}
	var usefulLife interface{}
	if asset.UsefulLifeYears != nil {
		usefulLife = *asset.UsefulLifeYears
	}

	result, err := r.db.ExecContext(ctx, query,
		asset.ID,
		asset.Name,
		asset.Description,
		categoryID,
		purchaseDate,
		asset.PurchasePrice.String(),
		usefulLife,
		asset.SalvageValue.String(),
		string(asset.Condition),
		string(asset.Status),
		asset.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update asset: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if rows == 0 {
		return errors.New("asset not found")
	}

	return nil
}

// List retrieves assets matching the filter
// Disposed assets are excluded unless the filter asks for them
func (r *assetRepository) List(ctx context.Context, filter domain.AssetFilter) ([]*domain.Asset, error) {
	query := `
		SELECT ` + assetColumns + `
		FROM assets
		WHERE 1=1
	`
	args := make([]interface{}, 0, 2)

	if !filter.IncludeDisposed {
		query += " AND disposed_at IS NULL AND status != 'DISPOSED'"
	}
	if filter.CategoryID != nil {
		args = append(args, *filter.CategoryID)
		query += fmt.Sprintf(" AND category_id = $%d", len(args))
	}
	if filter.Status != "" {
		args = append(args, string(filter.Status))
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}

	query += " ORDER BY created_at, id"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}
	defer rows.Close()

	assets := make([]*domain.Asset, 0)
	for rows.Next() {
		asset, err := scanAsset(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan asset row: %w", err)
		}
		assets = append(assets, asset)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate asset rows: %w", err)
	}

	return assets, nil
}

// Dispose marks an asset as disposed at the given time (soft delete)
func (r *assetRepository) Dispose(ctx context.Context, id uuid.UUID, at time.Time) error {
	query := `
		UPDATE assets
		SET disposed_at = $2, status = 'DISPOSED', updated_at = $2
		WHERE id = $1 AND disposed_at IS NULL
	`

	result, err := r.db.ExecContext(ctx, query, id, at)
	if err != nil {
		return fmt.Errorf("failed to dispose asset: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check dispose result: %w", err)
	}
	if rows == 0 {
		return errors.New("asset not found or already disposed")
	}

	return nil
}
