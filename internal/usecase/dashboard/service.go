package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/assetbook/assetbook-backend/internal/domain"
	"github.com/assetbook/assetbook-backend/internal/usecase/portfolio"
	"github.com/assetbook/assetbook-backend/internal/usecase/valuation"
)

// AssetValuation represents the computed book value of a single asset
type AssetValuation struct {
	AssetID             uuid.UUID
	Name                string
	AsOf                time.Time
	PurchasePrice       decimal.Decimal
	CurrentValue        decimal.Decimal
	DepreciationAmount  decimal.Decimal
	DepreciationRatePct decimal.Decimal
	UsefulLifeYears     int
}

// DashboardService handles reporting operations
// It loads the asset/category snapshot from storage and runs the pure
// calculation layer over it; nothing computed here is ever persisted
type DashboardService struct {
	AssetRepo    domain.AssetRepository
	CategoryRepo domain.CategoryRepository
}

// NewDashboardService creates a new DashboardService instance
func NewDashboardService(assetRepo domain.AssetRepository, categoryRepo domain.CategoryRepository) *DashboardService {
	return &DashboardService{
		AssetRepo:    assetRepo,
		CategoryRepo: categoryRepo,
	}
}

// GetPortfolioOverview builds the full reporting bundle: category summaries,
// the most-depreciated ranking, the replacement alert count, and KPI totals
// Logic:
//  1. Load the asset snapshot (disposed included only for historical views)
//  2. Load all categories
//  3. Run the portfolio aggregator over the in-memory snapshot
func (s *DashboardService) GetPortfolioOverview(ctx context.Context, opts portfolio.Options) (*portfolio.Result, error) {
	assets, err := s.AssetRepo.List(ctx, domain.AssetFilter{IncludeDisposed: opts.IncludeDisposed})
	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}

	categories, err := s.CategoryRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	result := portfolio.Aggregate(assets, categories, opts)
	return &result, nil
}

// GetAssetValuation computes the current book value of one asset
// A zero asOf means "now". Disposed assets remain valuable for historical
// reports, so no disposal check happens here
func (s *DashboardService) GetAssetValuation(ctx context.Context, id uuid.UUID, asOf time.Time) (*AssetValuation, error) {
	asset, err := s.AssetRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var category *domain.Category
	if asset.CategoryID != nil {
		// A dangling category reference falls through to the hard-coded
		// useful-life fallback instead of failing the report
		category, _ = s.CategoryRepo.GetByID(ctx, *asset.CategoryID)
	}

	if asOf.IsZero() {
		asOf = time.Now()
	}

	currentValue := valuation.CurrentValue(asset, category, asOf)
	depreciation := asset.PurchasePrice.Sub(currentValue)

	ratePct := decimal.Zero
	if asset.PurchasePrice.IsPositive() {
		ratePct = depreciation.Div(asset.PurchasePrice).Mul(decimal.NewFromInt(100))
	}

	return &AssetValuation{
		AssetID:             asset.ID,
		Name:                asset.Name,
		AsOf:                asOf,
		PurchasePrice:       asset.PurchasePrice,
		CurrentValue:        currentValue,
		DepreciationAmount:  depreciation,
		DepreciationRatePct: ratePct,
		UsefulLifeYears:     valuation.EffectiveUsefulLifeYears(asset, category),
	}, nil
}
