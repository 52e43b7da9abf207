package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/assetbook/assetbook-backend/internal/domain"
	"github.com/assetbook/assetbook-backend/internal/usecase/portfolio"
)

// MockAssetRepository is a mock implementation of AssetRepository for testing
type MockAssetRepository struct {
	mock.Mock
}

func (m *MockAssetRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Asset, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Asset), args.Error(1)
}

func (m *MockAssetRepository) Create(ctx context.Context, asset *domain.Asset) error {
	args := m.Called(ctx, asset)
	return args.Error(0)
}

func (m *MockAssetRepository) Update(ctx context.Context, asset *domain.Asset) error {
	args := m.Called(ctx, asset)
	return args.Error(0)
}

func (m *MockAssetRepository) List(ctx context.Context, filter domain.AssetFilter) ([]*domain.Asset, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Asset), args.Error(1)
}

func (m *MockAssetRepository) Dispose(ctx context.Context, id uuid.UUID, at time.Time) error {
	args := m.Called(ctx, id, at)
	return args.Error(0)
}

// MockCategoryRepository is a mock implementation of CategoryRepository for testing
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) Create(ctx context.Context, category *domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) Update(ctx context.Context, category *domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) List(ctx context.Context) ([]*domain.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Category), args.Error(1)
}

func datePtr(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}

func TestGetPortfolioOverview(t *testing.T) {
	ctx := context.Background()
	assetRepo := new(MockAssetRepository)
	categoryRepo := new(MockCategoryRepository)
	service := NewDashboardService(assetRepo, categoryRepo)

	categoryID := uuid.New()
	category := &domain.Category{ID: categoryID, Name: "IT Equipment", DefaultUsefulLifeYears: 3}

	assets := []*domain.Asset{
		{
			ID:            uuid.New(),
			Name:          "Laptop",
			CategoryID:    &categoryID,
			PurchaseDate:  datePtr(2024, time.January, 1),
			PurchasePrice: decimal.NewFromInt(3600),
			SalvageValue:  decimal.Zero,
			Condition:     domain.ConditionGood,
			Status:        domain.StatusInUse,
		},
	}

	assetRepo.On("List", ctx, domain.AssetFilter{}).Return(assets, nil)
	categoryRepo.On("List", ctx).Return([]*domain.Category{category}, nil)

	result, err := service.GetPortfolioOverview(ctx, portfolio.Options{
		AsOf: time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.Equal(t, 1, result.Totals.AssetCount)
	assert.True(t, result.Totals.TotalInvestment.Equal(decimal.NewFromInt(3600)))
	// 12 of 36 months gone: 2400 left
	assert.True(t, result.Totals.TotalCurrentValue.Equal(decimal.NewFromInt(2400)))
	require.Len(t, result.CategorySummaries, 1)
	assert.Equal(t, "IT Equipment", result.CategorySummaries[0].CategoryName)

	assetRepo.AssertExpectations(t)
	categoryRepo.AssertExpectations(t)
}

func TestGetAssetValuation_UsesCategoryDefault(t *testing.T) {
	ctx := context.Background()
	assetRepo := new(MockAssetRepository)
	categoryRepo := new(MockCategoryRepository)
	service := NewDashboardService(assetRepo, categoryRepo)

	categoryID := uuid.New()
	assetID := uuid.New()

	assetRepo.On("GetByID", ctx, assetID).Return(&domain.Asset{
		ID:            assetID,
		Name:          "Workbench",
		CategoryID:    &categoryID,
		PurchaseDate:  datePtr(2020, time.January, 1),
		PurchasePrice: decimal.NewFromInt(120000),
		SalvageValue:  decimal.Zero,
		Condition:     domain.ConditionGood,
		Status:        domain.StatusInUse,
	}, nil)
	categoryRepo.On("GetByID", ctx, categoryID).Return(&domain.Category{
		ID:                     categoryID,
		Name:                   "Machinery",
		DefaultUsefulLifeYears: 10,
	}, nil)

	valuation, err := service.GetAssetValuation(ctx, assetID, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	assert.True(t, valuation.CurrentValue.Equal(decimal.NewFromInt(60000)))
	assert.True(t, valuation.DepreciationAmount.Equal(decimal.NewFromInt(60000)))
	assert.True(t, valuation.DepreciationRatePct.Equal(decimal.NewFromInt(50)))
	assert.Equal(t, 10, valuation.UsefulLifeYears)
}

func TestGetAssetValuation_DanglingCategoryFallsBack(t *testing.T) {
	ctx := context.Background()
	assetRepo := new(MockAssetRepository)
	categoryRepo := new(MockCategoryRepository)
	service := NewDashboardService(assetRepo, categoryRepo)

	categoryID := uuid.New()
	assetID := uuid.New()

	assetRepo.On("GetByID", ctx, assetID).Return(&domain.Asset{
		ID:            assetID,
		Name:          "Orphaned Asset",
		CategoryID:    &categoryID,
		PurchaseDate:  datePtr(2024, time.January, 1),
		PurchasePrice: decimal.NewFromInt(6000),
		SalvageValue:  decimal.Zero,
		Condition:     domain.ConditionGood,
		Status:        domain.StatusInUse,
	}, nil)
	categoryRepo.On("GetByID", ctx, categoryID).Return(nil, assert.AnError)

	valuation, err := service.GetAssetValuation(ctx, assetID, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC))

	require.NoError(t, err, "missing category must not fail the valuation")
	// 5-year fallback: 12/60 months -> 4800 left
	assert.True(t, valuation.CurrentValue.Equal(decimal.NewFromInt(4800)))
	assert.Equal(t, 5, valuation.UsefulLifeYears)
}

func TestGetAssetValuation_ZeroPriceAsset(t *testing.T) {
	ctx := context.Background()
	assetRepo := new(MockAssetRepository)
	categoryRepo := new(MockCategoryRepository)
	service := NewDashboardService(assetRepo, categoryRepo)

	assetID := uuid.New()
	assetRepo.On("GetByID", ctx, assetID).Return(&domain.Asset{
		ID:            assetID,
		Name:          "Donated Desk",
		PurchaseDate:  datePtr(2020, time.January, 1),
		PurchasePrice: decimal.Zero,
		Condition:     domain.ConditionGood,
		Status:        domain.StatusInUse,
	}, nil)

	valuation, err := service.GetAssetValuation(ctx, assetID, time.Now())

	require.NoError(t, err)
	assert.True(t, valuation.CurrentValue.IsZero())
	assert.True(t, valuation.DepreciationRatePct.IsZero(), "zero price must not divide by zero")
}
