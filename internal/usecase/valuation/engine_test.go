package valuation

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/assetbook/assetbook-backend/internal/domain"
)

func datePtr(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}

func intPtr(i int) *int { return &i }

func newAsset(price int64, salvage int64, purchase *time.Time, lifeYears *int) *domain.Asset {
	return &domain.Asset{
		ID:              uuid.New(),
		Name:            "Test Asset",
		PurchaseDate:    purchase,
		PurchasePrice:   decimal.NewFromInt(price),
		SalvageValue:    decimal.NewFromInt(salvage),
		UsefulLifeYears: lifeYears,
		Condition:       domain.ConditionGood,
		Status:          domain.StatusInUse,
	}
}

func TestCurrentValue_HalfwayThroughLife(t *testing.T) {
	// Purchased 2020-01-01 for 120,000 with a 10-year life (120 months).
	// At 2025-01-01 (60 months) exactly half the value is gone.
	asset := newAsset(120000, 0, datePtr(2020, time.January, 1), intPtr(10))
	asOf := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

	value := CurrentValue(asset, nil, asOf)

	assert.True(t, value.Equal(decimal.NewFromInt(60000)), "expected 60000, got %s", value)
}

func TestCurrentValue_BeyondUsefulLife(t *testing.T) {
	// Same asset at 2031-01-01 (132 months, past the 120-month life)
	asset := newAsset(120000, 0, datePtr(2020, time.January, 1), intPtr(10))
	asOf := time.Date(2031, time.January, 1, 0, 0, 0, 0, time.UTC)

	value := CurrentValue(asset, nil, asOf)

	assert.True(t, value.IsZero(), "fully depreciated asset should be at salvage (0), got %s", value)
}

func TestCurrentValue_FloorsAtSalvageValue(t *testing.T) {
	asset := newAsset(10000, 2000, datePtr(2015, time.June, 1), intPtr(4))
	asOf := time.Date(2030, time.January, 1, 0, 0, 0, 0, time.UTC)

	value := CurrentValue(asset, nil, asOf)

	assert.True(t, value.Equal(decimal.NewFromInt(2000)), "expected salvage 2000, got %s", value)
}

func TestCurrentValue_AtPurchaseDate(t *testing.T) {
	asset := newAsset(5000, 0, datePtr(2024, time.March, 15), intPtr(5))
	asOf := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)

	value := CurrentValue(asset, nil, asOf)

	assert.True(t, value.Equal(decimal.NewFromInt(5000)), "0 months passed should return full price")
}

func TestCurrentValue_BeforePurchaseDate(t *testing.T) {
	// Evaluating a report dated before acquisition must not produce a value
	// above the purchase price
	asset := newAsset(5000, 0, datePtr(2024, time.March, 15), intPtr(5))
	asOf := time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)

	value := CurrentValue(asset, nil, asOf)

	assert.True(t, value.Equal(decimal.NewFromInt(5000)))
}

func TestCurrentValue_DayOfMonthIgnored(t *testing.T) {
	// Month granularity: the 1st and the 31st of the same month age identically
	early := newAsset(12000, 0, datePtr(2024, time.January, 1), intPtr(1))
	late := newAsset(12000, 0, datePtr(2024, time.January, 31), intPtr(1))
	asOf := time.Date(2024, time.July, 10, 0, 0, 0, 0, time.UTC)

	assert.True(t, CurrentValue(early, nil, asOf).Equal(CurrentValue(late, nil, asOf)))
}

func TestCurrentValue_MissingPurchaseDate(t *testing.T) {
	asset := newAsset(8000, 0, nil, intPtr(5))

	value := CurrentValue(asset, nil, time.Date(2030, time.January, 1, 0, 0, 0, 0, time.UTC))

	assert.True(t, value.Equal(decimal.NewFromInt(8000)), "asset without purchase date never depreciates")
}

func TestCurrentValue_MissingPrice(t *testing.T) {
	asset := newAsset(0, 0, datePtr(2020, time.January, 1), intPtr(5))

	value := CurrentValue(asset, nil, time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC))

	assert.True(t, value.IsZero(), "zero price yields zero, not a division error")
}

func TestCurrentValue_NegativePriceDoesNotCrash(t *testing.T) {
	asset := newAsset(-500, 0, datePtr(2020, time.January, 1), intPtr(5))

	value := CurrentValue(asset, nil, time.Date(2022, time.January, 1, 0, 0, 0, 0, time.UTC))

	assert.True(t, value.IsZero(), "malformed negative price degrades to zero")
}

func TestCurrentValue_SalvageAbovePriceClamped(t *testing.T) {
	// Invalid record (salvage > price) must still produce a bounded result
	asset := newAsset(1000, 5000, datePtr(2020, time.January, 1), intPtr(2))

	value := CurrentValue(asset, nil, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC))

	assert.True(t, value.Equal(decimal.NewFromInt(1000)), "salvage clamps to price, got %s", value)
}

func TestCurrentValue_NilAsset(t *testing.T) {
	assert.True(t, CurrentValue(nil, nil, time.Now()).IsZero())
}

func TestCurrentValue_ZeroAsOfMeansNow(t *testing.T) {
	// An old fully-depreciated asset evaluated "now" sits at salvage
	asset := newAsset(3000, 300, datePtr(2000, time.January, 1), intPtr(5))

	value := CurrentValue(asset, nil, time.Time{})

	assert.True(t, value.Equal(decimal.NewFromInt(300)))
}

func TestCurrentValue_CategoryDefaultFallback(t *testing.T) {
	// Category default of 5 years; Asset A has no override, Asset B overrides
	// to 2 years. 24 months later B is fully depreciated, A is at 6000.
	category := &domain.Category{
		ID:                     uuid.New(),
		Name:                   "Machinery",
		DefaultUsefulLifeYears: 5,
	}
	purchase := datePtr(2023, time.January, 1)
	asOf := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

	assetA := newAsset(10000, 0, purchase, nil)
	assetB := newAsset(10000, 0, purchase, intPtr(2))

	valueA := CurrentValue(assetA, category, asOf)
	valueB := CurrentValue(assetB, category, asOf)

	assert.True(t, valueA.Equal(decimal.NewFromInt(6000)), "expected 6000, got %s", valueA)
	assert.True(t, valueB.IsZero(), "2-year override should be fully depreciated, got %s", valueB)
}

func TestCurrentValue_HardcodedFallbackLife(t *testing.T) {
	// No override, no category: 5-year fallback means fully gone after 60 months
	asset := newAsset(6000, 0, datePtr(2020, time.January, 1), nil)

	midway := CurrentValue(asset, nil, time.Date(2022, time.July, 1, 0, 0, 0, 0, time.UTC)) // 30 months
	done := CurrentValue(asset, nil, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC))

	assert.True(t, midway.Equal(decimal.NewFromInt(3000)), "expected 3000, got %s", midway)
	assert.True(t, done.IsZero())
}

func TestCurrentValue_BoundsProperty(t *testing.T) {
	// For every month over a 15-year horizon the value stays within
	// [salvage, price]
	asset := newAsset(9999, 500, datePtr(2020, time.May, 1), intPtr(7))
	price := decimal.NewFromInt(9999)
	salvage := decimal.NewFromInt(500)

	for month := 0; month < 180; month++ {
		asOf := time.Date(2020, time.May+time.Month(month), 1, 0, 0, 0, 0, time.UTC)
		value := CurrentValue(asset, nil, asOf)

		assert.True(t, value.GreaterThanOrEqual(salvage), "month %d: %s below salvage", month, value)
		assert.True(t, value.LessThanOrEqual(price), "month %d: %s above price", month, value)
	}
}

func TestCurrentValue_MonotonicDecay(t *testing.T) {
	asset := newAsset(12345, 45, datePtr(2021, time.February, 1), intPtr(6))

	previous := CurrentValue(asset, nil, time.Date(2021, time.February, 1, 0, 0, 0, 0, time.UTC))
	for month := 1; month < 120; month++ {
		asOf := time.Date(2021, time.February+time.Month(month), 1, 0, 0, 0, 0, time.UTC)
		value := CurrentValue(asset, nil, asOf)

		assert.True(t, value.LessThanOrEqual(previous), "value must never increase over time")
		previous = value
	}
}

func TestEffectiveUsefulLifeYears(t *testing.T) {
	category := &domain.Category{Name: "Vehicles", DefaultUsefulLifeYears: 8}

	tests := []struct {
		name     string
		asset    *domain.Asset
		category *domain.Category
		want     int
	}{
		{"Asset override wins", &domain.Asset{UsefulLifeYears: intPtr(3)}, category, 3},
		{"Category default when no override", &domain.Asset{}, category, 8},
		{"Fallback when neither present", &domain.Asset{}, nil, FallbackUsefulLifeYears},
		{"Non-positive override is ignored", &domain.Asset{UsefulLifeYears: intPtr(0)}, category, 8},
		{"Non-positive category default is ignored", &domain.Asset{}, &domain.Category{DefaultUsefulLifeYears: 0}, FallbackUsefulLifeYears},
		{"Nil asset uses fallback", nil, nil, FallbackUsefulLifeYears},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EffectiveUsefulLifeYears(tt.asset, tt.category))
		})
	}
}

func TestMonthsBetween(t *testing.T) {
	tests := []struct {
		name string
		from time.Time
		to   time.Time
		want int
	}{
		{"Same month", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 3, 28, 0, 0, 0, 0, time.UTC), 0},
		{"One month", time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC), time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), 1},
		{"Across years", time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), 60},
		{"Negative when to precedes from", time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MonthsBetween(tt.from, tt.to))
		})
	}
}
