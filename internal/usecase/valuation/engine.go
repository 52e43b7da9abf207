package valuation

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/assetbook/assetbook-backend/internal/domain"
)

// FallbackUsefulLifeYears applies when neither the asset nor its category
// specifies a useful life
const FallbackUsefulLifeYears = 5

// EffectiveUsefulLifeYears resolves the useful life for an asset
// Resolution chain: asset override -> category default -> FallbackUsefulLifeYears
// The result is always positive
func EffectiveUsefulLifeYears(asset *domain.Asset, category *domain.Category) int {
	if asset != nil && asset.UsefulLifeYears != nil && *asset.UsefulLifeYears > 0 {
		return *asset.UsefulLifeYears
	}
	if category != nil && category.DefaultUsefulLifeYears > 0 {
		return category.DefaultUsefulLifeYears
	}
	return FallbackUsefulLifeYears
}

// MonthsBetween returns the number of whole calendar months between two
// instants, using year/month components only. Day-of-month is ignored, so an
// asset bought on the 31st starts aging on the 1st of the next month boundary
// like one bought on the 1st
func MonthsBetween(from, to time.Time) int {
	years := to.Year() - from.Year()
	months := int(to.Month()) - int(from.Month())
	return years*12 + months
}

// CurrentValue computes the depreciated book value of an asset as of the
// given instant using straight-line depreciation with month granularity
// Logic:
//  1. No purchase date or no positive price -> asset is not yet depreciable
//  2. Resolve useful life (asset override -> category default -> fallback)
//  3. monthsPassed <= 0 -> full purchase price
//  4. monthsPassed >= life in months -> salvage value
//  5. Otherwise linear: price - (price-salvage)/totalMonths * monthsPassed
//
// The result is always within [salvageValue, purchasePrice] and never
// negative, even for malformed inputs (salvage above price, negative salvage)
// A zero asOf means "now"
func CurrentValue(asset *domain.Asset, category *domain.Category, asOf time.Time) decimal.Decimal {
	if asset == nil {
		return decimal.Zero
	}

	price := asset.PurchasePrice
	if !price.IsPositive() {
		// Missing or malformed price: degrade to zero, never divide by it
		return decimal.Zero
	}

	if asset.PurchaseDate == nil {
		// Not yet depreciable: full price
		return price
	}

	if asOf.IsZero() {
		asOf = time.Now()
	}

	// Clamp salvage into [0, price] so malformed records still produce a
	// sane bounded result
	salvage := asset.SalvageValue
	if salvage.IsNegative() {
		salvage = decimal.Zero
	}
	if salvage.GreaterThan(price) {
		salvage = price
	}

	totalMonths := EffectiveUsefulLifeYears(asset, category) * 12
	monthsPassed := MonthsBetween(*asset.PurchaseDate, asOf)

	if monthsPassed <= 0 {
		// Asset not yet aged (evaluated at or before the purchase month)
		return price
	}

	if monthsPassed >= totalMonths {
		// Fully depreciated
		return salvage
	}

	// Multiply before dividing so evenly-divisible inputs stay exact
	accumulated := price.Sub(salvage).
		Mul(decimal.NewFromInt(int64(monthsPassed))).
		Div(decimal.NewFromInt(int64(totalMonths)))
	result := price.Sub(accumulated)

	// Guard against rounding drift at the edges
	if result.LessThan(salvage) {
		return salvage
	}
	if result.GreaterThan(price) {
		return price
	}

	return result
}
