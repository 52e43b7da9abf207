package portfolio

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/assetbook/assetbook-backend/internal/domain"
	"github.com/assetbook/assetbook-backend/internal/usecase/valuation"
)

const (
	// DefaultTopN is the length of the most-depreciated ranking when the
	// caller does not ask for a specific N
	DefaultTopN = 5

	// DefaultAlertThresholdPct is the depreciation rate above which an asset
	// counts toward the replacement alert
	DefaultAlertThresholdPct = 80
)

var oneHundred = decimal.NewFromInt(100)

// Options controls an aggregation run
// The zero value means: as of now, top 5, 80% alert threshold, active assets only
type Options struct {
	AsOf              time.Time
	TopN              int
	AlertThresholdPct decimal.Decimal

	// IncludeDisposed adds soft-deleted assets back in, for historical reports
	IncludeDisposed bool
}

// CategorySummary is the per-category rollup used by tabular breakdowns
type CategorySummary struct {
	CategoryID          uuid.UUID
	CategoryName        string
	AssetCount          int
	OriginalValue       decimal.Decimal
	CurrentValue        decimal.Decimal
	TotalDepreciation   decimal.Decimal
	DepreciationRatePct decimal.Decimal
}

// RankedAsset is one row of the most-depreciated ranking
type RankedAsset struct {
	AssetID             uuid.UUID
	Name                string
	PurchasePrice       decimal.Decimal
	CurrentValue        decimal.Decimal
	DepreciationAmount  decimal.Decimal
	DepreciationRatePct decimal.Decimal
}

// Totals carries the portfolio-wide KPI numbers
type Totals struct {
	AssetCount                 int
	TotalInvestment            decimal.Decimal
	TotalCurrentValue          decimal.Decimal
	TotalDepreciation          decimal.Decimal
	OverallDepreciationRatePct decimal.Decimal
}

// Result is the full output of one aggregation run
type Result struct {
	CategorySummaries []CategorySummary
	TopDepreciated    []RankedAsset
	AlertCount        int
	Totals            Totals
}

// Aggregate turns a snapshot of assets and categories into the three derived
// reporting views plus portfolio-wide totals
// Logic:
//  1. Index categories by ID and value every asset via the valuation engine
//  2. Category summaries: group categorized assets, skip empty categories,
//     rate is 0 when a category's original value is 0
//  3. Top-N: assets with positive price ranked by depreciation rate
//     descending, ties broken by ascending asset ID so output is deterministic
//  4. Alert count: assets whose rate exceeds the threshold; zero-price assets
//     never alert
//
// Uncategorized assets are absent from the category view but included in the
// totals, so the category sum never exceeds the portfolio sum
// Stateless and side-effect free; safe to call concurrently
func Aggregate(assets []*domain.Asset, categories []*domain.Category, opts Options) Result {
	if opts.TopN <= 0 {
		opts.TopN = DefaultTopN
	}
	if opts.AlertThresholdPct.IsZero() {
		opts.AlertThresholdPct = decimal.NewFromInt(DefaultAlertThresholdPct)
	}
	if opts.AsOf.IsZero() {
		opts.AsOf = time.Now()
	}

	categoryIndex := make(map[uuid.UUID]*domain.Category, len(categories))
	for _, category := range categories {
		categoryIndex[category.ID] = category
	}

	totals := Totals{
		TotalInvestment:   decimal.Zero,
		TotalCurrentValue: decimal.Zero,
	}
	perCategory := make(map[uuid.UUID]*CategorySummary)
	ranked := make([]RankedAsset, 0, len(assets))
	alertCount := 0

	for _, asset := range assets {
		if asset == nil {
			continue
		}
		if asset.IsDisposed() && !opts.IncludeDisposed {
			continue
		}

		var category *domain.Category
		if asset.CategoryID != nil {
			category = categoryIndex[*asset.CategoryID]
		}

		currentValue := valuation.CurrentValue(asset, category, opts.AsOf)

		totals.AssetCount++
		totals.TotalInvestment = totals.TotalInvestment.Add(asset.PurchasePrice)
		totals.TotalCurrentValue = totals.TotalCurrentValue.Add(currentValue)

		// Category rollup (uncategorized assets only count toward totals)
		if asset.CategoryID != nil {
			summary, ok := perCategory[*asset.CategoryID]
			if !ok {
				summary = &CategorySummary{
					CategoryID:    *asset.CategoryID,
					OriginalValue: decimal.Zero,
					CurrentValue:  decimal.Zero,
				}
				if category != nil {
					summary.CategoryName = category.Name
				}
				perCategory[*asset.CategoryID] = summary
			}
			summary.AssetCount++
			summary.OriginalValue = summary.OriginalValue.Add(asset.PurchasePrice)
			summary.CurrentValue = summary.CurrentValue.Add(currentValue)
		}

		// Ranking and alerting only make sense for assets with a real price
		if asset.PurchasePrice.IsPositive() {
			depreciation := asset.PurchasePrice.Sub(currentValue)
			ratePct := depreciation.Div(asset.PurchasePrice).Mul(oneHundred)

			ranked = append(ranked, RankedAsset{
				AssetID:             asset.ID,
				Name:                asset.Name,
				PurchasePrice:       asset.PurchasePrice,
				CurrentValue:        currentValue,
				DepreciationAmount:  depreciation,
				DepreciationRatePct: ratePct,
			})

			if ratePct.GreaterThan(opts.AlertThresholdPct) {
				alertCount++
			}
		}
	}

	totals.TotalDepreciation = totals.TotalInvestment.Sub(totals.TotalCurrentValue)
	// Explicit zero branch instead of distorting the denominator
	if totals.TotalInvestment.IsPositive() {
		totals.OverallDepreciationRatePct = totals.TotalDepreciation.
			Div(totals.TotalInvestment).Mul(oneHundred)
	} else {
		totals.OverallDepreciationRatePct = decimal.Zero
	}

	summaries := make([]CategorySummary, 0, len(perCategory))
	for _, summary := range perCategory {
		summary.TotalDepreciation = summary.OriginalValue.Sub(summary.CurrentValue)
		if summary.OriginalValue.IsPositive() {
			summary.DepreciationRatePct = summary.TotalDepreciation.
				Div(summary.OriginalValue).Mul(oneHundred)
		} else {
			summary.DepreciationRatePct = decimal.Zero
		}
		summaries = append(summaries, *summary)
	}
	// Stable output order for rendering: by category name, then ID
	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].CategoryName != summaries[j].CategoryName {
			return summaries[i].CategoryName < summaries[j].CategoryName
		}
		return summaries[i].CategoryID.String() < summaries[j].CategoryID.String()
	})

	// Rank by rate descending, ascending asset ID on ties
	sort.Slice(ranked, func(i, j int) bool {
		if !ranked[i].DepreciationRatePct.Equal(ranked[j].DepreciationRatePct) {
			return ranked[i].DepreciationRatePct.GreaterThan(ranked[j].DepreciationRatePct)
		}
		return ranked[i].AssetID.String() < ranked[j].AssetID.String()
	})
	if len(ranked) > opts.TopN {
		ranked = ranked[:opts.TopN]
	}

	return Result{
		CategorySummaries: summaries,
		TopDepreciated:    ranked,
		AlertCount:        alertCount,
		Totals:            totals,
	}
}
