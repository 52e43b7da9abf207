package httpapi

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/assetbook/assetbook-backend/internal/domain"
	"github.com/assetbook/assetbook-backend/internal/usecase/dashboard"
	"github.com/assetbook/assetbook-backend/internal/usecase/portfolio"
)

// dateFormat is the wire format for calendar dates
const dateFormat = "2006-01-02"

// assetPayload is the request body for creating or updating an asset.
// Monetary fields travel as strings and are coerced to decimals exactly once,
// here at the boundary; the calculation layer never sees raw strings
type assetPayload struct {
	Name            string `json:"name"`
	Description     string `json:"description"`
	CategoryID      string `json:"category_id,omitempty"`
	PurchaseDate    string `json:"purchase_date,omitempty"` // YYYY-MM-DD
	PurchasePrice   string `json:"purchase_price"`
	UsefulLifeYears *int   `json:"useful_life_years,omitempty"`
	SalvageValue    string `json:"salvage_value,omitempty"`
	Condition       string `json:"condition,omitempty"`
	Status          string `json:"status,omitempty"`
}

// parsedAssetPayload carries the strictly-typed result of boundary coercion
type parsedAssetPayload struct {
	CategoryID    *uuid.UUID
	PurchaseDate  *time.Time
	PurchasePrice decimal.Decimal
	SalvageValue  decimal.Decimal
}

func (p *assetPayload) parse() (*parsedAssetPayload, error) {
	parsed := &parsedAssetPayload{
		PurchasePrice: decimal.Zero,
		SalvageValue:  decimal.Zero,
	}

	if p.CategoryID != "" {
		id, err := uuid.Parse(p.CategoryID)
		if err != nil {
			return nil, fmt.Errorf("invalid category_id format: %v", err)
		}
		parsed.CategoryID = &id
	}

	if p.PurchaseDate != "" {
		date, err := time.Parse(dateFormat, p.PurchaseDate)
		if err != nil {
			return nil, fmt.Errorf("invalid purchase_date format, want YYYY-MM-DD: %v", err)
		}
		parsed.PurchaseDate = &date
	}

	if p.PurchasePrice != "" {
		price, err := decimal.NewFromString(p.PurchasePrice)
		if err != nil {
			return nil, fmt.Errorf("invalid purchase_price format: %v", err)
		}
		parsed.PurchasePrice = price
	}

	if p.SalvageValue != "" {
		salvage, err := decimal.NewFromString(p.SalvageValue)
		if err != nil {
			return nil, fmt.Errorf("invalid salvage_value format: %v", err)
		}
		parsed.SalvageValue = salvage
	}

	return parsed, nil
}

type assetResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	CategoryID      string `json:"category_id,omitempty"`
	PurchaseDate    string `json:"purchase_date,omitempty"`
	PurchasePrice   string `json:"purchase_price"`
	UsefulLifeYears *int   `json:"useful_life_years,omitempty"`
	SalvageValue    string `json:"salvage_value"`
	Condition       string `json:"condition"`
	Status          string `json:"status"`
	DisposedAt      string `json:"disposed_at,omitempty"`
	CreatedAt       string `json:"created_at"`
	UpdatedAt       string `json:"updated_at"`
}

func toAssetResponse(asset *domain.Asset) assetResponse {
	resp := assetResponse{
		ID:              asset.ID.String(),
		Name:            asset.Name,
		Description:     asset.Description,
		PurchasePrice:   asset.PurchasePrice.String(),
		UsefulLifeYears: asset.UsefulLifeYears,
		SalvageValue:    asset.SalvageValue.String(),
		Condition:       string(asset.Condition),
		Status:          string(asset.Status),
		CreatedAt:       asset.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       asset.UpdatedAt.Format(time.RFC3339),
	}
	if asset.CategoryID != nil {
		resp.CategoryID = asset.CategoryID.String()
	}
	if asset.PurchaseDate != nil {
		resp.PurchaseDate = asset.PurchaseDate.Format(dateFormat)
	}
	if asset.DisposedAt != nil {
		resp.DisposedAt = asset.DisposedAt.Format(time.RFC3339)
	}
	return resp
}

type categoryPayload struct {
	Name                   string `json:"name"`
	Description            string `json:"description"`
	DefaultUsefulLifeYears int    `json:"default_useful_life_years"`
}

type categoryResponse struct {
	ID                     string `json:"id"`
	Name                   string `json:"name"`
	Description            string `json:"description"`
	DefaultUsefulLifeYears int    `json:"default_useful_life_years"`
	CreatedAt              string `json:"created_at"`
	UpdatedAt              string `json:"updated_at"`
}

func toCategoryResponse(category *domain.Category) categoryResponse {
	return categoryResponse{
		ID:                     category.ID.String(),
		Name:                   category.Name,
		Description:            category.Description,
		DefaultUsefulLifeYears: category.DefaultUsefulLifeYears,
		CreatedAt:              category.CreatedAt.Format(time.RFC3339),
		UpdatedAt:              category.UpdatedAt.Format(time.RFC3339),
	}
}

type maintenancePayload struct {
	Date        string `json:"date,omitempty"` // YYYY-MM-DD, defaults to today
	Description string `json:"description"`
	Cost        string `json:"cost,omitempty"`
	PerformedBy string `json:"performed_by,omitempty"`
}

type maintenanceResponse struct {
	ID          string `json:"id"`
	AssetID     string `json:"asset_id"`
	Date        string `json:"date"`
	Description string `json:"description"`
	Cost        string `json:"cost"`
	PerformedBy string `json:"performed_by,omitempty"`
}

func toMaintenanceResponse(record *domain.MaintenanceRecord) maintenanceResponse {
	return maintenanceResponse{
		ID:          record.ID.String(),
		AssetID:     record.AssetID.String(),
		Date:        record.Date.Format(dateFormat),
		Description: record.Description,
		Cost:        record.Cost.String(),
		PerformedBy: record.PerformedBy,
	}
}

type valuationResponse struct {
	AssetID             string `json:"asset_id"`
	Name                string `json:"name"`
	AsOf                string `json:"as_of"`
	PurchasePrice       string `json:"purchase_price"`
	CurrentValue        string `json:"current_value"`
	DepreciationAmount  string `json:"depreciation_amount"`
	DepreciationRatePct string `json:"depreciation_rate_pct"`
	UsefulLifeYears     int    `json:"useful_life_years"`
}

func toValuationResponse(v *dashboard.AssetValuation) valuationResponse {
	return valuationResponse{
		AssetID:             v.AssetID.String(),
		Name:                v.Name,
		AsOf:                v.AsOf.Format(dateFormat),
		PurchasePrice:       v.PurchasePrice.String(),
		CurrentValue:        v.CurrentValue.String(),
		DepreciationAmount:  v.DepreciationAmount.String(),
		DepreciationRatePct: v.DepreciationRatePct.StringFixed(2),
		UsefulLifeYears:     v.UsefulLifeYears,
	}
}

type categorySummaryResponse struct {
	CategoryID          string `json:"category_id"`
	CategoryName        string `json:"category_name"`
	AssetCount          int    `json:"asset_count"`
	OriginalValue       string `json:"original_value"`
	CurrentValue        string `json:"current_value"`
	TotalDepreciation   string `json:"total_depreciation"`
	DepreciationRatePct string `json:"depreciation_rate_pct"`
}

type rankedAssetResponse struct {
	AssetID             string `json:"asset_id"`
	Name                string `json:"name"`
	PurchasePrice       string `json:"purchase_price"`
	CurrentValue        string `json:"current_value"`
	DepreciationAmount  string `json:"depreciation_amount"`
	DepreciationRatePct string `json:"depreciation_rate_pct"`
}

type portfolioTotalsResponse struct {
	AssetCount                 int    `json:"asset_count"`
	TotalInvestment            string `json:"total_investment"`
	TotalCurrentValue          string `json:"total_current_value"`
	TotalDepreciation          string `json:"total_depreciation"`
	OverallDepreciationRatePct string `json:"overall_depreciation_rate_pct"`
}

type portfolioSummaryResponse struct {
	AsOf              string                    `json:"as_of"`
	CategorySummaries []categorySummaryResponse `json:"category_summaries"`
	TopDepreciated    []rankedAssetResponse     `json:"top_depreciated"`
	AlertCount        int                       `json:"alert_count"`
	Totals            portfolioTotalsResponse   `json:"totals"`
}

func toPortfolioSummaryResponse(result *portfolio.Result, asOf time.Time) portfolioSummaryResponse {
	summaries := make([]categorySummaryResponse, 0, len(result.CategorySummaries))
	for _, s := range result.CategorySummaries {
		summaries = append(summaries, categorySummaryResponse{
			CategoryID:          s.CategoryID.String(),
			CategoryName:        s.CategoryName,
			AssetCount:          s.AssetCount,
			OriginalValue:       s.OriginalValue.String(),
			CurrentValue:        s.CurrentValue.String(),
			TotalDepreciation:   s.TotalDepreciation.String(),
			DepreciationRatePct: s.DepreciationRatePct.StringFixed(2),
		})
	}

	ranked := make([]rankedAssetResponse, 0, len(result.TopDepreciated))
	for _, r := range result.TopDepreciated {
		ranked = append(ranked, rankedAssetResponse{
			AssetID:             r.AssetID.String(),
			Name:                r.Name,
			PurchasePrice:       r.PurchasePrice.String(),
			CurrentValue:        r.CurrentValue.String(),
			DepreciationAmount:  r.DepreciationAmount.String(),
			DepreciationRatePct: r.DepreciationRatePct.StringFixed(2),
		})
	}

	return portfolioSummaryResponse{
		AsOf:              asOf.Format(dateFormat),
		CategorySummaries: summaries,
		TopDepreciated:    ranked,
		AlertCount:        result.AlertCount,
		Totals: portfolioTotalsResponse{
			AssetCount:                 result.Totals.AssetCount,
			TotalInvestment:            result.Totals.TotalInvestment.String(),
			TotalCurrentValue:          result.Totals.TotalCurrentValue.String(),
			TotalDepreciation:          result.Totals.TotalDepreciation.String(),
			OverallDepreciationRatePct: result.Totals.OverallDepreciationRatePct.StringFixed(2),
		},
	}
}

type replacementTaskResponse struct {
	ID                  string `json:"id"`
	AssetID             string `json:"asset_id"`
	DepreciationRatePct string `json:"depreciation_rate_pct"`
	EstimatedCost       string `json:"estimated_cost"`
	CreatedAt           string `json:"created_at"`
	IsCompleted         bool   `json:"is_completed"`
	CompletedAt         string `json:"completed_at,omitempty"`
}

func toReplacementTaskResponse(task *domain.ReplacementTask) replacementTaskResponse {
	resp := replacementTaskResponse{
		ID:                  task.ID.String(),
		AssetID:             task.AssetID.String(),
		DepreciationRatePct: task.DepreciationRatePct.StringFixed(2),
		EstimatedCost:       task.EstimatedCost.String(),
		CreatedAt:           task.CreatedAt.Format(time.RFC3339),
		IsCompleted:         task.IsCompleted,
	}
	if task.CompletedAt != nil {
		resp.CompletedAt = task.CompletedAt.Format(time.RFC3339)
	}
	return resp
}
