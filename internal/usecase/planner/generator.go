package planner

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/assetbook/assetbook-backend/internal/domain"
	"github.com/assetbook/assetbook-backend/internal/usecase/portfolio"
)

// GenerateReplacementTasks turns the current portfolio snapshot into
// actionable replacement tasks
//
// Logic:
//   - Aggregate the snapshot and walk the assets above the alert threshold
//   - Skip assets that already have an open replacement task
//   - Create one task per alerting asset, budgeted at its purchase price
//
// Returns the tasks created in this run. Already-tasked assets produce no
// duplicates, so the generator is safe to run on every report cycle
func GenerateReplacementTasks(
	ctx context.Context,
	assets []*domain.Asset,
	categories []*domain.Category,
	taskRepo domain.ReplacementTaskRepository,
	opts portfolio.Options,
) ([]domain.ReplacementTask, error) {
	// Rank the entire portfolio so every alerting asset is visible, not just
	// the default top 5
	opts.TopN = len(assets) + 1
	result := portfolio.Aggregate(assets, categories, opts)

	threshold := opts.AlertThresholdPct
	if threshold.IsZero() {
		threshold = decimal.NewFromInt(portfolio.DefaultAlertThresholdPct)
	}
	created := make([]domain.ReplacementTask, 0)

	for _, ranked := range result.TopDepreciated {
		if !ranked.DepreciationRatePct.GreaterThan(threshold) {
			// Ranking is sorted descending; everything after this is below
			// the threshold too
			break
		}

		existing, err := taskRepo.GetOpenByAssetID(ctx, ranked.AssetID)
		if err == nil && existing != nil {
			continue
		}

		task := domain.ReplacementTask{
			ID:                  uuid.New(),
			AssetID:             ranked.AssetID,
			DepreciationRatePct: ranked.DepreciationRatePct,
			EstimatedCost:       ranked.PurchasePrice,
			CreatedAt:           time.Now(),
			IsCompleted:         false,
		}

		if err := taskRepo.Create(ctx, &task); err != nil {
			return nil, err
		}
		created = append(created, task)
	}

	return created, nil
}
