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

// replacementTaskRepository implements domain.ReplacementTaskRepository
type replacementTaskRepository struct {
	db *DB
}

// NewReplacementTaskRepository creates a new replacement task repository
func NewReplacementTaskRepository(db *DB) domain.ReplacementTaskRepository {
	return &replacementTaskRepository{db: db}
}

func scanReplacementTask(scan func(dest ...interface{}) error) (*domain.ReplacementTask, error) {
	var task domain.ReplacementTask
	var rateStr string
	var costStr string
	var completedAt sql.NullTime

	err := scan(
		&task.ID,
		&task.AssetID,
		&rateStr,
		&costStr,
		&task.CreatedAt,
		&task.IsCompleted,
		&completedAt,
	)
	if err != nil {
		return nil, err
	}

	rate, err := decimal.NewFromString(rateStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse depreciation_rate_pct: %w", err)
	}
	task.DepreciationRatePct = rate

	cost, err := decimal.NewFromString(costStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse estimated_cost: %w", err)
	}
	task.EstimatedCost = cost

	if completedAt.Valid {
		t := completedAt.Time
		task.CompletedAt = &t
	}

	return &task, nil
}

// Create creates a new replacement task
func (r *replacementTaskRepository) Create(ctx context.Context, task *domain.ReplacementTask) error {
	query := `
		INSERT INTO replacement_tasks (id, asset_id, depreciation_rate_pct, estimated_cost, created_at, is_completed, completed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	var completedAt interface{}
	if task.CompletedAt != nil {
		completedAt = *task.CompletedAt
	}

	_, err := r.db.ExecContext(ctx, query,
		task.ID,
		task.AssetID,
		task.DepreciationRatePct.String(),
		task.EstimatedCost.String(),
		task.CreatedAt,
		task.IsCompleted,
		completedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create replacement task: %w", err)
	}

	return nil
}

// GetOpenByAssetID retrieves the open (not completed) task for an asset
func (r *replacementTaskRepository) GetOpenByAssetID(ctx context.Context, assetID uuid.UUID) (*domain.ReplacementTask, error) {
	query := `
		SELECT id, asset_id, depreciation_rate_pct, estimated_cost, created_at, is_completed, completed_at
		FROM replacement_tasks
		WHERE asset_id = $1 AND is_completed = FALSE
		ORDER BY created_at DESC
		LIMIT 1
	`

	row := r.db.QueryRowContext(ctx, query, assetID)
	task, err := scanReplacementTask(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("no open replacement task for asset %s: %w", assetID, err)
		}
		return nil, fmt.Errorf("failed to get open replacement task: %w", err)
	}

	return task, nil
}

// List retrieves all replacement tasks, newest first
func (r *replacementTaskRepository) List(ctx context.Context) ([]*domain.ReplacementTask, error) {
	query := `
		SELECT id, asset_id, depreciation_rate_pct, estimated_cost, created_at, is_completed, completed_at
		FROM replacement_tasks
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list replacement tasks: %w", err)
	}
	defer rows.Close()

	tasks := make([]*domain.ReplacementTask, 0)
	for rows.Next() {
		task, err := scanReplacementTask(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan replacement task row: %w", err)
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate replacement task rows: %w", err)
	}

	return tasks, nil
}

// MarkCompleted flags a task as done
func (r *replacementTaskRepository) MarkCompleted(ctx context.Context, id uuid.UUID, at time.Time) error {
	query := `
		UPDATE replacement_tasks
		SET is_completed = TRUE, completed_at = $2
		WHERE id = $1 AND is_completed = FALSE
	`

	result, err := r.db.ExecContext(ctx, query, id, at)
	if err != nil {
		return fmt.Errorf("failed to mark replacement task completed: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check completion result: %w", err)
	}
	if rows == 0 {
		return errors.New("replacement task not found or already completed")
	}

	return nil
}
