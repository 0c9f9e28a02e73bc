package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Purvachakravarti/NaologicReflowProject/internal/domain"
)

// InsertReflowRun persists a completed reflow result and, in the same
// transaction, writes the new start/end back onto every work order the run
// touched. A run that only reorders the explanation without moving any work
// order still gets a row, for audit purposes.
func (r *Repository) InsertReflowRun(result *domain.ReflowResult, changed []*domain.WorkOrder) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, wo := range changed {
		query := `
			UPDATE work_orders
			SET start_date = $1, end_date = $2, version = version + 1
			WHERE id = $3 AND version = $4
			RETURNING version
		`
		args := []any{wo.Start.Time(), wo.End.Time(), wo.ID, wo.Version}
		if err := tx.QueryRowContext(ctx, query, args...).Scan(&wo.Version); err != nil {
			return err
		}
	}

	updatedRaw, err := json.Marshal(result.UpdatedWorkOrders)
	if err != nil {
		return err
	}
	changesRaw, err := json.Marshal(result.Changes)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO reflow_runs (
			explanation, moved_count, total_delay_minutes, updated_work_orders, changes
		)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`
	args := []any{result.Explanation, result.Metrics.MovedCount, result.Metrics.TotalDelayMinutes, updatedRaw, changesRaw}
	if err := tx.QueryRowContext(ctx, query, args...).Scan(&result.ID, &result.CreatedAt); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *Repository) GetReflowRun(id int64) (*domain.ReflowResult, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT id, explanation, moved_count, total_delay_minutes, updated_work_orders, changes, created_at
		FROM reflow_runs
		WHERE id = $1
	`

	return scanReflowRun(r.dbpool.QueryRowContext(ctx, query, id).Scan)
}

func (r *Repository) GetLatestReflowRun() (*domain.ReflowResult, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT id, explanation, moved_count, total_delay_minutes, updated_work_orders, changes, created_at
		FROM reflow_runs
		ORDER BY id DESC
		LIMIT 1
	`

	return scanReflowRun(r.dbpool.QueryRowContext(ctx, query).Scan)
}

func scanReflowRun(scan func(dst ...any) error) (*domain.ReflowResult, error) {
	result := &domain.ReflowResult{}
	var updatedRaw, changesRaw []byte
	dst := []any{&result.ID, &result.Explanation, &result.Metrics.MovedCount, &result.Metrics.TotalDelayMinutes, &updatedRaw, &changesRaw, &result.CreatedAt}
	if err := scan(dst...); err != nil {
		return nil, err
	}

	if err := json.Unmarshal(updatedRaw, &result.UpdatedWorkOrders); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(changesRaw, &result.Changes); err != nil {
		return nil, err
	}

	return result, nil
}
