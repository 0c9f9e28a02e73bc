package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Purvachakravarti/NaologicReflowProject/internal/domain"
)

func (r *Repository) GetAllWorkOrders() ([]*domain.WorkOrder, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT id, work_order_number, manufacturing_order_id, work_center_id, start_date, end_date,
		       duration_minutes, setup_time_minutes, is_maintenance, depends_on_work_order_ids,
		       created_at, version
		FROM work_orders
		ORDER BY id
	`

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]*domain.WorkOrder, 0)
	for rows.Next() {
		wo, err := scanWorkOrder(rows.Scan)
		if err != nil {
			return nil, err
		}
		orders = append(orders, wo)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

func (r *Repository) GetWorkOrdersByWorkCenter(workCenterID int64) ([]*domain.WorkOrder, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT id, work_order_number, manufacturing_order_id, work_center_id, start_date, end_date,
		       duration_minutes, setup_time_minutes, is_maintenance, depends_on_work_order_ids,
		       created_at, version
		FROM work_orders
		WHERE work_center_id = $1
		ORDER BY id
	`

	rows, err := r.dbpool.QueryContext(ctx, query, workCenterID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]*domain.WorkOrder, 0)
	for rows.Next() {
		wo, err := scanWorkOrder(rows.Scan)
		if err != nil {
			return nil, err
		}
		orders = append(orders, wo)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

func (r *Repository) GetWorkOrder(id int64) (*domain.WorkOrder, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT id, work_order_number, manufacturing_order_id, work_center_id, start_date, end_date,
		       duration_minutes, setup_time_minutes, is_maintenance, depends_on_work_order_ids,
		       created_at, version
		FROM work_orders
		WHERE id = $1
	`

	row := r.dbpool.QueryRowContext(ctx, query, id)
	return scanWorkOrder(row.Scan)
}

func (r *Repository) CreateWorkOrder(wo *domain.WorkOrder) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	dependsRaw, err := json.Marshal(wo.DependsOnWorkOrderIDs)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO work_orders (
			work_order_number, manufacturing_order_id, work_center_id, start_date, end_date,
			duration_minutes, setup_time_minutes, is_maintenance, depends_on_work_order_ids
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, version
	`

	args := []any{
		wo.WorkOrderNumber, wo.ManufacturingOrderID, wo.WorkCenterID,
		wo.Start.Time(), wo.End.Time(), wo.DurationMinutes, wo.SetupTimeMinutes,
		wo.IsMaintenance, dependsRaw,
	}
	return r.dbpool.QueryRowContext(ctx, query, args...).Scan(&wo.ID, &wo.CreatedAt, &wo.Version)
}

// UpdateWorkOrderSchedule is the narrow update a reflow run performs: only
// start/end move, guarded by the optimistic lock so a concurrent edit to
// the same work order's other fields cannot be silently clobbered.
func (r *Repository) UpdateWorkOrderSchedule(wo *domain.WorkOrder) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		UPDATE work_orders
		SET start_date = $1, end_date = $2, version = version + 1
		WHERE id = $3 AND version = $4
		RETURNING version
	`

	args := []any{wo.Start.Time(), wo.End.Time(), wo.ID, wo.Version}
	return r.dbpool.QueryRowContext(ctx, query, args...).Scan(&wo.Version)
}

func (r *Repository) DeleteWorkOrder(id int64) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	_, err := r.dbpool.ExecContext(ctx, `DELETE FROM work_orders WHERE id = $1`, id)
	return err
}

func scanWorkOrder(scan func(dst ...any) error) (*domain.WorkOrder, error) {
	wo := &domain.WorkOrder{}
	var start, end time.Time
	var dependsRaw []byte

	dst := []any{
		&wo.ID, &wo.WorkOrderNumber, &wo.ManufacturingOrderID, &wo.WorkCenterID,
		&start, &end, &wo.DurationMinutes, &wo.SetupTimeMinutes, &wo.IsMaintenance,
		&dependsRaw, &wo.CreatedAt, &wo.Version,
	}
	if err := scan(dst...); err != nil {
		return nil, err
	}

	wo.Start = domain.NewInstant(start)
	wo.End = domain.NewInstant(end)
	if err := json.Unmarshal(dependsRaw, &wo.DependsOnWorkOrderIDs); err != nil {
		return nil, err
	}

	return wo, nil
}
