package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Purvachakravarti/NaologicReflowProject/internal/domain"
)

func (r *Repository) GetAllWorkCenters() ([]*domain.WorkCenter, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT id, name, shifts, maintenance_windows, created_at, version
		FROM work_centers
		ORDER BY id
	`

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	centers := make([]*domain.WorkCenter, 0)
	for rows.Next() {
		wc := &domain.WorkCenter{}
		var shiftsRaw, maintenanceRaw []byte
		dst := []any{&wc.ID, &wc.Name, &shiftsRaw, &maintenanceRaw, &wc.CreatedAt, &wc.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(shiftsRaw, &wc.Shifts); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(maintenanceRaw, &wc.MaintenanceWindows); err != nil {
			return nil, err
		}
		centers = append(centers, wc)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return centers, nil
}

func (r *Repository) GetWorkCenter(id int64) (*domain.WorkCenter, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT name, shifts, maintenance_windows, created_at, version
		FROM work_centers
		WHERE id = $1
	`

	wc := &domain.WorkCenter{ID: id}
	var shiftsRaw, maintenanceRaw []byte
	dst := []any{&wc.Name, &shiftsRaw, &maintenanceRaw, &wc.CreatedAt, &wc.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(shiftsRaw, &wc.Shifts); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(maintenanceRaw, &wc.MaintenanceWindows); err != nil {
		return nil, err
	}

	return wc, nil
}

func (r *Repository) CreateWorkCenter(wc *domain.WorkCenter) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	shiftsRaw, err := json.Marshal(wc.Shifts)
	if err != nil {
		return err
	}
	maintenanceRaw, err := json.Marshal(wc.MaintenanceWindows)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO work_centers (name, shifts, maintenance_windows)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, version
	`

	args := []any{wc.Name, shiftsRaw, maintenanceRaw}
	return r.dbpool.QueryRowContext(ctx, query, args...).Scan(&wc.ID, &wc.CreatedAt, &wc.Version)
}

func (r *Repository) UpdateWorkCenter(wc *domain.WorkCenter) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	shiftsRaw, err := json.Marshal(wc.Shifts)
	if err != nil {
		return err
	}
	maintenanceRaw, err := json.Marshal(wc.MaintenanceWindows)
	if err != nil {
		return err
	}

	query := `
		UPDATE work_centers
		SET name = $1, shifts = $2, maintenance_windows = $3, version = version + 1
		WHERE id = $4 AND version = $5
		RETURNING version
	`

	args := []any{wc.Name, shiftsRaw, maintenanceRaw, wc.ID, wc.Version}
	return r.dbpool.QueryRowContext(ctx, query, args...).Scan(&wc.Version)
}

func (r *Repository) DeleteWorkCenter(id int64) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	_, err := r.dbpool.ExecContext(ctx, `DELETE FROM work_centers WHERE id = $1`, id)
	return err
}
