package repository

import (
	"context"
	"time"

	"github.com/Purvachakravarti/NaologicReflowProject/internal/domain"
)

func (r *Repository) GetOperatorByID(id int64) (*domain.Operator, error) {
	query := `
		SELECT username, password_hash, full_name, email, role, is_active, created_at, version
		FROM operators WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	op := &domain.Operator{ID: id}
	dst := []any{&op.Username, &op.PasswordHash, &op.FullName, &op.Email, &op.Role, &op.IsActive, &op.CreatedAt, &op.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return op, nil
}

func (r *Repository) GetOperatorByUsername(username string) (*domain.Operator, error) {
	query := `
		SELECT id, password_hash, full_name, email, role, is_active, created_at, version
		FROM operators WHERE username = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	op := &domain.Operator{Username: username}
	dst := []any{&op.ID, &op.PasswordHash, &op.FullName, &op.Email, &op.Role, &op.IsActive, &op.CreatedAt, &op.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, username).Scan(dst...); err != nil {
		return nil, err
	}

	return op, nil
}

func (r *Repository) GetAllOperators() ([]*domain.Operator, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT id, username, password_hash, full_name, email, role, is_active, created_at, version
		FROM operators
		ORDER BY id
	`

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	operators := make([]*domain.Operator, 0)
	for rows.Next() {
		op := &domain.Operator{}
		dst := []any{&op.ID, &op.Username, &op.PasswordHash, &op.FullName, &op.Email, &op.Role, &op.IsActive, &op.CreatedAt, &op.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		operators = append(operators, op)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return operators, nil
}

func (r *Repository) CreateOperator(op *domain.Operator) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO operators (username, password_hash, full_name, email, role)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, is_active, created_at, version
	`

	args := []any{op.Username, op.PasswordHash, op.FullName, op.Email, op.Role}
	return r.dbpool.QueryRowContext(ctx, query, args...).Scan(&op.ID, &op.IsActive, &op.CreatedAt, &op.Version)
}

func (r *Repository) UpdateOperator(op *domain.Operator) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		UPDATE operators
		SET password_hash = $1, email = $2, role = $3, is_active = $4, version = version + 1
		WHERE id = $5 AND version = $6
		RETURNING username, full_name, created_at, version
	`

	args := []any{op.PasswordHash, op.Email, op.Role, op.IsActive, op.ID, op.Version}
	dst := []any{&op.Username, &op.FullName, &op.CreatedAt, &op.Version}
	return r.dbpool.QueryRowContext(ctx, query, args...).Scan(dst...)
}

func (r *Repository) DeleteOperator(id int64) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	_, err := r.dbpool.ExecContext(ctx, `DELETE FROM operators WHERE id = $1`, id)
	return err
}

func (r *Repository) CheckOperatorEmailExists(email string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM operators WHERE email = $1)`
	if err := r.dbpool.QueryRowContext(ctx, query, email).Scan(&exists); err != nil {
		return false, err
	}

	return exists, nil
}
