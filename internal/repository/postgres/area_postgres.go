package postgres

import (
	"context"
	"database/sql"

	"expedientes/internal/model"
	"expedientes/internal/repository"
)

// AreaPostgres is a PostgreSQL implementation of repository.AreaRepository.
type AreaPostgres struct {
	db *sql.DB
}

// NewAreaPostgres creates a new AreaPostgres repository.
func NewAreaPostgres(db *sql.DB) *AreaPostgres {
	return &AreaPostgres{db: db}
}

var _ repository.AreaRepository = (*AreaPostgres)(nil)

// Create inserts a new area; the ID comes from the DB default.
func (r *AreaPostgres) Create(ctx context.Context, name string) (*model.Area, error) {
	const q = `INSERT INTO areas (name) VALUES ($1) RETURNING id, name`
	var a model.Area
	if err := r.db.QueryRowContext(ctx, q, name).Scan(&a.ID, &a.Name); err != nil {
		return nil, err
	}
	return &a, nil
}

// FindByID fetches a single area by its ID.
func (r *AreaPostgres) FindByID(ctx context.Context, id string) (*model.Area, error) {
	const q = `SELECT id, name FROM areas WHERE id = $1`
	var a model.Area
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&a.ID, &a.Name); err != nil {
		return nil, err
	}
	return &a, nil
}

// FindByName fetches a single area by its unique name.
func (r *AreaPostgres) FindByName(ctx context.Context, name string) (*model.Area, error) {
	const q = `SELECT id, name FROM areas WHERE name = $1`
	var a model.Area
	if err := r.db.QueryRowContext(ctx, q, name).Scan(&a.ID, &a.Name); err != nil {
		return nil, err
	}
	return &a, nil
}

// List returns all areas ordered by name.
func (r *AreaPostgres) List(ctx context.Context) ([]model.Area, error) {
	const q = `SELECT id, name FROM areas ORDER BY name`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Area, 0)
	for rows.Next() {
		var a model.Area
		if err := rows.Scan(&a.ID, &a.Name); err != nil {
			return nil, err
		}
		items = append(items, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Delete removes an area row. Returns sql.ErrNoRows when absent.
// The expedientes guard is the caller's concern.
func (r *AreaPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM areas WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// CountExpedientes counts expedientes referencing the area.
func (r *AreaPostgres) CountExpedientes(ctx context.Context, areaID string) (int, error) {
	const q = `SELECT COUNT(*) FROM expedientes WHERE area_id = $1`
	var n int
	if err := r.db.QueryRowContext(ctx, q, areaID).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
