package postgres

import (
	"context"
	"database/sql"
	"time"

	"expedientes/internal/model"
	"expedientes/internal/repository"
)

// ExpedientePostgres is a PostgreSQL implementation of repository.ExpedienteRepository.
type ExpedientePostgres struct {
	db *sql.DB
}

// NewExpedientePostgres creates a new ExpedientePostgres repository.
func NewExpedientePostgres(db *sql.DB) *ExpedientePostgres {
	return &ExpedientePostgres{db: db}
}

var _ repository.ExpedienteRepository = (*ExpedientePostgres)(nil)

const expedienteColumns = `id, number, state, created_at, updated_at, responsible_user_id, area_id`

func scanExpediente(row *sql.Row) (*model.Expediente, error) {
	var e model.Expediente
	if err := row.Scan(
		&e.ID,
		&e.Number,
		&e.State,
		&e.CreatedAt,
		&e.UpdatedAt,
		&e.ResponsibleUserID,
		&e.AreaID,
	); err != nil {
		return nil, err
	}
	return &e, nil
}

// Create inserts a new expediente row and returns the stored record.
func (r *ExpedientePostgres) Create(ctx context.Context, exp *model.Expediente) (*model.Expediente, error) {
	const q = `
		INSERT INTO expedientes (id, number, state, created_at, updated_at, responsible_user_id, area_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + expedienteColumns
	row := r.db.QueryRowContext(ctx, q,
		exp.ID,
		exp.Number,
		exp.State,
		exp.CreatedAt,
		exp.UpdatedAt,
		exp.ResponsibleUserID,
		exp.AreaID,
	)
	return scanExpediente(row)
}

// Update rewrites the mutable columns of an expediente by ID.
func (r *ExpedientePostgres) Update(ctx context.Context, exp *model.Expediente) (*model.Expediente, error) {
	const q = `
		UPDATE expedientes
		SET number = $2, state = $3, responsible_user_id = $4, area_id = $5, updated_at = $6
		WHERE id = $1
		RETURNING ` + expedienteColumns
	row := r.db.QueryRowContext(ctx, q,
		exp.ID,
		exp.Number,
		exp.State,
		exp.ResponsibleUserID,
		exp.AreaID,
		exp.UpdatedAt,
	)
	return scanExpediente(row)
}

// FindByID fetches a single expediente by its ID.
func (r *ExpedientePostgres) FindByID(ctx context.Context, id string) (*model.Expediente, error) {
	const q = `SELECT ` + expedienteColumns + ` FROM expedientes WHERE id = $1`
	return scanExpediente(r.db.QueryRowContext(ctx, q, id))
}

// List returns expedientes with joined display fields, newest first.
func (r *ExpedientePostgres) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.Expediente], error) {
	const qCount = `SELECT COUNT(*) FROM expedientes`
	var total int
	if err := r.db.QueryRowContext(ctx, qCount).Scan(&total); err != nil {
		return nil, err
	}

	const qList = `
		SELECT e.id, e.number, e.state, e.created_at, e.updated_at,
		       e.responsible_user_id, e.area_id, a.name, u.username
		FROM expedientes e
		LEFT JOIN areas a ON e.area_id = a.id
		LEFT JOIN users u ON e.responsible_user_id = u.id
		ORDER BY e.created_at DESC, e.id DESC
		LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, qList, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Expediente, 0)
	for rows.Next() {
		var e model.Expediente
		var areaName, username sql.NullString
		if err := rows.Scan(
			&e.ID,
			&e.Number,
			&e.State,
			&e.CreatedAt,
			&e.UpdatedAt,
			&e.ResponsibleUserID,
			&e.AreaID,
			&areaName,
			&username,
		); err != nil {
			return nil, err
		}
		e.AreaName = areaName.String
		e.ResponsibleUsername = username.String
		items = append(items, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.Expediente]{Items: items, Total: total}, nil
}

// Delete removes an expediente row. Returns sql.ErrNoRows when absent.
// The documents guard is the caller's concern.
func (r *ExpedientePostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM expedientes WHERE id = $1`
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

// TouchUpdatedAt sets updated_at without touching any other column.
func (r *ExpedientePostgres) TouchUpdatedAt(ctx context.Context, id string, at time.Time) error {
	const q = `UPDATE expedientes SET updated_at = $2 WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id, at)
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
