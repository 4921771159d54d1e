package postgres

import (
	"context"
	"database/sql"
	"time"

	"expedientes/internal/model"
	"expedientes/internal/repository"
)

// DocumentPostgres is a PostgreSQL implementation of repository.DocumentRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type DocumentPostgres struct {
	db *sql.DB
}

// NewDocumentPostgres creates a new DocumentPostgres repository.
func NewDocumentPostgres(db *sql.DB) *DocumentPostgres {
	return &DocumentPostgres{db: db}
}

var _ repository.DocumentRepository = (*DocumentPostgres)(nil)

const documentColumns = `id, expediente_id, name, doc_type, date, responsible_user_id, area_id, file_path, deleted_at`

const documentJoinedColumns = `d.id, d.expediente_id, d.name, d.doc_type, d.date, d.responsible_user_id, d.area_id, d.file_path, d.deleted_at, e.number, a.name, u.username`

const documentJoins = `
		FROM documents d
		LEFT JOIN expedientes e ON d.expediente_id = e.id
		LEFT JOIN areas a ON d.area_id = a.id
		LEFT JOIN users u ON d.responsible_user_id = u.id`

func scanDocument(row *sql.Row) (*model.Document, error) {
	var d model.Document
	var deleted sql.NullTime
	if err := row.Scan(
		&d.ID,
		&d.ExpedienteID,
		&d.Name,
		&d.DocType,
		&d.Date,
		&d.ResponsibleUserID,
		&d.AreaID,
		&d.FilePath,
		&deleted,
	); err != nil {
		return nil, err
	}
	if deleted.Valid {
		d.DeletedAt = &deleted.Time
	}
	return &d, nil
}

func scanJoinedDocuments(rows *sql.Rows) ([]model.Document, error) {
	defer rows.Close()
	items := make([]model.Document, 0)
	for rows.Next() {
		var d model.Document
		var deleted sql.NullTime
		var number, areaName, username sql.NullString
		if err := rows.Scan(
			&d.ID,
			&d.ExpedienteID,
			&d.Name,
			&d.DocType,
			&d.Date,
			&d.ResponsibleUserID,
			&d.AreaID,
			&d.FilePath,
			&deleted,
			&number,
			&areaName,
			&username,
		); err != nil {
			return nil, err
		}
		if deleted.Valid {
			d.DeletedAt = &deleted.Time
		}
		d.ExpedienteNumber = number.String
		d.AreaName = areaName.String
		d.ResponsibleUsername = username.String
		items = append(items, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Create inserts a new active document row and returns the stored record.
func (r *DocumentPostgres) Create(ctx context.Context, doc *model.Document) (*model.Document, error) {
	const q = `
		INSERT INTO documents (id, expediente_id, name, doc_type, date, responsible_user_id, area_id, file_path)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + documentColumns
	row := r.db.QueryRowContext(ctx, q,
		doc.ID,
		doc.ExpedienteID,
		doc.Name,
		doc.DocType,
		doc.Date,
		doc.ResponsibleUserID,
		doc.AreaID,
		doc.FilePath,
	)
	return scanDocument(row)
}

// Update rewrites the mutable columns of a document by ID.
func (r *DocumentPostgres) Update(ctx context.Context, doc *model.Document) (*model.Document, error) {
	const q = `
		UPDATE documents
		SET expediente_id = $2, name = $3, doc_type = $4, date = $5,
		    responsible_user_id = $6, area_id = $7, file_path = $8
		WHERE id = $1
		RETURNING ` + documentColumns
	row := r.db.QueryRowContext(ctx, q,
		doc.ID,
		doc.ExpedienteID,
		doc.Name,
		doc.DocType,
		doc.Date,
		doc.ResponsibleUserID,
		doc.AreaID,
		doc.FilePath,
	)
	return scanDocument(row)
}

// FindByID fetches a single document by its ID, trashed or not.
func (r *DocumentPostgres) FindByID(ctx context.Context, id string) (*model.Document, error) {
	const q = `SELECT ` + documentColumns + ` FROM documents WHERE id = $1`
	return scanDocument(r.db.QueryRowContext(ctx, q, id))
}

// ListActive returns non-deleted documents, newest business date first.
func (r *DocumentPostgres) ListActive(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.Document], error) {
	const qCount = `SELECT COUNT(*) FROM documents WHERE deleted_at IS NULL`
	var total int
	if err := r.db.QueryRowContext(ctx, qCount).Scan(&total); err != nil {
		return nil, err
	}

	const qList = `SELECT ` + documentJoinedColumns + documentJoins + `
		WHERE d.deleted_at IS NULL
		ORDER BY d.date DESC, d.id DESC
		LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, qList, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	items, err := scanJoinedDocuments(rows)
	if err != nil {
		return nil, err
	}
	return &repository.PageResult[model.Document]{Items: items, Total: total}, nil
}

// ListByExpediente returns all non-deleted documents of one expediente.
func (r *DocumentPostgres) ListByExpediente(ctx context.Context, expedienteID string) ([]model.Document, error) {
	const q = `SELECT ` + documentJoinedColumns + documentJoins + `
		WHERE d.expediente_id = $1 AND d.deleted_at IS NULL
		ORDER BY d.date DESC, d.id DESC`
	rows, err := r.db.QueryContext(ctx, q, expedienteID)
	if err != nil {
		return nil, err
	}
	return scanJoinedDocuments(rows)
}

// ListTrashed returns soft-deleted documents, most recently deleted first.
func (r *DocumentPostgres) ListTrashed(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.Document], error) {
	const qCount = `SELECT COUNT(*) FROM documents WHERE deleted_at IS NOT NULL`
	var total int
	if err := r.db.QueryRowContext(ctx, qCount).Scan(&total); err != nil {
		return nil, err
	}

	const qList = `SELECT ` + documentJoinedColumns + documentJoins + `
		WHERE d.deleted_at IS NOT NULL
		ORDER BY d.deleted_at DESC, d.id DESC
		LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, qList, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	items, err := scanJoinedDocuments(rows)
	if err != nil {
		return nil, err
	}
	return &repository.PageResult[model.Document]{Items: items, Total: total}, nil
}

// SoftDelete stamps deleted_at on an active document. Returns sql.ErrNoRows
// when the document does not exist or is already trashed.
func (r *DocumentPostgres) SoftDelete(ctx context.Context, id string, at time.Time) error {
	const q = `UPDATE documents SET deleted_at = $2 WHERE id = $1 AND deleted_at IS NULL`
	return r.execExpectingRow(ctx, q, id, at)
}

// Restore clears deleted_at on a trashed document. Returns sql.ErrNoRows when
// the document does not exist or is not in the trash.
func (r *DocumentPostgres) Restore(ctx context.Context, id string) error {
	const q = `UPDATE documents SET deleted_at = NULL WHERE id = $1 AND deleted_at IS NOT NULL`
	return r.execExpectingRow(ctx, q, id)
}

// Purge permanently removes a document row. Returns sql.ErrNoRows when the
// row is already gone.
func (r *DocumentPostgres) Purge(ctx context.Context, id string) error {
	const q = `DELETE FROM documents WHERE id = $1`
	return r.execExpectingRow(ctx, q, id)
}

// CountByExpediente counts all documents of an expediente, trashed included.
func (r *DocumentPostgres) CountByExpediente(ctx context.Context, expedienteID string) (int, error) {
	const q = `SELECT COUNT(*) FROM documents WHERE expediente_id = $1`
	var n int
	if err := r.db.QueryRowContext(ctx, q, expedienteID).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *DocumentPostgres) execExpectingRow(ctx context.Context, q string, args ...any) error {
	res, err := r.db.ExecContext(ctx, q, args...)
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
