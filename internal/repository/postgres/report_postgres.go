package postgres

import (
	"context"
	"database/sql"

	"expedientes/internal/model"
	"expedientes/internal/repository"
)

// ReportPostgres aggregates dashboard statistics with plain GROUP BY queries.
// Trashed documents are excluded everywhere.
type ReportPostgres struct {
	db *sql.DB
}

// NewReportPostgres creates a new ReportPostgres repository.
func NewReportPostgres(db *sql.DB) *ReportPostgres {
	return &ReportPostgres{db: db}
}

var _ repository.ReportRepository = (*ReportPostgres)(nil)

// Stats runs the aggregate dashboard queries sequentially and assembles the
// result. Any single failure aborts the whole report.
func (r *ReportPostgres) Stats(ctx context.Context) (*model.ReportStats, error) {
	stats := &model.ReportStats{}

	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM documents WHERE deleted_at IS NULL`,
	).Scan(&stats.TotalDocuments); err != nil {
		return nil, err
	}
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM expedientes`,
	).Scan(&stats.TotalExpedientes); err != nil {
		return nil, err
	}

	var err error
	if stats.DocumentsByType, err = r.countByLabel(ctx, `
		SELECT doc_type, COUNT(*)
		FROM documents WHERE deleted_at IS NULL
		GROUP BY doc_type ORDER BY doc_type`); err != nil {
		return nil, err
	}
	if stats.ExpedientesByState, err = r.countByLabel(ctx, `
		SELECT state, COUNT(*)
		FROM expedientes
		GROUP BY state ORDER BY state`); err != nil {
		return nil, err
	}
	if stats.DocumentsByArea, err = r.countByLabel(ctx, `
		SELECT COALESCE(a.name, 'Sin área'), COUNT(*)
		FROM documents d
		LEFT JOIN areas a ON d.area_id = a.id
		WHERE d.deleted_at IS NULL
		GROUP BY a.name ORDER BY a.name`); err != nil {
		return nil, err
	}
	if stats.ExpedientesByArea, err = r.countByLabel(ctx, `
		SELECT COALESCE(a.name, 'Sin área'), COUNT(*)
		FROM expedientes e
		LEFT JOIN areas a ON e.area_id = a.id
		GROUP BY a.name ORDER BY a.name`); err != nil {
		return nil, err
	}

	if stats.RecentDocuments, err = r.recentDocuments(ctx); err != nil {
		return nil, err
	}
	if stats.RecentExpedientes, err = r.recentExpedientes(ctx); err != nil {
		return nil, err
	}
	if stats.MonthlyStats, err = r.monthlyStats(ctx); err != nil {
		return nil, err
	}

	return stats, nil
}

func (r *ReportPostgres) countByLabel(ctx context.Context, q string) ([]model.CountByLabel, error) {
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.CountByLabel, 0)
	for rows.Next() {
		var c model.CountByLabel
		if err := rows.Scan(&c.Label, &c.Count); err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *ReportPostgres) recentDocuments(ctx context.Context) ([]model.RecentDocument, error) {
	const q = `
		SELECT d.id, d.name, d.doc_type, d.date, COALESCE(e.number, ''), COALESCE(a.name, '')
		FROM documents d
		LEFT JOIN expedientes e ON d.expediente_id = e.id
		LEFT JOIN areas a ON d.area_id = a.id
		WHERE d.deleted_at IS NULL
		ORDER BY d.date DESC
		LIMIT 5`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.RecentDocument, 0, 5)
	for rows.Next() {
		var d model.RecentDocument
		if err := rows.Scan(&d.ID, &d.Name, &d.DocType, &d.Date, &d.ExpedienteNumber, &d.AreaName); err != nil {
			return nil, err
		}
		items = append(items, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *ReportPostgres) recentExpedientes(ctx context.Context) ([]model.RecentExpediente, error) {
	const q = `
		SELECT e.id, e.number, e.state, e.created_at, COALESCE(a.name, '')
		FROM expedientes e
		LEFT JOIN areas a ON e.area_id = a.id
		ORDER BY e.created_at DESC
		LIMIT 5`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.RecentExpediente, 0, 5)
	for rows.Next() {
		var e model.RecentExpediente
		if err := rows.Scan(&e.ID, &e.Number, &e.State, &e.CreatedAt, &e.AreaName); err != nil {
			return nil, err
		}
		items = append(items, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *ReportPostgres) monthlyStats(ctx context.Context) ([]model.MonthlyCount, error) {
	const q = `
		SELECT TO_CHAR(date, 'YYYY-MM') AS month, COUNT(*)
		FROM documents
		WHERE deleted_at IS NULL AND date >= NOW() - INTERVAL '6 months'
		GROUP BY TO_CHAR(date, 'YYYY-MM')
		ORDER BY TO_CHAR(date, 'YYYY-MM')`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.MonthlyCount, 0)
	for rows.Next() {
		var m model.MonthlyCount
		if err := rows.Scan(&m.Month, &m.Documents); err != nil {
			return nil, err
		}
		items = append(items, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
