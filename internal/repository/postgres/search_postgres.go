package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"expedientes/internal/model"
	"expedientes/internal/repository"
	"expedientes/internal/search"
)

// SearchPostgres executes the queries assembled by the search builders and
// maps rows into the uniform result shape.
type SearchPostgres struct {
	db *sql.DB
}

// NewSearchPostgres creates a new SearchPostgres repository.
func NewSearchPostgres(db *sql.DB) *SearchPostgres {
	return &SearchPostgres{db: db}
}

var _ repository.SearchRepository = (*SearchPostgres)(nil)

// Documents runs the document search: one COUNT with the full predicate set,
// one paged query, rows mapped with the "doc_" id prefix.
func (r *SearchPostgres) Documents(ctx context.Context, opts search.Options) ([]model.SearchResult, int, error) {
	countSQL, countArgs, err := opts.DocumentsCount().ToSql()
	if err != nil {
		return nil, 0, err
	}
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	pageSQL, pageArgs, err := opts.Documents().ToSql()
	if err != nil {
		return nil, 0, err
	}
	rows, err := r.db.QueryContext(ctx, pageSQL, pageArgs...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	results := make([]model.SearchResult, 0)
	for rows.Next() {
		var (
			res            model.SearchResult
			id, docType    string
			expedienteID   sql.NullString
			number, state  sql.NullString
			area, username sql.NullString
		)
		if err := rows.Scan(
			&id,
			&res.Title,
			&docType,
			&res.Date,
			&res.FilePath,
			&expedienteID,
			&number,
			&state,
			&area,
			&username,
		); err != nil {
			return nil, 0, err
		}
		res.ID = "doc_" + id
		res.Type = model.ResultKindDocument
		res.ExpedienteID = expedienteID.String
		res.Description = fmt.Sprintf("Documento %s del expediente %s", docType, number.String)
		res.Area = area.String
		res.Responsible = username.String
		res.ExpedienteNumber = number.String
		res.DocumentName = res.Title
		res.DocType = docType
		res.State = state.String
		results = append(results, res)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return results, total, nil
}

// Expedientes runs the expediente search with the "exp_" id prefix.
func (r *SearchPostgres) Expedientes(ctx context.Context, opts search.Options) ([]model.SearchResult, int, error) {
	countSQL, countArgs, err := opts.ExpedientesCount().ToSql()
	if err != nil {
		return nil, 0, err
	}
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	pageSQL, pageArgs, err := opts.Expedientes().ToSql()
	if err != nil {
		return nil, 0, err
	}
	rows, err := r.db.QueryContext(ctx, pageSQL, pageArgs...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	results := make([]model.SearchResult, 0)
	for rows.Next() {
		var (
			res            model.SearchResult
			id, number     string
			state          string
			area, username sql.NullString
		)
		if err := rows.Scan(&id, &number, &state, &res.Date, &area, &username); err != nil {
			return nil, 0, err
		}
		res.ID = "exp_" + id
		res.Type = model.ResultKindExpediente
		res.Title = number
		res.Description = fmt.Sprintf("Expediente %s - %s", state, area.String)
		res.Area = area.String
		res.Responsible = username.String
		res.ExpedienteNumber = number
		res.State = state
		results = append(results, res)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return results, total, nil
}

// DocumentYears returns the distinct years of non-deleted document dates,
// descending.
func (r *SearchPostgres) DocumentYears(ctx context.Context) ([]int, error) {
	const q = `
		SELECT DISTINCT EXTRACT(YEAR FROM date)::int AS year
		FROM documents
		WHERE deleted_at IS NULL
		ORDER BY year DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	years := make([]int, 0)
	for rows.Next() {
		var y int
		if err := rows.Scan(&y); err != nil {
			return nil, err
		}
		years = append(years, y)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return years, nil
}
