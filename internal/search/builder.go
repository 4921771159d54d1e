// Package search builds the SQL predicates, sort and pagination windows for
// the unified search across documents and expedientes. The builders return
// squirrel statements so the predicate set stays testable without a database.
package search

import (
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"expedientes/internal/timeutil"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// documentColumns is the projection used by the document search. Join order
// matters for scan order in the repository.
var documentColumns = []string{
	"d.id", "d.name", "d.doc_type", "d.date", "d.file_path",
	"d.expediente_id", "e.number", "e.state", "a.name", "u.username",
}

var expedienteColumns = []string{
	"e.id", "e.number", "e.state", "e.created_at", "a.name", "u.username",
}

// TermPredicate expands a free-text term into an OR across the given columns.
// Each column is tried twice: raw lower-cased substring (ILIKE) and the
// normalized form on both sides. The raw branch is required because
// normalization can over-match ("O.C" must still hit the literal
// "O.C 00491_2023" even though the stored value normalizes differently).
func TermPredicate(term string, columns ...string) sq.Sqlizer {
	raw := "%" + strings.ToLower(term) + "%"
	normalized := "%" + Normalize(term) + "%"

	or := make(sq.Or, 0, len(columns)*2)
	for _, col := range columns {
		or = append(or, sq.ILike{col: raw})
		or = append(or, sq.Expr(normalizeExpr(col)+" LIKE ?", normalized))
	}
	return or
}

// datePredicates returns the conjunctive date bounds for the given column:
// the year window plus the inclusive day-level from/to bounds, all in the
// business timezone.
func (o Options) datePredicates(column string) []sq.Sqlizer {
	var preds []sq.Sqlizer
	if o.Year != 0 {
		start, end := timeutil.YearRange(o.Year)
		preds = append(preds, sq.GtOrEq{column: start}, sq.LtOrEq{column: end})
	}
	if !o.DateFrom.IsZero() {
		preds = append(preds, sq.GtOrEq{column: timeutil.StartOfDay(o.DateFrom)})
	}
	if !o.DateTo.IsZero() {
		preds = append(preds, sq.LtOrEq{column: timeutil.EndOfDay(o.DateTo)})
	}
	return preds
}

// documentPredicates assembles the WHERE conjunction for the document search.
// Soft-deleted rows are always excluded; the trash has its own listing and is
// never searched.
func (o Options) documentPredicates() sq.And {
	and := sq.And{sq.Expr("d.deleted_at IS NULL")}

	if o.Term != "" {
		and = append(and, TermPredicate(o.Term, "d.name", "e.number", "u.username"))
	}
	and = append(and, o.datePredicates("d.date")...)
	if o.AreaID != "" {
		and = append(and, sq.Eq{"d.area_id": o.AreaID})
	}
	if o.ExpedienteState != "" {
		and = append(and, sq.Eq{"e.state": o.ExpedienteState})
	}
	return and
}

func (o Options) expedientePredicates() sq.And {
	var and sq.And

	if o.Term != "" {
		and = append(and, TermPredicate(o.Term, "e.number", "u.username"))
	}
	and = append(and, o.datePredicates("e.created_at")...)
	if o.AreaID != "" {
		and = append(and, sq.Eq{"e.area_id": o.AreaID})
	}
	if o.ExpedienteState != "" {
		and = append(and, sq.Eq{"e.state": o.ExpedienteState})
	}
	return and
}

func (o Options) documentOrder() string {
	col := "d.date"
	switch o.SortBy {
	case SortByName:
		col = "d.name"
	case SortByExpediente:
		col = "e.number"
	}
	return col + " " + direction(o.SortOrder)
}

// expedienteOrder maps the sort key for the expediente collection. There is
// no document-name column here; "name" and "expediente" both sort by number.
func (o Options) expedienteOrder() string {
	col := "e.created_at"
	switch o.SortBy {
	case SortByName, SortByExpediente:
		col = "e.number"
	}
	return col + " " + direction(o.SortOrder)
}

func direction(order string) string {
	if order == OrderAsc {
		return "ASC"
	}
	return "DESC"
}

func documentBase(columns ...string) sq.SelectBuilder {
	return psql.Select(columns...).
		From("documents d").
		LeftJoin("expedientes e ON d.expediente_id = e.id").
		LeftJoin("areas a ON d.area_id = a.id").
		LeftJoin("users u ON d.responsible_user_id = u.id")
}

func expedienteBase(columns ...string) sq.SelectBuilder {
	return psql.Select(columns...).
		From("expedientes e").
		LeftJoin("areas a ON e.area_id = a.id").
		LeftJoin("users u ON e.responsible_user_id = u.id")
}

// Documents returns the paged document search query.
func (o Options) Documents() sq.SelectBuilder {
	return documentBase(documentColumns...).
		Where(o.documentPredicates()).
		OrderBy(o.documentOrder()).
		Limit(uint64(o.Limit)).
		Offset(uint64(o.Offset()))
}

// DocumentsCount returns the unlimited COUNT query with the same predicates.
func (o Options) DocumentsCount() sq.SelectBuilder {
	return documentBase("COUNT(*)").Where(o.documentPredicates())
}

// Expedientes returns the paged expediente search query.
func (o Options) Expedientes() sq.SelectBuilder {
	q := expedienteBase(expedienteColumns...)
	if preds := o.expedientePredicates(); len(preds) > 0 {
		q = q.Where(preds)
	}
	return q.
		OrderBy(o.expedienteOrder()).
		Limit(uint64(o.Limit)).
		Offset(uint64(o.Offset()))
}

// ExpedientesCount returns the unlimited COUNT query with the same predicates.
func (o Options) ExpedientesCount() sq.SelectBuilder {
	q := expedienteBase("COUNT(*)")
	if preds := o.expedientePredicates(); len(preds) > 0 {
		q = q.Where(preds)
	}
	return q
}

// MergeByDate merges two result slices already sorted by date into one slice
// ordered by the requested direction, used when searching both collections.
func MergeByDate[T any](a, b []T, date func(T) time.Time, order string) []T {
	out := make([]T, 0, len(a)+len(b))
	i, j := 0, 0
	before := func(x, y time.Time) bool {
		if order == OrderAsc {
			return x.Before(y) || x.Equal(y)
		}
		return x.After(y) || x.Equal(y)
	}
	for i < len(a) && j < len(b) {
		if before(date(a[i]), date(b[j])) {
			out = append(out, a[i])
			i++
		} else {
			out = append(out, b[j])
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return out
}
