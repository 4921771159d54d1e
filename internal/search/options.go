package search

import "time"

// Sort keys and directions accepted by the unified search.
const (
	SortByDate       = "date"
	SortByName       = "name"
	SortByExpediente = "expediente"

	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// DefaultLimit is the page size used when the caller does not supply one.
const DefaultLimit = 20

// Options is the structured set of optional search parameters. Categories
// combine conjunctively; the Term category expands to a disjunction across
// the target text columns.
type Options struct {
	Term            string
	Year            int
	AreaID          string
	ExpedienteState string
	DateFrom        time.Time
	DateTo          time.Time
	SortBy          string
	SortOrder       string
	Page            int
	Limit           int
}

// Normalize clamps pagination and fills sort defaults. Pages below 1 are
// clamped to 1 rather than rejected; the choice is deliberate so that a
// malformed page parameter degrades to the first page.
func (o *Options) Normalize() {
	if o.Page < 1 {
		o.Page = 1
	}
	if o.Limit < 1 {
		o.Limit = DefaultLimit
	}
	switch o.SortBy {
	case SortByDate, SortByName, SortByExpediente:
	case "expediente-number":
		// Public parameter spelling for the expediente number sort key.
		o.SortBy = SortByExpediente
	default:
		o.SortBy = SortByDate
	}
	switch o.SortOrder {
	case OrderAsc, OrderDesc:
	default:
		o.SortOrder = OrderDesc
	}
}

// Offset returns the number of rows to skip for the requested page.
func (o Options) Offset() int {
	return (o.Page - 1) * o.Limit
}

// TotalPages computes ceil(total/limit) for a result set of the given size.
func (o Options) TotalPages(total int) int {
	if o.Limit < 1 {
		return 0
	}
	pages := total / o.Limit
	if total%o.Limit != 0 {
		pages++
	}
	return pages
}
