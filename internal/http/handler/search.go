package handler

import (
	"github.com/gofiber/fiber/v2"

	"expedientes/internal/search"
	"expedientes/internal/timeutil"
)

// search runs the unified search. All parameters are optional; omitted
// categories simply do not constrain the result.
func (h *Handler) search(c *fiber.Ctx) error {
	opts := search.Options{
		Term:            c.Query("term"),
		Year:            c.QueryInt("year"),
		AreaID:          c.Query("areaId"),
		ExpedienteState: c.Query("expedienteState", c.Query("state")),
		SortBy:          c.Query("sortBy"),
		SortOrder:       c.Query("sortOrder"),
		Page:            c.QueryInt("page", 1),
		Limit:           c.QueryInt("limit", search.DefaultLimit),
	}

	if from := c.Query("dateFrom"); from != "" {
		t, err := parseDate(from)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "invalid_date", "dateFrom must be RFC3339 or YYYY-MM-DD")
		}
		opts.DateFrom = timeutil.StartOfDay(t)
	}
	if to := c.Query("dateTo"); to != "" {
		t, err := parseDate(to)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "invalid_date", "dateTo must be RFC3339 or YYYY-MM-DD")
		}
		opts.DateTo = timeutil.EndOfDay(t)
	}

	page, err := h.Search.Search(c.UserContext(), c.Query("searchType", c.Query("type")), opts)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(page)
}

// searchPost serves auxiliary search requests. The only supported body today
// is {"type": "filters"}, which returns the filter dropdown payload.
func (h *Handler) searchPost(c *fiber.Ctx) error {
	var req struct {
		Type string `json:"type"`
	}
	if err := c.BodyParser(&req); err != nil {
		return writeError(c, fiber.StatusBadRequest, "invalid_body", "cannot parse request body")
	}
	if req.Type != "filters" {
		return writeError(c, fiber.StatusBadRequest, "invalid_type", "unsupported request type")
	}

	filters, err := h.Search.Filters(c.UserContext())
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(filters)
}
