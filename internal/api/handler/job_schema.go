package handler

import (
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/quickalba/job-board-system/internal/core/domain"
	"github.com/quickalba/job-board-system/internal/core/ports"
)

type jobListResponse struct {
	Jobs  []domain.JobPosting `json:"jobs"`
	Total int                 `json:"total"`
	Sort  string              `json:"sort"`
}

type applyRequest struct {
	// Message is the optional cover note shown to the employer.
	Message string `json:"message" validate:"omitempty,max=2000"`
}

type acceptedResponse struct {
	Message string `json:"message"`
}

// searchInputFromQuery maps the list endpoint's query parameters onto a
// SearchInput. Malformed optional values degrade to "no constraint" — the
// search contract has no error conditions for bad filter input.
func searchInputFromQuery(c echo.Context) ports.SearchInput {
	criteria := ports.SearchCriteria{
		Query:           strings.TrimSpace(c.QueryParam("q")),
		Keyword:         strings.TrimSpace(c.QueryParam("keyword")),
		Location:        strings.TrimSpace(c.QueryParam("location")),
		Category:        strings.TrimSpace(c.QueryParam("category")),
		EmploymentTypes: nonEmpty(c.QueryParams()["employment_type"]),
		Experiences:     nonEmpty(c.QueryParams()["experience"]),
		SalaryMin:       parseBound(c.QueryParam("salary_min")),
		SalaryMax:       parseBound(c.QueryParam("salary_max")),
	}

	sortKey := ports.SortKey(c.QueryParam("sort"))
	switch sortKey {
	case ports.SortRecent, ports.SortSalary, ports.SortCompany:
	default:
		sortKey = ports.SortRecent
	}

	return ports.SearchInput{Criteria: criteria, Sort: sortKey}
}

func nonEmpty(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" || v == "all" {
			continue
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func parseBound(raw string) *float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 {
		return nil
	}
	return &v
}
