package ports

import (
	"context"

	"github.com/quickalba/job-board-system/internal/core/domain"
)

// SortKey selects the ordering of search results.
type SortKey string

const (
	SortRecent  SortKey = "recent"  // newest posting first
	SortSalary  SortKey = "salary"  // highest minimum salary first
	SortCompany SortKey = "company" // company name, locale collated
)

// SearchCriteria is the structured filter state of a search. Zero values mean
// "no constraint on this dimension".
type SearchCriteria struct {
	// Query is the free-text search matched against title, company, location,
	// category and description.
	Query string
	// Keyword is matched against the same fields plus each requirement line.
	Keyword string
	// Location and Category require exact matches when set.
	Location string
	Category string
	// EmploymentTypes and Experiences are membership filters; empty = any.
	EmploymentTypes []string
	Experiences     []string
	// SalaryMin and SalaryMax bound the posting's minimum salary normalized
	// to 만원 per month. Inclusive; nil leaves the bound open.
	SalaryMin *float64
	SalaryMax *float64
}

// HasFilter reports whether any dimension of the criteria is active.
func (c SearchCriteria) HasFilter() bool {
	return c.Query != "" || c.Keyword != "" || c.Location != "" || c.Category != "" ||
		len(c.EmploymentTypes) > 0 || len(c.Experiences) > 0 ||
		c.SalaryMin != nil || c.SalaryMax != nil
}

// SearchInput carries one search invocation.
type SearchInput struct {
	Criteria SearchCriteria
	Sort     SortKey
}

// SearchResult is the ordered subset a search produced.
type SearchResult struct {
	Jobs  []domain.JobPosting `json:"jobs"`
	Total int                 `json:"total"`
}

// SearchService filters and orders the posting collection.
type SearchService interface {
	Search(ctx context.Context, in SearchInput) (*SearchResult, error)
	GetJob(ctx context.Context, id string) (*domain.JobPosting, error)
}
