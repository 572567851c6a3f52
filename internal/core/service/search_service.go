package service

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/quickalba/job-board-system/internal/api/metrics"
	"github.com/quickalba/job-board-system/internal/core/domain"
	"github.com/quickalba/job-board-system/internal/core/ports"
)

// SearchCache abstracts the Redis result cache. Cache failures degrade to an
// uncached search, never to a request failure.
type SearchCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}

const defaultCacheTTL = 5 * time.Minute

// SearchService filters and orders the posting collection in memory. The
// repository's data is never mutated: every search works on a fresh slice.
type SearchService struct {
	repo     ports.JobRepository
	cache    SearchCache // optional
	cacheTTL time.Duration
	logger   zerolog.Logger
}

func NewSearchService(repo ports.JobRepository, cache SearchCache, logger zerolog.Logger) *SearchService {
	return &SearchService{repo: repo, cache: cache, cacheTTL: defaultCacheTTL, logger: logger}
}

func (s *SearchService) Search(ctx context.Context, in ports.SearchInput) (*ports.SearchResult, error) {
	timer := prometheus.NewTimer(metrics.SearchDuration)
	defer timer.ObserveDuration()

	cacheKey := ""
	if s.cache != nil && in.Criteria.HasFilter() {
		cacheKey = searchCacheKey(in)
		var cached ports.SearchResult
		hit, err := s.cache.GetJSON(ctx, cacheKey, &cached)
		if err != nil {
			s.logger.Warn().Err(err).Str("key", cacheKey).Msg("search cache read failed")
		} else if hit {
			s.logger.Debug().Str("key", cacheKey).Msg("search cache hit")
			metrics.SearchesTotal.WithLabelValues("hit").Inc()
			return &cached, nil
		}
	}
	if cacheKey == "" {
		metrics.SearchesTotal.WithLabelValues("bypass").Inc()
	} else {
		metrics.SearchesTotal.WithLabelValues("miss").Inc()
	}

	jobs, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list postings")
		return nil, err
	}

	matched := FilterPostings(jobs, in.Criteria)
	SortPostings(matched, in.Sort)

	result := &ports.SearchResult{Jobs: matched, Total: len(matched)}

	if cacheKey != "" {
		if err := s.cache.SetJSON(ctx, cacheKey, result, s.cacheTTL); err != nil {
			s.logger.Warn().Err(err).Str("key", cacheKey).Msg("search cache write failed")
		}
	}
	return result, nil
}

func (s *SearchService) GetJob(ctx context.Context, id string) (*domain.JobPosting, error) {
	return s.repo.FindByID(ctx, id)
}

// FilterPostings returns the postings matching every active criteria
// dimension, in input order. The input slice is left untouched.
func FilterPostings(jobs []domain.JobPosting, c ports.SearchCriteria) []domain.JobPosting {
	out := make([]domain.JobPosting, 0, len(jobs))
	for _, j := range jobs {
		if matches(&j, c) {
			out = append(out, j)
		}
	}
	return out
}

func matches(j *domain.JobPosting, c ports.SearchCriteria) bool {
	if c.Query != "" && !matchesText(j, c.Query, false) {
		return false
	}
	if c.Keyword != "" && !matchesText(j, c.Keyword, true) {
		return false
	}
	if c.Location != "" && j.Location != c.Location {
		return false
	}
	if c.Category != "" && j.Category != c.Category {
		return false
	}
	if len(c.EmploymentTypes) > 0 && !containsFold(c.EmploymentTypes, string(j.EmploymentType)) {
		return false
	}
	if len(c.Experiences) > 0 && !containsFold(c.Experiences, string(j.Experience)) {
		return false
	}
	if c.SalaryMin != nil || c.SalaryMax != nil {
		if j.Salary == nil {
			return false
		}
		monthly := j.Salary.MonthlyMinimum()
		if c.SalaryMin != nil && monthly < *c.SalaryMin {
			return false
		}
		if c.SalaryMax != nil && monthly > *c.SalaryMax {
			return false
		}
	}
	return true
}

// matchesText is the case-insensitive substring test over title, company,
// location, category and description. Keyword mode additionally scans each
// requirement line.
func matchesText(j *domain.JobPosting, query string, includeRequirements bool) bool {
	q := strings.ToLower(query)
	for _, field := range []string{j.Title, j.Company, j.Location, j.Category, j.Description} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	if includeRequirements {
		for _, req := range j.Requirements {
			if strings.Contains(strings.ToLower(req), q) {
				return true
			}
		}
	}
	return false
}

func containsFold(set []string, v string) bool {
	for _, item := range set {
		if strings.EqualFold(item, v) {
			return true
		}
	}
	return false
}

// SortPostings orders jobs in place. The sort is stable: ties keep their
// relative input order. Unknown keys fall back to SortRecent.
func SortPostings(jobs []domain.JobPosting, key ports.SortKey) {
	switch key {
	case ports.SortSalary:
		sort.SliceStable(jobs, func(i, k int) bool {
			return salaryMin(&jobs[i]) > salaryMin(&jobs[k])
		})
	case ports.SortCompany:
		// Company names are Korean; compare with locale collation.
		cl := collate.New(language.Korean)
		sort.SliceStable(jobs, func(i, k int) bool {
			return cl.CompareString(jobs[i].Company, jobs[k].Company) < 0
		})
	default:
		sort.SliceStable(jobs, func(i, k int) bool {
			return jobs[i].PostedAt.After(jobs[k].PostedAt)
		})
	}
}

func salaryMin(j *domain.JobPosting) float64 {
	if j.Salary == nil {
		return 0
	}
	return j.Salary.Min
}

// searchCacheKey derives a deterministic cache key from the normalized
// criteria and sort. Set dimensions are sorted so parameter order does not
// fragment the cache.
func searchCacheKey(in ports.SearchInput) string {
	c := in.Criteria
	parts := []string{
		"jobs:search:v1",
		strings.ToLower(strings.TrimSpace(c.Query)),
		strings.ToLower(strings.TrimSpace(c.Keyword)),
		c.Location,
		c.Category,
		sortedJoin(c.EmploymentTypes),
		sortedJoin(c.Experiences),
		formatBound(c.SalaryMin),
		formatBound(c.SalaryMax),
		string(in.Sort),
	}
	return strings.Join(parts, "|")
}

func sortedJoin(set []string) string {
	if len(set) == 0 {
		return ""
	}
	cp := make([]string, len(set))
	for i, v := range set {
		cp[i] = strings.ToLower(v)
	}
	sort.Strings(cp)
	return strings.Join(cp, ",")
}

func formatBound(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
