package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"reflect"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/quickalba/job-board-system/internal/core/domain"
	"github.com/quickalba/job-board-system/internal/core/ports"
)

type stubSearchService struct {
	searchFn func(ctx context.Context, in ports.SearchInput) (*ports.SearchResult, error)
	getFn    func(ctx context.Context, id string) (*domain.JobPosting, error)
}

func (s *stubSearchService) Search(ctx context.Context, in ports.SearchInput) (*ports.SearchResult, error) {
	return s.searchFn(ctx, in)
}

func (s *stubSearchService) GetJob(ctx context.Context, id string) (*domain.JobPosting, error) {
	return s.getFn(ctx, id)
}

type stubDispatcher struct {
	enqueued []ports.ApplicationInput
}

func (d *stubDispatcher) Enqueue(app ports.ApplicationInput) {
	d.enqueued = append(d.enqueued, app)
}

func listContext(e *echo.Echo, query url.Values) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/v1/jobs?"+query.Encode(), nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestJobHandler_List_QueryMapping(t *testing.T) {
	e := echo.New()
	var captured ports.SearchInput
	stub := &stubSearchService{
		searchFn: func(ctx context.Context, in ports.SearchInput) (*ports.SearchResult, error) {
			captured = in
			return &ports.SearchResult{Jobs: []domain.JobPosting{}, Total: 0}, nil
		},
	}
	handler := NewJobHandler(stub, &stubDispatcher{})

	q := url.Values{}
	q.Set("q", " 바리스타 ")
	q.Set("keyword", "라떼아트")
	q.Set("location", "서울 강남구")
	q.Set("category", "카페/바리스타")
	q.Add("employment_type", "part-time")
	q.Add("employment_type", "full-time")
	q.Add("experience", "entry")
	q.Set("salary_min", "250")
	q.Set("salary_max", "400")
	q.Set("sort", "salary")

	c, rec := listContext(e, q)
	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	if captured.Sort != ports.SortSalary {
		t.Fatalf("expected sort=salary, got %s", captured.Sort)
	}
	crit := captured.Criteria
	if crit.Query != "바리스타" || crit.Keyword != "라떼아트" {
		t.Fatalf("text criteria not trimmed/mapped: %+v", crit)
	}
	if crit.Location != "서울 강남구" || crit.Category != "카페/바리스타" {
		t.Fatalf("exact-match criteria wrong: %+v", crit)
	}
	if !reflect.DeepEqual(crit.EmploymentTypes, []string{"part-time", "full-time"}) {
		t.Fatalf("employment types wrong: %v", crit.EmploymentTypes)
	}
	if !reflect.DeepEqual(crit.Experiences, []string{"entry"}) {
		t.Fatalf("experiences wrong: %v", crit.Experiences)
	}
	if crit.SalaryMin == nil || *crit.SalaryMin != 250 || crit.SalaryMax == nil || *crit.SalaryMax != 400 {
		t.Fatalf("salary bounds wrong: %+v", crit)
	}
}

func TestJobHandler_List_DegradedInput(t *testing.T) {
	e := echo.New()
	var captured ports.SearchInput
	stub := &stubSearchService{
		searchFn: func(ctx context.Context, in ports.SearchInput) (*ports.SearchResult, error) {
			captured = in
			return &ports.SearchResult{}, nil
		},
	}
	handler := NewJobHandler(stub, &stubDispatcher{})

	q := url.Values{}
	q.Add("employment_type", "all")
	q.Add("employment_type", "  ")
	q.Set("salary_min", "abc")
	q.Set("salary_max", "-5")
	q.Set("sort", "bogus")

	c, _ := listContext(e, q)
	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	// Malformed or sentinel values degrade to "no constraint", never an error.
	crit := captured.Criteria
	if crit.EmploymentTypes != nil {
		t.Fatalf("expected 'all' and blanks to be dropped, got %v", crit.EmploymentTypes)
	}
	if crit.SalaryMin != nil || crit.SalaryMax != nil {
		t.Fatalf("expected malformed bounds to be nil, got %+v", crit)
	}
	if captured.Sort != ports.SortRecent {
		t.Fatalf("unknown sort must fall back to recent, got %s", captured.Sort)
	}
	if crit.HasFilter() {
		t.Fatalf("fully degraded input must be an unfiltered search")
	}
}

func TestJobHandler_Get(t *testing.T) {
	e := echo.New()
	stub := &stubSearchService{
		getFn: func(ctx context.Context, id string) (*domain.JobPosting, error) {
			if id != "2" {
				t.Fatalf("unexpected id: %s", id)
			}
			return &domain.JobPosting{ID: "2", Title: "바리스타", Company: "커피빈 강남점"}, nil
		},
	}
	handler := NewJobHandler(stub, &stubDispatcher{})

	req := httptest.NewRequest(http.MethodGet, "/v1/jobs/2", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("2")

	if err := handler.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var job domain.JobPosting
	if err := json.Unmarshal(rec.Body.Bytes(), &job); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if job.ID != "2" || job.Company != "커피빈 강남점" {
		t.Fatalf("unexpected payload: %+v", job)
	}
}

func TestJobHandler_Get_NotFound(t *testing.T) {
	e := echo.New()
	stub := &stubSearchService{
		getFn: func(ctx context.Context, id string) (*domain.JobPosting, error) {
			return nil, domain.ErrJobNotFound
		},
	}
	handler := NewJobHandler(stub, &stubDispatcher{})

	req := httptest.NewRequest(http.MethodGet, "/v1/jobs/999", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("999")

	err := handler.Get(c)
	if !errors.Is(err, domain.ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound to propagate, got %v", err)
	}
}

func applyContext(e *echo.Echo, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/v1/jobs/1/apply", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")
	return c, rec
}

func setIdentity(c echo.Context) {
	c.Set("role", "jobseeker")
	c.Set("user_id", "u1")
	c.Set("email", "jobseeker@example.com")
	c.Set("name", "김철수")
	c.Set("token", "token123")
}

func TestJobHandler_Apply_Accepted(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	stub := &stubSearchService{
		getFn: func(ctx context.Context, id string) (*domain.JobPosting, error) {
			return &domain.JobPosting{ID: id}, nil
		},
	}
	dispatcher := &stubDispatcher{}
	handler := NewJobHandler(stub, dispatcher)

	c, rec := applyContext(e, `{"message":"성실히 일하겠습니다."}`)
	setIdentity(c)

	if err := handler.Apply(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d", rec.Code)
	}
	if len(dispatcher.enqueued) != 1 {
		t.Fatalf("expected one enqueued application, got %d", len(dispatcher.enqueued))
	}
	app := dispatcher.enqueued[0]
	if app.JobID != "1" || app.ApplicantID != "u1" || app.Email != "jobseeker@example.com" {
		t.Fatalf("unexpected application: %+v", app)
	}
	if app.SubmittedAt.IsZero() {
		t.Fatalf("submission time not stamped")
	}
}

func TestJobHandler_Apply_UnknownJob(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	stub := &stubSearchService{
		getFn: func(ctx context.Context, id string) (*domain.JobPosting, error) {
			return nil, domain.ErrJobNotFound
		},
	}
	dispatcher := &stubDispatcher{}
	handler := NewJobHandler(stub, dispatcher)

	c, _ := applyContext(e, `{}`)
	setIdentity(c)

	err := handler.Apply(c)
	if !errors.Is(err, domain.ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
	if len(dispatcher.enqueued) != 0 {
		t.Fatalf("nothing should be enqueued for an unknown posting")
	}
}

func TestJobHandler_Apply_Unauthenticated(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	handler := NewJobHandler(&stubSearchService{}, &stubDispatcher{})

	c, _ := applyContext(e, `{}`)

	err := handler.Apply(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestJobHandler_Apply_MessageTooLong(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	dispatcher := &stubDispatcher{}
	handler := NewJobHandler(&stubSearchService{}, dispatcher)

	c, _ := applyContext(e, `{"message":"`+strings.Repeat("a", 2001)+`"}`)
	setIdentity(c)

	err := handler.Apply(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 HTTPError, got %v", err)
	}
	if len(dispatcher.enqueued) != 0 {
		t.Fatalf("invalid application must not be enqueued")
	}
}
