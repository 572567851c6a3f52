package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/quickalba/job-board-system/internal/core/ports"
)

// ApplicationDispatcher is the interface the handler uses to enqueue
// applications for asynchronous processing.
type ApplicationDispatcher interface {
	Enqueue(app ports.ApplicationInput)
}

// JobHandler handles posting search, detail and application submission.
type JobHandler struct {
	search     ports.SearchService
	dispatcher ApplicationDispatcher
}

func NewJobHandler(search ports.SearchService, dispatcher ApplicationDispatcher) *JobHandler {
	return &JobHandler{search: search, dispatcher: dispatcher}
}

// List handles GET /v1/jobs — filtered, sorted postings.
//
// @Summary      Search job postings
// @Tags         jobs
// @Produce      json
// @Param        q                query     string   false  "Free-text query over title, company, location, category, description"
// @Param        keyword          query     string   false  "Keyword additionally matched against requirements"
// @Param        location         query     string   false  "Exact location"
// @Param        category         query     string   false  "Exact category"
// @Param        employment_type  query     []string false  "Employment types (repeatable)"
// @Param        experience       query     []string false  "Experience levels (repeatable)"
// @Param        salary_min       query     number   false  "Minimum salary, 만원/month"
// @Param        salary_max       query     number   false  "Maximum salary, 만원/month"
// @Param        sort             query     string   false  "Sort key: recent, salary, company"
// @Success      200              {object}  jobListResponse
// @Router       /v1/jobs [get]
func (h *JobHandler) List(c echo.Context) error {
	in := searchInputFromQuery(c)

	result, err := h.search.Search(c.Request().Context(), in)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, jobListResponse{
		Jobs:  result.Jobs,
		Total: result.Total,
		Sort:  string(in.Sort),
	})
}

// Get handles GET /v1/jobs/:id — one posting's detail.
//
// @Summary      Get a job posting
// @Tags         jobs
// @Produce      json
// @Param        id   path      string  true  "Posting identifier"
// @Success      200  {object}  domain.JobPosting
// @Failure      404  {object}  errorResponse
// @Router       /v1/jobs/{id} [get]
func (h *JobHandler) Get(c echo.Context) error {
	job, err := h.search.GetJob(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, job)
}

// Apply handles POST /v1/jobs/:id/apply — enqueues an application, returns 202.
// The route is gated to the jobseeker role by middleware.
//
// @Summary      Apply to a job posting
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string        true   "Posting identifier"
// @Param        body  body      applyRequest  false  "Optional application message"
// @Success      202   {object}  acceptedResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/jobs/{id}/apply [post]
func (h *JobHandler) Apply(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req applyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	jobID := c.Param("id")
	// Reject unknown postings synchronously; expiry and dedup are checked by
	// the worker.
	if _, err := h.search.GetJob(c.Request().Context(), jobID); err != nil {
		return err
	}

	h.dispatcher.Enqueue(ports.ApplicationInput{
		JobID:       jobID,
		ApplicantID: id.UserID,
		Email:       id.Email,
		Message:     req.Message,
		SubmittedAt: time.Now().UTC(),
	})

	return c.JSON(http.StatusAccepted, acceptedResponse{Message: "application accepted"})
}
