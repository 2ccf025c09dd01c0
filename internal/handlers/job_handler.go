package handlers

import (
	"net/http"
	"strconv"

	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// JobHandler serves the public and token-guarded job endpoints of the API.
type JobHandler struct {
	BaseHandler
	jobService services.JobService
}

func NewJobHandler(base BaseHandler, jobService services.JobService) *JobHandler {
	return &JobHandler{BaseHandler: base, jobService: jobService}
}

// ListJobs handles GET /api/jobs/. Only active jobs, newest first, optionally
// narrowed by ?category=.
func (h *JobHandler) ListJobs(c *gin.Context) {
	var categoryID *uint
	if raw := c.Query("category"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 64); err == nil {
			v := uint(id)
			categoryID = &v
		}
	}

	jobs, _, err := h.jobService.ListActiveJobs(categoryID)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	summaries := make([]dto.JobSummary, 0, len(jobs))
	for i := range jobs {
		summaries = append(summaries, dto.NewJobSummary(&jobs[i]))
	}
	c.JSON(http.StatusOK, summaries)
}

// GetJob handles GET /api/jobs/:id/. Inactive jobs look exactly like missing
// ones.
func (h *JobHandler) GetJob(c *gin.Context) {
	jobID, ok := h.ParamUint(c, "id")
	if !ok {
		return
	}

	callerID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	job, _, err := h.jobService.GetJobDetail(jobID, &callerID)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewJobDetail(job))
}
