package handlers

import (
	"net/http"
	"strconv"

	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// WebJobHandler serves the catalog and application pages of the web surface.
type WebJobHandler struct {
	BaseHandler
	jobService         services.JobService
	applicationService services.ApplicationService
	authService        services.AuthService
}

func NewWebJobHandler(
	base BaseHandler,
	jobService services.JobService,
	applicationService services.ApplicationService,
	authService services.AuthService,
) *WebJobHandler {
	return &WebJobHandler{
		BaseHandler:        base,
		jobService:         jobService,
		applicationService: applicationService,
		authService:        authService,
	}
}

// Home renders the catalog: active jobs newest-first, with the category
// filter applied when ?category= names one.
func (h *WebJobHandler) Home(c *gin.Context) {
	var categoryID *uint
	selected := c.Query("category")
	if selected != "" {
		if id, err := strconv.ParseUint(selected, 10, 64); err == nil {
			v := uint(id)
			categoryID = &v
		}
	}

	jobs, categories, err := h.jobService.ListActiveJobs(categoryID)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	user := currentUser(c, h.authService)
	c.HTML(http.StatusOK, "home.html", pageData(c, user, gin.H{
		"Jobs":             jobs,
		"Categories":       categories,
		"SelectedCategory": selected,
	}))
}

// JobDetail renders a single active job. Inactive and unknown ids both 404.
func (h *WebJobHandler) JobDetail(c *gin.Context) {
	jobID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		renderNotFound(c)
		return
	}

	var callerID *uint
	if id, ok := middleware.GetUserID(c); ok {
		callerID = &id
	}

	job, hasApplied, err := h.jobService.GetJobDetail(uint(jobID), callerID)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrJobNotFound) {
			renderNotFound(c)
			return
		}
		apperrors.HandleError(c, err)
		return
	}

	user := currentUser(c, h.authService)
	c.HTML(http.StatusOK, "job_detail.html", pageData(c, user, gin.H{
		"Job":        job,
		"HasApplied": hasApplied,
	}))
}

// ApplyPage renders the application form. A user who already applied is sent
// back to the job with a warning instead.
func (h *WebJobHandler) ApplyPage(c *gin.Context) {
	jobID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		renderNotFound(c)
		return
	}

	callerID, _ := middleware.GetUserID(c)
	job, hasApplied, err := h.jobService.GetJobDetail(uint(jobID), &callerID)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrJobNotFound) {
			renderNotFound(c)
			return
		}
		apperrors.HandleError(c, err)
		return
	}

	if hasApplied {
		addFlash(c, flashWarning, "You have already applied for this job")
		c.Redirect(http.StatusFound, "/job/"+c.Param("id")+"/")
		return
	}

	user := currentUser(c, h.authService)
	c.HTML(http.StatusOK, "apply_job.html", pageData(c, user, gin.H{
		"Job":    job,
		"Errors": map[string]string{},
	}))
}

// Apply submits the application form.
func (h *WebJobHandler) Apply(c *gin.Context) {
	jobID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		renderNotFound(c)
		return
	}
	callerID, _ := middleware.GetUserID(c)

	coverLetter := c.PostForm("cover_letter")
	var upload *dto.ResumeUpload
	if header, ferr := c.FormFile("resume"); ferr == nil {
		var cleanup func()
		upload, cleanup, ferr = resumeUpload(header)
		if ferr != nil {
			addFlash(c, flashError, "Could not read resume upload")
			c.Redirect(http.StatusFound, "/job/"+c.Param("id")+"/apply/")
			return
		}
		defer cleanup()
	}

	_, err = h.applicationService.Submit(c.Request.Context(), callerID, uint(jobID), coverLetter, upload)
	if err != nil {
		switch {
		case apperrors.Is(err, apperrors.ErrAlreadyApplied):
			addFlash(c, flashWarning, "You have already applied for this job")
			c.Redirect(http.StatusFound, "/job/"+c.Param("id")+"/")
		case apperrors.Is(err, apperrors.ErrJobNotFound):
			renderNotFound(c)
		default:
			if errs := fieldErrors(err); errs != nil {
				user := currentUser(c, h.authService)
				job, _, jerr := h.jobService.GetJobDetail(uint(jobID), &callerID)
				if jerr != nil {
					renderNotFound(c)
					return
				}
				c.HTML(http.StatusOK, "apply_job.html", pageData(c, user, gin.H{
					"Job":         job,
					"Errors":      errs,
					"CoverLetter": coverLetter,
				}))
				return
			}
			apperrors.HandleError(c, err)
		}
		return
	}

	addFlash(c, flashSuccess, "Your application has been submitted successfully!")
	c.Redirect(http.StatusFound, "/job/"+c.Param("id")+"/")
}
