package handlers

import (
	"net/http"
	"strconv"

	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/internal/validator"
	"jobboard_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// WebAdminHandler serves the owner pages: dashboard, job creation, applicant
// review. Non-admin visitors are bounced home rather than shown an error.
type WebAdminHandler struct {
	BaseHandler
	adminService services.AdminService
	authService  services.AuthService
}

func NewWebAdminHandler(base BaseHandler, adminService services.AdminService, authService services.AuthService) *WebAdminHandler {
	return &WebAdminHandler{BaseHandler: base, adminService: adminService, authService: authService}
}

// redirectIfForbidden sends non-admins home. Returns true when it redirected.
func (h *WebAdminHandler) redirectIfForbidden(c *gin.Context, err error) bool {
	if apperrors.Is(err, apperrors.ErrInsufficientPermissions) {
		addFlash(c, flashWarning, "You do not have permission to access that page")
		c.Redirect(http.StatusFound, "/")
		return true
	}
	return false
}

func (h *WebAdminHandler) Dashboard(c *gin.Context) {
	callerID, _ := middleware.GetUserID(c)

	data, err := h.adminService.Dashboard(callerID)
	if err != nil {
		if h.redirectIfForbidden(c, err) {
			return
		}
		apperrors.HandleError(c, err)
		return
	}

	user := currentUser(c, h.authService)
	c.HTML(http.StatusOK, "admin_dashboard.html", pageData(c, user, gin.H{
		"Jobs":              data.Jobs,
		"TotalApplications": data.TotalApplications,
	}))
}

func (h *WebAdminHandler) CreateJobPage(c *gin.Context) {
	callerID, _ := middleware.GetUserID(c)

	// The permission check runs against the dashboard so the page behaves
	// like the rest of the admin surface.
	if _, err := h.adminService.Dashboard(callerID); err != nil {
		if h.redirectIfForbidden(c, err) {
			return
		}
		apperrors.HandleError(c, err)
		return
	}

	categories, err := h.adminService.Categories()
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	user := currentUser(c, h.authService)
	c.HTML(http.StatusOK, "create_job.html", pageData(c, user, gin.H{
		"Categories": categories,
		"JobTypes":   models.JobTypes,
		"Form":       &dto.CreateJobRequest{},
		"Errors":     map[string]string{},
	}))
}

func (h *WebAdminHandler) CreateJob(c *gin.Context) {
	callerID, _ := middleware.GetUserID(c)

	var req dto.CreateJobRequest
	bindErr := c.ShouldBind(&req)

	renderErrors := func(errs map[string]string) {
		categories, cerr := h.adminService.Categories()
		if cerr != nil {
			apperrors.HandleError(c, cerr)
			return
		}
		user := currentUser(c, h.authService)
		c.HTML(http.StatusOK, "create_job.html", pageData(c, user, gin.H{
			"Categories": categories,
			"JobTypes":   models.JobTypes,
			"Form":       &req,
			"Errors":     errs,
		}))
	}

	if bindErr != nil {
		renderErrors(map[string]string{"form": "Invalid form data"})
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		if ve, ok := err.(*validator.ValidationError); ok {
			renderErrors(ve.Errors)
			return
		}
		renderErrors(map[string]string{"form": "Invalid form data"})
		return
	}

	if _, err := h.adminService.CreateJob(callerID, &req); err != nil {
		if h.redirectIfForbidden(c, err) {
			return
		}
		if errs := fieldErrors(err); errs != nil {
			renderErrors(errs)
			return
		}
		apperrors.HandleError(c, err)
		return
	}

	addFlash(c, flashSuccess, "Job posted successfully!")
	c.Redirect(http.StatusFound, "/admin-dashboard/")
}

// ViewApplications lists the applicants of an owned job.
func (h *WebAdminHandler) ViewApplications(c *gin.Context) {
	callerID, _ := middleware.GetUserID(c)

	jobID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		renderNotFound(c)
		return
	}

	job, applications, err := h.adminService.ViewApplications(callerID, uint(jobID))
	if err != nil {
		if h.redirectIfForbidden(c, err) {
			return
		}
		if apperrors.Is(err, apperrors.ErrJobNotFound) {
			renderNotFound(c)
			return
		}
		apperrors.HandleError(c, err)
		return
	}

	user := currentUser(c, h.authService)
	c.HTML(http.StatusOK, "view_applications.html", pageData(c, user, gin.H{
		"Job":          job,
		"Applications": applications,
		"Statuses": []models.ApplicationStatus{
			models.ApplicationStatusPending,
			models.ApplicationStatusReviewed,
			models.ApplicationStatusAccepted,
			models.ApplicationStatusRejected,
		},
	}))
}

// ToggleJobActive flips catalog visibility of an owned job. The form carries
// the target state.
func (h *WebAdminHandler) ToggleJobActive(c *gin.Context) {
	callerID, _ := middleware.GetUserID(c)

	jobID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		renderNotFound(c)
		return
	}

	active := c.PostForm("active") == "true"
	if err := h.adminService.SetJobActive(callerID, uint(jobID), active); err != nil {
		if h.redirectIfForbidden(c, err) {
			return
		}
		if apperrors.Is(err, apperrors.ErrJobNotFound) {
			renderNotFound(c)
			return
		}
		apperrors.HandleError(c, err)
		return
	}

	if active {
		addFlash(c, flashSuccess, "Job is now visible in the catalog")
	} else {
		addFlash(c, flashSuccess, "Job hidden from the catalog")
	}
	c.Redirect(http.StatusFound, "/admin-dashboard/")
}

// UpdateApplicationStatus records the review decision for an application.
func (h *WebAdminHandler) UpdateApplicationStatus(c *gin.Context) {
	callerID, _ := middleware.GetUserID(c)

	applicationID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		renderNotFound(c)
		return
	}

	status := c.PostForm("status")
	if err := h.adminService.UpdateApplicationStatus(callerID, uint(applicationID), status); err != nil {
		if h.redirectIfForbidden(c, err) {
			return
		}
		switch {
		case apperrors.Is(err, apperrors.ErrApplicationNotFound):
			renderNotFound(c)
		case apperrors.Is(err, apperrors.ErrInvalidApplicationStatus):
			addFlash(c, flashError, "Invalid application status")
			c.Redirect(http.StatusFound, "/admin-dashboard/")
		default:
			apperrors.HandleError(c, err)
		}
		return
	}

	addFlash(c, flashSuccess, "Application status updated")
	redirect := c.PostForm("next")
	if redirect == "" {
		redirect = "/admin-dashboard/"
	}
	c.Redirect(http.StatusFound, redirect)
}
