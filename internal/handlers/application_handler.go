package handlers

import (
	"mime/multipart"
	"net/http"

	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// ApplicationHandler serves the applicant endpoints of the API.
type ApplicationHandler struct {
	BaseHandler
	applicationService services.ApplicationService
}

func NewApplicationHandler(base BaseHandler, applicationService services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{BaseHandler: base, applicationService: applicationService}
}

// resumeUpload adapts a multipart file header for the service layer. The
// returned close func must run after Submit.
func resumeUpload(header *multipart.FileHeader) (*dto.ResumeUpload, func(), error) {
	file, err := header.Open()
	if err != nil {
		return nil, nil, err
	}
	upload := &dto.ResumeUpload{
		Filename:    header.Filename,
		Size:        header.Size,
		ContentType: header.Header.Get("Content-Type"),
		Reader:      file,
	}
	return upload, func() { file.Close() }, nil
}

// Apply handles POST /api/jobs/:id/apply/ with a multipart body of
// cover_letter and resume.
func (h *ApplicationHandler) Apply(c *gin.Context) {
	jobID, ok := h.ParamUint(c, "id")
	if !ok {
		return
	}

	callerID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	coverLetter := c.PostForm("cover_letter")

	var upload *dto.ResumeUpload
	if header, err := c.FormFile("resume"); err == nil {
		var cleanup func()
		upload, cleanup, err = resumeUpload(header)
		if err != nil {
			apperrors.HandleError(c, apperrors.NewBadRequestError("Could not read resume upload"))
			return
		}
		defer cleanup()
	}

	application, err := h.applicationService.Submit(c.Request.Context(), callerID, jobID, coverLetter, upload)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Application submitted successfully",
		"id":      application.ID,
	})
}

// MyApplications handles GET /api/my-applications/, newest first.
func (h *ApplicationHandler) MyApplications(c *gin.Context) {
	callerID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	applications, err := h.applicationService.ListMine(callerID)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	responses := make([]dto.ApplicationResponse, 0, len(applications))
	for i := range applications {
		responses = append(responses, dto.NewApplicationResponse(&applications[i]))
	}
	c.JSON(http.StatusOK, responses)
}
