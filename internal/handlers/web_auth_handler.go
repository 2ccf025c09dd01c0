package handlers

import (
	"net/http"
	"strings"

	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/internal/validator"
	"jobboard_backend/pkg/apperrors"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// WebAuthHandler serves the account pages of the web surface.
type WebAuthHandler struct {
	BaseHandler
	authService        services.AuthService
	applicationService services.ApplicationService
}

func NewWebAuthHandler(base BaseHandler, authService services.AuthService, applicationService services.ApplicationService) *WebAuthHandler {
	return &WebAuthHandler{
		BaseHandler:        base,
		authService:        authService,
		applicationService: applicationService,
	}
}

// fieldErrors pulls the per-field message map out of a validation failure, if
// that is what err is.
func fieldErrors(err error) map[string]string {
	appErr, ok := apperrors.AsAppError(err)
	if !ok {
		return nil
	}
	if m, ok := appErr.Details.(map[string]string); ok {
		return m
	}
	return nil
}

func (h *WebAuthHandler) RegisterPage(c *gin.Context) {
	user := currentUser(c, h.authService)
	c.HTML(http.StatusOK, "register.html", pageData(c, user, gin.H{
		"Form":   &dto.RegisterRequest{},
		"Errors": map[string]string{},
	}))
}

// Register creates the account and logs the new user straight in.
func (h *WebAuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		c.HTML(http.StatusOK, "register.html", pageData(c, nil, gin.H{
			"Form":   &req,
			"Errors": map[string]string{"form": "Invalid form data"},
		}))
		return
	}

	renderErrors := func(errs map[string]string) {
		c.HTML(http.StatusOK, "register.html", pageData(c, nil, gin.H{
			"Form":   &req,
			"Errors": errs,
		}))
	}

	if err := h.validator.Validate(&req); err != nil {
		if ve, ok := err.(*validator.ValidationError); ok {
			renderErrors(ve.Errors)
			return
		}
		renderErrors(map[string]string{"form": "Invalid form data"})
		return
	}

	user, err := h.authService.Register(&req)
	if err != nil {
		if errs := fieldErrors(err); errs != nil {
			renderErrors(errs)
			return
		}
		renderErrors(map[string]string{"form": "Registration failed, please try again"})
		return
	}

	h.logIn(c, user.ID)
	addFlash(c, flashSuccess, "Registration successful. Welcome, "+user.Username+"!")
	c.Redirect(http.StatusFound, "/")
}

func (h *WebAuthHandler) LoginPage(c *gin.Context) {
	user := currentUser(c, h.authService)
	c.HTML(http.StatusOK, "login.html", pageData(c, user, gin.H{
		"Next": c.Query("next"),
	}))
}

// Login authenticates the form credentials. A bad pair re-renders the page
// with a neutral message rather than redirecting.
func (h *WebAuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	_ = c.ShouldBind(&req)
	next := c.PostForm("next")

	user, err := h.authService.Authenticate(req.Username, req.Password)
	if err != nil {
		c.HTML(http.StatusOK, "login.html", pageData(c, nil, gin.H{
			"Error":    "Invalid username or password",
			"Username": req.Username,
			"Next":     next,
		}))
		return
	}

	h.logIn(c, user.ID)
	if next == "" || !strings.HasPrefix(next, "/") {
		next = "/"
	}
	c.Redirect(http.StatusFound, next)
}

func (h *WebAuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	_ = session.Save()
	addFlash(c, flashSuccess, "You have been logged out")
	c.Redirect(http.StatusFound, "/")
}

// ProfilePage shows the account details and the user's applications.
func (h *WebAuthHandler) ProfilePage(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.Redirect(http.StatusFound, "/accounts/login/?next=/accounts/profile/")
		return
	}

	user, err := h.authService.GetUser(userID)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	applications, err := h.applicationService.ListMine(userID)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.HTML(http.StatusOK, "profile.html", pageData(c, user, gin.H{
		"Applications": applications,
	}))
}

// ChangePassword handles the profile form POST. All refresh tokens are
// revoked on success.
func (h *WebAuthHandler) ChangePassword(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.Redirect(http.StatusFound, "/accounts/login/?next=/accounts/profile/")
		return
	}

	var req dto.ChangePasswordRequest
	if !h.BindAndValidateForm(c, &req) {
		return
	}

	if err := h.authService.ChangePassword(userID, req.CurrentPassword, req.NewPassword); err != nil {
		if appErr, ok := apperrors.AsAppError(err); ok {
			addFlash(c, flashError, appErr.Message)
		} else {
			addFlash(c, flashError, "Could not change password")
		}
		c.Redirect(http.StatusFound, "/accounts/profile/")
		return
	}

	addFlash(c, flashSuccess, "Password changed successfully")
	c.Redirect(http.StatusFound, "/accounts/profile/")
}

func (h *WebAuthHandler) logIn(c *gin.Context, userID uint) {
	session := sessions.Default(c)
	session.Set(middleware.SessionUserIDKey, userID)
	_ = session.Save()
}
