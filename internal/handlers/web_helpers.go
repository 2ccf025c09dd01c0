package handlers

import (
	"net/http"

	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/services"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// Flash is one message queued for the next rendered page.
type Flash struct {
	Kind    string // success, warning, error
	Message string
}

const (
	flashSuccess = "success"
	flashWarning = "warning"
	flashError   = "error"
)

func addFlash(c *gin.Context, kind, message string) {
	session := sessions.Default(c)
	session.AddFlash(message, kind)
	if err := session.Save(); err != nil {
		logger.CtxWithError(c.Request.Context(), "failed to save session flash", err)
	}
}

// popFlashes drains every queued flash, in kind order, and persists the drain.
func popFlashes(c *gin.Context) []Flash {
	session := sessions.Default(c)
	var flashes []Flash
	for _, kind := range []string{flashSuccess, flashWarning, flashError} {
		for _, v := range session.Flashes(kind) {
			if msg, ok := v.(string); ok {
				flashes = append(flashes, Flash{Kind: kind, Message: msg})
			}
		}
	}
	if err := session.Save(); err != nil {
		logger.CtxWithError(c.Request.Context(), "failed to save session after flashes", err)
	}
	return flashes
}

// currentUser loads the session user, if any. Nil means anonymous.
func currentUser(c *gin.Context, authService services.AuthService) *models.User {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return nil
	}
	user, err := authService.GetUser(userID)
	if err != nil {
		return nil
	}
	return user
}

// pageData merges the per-page fields with the navigation context every
// template expects.
func pageData(c *gin.Context, user *models.User, fields gin.H) gin.H {
	data := gin.H{
		"User":    user,
		"Flashes": popFlashes(c),
	}
	for k, v := range fields {
		data[k] = v
	}
	return data
}

func renderNotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "404.html", gin.H{})
}
