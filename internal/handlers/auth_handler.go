package handlers

import (
	"net/http"

	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// AuthHandler serves the token endpoints of the API surface.
type AuthHandler struct {
	BaseHandler
	authService services.AuthService
}

func NewAuthHandler(base BaseHandler, authService services.AuthService) *AuthHandler {
	return &AuthHandler{BaseHandler: base, authService: authService}
}

// ObtainTokenPair handles POST /api/token/. Valid credentials yield an access
// and refresh token pair; anything else is a neutral 401.
func (h *AuthHandler) ObtainTokenPair(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	user, err := h.authService.Authenticate(req.Username, req.Password)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	pair, err := h.authService.IssueTokens(user)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, pair)
}

// RefreshToken handles POST /api/token/refresh/. A valid, unexpired refresh
// token yields a fresh access token only.
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req dto.RefreshRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	access, err := h.authService.Refresh(req.Refresh)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AccessTokenResponse{Access: access})
}

// Logout handles POST /api/token/logout/, invalidating the refresh token.
// Unknown tokens still get a 200; there is nothing useful to reveal.
func (h *AuthHandler) Logout(c *gin.Context) {
	var req dto.RefreshRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.authService.Logout(req.Refresh); err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}
