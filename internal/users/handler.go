package users

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"roadmap-backend/internal/shared/server/middleware"
	"roadmap-backend/internal/shared/server/respond"
)

type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/me", h.me)
	rg.PATCH("/me/preferences", h.updatePreferences)
}

type preferencesRequest struct {
	Language string `json:"language" binding:"required"`
}

func (h *Handler) me(c *gin.Context) {
	if h.Svc == nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "service unavailable", nil)
		return
	}
	if middleware.IsGuest(c) {
		respond.Error(c, http.StatusUnauthorized, "unauthorized", "login required", nil)
		return
	}
	user, err := h.Svc.GetByID(c.Request.Context(), middleware.UserIDFromContext(c))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "user not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load user", nil)
		return
	}
	respond.OK(c, userResponse(user))
}

func (h *Handler) updatePreferences(c *gin.Context) {
	if h.Svc == nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "service unavailable", nil)
		return
	}
	if middleware.IsGuest(c) {
		respond.Error(c, http.StatusUnauthorized, "unauthorized", "login required", nil)
		return
	}
	var req preferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Validation(c, "language is required", []respond.FieldIssue{
			{Field: "language", Issue: "required"},
		})
		return
	}
	user, err := h.Svc.SetLanguage(c.Request.Context(), middleware.UserIDFromContext(c), req.Language)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidLanguage):
			respond.Validation(c, "unsupported language", []respond.FieldIssue{
				{Field: "language", Issue: "must be one of en, uk"},
			})
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "user not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to update preferences", nil)
		}
		return
	}
	respond.OK(c, userResponse(user))
}

func userResponse(user User) gin.H {
	return gin.H{
		"id":                 user.ID,
		"email":              user.Email,
		"fullName":           user.FullName,
		"pictureUrl":         user.PictureURL,
		"languagePreference": user.LanguagePreference,
	}
}
