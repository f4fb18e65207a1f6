package roadmaps

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"roadmap-backend/internal/roadmap"
	"roadmap-backend/internal/shared/server/middleware"
	"roadmap-backend/internal/shared/server/respond"
	"roadmap-backend/internal/shared/telemetry"
	"roadmap-backend/internal/shared/util"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches roadmap routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/roadmap", h.current)
	rg.POST("/roadmap/preview", h.preview)
	rg.GET("/roadmap/export.xlsx", h.export)
}

func (h *Handler) current(c *gin.Context) {
	rec, ok := h.load(c)
	if !ok {
		return
	}
	respond.OK(c, rec)
}

func (h *Handler) preview(c *gin.Context) {
	if c.Query("flow") == "legacy" {
		var answers roadmap.LegacyAnswers
		if err := c.ShouldBindJSON(&answers); err != nil {
			respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
			return
		}
		respond.OK(c, h.Svc.PreviewLegacy(answers))
		return
	}

	var answers roadmap.AssessmentAnswers
	if err := c.ShouldBindJSON(&answers); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	c.Set(middleware.StageKey, string(answers.CurrentStage))
	respond.OK(c, h.Svc.Preview(answers))
}

func (h *Handler) export(c *gin.Context) {
	rec, ok := h.load(c)
	if !ok {
		return
	}
	data, err := ExportXLSX(rec)
	if err != nil {
		telemetry.Error("roadmap.export_failed", map[string]any{
			"user_id": rec.UserID,
			"error":   err.Error(),
		})
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to export roadmap", nil)
		return
	}
	name, err := util.SanitizeFileName(fmt.Sprintf("roadmap-%s.xlsx", rec.GeneratedAt.Format("2006-01-02")))
	if err != nil {
		name = "roadmap.xlsx"
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, name))
	c.Data(http.StatusOK, xlsxContentType, data)
}

func (h *Handler) load(c *gin.Context) (Record, bool) {
	rec, err := h.Svc.Current(c.Request.Context(), middleware.UserIDFromContext(c))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "no roadmap yet; submit an assessment first", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing identity", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load roadmap", nil)
		}
		return Record{}, false
	}
	return rec, true
}
