package assessments

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"roadmap-backend/internal/shared/server/middleware"
	"roadmap-backend/internal/shared/server/respond"
	"roadmap-backend/internal/shared/telemetry"
)

// SubmitPath is the rate-limited submission route.
const SubmitPath = "/api/v1/assessments"

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches assessment routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/assessments", h.submit)
	rg.GET("/assessments/current", h.current)
	rg.GET("/assessments/schema", h.schema)
}

func (h *Handler) submit(c *gin.Context) {
	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Validation(c, "invalid assessment", bindingIssues(err))
		return
	}
	answers := req.toAnswers()
	c.Set(middleware.StageKey, string(answers.CurrentStage))

	result, err := h.Svc.Submit(c.Request.Context(), middleware.UserIDFromContext(c), answers)
	if err != nil {
		var verr *ValidationError
		switch {
		case errors.As(err, &verr):
			respond.Validation(c, "invalid assessment", verr.Issues)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing identity", nil)
		default:
			telemetry.Error("assessment.submit_failed", map[string]any{
				"user_id": middleware.UserIDFromContext(c),
				"error":   err.Error(),
			})
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to submit assessment", nil)
		}
		return
	}

	respond.Created(c, SubmitResponse{
		Assessment: toResponse(result.Assessment),
		Roadmap:    result.Roadmap,
	})
}

func (h *Handler) current(c *gin.Context) {
	a, err := h.Svc.Current(c.Request.Context(), middleware.UserIDFromContext(c))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "no assessment yet", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing identity", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load assessment", nil)
		}
		return
	}
	respond.OK(c, toResponse(a))
}

func (h *Handler) schema(c *gin.Context) {
	respond.OK(c, Schema())
}
