package mealplans

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tailor-backend/internal/sessions"
	"tailor-backend/internal/shared/server/respond"
)

// Handler exposes the meal-plan workflow over HTTP.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches workflow routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.PUT("/sessions/:id/profile", h.setProfile)
	rg.POST("/sessions/:id/plan", h.generate)
}

func (h *Handler) setProfile(c *gin.Context) {
	var req profileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if issues := req.validate(); len(issues) > 0 {
		respond.Error(c, http.StatusBadRequest, "validation_error", "profile has invalid fields", issues)
		return
	}

	session, err := h.Svc.SetProfile(c.Request.Context(), c.Param("id"), req.toProfile())
	if err != nil {
		h.respondError(c, err)
		return
	}
	tagSession(c, session)
	respond.OK(c, sessions.ToResponse(session))
}

func (h *Handler) generate(c *gin.Context) {
	session, err := h.Svc.Generate(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	tagSession(c, session)
	respond.OK(c, sessions.ToResponse(session))
}

func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, sessions.ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "session not found", nil)
	case errors.Is(err, ErrWrongWorkflow):
		respond.Error(c, http.StatusConflict, "wrong_workflow", "this session runs a resume workflow", nil)
	case errors.Is(err, sessions.ErrInvalidTransition):
		respond.Error(c, http.StatusConflict, "invalid_state", err.Error(), nil)
	case errors.Is(err, ErrMissingProfile):
		respond.Error(c, http.StatusBadRequest, "validation_error", ErrMissingProfile.Error(), []map[string]string{
			{"field": "profile", "issue": "required"},
		})
	case errors.Is(err, ErrGenerationFailed):
		respond.Error(c, http.StatusBadGateway, "generation_error", "The model request failed. The session is in the error state; reset it to try again.", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "unexpected error", nil)
	}
}

func tagSession(c *gin.Context, session sessions.Session) {
	c.Set("sessionId", session.ID)
	c.Set("workflow", string(session.Workflow))
	if session.LastTransition != "" {
		c.Set("stateTransition", session.LastTransition)
	}
}
