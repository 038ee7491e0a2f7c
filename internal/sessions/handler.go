package sessions

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tailor-backend/internal/export"
	"tailor-backend/internal/shared/metrics"
	"tailor-backend/internal/shared/server/respond"
	"tailor-backend/internal/shared/telemetry"
)

// Handler wires HTTP handlers to the sessions service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches session lifecycle routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/sessions", h.create)
	rg.GET("/sessions/:id", h.get)
	rg.POST("/sessions/:id/reset", h.reset)
	rg.DELETE("/sessions/:id", h.remove)
	rg.GET("/sessions/:id/export", h.export)
}

type createRequest struct {
	Workflow string `json:"workflow"`
}

func (h *Handler) create(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	workflow, err := ParseWorkflow(req.Workflow)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "workflow must be resume, cover_letter or meal_plan", []map[string]string{
			{"field": "workflow", "issue": "unknown"},
		})
		return
	}

	session, err := h.Svc.Create(c.Request.Context(), workflow)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to create session", nil)
		return
	}
	tagSession(c, session)

	respond.JSON(c, http.StatusCreated, ToResponse(session))
}

func (h *Handler) get(c *gin.Context) {
	session, ok := h.load(c)
	if !ok {
		return
	}
	respond.OK(c, ToResponse(session))
}

func (h *Handler) reset(c *gin.Context) {
	sessionID := c.Param("id")
	session, err := h.Svc.Reset(c.Request.Context(), sessionID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "session not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to reset session", nil)
		}
		return
	}
	tagSession(c, session)
	respond.OK(c, ToResponse(session))
}

func (h *Handler) remove(c *gin.Context) {
	sessionID := c.Param("id")
	if err := h.Svc.Delete(c.Request.Context(), sessionID); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "session not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to delete session", nil)
		}
		return
	}
	c.Status(http.StatusNoContent)
}

// export streams the generated document as a PDF download. The file is built
// on demand and never kept server-side.
func (h *Handler) export(c *gin.Context) {
	session, ok := h.load(c)
	if !ok {
		return
	}
	if session.State != StateDone || session.Document == "" {
		respond.Error(c, http.StatusConflict, "invalid_state", "nothing to export yet", nil)
		return
	}

	opts := export.DefaultOptions()
	opts.Title = exportTitle(session.Workflow)
	if v := c.Query("pageSize"); v != "" {
		opts.PageSize = v
	}
	if v := c.Query("font"); v != "" {
		opts.Font = v
	}
	if v := c.Query("fontSize"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			opts.FontSize = parsed
		}
	}
	if v := c.Query("margin"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			opts.MarginMm = parsed
		}
	}

	data, err := export.PDF(session.Document, opts)
	if err != nil {
		metrics.IncExportFailed()
		telemetry.Error("export.failed", map[string]any{
			"session_id": session.ID,
			"workflow":   session.Workflow,
			"error":      err.Error(),
		})
		respond.Error(c, http.StatusInternalServerError, "export_error", "Failed to export PDF. Please try again.", nil)
		return
	}
	metrics.IncExportCompleted()

	c.Header("Content-Disposition", `attachment; filename="`+exportFileName(session.Workflow)+`"`)
	c.Data(http.StatusOK, "application/pdf", data)
}

func (h *Handler) load(c *gin.Context) (Session, bool) {
	sessionID := c.Param("id")
	session, err := h.Svc.Get(c.Request.Context(), sessionID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "session not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch session", nil)
		}
		return Session{}, false
	}
	tagSession(c, session)
	return session, true
}

func tagSession(c *gin.Context, session Session) {
	c.Set("sessionId", session.ID)
	c.Set("workflow", string(session.Workflow))
	if session.LastTransition != "" {
		c.Set("stateTransition", session.LastTransition)
	}
}

func exportFileName(w Workflow) string {
	switch w {
	case WorkflowCoverLetter:
		return "tailored_cover_letter.pdf"
	case WorkflowMealPlan:
		return "meal_plan.pdf"
	default:
		return "tailored_resume.pdf"
	}
}

func exportTitle(w Workflow) string {
	switch w {
	case WorkflowCoverLetter:
		return "Tailored Cover Letter"
	case WorkflowMealPlan:
		return "Personalized Meal Plan"
	default:
		return "Tailored Resume"
	}
}
