package resumes

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"tailor-backend/internal/extract"
	"tailor-backend/internal/sessions"
	"tailor-backend/internal/shared/server/respond"
	"tailor-backend/internal/shared/util"
	"tailor-backend/internal/skills"
)

const maxUploadBytes = 5 << 20

// Handler exposes the resume and cover-letter workflow over HTTP.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches workflow routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.PUT("/sessions/:id/inputs", h.setInputs)
	rg.POST("/sessions/:id/resume-file", h.uploadResume)
	rg.POST("/sessions/:id/analyze", h.analyze)
	rg.POST("/sessions/:id/generate", h.generate)
}

func (h *Handler) setInputs(c *gin.Context) {
	var req inputsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	session, err := h.Svc.SetInputs(c.Request.Context(), c.Param("id"), Inputs{
		ResumeText:     req.ResumeText,
		JobDescription: req.JobDescription,
		CompanyName:    req.CompanyName,
		RecipientName:  req.RecipientName,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	tagSession(c, session)
	respond.OK(c, sessions.ToResponse(session))
}

func (h *Handler) uploadResume(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is required", []map[string]string{
			{"field": "file", "issue": "missing"},
		})
		return
	}
	if fileHeader.Size > maxUploadBytes {
		respond.Error(c, http.StatusRequestEntityTooLarge, "file_too_large", "file exceeds the 5 MB limit", nil)
		return
	}
	if _, err := util.SanitizeFileName(fileHeader.Filename); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid file name", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "could not read file", nil)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes+1))
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "could not read file", nil)
		return
	}
	if len(data) > maxUploadBytes {
		respond.Error(c, http.StatusRequestEntityTooLarge, "file_too_large", "file exceeds the 5 MB limit", nil)
		return
	}

	text, err := extract.TextFromBytes(c.Request.Context(), data, fileHeader.Header.Get("Content-Type"), fileHeader.Filename)
	if err != nil {
		switch {
		case errors.Is(err, extract.ErrUnsupportedType):
			respond.Error(c, http.StatusUnsupportedMediaType, "unsupported_type", "upload a PDF, DOCX or plain text file", nil)
		case errors.Is(err, extract.ErrEmptyDocument):
			respond.Error(c, http.StatusUnprocessableEntity, "empty_document", "no text could be extracted from the file", nil)
		default:
			respond.Error(c, http.StatusUnprocessableEntity, "extract_error", "failed to extract text from the file", nil)
		}
		return
	}

	session, err := h.Svc.SetResumeText(c.Request.Context(), c.Param("id"), text)
	if err != nil {
		h.respondError(c, err)
		return
	}
	tagSession(c, session)
	respond.OK(c, sessions.ToResponse(session))
}

func (h *Handler) analyze(c *gin.Context) {
	session, err := h.Svc.Analyze(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	tagSession(c, session)
	respond.OK(c, sessions.ToResponse(session))
}

func (h *Handler) generate(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	session, err := h.Svc.Generate(c.Request.Context(), c.Param("id"), req.SelectedSkills)
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
		respond.Error(c, http.StatusConflict, "wrong_workflow", "this session runs the meal-plan workflow", nil)
	case errors.Is(err, sessions.ErrInvalidTransition):
		respond.Error(c, http.StatusConflict, "invalid_state", err.Error(), nil)
	case errors.Is(err, ErrMissingResume):
		respond.Error(c, http.StatusBadRequest, "validation_error", ErrMissingResume.Error(), []map[string]string{
			{"field": "resumeText", "issue": "required"},
		})
	case errors.Is(err, ErrMissingJobDescription):
		respond.Error(c, http.StatusBadRequest, "validation_error", ErrMissingJobDescription.Error(), []map[string]string{
			{"field": "jobDescription", "issue": "required"},
		})
	case errors.Is(err, ErrMissingCompany):
		respond.Error(c, http.StatusBadRequest, "validation_error", ErrMissingCompany.Error(), []map[string]string{
			{"field": "companyName", "issue": "required"},
		})
	case errors.Is(err, ErrMissingRecipient):
		respond.Error(c, http.StatusBadRequest, "validation_error", ErrMissingRecipient.Error(), []map[string]string{
			{"field": "recipientName", "issue": "required"},
		})
	case errors.Is(err, skills.ErrTooFewSelected),
		errors.Is(err, skills.ErrTooManySelected),
		errors.Is(err, skills.ErrUnknownSkill):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), []map[string]string{
			{"field": "selectedSkills", "issue": "invalid"},
		})
	case errors.Is(err, ErrNoSkillsFound), errors.Is(err, ErrGenerationFailed):
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
