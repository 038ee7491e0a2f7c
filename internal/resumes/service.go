package resumes

import (
	"context"
	"fmt"

	"tailor-backend/internal/llm"
	"tailor-backend/internal/prompt"
	"tailor-backend/internal/render"
	"tailor-backend/internal/sessions"
	"tailor-backend/internal/shared/metrics"
	"tailor-backend/internal/shared/telemetry"
	"tailor-backend/internal/shared/util"
	"tailor-backend/internal/skills"
)

// Service drives the resume and cover-letter workflows over a session.
type Service struct {
	Repo sessions.Repo
	LLM  llm.Client
}

// Inputs is the collected material for one tailoring run. Company and
// recipient only matter for cover letters.
type Inputs struct {
	ResumeText     string
	JobDescription string
	CompanyName    string
	RecipientName  string
}

// SetInputs stores (or overwrites) the collected inputs. Partial input is
// fine here; validation happens when analysis starts.
func (s *Service) SetInputs(ctx context.Context, sessionID string, in Inputs) (sessions.Session, error) {
	session, err := s.load(ctx, sessionID)
	if err != nil {
		return sessions.Session{}, err
	}
	if session.State == sessions.StateIdle {
		if err := session.Transition(sessions.StateCollecting); err != nil {
			return sessions.Session{}, err
		}
	}
	if session.State != sessions.StateCollecting {
		return sessions.Session{}, fmt.Errorf("%w: inputs are editable in collecting only, session is %s",
			sessions.ErrInvalidTransition, session.State)
	}

	if v := util.SanitizeText(in.ResumeText); v != "" {
		session.ResumeText = v
	}
	if v := util.SanitizeText(in.JobDescription); v != "" {
		session.JobDescription = v
	}
	if v := util.SanitizeText(in.CompanyName); v != "" {
		session.CompanyName = v
	}
	if v := util.SanitizeText(in.RecipientName); v != "" {
		session.RecipientName = v
	}

	if err := s.Repo.Update(ctx, session); err != nil {
		return sessions.Session{}, err
	}
	return session, nil
}

// SetResumeText replaces the resume text, used by the file upload path.
func (s *Service) SetResumeText(ctx context.Context, sessionID, text string) (sessions.Session, error) {
	return s.SetInputs(ctx, sessionID, Inputs{ResumeText: text})
}

// Analyze validates inputs, asks the model for the job's key skills and
// parses them into a selectable list. The call is synchronous: the session
// sits in analyzing only while the request is in flight.
func (s *Service) Analyze(ctx context.Context, sessionID string) (sessions.Session, error) {
	session, err := s.load(ctx, sessionID)
	if err != nil {
		return sessions.Session{}, err
	}
	if err := validateInputs(session); err != nil {
		return sessions.Session{}, err
	}
	if err := session.Transition(sessions.StateAnalyzing); err != nil {
		return sessions.Session{}, err
	}
	if err := s.Repo.Update(ctx, session); err != nil {
		return sessions.Session{}, err
	}

	p := prompt.ExtractSkills(session.JobDescription)
	reply, err := s.LLM.Generate(ctx, p)
	if err != nil {
		telemetry.Error("analyze.failed", map[string]any{
			"session_id":  session.ID,
			"workflow":    session.Workflow,
			"prompt_hash": util.HashPrompt(p),
			"error":       err.Error(),
		})
		return s.fail(ctx, session, "Failed to analyze the job description. Please try again.", ErrGenerationFailed, err)
	}

	parsed := skills.ParseNumberedList(reply)
	if len(parsed) == 0 {
		return s.fail(ctx, session, "Could not identify skills in the job description. Please check the text and try again.", ErrNoSkillsFound, nil)
	}

	session.Skills = parsed
	session.SelectedSkills = nil
	if err := session.Transition(sessions.StateSkillsReady); err != nil {
		return sessions.Session{}, err
	}
	if err := s.Repo.Update(ctx, session); err != nil {
		return sessions.Session{}, err
	}
	telemetry.Info("analyze.completed", map[string]any{
		"session_id":  session.ID,
		"workflow":    session.Workflow,
		"skill_count": len(parsed),
	})
	return session, nil
}

// Generate produces the tailored document from the selected skills, renders
// it to HTML and completes the session.
func (s *Service) Generate(ctx context.Context, sessionID string, selected []string) (sessions.Session, error) {
	session, err := s.load(ctx, sessionID)
	if err != nil {
		return sessions.Session{}, err
	}
	if err := skills.ValidateSelection(selected, session.Skills); err != nil {
		return sessions.Session{}, err
	}
	session.SelectedSkills = selected
	if err := session.Transition(sessions.StateGenerating); err != nil {
		return sessions.Session{}, err
	}
	if err := s.Repo.Update(ctx, session); err != nil {
		return sessions.Session{}, err
	}

	var p string
	if session.Workflow == sessions.WorkflowCoverLetter {
		p = prompt.CoverLetter(session.ResumeText, session.JobDescription, session.CompanyName, session.RecipientName, selected)
	} else {
		p = prompt.Resume(session.ResumeText, session.JobDescription, selected)
	}

	metrics.IncGenerationStarted()
	started := metrics.NowMillis()
	reply, err := s.LLM.Generate(ctx, p)
	if err != nil {
		metrics.IncGenerationFailed()
		telemetry.Error("generate.failed", map[string]any{
			"session_id":  session.ID,
			"workflow":    session.Workflow,
			"prompt_hash": util.HashPrompt(p),
			"error":       err.Error(),
		})
		return s.fail(ctx, session, "Failed to generate the document. Please try again.", ErrGenerationFailed, err)
	}
	metrics.ObserveGenerationDurationMs(metrics.NowMillis() - started)

	html, err := render.HTML(reply)
	if err != nil {
		metrics.IncGenerationFailed()
		return s.fail(ctx, session, "Failed to render the generated document.", ErrGenerationFailed, err)
	}

	session.Document = reply
	session.DocumentHTML = html
	if err := session.Transition(sessions.StateDone); err != nil {
		return sessions.Session{}, err
	}
	if err := s.Repo.Update(ctx, session); err != nil {
		return sessions.Session{}, err
	}
	metrics.IncGenerationCompleted()
	telemetry.Info("generate.completed", map[string]any{
		"session_id":  session.ID,
		"workflow":    session.Workflow,
		"prompt_hash": util.HashPrompt(p),
	})
	return session, nil
}

func (s *Service) load(ctx context.Context, sessionID string) (sessions.Session, error) {
	session, err := s.Repo.GetByID(ctx, sessionID)
	if err != nil {
		return sessions.Session{}, err
	}
	if session.Workflow != sessions.WorkflowResume && session.Workflow != sessions.WorkflowCoverLetter {
		return sessions.Session{}, ErrWrongWorkflow
	}
	return session, nil
}

// fail parks the session in the error state with a user-facing message and
// surfaces the categorised error to the handler.
func (s *Service) fail(ctx context.Context, session sessions.Session, message string, sentinel, cause error) (sessions.Session, error) {
	if err := session.Fail(message); err != nil {
		return sessions.Session{}, err
	}
	if err := s.Repo.Update(ctx, session); err != nil {
		return sessions.Session{}, err
	}
	if cause != nil {
		return session, fmt.Errorf("%w: %v", sentinel, cause)
	}
	return session, sentinel
}

func validateInputs(session sessions.Session) error {
	if session.ResumeText == "" {
		return ErrMissingResume
	}
	if session.JobDescription == "" {
		return ErrMissingJobDescription
	}
	if session.Workflow == sessions.WorkflowCoverLetter {
		if session.CompanyName == "" {
			return ErrMissingCompany
		}
		if session.RecipientName == "" {
			return ErrMissingRecipient
		}
	}
	return nil
}
