package sessions

import "time"

// Response is the outward-facing representation of a session.
type Response struct {
	SessionID      string    `json:"sessionId"`
	Workflow       string    `json:"workflow"`
	State          string    `json:"state"`
	Skills         []string  `json:"skills,omitempty"`
	SelectedSkills []string  `json:"selectedSkills,omitempty"`
	Document       string    `json:"document,omitempty"`
	DocumentHTML   string    `json:"documentHtml,omitempty"`
	Error          string    `json:"error,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// ToResponse converts a session to its API shape. Generated artifacts are
// only exposed once the workflow reached done.
func ToResponse(session Session) Response {
	resp := Response{
		SessionID:      session.ID,
		Workflow:       string(session.Workflow),
		State:          string(session.State),
		Skills:         session.Skills,
		SelectedSkills: session.SelectedSkills,
		CreatedAt:      session.CreatedAt,
		UpdatedAt:      session.UpdatedAt,
	}
	if session.State == StateDone {
		resp.Document = session.Document
		resp.DocumentHTML = session.DocumentHTML
	}
	if session.State == StateError {
		resp.Error = session.LastError
	}
	return resp
}
