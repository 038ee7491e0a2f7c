package resumes

// inputsRequest is the body of PUT /sessions/:id/inputs. All fields are
// optional; absent fields leave the stored value untouched.
type inputsRequest struct {
	ResumeText     string `json:"resumeText"`
	JobDescription string `json:"jobDescription"`
	CompanyName    string `json:"companyName"`
	RecipientName  string `json:"recipientName"`
}

// generateRequest is the body of POST /sessions/:id/generate.
type generateRequest struct {
	SelectedSkills []string `json:"selectedSkills"`
}
