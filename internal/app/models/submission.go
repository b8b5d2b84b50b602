package models

// FormSubmission is the canonical, structurally-normalized input record.
// Structural normalization happens upstream; this stage only resolves
// semantics.
type FormSubmission struct {
	FormID       string           `json:"form_id"`
	SubmissionID string           `json:"submission_id" validate:"required"`
	SubjectID    string           `json:"subject_id,omitempty"`
	Respondent   *Respondent      `json:"respondent,omitempty"`
	Timestamp    string           `json:"timestamp"`
	Items        []SubmissionItem `json:"items"`
}

type Respondent struct {
	ID      string `json:"id"`
	Display string `json:"display,omitempty"`
}

// SubmissionItem pairs a platform field identifier with the raw answer.
// RawValue may be a string, a JSON number, or null.
type SubmissionItem struct {
	FieldID      string `json:"field_id"`
	RawValue     any    `json:"raw_value"`
	QuestionText string `json:"question_text,omitempty"`
}

// Subject returns subject_id, falling back to respondent.id.
func (s *FormSubmission) Subject() string {
	if s.SubjectID != "" {
		return s.SubjectID
	}
	if s.Respondent != nil {
		return s.Respondent.ID
	}
	return ""
}
