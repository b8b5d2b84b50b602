package models

// ResolutionEvent is one entry in the append-only log of field-to-item
// resolution decisions kept by the form-input store.
type ResolutionEvent struct {
	Timestamp       string `json:"timestamp"`
	FormID          string `json:"form_id"`
	MeasureID       string `json:"measure_id"`
	FieldID         string `json:"field_id"`
	CandidateItemID string `json:"candidate_item_id"`
	Accepted        bool   `json:"accepted"`
	Reason          string `json:"reason,omitempty"`
}
