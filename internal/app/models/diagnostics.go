package models

// Diagnostic is a single recorded issue. Errors abort nothing by
// themselves; criticality is decided by the pipeline.
type Diagnostic struct {
	Code   string `json:"code"`
	Stage  string `json:"stage,omitempty"`
	Detail string `json:"detail"`
	ItemID string `json:"item_id,omitempty"`
}

// DiagnosticSummary is the per-record quality rollup.
type DiagnosticSummary struct {
	ItemsPresent      int `json:"items_present"`
	ItemsMissing      int `json:"items_missing"`
	ScalesScored      int `json:"scales_scored"`
	ScalesNotScorable int `json:"scales_not_scorable"`
}

// ProcessingDiagnostics is the diagnostics record emitted per
// submission. It is the per-record log; no free-form text is written.
type ProcessingDiagnostics struct {
	SubmissionID string            `json:"submission_id"`
	MeasureID    string            `json:"measure_id"`
	Errors       []Diagnostic      `json:"errors"`
	Warnings     []Diagnostic      `json:"warnings"`
	Summary      DiagnosticSummary `json:"summary"`
}

// AddError appends an error-severity diagnostic.
func (d *ProcessingDiagnostics) AddError(code, stage, detail, itemID string) {
	d.Errors = append(d.Errors, Diagnostic{Code: code, Stage: stage, Detail: detail, ItemID: itemID})
}

// AddWarning appends a warning-severity diagnostic.
func (d *ProcessingDiagnostics) AddWarning(code, stage, detail, itemID string) {
	d.Warnings = append(d.Warnings, Diagnostic{Code: code, Stage: stage, Detail: detail, ItemID: itemID})
}

// HasError reports whether a diagnostic with the given code was recorded
// at error severity.
func (d *ProcessingDiagnostics) HasError(code string) bool {
	for _, diag := range d.Errors {
		if diag.Code == code {
			return true
		}
	}
	return false
}

// ProcessingResult is the per-submission outcome: events plus the
// diagnostics record. Success means no configuration error occurred and
// every scale was scorable.
type ProcessingResult struct {
	FormSubmissionID string                  `json:"form_submission_id"`
	Success          bool                    `json:"success"`
	Events           []MeasurementEvent      `json:"events"`
	Diagnostics      []ProcessingDiagnostics `json:"diagnostics"`
}
