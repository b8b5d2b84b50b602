package models

// MeasurementEvent is the per-(submission, measure) output record.
type MeasurementEvent struct {
	MeasurementEventID string        `json:"measurement_event_id"`
	MeasureID          string        `json:"measure_id"`
	MeasureVersion     string        `json:"measure_version"`
	SubjectID          string        `json:"subject_id"`
	Timestamp          string        `json:"timestamp"`
	Source             Source        `json:"source"`
	Observations       []Observation `json:"observations"`
	Telemetry          Telemetry     `json:"telemetry"`
}

// Source records where the submission came from. Platform is the first
// colon-delimited component of the form id, or "unknown".
type Source struct {
	FormID         string `json:"form_id"`
	Platform       string `json:"platform"`
	SubmissionID   string `json:"submission_id"`
	BindingID      string `json:"binding_id,omitempty"`
	BindingVersion string `json:"binding_version,omitempty"`
}

type Telemetry struct {
	Processor         string `json:"processor"`
	ProcessorVersion  string `json:"processor_version"`
	ProcessedAt       string `json:"processed_at"`
	ItemObservations  int    `json:"item_observations"`
	ScaleObservations int    `json:"scale_observations"`
}

// Observation is one scored atom: an item value or a scale score.
// Value is nil when the observation is missing. ValueType distinguishes
// integer-typed from prorated or averaged float scores.
type Observation struct {
	ObservationID string   `json:"observation_id"`
	MeasureID     string   `json:"measure_id"`
	Code          string   `json:"code"`
	Kind          string   `json:"kind"`
	Value         *float64 `json:"value"`
	ValueType     string   `json:"value_type,omitempty"`
	RawAnswer     string   `json:"raw_answer,omitempty"`
	Label         string   `json:"label,omitempty"`
	Missing       bool     `json:"missing"`
}
