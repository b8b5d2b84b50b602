package constvars

const (
	LoggingSubmissionIDKey = "submission_id"
	LoggingFormIDKey       = "form_id"
	LoggingMeasureIDKey    = "measure_id"
	LoggingBindingIDKey    = "binding_id"
	LoggingScaleIDKey      = "scale_id"
	LoggingItemIDKey       = "item_id"
	LoggingFieldIDKey      = "field_id"
	LoggingVersionKey      = "version"
	LoggingKindKey         = "kind"
	LoggingEventCountKey   = "event_count"
	LoggingRecordCountKey  = "record_count"
	LoggingWorkerCountKey  = "worker_count"
	LoggingPathKey         = "path"
	LoggingBackendKey      = "backend"
)
