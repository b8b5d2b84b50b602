package constvars

// Processor identity recorded in event telemetry.
const (
	ProcessorName    = "finalform"
	ProcessorVersion = "1.0.0"
)

// Measure kinds. Only KindQuestionnaire has a full processor; the rest
// are registered as explicit stubs.
const (
	KindQuestionnaire = "questionnaire"
	KindLab           = "lab"
	KindVital         = "vital"
	KindWearable      = "wearable"
)

// Scoring methods.
const (
	MethodSum           = "sum"
	MethodAverage       = "average"
	MethodSumThenDouble = "sum_then_double"
)

// Observation kinds and value types.
const (
	ObservationKindItem  = "item"
	ObservationKindScale = "scale"

	ValueTypeInteger = "integer"
	ValueTypeFloat   = "float"
)

// Binding locator strategies.
const (
	BindByFieldKey     = "field_key"
	BindByQuestionText = "question_text"
)

// Platform tag used when the form_id carries no platform prefix.
const PlatformUnknown = "unknown"

// Item-map store backends.
const (
	MappingStoreFile  = "file"
	MappingStoreRedis = "redis"
)

// Registry layout.
const (
	MeasureRegistrySubdir = "measures"
	BindingRegistrySubdir = "bindings"
	SpecFileExtension     = ".json"
)

// Exit codes for the run command.
const (
	ExitOK             = 0
	ExitStartupFailure = 1
	ExitRecordFailures = 2
)
