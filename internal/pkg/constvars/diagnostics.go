package constvars

// Semantic diagnostic codes. These are recorded on the ProcessingResult
// and never abort a submission.
const (
	DiagMissingBinding    = "MISSING_BINDING"
	DiagDuplicateField    = "DUPLICATE_FIELD"
	DiagUnrecognizedValue = "UNRECOGNIZED_VALUE"
	DiagValueOutOfRange   = "VALUE_OUT_OF_RANGE"
	DiagUnknownItem       = "UNKNOWN_ITEM"
	DiagScaleIncomplete   = "SCALE_INCOMPLETE"
	DiagScaleNotScorable  = "SCALE_NOT_SCORABLE"
	DiagScaleOutOfRange   = "SCALE_OUT_OF_RANGE"
	DiagNoInterpretation  = "NO_INTERPRETATION_BAND"
	DiagUnmappedFieldSkip = "UNMAPPED_FIELD_SKIPPED"
	DiagScaleProrated     = "SCALE_PRORATED"
)

// Pipeline stages, used on diagnostics entries.
const (
	StageMapping        = "mapping"
	StageRecoding       = "recoding"
	StageValidation     = "validation"
	StageScoring        = "scoring"
	StageInterpretation = "interpretation"
	StageBuilding       = "building"
)

// Configuration error codes. These abort the affected submission.
const (
	ErrCodeSchemaViolation      = "SchemaViolation"
	ErrCodeDuplicateSpec        = "DuplicateSpec"
	ErrCodeRegistryPathMissing  = "RegistryPathMissing"
	ErrCodeMissingFormID        = "MissingFormId"
	ErrCodeMissingItemMap       = "MissingItemMap"
	ErrCodeUnknownMeasure       = "UnknownMeasure"
	ErrCodeUnknownBinding       = "UnknownBinding"
	ErrCodeUnknownDomain        = "UnknownDomain"
	ErrCodeDomainNotImplemented = "DomainNotImplemented"
	ErrCodeUnmappedField        = "UnmappedField"
	ErrCodeInvalidSubmission    = "InvalidSubmission"
	ErrCodeStoreUnavailable     = "StoreUnavailable"
)
