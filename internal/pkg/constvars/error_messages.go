package constvars

const (
	ErrClientCannotProcessRecord = "Cannot process this submission"
	ErrClientInvalidSpec         = "Specification file is invalid"
	ErrClientRegistryUnavailable = "Registry is unavailable"

	ErrDevSchemaViolation      = "spec failed schema validation"
	ErrDevDuplicateSpec        = "duplicate spec for the same id and version"
	ErrDevRegistryPathMissing  = "registry path does not exist"
	ErrDevMeasureNotFound      = "measure spec not found"
	ErrDevBindingNotFound      = "binding spec not found"
	ErrDevMissingFormID        = "submission carries no form_id"
	ErrDevMissingItemMap       = "no item map configured for this form and measure"
	ErrDevUnknownDomain        = "no processor registered for measure kind"
	ErrDevDomainNotImplemented = "domain processor is a stub"
	ErrDevUnmappedField        = "submission contains fields absent from the item map"
	ErrDevInvalidSubmission    = "submission failed structural validation"
	ErrDevCannotParseJSON      = "cannot parse JSON"
	ErrDevCannotMarshalJSON    = "cannot marshal JSON"
	ErrDevStoreUnavailable     = "item-map store unavailable"

	ResponseUnknown = "unknown"
)
