package exceptions

import (
	"fmt"

	"finalform-service/internal/pkg/constvars"
)

var (
	ErrSchemaViolation = func(err error, specPath string) *CustomError {
		detail := fmt.Sprintf("%s (%s)", constvars.ErrDevSchemaViolation, specPath)
		if err != nil {
			detail = fmt.Sprintf("%s: %s", detail, FormatAllValidationErrors(err))
		}
		return BuildNewCustomError(nil, constvars.ErrCodeSchemaViolation, constvars.ErrClientInvalidSpec, detail)
	}
	ErrDuplicateSpec = func(id, version string) *CustomError {
		return BuildNewCustomError(nil, constvars.ErrCodeDuplicateSpec, constvars.ErrClientInvalidSpec, fmt.Sprintf("%s: %s@%s", constvars.ErrDevDuplicateSpec, id, version))
	}
	ErrRegistryPathMissing = func(err error, path string) *CustomError {
		return BuildNewCustomError(err, constvars.ErrCodeRegistryPathMissing, constvars.ErrClientRegistryUnavailable, fmt.Sprintf("%s: %s", constvars.ErrDevRegistryPathMissing, path))
	}
	ErrMeasureNotFound = func(measureID, version string) *CustomError {
		return BuildNewCustomError(nil, constvars.ErrCodeUnknownMeasure, constvars.ErrClientCannotProcessRecord, fmt.Sprintf("%s: %s@%s", constvars.ErrDevMeasureNotFound, measureID, version))
	}
	ErrBindingNotFound = func(bindingID, version string) *CustomError {
		return BuildNewCustomError(nil, constvars.ErrCodeUnknownBinding, constvars.ErrClientCannotProcessRecord, fmt.Sprintf("%s: %s@%s", constvars.ErrDevBindingNotFound, bindingID, version))
	}
	ErrMissingFormID = func(submissionID string) *CustomError {
		return BuildNewCustomError(nil, constvars.ErrCodeMissingFormID, constvars.ErrClientCannotProcessRecord, fmt.Sprintf("%s (submission %s)", constvars.ErrDevMissingFormID, submissionID))
	}
	ErrMissingItemMap = func(formID, measureID string) *CustomError {
		return BuildNewCustomError(nil, constvars.ErrCodeMissingItemMap, constvars.ErrClientCannotProcessRecord, fmt.Sprintf("%s: form %s, measure %s", constvars.ErrDevMissingItemMap, formID, measureID))
	}
	ErrUnknownDomain = func(kind string) *CustomError {
		return BuildNewCustomError(nil, constvars.ErrCodeUnknownDomain, constvars.ErrClientCannotProcessRecord, fmt.Sprintf("%s: %s", constvars.ErrDevUnknownDomain, kind))
	}
	ErrDomainNotImplemented = func(kind string) *CustomError {
		return BuildNewCustomError(nil, constvars.ErrCodeDomainNotImplemented, constvars.ErrClientCannotProcessRecord, fmt.Sprintf("%s: %s", constvars.ErrDevDomainNotImplemented, kind))
	}
	ErrUnmappedField = func(measureID string, fieldIDs []string) *CustomError {
		return BuildNewCustomError(nil, constvars.ErrCodeUnmappedField, constvars.ErrClientCannotProcessRecord, fmt.Sprintf("%s: measure %s, fields %v", constvars.ErrDevUnmappedField, measureID, fieldIDs))
	}
	ErrInvalidSubmission = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.ErrCodeInvalidSubmission, constvars.ErrClientCannotProcessRecord, constvars.ErrDevInvalidSubmission)
	}
	ErrCannotParseJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.ErrCodeInvalidSubmission, constvars.ErrClientCannotProcessRecord, constvars.ErrDevCannotParseJSON)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.ErrCodeInvalidSubmission, constvars.ErrClientCannotProcessRecord, constvars.ErrDevCannotMarshalJSON)
	}
	ErrStoreUnavailable = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.ErrCodeStoreUnavailable, constvars.ErrClientCannotProcessRecord, constvars.ErrDevStoreUnavailable)
	}
)
