package questionnaire

import (
	"testing"

	"finalform-service/internal/app/models"
	"finalform-service/internal/pkg/constvars"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidator_Validate(t *testing.T) {
	validator := NewValidator()

	t.Run("out-of-range values are error severity", func(t *testing.T) {
		measure := phq9Measure()
		section := recodedSection(measure, intPtrs(1, 2, 1, 2, 1, 2, 1, 2, 1))
		seven := 7
		section.Items[0].Value = &seven
		section.Items[0].OutOfRange = true
		diags := &models.ProcessingDiagnostics{}

		validator.Validate(section, measure, diags)

		require.Len(t, diags.Errors, 1)
		assert.Equal(t, constvars.DiagValueOutOfRange, diags.Errors[0].Code)
		assert.Equal(t, "phq9_q1", diags.Errors[0].ItemID)
	})

	t.Run("incomplete scales warn once per scale", func(t *testing.T) {
		measure := phq9Measure()
		section := recodedSection(measure, intPtrs(1, 2, 1))
		diags := &models.ProcessingDiagnostics{}

		validator.Validate(section, measure, diags)

		require.Len(t, diags.Warnings, 1)
		assert.Equal(t, constvars.DiagScaleIncomplete, diags.Warnings[0].Code)
		assert.Contains(t, diags.Warnings[0].Detail, "3 of 9")
	})

	t.Run("items outside every scale are informational", func(t *testing.T) {
		measure := phq9Measure()
		measure.Scales[0].Items = measure.Scales[0].Items[:8]
		section := recodedSection(measure, intPtrs(1, 2, 1, 2, 1, 2, 1, 2, 1))
		diags := &models.ProcessingDiagnostics{}

		validator.Validate(section, measure, diags)

		require.Len(t, diags.Warnings, 1)
		assert.Equal(t, constvars.DiagUnknownItem, diags.Warnings[0].Code)
		assert.Equal(t, "phq9_q9", diags.Warnings[0].ItemID)
	})

	t.Run("complete in-range sections validate clean", func(t *testing.T) {
		measure := phq9Measure()
		section := recodedSection(measure, intPtrs(0, 1, 2, 3, 0, 1, 2, 3, 0))
		diags := &models.ProcessingDiagnostics{}

		validator.Validate(section, measure, diags)

		assert.Empty(t, diags.Errors)
		assert.Empty(t, diags.Warnings)
	})
}
