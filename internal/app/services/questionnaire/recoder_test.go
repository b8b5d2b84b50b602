package questionnaire

import (
	"testing"

	"finalform-service/internal/app/models"
	"finalform-service/internal/pkg/constvars"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecoder_Recode(t *testing.T) {
	recoder := NewRecoder()

	t.Run("response map lookup is case and whitespace insensitive", func(t *testing.T) {
		measure := phq9Measure()
		section := mappedSection(measure, []any{"Not at all", "  SEVERAL   DAYS  ", "nearly every day"})
		diags := &models.ProcessingDiagnostics{}

		recoded := recoder.Recode(section, measure, diags)
		require.Len(t, recoded.Items, 9, "every measure item appears, answered or not")

		require.NotNil(t, recoded.Items[0].Value)
		assert.Equal(t, 0, *recoded.Items[0].Value)
		require.NotNil(t, recoded.Items[1].Value)
		assert.Equal(t, 1, *recoded.Items[1].Value)
		require.NotNil(t, recoded.Items[2].Value)
		assert.Equal(t, 3, *recoded.Items[2].Value)
		assert.Empty(t, diags.Warnings)
	})

	t.Run("map lookup wins over integer parse", func(t *testing.T) {
		measure := phq9Measure()
		measure.Items[0].ResponseMap = map[string]int{"2": 0, "not at all": 0}
		section := mappedSection(measure, []any{"2"})
		diags := &models.ProcessingDiagnostics{}

		recoded := recoder.Recode(section, measure, diags)
		require.NotNil(t, recoded.Items[0].Value)
		assert.Equal(t, 0, *recoded.Items[0].Value)
	})

	t.Run("numeric text falls back to integer parse", func(t *testing.T) {
		measure := phq9Measure()
		section := mappedSection(measure, []any{"2"})
		diags := &models.ProcessingDiagnostics{}

		recoded := recoder.Recode(section, measure, diags)
		require.NotNil(t, recoded.Items[0].Value)
		assert.Equal(t, 2, *recoded.Items[0].Value)
		assert.False(t, recoded.Items[0].OutOfRange)
	})

	t.Run("JSON numbers are accepted when integral", func(t *testing.T) {
		measure := phq9Measure()
		section := mappedSection(measure, []any{float64(3), float64(1.5)})
		diags := &models.ProcessingDiagnostics{}

		recoded := recoder.Recode(section, measure, diags)
		require.NotNil(t, recoded.Items[0].Value)
		assert.Equal(t, 3, *recoded.Items[0].Value)

		assert.True(t, recoded.Items[1].Missing, "fractional answers are unrecognized")
		require.Len(t, diags.Warnings, 1)
		assert.Equal(t, constvars.DiagUnrecognizedValue, diags.Warnings[0].Code)
	})

	t.Run("unrecognized text records a warning and stays missing", func(t *testing.T) {
		measure := phq9Measure()
		section := mappedSection(measure, []any{"somewhat"})
		diags := &models.ProcessingDiagnostics{}

		recoded := recoder.Recode(section, measure, diags)
		assert.True(t, recoded.Items[0].Missing)
		assert.False(t, recoded.Items[0].Present())

		require.Len(t, diags.Warnings, 1)
		assert.Equal(t, constvars.DiagUnrecognizedValue, diags.Warnings[0].Code)
		assert.Equal(t, "phq9_q1", diags.Warnings[0].ItemID)
	})

	t.Run("nil and blank answers are silently missing", func(t *testing.T) {
		measure := phq9Measure()
		section := mappedSection(measure, []any{nil, "   "})
		diags := &models.ProcessingDiagnostics{}

		recoded := recoder.Recode(section, measure, diags)
		assert.True(t, recoded.Items[0].Missing)
		assert.True(t, recoded.Items[1].Missing)
		assert.Empty(t, diags.Warnings)
	})

	t.Run("out-of-range numerics keep the value but are not present", func(t *testing.T) {
		measure := phq9Measure()
		section := mappedSection(measure, []any{"7"})
		diags := &models.ProcessingDiagnostics{}

		recoded := recoder.Recode(section, measure, diags)
		require.NotNil(t, recoded.Items[0].Value)
		assert.Equal(t, 7, *recoded.Items[0].Value)
		assert.True(t, recoded.Items[0].OutOfRange)
		assert.False(t, recoded.Items[0].Present())
		assert.Empty(t, diags.Errors, "the validator owns the range diagnostic")
	})
}
