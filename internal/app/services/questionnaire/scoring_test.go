package questionnaire

import (
	"testing"

	"finalform-service/internal/app/models"
	"finalform-service/internal/pkg/constvars"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoringEngine_Sum(t *testing.T) {
	engine := NewScoringEngine()
	interpreter := NewInterpreter()

	t.Run("complete PHQ-9 sums to an integer score", func(t *testing.T) {
		measure := phq9Measure()
		section := recodedSection(measure, intPtrs(1, 2, 1, 2, 1, 2, 1, 1, 1))
		diags := &models.ProcessingDiagnostics{}

		scores := engine.Score(section, measure, diags)
		require.Len(t, scores, 1)
		score := scores[0]

		assert.True(t, score.Scored)
		assert.False(t, score.Prorated)
		assert.Equal(t, 12.0, score.Value)
		assert.Equal(t, constvars.ValueTypeInteger, score.ValueType)
		assert.Equal(t, "Moderate", interpreter.Interpret(&score, &measure.Scales[0], diags))
		assert.Empty(t, diags.Errors)
		assert.Empty(t, diags.Warnings)
	})

	t.Run("one missing item within allowance prorates the sum", func(t *testing.T) {
		measure := phq9Measure()
		values := intPtrs(1, 2, 1, 2, 1, 2, 1, 2)
		values = append(values, nil)
		section := recodedSection(measure, values)
		diags := &models.ProcessingDiagnostics{}

		scores := engine.Score(section, measure, diags)
		require.Len(t, scores, 1)
		score := scores[0]

		assert.True(t, score.Scored)
		assert.True(t, score.Prorated)
		assert.InDelta(t, 13.5, score.Value, 1e-9)
		assert.Equal(t, constvars.ValueTypeFloat, score.ValueType)
		assert.Equal(t, []string{"phq9_q9"}, score.MissingItems)

		// 13.5 rounds half-up to 14, still Moderate.
		assert.Equal(t, "Moderate", interpreter.Interpret(&score, &measure.Scales[0], diags))

		require.Len(t, diags.Warnings, 1)
		assert.Equal(t, constvars.DiagScaleProrated, diags.Warnings[0].Code)
	})

	t.Run("missing beyond the allowance is not scorable", func(t *testing.T) {
		measure := phq9Measure()
		section := recodedSection(measure, intPtrs(1, 2, 1, 2, 1, 2))
		diags := &models.ProcessingDiagnostics{}

		scores := engine.Score(section, measure, diags)
		require.Len(t, scores, 1)

		assert.False(t, scores[0].Scored)
		assert.Equal(t, 6, scores[0].ItemsUsed)
		assert.True(t, diags.HasError(constvars.DiagScaleNotScorable))
	})

	t.Run("GAD-7 all-maximum answers reach the top band", func(t *testing.T) {
		measure := gad7Measure()
		section := recodedSection(measure, intPtrs(3, 3, 3, 3, 3, 3, 3))
		diags := &models.ProcessingDiagnostics{}

		scores := engine.Score(section, measure, diags)
		require.Len(t, scores, 1)

		assert.Equal(t, 21.0, scores[0].Value)
		assert.Equal(t, "Severe", interpreter.Interpret(&scores[0], &measure.Scales[0], diags))
	})
}

func TestScoringEngine_SumThenDouble(t *testing.T) {
	engine := NewScoringEngine()

	t.Run("reversed items contribute max minus value", func(t *testing.T) {
		measure := phlmsAcceptanceMeasure()
		section := recodedSection(measure, intPtrs(1, 2, 3, 4, 5))
		diags := &models.ProcessingDiagnostics{}

		scores := engine.Score(section, measure, diags)
		require.Len(t, scores, 1)
		score := scores[0]

		// [5-1, 2, 5-3, 4, 5] = [4, 2, 2, 4, 5], sum 17, doubled 34.
		assert.True(t, score.Scored)
		assert.Equal(t, 34.0, score.Value)
		assert.Equal(t, constvars.ValueTypeInteger, score.ValueType)
	})

	t.Run("proration doubles the prorated sum", func(t *testing.T) {
		measure := phlmsAcceptanceMeasure()
		values := intPtrs(1, 2, 3, 4)
		values = append(values, nil)
		section := recodedSection(measure, values)
		diags := &models.ProcessingDiagnostics{}

		scores := engine.Score(section, measure, diags)
		require.Len(t, scores, 1)
		score := scores[0]

		// Contributing [4, 2, 2, 4], sum 12, prorated 12*5/4=15, doubled 30.
		assert.True(t, score.Scored)
		assert.True(t, score.Prorated)
		assert.InDelta(t, 30.0, score.Value, 1e-9)
		assert.Equal(t, constvars.ValueTypeFloat, score.ValueType)
	})
}

func TestScoringEngine_Average(t *testing.T) {
	engine := NewScoringEngine()

	measure := phq9Measure()
	measure.Scales[0].Method = constvars.MethodAverage
	measure.Scales[0].Min = 0
	measure.Scales[0].Max = 3
	measure.Scales[0].Interpretations = []models.Interpretation{
		{Min: 0, Max: 1, Label: "Low", Severity: 0},
		{Min: 2, Max: 3, Label: "High", Severity: 1},
	}

	section := recodedSection(measure, intPtrs(1, 2, 1, 2, 1, 2, 1, 2, 1))
	diags := &models.ProcessingDiagnostics{}

	scores := engine.Score(section, measure, diags)
	require.Len(t, scores, 1)

	assert.InDelta(t, 13.0/9.0, scores[0].Value, 1e-9)
	assert.Equal(t, constvars.ValueTypeFloat, scores[0].ValueType, "average is always float")
}

func TestScoringEngine_OutOfRangeScore(t *testing.T) {
	engine := NewScoringEngine()

	// Narrow the declared scale range so a legitimate sum overshoots it.
	measure := gad7Measure()
	measure.Scales[0].Max = 10

	section := recodedSection(measure, intPtrs(3, 3, 3, 3, 3, 3, 3))
	diags := &models.ProcessingDiagnostics{}

	scores := engine.Score(section, measure, diags)
	require.Len(t, scores, 1)

	assert.Equal(t, 21.0, scores[0].Value, "score is never clamped")
	assert.True(t, diags.HasError(constvars.DiagScaleOutOfRange))
}
