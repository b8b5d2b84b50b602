package questionnaire

import (
	"fmt"
	"math"

	"finalform-service/internal/app/models"
	"finalform-service/internal/pkg/constvars"
)

// Interpreter maps scored scale values to interpretation bands.
type Interpreter struct{}

func NewInterpreter() *Interpreter {
	return &Interpreter{}
}

// Interpret returns the band label for a scored scale, or "" with a
// NO_INTERPRETATION_BAND warning when no band covers the value. Sum
// scores are rounded half-up before lookup because bands are integer
// ranges; average scores compare directly against band bounds.
func (i *Interpreter) Interpret(score *ScaleScore, scale *models.MeasureScale, diags *models.ProcessingDiagnostics) string {
	if !score.Scored {
		return ""
	}

	lookup := score.Value
	if scale.Method != constvars.MethodAverage {
		lookup = math.Floor(score.Value + 0.5)
	}

	for _, band := range scale.Interpretations {
		if lookup >= float64(band.Min) && lookup <= float64(band.Max) {
			return band.Label
		}
	}

	diags.AddWarning(constvars.DiagNoInterpretation, constvars.StageInterpretation,
		fmt.Sprintf("no band of scale %s covers score %v", scale.ScaleID, score.Value), "")
	return ""
}
