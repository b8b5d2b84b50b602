package questionnaire

import (
	"fmt"

	"finalform-service/internal/app/models"
	"finalform-service/internal/pkg/constvars"
)

// ScaleScore is one computed scale result. Value is meaningful only
// when Scored is true.
type ScaleScore struct {
	ScaleID      string
	Name         string
	Method       string
	Value        float64
	ValueType    string
	Scored       bool
	Prorated     bool
	ItemsUsed    int
	ItemsTotal   int
	MissingItems []string
}

// ScoringEngine computes scale scores from recoded items. All rules
// come from the measure spec; there are no per-measure code paths.
type ScoringEngine struct{}

func NewScoringEngine() *ScoringEngine {
	return &ScoringEngine{}
}

func (e *ScoringEngine) Score(section *RecodedSection, measure *models.MeasureSpec, diags *models.ProcessingDiagnostics) []ScaleScore {
	scores := make([]ScaleScore, 0, len(measure.Scales))
	for i := range measure.Scales {
		scores = append(scores, e.scoreScale(&measure.Scales[i], section, measure, diags))
	}
	return scores
}

func (e *ScoringEngine) scoreScale(scale *models.MeasureScale, section *RecodedSection, measure *models.MeasureSpec, diags *models.ProcessingDiagnostics) ScaleScore {
	score := ScaleScore{
		ScaleID:    scale.ScaleID,
		Name:       scale.Name,
		Method:     scale.Method,
		ItemsTotal: len(scale.Items),
	}

	var values []int
	for _, itemID := range scale.Items {
		item := section.Get(itemID)
		if item == nil || !item.Present() {
			score.MissingItems = append(score.MissingItems, itemID)
			continue
		}
		value := *item.Value
		if scale.IsReversed(itemID) {
			value = measure.GetItem(itemID).MaxValue - value
		}
		values = append(values, value)
	}
	score.ItemsUsed = len(values)

	missing := score.ItemsTotal - score.ItemsUsed
	if missing > scale.MissingAllowed {
		diags.AddError(constvars.DiagScaleNotScorable, constvars.StageScoring,
			fmt.Sprintf("scale %s: %d items missing, %d allowed", scale.ScaleID, missing, scale.MissingAllowed), "")
		return score
	}

	sum := 0
	for _, v := range values {
		sum += v
	}

	score.Scored = true
	score.Prorated = missing > 0

	switch scale.Method {
	case constvars.MethodSum:
		if score.Prorated {
			score.Value = float64(sum) * float64(score.ItemsTotal) / float64(score.ItemsUsed)
			score.ValueType = constvars.ValueTypeFloat
		} else {
			score.Value = float64(sum)
			score.ValueType = constvars.ValueTypeInteger
		}
	case constvars.MethodAverage:
		score.Value = float64(sum) / float64(score.ItemsUsed)
		score.ValueType = constvars.ValueTypeFloat
	case constvars.MethodSumThenDouble:
		// Prorate the sum first, then double.
		if score.Prorated {
			score.Value = float64(sum) * float64(score.ItemsTotal) / float64(score.ItemsUsed) * 2
			score.ValueType = constvars.ValueTypeFloat
		} else {
			score.Value = float64(sum * 2)
			score.ValueType = constvars.ValueTypeInteger
		}
	}

	if score.Prorated {
		diags.AddWarning(constvars.DiagScaleProrated, constvars.StageScoring,
			fmt.Sprintf("scale %s prorated from %d of %d items (method %s)",
				scale.ScaleID, score.ItemsUsed, score.ItemsTotal, scale.Method), "")
	}

	// Never clamp: downstream analytics must see the true score.
	if score.Value < float64(scale.Min) || score.Value > float64(scale.Max) {
		diags.AddError(constvars.DiagScaleOutOfRange, constvars.StageScoring,
			fmt.Sprintf("scale %s score %v outside [%d, %d]", scale.ScaleID, score.Value, scale.Min, scale.Max), "")
	}
	return score
}
