package questionnaire

import (
	"fmt"

	"finalform-service/internal/app/models"
	"finalform-service/internal/pkg/constvars"
)

// Validator enforces per-submission invariants before scoring: value
// ranges, scale completeness, and items no scale claims.
type Validator struct{}

func NewValidator() *Validator {
	return &Validator{}
}

func (v *Validator) Validate(section *RecodedSection, measure *models.MeasureSpec, diags *models.ProcessingDiagnostics) {
	for i := range section.Items {
		item := &section.Items[i]
		if item.OutOfRange && item.Value != nil {
			spec := measure.GetItem(item.ItemID)
			diags.AddError(constvars.DiagValueOutOfRange, constvars.StageValidation,
				fmt.Sprintf("value %d outside [%d, %d]", *item.Value, spec.MinValue, spec.MaxValue),
				item.ItemID)
		}
	}

	inScale := make(map[string]bool)
	for i := range measure.Scales {
		scale := &measure.Scales[i]
		present := 0
		for _, itemID := range scale.Items {
			inScale[itemID] = true
			if item := section.Get(itemID); item != nil && item.Present() {
				present++
			}
		}
		if missing := len(scale.Items) - present; missing > 0 {
			diags.AddWarning(constvars.DiagScaleIncomplete, constvars.StageValidation,
				fmt.Sprintf("scale %s has %d of %d items", scale.ScaleID, present, len(scale.Items)), "")
		}
	}

	for i := range section.Items {
		item := &section.Items[i]
		if !item.Missing && !inScale[item.ItemID] {
			diags.AddWarning(constvars.DiagUnknownItem, constvars.StageValidation,
				fmt.Sprintf("item %s contributes to no scale", item.ItemID), item.ItemID)
		}
	}
}
