package registry

import (
	"fmt"
	"sort"

	"finalform-service/internal/app/models"
)

// ValidateMeasureInvariants enforces the cross-field rules that struct
// tags cannot express. Violations are fatal at load time.
func ValidateMeasureInvariants(measure *models.MeasureSpec) error {
	itemIDs := make(map[string]*models.MeasureItem, len(measure.Items))
	for i := range measure.Items {
		item := &measure.Items[i]
		if _, exists := itemIDs[item.ItemID]; exists {
			return fmt.Errorf("duplicate item_id %q", item.ItemID)
		}
		itemIDs[item.ItemID] = item

		for answer, value := range item.ResponseMap {
			if value < item.MinValue || value > item.MaxValue {
				return fmt.Errorf("item %q: response %q maps to %d outside [%d, %d]",
					item.ItemID, answer, value, item.MinValue, item.MaxValue)
			}
		}
	}

	for i := range measure.Scales {
		scale := &measure.Scales[i]
		scaleItems := make(map[string]bool, len(scale.Items))
		for _, itemID := range scale.Items {
			if _, exists := itemIDs[itemID]; !exists {
				return fmt.Errorf("scale %q references unknown item %q", scale.ScaleID, itemID)
			}
			scaleItems[itemID] = true
		}
		for _, itemID := range scale.ReversedItems {
			if !scaleItems[itemID] {
				return fmt.Errorf("scale %q: reversed item %q is not in the scale", scale.ScaleID, itemID)
			}
		}
		if err := validateBands(scale); err != nil {
			return err
		}
	}
	return nil
}

// validateBands checks that interpretation bands are non-overlapping
// and jointly cover [scale.min, scale.max].
func validateBands(scale *models.MeasureScale) error {
	bands := append([]models.Interpretation(nil), scale.Interpretations...)
	sort.Slice(bands, func(i, j int) bool { return bands[i].Min < bands[j].Min })

	if bands[0].Min != scale.Min {
		return fmt.Errorf("scale %q: bands start at %d, scale min is %d", scale.ScaleID, bands[0].Min, scale.Min)
	}
	for i := 1; i < len(bands); i++ {
		if bands[i].Min != bands[i-1].Max+1 {
			return fmt.Errorf("scale %q: bands %q and %q leave a gap or overlap",
				scale.ScaleID, bands[i-1].Label, bands[i].Label)
		}
	}
	if bands[len(bands)-1].Max != scale.Max {
		return fmt.Errorf("scale %q: bands end at %d, scale max is %d",
			scale.ScaleID, bands[len(bands)-1].Max, scale.Max)
	}
	return nil
}
