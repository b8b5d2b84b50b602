package questionnaire

import (
	"fmt"

	"finalform-service/internal/app/models"
)

var phqResponseMap = map[string]int{
	"not at all":              0,
	"several days":            1,
	"more than half the days": 2,
	"nearly every day":        3,
}

func phq9Measure() *models.MeasureSpec {
	measure := &models.MeasureSpec{
		MeasureID: "phq9",
		Version:   "1.0.0",
		Name:      "Patient Health Questionnaire-9",
		Kind:      "questionnaire",
	}
	var items []string
	for i := 1; i <= 9; i++ {
		itemID := fmt.Sprintf("phq9_q%d", i)
		items = append(items, itemID)
		measure.Items = append(measure.Items, models.MeasureItem{
			ItemID:      itemID,
			Position:    i,
			Text:        fmt.Sprintf("Question %d", i),
			ResponseMap: phqResponseMap,
			MinValue:    0,
			MaxValue:    3,
		})
	}
	measure.Scales = []models.MeasureScale{{
		ScaleID:        "phq9_total",
		Name:           "PHQ-9 Total",
		Items:          items,
		Method:         "sum",
		Min:            0,
		Max:            27,
		MissingAllowed: 2,
		Interpretations: []models.Interpretation{
			{Min: 0, Max: 4, Label: "Minimal", Severity: 0},
			{Min: 5, Max: 9, Label: "Mild", Severity: 1},
			{Min: 10, Max: 14, Label: "Moderate", Severity: 2},
			{Min: 15, Max: 19, Label: "Moderately severe", Severity: 3},
			{Min: 20, Max: 27, Label: "Severe", Severity: 4},
		},
	}}
	return measure
}

func gad7Measure() *models.MeasureSpec {
	measure := &models.MeasureSpec{
		MeasureID: "gad7",
		Version:   "1.0.0",
		Name:      "Generalized Anxiety Disorder-7",
		Kind:      "questionnaire",
	}
	var items []string
	for i := 1; i <= 7; i++ {
		itemID := fmt.Sprintf("gad7_q%d", i)
		items = append(items, itemID)
		measure.Items = append(measure.Items, models.MeasureItem{
			ItemID:      itemID,
			Position:    i,
			Text:        fmt.Sprintf("Question %d", i),
			ResponseMap: phqResponseMap,
			MinValue:    0,
			MaxValue:    3,
		})
	}
	measure.Scales = []models.MeasureScale{{
		ScaleID:        "gad7_total",
		Name:           "GAD-7 Total",
		Items:          items,
		Method:         "sum",
		Min:            0,
		Max:            21,
		MissingAllowed: 0,
		Interpretations: []models.Interpretation{
			{Min: 0, Max: 4, Label: "Minimal", Severity: 0},
			{Min: 5, Max: 9, Label: "Mild", Severity: 1},
			{Min: 10, Max: 14, Label: "Moderate", Severity: 2},
			{Min: 15, Max: 21, Label: "Severe", Severity: 3},
		},
	}}
	return measure
}

// phlmsAcceptanceMeasure models a sum_then_double subscale with two
// reversed items, on a 1-5 answer range.
func phlmsAcceptanceMeasure() *models.MeasureSpec {
	responseMap := map[string]int{
		"never":      1,
		"rarely":     2,
		"sometimes":  3,
		"often":      4,
		"very often": 5,
	}
	measure := &models.MeasureSpec{
		MeasureID: "phlms_acceptance",
		Version:   "1.0.0",
		Name:      "PHLMS Acceptance",
		Kind:      "questionnaire",
	}
	var items []string
	for i := 1; i <= 5; i++ {
		itemID := fmt.Sprintf("phlms_q%d", i)
		items = append(items, itemID)
		measure.Items = append(measure.Items, models.MeasureItem{
			ItemID:      itemID,
			Position:    i,
			Text:        fmt.Sprintf("Question %d", i),
			ResponseMap: responseMap,
			MinValue:    1,
			MaxValue:    5,
		})
	}
	measure.Scales = []models.MeasureScale{{
		ScaleID:        "phlms_acceptance",
		Name:           "Acceptance",
		Items:          items,
		Method:         "sum_then_double",
		ReversedItems:  []string{"phlms_q1", "phlms_q3"},
		Min:            10,
		Max:            50,
		MissingAllowed: 1,
		Interpretations: []models.Interpretation{
			{Min: 10, Max: 25, Label: "Low", Severity: 0},
			{Min: 26, Max: 38, Label: "Medium", Severity: 1},
			{Min: 39, Max: 50, Label: "High", Severity: 2},
		},
	}}
	return measure
}

// recodedSection builds a section where values[i] answers the measure's
// i-th item; a nil entry leaves the item missing.
func recodedSection(measure *models.MeasureSpec, values []*int) *RecodedSection {
	section := &RecodedSection{
		MeasureID:      measure.MeasureID,
		MeasureVersion: measure.Version,
	}
	for i := range measure.Items {
		item := RecodedItem{
			ItemID:   measure.Items[i].ItemID,
			Position: measure.Items[i].Position,
		}
		if i < len(values) && values[i] != nil {
			item.Value = values[i]
		} else {
			item.Missing = true
		}
		section.Items = append(section.Items, item)
	}
	return section
}

func intPtrs(values ...int) []*int {
	out := make([]*int, len(values))
	for i := range values {
		v := values[i]
		out[i] = &v
	}
	return out
}

// mappedSection resolves the measure's items to synthetic field ids
// with the given raw answers, one per item in position order.
func mappedSection(measure *models.MeasureSpec, answers []any) *MappedSection {
	section := &MappedSection{
		MeasureID:      measure.MeasureID,
		MeasureVersion: measure.Version,
		Items:          make(map[string]MappedItem),
	}
	for i, answer := range answers {
		if i >= len(measure.Items) {
			break
		}
		itemID := measure.Items[i].ItemID
		section.Items[itemID] = MappedItem{
			ItemID:   itemID,
			FieldID:  fmt.Sprintf("entry.%d", i+1),
			RawValue: answer,
		}
	}
	return section
}
