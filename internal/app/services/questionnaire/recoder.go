package questionnaire

import (
	"fmt"
	"math"
	"strconv"

	"finalform-service/internal/app/models"
	"finalform-service/internal/pkg/constvars"
	"finalform-service/internal/pkg/utils"
)

// RecodedItem is one measure item after recoding. Value is set only
// when the answer resolved to an integer. OutOfRange marks values that
// parsed numerically but fall outside the item's range; they are
// reported but never scored.
type RecodedItem struct {
	ItemID     string
	Position   int
	RawAnswer  string
	Value      *int
	Missing    bool
	OutOfRange bool
}

// Present reports whether the item may contribute to a scale score.
func (r *RecodedItem) Present() bool {
	return !r.Missing && !r.OutOfRange && r.Value != nil
}

// RecodedSection covers every item of the measure in position order,
// whether or not the submission answered it.
type RecodedSection struct {
	MeasureID      string
	MeasureVersion string
	Items          []RecodedItem
}

// Get returns the recoded item with the given id, or nil.
func (s *RecodedSection) Get(itemID string) *RecodedItem {
	for i := range s.Items {
		if s.Items[i].ItemID == itemID {
			return &s.Items[i]
		}
	}
	return nil
}

// Recoder turns raw answers into integers via the item response map.
// No fuzzy matching: exact normalized lookup, then integer parse.
type Recoder struct{}

func NewRecoder() *Recoder {
	return &Recoder{}
}

// Recode produces one RecodedItem per measure item, in position order.
// Unresolved and empty answers are missing without diagnostics;
// unrecognized text records UNRECOGNIZED_VALUE and is treated as
// missing downstream.
func (r *Recoder) Recode(section *MappedSection, measure *models.MeasureSpec, diags *models.ProcessingDiagnostics) *RecodedSection {
	recoded := &RecodedSection{
		MeasureID:      section.MeasureID,
		MeasureVersion: section.MeasureVersion,
		Items:          make([]RecodedItem, 0, len(measure.Items)),
	}

	for i := range measure.Items {
		itemSpec := &measure.Items[i]
		entry := RecodedItem{
			ItemID:   itemSpec.ItemID,
			Position: itemSpec.Position,
		}

		mapped, resolved := section.Items[itemSpec.ItemID]
		if !resolved {
			entry.Missing = true
			recoded.Items = append(recoded.Items, entry)
			continue
		}

		r.recodeAnswer(&entry, mapped.RawValue, itemSpec, diags)
		recoded.Items = append(recoded.Items, entry)
	}
	return recoded
}

func (r *Recoder) recodeAnswer(entry *RecodedItem, rawValue any, itemSpec *models.MeasureItem, diags *models.ProcessingDiagnostics) {
	switch raw := rawValue.(type) {
	case nil:
		entry.Missing = true
	case string:
		entry.RawAnswer = raw
		r.recodeText(entry, raw, itemSpec, diags)
	case float64:
		// JSON numbers decode as float64.
		entry.RawAnswer = formatNumber(raw)
		if raw != math.Trunc(raw) {
			r.markUnrecognized(entry, itemSpec, diags)
			return
		}
		r.acceptNumeric(entry, int(raw), itemSpec)
	case int:
		entry.RawAnswer = strconv.Itoa(raw)
		r.acceptNumeric(entry, raw, itemSpec)
	default:
		entry.RawAnswer = fmt.Sprintf("%v", raw)
		r.markUnrecognized(entry, itemSpec, diags)
	}
}

func (r *Recoder) recodeText(entry *RecodedItem, raw string, itemSpec *models.MeasureItem, diags *models.ProcessingDiagnostics) {
	normalized := utils.NormalizeAnswer(raw)
	if normalized == "" {
		entry.Missing = true
		return
	}

	for answer, value := range itemSpec.ResponseMap {
		if utils.NormalizeAnswer(answer) == normalized {
			v := value
			entry.Value = &v
			return
		}
	}

	if numeric, err := strconv.Atoi(normalized); err == nil {
		r.acceptNumeric(entry, numeric, itemSpec)
		return
	}

	r.markUnrecognized(entry, itemSpec, diags)
}

// acceptNumeric records an integer answer. Out-of-range values keep the
// value for reporting but are excluded from scoring; the validator
// raises the diagnostic.
func (r *Recoder) acceptNumeric(entry *RecodedItem, value int, itemSpec *models.MeasureItem) {
	v := value
	entry.Value = &v
	if value < itemSpec.MinValue || value > itemSpec.MaxValue {
		entry.OutOfRange = true
	}
}

func (r *Recoder) markUnrecognized(entry *RecodedItem, itemSpec *models.MeasureItem, diags *models.ProcessingDiagnostics) {
	entry.Missing = true
	diags.AddWarning(constvars.DiagUnrecognizedValue, constvars.StageRecoding,
		fmt.Sprintf("answer %q is not in the response map of %s and is not an integer", entry.RawAnswer, itemSpec.ItemID),
		itemSpec.ItemID)
}

func formatNumber(v float64) string {
	if v == math.Trunc(v) {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
