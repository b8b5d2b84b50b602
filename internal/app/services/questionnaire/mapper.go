package questionnaire

import (
	"fmt"

	"finalform-service/internal/app/models"
	"finalform-service/internal/pkg/constvars"
	"finalform-service/internal/pkg/utils"
)

// MappedItem is one incoming answer resolved to a canonical item.
type MappedItem struct {
	ItemID   string
	FieldID  string
	RawValue any
}

// MappedSection holds the resolved items for one target measure.
type MappedSection struct {
	MeasureID      string
	MeasureVersion string
	Items          map[string]MappedItem
}

// MappingOutcome is the result of resolving a whole binding spec
// against one submission.
type MappingOutcome struct {
	Sections       []MappedSection
	UnmappedFields []string
}

// Mapper resolves platform fields to canonical items. It is purely
// mechanical: explicit bindings only, first match wins, no guessing.
type Mapper struct{}

func NewMapper() *Mapper {
	return &Mapper{}
}

// Map resolves every section of the binding spec. Duplicate incoming
// field ids keep the first occurrence; fields no binding claims are
// reported as unmapped for the caller to enforce strictness.
func (m *Mapper) Map(submission *models.FormSubmission, binding *models.FormBindingSpec, diags *models.ProcessingDiagnostics) *MappingOutcome {
	byFieldID := make(map[string]*models.SubmissionItem)
	byQuestion := make(map[string]*models.SubmissionItem)
	fieldOrder := make([]string, 0, len(submission.Items))

	for i := range submission.Items {
		item := &submission.Items[i]
		if item.FieldID == "" {
			continue
		}
		if _, seen := byFieldID[item.FieldID]; seen {
			diags.AddWarning(constvars.DiagDuplicateField, constvars.StageMapping,
				fmt.Sprintf("duplicate field %q, keeping the first occurrence", item.FieldID), "")
			continue
		}
		byFieldID[item.FieldID] = item
		fieldOrder = append(fieldOrder, item.FieldID)
		if item.QuestionText != "" {
			normalized := utils.NormalizeAnswer(item.QuestionText)
			if _, seen := byQuestion[normalized]; !seen {
				byQuestion[normalized] = item
			}
		}
	}

	used := make(map[string]bool)
	outcome := &MappingOutcome{}

	for i := range binding.Sections {
		section := &binding.Sections[i]
		mapped := MappedSection{
			MeasureID:      section.MeasureID,
			MeasureVersion: section.MeasureVersion,
			Items:          make(map[string]MappedItem, len(section.Bindings)),
		}

		for _, b := range section.Bindings {
			var source *models.SubmissionItem
			switch b.By {
			case constvars.BindByFieldKey:
				source = byFieldID[b.Value]
			case constvars.BindByQuestionText:
				source = byQuestion[utils.NormalizeAnswer(b.Value)]
			}
			if source == nil {
				diags.AddWarning(constvars.DiagMissingBinding, constvars.StageMapping,
					fmt.Sprintf("no submission item matches binding %s=%q", b.By, b.Value), b.ItemID)
				continue
			}
			used[source.FieldID] = true
			mapped.Items[b.ItemID] = MappedItem{
				ItemID:   b.ItemID,
				FieldID:  source.FieldID,
				RawValue: source.RawValue,
			}
		}
		outcome.Sections = append(outcome.Sections, mapped)
	}

	for _, fieldID := range fieldOrder {
		if !used[fieldID] {
			outcome.UnmappedFields = append(outcome.UnmappedFields, fieldID)
		}
	}
	return outcome
}

// SectionFromItemMap builds a binding section equivalent to a flat
// field_id -> item_id map, all bindings by field_key.
func SectionFromItemMap(itemMap *models.ItemMap, measureVersion string) models.BindingSection {
	section := models.BindingSection{
		MeasureID:      itemMap.MeasureID,
		MeasureVersion: measureVersion,
		Bindings:       make([]models.Binding, 0, len(itemMap.Fields)),
	}
	for fieldID, itemID := range itemMap.Fields {
		section.Bindings = append(section.Bindings, models.Binding{
			ItemID: itemID,
			By:     constvars.BindByFieldKey,
			Value:  fieldID,
		})
	}
	return section
}
