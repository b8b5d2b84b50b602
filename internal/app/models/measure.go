package models

// MeasureSpec is a validated clinical instrument loaded from the measure
// registry. Specs are immutable once loaded.
type MeasureSpec struct {
	MeasureID   string         `json:"measure_id" validate:"required"`
	Version     string         `json:"version" validate:"required,semver_version"`
	Name        string         `json:"name" validate:"required"`
	Description string         `json:"description,omitempty"`
	Kind        string         `json:"kind" validate:"required,oneof=questionnaire lab vital wearable"`
	Items       []MeasureItem  `json:"items" validate:"required,min=1,dive"`
	Scales      []MeasureScale `json:"scales" validate:"required,min=1,dive"`
}

type MeasureItem struct {
	ItemID      string         `json:"item_id" validate:"required"`
	Position    int            `json:"position" validate:"required,min=1"`
	Text        string         `json:"text" validate:"required"`
	ResponseMap map[string]int `json:"response_map" validate:"required,min=1"`
	MinValue    int            `json:"min_value"`
	MaxValue    int            `json:"max_value" validate:"gtefield=MinValue"`
}

type MeasureScale struct {
	ScaleID         string           `json:"scale_id" validate:"required"`
	Name            string           `json:"name" validate:"required"`
	Items           []string         `json:"items" validate:"required,min=1"`
	Method          string           `json:"method" validate:"required,oneof=sum average sum_then_double"`
	ReversedItems   []string         `json:"reversed_items,omitempty"`
	Min             int              `json:"min"`
	Max             int              `json:"max" validate:"gtefield=Min"`
	MissingAllowed  int              `json:"missing_allowed" validate:"min=0"`
	Interpretations []Interpretation `json:"interpretations" validate:"required,min=1,dive"`
}

// Interpretation is one severity band over a contiguous score range.
type Interpretation struct {
	Min         int    `json:"min"`
	Max         int    `json:"max" validate:"gtefield=Min"`
	Label       string `json:"label" validate:"required"`
	Severity    int    `json:"severity" validate:"min=0"`
	Description string `json:"description,omitempty"`
}

// GetItem returns the item with the given id, or nil.
func (m *MeasureSpec) GetItem(itemID string) *MeasureItem {
	for i := range m.Items {
		if m.Items[i].ItemID == itemID {
			return &m.Items[i]
		}
	}
	return nil
}

// GetScale returns the scale with the given id, or nil.
func (m *MeasureSpec) GetScale(scaleID string) *MeasureScale {
	for i := range m.Scales {
		if m.Scales[i].ScaleID == scaleID {
			return &m.Scales[i]
		}
	}
	return nil
}

// IsReversed reports whether itemID contributes max_value - value.
func (s *MeasureScale) IsReversed(itemID string) bool {
	for _, id := range s.ReversedItems {
		if id == itemID {
			return true
		}
	}
	return false
}
