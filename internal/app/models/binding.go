package models

// FormBindingSpec declares how an upstream form's fields correspond to
// canonical measure items. Immutable after load, like MeasureSpec.
type FormBindingSpec struct {
	BindingID string           `json:"binding_id" validate:"required"`
	Version   string           `json:"version" validate:"required,semver_version"`
	FormID    string           `json:"form_id" validate:"required"`
	Sections  []BindingSection `json:"sections" validate:"required,min=1,dive"`
}

type BindingSection struct {
	MeasureID      string    `json:"measure_id" validate:"required"`
	MeasureVersion string    `json:"measure_version" validate:"required,semver_version"`
	Bindings       []Binding `json:"bindings" validate:"required,min=1,dive"`
}

// Binding locates the incoming item for one canonical item, either by
// platform field key or by normalized question text.
type Binding struct {
	ItemID string `json:"item_id" validate:"required"`
	By     string `json:"by" validate:"required,oneof=field_key question_text"`
	Value  string `json:"value" validate:"required"`
}

// GetSection returns the section targeting measureID, or nil.
func (b *FormBindingSpec) GetSection(measureID string) *BindingSection {
	for i := range b.Sections {
		if b.Sections[i].MeasureID == measureID {
			return &b.Sections[i]
		}
	}
	return nil
}

// ItemMap is the alternative binding shape stored per (form_id,
// measure_id) in the form-input store: field_id -> item_id.
type ItemMap struct {
	FormID    string            `json:"form_id"`
	MeasureID string            `json:"measure_id"`
	Fields    map[string]string `json:"item_map"`
	Meta      ItemMapMeta       `json:"meta,omitempty"`
}

type ItemMapMeta struct {
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}
