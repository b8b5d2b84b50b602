package questionnaire

import (
	"testing"

	"finalform-service/internal/app/models"
	"finalform-service/internal/pkg/constvars"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBinding() *models.FormBindingSpec {
	return &models.FormBindingSpec{
		BindingID: "gforms_phq9",
		Version:   "1.0.0",
		FormID:    "gforms:abc123",
		Sections: []models.BindingSection{{
			MeasureID:      "phq9",
			MeasureVersion: "1.0.0",
			Bindings: []models.Binding{
				{ItemID: "phq9_q1", By: constvars.BindByFieldKey, Value: "entry.1"},
				{ItemID: "phq9_q2", By: constvars.BindByFieldKey, Value: "entry.2"},
				{ItemID: "phq9_q3", By: constvars.BindByQuestionText, Value: "Trouble falling asleep?"},
			},
		}},
	}
}

func TestMapper_Map(t *testing.T) {
	mapper := NewMapper()

	t.Run("resolves by field key and by normalized question text", func(t *testing.T) {
		submission := &models.FormSubmission{
			SubmissionID: "sub-1",
			FormID:       "gforms:abc123",
			Items: []models.SubmissionItem{
				{FieldID: "entry.1", RawValue: "not at all"},
				{FieldID: "entry.2", RawValue: "several days"},
				{FieldID: "entry.3", RawValue: "nearly every day", QuestionText: "  trouble FALLING asleep? "},
			},
		}
		diags := &models.ProcessingDiagnostics{}

		outcome := mapper.Map(submission, testBinding(), diags)
		require.Len(t, outcome.Sections, 1)
		section := outcome.Sections[0]

		assert.Equal(t, "phq9", section.MeasureID)
		require.Len(t, section.Items, 3)
		assert.Equal(t, "entry.3", section.Items["phq9_q3"].FieldID)
		assert.Empty(t, outcome.UnmappedFields)
		assert.Empty(t, diags.Warnings)
	})

	t.Run("duplicate fields keep the first occurrence", func(t *testing.T) {
		submission := &models.FormSubmission{
			SubmissionID: "sub-2",
			Items: []models.SubmissionItem{
				{FieldID: "entry.1", RawValue: "not at all"},
				{FieldID: "entry.1", RawValue: "nearly every day"},
			},
		}
		diags := &models.ProcessingDiagnostics{}

		outcome := mapper.Map(submission, testBinding(), diags)
		assert.Equal(t, "not at all", outcome.Sections[0].Items["phq9_q1"].RawValue)

		require.Len(t, diags.Warnings, 3, "one duplicate field, two unresolved bindings")
		assert.Equal(t, constvars.DiagDuplicateField, diags.Warnings[0].Code)
	})

	t.Run("unresolved bindings warn with the target item", func(t *testing.T) {
		submission := &models.FormSubmission{
			SubmissionID: "sub-3",
			Items: []models.SubmissionItem{
				{FieldID: "entry.1", RawValue: "not at all"},
			},
		}
		diags := &models.ProcessingDiagnostics{}

		outcome := mapper.Map(submission, testBinding(), diags)
		require.Len(t, outcome.Sections[0].Items, 1)

		require.Len(t, diags.Warnings, 2)
		assert.Equal(t, constvars.DiagMissingBinding, diags.Warnings[0].Code)
		assert.Equal(t, "phq9_q2", diags.Warnings[0].ItemID)
		assert.Equal(t, "phq9_q3", diags.Warnings[1].ItemID)
	})

	t.Run("fields no binding claims are reported in input order", func(t *testing.T) {
		submission := &models.FormSubmission{
			SubmissionID: "sub-4",
			Items: []models.SubmissionItem{
				{FieldID: "entry.999", RawValue: "stray"},
				{FieldID: "entry.1", RawValue: "not at all"},
				{FieldID: "entry.998", RawValue: "also stray"},
			},
		}
		diags := &models.ProcessingDiagnostics{}

		outcome := mapper.Map(submission, testBinding(), diags)
		assert.Equal(t, []string{"entry.999", "entry.998"}, outcome.UnmappedFields)
	})
}

func TestSectionFromItemMap(t *testing.T) {
	itemMap := &models.ItemMap{
		FormID:    "gforms:abc123",
		MeasureID: "phq9",
		Fields: map[string]string{
			"entry.1": "phq9_q1",
			"entry.2": "phq9_q2",
		},
	}

	section := SectionFromItemMap(itemMap, "1.0.0")
	assert.Equal(t, "phq9", section.MeasureID)
	assert.Equal(t, "1.0.0", section.MeasureVersion)
	require.Len(t, section.Bindings, 2)
	for _, binding := range section.Bindings {
		assert.Equal(t, constvars.BindByFieldKey, binding.By)
		assert.Equal(t, binding.ItemID, itemMap.Fields[binding.Value])
	}
}
