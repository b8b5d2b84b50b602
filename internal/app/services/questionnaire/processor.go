package questionnaire

import (
	"context"
	"sync"

	"finalform-service/internal/app/contracts"
	"finalform-service/internal/app/models"
	"finalform-service/internal/pkg/constvars"
	"finalform-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

type questionnaireProcessor struct {
	Mapper      *Mapper
	Recoder     *Recoder
	Validator   *Validator
	Scoring     *ScoringEngine
	Interpreter *Interpreter
	Log         *zap.Logger
}

var (
	processorInstance contracts.DomainProcessor
	onceProcessor     sync.Once
)

// NewQuestionnaireProcessor wires the mapping, recoding, validation,
// scoring, interpretation, and event-building stages for questionnaire
// measures.
func NewQuestionnaireProcessor(logger *zap.Logger) contracts.DomainProcessor {
	onceProcessor.Do(func() {
		processorInstance = &questionnaireProcessor{
			Mapper:      NewMapper(),
			Recoder:     NewRecoder(),
			Validator:   NewValidator(),
			Scoring:     NewScoringEngine(),
			Interpreter: NewInterpreter(),
			Log:         logger,
		}
	})
	return processorInstance
}

func (p *questionnaireProcessor) Kinds() []string {
	return []string{constvars.KindQuestionnaire}
}

// Process runs one submission through the full stage sequence. Mapping
// diagnostics that are not tied to a single measure are recorded on a
// binding-level diagnostics entry; every section then gets its own
// per-measure entry.
func (p *questionnaireProcessor) Process(ctx context.Context, request *contracts.ProcessRequest) (*models.ProcessingResult, error) {
	submission := request.Submission
	binding := request.Binding

	result := &models.ProcessingResult{
		FormSubmissionID: submission.SubmissionID,
		Success:          true,
	}

	mappingDiags := models.ProcessingDiagnostics{SubmissionID: submission.SubmissionID}
	outcome := p.Mapper.Map(submission, binding, &mappingDiags)

	if len(outcome.UnmappedFields) > 0 {
		if request.Strict {
			return nil, exceptions.ErrUnmappedField(binding.BindingID, outcome.UnmappedFields)
		}
		for _, fieldID := range outcome.UnmappedFields {
			mappingDiags.AddWarning(constvars.DiagUnmappedFieldSkip, constvars.StageMapping,
				"field "+fieldID+" is not claimed by any binding", "")
		}
	}
	result.Diagnostics = append(result.Diagnostics, mappingDiags)

	builder := NewEventBuilder(request.DeterministicIDs)
	source := models.Source{
		BindingID:      binding.BindingID,
		BindingVersion: binding.Version,
	}

	for i := range outcome.Sections {
		section := &outcome.Sections[i]
		measure := request.Measures[section.MeasureID]
		if measure == nil {
			return nil, exceptions.ErrMeasureNotFound(section.MeasureID, section.MeasureVersion)
		}

		diags := models.ProcessingDiagnostics{
			SubmissionID: submission.SubmissionID,
			MeasureID:    measure.MeasureID,
		}

		recoded := p.Recoder.Recode(section, measure, &diags)
		p.Validator.Validate(recoded, measure, &diags)
		scores := p.Scoring.Score(recoded, measure, &diags)

		scored := make([]ScoredScale, 0, len(scores))
		for j := range scores {
			scale := measure.GetScale(scores[j].ScaleID)
			scored = append(scored, ScoredScale{
				Score: scores[j],
				Label: p.Interpreter.Interpret(&scores[j], scale, &diags),
			})
		}

		diags.Summary = summarize(recoded, scores)
		if diags.HasError(constvars.DiagScaleNotScorable) {
			result.Success = false
		}

		result.Events = append(result.Events, builder.Build(submission, measure, recoded, scored, source))
		result.Diagnostics = append(result.Diagnostics, diags)

		p.Log.Debug("questionnaireProcessor.Process scored measure",
			zap.String(constvars.LoggingSubmissionIDKey, submission.SubmissionID),
			zap.String(constvars.LoggingMeasureIDKey, measure.MeasureID),
			zap.Int(constvars.LoggingEventCountKey, len(result.Events)),
		)
	}

	return result, nil
}

// ValidateMeasure reports the cross-field problems of a questionnaire
// spec as human-readable strings, one per violation.
func (p *questionnaireProcessor) ValidateMeasure(measure *models.MeasureSpec) []string {
	var problems []string
	if measure.Kind != constvars.KindQuestionnaire {
		problems = append(problems, "kind is not questionnaire")
	}
	for i := range measure.Scales {
		scale := &measure.Scales[i]
		if len(scale.Items) == 0 {
			problems = append(problems, "scale "+scale.ScaleID+" has no items")
		}
		if scale.MissingAllowed >= len(scale.Items) && len(scale.Items) > 0 {
			problems = append(problems, "scale "+scale.ScaleID+" allows every item to be missing")
		}
	}
	return problems
}

func summarize(section *RecodedSection, scores []ScaleScore) models.DiagnosticSummary {
	summary := models.DiagnosticSummary{}
	for i := range section.Items {
		if section.Items[i].Present() {
			summary.ItemsPresent++
		} else {
			summary.ItemsMissing++
		}
	}
	for i := range scores {
		if scores[i].Scored {
			summary.ScalesScored++
		} else {
			summary.ScalesNotScorable++
		}
	}
	return summary
}
