package pipeline

import (
	"context"
	"fmt"

	"finalform-service/internal/app/contracts"
	"finalform-service/internal/app/models"
	"finalform-service/internal/app/services/domains"
	"finalform-service/internal/app/services/questionnaire"
	"finalform-service/internal/pkg/constvars"
	"finalform-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

// autoBindingVersion is the version stamped on bindings synthesized
// from the form-input item-map store.
const autoBindingVersion = "1.0.0"

type pipelineUsecase struct {
	MeasureRegistry contracts.MeasureRegistry
	BindingRegistry contracts.BindingRegistry
	ItemMapStore    contracts.ItemMapStore
	Router          *domains.Router
	Log             *zap.Logger

	BindingID        string
	BindingVersion   string
	Strict           bool
	DeterministicIDs bool
}

// NewPipelineUsecase builds the per-submission facade. BindingID may be
// empty when only ProcessForMeasure is used.
func NewPipelineUsecase(
	measureRegistry contracts.MeasureRegistry,
	bindingRegistry contracts.BindingRegistry,
	itemMapStore contracts.ItemMapStore,
	router *domains.Router,
	logger *zap.Logger,
	bindingID, bindingVersion string,
	strict, deterministicIDs bool,
) contracts.PipelineUsecase {
	return &pipelineUsecase{
		MeasureRegistry:  measureRegistry,
		BindingRegistry:  bindingRegistry,
		ItemMapStore:     itemMapStore,
		Router:           router,
		Log:              logger,
		BindingID:        bindingID,
		BindingVersion:   bindingVersion,
		Strict:           strict,
		DeterministicIDs: deterministicIDs,
	}
}

// Process resolves the configured binding and every measure it targets,
// then delegates to the processor for the measures' kind.
func (u *pipelineUsecase) Process(ctx context.Context, submission *models.FormSubmission) (*models.ProcessingResult, error) {
	if err := validateSubmission(submission); err != nil {
		return nil, err
	}

	binding, err := u.BindingRegistry.Get(u.BindingID, u.BindingVersion)
	if err != nil {
		return nil, err
	}
	return u.dispatch(ctx, submission, binding)
}

// ProcessForMeasure resolves the binding through the form-input
// item-map store instead of a pre-registered binding spec. The
// submission must carry a form_id, and a mapping must exist for
// (form_id, measure_id).
func (u *pipelineUsecase) ProcessForMeasure(ctx context.Context, submission *models.FormSubmission, measureID, measureVersion string) (*models.ProcessingResult, error) {
	if err := validateSubmission(submission); err != nil {
		return nil, err
	}
	if submission.FormID == "" {
		return nil, exceptions.ErrMissingFormID(submission.SubmissionID)
	}

	itemMap, err := u.ItemMapStore.GetItemMap(ctx, submission.FormID, measureID)
	if err != nil {
		return nil, err
	}
	if itemMap == nil {
		return nil, exceptions.ErrMissingItemMap(submission.FormID, measureID)
	}

	measure, err := u.MeasureRegistry.Get(measureID, measureVersion)
	if err != nil {
		return nil, err
	}

	binding := &models.FormBindingSpec{
		BindingID: fmt.Sprintf("_auto_%s_%s", submission.FormID, measureID),
		Version:   autoBindingVersion,
		FormID:    submission.FormID,
		Sections:  []models.BindingSection{questionnaire.SectionFromItemMap(itemMap, measure.Version)},
	}
	return u.dispatch(ctx, submission, binding)
}

// dispatch resolves every section's measure, picks the processor by
// kind, and delegates. Mixed-kind bindings dispatch on the first
// section's kind; the stubbed domains fail there explicitly.
func (u *pipelineUsecase) dispatch(ctx context.Context, submission *models.FormSubmission, binding *models.FormBindingSpec) (*models.ProcessingResult, error) {
	measures := make(map[string]*models.MeasureSpec, len(binding.Sections))
	kind := ""
	for i := range binding.Sections {
		section := &binding.Sections[i]
		measure, err := u.MeasureRegistry.Get(section.MeasureID, section.MeasureVersion)
		if err != nil {
			return nil, err
		}
		measures[section.MeasureID] = measure
		if kind == "" {
			kind = measure.Kind
		}
	}

	processor, err := u.Router.Resolve(kind)
	if err != nil {
		return nil, err
	}

	result, err := processor.Process(ctx, &contracts.ProcessRequest{
		Submission:       submission,
		Binding:          binding,
		Measures:         measures,
		Strict:           u.Strict,
		DeterministicIDs: u.DeterministicIDs,
	})
	if err != nil {
		return nil, err
	}

	u.Log.Debug("pipelineUsecase.dispatch processed submission",
		zap.String(constvars.LoggingSubmissionIDKey, submission.SubmissionID),
		zap.String(constvars.LoggingBindingIDKey, binding.BindingID),
		zap.String(constvars.LoggingKindKey, kind),
		zap.Int(constvars.LoggingEventCountKey, len(result.Events)),
	)
	return result, nil
}

func validateSubmission(submission *models.FormSubmission) error {
	if submission == nil || submission.SubmissionID == "" {
		return exceptions.ErrInvalidSubmission(fmt.Errorf("submission_id is required"))
	}
	return nil
}
