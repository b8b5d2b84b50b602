package contracts

import (
	"context"

	"finalform-service/internal/app/models"
)

// ProcessRequest carries everything a domain processor needs for one
// submission.
type ProcessRequest struct {
	Submission       *models.FormSubmission
	Binding          *models.FormBindingSpec
	Measures         map[string]*models.MeasureSpec
	Strict           bool
	DeterministicIDs bool
}

// DomainProcessor handles one family of measure kinds. The set of
// domains is closed; dispatch happens in the router.
type DomainProcessor interface {
	Kinds() []string
	Process(ctx context.Context, request *ProcessRequest) (*models.ProcessingResult, error)
	ValidateMeasure(measure *models.MeasureSpec) []string
}

// PipelineUsecase is the per-submission facade over registries, router,
// and processors.
type PipelineUsecase interface {
	Process(ctx context.Context, submission *models.FormSubmission) (*models.ProcessingResult, error)
	// ProcessForMeasure resolves the binding through the form-input
	// item-map store instead of a pre-registered binding spec.
	ProcessForMeasure(ctx context.Context, submission *models.FormSubmission, measureID, measureVersion string) (*models.ProcessingResult, error)
}
