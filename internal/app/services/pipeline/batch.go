package pipeline

import (
	"context"

	"finalform-service/internal/app/contracts"
	"finalform-service/internal/app/models"
	"finalform-service/internal/pkg/exceptions"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// RecordOutcome pairs one submission with its result. Err is set for
// configuration errors; Result is always non-nil so failed records
// still produce a diagnostics line.
type RecordOutcome struct {
	Submission *models.FormSubmission
	Result     *models.ProcessingResult
	Err        error
}

// RunSummary is the run-level rollup emitted once per batch.
type RunSummary struct {
	Records  int
	Events   int
	Success  int
	Failed   int
	Critical int
}

// process runs one submission and folds configuration errors into a
// failure record, keeping the per-record diagnostics contract.
type processFunc func(ctx context.Context, submission *models.FormSubmission) (*models.ProcessingResult, error)

// BatchRunner fans submissions out over a bounded worker group while
// preserving input order in the outcomes.
type BatchRunner struct {
	Pipeline contracts.PipelineUsecase
	Workers  int
	Log      *zap.Logger
}

func NewBatchRunner(pipeline contracts.PipelineUsecase, workers int, logger *zap.Logger) *BatchRunner {
	if workers < 1 {
		workers = 1
	}
	return &BatchRunner{Pipeline: pipeline, Workers: workers, Log: logger}
}

// Run processes every submission through Pipeline.Process.
func (r *BatchRunner) Run(ctx context.Context, submissions []*models.FormSubmission) ([]RecordOutcome, RunSummary) {
	return r.run(ctx, submissions, r.Pipeline.Process)
}

// RunForMeasure processes every submission through the item-map path
// for one measure.
func (r *BatchRunner) RunForMeasure(ctx context.Context, submissions []*models.FormSubmission, measureID, measureVersion string) ([]RecordOutcome, RunSummary) {
	return r.run(ctx, submissions, func(ctx context.Context, submission *models.FormSubmission) (*models.ProcessingResult, error) {
		return r.Pipeline.ProcessForMeasure(ctx, submission, measureID, measureVersion)
	})
}

func (r *BatchRunner) run(ctx context.Context, submissions []*models.FormSubmission, process processFunc) ([]RecordOutcome, RunSummary) {
	outcomes := make([]RecordOutcome, len(submissions))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(r.Workers)
	for i := range submissions {
		i := i
		group.Go(func() error {
			submission := submissions[i]
			result, err := process(groupCtx, submission)
			if err != nil {
				result = FailureResult(submission, err)
			}
			outcomes[i] = RecordOutcome{Submission: submission, Result: result, Err: err}
			return nil
		})
	}
	// Workers never return errors; Wait only joins them.
	_ = group.Wait()

	summary := RunSummary{Records: len(outcomes)}
	for i := range outcomes {
		outcome := &outcomes[i]
		summary.Events += len(outcome.Result.Events)
		if outcome.Err != nil {
			summary.Critical++
		}
		if outcome.Result.Success {
			summary.Success++
		} else {
			summary.Failed++
		}
	}
	return outcomes, summary
}

// FailureResult converts a configuration error into a processing result
// so the diagnostics output carries one line per input record.
func FailureResult(submission *models.FormSubmission, err error) *models.ProcessingResult {
	diags := models.ProcessingDiagnostics{SubmissionID: submission.SubmissionID}
	diags.AddError(exceptions.CodeOf(err), "", err.Error(), "")
	return &models.ProcessingResult{
		FormSubmissionID: submission.SubmissionID,
		Success:          false,
		Diagnostics:      []models.ProcessingDiagnostics{diags},
	}
}
