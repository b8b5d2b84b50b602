package main

import (
	"context"
	"os"

	"finalform-service/internal/app/models"
	"finalform-service/internal/app/services/domains"
	"finalform-service/internal/app/services/pipeline"
	"finalform-service/internal/app/services/registry"
	"finalform-service/internal/pkg/constvars"
	"finalform-service/internal/pkg/jsonl"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type runOptions struct {
	inPath          string
	outPath         string
	diagnosticsPath string
	bindingID       string
	bindingVersion  string
	measureID       string
	measureVersion  string
	measurePath     string
	bindingPath     string
	strict          bool
	deterministic   bool
	workers         int
}

// diagnosticsRecord is one line of the diagnostics output: the
// per-record result minus the events.
type diagnosticsRecord struct {
	FormSubmissionID string                         `json:"form_submission_id"`
	Success          bool                           `json:"success"`
	Diagnostics      []models.ProcessingDiagnostics `json:"diagnostics"`
}

func newRunCommand() *cobra.Command {
	opts := &runOptions{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Process a batch of submissions from line-delimited JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			runBatch(cmd.Context(), opts)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.inPath, "in", "", "input submissions (jsonl)")
	flags.StringVar(&opts.outPath, "out", "", "output events (jsonl)")
	flags.StringVar(&opts.diagnosticsPath, "diagnostics", "", "per-record diagnostics output (jsonl)")
	flags.StringVar(&opts.bindingID, "binding", "", "binding spec id")
	flags.StringVar(&opts.bindingVersion, "binding-version", "", "binding spec version (default latest)")
	flags.StringVar(&opts.measureID, "measure", "", "process through the form-input item map for this measure instead of a binding spec")
	flags.StringVar(&opts.measureVersion, "measure-version", "", "measure version for --measure (default latest)")
	flags.StringVar(&opts.measurePath, "measure-registry", "", "measure registry root (overrides env)")
	flags.StringVar(&opts.bindingPath, "form-binding-registry", "", "binding registry root (overrides env)")
	flags.BoolVar(&opts.strict, "strict", false, "fail records containing unmapped fields")
	flags.BoolVar(&opts.deterministic, "deterministic-ids", false, "derive event and observation ids from record identity")
	flags.IntVar(&opts.workers, "workers", 0, "worker count (overrides env)")
	cmd.MarkFlagRequired("in")
	cmd.MarkFlagRequired("out")

	return cmd
}

func runBatch(ctx context.Context, opts *runOptions) {
	measurePath := internalConfig.Registry.MeasurePath
	if opts.measurePath != "" {
		measurePath = opts.measurePath
	}
	bindingPath := internalConfig.Registry.BindingPath
	if opts.bindingPath != "" {
		bindingPath = opts.bindingPath
	}
	strict := internalConfig.Pipeline.Strict || opts.strict
	deterministic := internalConfig.Pipeline.DeterministicIDs || opts.deterministic
	workers := internalConfig.Pipeline.Workers
	if opts.workers > 0 {
		workers = opts.workers
	}

	measureRegistry := registry.NewMeasureRegistry(measurePath, log)
	if err := measureRegistry.LoadAll(); err != nil {
		fatalStartup("cannot load measure registry", err)
	}
	bindingRegistry := registry.NewBindingRegistry(bindingPath, log)
	if err := bindingRegistry.LoadAll(); err != nil {
		fatalStartup("cannot load binding registry", err)
	}
	itemMapStore, err := newItemMapStore()
	if err != nil {
		fatalStartup("cannot open item-map store", err)
	}

	router := domains.NewDefaultRouter(log)
	usecase := pipeline.NewPipelineUsecase(
		measureRegistry, bindingRegistry, itemMapStore, router, log,
		opts.bindingID, opts.bindingVersion, strict, deterministic,
	)
	runner := pipeline.NewBatchRunner(usecase, workers, log)

	in, err := os.Open(opts.inPath)
	if err != nil {
		fatalStartup("cannot open input", err)
	}
	defer in.Close()
	submissions, err := jsonl.ReadAll[models.FormSubmission](in)
	if err != nil {
		fatalStartup("cannot read input", err)
	}

	var outcomes []pipeline.RecordOutcome
	var summary pipeline.RunSummary
	if opts.measureID != "" {
		outcomes, summary = runner.RunForMeasure(ctx, submissions, opts.measureID, opts.measureVersion)
	} else {
		outcomes, summary = runner.Run(ctx, submissions)
	}

	if err := writeOutputs(opts, outcomes); err != nil {
		fatalStartup("cannot write output", err)
	}

	log.Info("run complete",
		zap.Int(constvars.LoggingRecordCountKey, summary.Records),
		zap.Int(constvars.LoggingEventCountKey, summary.Events),
		zap.Int("success", summary.Success),
		zap.Int("failed", summary.Failed),
		zap.Int("critical", summary.Critical),
		zap.Int(constvars.LoggingWorkerCountKey, workers),
	)

	if summary.Critical > 0 {
		log.Sync()
		os.Exit(constvars.ExitRecordFailures)
	}
}

func writeOutputs(opts *runOptions, outcomes []pipeline.RecordOutcome) error {
	out, err := os.Create(opts.outPath)
	if err != nil {
		return err
	}
	defer out.Close()
	events := jsonl.NewWriter(out)

	var diagnostics *jsonl.Writer
	if opts.diagnosticsPath != "" {
		diagOut, err := os.Create(opts.diagnosticsPath)
		if err != nil {
			return err
		}
		defer diagOut.Close()
		diagnostics = jsonl.NewWriter(diagOut)
	}

	for i := range outcomes {
		result := outcomes[i].Result
		for j := range result.Events {
			if err := events.Write(&result.Events[j]); err != nil {
				return err
			}
		}
		if diagnostics != nil {
			record := diagnosticsRecord{
				FormSubmissionID: result.FormSubmissionID,
				Success:          result.Success,
				Diagnostics:      result.Diagnostics,
			}
			if err := diagnostics.Write(&record); err != nil {
				return err
			}
		}
	}

	if err := events.Flush(); err != nil {
		return err
	}
	if diagnostics != nil {
		return diagnostics.Flush()
	}
	return nil
}

func fatalStartup(message string, err error) {
	log.Error(message, zap.Error(err))
	log.Sync()
	os.Exit(constvars.ExitStartupFailure)
}
