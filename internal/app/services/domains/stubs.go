package domains

import (
	"context"

	"finalform-service/internal/app/contracts"
	"finalform-service/internal/app/models"
	"finalform-service/internal/pkg/constvars"
	"finalform-service/internal/pkg/exceptions"
)

// stubProcessor reserves a kind without implementing it. Processing a
// submission for a stubbed kind is a configuration error, not a silent
// skip.
type stubProcessor struct {
	kind string
}

// NewStubProcessors returns the placeholder processors for the measure
// kinds the schema accepts but the pipeline cannot score yet.
func NewStubProcessors() []contracts.DomainProcessor {
	return []contracts.DomainProcessor{
		&stubProcessor{kind: constvars.KindLab},
		&stubProcessor{kind: constvars.KindVital},
		&stubProcessor{kind: constvars.KindWearable},
	}
}

func (s *stubProcessor) Kinds() []string {
	return []string{s.kind}
}

func (s *stubProcessor) Process(ctx context.Context, request *contracts.ProcessRequest) (*models.ProcessingResult, error) {
	return nil, exceptions.ErrDomainNotImplemented(s.kind)
}

func (s *stubProcessor) ValidateMeasure(measure *models.MeasureSpec) []string {
	return []string{"kind " + s.kind + " has no processor"}
}
