package domains

import (
	"sync"

	"finalform-service/internal/app/contracts"
	"finalform-service/internal/app/services/questionnaire"
	"finalform-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

// Router dispatches submissions to the processor registered for the
// measure's kind. The set of kinds is closed at construction.
type Router struct {
	processors map[string]contracts.DomainProcessor
}

var (
	routerInstance *Router
	onceRouter     sync.Once
)

func NewRouter() *Router {
	return &Router{processors: make(map[string]contracts.DomainProcessor)}
}

// Register binds every kind the processor declares. Later registrations
// for the same kind win; kinds are registered once at startup.
func (r *Router) Register(processor contracts.DomainProcessor) {
	for _, kind := range processor.Kinds() {
		r.processors[kind] = processor
	}
}

// Resolve returns the processor for kind, or an UnknownDomain error.
func (r *Router) Resolve(kind string) (contracts.DomainProcessor, error) {
	processor, ok := r.processors[kind]
	if !ok {
		return nil, exceptions.ErrUnknownDomain(kind)
	}
	return processor, nil
}

// Kinds lists every registered kind, stubs included.
func (r *Router) Kinds() []string {
	kinds := make([]string, 0, len(r.processors))
	for kind := range r.processors {
		kinds = append(kinds, kind)
	}
	return kinds
}

// NewDefaultRouter registers the questionnaire processor plus explicit
// stubs for the domains the data model names but no processor serves
// yet. A stubbed kind fails loudly instead of falling through to the
// questionnaire path.
func NewDefaultRouter(logger *zap.Logger) *Router {
	onceRouter.Do(func() {
		routerInstance = NewRouter()
		routerInstance.Register(questionnaire.NewQuestionnaireProcessor(logger))
		for _, stub := range NewStubProcessors() {
			routerInstance.Register(stub)
		}
	})
	return routerInstance
}
