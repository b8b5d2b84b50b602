package contracts

import (
	"finalform-service/internal/app/models"
)

// MeasureRegistry serves immutable measure specs. LoadAll scans the
// registry layout once; lookups never touch the filesystem afterwards.
type MeasureRegistry interface {
	LoadAll() error
	// Get returns the spec for (measureID, version). An empty version
	// resolves to the latest by semver ordering.
	Get(measureID, version string) (*models.MeasureSpec, error)
	ListMeasures() []string
	ListVersions(measureID string) []string
}

// BindingRegistry serves immutable form binding specs with the same
// lifecycle as MeasureRegistry.
type BindingRegistry interface {
	LoadAll() error
	Get(bindingID, version string) (*models.FormBindingSpec, error)
	ListBindings() []string
	ListVersions(bindingID string) []string
}
