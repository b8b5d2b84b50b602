package registry

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"finalform-service/internal/app/contracts"
	"finalform-service/internal/app/models"
	"finalform-service/internal/pkg/constvars"
	"finalform-service/internal/pkg/exceptions"
	"finalform-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type bindingRegistry struct {
	RegistryPath string
	Log          *zap.Logger
	specs        map[specKey]*models.FormBindingSpec
	versions     map[string][]string
}

func NewBindingRegistry(registryPath string, logger *zap.Logger) contracts.BindingRegistry {
	return &bindingRegistry{
		RegistryPath: registryPath,
		Log:          logger,
		specs:        make(map[specKey]*models.FormBindingSpec),
		versions:     make(map[string][]string),
	}
}

func (r *bindingRegistry) LoadAll() error {
	bindingsPath := filepath.Join(r.RegistryPath, constvars.BindingRegistrySubdir)
	entries, err := os.ReadDir(bindingsPath)
	if err != nil {
		return exceptions.ErrRegistryPathMissing(err, bindingsPath)
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		bindingID := entry.Name()
		if err := r.loadBindingDir(bindingsPath, bindingID); err != nil {
			return err
		}
	}

	for bindingID := range r.versions {
		sortVersions(r.versions[bindingID])
	}

	r.Log.Info("bindingRegistry.LoadAll loaded binding specs",
		zap.Int(constvars.LoggingRecordCountKey, len(r.specs)),
		zap.String(constvars.LoggingPathKey, bindingsPath),
	)
	return nil
}

func (r *bindingRegistry) loadBindingDir(bindingsPath, bindingID string) error {
	dir := filepath.Join(bindingsPath, bindingID)
	files, err := os.ReadDir(dir)
	if err != nil {
		return exceptions.ErrRegistryPathMissing(err, dir)
	}

	for _, file := range files {
		if file.IsDir() || !strings.HasSuffix(file.Name(), constvars.SpecFileExtension) {
			continue
		}
		specPath := filepath.Join(dir, file.Name())

		spec, err := parseBindingSpec(specPath)
		if err != nil {
			return err
		}

		version := versionFromFilename(file.Name())
		if spec.BindingID != bindingID || spec.Version != version {
			return exceptions.ErrSchemaViolation(nil, specPath)
		}

		key := specKey{ID: bindingID, Version: version}
		if _, exists := r.specs[key]; exists {
			return exceptions.ErrDuplicateSpec(bindingID, version)
		}
		r.specs[key] = spec
		r.versions[bindingID] = append(r.versions[bindingID], version)
	}
	return nil
}

func parseBindingSpec(specPath string) (*models.FormBindingSpec, error) {
	data, err := os.ReadFile(specPath)
	if err != nil {
		return nil, exceptions.ErrRegistryPathMissing(err, specPath)
	}

	var spec models.FormBindingSpec
	if err := json.Unmarshal(data, &spec); err != nil {
		return nil, exceptions.ErrSchemaViolation(err, specPath)
	}
	if err := utils.ValidateStruct(&spec); err != nil {
		return nil, exceptions.ErrSchemaViolation(err, specPath)
	}
	return &spec, nil
}

func (r *bindingRegistry) Get(bindingID, version string) (*models.FormBindingSpec, error) {
	resolved := version
	if resolved == "" {
		available := r.versions[bindingID]
		if len(available) == 0 {
			return nil, exceptions.ErrBindingNotFound(bindingID, "latest")
		}
		resolved = available[len(available)-1]
	}

	spec, ok := r.specs[specKey{ID: bindingID, Version: resolved}]
	if !ok {
		return nil, exceptions.ErrBindingNotFound(bindingID, resolved)
	}
	return spec, nil
}

func (r *bindingRegistry) ListBindings() []string {
	ids := make([]string, 0, len(r.versions))
	for id := range r.versions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (r *bindingRegistry) ListVersions(bindingID string) []string {
	return append([]string(nil), r.versions[bindingID]...)
}
