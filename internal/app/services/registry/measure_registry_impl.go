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

	"github.com/Masterminds/semver/v3"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type measureRegistry struct {
	RegistryPath string
	Log          *zap.Logger
	specs        map[specKey]*models.MeasureSpec
	versions     map[string][]string
}

type specKey struct {
	ID      string
	Version string
}

func NewMeasureRegistry(registryPath string, logger *zap.Logger) contracts.MeasureRegistry {
	return &measureRegistry{
		RegistryPath: registryPath,
		Log:          logger,
		specs:        make(map[specKey]*models.MeasureSpec),
		versions:     make(map[string][]string),
	}
}

func (r *measureRegistry) LoadAll() error {
	measuresPath := filepath.Join(r.RegistryPath, constvars.MeasureRegistrySubdir)
	entries, err := os.ReadDir(measuresPath)
	if err != nil {
		return exceptions.ErrRegistryPathMissing(err, measuresPath)
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		measureID := entry.Name()
		if err := r.loadMeasureDir(measuresPath, measureID); err != nil {
			return err
		}
	}

	for measureID := range r.versions {
		sortVersions(r.versions[measureID])
	}

	r.Log.Info("measureRegistry.LoadAll loaded measure specs",
		zap.Int(constvars.LoggingRecordCountKey, len(r.specs)),
		zap.String(constvars.LoggingPathKey, measuresPath),
	)
	return nil
}

func (r *measureRegistry) loadMeasureDir(measuresPath, measureID string) error {
	dir := filepath.Join(measuresPath, measureID)
	files, err := os.ReadDir(dir)
	if err != nil {
		return exceptions.ErrRegistryPathMissing(err, dir)
	}

	for _, file := range files {
		if file.IsDir() || !strings.HasSuffix(file.Name(), constvars.SpecFileExtension) {
			continue
		}
		specPath := filepath.Join(dir, file.Name())

		spec, err := parseMeasureSpec(specPath)
		if err != nil {
			return err
		}

		version := versionFromFilename(file.Name())
		if spec.MeasureID != measureID || spec.Version != version {
			return exceptions.ErrSchemaViolation(nil, specPath)
		}

		key := specKey{ID: measureID, Version: version}
		if _, exists := r.specs[key]; exists {
			return exceptions.ErrDuplicateSpec(measureID, version)
		}
		r.specs[key] = spec
		r.versions[measureID] = append(r.versions[measureID], version)
	}
	return nil
}

func parseMeasureSpec(specPath string) (*models.MeasureSpec, error) {
	data, err := os.ReadFile(specPath)
	if err != nil {
		return nil, exceptions.ErrRegistryPathMissing(err, specPath)
	}

	var spec models.MeasureSpec
	if err := json.Unmarshal(data, &spec); err != nil {
		return nil, exceptions.ErrSchemaViolation(err, specPath)
	}
	if err := utils.ValidateStruct(&spec); err != nil {
		return nil, exceptions.ErrSchemaViolation(err, specPath)
	}
	if err := ValidateMeasureInvariants(&spec); err != nil {
		return nil, exceptions.ErrSchemaViolation(err, specPath)
	}
	return &spec, nil
}

func (r *measureRegistry) Get(measureID, version string) (*models.MeasureSpec, error) {
	resolved := version
	if resolved == "" {
		available := r.versions[measureID]
		if len(available) == 0 {
			return nil, exceptions.ErrMeasureNotFound(measureID, "latest")
		}
		resolved = available[len(available)-1]
	}

	spec, ok := r.specs[specKey{ID: measureID, Version: resolved}]
	if !ok {
		return nil, exceptions.ErrMeasureNotFound(measureID, resolved)
	}
	return spec, nil
}

func (r *measureRegistry) ListMeasures() []string {
	ids := make([]string, 0, len(r.versions))
	for id := range r.versions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (r *measureRegistry) ListVersions(measureID string) []string {
	return append([]string(nil), r.versions[measureID]...)
}

// versionFromFilename converts "1-0-0.json" into "1.0.0".
func versionFromFilename(name string) string {
	stem := strings.TrimSuffix(name, constvars.SpecFileExtension)
	return strings.ReplaceAll(stem, "-", ".")
}

// sortVersions orders version strings ascending by semver. Unparsable
// versions never get this far; spec validation rejects them at load.
func sortVersions(versions []string) {
	sort.Slice(versions, func(i, j int) bool {
		vi, erri := semver.StrictNewVersion(versions[i])
		vj, errj := semver.StrictNewVersion(versions[j])
		if erri != nil || errj != nil {
			return versions[i] < versions[j]
		}
		return vi.LessThan(vj)
	})
}
