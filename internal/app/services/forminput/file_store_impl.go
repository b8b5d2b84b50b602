package forminput

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"finalform-service/internal/app/contracts"
	"finalform-service/internal/app/models"
	"finalform-service/internal/pkg/constvars"
	"finalform-service/internal/pkg/exceptions"
	"finalform-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const resolutionEventsFile = "_resolution_events.jsonl"

type fileItemMapStore struct {
	StorePath string
	Log       *zap.Logger
}

// NewFileItemMapStore stores one JSON file per (form_id, measure_id)
// under <storePath>/<form_id>/<measure_id>.json.
func NewFileItemMapStore(storePath string, logger *zap.Logger) contracts.ItemMapStore {
	return &fileItemMapStore{
		StorePath: storePath,
		Log:       logger,
	}
}

func (s *fileItemMapStore) mappingPath(formID, measureID string) string {
	return filepath.Join(s.StorePath, utils.SafeFileComponent(formID), measureID+constvars.SpecFileExtension)
}

func (s *fileItemMapStore) GetItemMap(ctx context.Context, formID, measureID string) (*models.ItemMap, error) {
	data, err := os.ReadFile(s.mappingPath(formID, measureID))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, exceptions.ErrStoreUnavailable(err)
	}

	var itemMap models.ItemMap
	if err := json.Unmarshal(data, &itemMap); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return &itemMap, nil
}

func (s *fileItemMapStore) SaveItemMap(ctx context.Context, itemMap *models.ItemMap) error {
	path := s.mappingPath(itemMap.FormID, itemMap.MeasureID)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return exceptions.ErrStoreUnavailable(err)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	itemMap.Meta.UpdatedAt = now
	itemMap.Meta.CreatedAt = now
	if existing, err := s.GetItemMap(ctx, itemMap.FormID, itemMap.MeasureID); err == nil && existing != nil && existing.Meta.CreatedAt != "" {
		itemMap.Meta.CreatedAt = existing.Meta.CreatedAt
	}

	data, err := json.MarshalIndent(itemMap, "", "  ")
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return exceptions.ErrStoreUnavailable(err)
	}

	s.Log.Info("fileItemMapStore.SaveItemMap saved mapping",
		zap.String(constvars.LoggingFormIDKey, itemMap.FormID),
		zap.String(constvars.LoggingMeasureIDKey, itemMap.MeasureID),
	)
	return nil
}

func (s *fileItemMapStore) ListMappings(ctx context.Context, formID string) ([]string, error) {
	dir := filepath.Join(s.StorePath, utils.SafeFileComponent(formID))
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, exceptions.ErrStoreUnavailable(err)
	}

	var measureIDs []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, "_") || !strings.HasSuffix(name, constvars.SpecFileExtension) {
			continue
		}
		measureIDs = append(measureIDs, strings.TrimSuffix(name, constvars.SpecFileExtension))
	}
	sort.Strings(measureIDs)
	return measureIDs, nil
}

func (s *fileItemMapStore) DeleteItemMap(ctx context.Context, formID, measureID string) (bool, error) {
	err := os.Remove(s.mappingPath(formID, measureID))
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, exceptions.ErrStoreUnavailable(err)
	}
	return true, nil
}

func (s *fileItemMapStore) RecordResolutionEvent(ctx context.Context, event *models.ResolutionEvent) error {
	if event.Timestamp == "" {
		event.Timestamp = time.Now().UTC().Format(time.RFC3339)
	}
	data, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	if err := os.MkdirAll(s.StorePath, 0o755); err != nil {
		return exceptions.ErrStoreUnavailable(err)
	}
	f, err := os.OpenFile(filepath.Join(s.StorePath, resolutionEventsFile), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return exceptions.ErrStoreUnavailable(err)
	}
	defer f.Close()

	if _, err := f.Write(append(data, '\n')); err != nil {
		return exceptions.ErrStoreUnavailable(err)
	}
	return nil
}
