package forminput

import (
	"context"
	"fmt"
	"sort"
	"time"

	"finalform-service/internal/app/contracts"
	"finalform-service/internal/app/models"
	"finalform-service/internal/pkg/constvars"
	"finalform-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	itemMapKeyPrefix        = "finalform:item-map"
	itemMapIndexPrefix      = "finalform:item-map-index"
	resolutionEventsListKey = "finalform:resolution-events"
)

type redisItemMapStore struct {
	client *redis.Client
	ttl    time.Duration
	Log    *zap.Logger
}

// NewRedisItemMapStore keeps item maps in redis, one value per
// (form_id, measure_id) plus a per-form index set. A zero ttl means no
// expiry.
func NewRedisItemMapStore(client *redis.Client, ttl time.Duration, logger *zap.Logger) contracts.ItemMapStore {
	return &redisItemMapStore{
		client: client,
		ttl:    ttl,
		Log:    logger,
	}
}

func itemMapKey(formID, measureID string) string {
	return fmt.Sprintf("%s:%s:%s", itemMapKeyPrefix, formID, measureID)
}

func itemMapIndexKey(formID string) string {
	return fmt.Sprintf("%s:%s", itemMapIndexPrefix, formID)
}

func (s *redisItemMapStore) GetItemMap(ctx context.Context, formID, measureID string) (*models.ItemMap, error) {
	data, err := s.client.Get(ctx, itemMapKey(formID, measureID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, exceptions.ErrStoreUnavailable(err)
	}

	var itemMap models.ItemMap
	if err := json.Unmarshal([]byte(data), &itemMap); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return &itemMap, nil
}

func (s *redisItemMapStore) SaveItemMap(ctx context.Context, itemMap *models.ItemMap) error {
	now := time.Now().UTC().Format(time.RFC3339)
	itemMap.Meta.UpdatedAt = now
	itemMap.Meta.CreatedAt = now
	if existing, err := s.GetItemMap(ctx, itemMap.FormID, itemMap.MeasureID); err == nil && existing != nil && existing.Meta.CreatedAt != "" {
		itemMap.Meta.CreatedAt = existing.Meta.CreatedAt
	}

	data, err := json.Marshal(itemMap)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	if err := s.client.Set(ctx, itemMapKey(itemMap.FormID, itemMap.MeasureID), data, s.ttl).Err(); err != nil {
		return exceptions.ErrStoreUnavailable(err)
	}
	if err := s.client.SAdd(ctx, itemMapIndexKey(itemMap.FormID), itemMap.MeasureID).Err(); err != nil {
		return exceptions.ErrStoreUnavailable(err)
	}

	s.Log.Info("redisItemMapStore.SaveItemMap saved mapping",
		zap.String(constvars.LoggingFormIDKey, itemMap.FormID),
		zap.String(constvars.LoggingMeasureIDKey, itemMap.MeasureID),
	)
	return nil
}

func (s *redisItemMapStore) ListMappings(ctx context.Context, formID string) ([]string, error) {
	measureIDs, err := s.client.SMembers(ctx, itemMapIndexKey(formID)).Result()
	if err != nil {
		return nil, exceptions.ErrStoreUnavailable(err)
	}
	sort.Strings(measureIDs)
	return measureIDs, nil
}

func (s *redisItemMapStore) DeleteItemMap(ctx context.Context, formID, measureID string) (bool, error) {
	deleted, err := s.client.Del(ctx, itemMapKey(formID, measureID)).Result()
	if err != nil {
		return false, exceptions.ErrStoreUnavailable(err)
	}
	if err := s.client.SRem(ctx, itemMapIndexKey(formID), measureID).Err(); err != nil {
		return false, exceptions.ErrStoreUnavailable(err)
	}
	return deleted > 0, nil
}

func (s *redisItemMapStore) RecordResolutionEvent(ctx context.Context, event *models.ResolutionEvent) error {
	if event.Timestamp == "" {
		event.Timestamp = time.Now().UTC().Format(time.RFC3339)
	}
	data, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}
	if err := s.client.RPush(ctx, resolutionEventsListKey, data).Err(); err != nil {
		return exceptions.ErrStoreUnavailable(err)
	}
	return nil
}
