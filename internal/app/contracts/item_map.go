package contracts

import (
	"context"

	"finalform-service/internal/app/models"
)

// ItemMapStore is the form-input key/value store holding field_id ->
// item_id maps per (form_id, measure_id). Reads happen on the
// processing path; writes are administrative.
type ItemMapStore interface {
	GetItemMap(ctx context.Context, formID, measureID string) (*models.ItemMap, error)
	SaveItemMap(ctx context.Context, itemMap *models.ItemMap) error
	ListMappings(ctx context.Context, formID string) ([]string, error)
	DeleteItemMap(ctx context.Context, formID, measureID string) (bool, error)
	RecordResolutionEvent(ctx context.Context, event *models.ResolutionEvent) error
}
