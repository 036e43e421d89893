package interfaces

import (
	"context"
	"time"

	"accuracy_wms/internal/domain/entities"
)

// IItemRepository abstracts DynamoDB persistence for catalogued items and
// their carton validation links.
//
// FindByLPN returns an empty slice when no item carries the barcode.
// SaveValidationLink is an idempotent upsert per (item, carton) pair.

type IItemRepository interface {
	FindByLPN(ctx context.Context, lpn string) ([]entities.Item, error)
	SaveValidationLink(ctx context.Context, item entities.Item, cartonBoxID, validatedBy string, validatedAt time.Time) error
}
