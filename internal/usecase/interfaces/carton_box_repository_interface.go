package interfaces

import (
	"context"
	"errors"

	"accuracy_wms/internal/domain/entities"
)

// ErrCartonVersionConflict is returned by Save when the carton row changed
// since it was loaded. Validation retries the whole read-check-write cycle,
// which keeps per-carton attach counts linearizable.
var ErrCartonVersionConflict = errors.New("carton box version conflict")

// ICartonBoxRepository abstracts DynamoDB persistence for CartonBox.
//
// GetByID returns a zero-value carton (empty ID) when the id is unknown.
// Save performs a conditional write on the loaded version and bumps it.

type ICartonBoxRepository interface {
	GetByID(ctx context.Context, id string) (entities.CartonBox, error)
	FindByFilters(ctx context.Context, barcode, po, sku string) ([]entities.CartonBox, error)
	Save(ctx context.Context, c entities.CartonBox) (entities.CartonBox, error)
}
