package interfaces

import (
	"context"

	"accuracy_wms/internal/domain/entities"
)

// ICartonNotifier broadcasts carton lifecycle events to external consumers
// (scanner UIs subscribe per tenant). Both calls are fire-and-forget:
// implementations log delivery failures instead of surfacing them, so a
// broken broker never blocks a validation.

type ICartonNotifier interface {
	CartonValidated(ctx context.Context, carton entities.CartonBox)
	CartonProcessed(ctx context.Context, carton entities.CartonBox, nextStep string)
}
