package request

// ValidateItemRequest is the payload for the validate-item route. The
// barcode is the raw scan string; decoding it is the engine's job.

type ValidateItemRequest struct {
	Barcode string `json:"barcode" binding:"required"`
}
