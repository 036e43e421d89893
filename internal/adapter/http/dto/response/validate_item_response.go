package response

import (
	"accuracy_wms/internal/domain/entities"
	"accuracy_wms/internal/usecase"
)

type ItemResponse struct {
	ID      string            `json:"id"`
	Barcode string            `json:"barcode"`
	Details map[string]string `json:"details,omitempty"`
}

// ValidateItemResponse pairs the carton snapshot after the attach with the
// matched item's public data.
type ValidateItemResponse struct {
	CartonBox CartonBoxResponse `json:"carton_box"`
	Item      ItemResponse      `json:"item"`
}

func FromValidateResult(res usecase.ValidateResult) ValidateItemResponse {
	return ValidateItemResponse{
		CartonBox: FromCartonBox(res.CartonBox, ""),
		Item:      fromItem(res.Item),
	}
}

func fromItem(i entities.Item) ItemResponse {
	return ItemResponse{ID: i.ID, Barcode: i.Barcode, Details: i.Details}
}
