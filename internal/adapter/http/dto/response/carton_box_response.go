package response

import (
	"time"

	"accuracy_wms/internal/domain/entities"
)

type BuyerResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// CartonBoxResponse is the carton snapshot returned by search, process and
// validate-item. NextStep is only set when the carton was just processed.
type CartonBoxResponse struct {
	ID               string         `json:"id"`
	Barcode          string         `json:"barcode"`
	InternalSKU      string         `json:"internal_sku"`
	ValidationStatus string         `json:"validation_status"`
	Status           string         `json:"status"`
	ProcessedAt      *time.Time     `json:"processed_at,omitempty"`
	ProcessedBy      string         `json:"processed_by,omitempty"`
	ItemsQuantity    int            `json:"items_quantity"`
	ItemsValidated   int            `json:"items_validated"`
	Buyer            *BuyerResponse `json:"buyer,omitempty"`
	NextStep         string         `json:"next_step,omitempty"`
}

func FromCartonBox(c entities.CartonBox, nextStep string) CartonBoxResponse {
	resp := CartonBoxResponse{
		ID:               c.ID,
		Barcode:          c.Barcode,
		InternalSKU:      c.InternalSKU,
		ValidationStatus: string(c.ValidationStatus),
		Status:           string(c.Status),
		ProcessedAt:      c.ProcessedAt,
		ProcessedBy:      c.ProcessedBy,
		ItemsQuantity:    c.ItemsQuantity,
		ItemsValidated:   len(c.Items),
		NextStep:         nextStep,
	}
	if c.PackingList != nil && c.PackingList.Buyer != nil {
		b := c.PackingList.Buyer
		resp.Buyer = &BuyerResponse{ID: b.ID, Name: b.Name, Email: b.Email}
	}
	return resp
}
