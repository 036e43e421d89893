package response

import (
	"testing"
	"time"

	"accuracy_wms/internal/domain/entities"
	"accuracy_wms/internal/usecase"
)

func TestFromCartonBox(t *testing.T) {
	at := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	carton := entities.CartonBox{
		ID:               "c-1",
		Barcode:          "B-1",
		InternalSKU:      "SKU-1",
		ValidationStatus: entities.ValidationStatusProcess,
		Status:           entities.CartonStatusOpen,
		ProcessedAt:      &at,
		ProcessedBy:      "user-1",
		ItemsQuantity:    3,
		Items:            []entities.Item{{ID: "i-1"}, {ID: "i-2"}},
		PackingList: &entities.PackingList{
			Buyer: &entities.Buyer{ID: "b-1", Name: "Acme", Email: "ops@acme.test"},
		},
	}

	got := FromCartonBox(carton, "/v1/carton-boxes/c-1/validate-item")
	if got.ID != "c-1" || got.ValidationStatus != "PROCESS" || got.Status != "OPEN" {
		t.Fatalf("unexpected snapshot: %+v", got)
	}
	if got.ItemsQuantity != 3 || got.ItemsValidated != 2 {
		t.Fatalf("unexpected counts: %+v", got)
	}
	if got.Buyer == nil || got.Buyer.Name != "Acme" {
		t.Fatalf("buyer not mapped: %+v", got.Buyer)
	}
	if got.NextStep != "/v1/carton-boxes/c-1/validate-item" {
		t.Fatalf("unexpected next step: %s", got.NextStep)
	}
}

func TestFromCartonBox_NoPackingList(t *testing.T) {
	got := FromCartonBox(entities.CartonBox{ID: "c-1"}, "")
	if got.Buyer != nil || got.NextStep != "" {
		t.Fatalf("unexpected snapshot: %+v", got)
	}
}

func TestFromValidateResult(t *testing.T) {
	res := usecase.ValidateResult{
		CartonBox: entities.CartonBox{ID: "c-1", Items: []entities.Item{{ID: "i-1"}}},
		Item:      entities.Item{ID: "i-1", Barcode: "LPN123", Details: map[string]string{"Style": "A100"}},
	}

	got := FromValidateResult(res)
	if got.CartonBox.ID != "c-1" || got.CartonBox.NextStep != "" {
		t.Fatalf("unexpected carton: %+v", got.CartonBox)
	}
	if got.Item.ID != "i-1" || got.Item.Details["Style"] != "A100" {
		t.Fatalf("unexpected item: %+v", got.Item)
	}
}
