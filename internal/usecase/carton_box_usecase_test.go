package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"accuracy_wms/internal/domain/entities"
	mock_interfaces "accuracy_wms/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

const cartonID = "3d0f5c76-6ef4-4f2b-8a42-5f2d8e9f1a0b"

func newCartonBoxUseCase(t *testing.T) (*CartonBoxUseCase, *mock_interfaces.MockICartonBoxRepository, *mock_interfaces.MockICartonNotifier) {
	ctrl := gomock.NewController(t)
	cartons := mock_interfaces.NewMockICartonBoxRepository(ctrl)
	notifier := mock_interfaces.NewMockICartonNotifier(ctrl)
	return NewCartonBoxUseCase(cartons, notifier), cartons, notifier
}

func pendingCarton(id, barcode, sku, po string) entities.CartonBox {
	return entities.CartonBox{
		ID:               id,
		Barcode:          barcode,
		InternalSKU:      sku,
		ValidationStatus: entities.ValidationStatusPending,
		Status:           entities.CartonStatusOpen,
		PackingList:      &entities.PackingList{ID: "pl-1", PurchaseOrderNumber: po},
	}
}

func TestCartonBoxUseCase_Search(t *testing.T) {
	t.Run("requires at least one filter", func(t *testing.T) {
		uc, _, _ := newCartonBoxUseCase(t)
		_, err := uc.Search(context.Background(), "  ", "", "", "user-1", "v1")
		if !errors.Is(err, ErrNoSearchFilter) {
			t.Fatalf("expected ErrNoSearchFilter, got %v", err)
		}
	})

	t.Run("no matches", func(t *testing.T) {
		uc, cartons, _ := newCartonBoxUseCase(t)
		cartons.EXPECT().FindByFilters(gomock.Any(), "B-1", "", "").Return(nil, nil)

		_, err := uc.Search(context.Background(), "B-1", "", "", "user-1", "v1")
		if !errors.Is(err, ErrCartonNotFound) {
			t.Fatalf("expected ErrCartonNotFound, got %v", err)
		}
	})

	t.Run("repo error propagates", func(t *testing.T) {
		uc, cartons, _ := newCartonBoxUseCase(t)
		cartons.EXPECT().FindByFilters(gomock.Any(), "B-1", "", "").Return(nil, errors.New("db"))

		_, err := uc.Search(context.Background(), "B-1", "", "", "user-1", "v1")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("multiple matches are returned without processing", func(t *testing.T) {
		uc, cartons, _ := newCartonBoxUseCase(t)
		cartons.EXPECT().FindByFilters(gomock.Any(), "B-1", "", "").Return([]entities.CartonBox{
			pendingCarton("c-1", "B-1", "SKU-1", "PO-1"),
			pendingCarton("c-2", "B-1", "SKU-2", "PO-1"),
		}, nil)

		res, err := uc.Search(context.Background(), "B-1", "", "", "user-1", "v1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.Cartons) != 2 || res.NextStep != "" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("unique match is auto-processed", func(t *testing.T) {
		uc, cartons, notifier := newCartonBoxUseCase(t)
		cartons.EXPECT().FindByFilters(gomock.Any(), "B-1", "PO-1", "SKU-1").Return([]entities.CartonBox{
			pendingCarton(cartonID, "B-1", "SKU-1", "PO-1"),
		}, nil)
		cartons.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.CartonBox) (entities.CartonBox, error) {
				if c.ValidationStatus != entities.ValidationStatusProcess {
					t.Fatalf("expected PROCESS, got %s", c.ValidationStatus)
				}
				if c.ProcessedBy != "user-1" || c.ProcessedAt == nil {
					t.Fatalf("expected processed fields, got %+v", c)
				}
				return c, nil
			},
		)
		notifier.EXPECT().CartonProcessed(gomock.Any(), gomock.Any(), gomock.Any()).Times(1)

		res, err := uc.Search(context.Background(), "B-1", "PO-1", "SKU-1", "user-1", "v2")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.Cartons) != 1 {
			t.Fatalf("expected 1 carton, got %d", len(res.Cartons))
		}
		if res.NextStep != "/v2/carton-boxes/"+cartonID+"/validate-item" {
			t.Fatalf("unexpected next step: %s", res.NextStep)
		}
	})

	t.Run("unique match without a user stays pending", func(t *testing.T) {
		uc, cartons, _ := newCartonBoxUseCase(t)
		cartons.EXPECT().FindByFilters(gomock.Any(), "B-1", "", "").Return([]entities.CartonBox{
			pendingCarton(cartonID, "B-1", "SKU-1", "PO-1"),
		}, nil)

		res, err := uc.Search(context.Background(), "B-1", "", "", "  ", "v1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.NextStep != "" || res.Cartons[0].ValidationStatus != entities.ValidationStatusPending {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestCartonBoxUseCase_Process(t *testing.T) {
	t.Run("non-uuid id reads as not found", func(t *testing.T) {
		uc, _, _ := newCartonBoxUseCase(t)
		_, _, err := uc.Process(context.Background(), "not-a-uuid", "user-1", "v1")
		if !errors.Is(err, ErrCartonNotFound) {
			t.Fatalf("expected ErrCartonNotFound, got %v", err)
		}
	})

	t.Run("missing carton", func(t *testing.T) {
		uc, cartons, _ := newCartonBoxUseCase(t)
		cartons.EXPECT().GetByID(gomock.Any(), cartonID).Return(entities.CartonBox{}, nil)

		_, _, err := uc.Process(context.Background(), cartonID, "user-1", "v1")
		if !errors.Is(err, ErrCartonNotFound) {
			t.Fatalf("expected ErrCartonNotFound, got %v", err)
		}
	})

	t.Run("pending carton is processed and notified", func(t *testing.T) {
		uc, cartons, notifier := newCartonBoxUseCase(t)
		cartons.EXPECT().GetByID(gomock.Any(), cartonID).Return(pendingCarton(cartonID, "B-1", "SKU-1", "PO-1"), nil)
		cartons.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.CartonBox) (entities.CartonBox, error) { return c, nil },
		)
		notifier.EXPECT().CartonProcessed(gomock.Any(), gomock.Any(), "/v1/carton-boxes/"+cartonID+"/validate-item").Times(1)

		carton, nextStep, err := uc.Process(context.Background(), " "+cartonID+" ", "user-1", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if carton.ValidationStatus != entities.ValidationStatusProcess {
			t.Fatalf("expected PROCESS, got %s", carton.ValidationStatus)
		}
		if !strings.HasSuffix(nextStep, "/validate-item") {
			t.Fatalf("unexpected next step: %s", nextStep)
		}
	})

	t.Run("already processed carton is returned without saving", func(t *testing.T) {
		uc, cartons, _ := newCartonBoxUseCase(t)
		processed := pendingCarton(cartonID, "B-1", "SKU-1", "PO-1")
		processed.ValidationStatus = entities.ValidationStatusProcess
		processed.ProcessedBy = "user-0"
		cartons.EXPECT().GetByID(gomock.Any(), cartonID).Return(processed, nil)

		carton, nextStep, err := uc.Process(context.Background(), cartonID, "user-1", "v1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if carton.ProcessedBy != "user-0" {
			t.Fatalf("first scanner lost: %s", carton.ProcessedBy)
		}
		if nextStep == "" {
			t.Fatalf("expected next step for an already processed carton")
		}
	})
}

func TestCartonBoxUseCase_ListPurchaseOrders(t *testing.T) {
	t.Run("requires a barcode", func(t *testing.T) {
		uc, _, _ := newCartonBoxUseCase(t)
		_, err := uc.ListPurchaseOrders(context.Background(), " ")
		if !errors.Is(err, ErrInvalidBarcode) {
			t.Fatalf("expected ErrInvalidBarcode, got %v", err)
		}
	})

	t.Run("deduplicates and skips validated cartons", func(t *testing.T) {
		uc, cartons, _ := newCartonBoxUseCase(t)
		validated := pendingCarton("c-3", "B-1", "SKU-3", "PO-9")
		validated.ValidationStatus = entities.ValidationStatusValidated
		cartons.EXPECT().FindByFilters(gomock.Any(), "B-1", "", "").Return([]entities.CartonBox{
			pendingCarton("c-1", "B-1", "SKU-1", "PO-1"),
			pendingCarton("c-2", "B-1", "SKU-2", "PO-1"),
			pendingCarton("c-4", "B-1", "SKU-4", "PO-2"),
			validated,
		}, nil)

		opts, err := uc.ListPurchaseOrders(context.Background(), "B-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(opts) != 2 || opts[0].ID != "PO-1" || opts[1].ID != "PO-2" {
			t.Fatalf("unexpected options: %+v", opts)
		}
	})
}

func TestCartonBoxUseCase_ListSKUs(t *testing.T) {
	t.Run("requires barcode and po", func(t *testing.T) {
		uc, _, _ := newCartonBoxUseCase(t)
		if _, err := uc.ListSKUs(context.Background(), "B-1", ""); !errors.Is(err, ErrNoSearchFilter) {
			t.Fatalf("expected ErrNoSearchFilter, got %v", err)
		}
		if _, err := uc.ListSKUs(context.Background(), "", "PO-1"); !errors.Is(err, ErrNoSearchFilter) {
			t.Fatalf("expected ErrNoSearchFilter, got %v", err)
		}
	})

	t.Run("returns distinct skus", func(t *testing.T) {
		uc, cartons, _ := newCartonBoxUseCase(t)
		cartons.EXPECT().FindByFilters(gomock.Any(), "B-1", "PO-1", "").Return([]entities.CartonBox{
			pendingCarton("c-1", "B-1", "SKU-1", "PO-1"),
			pendingCarton("c-2", "B-1", "SKU-1", "PO-1"),
			pendingCarton("c-3", "B-1", "SKU-2", "PO-1"),
		}, nil)

		opts, err := uc.ListSKUs(context.Background(), "B-1", "PO-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(opts) != 2 || opts[0].ID != "SKU-1" || opts[1].ID != "SKU-2" {
			t.Fatalf("unexpected options: %+v", opts)
		}
	})
}
