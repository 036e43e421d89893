package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"accuracy_wms/internal/domain/entities"
	"accuracy_wms/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var ErrNoSearchFilter = errors.New("at least one search filter is required")

// Option is an {id,name} pair for scanner dropdowns (PO and SKU lookups).
type Option struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CartonSearchResult carries the matched cartons; NextStep points at the
// validate-item endpoint when a single carton was auto-processed.
type CartonSearchResult struct {
	Cartons  []entities.CartonBox
	NextStep string
}

// ICartonBoxUseCase exposes the carton lookup and processing operations the
// scanner flow uses before validation starts.

type ICartonBoxUseCase interface {
	Search(ctx context.Context, barcode, po, sku, processedBy, version string) (CartonSearchResult, error)
	Process(ctx context.Context, id, processedBy, version string) (entities.CartonBox, string, error)
	ListPurchaseOrders(ctx context.Context, barcode string) ([]Option, error)
	ListSKUs(ctx context.Context, barcode, po string) ([]Option, error)
}

type CartonBoxUseCase struct {
	cartons  interfaces.ICartonBoxRepository
	notifier interfaces.ICartonNotifier
}

var _ ICartonBoxUseCase = (*CartonBoxUseCase)(nil)

func NewCartonBoxUseCase(cartons interfaces.ICartonBoxRepository, notifier interfaces.ICartonNotifier) *CartonBoxUseCase {
	return &CartonBoxUseCase{cartons: cartons, notifier: notifier}
}

// Search looks up non-validated cartons by barcode, PO and/or SKU. A unique
// hit is processed on the spot so the scanner can jump straight to item
// validation.
func (u *CartonBoxUseCase) Search(ctx context.Context, barcode, po, sku, processedBy, version string) (CartonSearchResult, error) {
	barcode = strings.TrimSpace(barcode)
	po = strings.TrimSpace(po)
	sku = strings.TrimSpace(sku)
	if barcode == "" && po == "" && sku == "" {
		return CartonSearchResult{}, ErrNoSearchFilter
	}

	cartons, err := u.cartons.FindByFilters(ctx, barcode, po, sku)
	if err != nil {
		return CartonSearchResult{}, err
	}
	if len(cartons) == 0 {
		return CartonSearchResult{}, ErrCartonNotFound
	}

	if len(cartons) == 1 && strings.TrimSpace(processedBy) != "" {
		carton, nextStep, err := u.process(ctx, cartons[0], processedBy, version)
		if err != nil {
			return CartonSearchResult{}, err
		}
		return CartonSearchResult{Cartons: []entities.CartonBox{carton}, NextStep: nextStep}, nil
	}

	return CartonSearchResult{Cartons: cartons}, nil
}

// Process moves a carton into PROCESS by id and returns the validate-item
// next step.
func (u *CartonBoxUseCase) Process(ctx context.Context, id, processedBy, version string) (entities.CartonBox, string, error) {
	id = strings.TrimSpace(id)
	if _, err := uuid.Parse(id); err != nil {
		return entities.CartonBox{}, "", ErrCartonNotFound
	}

	carton, err := u.cartons.GetByID(ctx, id)
	if err != nil {
		return entities.CartonBox{}, "", err
	}
	if carton.ID == "" {
		return entities.CartonBox{}, "", ErrCartonNotFound
	}

	return u.process(ctx, carton, processedBy, version)
}

func (u *CartonBoxUseCase) process(ctx context.Context, carton entities.CartonBox, processedBy, version string) (entities.CartonBox, string, error) {
	nextStep := validateItemPath(version, carton.ID)

	if !carton.Process(processedBy, time.Now().UTC()) {
		// Already processed; processed-by/processed-at stay with the first
		// scanner that picked the carton up.
		return carton, nextStep, nil
	}

	saved, err := u.cartons.Save(ctx, carton)
	if err != nil {
		return entities.CartonBox{}, "", err
	}
	log.Printf("[carton][usecase] carton processed carton_id=%s processed_by=%s", saved.ID, processedBy)
	u.notifier.CartonProcessed(ctx, saved, nextStep)
	return saved, nextStep, nil
}

// ListPurchaseOrders returns the distinct POs of non-validated cartons
// carrying the barcode.
func (u *CartonBoxUseCase) ListPurchaseOrders(ctx context.Context, barcode string) ([]Option, error) {
	barcode = strings.TrimSpace(barcode)
	if barcode == "" {
		return nil, ErrInvalidBarcode
	}

	cartons, err := u.cartons.FindByFilters(ctx, barcode, "", "")
	if err != nil {
		return nil, err
	}

	return distinctOptions(cartons, func(c entities.CartonBox) string {
		if c.PackingList == nil {
			return ""
		}
		return c.PackingList.PurchaseOrderNumber
	}), nil
}

// ListSKUs returns the distinct internal SKUs of non-validated cartons
// matching barcode and PO.
func (u *CartonBoxUseCase) ListSKUs(ctx context.Context, barcode, po string) ([]Option, error) {
	barcode = strings.TrimSpace(barcode)
	po = strings.TrimSpace(po)
	if barcode == "" || po == "" {
		return nil, ErrNoSearchFilter
	}

	cartons, err := u.cartons.FindByFilters(ctx, barcode, po, "")
	if err != nil {
		return nil, err
	}

	return distinctOptions(cartons, func(c entities.CartonBox) string {
		return c.InternalSKU
	}), nil
}

func distinctOptions(cartons []entities.CartonBox, key func(entities.CartonBox) string) []Option {
	seen := make(map[string]struct{}, len(cartons))
	opts := make([]Option, 0, len(cartons))
	for _, c := range cartons {
		if c.ValidationStatus == entities.ValidationStatusValidated {
			continue
		}
		k := key(c)
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		opts = append(opts, Option{ID: k, Name: k})
	}
	return opts
}

func validateItemPath(version, cartonID string) string {
	if strings.TrimSpace(version) == "" {
		version = "v1"
	}
	return fmt.Sprintf("/%s/carton-boxes/%s/validate-item", version, cartonID)
}
