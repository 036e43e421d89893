package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"accuracy_wms/internal/domain/entities"
	"accuracy_wms/internal/usecase/interfaces"
)

var (
	ErrInvalidCartonBoxID     = errors.New("invalid carton box id")
	ErrInvalidBarcode         = errors.New("invalid barcode")
	ErrInvalidValidatedBy     = errors.New("invalid validated_by")
	ErrCartonNotFound         = errors.New("carton box not found")
	ErrCartonAlreadyValidated = errors.New("carton already fully validated")
	ErrItemNotFound           = errors.New("item not found for barcode")
	ErrNoAttributeMatch       = errors.New("no item matches the carton attributes")
	ErrItemNumberMismatch     = errors.New("item number does not match the item record")
)

// maxValidateAttempts bounds the optimistic-lock retry loop. Every attempt
// reloads the carton and re-runs the full check pipeline, so two concurrent
// scans against the same carton serialize instead of both committing.
const maxValidateAttempts = 3

// ValidateResult is returned on a successful attach: the carton as persisted
// plus the matched item's public data.
type ValidateResult struct {
	CartonBox entities.CartonBox
	Item      entities.Item
}

// IValidationUseCase runs the accuracy validation pipeline for one scan:
// parse the barcode, match a catalogued item, apply the carton's accuracy
// rule and attach the item, sealing the carton when it completes.

type IValidationUseCase interface {
	ValidateCartonItem(ctx context.Context, cartonBoxID, barcode, validatedBy string) (ValidateResult, error)
}

type ValidationUseCase struct {
	cartons  interfaces.ICartonBoxRepository
	items    interfaces.IItemRepository
	notifier interfaces.ICartonNotifier
}

var _ IValidationUseCase = (*ValidationUseCase)(nil)

func NewValidationUseCase(cartons interfaces.ICartonBoxRepository, items interfaces.IItemRepository, notifier interfaces.ICartonNotifier) *ValidationUseCase {
	return &ValidationUseCase{cartons: cartons, items: items, notifier: notifier}
}

func (u *ValidationUseCase) ValidateCartonItem(ctx context.Context, cartonBoxID, barcode, validatedBy string) (ValidateResult, error) {
	cartonBoxID = strings.TrimSpace(cartonBoxID)
	if cartonBoxID == "" {
		return ValidateResult{}, ErrInvalidCartonBoxID
	}
	barcode = strings.TrimSpace(barcode)
	if barcode == "" {
		return ValidateResult{}, ErrInvalidBarcode
	}
	validatedBy = strings.TrimSpace(validatedBy)
	if validatedBy == "" {
		return ValidateResult{}, ErrInvalidValidatedBy
	}

	var lastErr error
	for attempt := 1; attempt <= maxValidateAttempts; attempt++ {
		res, err := u.validateOnce(ctx, cartonBoxID, barcode, validatedBy)
		if errors.Is(err, interfaces.ErrCartonVersionConflict) {
			log.Printf("[validation][usecase] version conflict carton_id=%s attempt=%d; retrying", cartonBoxID, attempt)
			lastErr = err
			continue
		}
		return res, err
	}
	return ValidateResult{}, lastErr
}

// validateOnce runs one read-check-write cycle. Everything before the
// attach is side-effect-free; the conditional carton save is the
// linearization point for the attached-item count.
func (u *ValidationUseCase) validateOnce(ctx context.Context, cartonBoxID, barcode, validatedBy string) (ValidateResult, error) {
	carton, err := u.cartons.GetByID(ctx, cartonBoxID)
	if err != nil {
		return ValidateResult{}, err
	}
	if carton.ID == "" {
		return ValidateResult{}, ErrCartonNotFound
	}
	if carton.ValidationStatus == entities.ValidationStatusValidated {
		return ValidateResult{}, ErrCartonAlreadyValidated
	}

	parsed := ParseBarcode(barcode)
	lpn := parsed.LPN
	if lpn == "" {
		lpn = barcode
	}

	candidates, err := u.items.FindByLPN(ctx, lpn)
	if err != nil {
		return ValidateResult{}, err
	}
	if len(candidates) == 0 {
		return ValidateResult{}, ErrItemNotFound
	}

	rule, fellBack := carton.Rule()
	if fellBack {
		log.Printf("[validation][usecase] unknown accuracy rule %q carton_id=%s; falling back to SOLID", carton.PackingList.Rule, carton.ID)
	}
	strategy := StrategyFor(rule)

	item, ok := matchItem(candidates, strategy.ExpectedCombinations(&carton), rule)
	if !ok {
		return ValidateResult{}, ErrNoAttributeMatch
	}
	if !itemNumberMatches(item, parsed.ItemNumber) {
		return ValidateResult{}, ErrItemNumberMismatch
	}
	if err := strategy.Validate(&carton, item); err != nil {
		return ValidateResult{}, err
	}

	// Attach first, then evaluate completion; the validated notification
	// depends on this ordering.
	carton.AddItem(item)
	validatedNow := false
	if carton.IsFull() {
		validatedNow = carton.MarkValidated()
		carton.Seal()
	}

	saved, err := u.cartons.Save(ctx, carton)
	if err != nil {
		return ValidateResult{}, err
	}

	now := time.Now().UTC()
	if err := u.items.SaveValidationLink(ctx, item, saved.ID, validatedBy, now); err != nil {
		log.Printf("[validation][usecase] validation link save failed carton_id=%s item_id=%s err=%v", saved.ID, item.ID, err)
		return ValidateResult{}, err
	}

	if validatedNow {
		log.Printf("[validation][usecase] carton validated carton_id=%s items=%d", saved.ID, len(saved.Items))
		u.notifier.CartonValidated(ctx, saved)
	}

	return ValidateResult{CartonBox: saved, Item: item}, nil
}
