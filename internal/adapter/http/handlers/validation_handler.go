package handlers

import (
	"errors"
	"log"
	"net/http"

	request "accuracy_wms/internal/adapter/http/dto/request"
	response "accuracy_wms/internal/adapter/http/dto/response"
	"accuracy_wms/internal/usecase"
	"accuracy_wms/internal/usecase/interfaces"
	"accuracy_wms/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidValidatePayload = pkg.NewDomainErrorSimple("INVALID_VALIDATE_INPUT", "Invalid validate-item payload", http.StatusBadRequest)

// ValidationHandler handles the validate-item route: one scanned barcode
// against one carton.

type ValidationHandler struct {
	usecase usecase.IValidationUseCase
}

func NewValidationHandler(uc usecase.IValidationUseCase) *ValidationHandler {
	return &ValidationHandler{usecase: uc}
}

// ValidateItem attaches the scanned item to the carton in the path when the
// carton's accuracy rule admits it. The validator identity comes from the
// X-User-ID header the auth gateway injects.
func (h *ValidationHandler) ValidateItem(c *gin.Context) {
	cartonBoxID := c.Param("id")
	validatedBy := c.GetHeader("X-User-ID")

	var payload request.ValidateItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidValidatePayload.HTTPStatus, errInvalidValidatePayload.ToHTTPError())
		return
	}

	log.Printf("[validation][handler] validate start carton_id=%s validated_by=%s", cartonBoxID, validatedBy)
	res, err := h.usecase.ValidateCartonItem(c.Request.Context(), cartonBoxID, payload.Barcode, validatedBy)
	if err != nil {
		log.Printf("[validation][handler] validate failed carton_id=%s err=%v", cartonBoxID, err)
		appErr := mapValidationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[validation][handler] validate success carton_id=%s item_id=%s status=%s",
		res.CartonBox.ID, res.Item.ID, res.CartonBox.ValidationStatus)

	c.JSON(http.StatusOK, response.FromValidateResult(res))
}

func mapValidationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCartonBoxID),
		errors.Is(err, usecase.ErrInvalidBarcode),
		errors.Is(err, usecase.ErrInvalidValidatedBy):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCartonNotFound):
		return pkg.NewDomainErrorSimple("CARTON_NOT_FOUND", "Carton box not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCartonAlreadyValidated):
		return pkg.NewDomainErrorSimple("CARTON_ALREADY_VALIDATED", "Carton already fully validated", http.StatusConflict)
	case errors.Is(err, usecase.ErrItemNotFound):
		return pkg.NewDomainErrorSimple("ITEM_NOT_FOUND", "No item matches the scanned barcode", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNoAttributeMatch):
		return pkg.NewDomainErrorSimple("NO_ATTRIBUTE_MATCH", "No item matches the carton attributes", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrItemNumberMismatch):
		return pkg.NewDomainErrorSimple("ITEM_NUMBER_MISMATCH", "Item number does not match the item record", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrAttributeMismatch):
		return pkg.NewDomainErrorSimple("ATTRIBUTE_MISMATCH", "Item attributes do not match the carton rule", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrQuantityExceeded):
		return pkg.NewDomainErrorSimple("QUANTITY_EXCEEDED", "Quantity cap reached for this combination", http.StatusUnprocessableEntity)
	case errors.Is(err, interfaces.ErrCartonVersionConflict):
		return pkg.NewDomainErrorSimple("CONCURRENT_MODIFICATION", "Carton was modified concurrently, rescan to retry", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
