package handlers

import (
	"errors"
	"net/http"

	response "accuracy_wms/internal/adapter/http/dto/response"
	"accuracy_wms/internal/usecase"
	"accuracy_wms/pkg"

	"github.com/gin-gonic/gin"
)

// CartonBoxHandler handles carton lookup and processing requests: the
// scanner flow that precedes item validation.

type CartonBoxHandler struct {
	usecase usecase.ICartonBoxUseCase
}

func NewCartonBoxHandler(uc usecase.ICartonBoxUseCase) *CartonBoxHandler {
	return &CartonBoxHandler{usecase: uc}
}

// Search finds cartons by barcode, po and/or sku query parameters. A unique
// hit is auto-processed for the requesting user and carries a next_step URL.
func (h *CartonBoxHandler) Search(c *gin.Context) {
	res, err := h.usecase.Search(
		c.Request.Context(),
		c.Query("barcode"),
		c.Query("po"),
		c.Query("sku"),
		c.GetHeader("X-User-ID"),
		apiVersion(c),
	)
	if err != nil {
		appErr := mapCartonBoxError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	cartons := make([]response.CartonBoxResponse, 0, len(res.Cartons))
	for _, carton := range res.Cartons {
		cartons = append(cartons, response.FromCartonBox(carton, res.NextStep))
	}
	c.JSON(http.StatusOK, cartons)
}

// Process moves the carton in the path into PROCESS.
func (h *CartonBoxHandler) Process(c *gin.Context) {
	carton, nextStep, err := h.usecase.Process(c.Request.Context(), c.Param("id"), c.GetHeader("X-User-ID"), apiVersion(c))
	if err != nil {
		appErr := mapCartonBoxError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCartonBox(carton, nextStep))
}

// GetPOs lists the purchase orders of non-validated cartons with a barcode.
func (h *CartonBoxHandler) GetPOs(c *gin.Context) {
	opts, err := h.usecase.ListPurchaseOrders(c.Request.Context(), c.Query("barcode"))
	if err != nil {
		appErr := mapCartonBoxError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, opts)
}

// GetSKUs lists the internal SKUs of non-validated cartons matching a
// barcode and purchase order.
func (h *CartonBoxHandler) GetSKUs(c *gin.Context) {
	opts, err := h.usecase.ListSKUs(c.Request.Context(), c.Query("barcode"), c.Query("po"))
	if err != nil {
		appErr := mapCartonBoxError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, opts)
}

func mapCartonBoxError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrNoSearchFilter), errors.Is(err, usecase.ErrInvalidBarcode):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCartonNotFound):
		return pkg.NewDomainErrorSimple("CARTON_NOT_FOUND", "Carton not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func apiVersion(c *gin.Context) string {
	if v, ok := c.Get("api_version"); ok {
		if s, ok := v.(string); ok && s != "" {
			return s
		}
	}
	return "v1"
}
