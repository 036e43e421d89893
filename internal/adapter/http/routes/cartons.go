package routes

import (
	"accuracy_wms/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCartonBoxes = "/carton-boxes"
)

func addCartonBoxRoutes(rg *gin.RouterGroup, cartonHandler *handlers.CartonBoxHandler, validationHandler *handlers.ValidationHandler) {
	cartons := rg.Group(PathCartonBoxes)
	{
		cartons.GET("", cartonHandler.Search)
		cartons.GET("/po", cartonHandler.GetPOs)
		cartons.GET("/sku", cartonHandler.GetSKUs)
		cartons.POST("/:id/process", cartonHandler.Process)
		cartons.POST("/:id/validate-item", validationHandler.ValidateItem)
	}
}
