package routes

import (
	"context"
	"log"
	"os"
	"strconv"

	_ "accuracy_wms/docs" // This will be auto-generated
	"accuracy_wms/internal/adapter/http/handlers"
	"accuracy_wms/internal/adapter/http/middleware"
	repository2 "accuracy_wms/internal/adapter/persistence/repository"
	"accuracy_wms/internal/infrastructure/broadcast"
	"accuracy_wms/internal/infrastructure/database"
	"accuracy_wms/internal/usecase"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	awsCfg, err := database.NewAWSConfigFromEnv(context.Background())
	if err != nil {
		log.Fatalf("failed to create aws config: %v", err)
	}
	ddb := dynamodb.NewFromConfig(awsCfg)

	itemRepo := repository2.NewItemDynamoRepository(ddb)
	cartonRepo := repository2.NewCartonBoxDynamoRepository(ddb, itemRepo)

	notifier := broadcast.NewSNSCartonNotifier(
		sns.NewFromConfig(awsCfg),
		os.Getenv("CARTON_EVENTS_TOPIC_ARN"),
	)

	validationUseCase := usecase.NewValidationUseCase(cartonRepo, itemRepo, notifier)
	cartonUseCase := usecase.NewCartonBoxUseCase(cartonRepo, notifier)

	validationHandler := handlers.NewValidationHandler(validationUseCase)
	cartonHandler := handlers.NewCartonBoxHandler(cartonUseCase)

	v1 := router.Group("/v1")
	v1.Use(middleware.TenantIdentifier())
	addPingRoutes(v1)
	addCartonBoxRoutes(v1, cartonHandler, validationHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
