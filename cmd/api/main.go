package main

import (
	_ "accuracy_wms/docs"
	"accuracy_wms/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Carton Accuracy API
// @version         1.0
// @description     Carton-item accuracy validation service (SOLID/RATIO/MIX rules) backed by DynamoDB.

// @contact.name   API Support

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
