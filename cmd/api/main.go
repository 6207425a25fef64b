package main

import (
	_ "polipay/docs"
	"polipay/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Payment Callback Service API
// @version         1.0
// @description     Receives payment-gateway webhook callbacks and reconciles them against customer balances and QR transactions.

// @contact.name   API Support

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /

func main() {
	routes.Run()
}
