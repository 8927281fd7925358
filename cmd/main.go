// cmd/main.go
package main

import (
	"go-shop-api/app"
	_ "go-shop-api/docs"
)

// @title           Go-Shop API
// @version         1.0
// @description     Token-based authentication and session management for the shop platform.

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	app.Run()
}
