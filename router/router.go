package router

import (
	"go-shop-api/handler"
	"go-shop-api/service"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger/v2"
)

// NewRouter assembles the route table and wraps it in the
// authentication gate. The gate is the outermost middleware, so no
// handler runs before it for a protected path.
func NewRouter(authHandler *handler.AuthHandler, productHandler *handler.ProductHandler, classifier *handler.RouteClassifier, tokens service.ITokenService) http.Handler {
	mux := http.NewServeMux()

	// Public routes (admitted by the route classifier).
	mux.Handle("/api/users/register", handler.ErrorHandlingMiddleware(authHandler.Register))
	mux.Handle("/api/users/login", handler.ErrorHandlingMiddleware(authHandler.Login))
	mux.Handle("/api/users/refresh", handler.ErrorHandlingMiddleware(authHandler.Refresh))
	mux.Handle("/api/products", handler.ErrorHandlingMiddleware(productHandler.ListProducts))
	mux.HandleFunc("/api/users/ping", handler.Ping)
	mux.HandleFunc("/health", handler.Ping)
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	// Protected routes; the gate injects the caller identity first.
	mux.Handle("/api/users/logout", handler.ErrorHandlingMiddleware(authHandler.Logout))
	mux.Handle("/api/users/profile", handler.ErrorHandlingMiddleware(authHandler.Profile))

	return handler.AuthMiddleware(classifier, tokens)(mux)
}
