// File: app/app.go
package app

import (
	"context"
	"go-shop-api/config"
	"go-shop-api/db"
	"go-shop-api/handler"
	"go-shop-api/logger"
	"go-shop-api/repository"
	"go-shop-api/router"
	"go-shop-api/service"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func Run() {
	config.LoadConfig(".")
	logger.Init()
	logger.Log.Info("Logger initialized")
	logger.Log.Info("Configuration loaded successfully")

	database, err := db.Connect()
	if err != nil {
		logger.Log.Fatalf("Error connecting to the database: %v", err)
	}
	defer database.Close()

	redisClient, err := db.ConnectRedis()
	if err != nil {
		logger.Log.Fatalf("Error connecting to Redis: %v", err)
	}
	defer redisClient.Close()

	// --- Wiring All Layers Together ---
	// Repositories, services and handlers are constructed here and
	// injected explicitly; nothing is wired by reflection.

	jwtCfg := config.AppConfig.JWT
	tokenService := service.NewTokenService(jwtCfg.SecretKey, jwtCfg.AccessTTL, jwtCfg.RefreshTTL)

	userRepo := repository.NewUserRepository(database)
	sessionRepo := repository.NewSessionRepository(database)
	authService := service.NewAuthService(userRepo, sessionRepo, tokenService, jwtCfg.RefreshTTL)
	authHandler := handler.NewAuthHandler(authService)

	productRepo := repository.NewProductRepository(database)
	productService := service.NewProductService(productRepo, redisClient)
	productHandler := handler.NewProductHandler(productService)

	classifier := handler.NewRouteClassifier(config.AppConfig.Auth.PublicPaths)

	r := router.NewRouter(authHandler, productHandler, classifier, tokenService)

	// --- Start the Server with Graceful Shutdown ---
	port := config.AppConfig.Server.Port
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		logger.Log.Infof("Server starting on port :%s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Warn("Shutdown signal received. Starting graceful shutdown...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Log.Info("Server exited properly")
}
