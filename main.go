package main

import (
	"context"
	"errors"
	"fashion-hub/config"
	_ "fashion-hub/docs"
	"fashion-hub/middleware"
	"fashion-hub/routes"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
)

// @title Fashion Hub API
// @version 1.0
// @description Catalog and session cart API for the Fashion Hub storefront.
// @host localhost:8082
// @BasePath /
func main() {

	config.LoadConfig()

	if config.AppConfig.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	router := gin.Default()
	router.Use(middleware.CORSMiddleware(config.AppConfig.OriginURL))
	routes.SetupRoutes(router, routes.Dependencies{
		Config:      config.AppConfig,
		SessionRepo: routes.NewSessionRepository(config.AppConfig),
		Metrics:     middleware.NewMetrics(),
	})

	srv := &http.Server{
		Addr:    ":" + config.AppConfig.Port,
		Handler: router,
	}

	log.Printf("Server starting on port %s", srv.Addr)
	log.Printf("Environment: %s", config.AppConfig.AppEnv)
	log.Printf("Swagger UI: http://localhost:%s/swagger/index.html", config.AppConfig.Port)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	log.Println("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown failed: %v", err)
		os.Exit(1)
	}
}
