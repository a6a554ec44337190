package api

import (
	"fashion-hub/config"
	"fashion-hub/middleware"
	"fashion-hub/routes"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
)

var (
	router *gin.Engine
	once   sync.Once
)

func initApp() {
	once.Do(func() {
		gin.SetMode(gin.ReleaseMode)

		cfg := config.FromEnv()

		router = gin.New()
		router.Use(gin.Recovery())
		router.Use(middleware.CORSMiddleware(cfg.OriginURL))

		routes.SetupRoutes(router, routes.Dependencies{
			Config:      cfg,
			SessionRepo: routes.NewSessionRepository(cfg),
			Metrics:     middleware.NewMetrics(),
		})
	})
}

// Handler is the entry point for serverless hosts.
func Handler(w http.ResponseWriter, r *http.Request) {
	initApp()
	router.ServeHTTP(w, r)
}
