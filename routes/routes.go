package routes

import (
	"fashion-hub/config"
	"fashion-hub/controllers"
	"fashion-hub/middleware"
	"fashion-hub/repositories"
	"fashion-hub/services"
	"fashion-hub/templates"
	"html/template"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Dependencies struct {
	Config      *config.Config
	SessionRepo repositories.SessionRepository
	Metrics     *middleware.Metrics
}

func SetupRoutes(router *gin.Engine, deps Dependencies) {
	cfg := deps.Config

	productRepo := repositories.NewProductRepository()
	productSvc := services.NewProductService(productRepo)
	cartSvc := services.NewCartService(productRepo, deps.SessionRepo)

	productCtrl := &controllers.ProductController{ProductService: productSvc}
	cartCtrl := &controllers.CartController{CartService: cartSvc}
	storeCtrl := &controllers.StorefrontController{ProductService: productSvc, CartService: cartSvc}

	router.SetHTMLTemplate(template.Must(templates.Load()))

	if deps.Metrics != nil {
		router.Use(deps.Metrics.Middleware())
		router.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.GET("/api/categories", productCtrl.GetAllCategories)
	router.GET("/api/products", productCtrl.GetAllProducts)
	router.GET("/api/products/:id", productCtrl.GetProductByID)

	session := router.Group("/")
	session.Use(middleware.SessionMiddleware(middleware.SessionOptions{
		CookieName: cfg.SessionCookie,
		Secret:     cfg.SessionSecret,
		TTL:        cfg.SessionTTL,
		Secure:     cfg.SecureCookie,
	}))
	{
		session.GET("/", storeCtrl.Index)
		session.POST("/cart/open", storeCtrl.OpenCart)
		session.POST("/cart/close", storeCtrl.CloseCart)
		session.POST("/cart/items", storeCtrl.AddToCart)
		session.POST("/cart/items/:id/quantity", storeCtrl.UpdateQuantity)
		session.POST("/cart/items/:id/remove", storeCtrl.RemoveFromCart)
		session.POST("/checkout", storeCtrl.Checkout)

		session.GET("/api/cart", cartCtrl.GetCart)
		session.POST("/api/cart/items", cartCtrl.AddToCart)
		session.PATCH("/api/cart/items/:id", cartCtrl.UpdateQuantity)
		session.DELETE("/api/cart/items/:id", cartCtrl.RemoveFromCart)
		session.POST("/api/cart/open", cartCtrl.OpenCart)
		session.POST("/api/cart/close", cartCtrl.CloseCart)
		session.POST("/api/checkout", cartCtrl.Checkout)
	}
}

// NewSessionRepository prefers Redis when configured and reachable.
func NewSessionRepository(cfg *config.Config) repositories.SessionRepository {
	if client := config.ConnectRedis(cfg); client != nil {
		return repositories.NewRedisSessionRepository(client, cfg.SessionTTL)
	}
	return repositories.NewMemorySessionRepository(cfg.SessionTTL)
}
