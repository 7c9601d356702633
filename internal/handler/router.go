package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Shubham126710/products-api/internal/middleware"
	"github.com/Shubham126710/products-api/internal/utils"
)

// Handlers groups all HTTP handlers used by the server.
type Handlers struct {
	Health  *HealthHandler
	Product *ProductHandler
}

// NewRouter assembles the gin engine: middleware chain, API routes, the
// root endpoint directory and the catch-all for unknown routes.
func NewRouter(env string, handlers *Handlers) *gin.Engine {
	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(middleware.RecoveryMiddleware(env))
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.LoggingMiddleware())

	router.GET("/", getIndex)
	router.GET("/health", handlers.Health.GetHealth)

	// Product routes
	products := router.Group("/api/products")
	{
		products.POST("", handlers.Product.CreateProduct)
		products.GET("", handlers.Product.ListProducts)
		products.DELETE("", handlers.Product.DeleteAllProducts)
		products.GET("/category/:category", handlers.Product.GetProductsByCategory)
		products.GET("/:id", handlers.Product.GetProduct)
		products.PUT("/:id", handlers.Product.UpdateProduct)
		products.DELETE("/:id", handlers.Product.DeleteProduct)
	}

	router.NoRoute(func(c *gin.Context) {
		utils.Error(c, http.StatusNotFound, fmt.Sprintf("Route %s not found", c.Request.URL.Path))
	})

	return router
}

// getIndex handles GET / with a directory of the available endpoints.
func getIndex(c *gin.Context) {
	utils.Success(c, 200, "Products API", gin.H{
		"endpoints": gin.H{
			"health":             "GET /health",
			"createProduct":      "POST /api/products",
			"listProducts":       "GET /api/products",
			"getProduct":         "GET /api/products/:id",
			"updateProduct":      "PUT /api/products/:id",
			"deleteProduct":      "DELETE /api/products/:id",
			"deleteAllProducts":  "DELETE /api/products",
			"productsByCategory": "GET /api/products/category/:category",
		},
	})
}
