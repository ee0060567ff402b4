package api

import (
	"net/http"

	"storefront-backend/internal/auth/delivery"
	authUsecase "storefront-backend/internal/auth/usecase"
	productDelivery "storefront-backend/internal/product/delivery"
	productUsecase "storefront-backend/internal/product/usecase"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, authUc authUsecase.AuthUsecase, productUc productUsecase.ProductUsecase) {
	authHandler := delivery.NewAuthHandler(authUc)
	productHandler := productDelivery.NewProductHandler(productUc)

	// Health check (no auth required)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Auth routes
	r.POST("/signup", authHandler.Signup)
	r.POST("/login", authHandler.Login)
	r.GET("/me", delivery.AuthMiddleware(authUc), authHandler.Me)

	// Product routes (protected)
	products := r.Group("/products")
	products.Use(delivery.AuthMiddleware(authUc))
	{
		products.POST("", productHandler.AddProduct)
		products.GET("", productHandler.GetProducts)
		products.DELETE("/:id", productHandler.DeleteProduct)
	}
}
