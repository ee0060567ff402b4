package api

import (
	authUsecase "storefront-backend/internal/auth/usecase"
	productUsecase "storefront-backend/internal/product/usecase"
	"storefront-backend/pkg/config"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	authUsecase    authUsecase.AuthUsecase
	productUsecase productUsecase.ProductUsecase
	config         *config.Config
}

func NewHandler(authUc authUsecase.AuthUsecase, productUc productUsecase.ProductUsecase, cfg *config.Config) *Handler {
	return &Handler{
		authUsecase:    authUc,
		productUsecase: productUc,
		config:         cfg,
	}
}

func (h *Handler) Start(addr string) error {
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	SetupRoutes(r, h.authUsecase, h.productUsecase)

	return r.Run(addr)
}
