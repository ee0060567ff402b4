package delivery

import (
	"net/http"

	authDelivery "storefront-backend/internal/auth/delivery"
	"storefront-backend/internal/product/domain"
	"storefront-backend/internal/product/usecase"

	"github.com/gin-gonic/gin"
)

// ProductHandler handles product-related HTTP requests
type ProductHandler struct {
	productUsecase usecase.ProductUsecase
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(productUsecase usecase.ProductUsecase) *ProductHandler {
	return &ProductHandler{
		productUsecase: productUsecase,
	}
}

// AddProductRequest represents the request body for adding a product
type AddProductRequest struct {
	Name  string  `json:"name" binding:"required"`
	Price float64 `json:"price"`
}

// AddProduct creates a product owned by the authenticated user
// POST /products
func (h *ProductHandler) AddProduct(c *gin.Context) {
	userID := c.GetString(authDelivery.ContextUserIDKey)

	var req AddProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := h.productUsecase.AddProduct(userID, req.Name, req.Price); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product added"})
}

// GetProducts lists the authenticated user's products
// GET /products
func (h *ProductHandler) GetProducts(c *gin.Context) {
	userID := c.GetString(authDelivery.ContextUserIDKey)

	products, err := h.productUsecase.GetUserProducts(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	// An empty list serializes as [], never null
	if products == nil {
		products = []*domain.Product{}
	}

	c.JSON(http.StatusOK, products)
}

// DeleteProduct removes one of the authenticated user's products.
// Unknown ids and other users' products are a successful no-op.
// DELETE /products/:id
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	userID := c.GetString(authDelivery.ContextUserIDKey)
	productID := c.Param("id")

	if err := h.productUsecase.DeleteProduct(productID, userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
}
