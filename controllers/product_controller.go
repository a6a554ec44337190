package controllers

import (
	"fashion-hub/models"
	"fashion-hub/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ProductController struct {
	ProductService *services.ProductService
}

// @Summary Get all categories
// @Description Get list of distinct product categories
// @Tags Catalog
// @Produce json
// @Success 200 {object} models.Response
// @Router /api/categories [get]
func (ctrl *ProductController) GetAllCategories(c *gin.Context) {
	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Categories retrieved",
		Data:    ctrl.ProductService.GetAllCategories(),
	})
}

// @Summary Get all products
// @Description Get the full product catalog
// @Tags Catalog
// @Produce json
// @Success 200 {object} models.Response
// @Router /api/products [get]
func (ctrl *ProductController) GetAllProducts(c *gin.Context) {
	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Products retrieved",
		Data:    ctrl.ProductService.GetAllProducts(),
	})
}

// @Summary Get product by ID
// @Description Get product details
// @Tags Catalog
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/products/{id} [get]
func (ctrl *ProductController) GetProductByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	product, err := ctrl.ProductService.GetProductByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Product retrieved",
		Data:    product,
	})
}
