package controllers

import (
	"fashion-hub/middleware"
	"fashion-hub/models"
	"fashion-hub/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

type CartController struct {
	CartService *services.CartService
}

func (ctrl *CartController) respondCart(c *gin.Context, message string, view models.CartView, err error) {
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: message,
		Data:    view,
	})
}

// @Summary Get cart
// @Description Get the current session's cart with derived totals
// @Tags Cart
// @Produce json
// @Success 200 {object} models.Response
// @Router /api/cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	view, err := ctrl.CartService.GetCart(c.Request.Context(), middleware.SessionID(c))
	ctrl.respondCart(c, "Cart retrieved", view, err)
}

// @Summary Add to cart
// @Description Add one unit of a product; an existing line is incremented in place
// @Tags Cart
// @Accept json
// @Produce json
// @Param body body models.AddToCartRequest true "Product to add"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/cart/items [post]
func (ctrl *CartController) AddToCart(c *gin.Context) {
	var req models.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request",
			Error:   err.Error(),
		})
		return
	}

	view, err := ctrl.CartService.AddToCart(c.Request.Context(), middleware.SessionID(c), req.ProductID)
	ctrl.respondCart(c, "Product added to cart", view, err)
}

// @Summary Update quantity
// @Description Shift a line's quantity by delta; lines reaching zero are removed
// @Tags Cart
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param body body models.UpdateQuantityRequest true "Quantity delta"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /api/cart/items/{id} [patch]
func (ctrl *CartController) UpdateQuantity(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req models.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request",
			Error:   err.Error(),
		})
		return
	}

	view, err := ctrl.CartService.UpdateQuantity(c.Request.Context(), middleware.SessionID(c), id, *req.Delta)
	ctrl.respondCart(c, "Cart updated", view, err)
}

// @Summary Remove from cart
// @Description Remove a product line from the cart
// @Tags Cart
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /api/cart/items/{id} [delete]
func (ctrl *CartController) RemoveFromCart(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	view, err := ctrl.CartService.RemoveFromCart(c.Request.Context(), middleware.SessionID(c), id)
	ctrl.respondCart(c, "Product removed from cart", view, err)
}

// @Summary Open cart
// @Description Show the cart sidebar
// @Tags Cart
// @Produce json
// @Success 200 {object} models.Response
// @Router /api/cart/open [post]
func (ctrl *CartController) OpenCart(c *gin.Context) {
	view, err := ctrl.CartService.OpenCart(c.Request.Context(), middleware.SessionID(c))
	ctrl.respondCart(c, "Cart opened", view, err)
}

// @Summary Close cart
// @Description Hide the cart sidebar
// @Tags Cart
// @Produce json
// @Success 200 {object} models.Response
// @Router /api/cart/close [post]
func (ctrl *CartController) CloseCart(c *gin.Context) {
	view, err := ctrl.CartService.CloseCart(c.Request.Context(), middleware.SessionID(c))
	ctrl.respondCart(c, "Cart closed", view, err)
}

// @Summary Checkout
// @Description Placeholder, always reports that checkout is not available
// @Tags Cart
// @Produce json
// @Failure 501 {object} models.ErrorResponse
// @Router /api/checkout [post]
func (ctrl *CartController) Checkout(c *gin.Context) {
	respondError(c, ctrl.CartService.Checkout(c.Request.Context(), middleware.SessionID(c)))
}
