package controllers

import (
	"errors"
	"fashion-hub/middleware"
	"fashion-hub/models"
	"fashion-hub/services"
	"fashion-hub/templates"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	pageTitle       = "Fashion Hub - Premium Clothing Store"
	pageDescription = "Discover the latest trends in fashion. Shop premium clothing for men and women."
)

// StorefrontController serves the HTML page. Every form posts back and
// redirects to "/" so a reload never repeats a cart action.
type StorefrontController struct {
	ProductService *services.ProductService
	CartService    *services.CartService
}

type storefrontPage struct {
	Title       string
	Description string
	Products    []models.Product
	Categories  []models.CategoryCard
	Cart        models.CartView
	Notice      string
}

func (ctrl *StorefrontController) Index(c *gin.Context) {
	view, err := ctrl.CartService.GetCart(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		log.Printf("Failed to load cart: %v", err)
		c.String(http.StatusInternalServerError, "Something went wrong")
		return
	}

	page := storefrontPage{
		Title:       pageTitle,
		Description: pageDescription,
		Products:    ctrl.ProductService.GetAllProducts(),
		Categories:  ctrl.ProductService.GetCategoryCards(),
		Cart:        view,
	}
	if c.Query("notice") == "checkout" {
		page.Notice = services.CheckoutNotice
	}

	c.HTML(http.StatusOK, templates.Index, page)
}

func (ctrl *StorefrontController) OpenCart(c *gin.Context) {
	_, err := ctrl.CartService.OpenCart(c.Request.Context(), middleware.SessionID(c))
	ctrl.redirectHome(c, err)
}

func (ctrl *StorefrontController) CloseCart(c *gin.Context) {
	_, err := ctrl.CartService.CloseCart(c.Request.Context(), middleware.SessionID(c))
	ctrl.redirectHome(c, err)
}

func (ctrl *StorefrontController) AddToCart(c *gin.Context) {
	var req models.AddToCartRequest
	if err := c.ShouldBind(&req); err != nil {
		c.String(http.StatusBadRequest, "Invalid product")
		return
	}

	_, err := ctrl.CartService.AddToCart(c.Request.Context(), middleware.SessionID(c), req.ProductID)
	ctrl.redirectHome(c, err)
}

func (ctrl *StorefrontController) UpdateQuantity(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.String(http.StatusBadRequest, "Invalid product")
		return
	}

	var req models.UpdateQuantityRequest
	if err := c.ShouldBind(&req); err != nil {
		c.String(http.StatusBadRequest, "Invalid quantity")
		return
	}

	_, err = ctrl.CartService.UpdateQuantity(c.Request.Context(), middleware.SessionID(c), id, *req.Delta)
	ctrl.redirectHome(c, err)
}

func (ctrl *StorefrontController) RemoveFromCart(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.String(http.StatusBadRequest, "Invalid product")
		return
	}

	_, err = ctrl.CartService.RemoveFromCart(c.Request.Context(), middleware.SessionID(c), id)
	ctrl.redirectHome(c, err)
}

func (ctrl *StorefrontController) Checkout(c *gin.Context) {
	if err := ctrl.CartService.Checkout(c.Request.Context(), middleware.SessionID(c)); err != nil {
		c.Redirect(http.StatusSeeOther, "/?notice=checkout")
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

func (ctrl *StorefrontController) redirectHome(c *gin.Context, err error) {
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			c.String(http.StatusNotFound, "Product not found")
			return
		}
		log.Printf("Storefront action failed: %v", err)
		c.String(http.StatusInternalServerError, "Something went wrong")
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}
