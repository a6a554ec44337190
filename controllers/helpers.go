package controllers

import (
	"errors"
	"fashion-hub/models"
	"fashion-hub/services"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

func parseIDParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid product ID",
		})
		return 0, false
	}
	return id, true
}

// respondError maps service errors onto the JSON error envelope.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrProductNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Success: false,
			Message: "Product not found",
		})
	case errors.Is(err, services.ErrCheckoutUnavailable):
		c.JSON(http.StatusNotImplemented, models.ErrorResponse{
			Success: false,
			Message: services.CheckoutNotice,
		})
	default:
		log.Printf("Cart request failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Internal server error",
		})
	}
}
