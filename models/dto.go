package models

type AddToCartRequest struct {
	ProductID int `json:"product_id" form:"product_id" binding:"required,gt=0"`
}

type UpdateQuantityRequest struct {
	Delta *int `json:"delta" form:"delta" binding:"required"`
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}
