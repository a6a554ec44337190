package services

import (
	"fashion-hub/models"
	"fashion-hub/repositories"
)

type ProductService struct {
	productRepo *repositories.ProductRepository
}

func NewProductService(productRepo *repositories.ProductRepository) *ProductService {
	return &ProductService{
		productRepo: productRepo,
	}
}

func (s *ProductService) GetAllProducts() []models.Product {
	return s.productRepo.GetAllProducts()
}

func (s *ProductService) GetProductByID(id int) (models.Product, error) {
	return s.productRepo.GetProductByID(id)
}

func (s *ProductService) GetAllCategories() []string {
	return s.productRepo.GetAllCategories()
}

func (s *ProductService) GetCategoryCards() []models.CategoryCard {
	return s.productRepo.GetCategoryCards()
}
