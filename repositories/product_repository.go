package repositories

import (
	"errors"
	"fashion-hub/models"

	"github.com/shopspring/decimal"
)

var ErrProductNotFound = errors.New("product not found")

type ProductRepository struct {
	products []models.Product
	byID     map[int]int
}

// NewProductRepository builds the fixed storefront catalog.
func NewProductRepository() *ProductRepository {
	return NewProductRepositoryFrom(defaultCatalog())
}

func NewProductRepositoryFrom(products []models.Product) *ProductRepository {
	r := &ProductRepository{
		products: make([]models.Product, 0, len(products)),
		byID:     make(map[int]int, len(products)),
	}
	for _, p := range products {
		if _, dup := r.byID[p.ID]; dup {
			panic("duplicate product id in catalog")
		}
		r.byID[p.ID] = len(r.products)
		r.products = append(r.products, p)
	}
	return r
}

func (r *ProductRepository) GetAllProducts() []models.Product {
	products := make([]models.Product, len(r.products))
	copy(products, r.products)
	return products
}

func (r *ProductRepository) GetProductByID(id int) (models.Product, error) {
	i, ok := r.byID[id]
	if !ok {
		return models.Product{}, ErrProductNotFound
	}
	return r.products[i], nil
}

// GetAllCategories lists distinct category tags in first-seen order.
func (r *ProductRepository) GetAllCategories() []string {
	seen := map[string]bool{}
	categories := []string{}
	for _, p := range r.products {
		if !seen[p.Category] {
			seen[p.Category] = true
			categories = append(categories, p.Category)
		}
	}
	return categories
}

func (r *ProductRepository) GetCategoryCards() []models.CategoryCard {
	return []models.CategoryCard{
		{Icon: "👨", Title: "Men's Wear", Description: "Contemporary styles for him"},
		{Icon: "👩", Title: "Women's Wear", Description: "Elegant fashion for her"},
		{Icon: "✨", Title: "New Arrivals", Description: "Latest trends & styles"},
		{Icon: "🏷️", Title: "Sale", Description: "Up to 50% off"},
	}
}

func defaultCatalog() []models.Product {
	price := decimal.RequireFromString
	return []models.Product{
		{ID: 1, Name: "Classic Cotton T-Shirt", Category: "Men", Price: price("29.99"), Icon: "👕"},
		{ID: 2, Name: "Slim Fit Jeans", Category: "Men", Price: price("79.99"), Icon: "👖"},
		{ID: 3, Name: "Leather Jacket", Category: "Men", Price: price("199.99"), Icon: "🧥"},
		{ID: 4, Name: "Summer Dress", Category: "Women", Price: price("89.99"), Icon: "👗"},
		{ID: 5, Name: "Elegant Blouse", Category: "Women", Price: price("59.99"), Icon: "👚"},
		{ID: 6, Name: "Denim Skirt", Category: "Women", Price: price("49.99"), Icon: "🩱"},
		{ID: 7, Name: "Wool Sweater", Category: "Men", Price: price("69.99"), Icon: "🧶"},
		{ID: 8, Name: "Sports Hoodie", Category: "Unisex", Price: price("54.99"), Icon: "🎽"},
		{ID: 9, Name: "Casual Sneakers", Category: "Unisex", Price: price("89.99"), Icon: "👟"},
		{ID: 10, Name: "Winter Coat", Category: "Women", Price: price("179.99"), Icon: "🧥"},
		{ID: 11, Name: "Formal Shirt", Category: "Men", Price: price("64.99"), Icon: "👔"},
		{ID: 12, Name: "Yoga Pants", Category: "Women", Price: price("44.99"), Icon: "🩳"},
	}
}
