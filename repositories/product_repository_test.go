package repositories

import (
	"errors"
	"fashion-hub/models"
	"testing"
)

func TestDefaultCatalog(t *testing.T) {
	repo := NewProductRepository()
	products := repo.GetAllProducts()

	if len(products) != 12 {
		t.Fatalf("expected 12 products, got %d", len(products))
	}

	seen := map[int]bool{}
	for i, p := range products {
		if p.ID != i+1 {
			t.Fatalf("expected catalog order by id, got %d at %d", p.ID, i)
		}
		if seen[p.ID] {
			t.Fatalf("duplicate id %d", p.ID)
		}
		seen[p.ID] = true
		if p.Price.IsNegative() {
			t.Fatalf("negative price for %s", p.Name)
		}
	}
}

func TestGetAllProductsReturnsCopy(t *testing.T) {
	repo := NewProductRepository()
	products := repo.GetAllProducts()
	products[0].Name = "mutated"

	again, _ := repo.GetProductByID(products[0].ID)
	if again.Name != "Classic Cotton T-Shirt" {
		t.Fatalf("catalog mutated through returned slice: %q", again.Name)
	}
}

func TestGetProductByID(t *testing.T) {
	repo := NewProductRepository()

	p, err := repo.GetProductByID(3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Name != "Leather Jacket" || p.Price.StringFixed(2) != "199.99" {
		t.Fatalf("unexpected product: %+v", p)
	}

	for _, id := range []int{0, -1, 13} {
		if _, err := repo.GetProductByID(id); !errors.Is(err, ErrProductNotFound) {
			t.Fatalf("id %d: expected ErrProductNotFound, got %v", id, err)
		}
	}
}

func TestGetAllCategories(t *testing.T) {
	got := NewProductRepository().GetAllCategories()
	want := []string{"Men", "Women", "Unisex"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestDuplicateIDsPanic(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on duplicate id")
		}
	}()
	NewProductRepositoryFrom([]models.Product{{ID: 1}, {ID: 1}})
}
