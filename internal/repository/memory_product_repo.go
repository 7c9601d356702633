package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Shubham126710/products-api/internal/models"
	"github.com/Shubham126710/products-api/internal/query"
)

// MemoryProductRepository keeps products in a map guarded by a mutex. It
// backs tests and local development without a running database while
// honoring the same contract as the MongoDB implementation.
type MemoryProductRepository struct {
	mu       sync.RWMutex
	products map[string]models.Product
}

// NewMemoryProductRepository creates an empty in-memory repository.
func NewMemoryProductRepository() *MemoryProductRepository {
	return &MemoryProductRepository{products: make(map[string]models.Product)}
}

// Create inserts the product with a fresh object id and version 0.
func (r *MemoryProductRepository) Create(_ context.Context, product *models.Product) error {
	now := time.Now().UTC()
	product.ID = primitive.NewObjectID()
	product.CreatedAt = now
	product.UpdatedAt = now
	product.Version = 0

	r.mu.Lock()
	r.products[product.ID.Hex()] = *product
	r.mu.Unlock()
	return nil
}

// Find returns the page of products selected by q.
func (r *MemoryProductRepository) Find(_ context.Context, q query.ProductQuery) ([]models.Product, error) {
	r.mu.RLock()
	matched := r.matching(q)
	r.mu.RUnlock()

	sortProducts(matched, q.Sort)

	start := q.Skip()
	if start >= len(matched) {
		return []models.Product{}, nil
	}
	end := start + q.Limit
	if end < start || end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], nil
}

// Count returns how many products match q's filter.
func (r *MemoryProductRepository) Count(_ context.Context, q query.ProductQuery) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.matching(q))), nil
}

// FindByID returns the product with the given id.
func (r *MemoryProductRepository) FindByID(_ context.Context, id string) (*models.Product, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, ErrInvalidProductID
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	product, ok := r.products[id]
	if !ok {
		return nil, ErrProductNotFound
	}
	return &product, nil
}

// UpdateByID applies the non-nil patch fields, refreshes updatedAt and
// increments the version.
func (r *MemoryProductRepository) UpdateByID(_ context.Context, id string, patch *models.UpdateProductRequest) (*models.Product, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, ErrInvalidProductID
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	product, ok := r.products[id]
	if !ok {
		return nil, ErrProductNotFound
	}

	if patch.Name != nil {
		product.Name = *patch.Name
	}
	if patch.Price != nil {
		product.Price = *patch.Price
	}
	if patch.Category != nil {
		product.Category = models.Category(*patch.Category)
	}
	product.UpdatedAt = time.Now().UTC()
	product.Version++

	r.products[id] = product
	return &product, nil
}

// DeleteByID removes the product and returns the deleted record.
func (r *MemoryProductRepository) DeleteByID(_ context.Context, id string) (*models.Product, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, ErrInvalidProductID
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	product, ok := r.products[id]
	if !ok {
		return nil, ErrProductNotFound
	}
	delete(r.products, id)
	return &product, nil
}

// DeleteAll removes every product.
func (r *MemoryProductRepository) DeleteAll(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	deleted := int64(len(r.products))
	r.products = make(map[string]models.Product)
	return deleted, nil
}

// FindByCategory returns all products in the category, newest first.
func (r *MemoryProductRepository) FindByCategory(_ context.Context, category string) ([]models.Product, error) {
	r.mu.RLock()
	matched := r.matching(query.ProductQuery{Category: category})
	r.mu.RUnlock()

	sortProducts(matched, []query.SortField{{Field: "createdAt", Desc: true}})
	return matched, nil
}

// matching collects the products passing q's filter. Callers must hold at
// least a read lock.
func (r *MemoryProductRepository) matching(q query.ProductQuery) []models.Product {
	matched := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		if q.Category != "" && string(p.Category) != q.Category {
			continue
		}
		if q.MinPrice != nil && p.Price < *q.MinPrice {
			continue
		}
		if q.MaxPrice != nil && p.Price > *q.MaxPrice {
			continue
		}
		matched = append(matched, p)
	}
	return matched
}

// sortProducts orders products by the composite sort, left to right. Fields
// outside the known schema leave the order untouched, mirroring how the
// database sorts on a missing key.
func sortProducts(products []models.Product, fields []query.SortField) {
	sort.SliceStable(products, func(i, j int) bool {
		for _, f := range fields {
			c := compareField(products[i], products[j], f.Field)
			if c == 0 {
				continue
			}
			if f.Desc {
				return c > 0
			}
			return c < 0
		}
		return false
	})
}

func compareField(a, b models.Product, field string) int {
	switch field {
	case "name":
		return strings.Compare(a.Name, b.Name)
	case "price":
		switch {
		case a.Price < b.Price:
			return -1
		case a.Price > b.Price:
			return 1
		}
		return 0
	case "category":
		return strings.Compare(string(a.Category), string(b.Category))
	case "createdAt":
		return a.CreatedAt.Compare(b.CreatedAt)
	case "updatedAt":
		return a.UpdatedAt.Compare(b.UpdatedAt)
	case "version":
		switch {
		case a.Version < b.Version:
			return -1
		case a.Version > b.Version:
			return 1
		}
		return 0
	}
	return 0
}
