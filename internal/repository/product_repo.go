package repository

import (
	"context"
	"errors"

	"github.com/Shubham126710/products-api/internal/models"
	"github.com/Shubham126710/products-api/internal/query"
)

// Lookup failures are reported through this closed set so callers can match
// with errors.Is instead of inspecting message strings.
var (
	// ErrProductNotFound means no product exists with the given id.
	ErrProductNotFound = errors.New("product not found")
	// ErrInvalidProductID means the id is malformed and can never resolve
	// to a stored product.
	ErrInvalidProductID = errors.New("invalid product id")
)

// ProductRepository is the persistence contract for products. Implementations
// own identifier validation: FindByID, UpdateByID and DeleteByID return
// ErrInvalidProductID for ids that cannot be parsed and ErrProductNotFound
// for well-formed ids that match nothing.
type ProductRepository interface {
	// Create inserts the product, assigning its id, timestamps and initial
	// version in place.
	Create(ctx context.Context, product *models.Product) error
	// Find returns the page of products selected by q.
	Find(ctx context.Context, q query.ProductQuery) ([]models.Product, error)
	// Count returns how many products match q's filter, ignoring its page
	// window.
	Count(ctx context.Context, q query.ProductQuery) (int64, error)
	// FindByID returns the product with the given id.
	FindByID(ctx context.Context, id string) (*models.Product, error)
	// UpdateByID applies the non-nil patch fields, refreshes updatedAt,
	// increments the version and returns the updated product.
	UpdateByID(ctx context.Context, id string, patch *models.UpdateProductRequest) (*models.Product, error)
	// DeleteByID removes the product and returns it as it was stored.
	DeleteByID(ctx context.Context, id string) (*models.Product, error)
	// DeleteAll removes every product and returns how many were deleted.
	DeleteAll(ctx context.Context) (int64, error)
	// FindByCategory returns all products in the category, newest first.
	// The category is used as an exact filter value and is not checked
	// against the accepted set.
	FindByCategory(ctx context.Context, category string) ([]models.Product, error)
}
