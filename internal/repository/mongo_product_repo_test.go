package repository

import (
	"context"
	"math"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Shubham126710/products-api/internal/models"
	"github.com/Shubham126710/products-api/internal/query"
)

// newMongoTestRepo connects to the instance named by TEST_MONGO_URI and
// returns a repository over a dropped-clean test collection. Tests are
// skipped when the variable is unset so the suite runs without a database.
func newMongoTestRepo(t *testing.T) *MongoProductRepository {
	t.Helper()
	uri := os.Getenv("TEST_MONGO_URI")
	if uri == "" {
		t.Skip("set TEST_MONGO_URI to run MongoDB integration tests")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = client.Disconnect(context.Background())
	})

	db := client.Database("products_test")
	require.NoError(t, db.Collection(productCollection).Drop(ctx))
	return NewMongoProductRepository(db)
}

func TestMongoRepoLifecycle(t *testing.T) {
	repo := newMongoTestRepo(t)
	ctx := context.Background()

	created := models.Product{Name: "Wireless Mouse", Price: 24.99, Category: models.CategoryElectronics}
	require.NoError(t, repo.Create(ctx, &created))
	assert.False(t, created.ID.IsZero())
	assert.True(t, created.CreatedAt.Equal(created.UpdatedAt))

	stored, err := repo.FindByID(ctx, created.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, created.Name, stored.Name)
	assert.Equal(t, created.Price, stored.Price)
	assert.Equal(t, created.Category, stored.Category)
	assert.True(t, stored.CreatedAt.Equal(created.CreatedAt), "stored timestamp should round trip")

	name := "Wireless Mouse Pro"
	updated, err := repo.UpdateByID(ctx, created.ID.Hex(), &models.UpdateProductRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Wireless Mouse Pro", updated.Name)
	assert.Equal(t, created.Price, updated.Price)
	assert.Equal(t, int64(1), updated.Version)
	assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))

	deleted, err := repo.DeleteByID(ctx, created.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, created.ID, deleted.ID)

	_, err = repo.FindByID(ctx, created.ID.Hex())
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestMongoRepoIDErrors(t *testing.T) {
	repo := newMongoTestRepo(t)
	ctx := context.Background()

	_, err := repo.FindByID(ctx, "not-an-object-id")
	assert.ErrorIs(t, err, ErrInvalidProductID)

	_, err = repo.UpdateByID(ctx, "not-an-object-id", &models.UpdateProductRequest{})
	assert.ErrorIs(t, err, ErrInvalidProductID)

	_, err = repo.DeleteByID(ctx, "not-an-object-id")
	assert.ErrorIs(t, err, ErrInvalidProductID)
}

func TestMongoRepoQueries(t *testing.T) {
	repo := newMongoTestRepo(t)
	ctx := context.Background()

	seedCatalog(t, repo)

	min := 10.0
	q := query.ProductQuery{
		MinPrice: &min,
		Sort:     []query.SortField{{Field: "price"}},
		Page:     1,
		Limit:    3,
	}

	products, err := repo.Find(ctx, q)
	require.NoError(t, err)
	require.Len(t, products, 3)
	assert.Equal(t, "Cotton T-Shirt", products[0].Name)
	assert.Equal(t, "The Go Programming Language", products[2].Name)

	total, err := repo.Count(ctx, q)
	require.NoError(t, err)
	assert.Equal(t, int64(4), total)

	electronics, err := repo.FindByCategory(ctx, "Electronics")
	require.NoError(t, err)
	assert.Len(t, electronics, 2)

	// Oversized windows answer with pages, never an allocation for the limit.
	all, err := repo.Find(ctx, query.ProductQuery{Page: 1, Limit: math.MaxInt})
	require.NoError(t, err)
	assert.Len(t, all, 5)

	past, err := repo.Find(ctx, query.ProductQuery{Page: 3, Limit: math.MaxInt})
	require.NoError(t, err)
	assert.NotNil(t, past)
	assert.Empty(t, past)

	deleted, err := repo.DeleteAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(5), deleted)
}
