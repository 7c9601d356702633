package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Shubham126710/products-api/internal/models"
	"github.com/Shubham126710/products-api/internal/query"
)

const productCollection = "products"

// MongoProductRepository stores products in a MongoDB collection.
type MongoProductRepository struct {
	coll *mongo.Collection
}

// NewMongoProductRepository creates a repository over the products collection
// of db.
func NewMongoProductRepository(db *mongo.Database) *MongoProductRepository {
	return &MongoProductRepository{coll: db.Collection(productCollection)}
}

// Create inserts the product with a fresh object id and version 0. Both
// timestamps are set from the same instant, truncated to the millisecond
// precision BSON stores, so the struct matches what a later read returns.
func (r *MongoProductRepository) Create(ctx context.Context, product *models.Product) error {
	now := time.Now().UTC().Truncate(time.Millisecond)
	product.ID = primitive.NewObjectID()
	product.CreatedAt = now
	product.UpdatedAt = now
	product.Version = 0

	_, err := r.coll.InsertOne(ctx, product)
	return err
}

// Find returns the page of products selected by q.
func (r *MongoProductRepository) Find(ctx context.Context, q query.ProductQuery) ([]models.Product, error) {
	opts := options.Find().
		SetSort(sortDocument(q.Sort)).
		SetSkip(int64(q.Skip())).
		SetLimit(int64(q.Limit))

	cursor, err := r.coll.Find(ctx, filterDocument(q), opts)
	if err != nil {
		return nil, err
	}

	// No capacity hint from q.Limit: it is client-controlled and uncapped.
	products := make([]models.Product, 0)
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// Count returns how many products match q's filter.
func (r *MongoProductRepository) Count(ctx context.Context, q query.ProductQuery) (int64, error) {
	return r.coll.CountDocuments(ctx, filterDocument(q))
}

// FindByID returns the product with the given id.
func (r *MongoProductRepository) FindByID(ctx context.Context, id string) (*models.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidProductID
	}

	var product models.Product
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&product); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

// UpdateByID applies the non-nil patch fields in one round trip and returns
// the document as stored after the update. updatedAt is always refreshed and
// the version incremented, even for an empty patch.
func (r *MongoProductRepository) UpdateByID(ctx context.Context, id string, patch *models.UpdateProductRequest) (*models.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidProductID
	}

	set := bson.M{"updatedAt": time.Now().UTC().Truncate(time.Millisecond)}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Price != nil {
		set["price"] = *patch.Price
	}
	if patch.Category != nil {
		set["category"] = *patch.Category
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	update := bson.M{"$set": set, "$inc": bson.M{"version": 1}}

	var updated models.Product
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&updated); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return &updated, nil
}

// DeleteByID removes the product and returns the deleted document.
func (r *MongoProductRepository) DeleteByID(ctx context.Context, id string) (*models.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidProductID
	}

	var deleted models.Product
	if err := r.coll.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&deleted); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return &deleted, nil
}

// DeleteAll removes every product in the collection.
func (r *MongoProductRepository) DeleteAll(ctx context.Context) (int64, error) {
	res, err := r.coll.DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// FindByCategory returns all products in the category, newest first.
func (r *MongoProductRepository) FindByCategory(ctx context.Context, category string) ([]models.Product, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"category": category}, opts)
	if err != nil {
		return nil, err
	}

	products := make([]models.Product, 0)
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// filterDocument translates the query filter into a bson document.
func filterDocument(q query.ProductQuery) bson.M {
	filter := bson.M{}
	if q.Category != "" {
		filter["category"] = q.Category
	}
	price := bson.M{}
	if q.MinPrice != nil {
		price["$gte"] = *q.MinPrice
	}
	if q.MaxPrice != nil {
		price["$lte"] = *q.MaxPrice
	}
	if len(price) > 0 {
		filter["price"] = price
	}
	return filter
}

// sortDocument translates the composite sort into a bson document, keeping
// field order.
func sortDocument(fields []query.SortField) bson.D {
	sort := make(bson.D, 0, len(fields))
	for _, f := range fields {
		order := 1
		if f.Desc {
			order = -1
		}
		sort = append(sort, bson.E{Key: f.Field, Value: order})
	}
	return sort
}
