package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category classifies a product. Only the values listed in Categories are
// accepted by the API.
type Category string

const (
	CategoryElectronics Category = "Electronics"
	CategoryClothing    Category = "Clothing"
	CategoryFood        Category = "Food"
	CategoryBooks       Category = "Books"
	CategoryToys        Category = "Toys"
	CategoryAccessories Category = "Accessories"
	CategoryStationery  Category = "Stationery"
	CategoryOther       Category = "Other"
)

// Categories lists every accepted category value.
var Categories = []Category{
	CategoryElectronics,
	CategoryClothing,
	CategoryFood,
	CategoryBooks,
	CategoryToys,
	CategoryAccessories,
	CategoryStationery,
	CategoryOther,
}

// IsValidCategory reports whether value is one of the accepted categories.
// The comparison is case sensitive.
func IsValidCategory(value string) bool {
	for _, c := range Categories {
		if string(c) == value {
			return true
		}
	}
	return false
}

// Product represents a catalog record in the products collection.
// Fields are tagged for both BSON storage and JSON serialization.
type Product struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Price     float64            `bson:"price" json:"price"`
	Category  Category           `bson:"category" json:"category"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
	Version   int64              `bson:"version" json:"version"`
}
