package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Shubham126710/products-api/internal/config"
	"github.com/Shubham126710/products-api/internal/database"
	"github.com/Shubham126710/products-api/internal/models"
	"github.com/Shubham126710/products-api/internal/repository"
)

// main seeds the products collection with a small sample catalog. Existing
// records are left in place; run DELETE /api/products first for a clean slate.
func main() {
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// 2. Connect database
	db, err := database.Connect(&cfg.Mongo)
	if err != nil {
		fmt.Fprintf(os.Stderr, "database connection failed: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = db.Client().Disconnect(ctx)
	}()

	// 3. Insert sample products
	repo := repository.NewMongoProductRepository(db)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	for _, p := range sampleProducts() {
		product := p
		if err := repo.Create(ctx, &product); err != nil {
			log.Error().Err(err).Str("name", product.Name).Msg("seed insert failed")
			os.Exit(1)
		}
		log.Info().Str("id", product.ID.Hex()).Str("name", product.Name).Msg("seeded product")
	}

	log.Info().Int("count", len(sampleProducts())).Msg("seeding completed")
}

func sampleProducts() []models.Product {
	return []models.Product{
		{Name: "Wireless Mouse", Price: 24.99, Category: models.CategoryElectronics},
		{Name: "Mechanical Keyboard", Price: 89.90, Category: models.CategoryElectronics},
		{Name: "Cotton T-Shirt", Price: 12.50, Category: models.CategoryClothing},
		{Name: "Denim Jacket", Price: 59.00, Category: models.CategoryClothing},
		{Name: "Dark Chocolate Bar", Price: 3.75, Category: models.CategoryFood},
		{Name: "The Go Programming Language", Price: 39.99, Category: models.CategoryBooks},
		{Name: "Building Blocks Set", Price: 29.95, Category: models.CategoryToys},
		{Name: "Leather Wallet", Price: 34.00, Category: models.CategoryAccessories},
		{Name: "Fountain Pen", Price: 18.25, Category: models.CategoryStationery},
		{Name: "Gift Card", Price: 25.00, Category: models.CategoryOther},
	}
}
