package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/TechNest-Affiliates/technest-storefront-backend/catalog"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

// main validates a catalog document and prints its aggregates.
// Usage: go run cmd/catalogcheck/main.go [-file data/products.json | -url https://...]
// This is a standalone CLI tool, not part of the main application
func main() {
	file := flag.String("file", "data/products.json", "path to a catalog document")
	url := flag.String("url", "", "catalog URL (wins over -file when set)")
	timeout := flag.Duration("timeout", 10*time.Second, "fetch timeout")
	flag.Parse()

	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("TECHNEST STOREFRONT - Catalog Checker")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	var source catalog.Source
	if *url != "" {
		source = catalog.NewHTTPSource(*url, *timeout)
		log.Printf("✓ Checking %s", *url)
	} else {
		source = catalog.NewFileSource(*file)
		log.Printf("✓ Checking %s", *file)
	}

	store := catalog.NewStore(source)
	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := store.Load(ctx); err != nil {
		fmt.Printf("❌ Catalog rejected: %v\n", err)
		os.Exit(1)
	}

	stats := store.Statistics(ctx)
	fmt.Println("✅ Catalog is valid")
	fmt.Printf("   Products:        %d\n", stats.TotalProducts)
	fmt.Printf("   Featured:        %d\n", stats.FeaturedProducts)
	fmt.Printf("   Average rating:  %.1f\n", stats.AverageRating)
	fmt.Printf("   Categories:      %d (%v)\n", stats.TotalCategories, store.Categories(ctx))
	fmt.Printf("   With discount:   %d (%d%%)\n", stats.ProductsWithDiscount, stats.DiscountPercentage)
}
