package main

import (
	"context"
	"log"
	"os"
	"strings"

	"github.com/joshhuu/data-navigator-ai/internal/api"
	"github.com/joshhuu/data-navigator-ai/internal/catalog"
	"github.com/joshhuu/data-navigator-ai/internal/db"
	"github.com/joshhuu/data-navigator-ai/internal/search"
)

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8081"
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	if err := db.ApplyMigrations(ctx, pool); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	cat, err := loadCatalog(ctx, db.NewStore(pool))
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}
	log.Printf("Catalog loaded: %d datasets", len(cat.Datasets))

	keywords, err := loadKeywords()
	if err != nil {
		log.Fatalf("Failed to load keyword table: %v", err)
	}

	srv := api.NewServer(pool, cat, keywords)
	log.Printf("Server starting on port %s...", port)
	if err := srv.Start(port); err != nil {
		log.Fatal(err)
	}
}

// loadCatalog reads CATALOG_SOURCE. "postgres" serves datasets from the
// database with the embedded vocabulary; anything else goes to catalog.Load.
func loadCatalog(ctx context.Context, store *db.Store) (*catalog.Catalog, error) {
	source := strings.TrimSpace(os.Getenv("CATALOG_SOURCE"))
	if source != "postgres" {
		return catalog.Load(ctx, source)
	}

	base, err := catalog.Default()
	if err != nil {
		return nil, err
	}
	return catalog.FromRepository(ctx, store, base)
}

func loadKeywords() (*search.KeywordTable, error) {
	if path := strings.TrimSpace(os.Getenv("KEYWORDS_FILE")); path != "" {
		return search.LoadKeywords(path)
	}
	return search.DefaultKeywords()
}
