package main

import (
	"context"
	"flag"
	"log"

	"github.com/joshhuu/data-navigator-ai/internal/catalog"
	"github.com/joshhuu/data-navigator-ai/internal/db"
)

func main() {
	source := flag.String("source", "", "Catalog source: empty for the embedded fixture, a YAML path, or s3://bucket/key")
	dryRun := flag.Bool("dry-run", false, "Validate the catalog without writing to the database")
	flag.Parse()

	ctx := context.Background()
	cat, err := catalog.Load(ctx, *source)
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}
	log.Printf("Loaded %d datasets, %d use cases", len(cat.Datasets), len(cat.UseCases))

	if *dryRun {
		return
	}

	pool, err := db.Connect(ctx)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	if err := db.ApplyMigrations(ctx, pool); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	n, err := db.NewStore(pool).UpsertDatasets(ctx, cat.Datasets)
	if err != nil {
		log.Fatalf("Seed failed: %v", err)
	}
	log.Printf("Seed finished. Upserted: %d", n)
}
