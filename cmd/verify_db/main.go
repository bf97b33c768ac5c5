package main

import (
	"context"
	"log"
	"os"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/joshhuu/data-navigator-ai/internal/db"
)

func main() {
	ctx := context.Background()
	pool, err := db.Connect(ctx)
	if err != nil {
		log.Fatalf("Unable to connect to database: %v", err)
	}
	defer pool.Close()

	stats, err := db.NewStore(pool).GetStats(ctx)
	if err != nil {
		log.Fatalf("Query failed: %v", err)
	}

	keys := make([]string, 0, len(stats))
	for k := range stats {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Table", "Rows"})
	for _, k := range keys {
		t.AppendRow(table.Row{k, stats[k]})
	}
	t.Render()
}
