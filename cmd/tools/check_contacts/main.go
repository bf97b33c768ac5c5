package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/joshhuu/data-navigator-ai/internal/db"
)

func main() {
	limit := flag.Int("limit", 10, "Number of requests to show")
	flag.Parse()

	ctx := context.Background()
	pool, err := db.Connect(ctx)
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Close()

	records, err := db.NewStore(pool).RecentContactRequests(ctx, *limit)
	if err != nil {
		log.Fatal(err)
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Received", "Name", "Email", "Business Need"})
	for _, r := range records {
		t.AppendRow(table.Row{r.CreatedAt.Format("2006-01-02 15:04"), r.Name, r.Email, r.Preview})
	}
	t.Render()
}
