package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/joshhuu/data-navigator-ai/internal/contact"
	"github.com/joshhuu/data-navigator-ai/internal/models"
)

var ErrNotFound = errors.New("not found")

type Store struct {
	pool *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// CartEntry is one persisted cart row. Datasets are resolved against the
// loaded catalog by the caller.
type CartEntry struct {
	DatasetID string    `json:"datasetId"`
	AddedAt   time.Time `json:"addedAt"`
}

const selectCols = `id, name, description, category, records, accuracy, compliance_score,
	columns, industries, geography, price_tier, trending, sample_data`

func scanDataset(scan func(dest ...any) error) (models.Dataset, error) {
	var d models.Dataset
	var tier string
	var sampleRaw []byte

	err := scan(
		&d.ID, &d.Name, &d.Description, &d.Category, &d.Records, &d.Accuracy, &d.ComplianceScore,
		&d.Columns, &d.Industries, &d.Geography, &tier, &d.Trending, &sampleRaw,
	)
	if err != nil {
		return d, err
	}

	d.PriceTier = models.PriceTier(tier)
	d.Columns = sanitizeStringSlice(d.Columns)
	d.Industries = sanitizeStringSlice(d.Industries)
	d.Geography = sanitizeStringSlice(d.Geography)
	d.SampleData, err = decodeSampleData(sampleRaw)
	if err != nil {
		return d, fmt.Errorf("dataset %s: %w", d.ID, err)
	}
	return d, nil
}

// ListAll returns every stored dataset in catalog order.
func (s *Store) ListAll(ctx context.Context) ([]models.Dataset, error) {
	rows, err := s.pool.Query(ctx, fmt.Sprintf(`
		SELECT %s
		FROM datasets
		ORDER BY position, id
	`, selectCols))
	if err != nil {
		return nil, fmt.Errorf("list datasets: %w", err)
	}
	defer rows.Close()

	datasets := []models.Dataset{}
	for rows.Next() {
		d, err := scanDataset(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan dataset: %w", err)
		}
		datasets = append(datasets, d)
	}
	return datasets, rows.Err()
}

func (s *Store) GetDataset(ctx context.Context, id string) (*models.Dataset, error) {
	row := s.pool.QueryRow(ctx, fmt.Sprintf(`
		SELECT %s
		FROM datasets
		WHERE id = $1
	`, selectCols), id)

	d, err := scanDataset(row.Scan)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("dataset %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get dataset %s: %w", id, err)
	}
	return &d, nil
}

// UpsertDatasets writes datasets in one transaction, recording their order.
func (s *Store) UpsertDatasets(ctx context.Context, datasets []models.Dataset) (int, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin upsert: %w", err)
	}
	defer tx.Rollback(ctx)

	for i, d := range datasets {
		sample, err := encodeSampleData(d.SampleData)
		if err != nil {
			return 0, fmt.Errorf("encode sample data for %s: %w", d.ID, err)
		}
		_, err = tx.Exec(ctx, `
			INSERT INTO datasets (id, position, name, description, category, records, accuracy,
				compliance_score, columns, industries, geography, price_tier, trending, sample_data, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, NOW())
			ON CONFLICT (id) DO UPDATE SET
				position = EXCLUDED.position,
				name = EXCLUDED.name,
				description = EXCLUDED.description,
				category = EXCLUDED.category,
				records = EXCLUDED.records,
				accuracy = EXCLUDED.accuracy,
				compliance_score = EXCLUDED.compliance_score,
				columns = EXCLUDED.columns,
				industries = EXCLUDED.industries,
				geography = EXCLUDED.geography,
				price_tier = EXCLUDED.price_tier,
				trending = EXCLUDED.trending,
				sample_data = EXCLUDED.sample_data,
				updated_at = NOW()
		`, d.ID, i, d.Name, d.Description, d.Category, d.Records, d.Accuracy,
			d.ComplianceScore, nonNil(d.Columns), nonNil(d.Industries), nonNil(d.Geography),
			string(d.PriceTier), d.Trending, sample)
		if err != nil {
			return 0, fmt.Errorf("upsert dataset %s: %w", d.ID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit upsert: %w", err)
	}
	return len(datasets), nil
}

// Cart

// AddToCart stores datasetID for the user. It reports false when the
// dataset was already in the cart.
func (s *Store) AddToCart(ctx context.Context, userID uuid.UUID, datasetID string) (bool, error) {
	tag, err := s.pool.Exec(ctx, `
		INSERT INTO cart_items (user_id, dataset_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, dataset_id) DO NOTHING
	`, userID, datasetID)
	if err != nil {
		return false, fmt.Errorf("add to cart: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (s *Store) RemoveFromCart(ctx context.Context, userID uuid.UUID, datasetID string) (bool, error) {
	tag, err := s.pool.Exec(ctx, `
		DELETE FROM cart_items
		WHERE user_id = $1 AND dataset_id = $2
	`, userID, datasetID)
	if err != nil {
		return false, fmt.Errorf("remove from cart: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (s *Store) ClearCart(ctx context.Context, userID uuid.UUID) error {
	if _, err := s.pool.Exec(ctx, "DELETE FROM cart_items WHERE user_id = $1", userID); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}

// ListCart returns the user's cart rows, oldest first.
func (s *Store) ListCart(ctx context.Context, userID uuid.UUID) ([]CartEntry, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT dataset_id, added_at
		FROM cart_items
		WHERE user_id = $1
		ORDER BY added_at, dataset_id
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("list cart: %w", err)
	}
	defer rows.Close()

	entries := []CartEntry{}
	for rows.Next() {
		var e CartEntry
		if err := rows.Scan(&e.DatasetID, &e.AddedAt); err != nil {
			return nil, fmt.Errorf("scan cart item: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Contact requests

func (s *Store) InsertContactRequest(ctx context.Context, enq *contact.Enquiry) (uuid.UUID, error) {
	var id uuid.UUID
	err := s.pool.QueryRow(ctx, `
		INSERT INTO contact_requests (name, email, business_need, preview)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, enq.Name, enq.Email, enq.BusinessNeed, enq.Preview).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("insert contact request: %w", err)
	}
	return id, nil
}

// ContactRecord is a stored contact request as listed for follow-up.
type ContactRecord struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Preview   string    `json:"preview"`
	CreatedAt time.Time `json:"created_at"`
}

// RecentContactRequests returns up to limit requests, newest first.
func (s *Store) RecentContactRequests(ctx context.Context, limit int) ([]ContactRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.pool.Query(ctx, `
		SELECT id, name, email, preview, created_at
		FROM contact_requests
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("list contact requests: %w", err)
	}
	defer rows.Close()

	records := []ContactRecord{}
	for rows.Next() {
		var r ContactRecord
		if err := rows.Scan(&r.ID, &r.Name, &r.Email, &r.Preview, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan contact request: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// GetStats returns row counts per table.
func (s *Store) GetStats(ctx context.Context) (map[string]interface{}, error) {
	stats := make(map[string]interface{})
	for _, table := range []string{"datasets", "users", "cart_items", "contact_requests"} {
		var n int
		if err := s.pool.QueryRow(ctx, "SELECT COUNT(*) FROM "+table).Scan(&n); err != nil {
			return nil, fmt.Errorf("count %s: %w", table, err)
		}
		stats[table] = n
	}

	var trending int
	if err := s.pool.QueryRow(ctx, "SELECT COUNT(*) FROM datasets WHERE trending = true").Scan(&trending); err != nil {
		return nil, fmt.Errorf("count trending: %w", err)
	}
	stats["trending"] = trending

	return stats, nil
}

func encodeSampleData(rows []map[string]any) ([]byte, error) {
	if rows == nil {
		rows = []map[string]any{}
	}
	return json.Marshal(rows)
}

func decodeSampleData(raw []byte) ([]map[string]any, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var rows []map[string]any
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, fmt.Errorf("decode sample_data: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows, nil
}

func sanitizeStringSlice(values []string) []string {
	if len(values) == 0 {
		return values
	}

	clean := make([]string, 0, len(values))
	for _, value := range values {
		trimmed := strings.TrimSpace(value)
		if trimmed != "" {
			clean = append(clean, trimmed)
		}
	}

	return clean
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
