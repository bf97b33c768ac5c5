package catalog

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed config/catalog.yaml
var fixtureFS embed.FS

var (
	ErrDuplicateID  = errors.New("duplicate dataset id")
	ErrInvalidEntry = errors.New("invalid dataset entry")
)

// Default returns the catalog bundled with the binary.
func Default() (*Catalog, error) {
	data, err := fixtureFS.ReadFile("config/catalog.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded catalog: %w", err)
	}
	return Parse(data)
}

// Load resolves a catalog source: empty means the embedded fixture, an
// s3://bucket/key URI is fetched from S3, anything else is read as a local
// YAML file.
func Load(ctx context.Context, source string) (*Catalog, error) {
	source = strings.TrimSpace(source)
	switch {
	case source == "":
		return Default()
	case strings.HasPrefix(source, "s3://"):
		client, err := NewS3Client(ctx, os.Getenv("AWS_REGION"))
		if err != nil {
			return nil, err
		}
		return LoadS3(ctx, client, source)
	default:
		return LoadFile(source)
	}
}

// LoadFile reads a catalog YAML file, expanding environment variables
// (e.g. ${ASSET_HOST}) before decoding.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}
	return Parse([]byte(os.ExpandEnv(string(data))))
}

// Parse decodes, normalizes and validates a catalog document.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}
	if err := prepare(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

func prepare(c *Catalog) error {
	for i := range c.Datasets {
		ds := &c.Datasets[i]
		ds.ID = strings.TrimSpace(ds.ID)
		ds.Name = normalizeSpace(ds.Name)
		ds.Category = strings.TrimSpace(ds.Category)
		ds.Industries = cleanTags(ds.Industries)
		ds.Geography = cleanTags(ds.Geography)
		if ds.Columns == nil {
			ds.Columns = []string{}
		}
	}
	c.Industries = cleanTags(c.Industries)
	c.Geographies = cleanTags(c.Geographies)

	if err := Validate(c); err != nil {
		return err
	}
	c.index()
	return nil
}

// Validate checks every dataset for a unique id and in-range quality fields.
// Facet values are deliberately not checked against the vocabulary.
func Validate(c *Catalog) error {
	seen := make(map[string]struct{}, len(c.Datasets))
	for _, ds := range c.Datasets {
		if ds.ID == "" {
			return fmt.Errorf("%w: empty id (name %q)", ErrInvalidEntry, ds.Name)
		}
		if _, ok := seen[ds.ID]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateID, ds.ID)
		}
		seen[ds.ID] = struct{}{}

		if ds.Records < 0 {
			return fmt.Errorf("%w: %s has negative record count", ErrInvalidEntry, ds.ID)
		}
		if ds.Accuracy < 0 || ds.Accuracy > 100 {
			return fmt.Errorf("%w: %s accuracy %.1f out of range", ErrInvalidEntry, ds.ID, ds.Accuracy)
		}
		if ds.ComplianceScore < 0 || ds.ComplianceScore > 100 {
			return fmt.Errorf("%w: %s compliance score %d out of range", ErrInvalidEntry, ds.ID, ds.ComplianceScore)
		}
		if !ds.PriceTier.Valid() {
			return fmt.Errorf("%w: %s has unknown price tier %q", ErrInvalidEntry, ds.ID, ds.PriceTier)
		}
	}
	return nil
}
