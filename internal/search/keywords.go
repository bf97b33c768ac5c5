package search

import (
	"embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed config/keywords.yaml
var keywordsFS embed.FS

// KeywordRule maps one keyword fragment to the categories it suggests.
type KeywordRule struct {
	Keyword    string   `yaml:"keyword"`
	Categories []string `yaml:"categories"`
}

// KeywordTable is the ordered keyword-to-category lookup used to widen a
// query into whole categories.
type KeywordTable struct {
	Rules []KeywordRule `yaml:"keywords"`
}

// DefaultKeywords returns the table bundled with the binary.
func DefaultKeywords() (*KeywordTable, error) {
	data, err := keywordsFS.ReadFile("config/keywords.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded keywords: %w", err)
	}
	return ParseKeywords(data)
}

// LoadKeywords reads the table from path, or the embedded default when path is empty.
func LoadKeywords(path string) (*KeywordTable, error) {
	if path == "" {
		return DefaultKeywords()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read keywords file %s: %w", path, err)
	}
	return ParseKeywords([]byte(os.ExpandEnv(string(data))))
}

// ParseKeywords decodes a keyword table from YAML. Keywords are trimmed and
// lower-cased; rules with a blank keyword are dropped.
func ParseKeywords(data []byte) (*KeywordTable, error) {
	var table KeywordTable
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("failed to decode keywords: %w", err)
	}
	rules := table.Rules[:0]
	for _, r := range table.Rules {
		r.Keyword = strings.ToLower(strings.TrimSpace(r.Keyword))
		if r.Keyword == "" {
			continue
		}
		rules = append(rules, r)
	}
	table.Rules = rules
	return &table, nil
}

// Match returns the categories of every rule whose keyword contains, or is
// contained in, one of the words. Words must already be lower-cased.
func (t *KeywordTable) Match(words []string) map[string]struct{} {
	matched := make(map[string]struct{})
	if t == nil {
		return matched
	}
	for _, word := range words {
		for _, rule := range t.Rules {
			if strings.Contains(word, rule.Keyword) || strings.Contains(rule.Keyword, word) {
				for _, cat := range rule.Categories {
					matched[cat] = struct{}{}
				}
			}
		}
	}
	return matched
}
