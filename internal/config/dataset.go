package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mmatos/tabula/internal/domain"
)

// DatasetFile is the YAML description of one dataset the CLI can
// generate: a locale, an optional seed, a row count and the ordered
// column list with per-column parameters.
type DatasetFile struct {
	Name    string              `yaml:"name"`
	Locale  string              `yaml:"locale"`
	Seed    *int64              `yaml:"seed,omitempty"`
	Rows    int                 `yaml:"rows"`
	Columns []domain.ColumnSpec `yaml:"columns"`
}

// LoadDataset reads and structurally checks a dataset file. Locale and
// column validity are left to the generator, which owns those rules.
func LoadDataset(path string) (*DatasetFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset file: %w", err)
	}

	var ds DatasetFile
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("failed to parse dataset file: %w", err)
	}

	if ds.Locale == "" {
		return nil, errors.New("dataset locale is required")
	}
	if ds.Rows <= 0 {
		return nil, fmt.Errorf("dataset rows must be > 0, got %d", ds.Rows)
	}
	if len(ds.Columns) == 0 {
		return nil, errors.New("dataset must declare at least one column")
	}
	for i, col := range ds.Columns {
		if col.Name == "" {
			return nil, fmt.Errorf("column %d: kind is required", i)
		}
	}
	return &ds, nil
}
