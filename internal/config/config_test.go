package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmatos/tabula/internal/domain"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"TABULA_LOG_LEVEL", "TABULA_LOCALE", "TABULA_SEED", "TABULA_OUT_DIR"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "en_US", cfg.Locale)
	assert.Equal(t, int64(20), cfg.Seed)
	assert.Equal(t, ".", cfg.OutDir)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("TABULA_LOG_LEVEL", "debug")
	t.Setenv("TABULA_LOCALE", "pt_BR")
	t.Setenv("TABULA_SEED", "1234")
	t.Setenv("TABULA_OUT_DIR", "/tmp/out")

	cfg := Load()
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "pt_BR", cfg.Locale)
	assert.Equal(t, int64(1234), cfg.Seed)
	assert.Equal(t, "/tmp/out", cfg.OutDir)
}

func TestLoadIgnoresUnparsableSeed(t *testing.T) {
	t.Setenv("TABULA_SEED", "not-a-number")

	cfg := Load()
	assert.Equal(t, int64(20), cfg.Seed)
}

func writeDataset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dataset.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDataset(t *testing.T) {
	path := writeDataset(t, `
name: people
locale: pt_BR
seed: 7
rows: 50
columns:
  - name: name
  - name: age
    params:
      minAge: 20
      maxAge: 40
  - name: cpf
`)

	ds, err := LoadDataset(path)
	require.NoError(t, err)

	assert.Equal(t, "people", ds.Name)
	assert.Equal(t, "pt_BR", ds.Locale)
	require.NotNil(t, ds.Seed)
	assert.Equal(t, int64(7), *ds.Seed)
	assert.Equal(t, 50, ds.Rows)

	require.Len(t, ds.Columns, 3)
	assert.Equal(t, domain.FieldAge, ds.Columns[1].Name)
	assert.Equal(t, 20, ds.Columns[1].Params["minAge"])
	assert.Nil(t, ds.Columns[0].Params)
}

func TestLoadDatasetOptionalSeed(t *testing.T) {
	path := writeDataset(t, `
locale: en_US
rows: 3
columns:
  - name: name
`)

	ds, err := LoadDataset(path)
	require.NoError(t, err)
	assert.Nil(t, ds.Seed)
}

func TestLoadDatasetStructuralErrors(t *testing.T) {
	cases := []struct {
		name    string
		content string
		wantMsg string
	}{
		{
			"missing locale",
			"rows: 3\ncolumns:\n  - name: name\n",
			"locale is required",
		},
		{
			"non-positive rows",
			"locale: pt_BR\nrows: 0\ncolumns:\n  - name: name\n",
			"rows must be > 0",
		},
		{
			"no columns",
			"locale: pt_BR\nrows: 3\n",
			"at least one column",
		},
		{
			"column without kind",
			"locale: pt_BR\nrows: 3\ncolumns:\n  - params: {minAge: 2}\n",
			"kind is required",
		},
		{
			"malformed yaml",
			"locale: [unclosed\n",
			"failed to parse",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadDataset(writeDataset(t, tc.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantMsg)
		})
	}
}

func TestLoadDatasetMissingFile(t *testing.T) {
	_, err := LoadDataset(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read")
}
