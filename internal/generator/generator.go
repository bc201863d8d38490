// Package generator orchestrates schema validation and value synthesis
// into an in-memory row set.
package generator

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/mmatos/tabula/internal/backend"
	"github.com/mmatos/tabula/internal/domain"
	"github.com/mmatos/tabula/internal/hashing"
	"github.com/mmatos/tabula/internal/presenter"
	"github.com/mmatos/tabula/internal/sampler"
	"github.com/mmatos/tabula/internal/schema"
	"github.com/mmatos/tabula/internal/synth"
)

// Generator owns one column schema, one seeded random source and the
// rows generated from them. Instances are independent and may run in
// parallel (the en_US backend's faker source excepted, which is
// process-global and seeded at construction); a single instance must
// not be mutated concurrently.
type Generator struct {
	locale  domain.Locale
	seed    int64
	rng     *rand.Rand
	backend backend.Backend
	schema  *schema.Registry
	synth   *synth.Synthesizer
	rows    []domain.Row
}

// New builds a generator for one of the supported locales. An
// unsupported locale fails with an error enumerating the allowed set.
func New(locale string, seed int64) (*Generator, error) {
	reg := backend.DefaultRegistry()
	loc := domain.Locale(locale)

	b, err := reg.For(loc, seed)
	if err != nil {
		return nil, err
	}
	fields, err := reg.Fields(loc)
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(seed))
	return &Generator{
		locale:  loc,
		seed:    seed,
		rng:     rng,
		backend: b,
		schema:  schema.NewRegistry(loc, fields),
		synth:   synth.New(rng, b),
	}, nil
}

// Locale returns the generator's locale identifier.
func (g *Generator) Locale() string { return string(g.locale) }

// AddColumn declares a column. Params may be nil.
func (g *Generator) AddColumn(kind domain.FieldKind, params map[string]any) error {
	return g.schema.Add(kind, params)
}

// AddColumns declares several columns in order, stopping at the first failure.
func (g *Generator) AddColumns(specs []domain.ColumnSpec) error {
	for _, spec := range specs {
		if err := g.schema.Add(spec.Name, spec.Params); err != nil {
			return err
		}
	}
	return nil
}

// RemoveColumn drops a column and its values from any generated rows.
func (g *Generator) RemoveColumn(name string) error {
	if err := g.schema.Remove(name); err != nil {
		return err
	}
	for _, row := range g.rows {
		delete(row, name)
	}
	return nil
}

// Generate builds n rows. With clearBefore the previous row set is
// discarded first. Identity columns are normalized to the front, then
// each row is synthesized column by column; email may read the same
// row's already-computed name. Any synthesis failure aborts the whole
// call, leaving the prior rows (clearBefore=false) or an empty set.
func (g *Generator) Generate(n int, clearBefore bool) error {
	if n <= 0 {
		return fmt.Errorf("%w: row count must be positive, got %d", domain.ErrInvalidValue, n)
	}

	if clearBefore {
		g.rows = nil
	}
	g.schema.Normalize()

	cols := g.schema.Columns()
	built := make([]domain.Row, 0, n)
	for i := 0; i < n; i++ {
		row := make(domain.Row, len(cols))
		ordinal := len(g.rows) + i
		for _, col := range cols {
			val, err := g.synth.Value(col.Name, col.Params, row, ordinal)
			if err != nil {
				return fmt.Errorf("column %q, row %d: %w", col.Name, ordinal, err)
			}
			row[string(col.Name)] = val
		}
		built = append(built, row)
	}

	g.rows = append(g.rows, built...)
	return nil
}

// Rows returns the generated rows in order.
func (g *Generator) Rows() []domain.Row { return g.rows }

// Columns returns the column labels in current order.
func (g *Generator) Columns() []string { return g.schema.Names() }

// RowSet snapshots the current columns and rows.
func (g *Generator) RowSet() domain.RowSet {
	return domain.RowSet{Columns: g.Columns(), Rows: g.rows}
}

// SchemaEqual reports whether both generators were declared with the
// same set of column names, regardless of order.
func (g *Generator) SchemaEqual(other *Generator) bool {
	if other == nil {
		return false
	}
	return hashing.Fingerprint(g.schema.Original()) == hashing.Fingerprint(other.schema.Original())
}

// Concat appends the other generator's rows. The originally declared
// schemas and the current column orders must both match exactly.
func (g *Generator) Concat(other *Generator) error {
	if other == nil {
		return fmt.Errorf("%w: cannot concatenate a nil generator", domain.ErrInvalidType)
	}
	if !equalStrings(g.schema.Original(), other.schema.Original()) {
		return fmt.Errorf("%w: cannot concatenate, declared column schemas do not match", domain.ErrInvalidValue)
	}
	if !equalStrings(g.Columns(), other.Columns()) {
		return fmt.Errorf("%w: cannot concatenate, current column orders do not match", domain.ErrInvalidValue)
	}
	g.rows = append(g.rows, other.rows...)
	return nil
}

// Table renders the row set as a fixed-width text table; with
// returnString false it is printed instead.
func (g *Generator) Table(returnString bool) (string, error) {
	return presenter.RenderText(g.Columns(), g.rows, returnString)
}

// Save exports the row set to <path>.<format> (csv, json or html).
func (g *Generator) Save(format, path string) error {
	return presenter.Save(g.rows, g.Columns(), format, path)
}

// Sampler hands the generated row set to the sampling subsystem,
// sharing this generator's random source.
func (g *Generator) Sampler() *sampler.Sampler {
	return sampler.New(g.Columns(), g.rows, g.rng)
}

// Info writes a schema and size summary.
func (g *Generator) Info(w io.Writer) {
	fmt.Fprintf(w, "locale: %s\n", g.locale)
	fmt.Fprintf(w, "seed: %d\n", g.seed)
	fmt.Fprintf(w, "rows: %d\n", len(g.rows))
	fmt.Fprintf(w, "columns: %d\n", len(g.schema.Columns()))
	for _, col := range g.schema.Columns() {
		if len(col.Params) > 0 {
			fmt.Fprintf(w, "  - %s %v\n", col.Name, col.Params)
		} else {
			fmt.Fprintf(w, "  - %s\n", col.Name)
		}
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
