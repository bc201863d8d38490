// Package sampler resamples a generated row set: random, stratified,
// systematic and cluster strategies over in-memory rows.
package sampler

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/mmatos/tabula/internal/domain"
	"github.com/mmatos/tabula/internal/presenter"
)

// Sampler draws samples from a snapshot of columns and rows. Row maps
// are shared with the producing generator; operations that relabel
// columns rebuild the maps instead of mutating them.
type Sampler struct {
	cols []string
	rows []domain.Row
	rng  *rand.Rand
}

func New(columns []string, rows []domain.Row, rng *rand.Rand) *Sampler {
	return &Sampler{
		cols: append([]string(nil), columns...),
		rows: append([]domain.Row(nil), rows...),
		rng:  rng,
	}
}

func (s *Sampler) Columns() []string  { return s.cols }
func (s *Sampler) Rows() []domain.Row { return s.rows }

// Sample is a drawn subset, exportable like any row set.
type Sample struct {
	Columns []string
	Rows    []domain.Row
}

func (sm *Sample) Table(returnString bool) (string, error) {
	return presenter.RenderText(sm.Columns, sm.Rows, returnString)
}

func (sm *Sample) Save(format, path string) error {
	return presenter.Save(sm.Rows, sm.Columns, format, path)
}

// Random draws n rows uniformly, with or without replacement.
func (s *Sampler) Random(n int, replacement bool) (*Sample, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: sample size must be a positive integer, got %d", domain.ErrInvalidValue, n)
	}
	if len(s.rows) == 0 {
		return nil, fmt.Errorf("%w: cannot sample from an empty row set", domain.ErrInvalidValue)
	}
	if !replacement && n > len(s.rows) {
		return nil, fmt.Errorf("%w: sample size %d exceeds population size %d without replacement",
			domain.ErrInvalidValue, n, len(s.rows))
	}

	picked := make([]domain.Row, 0, n)
	if replacement {
		for i := 0; i < n; i++ {
			picked = append(picked, s.rows[s.rng.Intn(len(s.rows))])
		}
	} else {
		for _, idx := range s.rng.Perm(len(s.rows))[:n] {
			picked = append(picked, s.rows[idx])
		}
	}
	return &Sample{Columns: s.cols, Rows: picked}, nil
}

// Stratified draws n rows proportionally to the value distribution of
// a column, adjusting rounding drift on the largest stratum.
func (s *Sampler) Stratified(n int, column string) (*Sample, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: sample size must be a positive integer, got %d", domain.ErrInvalidValue, n)
	}
	if !s.hasColumn(column) {
		return nil, fmt.Errorf("%w: column %q does not exist", domain.ErrInvalidValue, column)
	}
	if n > len(s.rows) {
		return nil, fmt.Errorf("%w: sample size %d exceeds number of available rows %d",
			domain.ErrInvalidValue, n, len(s.rows))
	}

	keys, groups := s.groupBy(column)

	counts := make([]int, len(keys))
	total := 0
	for i, k := range keys {
		counts[i] = len(groups[k])
		total += counts[i]
	}

	adjusted := make([]int, len(keys))
	sum, largest := 0, 0
	for i, c := range counts {
		adjusted[i] = int(math.Round(float64(c) / float64(total) * float64(n)))
		sum += adjusted[i]
		if adjusted[i] > adjusted[largest] {
			largest = i
		}
	}
	adjusted[largest] += n - sum

	picked := make([]domain.Row, 0, n)
	for i, k := range keys {
		group := groups[k]
		take := adjusted[i]
		if take > len(group) {
			take = len(group)
		}
		if take <= 0 {
			continue
		}
		for _, idx := range s.rng.Perm(len(group))[:take] {
			picked = append(picked, group[idx])
		}
	}
	return &Sample{Columns: s.cols, Rows: picked}, nil
}

// Systematic draws n rows at a fixed interval, wrapping around and
// skipping rows already taken.
func (s *Sampler) Systematic(interval, n int) (*Sample, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("%w: interval must be a positive integer, got %d", domain.ErrInvalidValue, interval)
	}
	if n <= 0 {
		return nil, fmt.Errorf("%w: sample size must be a positive integer, got %d", domain.ErrInvalidValue, n)
	}
	if n > len(s.rows) {
		return nil, fmt.Errorf("%w: sample size %d exceeds number of available rows %d",
			domain.ErrInvalidValue, n, len(s.rows))
	}
	if interval >= len(s.rows) {
		return nil, fmt.Errorf("%w: interval %d is too large for %d rows",
			domain.ErrInvalidValue, interval, len(s.rows))
	}

	taken := make(map[int]bool, n)
	picked := make([]domain.Row, 0, n)
	idx := 0
	for len(picked) < n {
		for taken[idx%len(s.rows)] {
			idx++
		}
		pos := idx % len(s.rows)
		taken[pos] = true
		picked = append(picked, s.rows[pos])
		idx += interval
	}
	return &Sample{Columns: s.cols, Rows: picked}, nil
}

// Cluster picks n whole groups defined by a column and returns every
// row of the selected groups.
func (s *Sampler) Cluster(groupBy string, n int) (*Sample, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: cluster count must be a positive integer, got %d", domain.ErrInvalidValue, n)
	}
	if !s.hasColumn(groupBy) {
		return nil, fmt.Errorf("%w: column %q does not exist", domain.ErrInvalidValue, groupBy)
	}

	keys, groups := s.groupBy(groupBy)
	if n > len(keys) {
		return nil, fmt.Errorf("%w: %d clusters requested but only %d groups available",
			domain.ErrInvalidValue, n, len(keys))
	}

	var picked []domain.Row
	for _, idx := range s.rng.Perm(len(keys))[:n] {
		picked = append(picked, groups[keys[idx]]...)
	}
	return &Sample{Columns: s.cols, Rows: picked}, nil
}

// Rename relabels every column in order. The replacement list must
// match the column count and may not reuse a label already held by a
// different column.
func (s *Sampler) Rename(names []string) error {
	if len(names) != len(s.cols) {
		return fmt.Errorf("%w: expected %d column names, got %d", domain.ErrInvalidValue, len(s.cols), len(names))
	}
	for i, name := range names {
		if name != s.cols[i] && s.hasColumn(name) {
			return fmt.Errorf("%w: cannot rename to existing column %q", domain.ErrInvalidValue, name)
		}
	}

	mapping := make(map[string]string, len(names))
	for i, old := range s.cols {
		mapping[old] = names[i]
	}
	s.applyRename(mapping)
	return nil
}

// RenameMap relabels a subset of columns, old name to new name.
func (s *Sampler) RenameMap(mapping map[string]string) error {
	for old, neu := range mapping {
		if !s.hasColumn(old) {
			return fmt.Errorf("%w: column %q does not exist", domain.ErrInvalidValue, old)
		}
		if neu != old && s.hasColumn(neu) {
			return fmt.Errorf("%w: cannot rename %q to existing column %q", domain.ErrInvalidValue, old, neu)
		}
	}
	s.applyRename(mapping)
	return nil
}

func (s *Sampler) applyRename(mapping map[string]string) {
	for i, col := range s.cols {
		if neu, ok := mapping[col]; ok {
			s.cols[i] = neu
		}
	}
	for i, row := range s.rows {
		rebuilt := make(domain.Row, len(row))
		for key, v := range row {
			if neu, ok := mapping[key]; ok {
				key = neu
			}
			rebuilt[key] = v
		}
		s.rows[i] = rebuilt
	}
}

func (s *Sampler) Table(returnString bool) (string, error) {
	return presenter.RenderText(s.cols, s.rows, returnString)
}

func (s *Sampler) Save(format, path string) error {
	return presenter.Save(s.rows, s.cols, format, path)
}

func (s *Sampler) hasColumn(name string) bool {
	for _, c := range s.cols {
		if c == name {
			return true
		}
	}
	return false
}

// groupBy splits rows by a column's stringified value, preserving
// first-seen key order.
func (s *Sampler) groupBy(column string) ([]string, map[string][]domain.Row) {
	var keys []string
	groups := make(map[string][]domain.Row)
	for _, row := range s.rows {
		k := fmt.Sprint(row[column])
		if _, ok := groups[k]; !ok {
			keys = append(keys, k)
		}
		groups[k] = append(groups[k], row)
	}
	return keys, groups
}
