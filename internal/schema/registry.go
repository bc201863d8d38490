// Package schema validates and orders column specifications before any
// row is generated.
package schema

import (
	"fmt"

	"github.com/mmatos/tabula/internal/domain"
)

// Registry holds the ordered column list of one generator. It rejects
// kinds that are illegal for the locale, duplicate additions, and
// malformed parameters; a failed Add leaves the list unchanged.
type Registry struct {
	locale domain.Locale
	fields map[domain.FieldKind]struct{}
	cols   []domain.ColumnSpec

	// original records the names in the order they were first added,
	// before any normalization; schema equality and concatenation
	// checks work against this.
	original []string
}

func NewRegistry(locale domain.Locale, fields map[domain.FieldKind]struct{}) *Registry {
	return &Registry{locale: locale, fields: fields}
}

// Add appends a column spec after validating kind and parameters.
func (r *Registry) Add(kind domain.FieldKind, params map[string]any) error {
	if _, ok := r.fields[kind]; !ok {
		return fmt.Errorf("%w: column %q is not available for locale %s",
			domain.ErrInvalidValue, kind, r.locale)
	}
	for _, c := range r.cols {
		if c.Name == kind {
			return fmt.Errorf("%w: column %q already added", domain.ErrInvalidValue, kind)
		}
	}
	if err := validateParams(kind, params); err != nil {
		return err
	}
	r.cols = append(r.cols, domain.ColumnSpec{Name: kind, Params: params})
	r.original = append(r.original, string(kind))
	return nil
}

// Remove drops a column by name, from both the current order and the
// declared order.
func (r *Registry) Remove(name string) error {
	for i, c := range r.cols {
		if string(c.Name) == name {
			r.cols = append(r.cols[:i], r.cols[i+1:]...)
			for j, orig := range r.original {
				if orig == name {
					r.original = append(r.original[:j], r.original[j+1:]...)
					break
				}
			}
			return nil
		}
	}
	return fmt.Errorf("%w: column %q does not exist", domain.ErrInvalidValue, name)
}

// Normalize moves the identity-like columns (id, name, email) to the
// front of the column order, preserving their relative order. Identity
// columns read better first in exports regardless of insertion order;
// this is a deliberate global reordering, applied before each
// generation pass.
func (r *Registry) Normalize() {
	identity := make([]domain.ColumnSpec, 0, 3)
	rest := make([]domain.ColumnSpec, 0, len(r.cols))
	for _, c := range r.cols {
		switch c.Name {
		case domain.FieldID, domain.FieldName, domain.FieldEmail:
			identity = append(identity, c)
		default:
			rest = append(rest, c)
		}
	}
	r.cols = append(identity, rest...)
}

// Columns returns the specs in current order.
func (r *Registry) Columns() []domain.ColumnSpec {
	return r.cols
}

// Names returns the column labels in current order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.cols))
	for i, c := range r.cols {
		names[i] = string(c.Name)
	}
	return names
}

// Original returns the labels in first-added order.
func (r *Registry) Original() []string {
	return r.original
}

func validateParams(kind domain.FieldKind, params map[string]any) error {
	switch kind {
	case domain.FieldPrice:
		if err := numericParam(params, domain.ParamMinPrice); err != nil {
			return err
		}
		return numericParam(params, domain.ParamMaxPrice)
	case domain.FieldDate:
		if err := stringParam(params, domain.ParamMinDate); err != nil {
			return err
		}
		return stringParam(params, domain.ParamMaxDate)
	case domain.FieldAge:
		if err := integerParam(params, domain.ParamMinAge); err != nil {
			return err
		}
		return integerParam(params, domain.ParamMaxAge)
	case domain.FieldBoolean:
		if err := numericParam(params, domain.ParamTrueChance); err != nil {
			return err
		}
		if v, ok := params[domain.ParamTrueChance]; ok && v != nil {
			c := asFloat(v)
			if c < 0 || c > 100 {
				return fmt.Errorf("%w: %s must be between 0 and 100", domain.ErrInvalidValue, domain.ParamTrueChance)
			}
		}
	}
	return nil
}

func numericParam(params map[string]any, key string) error {
	v, ok := params[key]
	if !ok || v == nil {
		return nil
	}
	switch v.(type) {
	case int, int64, float64:
		return nil
	}
	return fmt.Errorf("%w: %s must be numeric, got %T", domain.ErrInvalidType, key, v)
}

func integerParam(params map[string]any, key string) error {
	v, ok := params[key]
	if !ok || v == nil {
		return nil
	}
	switch v.(type) {
	case int, int64:
		return nil
	}
	return fmt.Errorf("%w: %s must be an integer, got %T", domain.ErrInvalidType, key, v)
}

func stringParam(params map[string]any, key string) error {
	v, ok := params[key]
	if !ok || v == nil {
		return nil
	}
	if _, ok := v.(string); !ok {
		return fmt.Errorf("%w: %s must be a string, got %T", domain.ErrInvalidType, key, v)
	}
	return nil
}

func asFloat(v any) float64 {
	switch n := v.(type) {
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case float64:
		return n
	}
	return 0
}
