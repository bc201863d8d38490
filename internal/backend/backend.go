package backend

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"sync"

	"github.com/mmatos/tabula/internal/domain"
)

// Backend supplies locale-correct primitive fake values. One method per
// primitive keeps missing-locale support a compile-time concern instead
// of a runtime name lookup.
type Backend interface {
	FullName(rng *rand.Rand) string
	Address(rng *rand.Rand) string
	Job(rng *rand.Rand) string
	Phone(rng *rand.Rand) string
	// PersonID is the per-person tax identifier (CPF, SSN).
	PersonID(rng *rand.Rand) string
	// CompanyID is the per-company tax identifier (CNPJ, EIN).
	CompanyID(rng *rand.Rand) string
	FreeEmail(rng *rand.Rand) string
	EmailDomain(rng *rand.Rand) string
	TimeOfDay(rng *rand.Rand) string
}

type entry struct {
	build  func(seed int64) Backend
	fields map[domain.FieldKind]struct{}
}

// Registry maps locales to backend constructors and their legal field sets.
type Registry struct {
	mu      sync.RWMutex
	entries map[domain.Locale]entry
}

func NewRegistry() *Registry {
	return &Registry{entries: make(map[domain.Locale]entry)}
}

func (r *Registry) Register(locale domain.Locale, build func(seed int64) Backend, fields []domain.FieldKind) {
	set := make(map[domain.FieldKind]struct{}, len(fields))
	for _, f := range fields {
		set[f] = struct{}{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[locale] = entry{build: build, fields: set}
}

// For builds the backend for a locale, seeding its randomness.
func (r *Registry) For(locale domain.Locale, seed int64) (Backend, error) {
	r.mu.RLock()
	e, ok := r.entries[locale]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: unsupported locale %q, choose one of %s",
			domain.ErrInvalidValue, locale, strings.Join(r.Locales(), ", "))
	}
	return e.build(seed), nil
}

// Fields returns the set of field kinds legal for a locale.
func (r *Registry) Fields(locale domain.Locale) (map[domain.FieldKind]struct{}, error) {
	r.mu.RLock()
	e, ok := r.entries[locale]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: unsupported locale %q, choose one of %s",
			domain.ErrInvalidValue, locale, strings.Join(r.Locales(), ", "))
	}
	return e.fields, nil
}

func (r *Registry) Locales() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.entries))
	for l := range r.entries {
		names = append(names, string(l))
	}
	sort.Strings(names)
	return names
}

var commonFields = []domain.FieldKind{
	domain.FieldID, domain.FieldName, domain.FieldEmail, domain.FieldAge,
	domain.FieldPrice, domain.FieldPhone, domain.FieldAddress, domain.FieldJob,
	domain.FieldDate, domain.FieldTime, domain.FieldBoolean,
}

func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(domain.LocaleBrazil, newBrazil,
		append([]domain.FieldKind{domain.FieldCPF, domain.FieldCNPJ}, commonFields...))
	r.Register(domain.LocaleUSA, newUSA,
		append([]domain.FieldKind{domain.FieldSSN, domain.FieldEIN}, commonFields...))
	return r
}
