// Package synth produces one value per field kind. Generation rules
// (default ranges, bound swapping, probabilities) live here; raw
// locale primitives come from the backend.
package synth

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/mmatos/tabula/internal/backend"
	"github.com/mmatos/tabula/internal/domain"
	"github.com/mmatos/tabula/internal/timeutil"
)

const (
	defaultMinAge = 18
	defaultMaxAge = 90

	// Default dates fall within the ten years ending now.
	defaultDateYears = 10
)

// Order-of-magnitude bases for default price generation. The matching
// upper bound is the largest number with the same digit count.
var priceBases = []float64{1, 10, 100, 1_000, 10_000, 100_000, 1_000_000}

type Synthesizer struct {
	rng *rand.Rand
	b   backend.Backend
}

func New(rng *rand.Rand, b backend.Backend) *Synthesizer {
	return &Synthesizer{rng: rng, b: b}
}

// Value synthesizes one cell. The partially built row is consulted so
// email can derive from the same row's name; index is the 0-based row
// ordinal used by the id field.
func (s *Synthesizer) Value(kind domain.FieldKind, params map[string]any, row domain.Row, index int) (any, error) {
	switch kind {
	case domain.FieldID:
		return index, nil
	case domain.FieldName:
		return s.b.FullName(s.rng), nil
	case domain.FieldEmail:
		name, ok := row[string(domain.FieldName)].(string)
		if !ok {
			name = s.b.FullName(s.rng)
		}
		return backend.DeriveEmail(s.rng, s.b, name), nil
	case domain.FieldAge:
		return s.age(params), nil
	case domain.FieldPrice:
		return s.price(params), nil
	case domain.FieldDate:
		return s.date(params)
	case domain.FieldBoolean:
		return s.boolean(params), nil
	case domain.FieldPhone:
		return s.b.Phone(s.rng), nil
	case domain.FieldAddress:
		return s.b.Address(s.rng), nil
	case domain.FieldJob:
		return s.b.Job(s.rng), nil
	case domain.FieldTime:
		return s.b.TimeOfDay(s.rng), nil
	case domain.FieldCPF, domain.FieldSSN:
		return s.b.PersonID(s.rng), nil
	case domain.FieldCNPJ, domain.FieldEIN:
		return s.b.CompanyID(s.rng), nil
	}
	return nil, fmt.Errorf("%w: no synthesizer for field kind %q", domain.ErrInvalidValue, kind)
}

// age returns a uniform integer in [minAge, maxAge], swapping reversed
// bounds. Missing or equal bounds fall back to [18, 90].
func (s *Synthesizer) age(params map[string]any) int {
	lo, okLo := intParam(params, domain.ParamMinAge)
	hi, okHi := intParam(params, domain.ParamMaxAge)
	if !okLo || !okHi || lo == hi {
		lo, hi = defaultMinAge, defaultMaxAge
	} else if lo > hi {
		lo, hi = hi, lo
	}
	return lo + s.rng.Intn(hi-lo+1)
}

// price returns a uniform value in [minPrice, maxPrice] rounded to two
// decimals, swapping reversed bounds. Without bounds it picks a random
// order-of-magnitude base and stays within that digit count.
func (s *Synthesizer) price(params map[string]any) float64 {
	lo, okLo := floatParam(params, domain.ParamMinPrice)
	hi, okHi := floatParam(params, domain.ParamMaxPrice)
	if !okLo || !okHi || lo == hi {
		base := priceBases[s.rng.Intn(len(priceBases))]
		upper := math.Pow10(int(math.Round(math.Log10(base)))+1) - 1
		return round2(base + s.rng.Float64()*(upper-base))
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	return round2(lo + s.rng.Float64()*(hi-lo))
}

// date returns a uniform date in [minDate, maxDate], swapping reversed
// bounds; unparseable bounds are rejected. Missing or equal bounds fall
// back to the ten years ending now.
func (s *Synthesizer) date(params map[string]any) (time.Time, error) {
	loStr, okLo := stringParam(params, domain.ParamMinDate)
	hiStr, okHi := stringParam(params, domain.ParamMaxDate)
	if !okLo || !okHi || loStr == hiStr {
		return timeutil.DateBetween(s.rng, timeutil.YearsAgo(defaultDateYears), time.Now()), nil
	}
	lo, err := timeutil.ParseDate(loStr)
	if err != nil {
		return time.Time{}, err
	}
	hi, err := timeutil.ParseDate(hiStr)
	if err != nil {
		return time.Time{}, err
	}
	return timeutil.DateBetween(s.rng, lo, hi), nil
}

// boolean returns 1 with trueChance percent probability (default 50).
func (s *Synthesizer) boolean(params map[string]any) int {
	chance, ok := floatParam(params, domain.ParamTrueChance)
	if !ok {
		chance = 50
	}
	if s.rng.Float64()*100 < chance {
		return 1
	}
	return 0
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func intParam(params map[string]any, key string) (int, bool) {
	v, ok := params[key]
	if !ok || v == nil {
		return 0, false
	}
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	}
	return 0, false
}

func floatParam(params map[string]any, key string) (float64, bool) {
	v, ok := params[key]
	if !ok || v == nil {
		return 0, false
	}
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

func stringParam(params map[string]any, key string) (string, bool) {
	v, ok := params[key]
	if !ok || v == nil {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}
