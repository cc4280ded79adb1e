package jurisdiction

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrNotFound is returned when a code is not a participating IFTA jurisdiction.
var ErrNotFound = errors.New("jurisdiction not found")

// Jurisdiction is one taxing authority (a US state or DC).
type Jurisdiction struct {
	Code                   string          `json:"code"`
	Name                   string          `json:"name"`
	TaxRatePerGallon       decimal.Decimal `json:"tax_rate_per_gallon"`
	HasElectronicFilingAPI bool            `json:"has_electronic_filing_api"`
}

// Registry is an immutable lookup table of jurisdictions, ordered by code.
type Registry struct {
	byCode           map[string]Jurisdiction
	ordered          []Jurisdiction
	effectiveQuarter string
}

// New builds a registry from the given entries. Codes must be unique and rates non-negative.
func New(effectiveQuarter string, entries []Jurisdiction) (*Registry, error) {
	r := &Registry{
		byCode:           make(map[string]Jurisdiction, len(entries)),
		ordered:          make([]Jurisdiction, 0, len(entries)),
		effectiveQuarter: effectiveQuarter,
	}

	for _, j := range entries {
		code := normalize(j.Code)
		if len(code) != 2 {
			return nil, fmt.Errorf("invalid jurisdiction code %q", j.Code)
		}
		if _, dup := r.byCode[code]; dup {
			return nil, fmt.Errorf("duplicate jurisdiction code %q", code)
		}
		if j.TaxRatePerGallon.IsNegative() {
			return nil, fmt.Errorf("negative tax rate for %s", code)
		}
		j.Code = code
		r.byCode[code] = j
		r.ordered = append(r.ordered, j)
	}

	sort.Slice(r.ordered, func(a, b int) bool { return r.ordered[a].Code < r.ordered[b].Code })
	return r, nil
}

// Default returns the registry loaded from the built-in rate table.
func Default() *Registry {
	r, err := New(defaultEffectiveQuarter, defaultTable)
	if err != nil {
		panic("jurisdiction: invalid built-in table: " + err.Error())
	}
	return r
}

// Lookup resolves a jurisdiction code, case-insensitively.
func (r *Registry) Lookup(code string) (Jurisdiction, error) {
	j, ok := r.byCode[normalize(code)]
	if !ok {
		return Jurisdiction{}, fmt.Errorf("%w: %q", ErrNotFound, code)
	}
	return j, nil
}

// Has reports whether code resolves.
func (r *Registry) Has(code string) bool {
	_, ok := r.byCode[normalize(code)]
	return ok
}

// All returns every jurisdiction ordered by code. The slice is a copy.
func (r *Registry) All() []Jurisdiction {
	out := make([]Jurisdiction, len(r.ordered))
	copy(out, r.ordered)
	return out
}

// Len is the number of jurisdictions in the registry.
func (r *Registry) Len() int {
	return len(r.ordered)
}

// EffectiveQuarter names the filing period the rates belong to, e.g. "2024Q3".
func (r *Registry) EffectiveQuarter() string {
	return r.effectiveQuarter
}

// WithOverrides returns a new registry with the override rates applied.
// The receiver is left untouched.
func (r *Registry) WithOverrides(o Overrides) (*Registry, error) {
	entries := r.All()
	index := make(map[string]int, len(entries))
	for i, j := range entries {
		index[j.Code] = i
	}

	for code, rate := range o.Rates {
		i, ok := index[normalize(code)]
		if !ok {
			return nil, fmt.Errorf("override for %q: %w", code, ErrNotFound)
		}
		if rate.IsNegative() {
			return nil, fmt.Errorf("override for %s: rate must not be negative", code)
		}
		entries[i].TaxRatePerGallon = rate
	}

	quarter := r.effectiveQuarter
	if o.EffectiveQuarter != "" {
		quarter = o.EffectiveQuarter
	}
	return New(quarter, entries)
}

func normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
