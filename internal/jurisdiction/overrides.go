package jurisdiction

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Overrides replaces published rates for a filing period, typically loaded
// from the quarterly rate matrix.
//
//	effective_quarter: 2024Q4
//	rates:
//	  GA: "0.351"
//	  IN: "0.610"
type Overrides struct {
	EffectiveQuarter string                     `yaml:"effective_quarter"`
	Rates            map[string]decimal.Decimal `yaml:"-"`
}

type overridesFile struct {
	EffectiveQuarter string            `yaml:"effective_quarter"`
	Rates            map[string]string `yaml:"rates"`
}

// ParseOverrides decodes override YAML.
func ParseOverrides(data []byte) (Overrides, error) {
	var raw overridesFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Overrides{}, fmt.Errorf("failed to parse rate overrides: %w", err)
	}

	o := Overrides{
		EffectiveQuarter: raw.EffectiveQuarter,
		Rates:            make(map[string]decimal.Decimal, len(raw.Rates)),
	}
	for code, v := range raw.Rates {
		rate, err := decimal.NewFromString(v)
		if err != nil {
			return Overrides{}, fmt.Errorf("invalid rate for %s: %w", code, err)
		}
		o.Rates[code] = rate
	}
	return o, nil
}

// LoadOverrides reads and decodes an override file.
func LoadOverrides(path string) (Overrides, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Overrides{}, fmt.Errorf("failed to read rate overrides: %w", err)
	}
	return ParseOverrides(data)
}

// Load returns the built-in registry, with overrides from path applied when path is set.
func Load(path string) (*Registry, error) {
	r := Default()
	if path == "" {
		return r, nil
	}
	o, err := LoadOverrides(path)
	if err != nil {
		return nil, err
	}
	return r.WithOverrides(o)
}
