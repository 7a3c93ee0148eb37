package cli

import (
	"fmt"
	"strconv"
	"strings"
)

// quantityList is a repeatable flag.Value collecting 'name' or
// 'name=number' pairs into a map. A bare name gets quantity 1, so
// `-target rocket` plans one rocket per window.
type quantityList map[string]float64

// String implements flag.Value.
func (q *quantityList) String() string {
	if q == nil || len(*q) == 0 {
		return ""
	}
	parts := make([]string, 0, len(*q))
	for name, qty := range *q {
		parts = append(parts, fmt.Sprintf("%s=%v", name, qty))
	}
	return strings.Join(parts, ",")
}

// Set implements flag.Value. Repeating a name accumulates quantities.
func (q *quantityList) Set(value string) error {
	if *q == nil {
		*q = make(map[string]float64)
	}

	name, raw, hasValue := strings.Cut(value, "=")
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("empty name in %q", value)
	}

	qty := 1.0
	if hasValue {
		parsed, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return fmt.Errorf("invalid number %q for %q", raw, name)
		}
		qty = parsed
	}

	(*q)[name] += qty
	return nil
}

// multiplierList is a repeatable flag.Value collecting 'name=number'
// pairs, last value winning. Unlike quantityList, the number is required:
// a multiplier has no sensible default.
type multiplierList map[string]float64

// String implements flag.Value.
func (m *multiplierList) String() string {
	return (*quantityList)(m).String()
}

// Set implements flag.Value.
func (m *multiplierList) Set(value string) error {
	if *m == nil {
		*m = make(map[string]float64)
	}

	name, raw, hasValue := strings.Cut(value, "=")
	name = strings.TrimSpace(name)
	if name == "" || !hasValue {
		return fmt.Errorf("expected 'category=multiplier', got %q", value)
	}

	multiplier, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return fmt.Errorf("invalid number %q for %q", raw, name)
	}

	(*m)[name] = multiplier
	return nil
}
