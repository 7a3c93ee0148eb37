package engine

import "fmt"

// ProducersNeeded computes how many concurrent producers of each kind are
// required to sustain production of units of the named component every
// seconds seconds, across the full ingredient chain.
//
// Raw resources never appear in the result: with no craft time there is
// nothing to run in parallel. Counts are fractional on purpose — callers
// may aggregate several queries before rounding, so ceiling to whole
// producers is a presentation concern (see the report package).
func (e *Engine) ProducersNeeded(name string, units, seconds float64, speeds SpeedTable) (map[string]float64, error) {
	if seconds <= 0 {
		return nil, fmt.Errorf("%w: time window is %v seconds, must be positive", ErrInvalidRate, seconds)
	}
	if err := speeds.Validate(); err != nil {
		return nil, err
	}

	targetRate := units / seconds

	totals, err := e.Summarize(name)
	if err != nil {
		return nil, err
	}

	producers := make(map[string]float64)
	for compName, totalQty := range totals {
		comp, err := e.cat.Get(compName)
		if err != nil {
			return nil, err
		}
		if comp.Raw() {
			continue
		}

		effectiveRate := (1 / *comp.Seconds) * speeds.multiplier(comp.Producer)
		requiredPerSecond := totalQty * targetRate
		producers[compName] = requiredPerSecond / effectiveRate
	}
	return producers, nil
}

// CombinedProducersNeeded computes producer counts for a bill of materials:
// targets maps component names to the quantity of each to produce every
// seconds seconds. Counts are resolved per target independently and summed
// by component name.
func (e *Engine) CombinedProducersNeeded(targets map[string]float64, seconds float64, speeds SpeedTable) (map[string]float64, error) {
	producers := make(map[string]float64)

	for name, units := range targets {
		perTarget, err := e.ProducersNeeded(name, units, seconds, speeds)
		if err != nil {
			return nil, fmt.Errorf("resolving target %q: %w", name, err)
		}
		for compName, count := range perTarget {
			producers[compName] += count
		}
	}
	return producers, nil
}
