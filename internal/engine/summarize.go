package engine

import (
	"fmt"

	gocache "github.com/patrickmn/go-cache"
)

// Summarize computes the total quantity of every component needed,
// transitively, to build one unit of the named component from scratch.
//
// The result always contains the queried component itself with quantity 1.
// Quantities multiply through nested ingredient ratios: if one unit needs
// 2 gears and each gear needs 2 iron, the total for iron includes 4.
// Iteration order of the returned map carries no meaning.
func (e *Engine) Summarize(name string) (map[string]float64, error) {
	totals, err := e.summarize(name, 0)
	if err != nil {
		return nil, err
	}
	return cloneTotals(totals), nil
}

// summarize is the memoized recursive accumulation. The map it returns is
// shared with the cache and must not be handed to callers directly.
func (e *Engine) summarize(name string, depth int) (map[string]float64, error) {
	if depth > maxDepth {
		return nil, fmt.Errorf("%w: %q exceeds %d levels", ErrDepthExceeded, name, maxDepth)
	}

	if cached, ok := e.memo.Get(name); ok {
		return cached.(map[string]float64), nil
	}

	comp, err := e.cat.Get(name)
	if err != nil {
		return nil, err
	}

	totals := map[string]float64{comp.Name: 1}
	for ingredient, qty := range comp.Ingredients {
		subTotals, err := e.summarize(ingredient, depth+1)
		if err != nil {
			return nil, fmt.Errorf("resolving ingredients of %q: %w", comp.Name, err)
		}
		for subName, subQty := range subTotals {
			totals[subName] += subQty * qty
		}
	}

	e.memo.Set(name, totals, gocache.NoExpiration)
	return totals, nil
}
