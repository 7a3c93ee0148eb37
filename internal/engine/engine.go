package engine

import (
	"errors"

	gocache "github.com/patrickmn/go-cache"

	"github.com/specialistvlad/craftplan/internal/catalog"
)

var (
	// ErrInvalidRate is returned when a rate query is given a non-positive
	// time window or a non-positive speed multiplier. Rejecting these at
	// the boundary is what keeps division by zero out of the math below.
	ErrInvalidRate = errors.New("invalid rate")

	// ErrDepthExceeded is returned when an ingredient chain is deeper than
	// maxDepth. Catalogs built through Register can never trigger it; the
	// limit exists to fail loudly instead of overflowing the call stack.
	ErrDepthExceeded = errors.New("ingredient chain too deep")
)

// maxDepth bounds the recursion in Summarize. Real catalogs top out at a
// chain depth in the low tens.
const maxDepth = 512

// Engine answers resolution queries against a single immutable catalog.
type Engine struct {
	cat *catalog.Catalog

	// memo caches Summarize results per component name. Summaries are
	// pure functions of already-finalized definitions, so entries never
	// expire. Cached maps are cloned on the way in and out.
	memo *gocache.Cache
}

// New creates an engine over the given catalog. The catalog must not be
// mutated after the engine starts serving queries.
func New(cat *catalog.Catalog) *Engine {
	return &Engine{
		cat:  cat,
		memo: gocache.New(gocache.NoExpiration, 0),
	}
}

// cloneTotals copies a totals map so that neither the memo cache nor a
// caller can observe the other's mutations.
func cloneTotals(totals map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(totals))
	for name, qty := range totals {
		out[name] = qty
	}
	return out
}
