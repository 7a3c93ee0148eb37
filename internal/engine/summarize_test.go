package engine

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specialistvlad/craftplan/internal/catalog"
)

// buildCatalog registers components in order and fails the test on any error.
func buildCatalog(t *testing.T, components ...*catalog.Component) *catalog.Catalog {
	t.Helper()
	cat := catalog.New()
	for _, comp := range components {
		require.NoError(t, cat.Register(comp))
	}
	return cat
}

func TestSummarizeIdentity(t *testing.T) {
	cat := buildCatalog(t, &catalog.Component{Name: "iron", Producer: catalog.Infinite})
	e := New(cat)

	totals, err := e.Summarize("iron")
	require.NoError(t, err)

	// A component with no ingredients summarizes to just itself.
	assert.Empty(t, cmp.Diff(map[string]float64{"iron": 1}, totals))
}

func TestSummarizeAdditivity(t *testing.T) {
	cat := buildCatalog(t,
		&catalog.Component{Name: "a", Producer: catalog.Infinite},
		&catalog.Component{Name: "b", Producer: catalog.Infinite},
		&catalog.Component{
			Name:        "c",
			Seconds:     catalog.Seconds(1),
			Ingredients: map[string]float64{"a": 2, "b": 3},
			Producer:    catalog.Machine,
		},
	)
	e := New(cat)

	totals, err := e.Summarize("c")
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(map[string]float64{"c": 1, "a": 2, "b": 3}, totals))
}

func TestSummarizeScalesThroughNestedRatios(t *testing.T) {
	cat := buildCatalog(t,
		&catalog.Component{Name: "r", Producer: catalog.Infinite},
		&catalog.Component{
			Name:        "x",
			Seconds:     catalog.Seconds(1),
			Ingredients: map[string]float64{"r": 5},
			Producer:    catalog.Machine,
		},
		&catalog.Component{
			Name:        "y",
			Seconds:     catalog.Seconds(1),
			Ingredients: map[string]float64{"x": 2},
			Producer:    catalog.Machine,
		},
	)
	e := New(cat)

	totals, err := e.Summarize("y")
	require.NoError(t, err)

	// y needs 2 x, each x needs 5 r, so y transitively needs 10 r.
	assert.Empty(t, cmp.Diff(map[string]float64{"y": 1, "x": 2, "r": 10}, totals))
}

func TestSummarizeSumsSharedIngredients(t *testing.T) {
	// Diamond shape: d uses both b and c, which both use a.
	cat := buildCatalog(t,
		&catalog.Component{Name: "a", Producer: catalog.Infinite},
		&catalog.Component{
			Name:        "b",
			Seconds:     catalog.Seconds(1),
			Ingredients: map[string]float64{"a": 3},
			Producer:    catalog.Machine,
		},
		&catalog.Component{
			Name:        "c",
			Seconds:     catalog.Seconds(1),
			Ingredients: map[string]float64{"a": 4},
			Producer:    catalog.Machine,
		},
		&catalog.Component{
			Name:        "d",
			Seconds:     catalog.Seconds(1),
			Ingredients: map[string]float64{"b": 1, "c": 2},
			Producer:    catalog.Machine,
		},
	)
	e := New(cat)

	totals, err := e.Summarize("d")
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(map[string]float64{"d": 1, "b": 1, "c": 2, "a": 11}, totals))
}

func TestSummarizeFractionalQuantities(t *testing.T) {
	cat := buildCatalog(t,
		&catalog.Component{Name: "water", Producer: catalog.Infinite},
		&catalog.Component{
			Name:        "acid",
			Seconds:     catalog.Seconds(0.02),
			Ingredients: map[string]float64{"water": 2},
			Producer:    catalog.Machine,
		},
		&catalog.Component{
			Name:        "cell",
			Seconds:     catalog.Seconds(4),
			Ingredients: map[string]float64{"acid": 0.5},
			Producer:    catalog.ChemPlant,
		},
	)
	e := New(cat)

	totals, err := e.Summarize("cell")
	require.NoError(t, err)
	assert.InDelta(t, 0.5, totals["acid"], 1e-12)
	assert.InDelta(t, 1.0, totals["water"], 1e-12)
}

func TestSummarizeUnknownComponent(t *testing.T) {
	e := New(catalog.New())
	_, err := e.Summarize("nothing")
	require.Error(t, err)
	assert.ErrorIs(t, err, catalog.ErrUnknownComponent)
}

// TestSummarizeResultIsolated verifies that mutating a returned summary
// cannot corrupt later queries through the memo cache.
func TestSummarizeResultIsolated(t *testing.T) {
	cat := buildCatalog(t,
		&catalog.Component{Name: "iron", Producer: catalog.Infinite},
		&catalog.Component{
			Name:        "gear",
			Seconds:     catalog.Seconds(0.5),
			Ingredients: map[string]float64{"iron": 2},
			Producer:    catalog.Machine,
		},
	)
	e := New(cat)

	first, err := e.Summarize("gear")
	require.NoError(t, err)
	first["iron"] = 9999
	delete(first, "gear")

	second, err := e.Summarize("gear")
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(map[string]float64{"gear": 1, "iron": 2}, second))
}

// TestSummarizeMemoReuse checks that repeated queries agree when the memo
// cache is warm, including queries that enter the chain at a lower level.
func TestSummarizeMemoReuse(t *testing.T) {
	cat := buildCatalog(t,
		&catalog.Component{Name: "r", Producer: catalog.Infinite},
		&catalog.Component{
			Name:        "mid",
			Seconds:     catalog.Seconds(1),
			Ingredients: map[string]float64{"r": 2},
			Producer:    catalog.Machine,
		},
		&catalog.Component{
			Name:        "top",
			Seconds:     catalog.Seconds(1),
			Ingredients: map[string]float64{"mid": 3},
			Producer:    catalog.Machine,
		},
	)
	e := New(cat)

	top, err := e.Summarize("top")
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(map[string]float64{"top": 1, "mid": 3, "r": 6}, top))

	// "mid" was cached as a side effect of resolving "top".
	mid, err := e.Summarize("mid")
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(map[string]float64{"mid": 1, "r": 2}, mid))
}

func TestSummarizeDepthLimit(t *testing.T) {
	cat := catalog.New()
	require.NoError(t, cat.Register(&catalog.Component{Name: "c0", Producer: catalog.Infinite}))
	for i := 1; i <= maxDepth+2; i++ {
		require.NoError(t, cat.Register(&catalog.Component{
			Name:        chainName(i),
			Seconds:     catalog.Seconds(1),
			Ingredients: map[string]float64{chainName(i - 1): 1},
			Producer:    catalog.Machine,
		}))
	}
	e := New(cat)

	_, err := e.Summarize(chainName(maxDepth + 2))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDepthExceeded)
}

func chainName(i int) string {
	return fmt.Sprintf("c%d", i)
}
