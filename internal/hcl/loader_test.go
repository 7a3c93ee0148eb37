package hcl

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeCatalog writes the given files into a fresh temp dir and returns it.
func writeCatalog(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	return dir
}

func TestLoadSingleFile(t *testing.T) {
	dir := writeCatalog(t, map[string]string{
		"catalog.hcl": `
component "iron" {
  producer = "infinite"
}

component "gear" {
  seconds     = 0.5
  producer    = "machine"
  ingredients = {
    iron = 2
  }
}

speeds {
  machine = 1.25
}
`,
	})

	model, err := NewLoader().Load(context.Background(), filepath.Join(dir, "catalog.hcl"))
	require.NoError(t, err)

	require.Len(t, model.Components, 2)

	iron := model.Components[0]
	assert.Equal(t, "iron", iron.Name)
	assert.Nil(t, iron.Seconds)
	assert.Empty(t, iron.Ingredients)
	assert.Equal(t, "infinite", iron.Producer)

	gear := model.Components[1]
	assert.Equal(t, "gear", gear.Name)
	require.NotNil(t, gear.Seconds)
	assert.InDelta(t, 0.5, *gear.Seconds, 1e-12)
	assert.Equal(t, map[string]float64{"iron": 2}, gear.Ingredients)
	assert.Equal(t, "machine", gear.Producer)

	assert.Equal(t, map[string]float64{"machine": 1.25}, model.Speeds)
}

func TestLoadDirectoryOrder(t *testing.T) {
	// Files must be merged in sorted path order so declaration order, and
	// with it registration order, is deterministic.
	dir := writeCatalog(t, map[string]string{
		"01_raw.hcl": `
component "iron" {}
component "copper" {}
`,
		"02_parts.hcl": `
component "cable" {
  seconds     = 0.25
  producer    = "machine"
  ingredients = { copper = 0.5 }
}
`,
	})

	model, err := NewLoader().Load(context.Background(), dir)
	require.NoError(t, err)

	require.Len(t, model.Components, 3)
	names := []string{model.Components[0].Name, model.Components[1].Name, model.Components[2].Name}
	assert.Equal(t, []string{"iron", "copper", "cable"}, names)

	// A bare block is a raw resource with the infinite producer.
	assert.Equal(t, "infinite", model.Components[0].Producer)
}

func TestLoadFractionalIngredients(t *testing.T) {
	dir := writeCatalog(t, map[string]string{
		"catalog.hcl": `
component "water" {}
component "gas" {}

component "sulfur" {
  seconds     = 0.5
  producer    = "chem_plant"
  ingredients = {
    water = 15
    gas   = 15
  }
}
`,
	})

	model, err := NewLoader().Load(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, model.Components, 3)
	assert.Equal(t, map[string]float64{"water": 15, "gas": 15}, model.Components[2].Ingredients)
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing path", func(t *testing.T) {
		_, err := NewLoader().Load(context.Background(), filepath.Join(t.TempDir(), "nope.hcl"))
		require.Error(t, err)
		assert.ErrorContains(t, err, "error accessing catalog path")
	})

	t.Run("no hcl files", func(t *testing.T) {
		_, err := NewLoader().Load(context.Background(), t.TempDir())
		require.Error(t, err)
		assert.ErrorContains(t, err, "no .hcl catalog files")
	})

	t.Run("syntax error", func(t *testing.T) {
		dir := writeCatalog(t, map[string]string{
			"broken.hcl": `component "iron" {`,
		})
		_, err := NewLoader().Load(context.Background(), dir)
		require.Error(t, err)
		assert.ErrorContains(t, err, "failed to parse")
	})

	t.Run("non-numeric quantity", func(t *testing.T) {
		dir := writeCatalog(t, map[string]string{
			"bad.hcl": `
component "iron" {}
component "gear" {
  seconds     = 0.5
  ingredients = { iron = "two" }
}
`,
		})
		_, err := NewLoader().Load(context.Background(), dir)
		require.Error(t, err)
		assert.ErrorContains(t, err, "invalid ingredients")
	})

	t.Run("ingredients not a map", func(t *testing.T) {
		dir := writeCatalog(t, map[string]string{
			"bad.hcl": `
component "gear" {
  seconds     = 0.5
  ingredients = ["iron"]
}
`,
		})
		_, err := NewLoader().Load(context.Background(), dir)
		require.Error(t, err)
		assert.ErrorContains(t, err, "expected a map of quantities")
	})
}
