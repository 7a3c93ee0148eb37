package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCeil(t *testing.T) {
	// Any fractional requirement needs a whole extra unit; exact values
	// stay as they are.
	assert.EqualValues(t, 3, Ceil(2.01))
	assert.EqualValues(t, 2, Ceil(2.00))
	assert.EqualValues(t, 1, Ceil(0.001))
	assert.EqualValues(t, 0, Ceil(0))
}

func TestHumanize(t *testing.T) {
	var buf bytes.Buffer
	Humanize(&buf, map[string]float64{
		"gear": 2.01,
		"belt": 2.00,
		"iron": 1234567.5,
	})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)

	// Output is sorted by name so runs are diffable.
	assert.Equal(t, "belt : 2", lines[0])
	assert.Equal(t, "gear : 3", lines[1])
	assert.Equal(t, "iron : 1,234,568", lines[2])
}

func TestHumanizeEmpty(t *testing.T) {
	var buf bytes.Buffer
	Humanize(&buf, nil)
	assert.Empty(t, buf.String())
}

func TestTable(t *testing.T) {
	var buf bytes.Buffer
	Table(&buf, "producers for gear @ 1/s", map[string]float64{"gear": 2.01})

	out := buf.String()
	assert.Contains(t, out, "producers for gear @ 1/s")
	assert.Contains(t, out, "gear")
	assert.Contains(t, out, "2.010")
	assert.Contains(t, out, "3")
}
