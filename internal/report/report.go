// Package report renders resolution results for humans. Rounding lives
// here and nowhere else: the engine always returns fractional values so
// that callers can aggregate before rounding.
package report

import (
	"fmt"
	"io"
	"math"
	"sort"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
)

// Ceil rounds a requirement up to the whole units the real world deals
// in: a fractional producer must be covered by one more whole producer.
func Ceil(quantity float64) int64 {
	return int64(math.Ceil(quantity))
}

// sortedNames returns the keys of totals in lexical order so output is
// stable across runs.
func sortedNames(totals map[string]float64) []string {
	names := make([]string, 0, len(totals))
	for name := range totals {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Humanize writes one "name : count" line per entry, quantities rounded
// up and comma-grouped.
func Humanize(w io.Writer, totals map[string]float64) {
	for _, name := range sortedNames(totals) {
		fmt.Fprintf(w, "%s : %s\n", name, humanize.Comma(Ceil(totals[name])))
	}
}

// Table renders totals as a table with both the exact fractional value
// and the rounded-up count.
func Table(w io.Writer, title string, totals map[string]float64) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetTitle(title)
	tw.AppendHeader(table.Row{"Component", "Exact", "Rounded Up"})

	for _, name := range sortedNames(totals) {
		qty := totals[name]
		tw.AppendRow(table.Row{name, fmt.Sprintf("%.3f", qty), humanize.Comma(Ceil(qty))})
	}
	tw.Render()
}
