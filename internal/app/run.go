package app

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/specialistvlad/craftplan/internal/catalog"
	"github.com/specialistvlad/craftplan/internal/ctxlog"
	"github.com/specialistvlad/craftplan/internal/engine"
	"github.com/specialistvlad/craftplan/internal/report"
)

// Run executes the configured query and renders the result.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if a.config.Summarize {
		if err := a.runSummarize(ctx); err != nil {
			return err
		}
	} else {
		if err := a.runProducers(ctx); err != nil {
			return err
		}
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// runSummarize renders the transitive ingredient totals for one unit of
// each target component.
func (a *App) runSummarize(ctx context.Context) error {
	names := make([]string, 0, len(a.config.Targets))
	for name := range a.config.Targets {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		totals, err := a.engine.Summarize(name)
		if err != nil {
			return fmt.Errorf("failed to summarize %q: %w", name, err)
		}
		a.logger.Debug("Summary computed.", "component", name, "entries", len(totals))
		a.render(fmt.Sprintf("ingredients for 1 x %s", name), totals)
	}
	return nil
}

// render emits totals in the configured output style. Rounding up happens
// only here, at the edge: the engine's results stay fractional so that
// combined queries aggregate before any ceiling is applied.
func (a *App) render(title string, totals map[string]float64) {
	if a.config.Plain {
		report.Humanize(a.outW, totals)
		return
	}
	report.Table(a.outW, title, totals)
}

// runProducers renders the producer counts needed to sustain all targets
// concurrently over the configured window.
func (a *App) runProducers(ctx context.Context) error {
	speeds, err := a.speedTable()
	if err != nil {
		return err
	}

	producers, err := a.engine.CombinedProducersNeeded(a.config.Targets, a.config.Seconds, speeds)
	if err != nil {
		return fmt.Errorf("failed to compute producers: %w", err)
	}
	a.logger.Debug("Producer counts computed.", "entries", len(producers))

	a.render(a.producersTitle(), producers)
	return nil
}

// speedTable merges the catalog's shipped speeds block with the query's
// overrides and converts category names into the typed table. Validation
// of the multipliers themselves happens in the engine.
func (a *App) speedTable() (engine.SpeedTable, error) {
	speeds := make(engine.SpeedTable)
	for _, source := range []map[string]float64{a.defaultSpeeds, a.config.Speeds} {
		for name, multiplier := range source {
			category, err := catalog.ParseProducerCategory(name)
			if err != nil {
				return nil, fmt.Errorf("invalid speed table: %w", err)
			}
			speeds[category] = multiplier
		}
	}
	return speeds, nil
}

// producersTitle describes the query in the table header, e.g.
// "producers for 2 x rocket every 60s".
func (a *App) producersTitle() string {
	parts := make([]string, 0, len(a.config.Targets))
	for name := range a.config.Targets {
		parts = append(parts, fmt.Sprintf("%v x %s", a.config.Targets[name], name))
	}
	sort.Strings(parts)
	return fmt.Sprintf("producers for %s every %vs", strings.Join(parts, " + "), a.config.Seconds)
}
