package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/specialistvlad/craftplan/internal/catalog"
	"github.com/specialistvlad/craftplan/internal/config"
	"github.com/specialistvlad/craftplan/internal/ctxlog"
	"github.com/specialistvlad/craftplan/internal/engine"
)

// App encapsulates the application's dependencies, configuration, and
// lifecycle: a loaded catalog, a resolution engine over it, and the
// default speed table shipped with the catalog.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config

	catalog       *catalog.Catalog
	engine        *engine.Engine
	defaultSpeeds map[string]float64
}

// NewApp is the constructor for the main application. It loads the catalog
// through the given loader and builds the engine. A catalog that cannot be
// loaded or registered is a fatal startup error and panics; the entrypoint
// recovers and reports it cleanly.
func NewApp(outW io.Writer, appConfig *Config, loader config.Loader) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	model, err := loader.Load(ctx, appConfig.CatalogPath)
	if err != nil {
		panic(fmt.Errorf("failed to load catalog: %w", err))
	}
	logger.Debug("Catalog files loaded and translated into unified model.",
		"components", len(model.Components))

	cat, err := buildCatalog(model)
	if err != nil {
		panic(fmt.Errorf("failed to build catalog: %w", err))
	}
	logger.Debug("Catalog registered.", "count", cat.Len())

	return &App{
		outW:          outW,
		logger:        logger,
		config:        appConfig,
		catalog:       cat,
		engine:        engine.New(cat),
		defaultSpeeds: model.Speeds,
	}
}

// buildCatalog registers every component definition from the model, in
// declaration order, into a fresh catalog. Registration enforces the
// no-forward-reference invariant, so a model with a cycle or a typo in an
// ingredient name fails here with the offending component named.
func buildCatalog(model *config.Model) (*catalog.Catalog, error) {
	cat := catalog.New()
	for _, def := range model.Components {
		producer, err := catalog.ParseProducerCategory(def.Producer)
		if err != nil {
			return nil, fmt.Errorf("component %q: %w", def.Name, err)
		}
		comp := &catalog.Component{
			Name:        def.Name,
			Seconds:     def.Seconds,
			Ingredients: def.Ingredients,
			Producer:    producer,
		}
		if err := cat.Register(comp); err != nil {
			return nil, err
		}
	}
	return cat, nil
}

// Catalog returns the application's catalog. This is primarily for testing.
func (a *App) Catalog() *catalog.Catalog {
	return a.catalog
}

// Engine returns the application's resolution engine. This is primarily
// for testing.
func (a *App) Engine() *engine.Engine {
	return a.engine
}
