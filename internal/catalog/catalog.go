// Package catalog fetches lines, patterns and shapes from an upstream source.
//
// Every implementation treats upstream failures as missing data: failed
// lookups are logged and surface as empty results, never as errors.
package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"linetrack.dev/internal/appconf"
	"linetrack.dev/internal/models"
)

// Catalog is the read-only view of the transit catalog used by the engine.
type Catalog interface {
	// Lines returns every line, or nothing when the upstream fails.
	Lines(ctx context.Context) []models.Line
	// Patterns returns the patterns that resolved, in request order.
	Patterns(ctx context.Context, ids []string) []models.Pattern
	// Shape returns the geometry of a shape, if it resolves.
	Shape(ctx context.Context, id string) (models.Shape, bool)
}

// New builds the catalog configured by cfg.
func New(ctx context.Context, cfg appconf.Catalog, logger *slog.Logger) (Catalog, error) {
	switch cfg.Source {
	case appconf.SourceAPI:
		return NewAPIClient(cfg.BaseURL, cfg.Timeout(), cfg.MaxRetries, logger), nil
	case appconf.SourceGTFS:
		c, err := LoadGTFSCatalog(ctx, cfg.GtfsURL, logger)
		if err != nil {
			return nil, err
		}
		return c, nil
	default:
		return nil, fmt.Errorf("unknown catalog source %q", cfg.Source)
	}
}

// FindLine looks a line up by id first, then by short name.
func FindLine(lines []models.Line, ref string) (models.Line, bool) {
	for _, l := range lines {
		if l.ID == ref {
			return l, true
		}
	}
	for _, l := range lines {
		if l.ShortName == ref {
			return l, true
		}
	}
	return models.Line{}, false
}
