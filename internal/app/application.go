package app

import (
	"log/slog"

	"linetrack.dev/internal/appconf"
	"linetrack.dev/internal/catalog"
)

// Application holds the dependencies for our HTTP handlers, helpers,
// and middleware: the loaded configuration, a logger and the catalog
// that lines, patterns and shapes are read from.
type Application struct {
	Config  appconf.Config
	Logger  *slog.Logger
	Catalog catalog.Catalog
}
