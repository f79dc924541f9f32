// Command linetrack exports line patterns as GPX tracks and prints timetables.
//
// Usage:
//
//	linetrack export -line 1001 [-direction 0] [-date YYYYMMDD] [-pattern ID] [-stops] [-out file.gpx]
//	linetrack itinerary -line 1001 [-direction 0] [-date YYYYMMDD]
//	linetrack inspect file.gpx
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"linetrack.dev/internal/appconf"
	"linetrack.dev/internal/catalog"
	"linetrack.dev/internal/logging"
)

const usage = `usage: linetrack <command> [flags]

commands:
  export     write a pattern of a line as a GPX track
  itinerary  print the trips of a line for a direction and date
  inspect    summarize a GPX file
`

func main() {
	appconf.LoadDotEnv(".env")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return 2
	}

	cmd, rest := args[0], args[1:]
	if cmd == "inspect" {
		return exitCode(stderr, inspect(rest, stdout))
	}

	if cmd != "export" && cmd != "itinerary" {
		fmt.Fprintf(stderr, "unknown command %q\n\n%s", cmd, usage)
		return 2
	}

	cfg, err := appconf.Load(os.Getenv("LINETRACK_CONFIG"))
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	logger := logging.NewStructuredLogger(stderr, logging.ParseLevel(cfg.LogLevel))

	cat, err := catalog.New(ctx, cfg.Catalog, logger)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	c := &cli{
		catalog: cat,
		creator: cfg.Creator,
		logger:  logger,
		stdout:  stdout,
		now:     time.Now,
	}
	if cmd == "export" {
		return exitCode(stderr, c.export(ctx, rest))
	}
	return exitCode(stderr, c.itinerary(ctx, rest))
}

func exitCode(stderr io.Writer, err error) int {
	if err == nil {
		return 0
	}
	fmt.Fprintln(stderr, "linetrack:", err)
	return 1
}

// cli carries what the catalog-backed commands share.
type cli struct {
	catalog catalog.Catalog
	creator string
	logger  *slog.Logger
	stdout  io.Writer
	now     func() time.Time
}
