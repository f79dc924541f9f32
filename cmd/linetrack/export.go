package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"linetrack.dev/internal/gpx"
	"linetrack.dev/internal/logging"
	"linetrack.dev/internal/models"
	"linetrack.dev/internal/selection"
	"linetrack.dev/internal/utils"
)

type selectionFlags struct {
	line      string
	direction string
	date      string
}

func (f *selectionFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&f.line, "line", "", "Line id or short name")
	fs.StringVar(&f.direction, "direction", "0", "Direction code (0|1)")
	fs.StringVar(&f.date, "date", "", "Service date YYYYMMDD, defaults to today")
}

func (f *selectionFlags) validate() (int, error) {
	if err := utils.ValidateID(f.line); err != nil {
		return 0, fmt.Errorf("-line: %w", err)
	}
	if err := utils.ValidateServiceDate(f.date); err != nil {
		return 0, fmt.Errorf("-date: %w", err)
	}
	direction, err := utils.ParseDirection(f.direction)
	if err != nil {
		return 0, fmt.Errorf("-direction: %w", err)
	}
	return direction, nil
}

// selectInSession applies the flags to a fresh session, line first.
func (c *cli) selectInSession(ctx context.Context, f selectionFlags, direction int) (*selection.Session, error) {
	session := selection.NewSession(c.catalog, c.logger)
	if _, err := session.SelectLine(ctx, f.line); err != nil {
		return nil, fmt.Errorf("line %s: %w", f.line, err)
	}
	if _, err := session.SetDate(utils.ServiceDateOrToday(f.date, c.now())); err != nil {
		return nil, err
	}
	if _, err := session.SetDirection(direction); err != nil {
		return nil, err
	}
	return session, nil
}

func (c *cli) export(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	var (
		sel       selectionFlags
		patternID string
		stops     bool
		out       string
	)
	sel.register(fs)
	fs.StringVar(&patternID, "pattern", "", "Pattern id, defaults to the first of the direction")
	fs.BoolVar(&stops, "stops", false, "Include stops as waypoints")
	fs.StringVar(&out, "out", "", "Output file, - for stdout, defaults to {line}_{pattern}.gpx")
	if err := fs.Parse(args); err != nil {
		return err
	}

	direction, err := sel.validate()
	if err != nil {
		return err
	}

	session, err := c.selectInSession(ctx, sel, direction)
	if err != nil {
		return err
	}

	snap, err := session.SetPattern(patternID)
	if err != nil {
		return err
	}
	pattern, ok := snap.ActivePattern()
	if !ok || (patternID != "" && pattern.ID != patternID) {
		return fmt.Errorf("no pattern %q on line %s", patternID, snap.Line.DisplayName())
	}

	shape, found, err := session.ShapeFor(ctx)
	if err != nil {
		return err
	}
	if !found {
		c.logger.Warn("pattern has no shape, exporting without track points", "pattern_id", pattern.ID)
		shape = models.Shape{ID: pattern.ShapeID}
	}

	body := gpx.Serialize(pattern, shape, gpx.Options{IncludeStops: stops, Creator: c.creator})

	if out == "-" {
		_, err := c.stdout.Write(body)
		return err
	}
	if out == "" {
		out = gpx.FileName(snap.Line, pattern)
	}
	if err := c.writeFile(out, body); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}
	fmt.Fprintf(c.stdout, "wrote %s (%d track points)\n", out, len(shape.Coordinates))
	return nil
}

func (c *cli) writeFile(path string, body []byte) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	return c.writeAndClose(f, body)
}

// writeAndClose buffers body into wc. A failed Close is reported when the
// write itself succeeded.
func (c *cli) writeAndClose(wc io.WriteCloser, body []byte) (err error) {
	defer logging.HandleDeferredError(&err, wc.Close, c.logger, "gpx output")

	w := bufio.NewWriter(wc)
	if _, err := w.Write(body); err != nil {
		return err
	}
	return w.Flush()
}
