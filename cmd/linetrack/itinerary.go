package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"text/tabwriter"
)

func (c *cli) itinerary(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("itinerary", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	var sel selectionFlags
	sel.register(fs)
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
	snap, _ := session.Current()
	it := snap.Itinerary()

	fmt.Fprintf(c.stdout, "%s %s: %s\n", snap.Line.DisplayName(), snap.Line.LongName, snap.DirectionLabel())
	if !it.HasService() {
		fmt.Fprintln(c.stdout, "no schedule available")
		return nil
	}
	if it.Fallback {
		fmt.Fprintf(c.stdout, "no trips on %s, showing %s\n", it.RequestedDate, it.ServiceDate)
	} else {
		fmt.Fprintf(c.stdout, "service date %s\n", it.ServiceDate)
	}

	tw := tabwriter.NewWriter(c.stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "START\tTRIP\tPATTERN\tHEADSIGN")
	for _, e := range it.Entries {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", e.StartTime, e.Trip.ID, e.Pattern.ID, e.Pattern.DisplayName())
	}
	return tw.Flush()
}
