package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/jamespfennell/gtfs"

	"linetrack.dev/internal/logging"
	"linetrack.dev/internal/models"
)

// GTFSCatalog serves the catalog from a static GTFS feed held in memory.
//
// Trips of a route are grouped into patterns by direction, shape and stop
// sequence. Pattern ids take the form {routeId}_{direction}_{n}, numbered
// in trip id order.
type GTFSCatalog struct {
	lines    []models.Line
	patterns map[string]models.Pattern
	shapes   map[string]models.Shape
	logger   *slog.Logger
}

// LoadGTFSCatalog reads and indexes the feed at source, a path or an http(s) URL.
func LoadGTFSCatalog(ctx context.Context, source string, logger *slog.Logger) (*GTFSCatalog, error) {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With(logging.Component("catalog_gtfs"))

	start := time.Now()
	b, err := rawGtfsData(ctx, source)
	if err != nil {
		return nil, err
	}
	catalog, err := NewGTFSCatalog(b, logger)
	if err != nil {
		return nil, err
	}
	logging.LogOperation(logger, "gtfs_catalog_loaded",
		slog.String("source", source),
		slog.Duration("duration", time.Since(start)))
	return catalog, nil
}

// NewGTFSCatalog parses a GTFS zip archive.
func NewGTFSCatalog(data []byte, logger *slog.Logger) (*GTFSCatalog, error) {
	if logger == nil {
		logger = slog.Default()
	}
	staticData, err := gtfs.ParseStatic(data, gtfs.ParseStaticOptions{})
	if err != nil {
		return nil, fmt.Errorf("error parsing GTFS data: %w", err)
	}
	c := buildGTFSCatalog(staticData)
	c.logger = logger
	logger.Info("gtfs catalog indexed",
		slog.Int("lines", len(c.lines)),
		slog.Int("patterns", len(c.patterns)),
		slog.Int("shapes", len(c.shapes)))
	return c, nil
}

type patternKey struct {
	routeID   string
	direction int
	shapeID   string
	stops     string
}

func buildGTFSCatalog(staticData *gtfs.Static) *GTFSCatalog {
	c := &GTFSCatalog{
		patterns: make(map[string]models.Pattern),
		shapes:   make(map[string]models.Shape),
		logger:   slog.Default(),
	}

	for _, s := range staticData.Shapes {
		coords := make([][2]float64, 0, len(s.Points))
		for _, pt := range s.Points {
			coords = append(coords, [2]float64{pt.Longitude, pt.Latitude})
		}
		c.shapes[s.ID] = models.Shape{ID: s.ID, Coordinates: coords}
	}

	datesByService := make(map[string][]string)
	keys := make(map[patternKey]string)
	counters := make(map[string]int)
	patternIDsByRoute := make(map[string][]string)

	trips := make([]*gtfs.ScheduledTrip, 0, len(staticData.Trips))
	for i := range staticData.Trips {
		trips = append(trips, &staticData.Trips[i])
	}
	sort.SliceStable(trips, func(a, b int) bool {
		return trips[a].ID < trips[b].ID
	})

	for _, t := range trips {
		if t.Route == nil {
			continue
		}

		stopTimes := make([]gtfs.ScheduledStopTime, len(t.StopTimes))
		copy(stopTimes, t.StopTimes)
		sort.SliceStable(stopTimes, func(a, b int) bool {
			return stopTimes[a].StopSequence < stopTimes[b].StopSequence
		})

		direction := directionOf(t.DirectionId)
		shapeID := ""
		if t.Shape != nil {
			shapeID = t.Shape.ID
		}

		key := patternKey{
			routeID:   t.Route.Id,
			direction: direction,
			shapeID:   shapeID,
			stops:     stopSignature(stopTimes),
		}
		patternID, ok := keys[key]
		if !ok {
			prefix := fmt.Sprintf("%s_%d", t.Route.Id, direction)
			counters[prefix]++
			patternID = fmt.Sprintf("%s_%d", prefix, counters[prefix])
			keys[key] = patternID
			patternIDsByRoute[t.Route.Id] = append(patternIDsByRoute[t.Route.Id], patternID)
			c.patterns[patternID] = models.Pattern{
				ID:          patternID,
				LineID:      t.Route.Id,
				Headsign:    t.Headsign,
				DirectionID: direction,
				ShapeID:     shapeID,
				Path:        pathFromStopTimes(stopTimes),
			}
		}

		var dates []string
		if t.Service != nil {
			cached, ok := datesByService[t.Service.Id]
			if !ok {
				cached = serviceDates(t.Service)
				datesByService[t.Service.Id] = cached
			}
			dates = cached
		}

		p := c.patterns[patternID]
		p.Trips = append(p.Trips, models.Trip{
			ID:       t.ID,
			Dates:    dates,
			Schedule: scheduleFromStopTimes(stopTimes),
		})
		c.patterns[patternID] = p
	}

	for _, r := range staticData.Routes {
		c.lines = append(c.lines, models.Line{
			ID:         r.Id,
			ShortName:  r.ShortName,
			LongName:   r.LongName,
			Color:      r.Color,
			TextColor:  r.TextColor,
			PatternIDs: patternIDsByRoute[r.Id],
		})
	}

	return c
}

func directionOf(id gtfs.DirectionID) int {
	if id == gtfs.DirectionID_True {
		return models.DirectionInbound
	}
	return models.DirectionOutbound
}

func stopSignature(stopTimes []gtfs.ScheduledStopTime) string {
	ids := make([]string, 0, len(stopTimes))
	for _, st := range stopTimes {
		if st.Stop != nil {
			ids = append(ids, st.Stop.Id)
		}
	}
	return strings.Join(ids, ",")
}

func pathFromStopTimes(stopTimes []gtfs.ScheduledStopTime) []models.PathStop {
	path := make([]models.PathStop, 0, len(stopTimes))
	for _, st := range stopTimes {
		if st.Stop == nil {
			continue
		}
		path = append(path, models.PathStop{
			StopID:       st.Stop.Id,
			StopName:     st.Stop.Name,
			Lat:          st.Stop.Latitude,
			Lon:          st.Stop.Longitude,
			StopSequence: st.StopSequence,
		})
	}
	return path
}

func scheduleFromStopTimes(stopTimes []gtfs.ScheduledStopTime) []models.ScheduleEntry {
	schedule := make([]models.ScheduleEntry, 0, len(stopTimes))
	for _, st := range stopTimes {
		if st.Stop == nil {
			continue
		}
		arrival := st.ArrivalTime
		if arrival == 0 {
			arrival = st.DepartureTime
		}
		schedule = append(schedule, models.ScheduleEntry{
			ArrivalTime:  formatStopTime(arrival),
			StopID:       st.Stop.Id,
			StopSequence: st.StopSequence,
		})
	}
	return schedule
}

func (c *GTFSCatalog) Lines(_ context.Context) []models.Line {
	lines := make([]models.Line, len(c.lines))
	copy(lines, c.lines)
	return lines
}

func (c *GTFSCatalog) Patterns(_ context.Context, ids []string) []models.Pattern {
	patterns := make([]models.Pattern, 0, len(ids))
	for _, id := range ids {
		p, ok := c.patterns[id]
		if !ok {
			c.logger.Warn("pattern not found in feed", slog.String("pattern_id", id))
			continue
		}
		patterns = append(patterns, p)
	}
	return patterns
}

func (c *GTFSCatalog) Shape(_ context.Context, id string) (models.Shape, bool) {
	s, ok := c.shapes[id]
	if !ok || len(s.Coordinates) == 0 {
		return models.Shape{}, false
	}
	return s, true
}

var _ Catalog = (*GTFSCatalog)(nil)
var _ Catalog = (*APIClient)(nil)
