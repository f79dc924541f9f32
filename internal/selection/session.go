package selection

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"linetrack.dev/internal/catalog"
	"linetrack.dev/internal/logging"
	"linetrack.dev/internal/models"
)

var (
	// ErrSuperseded is returned when a newer selection replaced the one a
	// fetch was started for. The fetched data is discarded.
	ErrSuperseded = errors.New("selection superseded")
	// ErrUnknownLine is returned when no line matches the requested id or short name.
	ErrUnknownLine = errors.New("unknown line")
	// ErrNoSelection is returned when an operation needs a current selection.
	ErrNoSelection = errors.New("no line selected")
)

// Load fetches a line and its patterns and builds a snapshot for the date.
func Load(ctx context.Context, cat catalog.Catalog, lineRef, date string) (Snapshot, error) {
	line, ok := catalog.FindLine(cat.Lines(ctx), lineRef)
	if !ok {
		return Snapshot{}, ErrUnknownLine
	}
	patterns := cat.Patterns(ctx, line.PatternIDs)
	return NewSnapshot(line, patterns, date), nil
}

// Restore rebuilds a snapshot from navigation query parameters.
func Restore(ctx context.Context, cat catalog.Catalog, q Query, date string) (Snapshot, error) {
	s, err := Load(ctx, cat, q.Line, date)
	if err != nil {
		return Snapshot{}, err
	}
	if q.PatternID != "" {
		s = s.WithPattern(q.PatternID)
	}
	return s, nil
}

// Session tracks the current selection. Changing the line or the active
// pattern bumps a generation counter; fetch results started under an older
// generation are dropped.
// Only data for the current line is held.
type Session struct {
	catalog catalog.Catalog
	logger  *slog.Logger
	now     func() time.Time

	mu         sync.Mutex
	generation uint64
	current    *Snapshot
	shapes     map[string]models.Shape
}

func NewSession(cat catalog.Catalog, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{
		catalog: cat,
		logger:  logger.With(logging.Component("selection")),
		now:     time.Now,
		shapes:  make(map[string]models.Shape),
	}
}

// Current returns the current snapshot, if a line is selected.
func (s *Session) Current() (Snapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return Snapshot{}, false
	}
	return *s.current, true
}

func (s *Session) begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	return s.generation
}

// SelectLine loads a line for today's service date and makes it current.
func (s *Session) SelectLine(ctx context.Context, lineRef string) (Snapshot, error) {
	gen := s.begin()
	snap, err := Load(ctx, s.catalog, lineRef, s.now().Format(models.ServiceDateLayout))

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		s.logger.Debug("discarding superseded line selection", slog.String("line", lineRef))
		return Snapshot{}, ErrSuperseded
	}
	if err != nil {
		return Snapshot{}, err
	}
	s.current = &snap
	s.shapes = make(map[string]models.Shape)
	return snap, nil
}

// Update replaces the current snapshot with fn's result. The generation only
// advances when the line or the active pattern changes, so a date change does
// not supersede a pending shape fetch.
func (s *Session) Update(fn func(Snapshot) Snapshot) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return Snapshot{}, ErrNoSelection
	}
	next := fn(*s.current)
	if next.Line.ID != s.current.Line.ID || next.PatternID != s.current.PatternID {
		s.generation++
	}
	s.current = &next
	return next, nil
}

func (s *Session) SetDirection(directionID int) (Snapshot, error) {
	return s.Update(func(snap Snapshot) Snapshot { return snap.WithDirection(directionID) })
}

func (s *Session) SetDate(date string) (Snapshot, error) {
	return s.Update(func(snap Snapshot) Snapshot { return snap.WithDate(date) })
}

func (s *Session) SetPattern(patternID string) (Snapshot, error) {
	return s.Update(func(snap Snapshot) Snapshot { return snap.WithPattern(patternID) })
}

// ShapeFor returns the geometry of the active pattern, fetching it on first use.
// The boolean is false when the pattern has no shape or the catalog has none.
func (s *Session) ShapeFor(ctx context.Context) (models.Shape, bool, error) {
	s.mu.Lock()
	if s.current == nil {
		s.mu.Unlock()
		return models.Shape{}, false, ErrNoSelection
	}
	pattern, ok := s.current.ActivePattern()
	if !ok || pattern.ShapeID == "" {
		s.mu.Unlock()
		return models.Shape{}, false, nil
	}
	if shape, ok := s.shapes[pattern.ShapeID]; ok {
		s.mu.Unlock()
		return shape, true, nil
	}
	gen := s.generation
	s.mu.Unlock()

	shape, found := s.catalog.Shape(ctx, pattern.ShapeID)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		s.logger.Debug("discarding superseded shape", slog.String("shape_id", pattern.ShapeID))
		return models.Shape{}, false, ErrSuperseded
	}
	if !found {
		return models.Shape{}, false, nil
	}
	s.shapes[pattern.ShapeID] = shape
	return shape, true, nil
}
