package catalog

import (
	"context"
	"sync"

	"linetrack.dev/internal/models"
)

// Mock is an in-memory Catalog for tests.
type Mock struct {
	mu       sync.Mutex
	lines    []models.Line
	patterns map[string]models.Pattern
	shapes   map[string]models.Shape

	// OnPatterns and OnShape run before the lookup, letting tests block or count fetches.
	OnPatterns func(ids []string)
	OnShape    func(id string)
}

func NewMock() *Mock {
	return &Mock{
		patterns: make(map[string]models.Pattern),
		shapes:   make(map[string]models.Shape),
	}
}

func (m *Mock) MockAddLine(line models.Line) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, l := range m.lines {
		if l.ID == line.ID {
			m.lines[i] = line
			return
		}
	}
	m.lines = append(m.lines, line)
}

// MockAddPattern stores the pattern and appends it to its line's pattern ids.
func (m *Mock) MockAddPattern(p models.Pattern) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.patterns[p.ID] = p
	for i, l := range m.lines {
		if l.ID != p.LineID {
			continue
		}
		for _, id := range l.PatternIDs {
			if id == p.ID {
				return
			}
		}
		m.lines[i].PatternIDs = append(m.lines[i].PatternIDs, p.ID)
	}
}

func (m *Mock) MockAddShape(s models.Shape) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.shapes[s.ID] = s
}

func (m *Mock) Lines(_ context.Context) []models.Line {
	m.mu.Lock()
	defer m.mu.Unlock()
	lines := make([]models.Line, len(m.lines))
	copy(lines, m.lines)
	return lines
}

func (m *Mock) Patterns(_ context.Context, ids []string) []models.Pattern {
	if m.OnPatterns != nil {
		m.OnPatterns(ids)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	patterns := make([]models.Pattern, 0, len(ids))
	for _, id := range ids {
		if p, ok := m.patterns[id]; ok {
			patterns = append(patterns, p)
		}
	}
	return patterns
}

func (m *Mock) Shape(_ context.Context, id string) (models.Shape, bool) {
	if m.OnShape != nil {
		m.OnShape(id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.shapes[id]
	return s, ok
}

var _ Catalog = (*Mock)(nil)
