package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"linetrack.dev/internal/models"
)

func entry(id, start string) models.ItineraryEntry {
	return models.ItineraryEntry{Trip: models.Trip{ID: id}, StartTime: start}
}

func TestOrderTrips(t *testing.T) {
	tests := []struct {
		name     string
		input    []models.ItineraryEntry
		expected []string
	}{
		{
			name:     "ascending start time",
			input:    []models.ItineraryEntry{entry("c", "09:00:00"), entry("a", "06:15:00"), entry("b", "07:00:00")},
			expected: []string{"a", "b", "c"},
		},
		{
			name:     "ties keep input order",
			input:    []models.ItineraryEntry{entry("x", "08:00:00"), entry("early", "07:00:00"), entry("y", "08:00:00"), entry("z", "08:00:00")},
			expected: []string{"early", "x", "y", "z"},
		},
		{
			name:     "extended hours sort after same day",
			input:    []models.ItineraryEntry{entry("late", "24:30:00"), entry("night", "23:55:00"), entry("later", "25:05:00")},
			expected: []string{"night", "late", "later"},
		},
		{
			name:     "empty input",
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ordered := OrderTrips(tt.input)
			ids := make([]string, 0, len(ordered))
			for i, e := range ordered {
				ids = append(ids, e.Trip.ID)
				if i > 0 {
					assert.LessOrEqual(t, ordered[i-1].StartTime, e.StartTime)
				}
			}
			assert.Equal(t, tt.expected, ids)
		})
	}
}

func TestOrderTripsDoesNotMutateInput(t *testing.T) {
	input := []models.ItineraryEntry{entry("b", "09:00:00"), entry("a", "08:00:00")}
	_ = OrderTrips(input)
	assert.Equal(t, "b", input[0].Trip.ID)
}
