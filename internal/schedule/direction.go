package schedule

import (
	"linetrack.dev/internal/models"
)

// PatternsForDirection returns the patterns carrying the direction code, in input order.
func PatternsForDirection(patterns []models.Pattern, directionID int) []models.Pattern {
	var result []models.Pattern
	for _, p := range patterns {
		if p.DirectionID == directionID {
			result = append(result, p)
		}
	}
	return result
}

// DirectionLabel infers the destination name of a direction.
//
// Every pattern votes for the name of its last path stop, weighted by its trip
// count (at least 1). The name with the strictly greatest weight wins; ties go
// to the name seen first. Without votes the literal Ida/Volta label is used.
func DirectionLabel(patterns []models.Pattern, directionID int) string {
	weights := make(map[string]int)
	var order []string

	for _, p := range PatternsForDirection(patterns, directionID) {
		last, ok := p.LastStop()
		if !ok {
			continue
		}
		weight := len(p.Trips)
		if weight == 0 {
			weight = 1
		}
		if _, seen := weights[last.StopName]; !seen {
			order = append(order, last.StopName)
		}
		weights[last.StopName] += weight
	}

	return mostVoted(weights, order, models.DefaultDirectionLabel(directionID))
}

func mostVoted(weights map[string]int, order []string, fallback string) string {
	maxWeight := 0
	result := fallback

	for _, name := range order {
		if weights[name] > maxWeight {
			maxWeight = weights[name]
			result = name
		}
	}

	return result
}

// ClassifyDirections partitions patterns into the outbound and inbound directions.
// Directions without patterns are omitted.
func ClassifyDirections(patterns []models.Pattern) []models.Direction {
	var directions []models.Direction
	for _, id := range []int{models.DirectionOutbound, models.DirectionInbound} {
		subset := PatternsForDirection(patterns, id)
		if len(subset) == 0 {
			continue
		}
		directions = append(directions, models.Direction{
			ID:       id,
			Label:    DirectionLabel(patterns, id),
			Patterns: subset,
		})
	}
	return directions
}
