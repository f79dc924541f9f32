package models

// Common constants used across the application
const (
	// DirectionOutbound and DirectionInbound are the two binary direction codes.
	DirectionOutbound = 0
	DirectionInbound  = 1

	// OutboundLabel and InboundLabel name a direction when no destination can be inferred.
	OutboundLabel = "Ida"
	InboundLabel  = "Volta"

	// ServiceDateLayout is the YYYYMMDD layout for service dates.
	ServiceDateLayout = "20060102"
)

// DefaultDirectionLabel returns the literal label for a direction code.
func DefaultDirectionLabel(directionID int) string {
	if directionID == DirectionInbound {
		return InboundLabel
	}
	return OutboundLabel
}
