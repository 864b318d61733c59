package domain

import "time"

// Quote represents a priced insurance quote.
// This is a domain entity - it has no knowledge of external systems.
type Quote struct {
	// ID is the unique identifier handed back to the caller for reference.
	// Format: Q-<unix-millis>-<5-character uppercase alphanumeric suffix>.
	ID string

	// Premium is the computed insurance price, rounded to whole cents.
	Premium float64

	// CalculatedAt is when the premium was computed.
	CalculatedAt time.Time
}
