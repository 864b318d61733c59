// Package ports defines interfaces for external dependencies and capabilities.
// Ports are contracts that adapters implement, allowing the application layer
// to depend on abstractions rather than concrete implementations.
//
// Port Design Principles:
//   - Context as first parameter on operations that block or cross process boundaries
//   - Return domain types, never external DTOs or infrastructure types
//   - Error returns use domain error types
//   - Methods represent business operations, not CRUD operations
//   - Keep interfaces small and focused (Interface Segregation Principle)
package ports

// QuoteIDGenerator mints unique identifiers for priced quotes.
// The production adapter combines a millisecond timestamp with a random
// suffix; tests substitute a stub so handler logic stays deterministic.
//
// Example usage in application layer:
//
//	type QuoteService struct {
//	    ids ports.QuoteIDGenerator
//	}
//
//	quote.ID = s.ids.NextID()
type QuoteIDGenerator interface {
	// NextID returns a fresh quote identifier.
	// Identifiers must be unique across rapid consecutive calls within the
	// same process; the call never blocks and never fails.
	NextID() string
}
