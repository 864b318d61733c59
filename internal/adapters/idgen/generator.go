// Package idgen provides the production quote identifier generator.
package idgen

import (
	"fmt"
	"math/rand/v2"
	"time"
)

const (
	// suffixAlphabet is the character set for the random identifier suffix.
	// Uppercase alphanumerics keep identifiers easy to read back over the phone.
	suffixAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	// suffixLength is the number of random characters appended to each identifier.
	// 36^5 possible suffixes per millisecond makes collisions across
	// consecutive calls negligible.
	suffixLength = 5
)

// Generator mints quote identifiers of the form Q-<unix-millis>-<suffix>.
// It implements ports.QuoteIDGenerator and is safe for concurrent use.
type Generator struct {
	// now allows overriding the clock in tests.
	now func() time.Time
}

// New creates a generator backed by the system clock.
func New() *Generator {
	return &Generator{now: time.Now}
}

// NextID returns a fresh quote identifier.
func (g *Generator) NextID() string {
	suffix := make([]byte, suffixLength)
	for i := range suffix {
		suffix[i] = suffixAlphabet[rand.IntN(len(suffixAlphabet))]
	}

	return fmt.Sprintf("Q-%d-%s", g.now().UnixMilli(), suffix)
}
