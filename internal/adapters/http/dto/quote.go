package dto

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/jsamuelsen/quote-calculator/internal/app"
	"github.com/jsamuelsen/quote-calculator/internal/domain"
)

// nullLiteral is the raw JSON null token. Unmarshaling null into a
// float64 is silently a no-op, so it has to be caught by inspection.
var nullLiteral = []byte("null")

// QuoteRequest is the HTTP request body for a premium quote.
//
// Revenue is captured as raw JSON rather than a float64 so the service
// layer can tell apart the cases a plain float binding collapses: field
// absent, explicit null, a JSON string that merely looks numeric, and a
// genuine number. Each of those maps to a different error category.
type QuoteRequest struct {
	Revenue  json.RawMessage `json:"revenue"`
	State    string          `json:"state"`
	Business string          `json:"business"`
}

// ToSubmission converts the wire request into the application-layer
// submission, classifying the raw revenue value.
func (r *QuoteRequest) ToSubmission() app.QuoteSubmission {
	return app.QuoteSubmission{
		Revenue:  classifyRevenue(r.Revenue),
		State:    r.State,
		Business: r.Business,
	}
}

// classifyRevenue decides what kind of value the revenue field carried.
// An absent field is missing; null and non-numeric JSON values (strings
// included, even numeric-looking ones) are present but invalid.
func classifyRevenue(raw json.RawMessage) app.RevenueInput {
	if len(raw) == 0 {
		return app.RevenueMissing()
	}

	if bytes.Equal(raw, nullLiteral) {
		return app.RevenueInvalid()
	}

	var value float64
	if err := json.Unmarshal(raw, &value); err != nil {
		return app.RevenueInvalid()
	}

	return app.Revenue(value)
}

// QuoteResponse is the HTTP response body for a successful quote.
type QuoteResponse struct {
	// Premium is the computed premium in dollars, rounded to cents.
	Premium float64 `json:"premium"`

	// QuoteID uniquely identifies this quote.
	QuoteID string `json:"quoteId"`

	// CalculatedAt is the quote timestamp in RFC 3339 (ISO-8601) form.
	CalculatedAt string `json:"calculatedAt"`
}

// NewQuoteResponse converts a domain Quote to its wire representation.
func NewQuoteResponse(q *domain.Quote) *QuoteResponse {
	return &QuoteResponse{
		Premium:      q.Premium,
		QuoteID:      q.ID,
		CalculatedAt: q.CalculatedAt.Format(time.RFC3339),
	}
}
