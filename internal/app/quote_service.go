// Package app contains application services that orchestrate use cases.
package app

import (
	"context"
	"log/slog"
	"math"
	"time"

	"github.com/jsamuelsen/quote-calculator/internal/domain"
	"github.com/jsamuelsen/quote-calculator/internal/platform/logging"
	"github.com/jsamuelsen/quote-calculator/internal/ports"
)

// RevenueInput carries the revenue field with enough surrounding detail to
// distinguish absent, wrong-typed and numeric values. A bare float cannot
// express that distinction: zero is a legitimate revenue, and a request that
// sent `"50000"` as a string must be rejected rather than coerced.
type RevenueInput struct {
	// Value is the parsed revenue. Meaningful only when Valid is true.
	Value float64

	// Present is true when the field appeared in the request at all.
	Present bool

	// Valid is true when the field held a usable JSON number.
	// A present field that held null, a string or any other non-number
	// has Present=true, Valid=false.
	Valid bool
}

// Revenue builds the input for a well-formed numeric revenue.
func Revenue(value float64) RevenueInput {
	return RevenueInput{Value: value, Present: true, Valid: true}
}

// RevenueMissing builds the input for a request that omitted revenue.
func RevenueMissing() RevenueInput {
	return RevenueInput{}
}

// RevenueInvalid builds the input for a present but non-numeric revenue.
func RevenueInvalid() RevenueInput {
	return RevenueInput{Present: true}
}

// QuoteSubmission is a quote request as handed over by the transport,
// before any validation has run.
type QuoteSubmission struct {
	Revenue  RevenueInput
	State    string
	Business string
}

// QuoteService prices quote submissions.
// It depends on port interfaces, not concrete implementations,
// following the Dependency Inversion Principle.
type QuoteService struct {
	ids    ports.QuoteIDGenerator
	logger *slog.Logger
	now    func() time.Time
}

// QuoteServiceConfig contains configuration for the quote service.
type QuoteServiceConfig struct {
	IDGenerator ports.QuoteIDGenerator
	Logger      *slog.Logger

	// Now overrides the timestamp source, primarily for tests.
	// Defaults to time.Now.
	Now func() time.Time
}

// NewQuoteService creates a new quote service with the provided dependencies.
// A nil ID generator is a wiring bug, not a runtime condition, so it panics.
func NewQuoteService(cfg QuoteServiceConfig) *QuoteService {
	if cfg.IDGenerator == nil {
		panic("app: QuoteService requires an ID generator")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	return &QuoteService{
		ids:    cfg.IDGenerator,
		logger: logger,
		now:    now,
	}
}

// CalculateQuote validates a submission and prices it.
//
// Validation short-circuits in a fixed order that callers rely on: presence
// of all three fields, then revenue type and range, then state membership,
// then business membership. The first violated rule determines the single
// returned error; rules are never aggregated.
//
// The premium is a pure function of (revenue, state, business). Only the
// quote identifier and timestamp vary between otherwise identical calls.
func (s *QuoteService) CalculateQuote(ctx context.Context, sub QuoteSubmission) (*domain.Quote, error) {
	logger := logging.FromContextOr(ctx, s.logger)

	if err := validate(sub); err != nil {
		logger.WarnContext(ctx, "quote submission rejected",
			slog.Any("error", err),
		)

		return nil, err
	}

	premium, err := domain.PremiumFor(sub.Revenue.Value, sub.State, sub.Business)
	if err != nil {
		logger.WarnContext(ctx, "quote submission rejected",
			slog.Any("error", err),
		)

		return nil, err
	}

	quote := &domain.Quote{
		ID:           s.ids.NextID(),
		Premium:      premium,
		CalculatedAt: s.now().UTC(),
	}

	logger.InfoContext(ctx, "quote calculated",
		slog.String("quote_id", quote.ID),
		slog.String("state", domain.NormalizeState(sub.State)),
		slog.String("business", domain.NormalizeBusinessType(sub.Business)),
		slog.Float64("premium", quote.Premium),
	)

	return quote, nil
}

// validate runs the presence and revenue checks that precede the pricing
// table lookups. State and business membership are checked by the domain
// during pricing, preserving the overall rule order.
func validate(sub QuoteSubmission) error {
	missing := make([]string, 0, 3)
	if !sub.Revenue.Present {
		missing = append(missing, "revenue")
	}

	if sub.State == "" {
		missing = append(missing, "state")
	}

	if sub.Business == "" {
		missing = append(missing, "business")
	}

	if len(missing) > 0 {
		return domain.NewMissingFieldsError(missing...)
	}

	if !sub.Revenue.Valid {
		return domain.NewInvalidRevenueError("must be a number")
	}

	if math.IsNaN(sub.Revenue.Value) || math.IsInf(sub.Revenue.Value, 0) {
		return domain.NewInvalidRevenueError("must be a finite number")
	}

	if sub.Revenue.Value < 0 {
		return domain.NewInvalidRevenueErrorWithValue("must be non-negative", sub.Revenue.Value)
	}

	return nil
}
