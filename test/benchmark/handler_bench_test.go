package benchmark

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quote-calculator/internal/adapters/http/handlers"
	"github.com/jsamuelsen/quote-calculator/internal/adapters/http/middleware"
	"github.com/jsamuelsen/quote-calculator/internal/adapters/idgen"
	"github.com/jsamuelsen/quote-calculator/internal/app"
	"github.com/jsamuelsen/quote-calculator/internal/domain"
	"github.com/jsamuelsen/quote-calculator/internal/ports"
)

func init() {
	// Release mode keeps gin's per-route debug output out of the numbers.
	gin.SetMode(gin.ReleaseMode)
}

// ginContext wraps a recorder and request in a gin context so handlers
// can be measured without a router in front.
func ginContext(w http.ResponseWriter, r *http.Request) *gin.Context {
	c, _ := gin.CreateTestContext(w)
	c.Request = r
	return c
}

// discardLogger silences service logging so benchmarks measure the
// request path, not stdout throughput.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newQuoteHandler() *handlers.QuoteHandler {
	service := app.NewQuoteService(app.QuoteServiceConfig{
		IDGenerator: idgen.New(),
		Logger:      discardLogger(),
	})

	return handlers.NewQuoteHandler(service)
}

func newHealthHandler(registry ports.HealthRegistry) *handlers.HealthHandler {
	info := handlers.NewBuildInfo("0.1.0", "4f9c2aa", "2026-08-20T09:30:00Z")

	return handlers.NewHealthHandler(registry, info)
}

// noopChecker reports healthy without doing any work, so readiness
// benchmarks see only the registry overhead.
type noopChecker struct {
	name string
}

func (n noopChecker) Name() string                  { return n.name }
func (n noopChecker) Check(_ context.Context) error { return nil }

// BenchmarkQuoteHandler_ValidSubmission measures the full quote path:
// bind, validate, price, mint an identifier, and encode the response.
func BenchmarkQuoteHandler_ValidSubmission(b *testing.B) {
	handler := newQuoteHandler()
	body := `{"revenue": 50000, "state": "CA", "business": "retail"}`

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		c := ginContext(w, req)
		handler.CreateQuote(c)
	}
}

// BenchmarkQuoteHandler_ValidationRejection measures the rejection path,
// which short-circuits before pricing and ID generation.
func BenchmarkQuoteHandler_ValidationRejection(b *testing.B) {
	handler := newQuoteHandler()
	body := `{"revenue": 50000, "state": "ZZ", "business": "retail"}`

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		c := ginContext(w, req)
		handler.CreateQuote(c)
	}
}

// BenchmarkQuoteHandler_MalformedJSON measures the bind-failure path.
func BenchmarkQuoteHandler_MalformedJSON(b *testing.B) {
	handler := newQuoteHandler()
	body := `{"revenue": 50000,`

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		c := ginContext(w, req)
		handler.CreateQuote(c)
	}
}

// BenchmarkPremiumFor measures the pure pricing function in isolation.
func BenchmarkPremiumFor(b *testing.B) {
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_, _ = domain.PremiumFor(50000, "CA", "retail")
	}
}

// BenchmarkQuoteIDGeneration measures identifier minting, the only
// non-deterministic work on the success path.
func BenchmarkQuoteIDGeneration(b *testing.B) {
	gen := idgen.New()

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_ = gen.NextID()
	}
}

// BenchmarkLiveness measures the probe the orchestrator hits most often.
func BenchmarkLiveness(b *testing.B) {
	handler := newHealthHandler(ports.NewHealthRegistry())
	req := httptest.NewRequest(http.MethodGet, "/-/live", http.NoBody)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		w := httptest.NewRecorder()
		c := ginContext(w, req)
		handler.Liveness(c)
	}
}

// BenchmarkReadiness_EmptyRegistry measures readiness with nothing
// registered, which is how the service ships.
func BenchmarkReadiness_EmptyRegistry(b *testing.B) {
	handler := newHealthHandler(ports.NewHealthRegistry())
	req := httptest.NewRequest(http.MethodGet, "/-/ready", http.NoBody)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		w := httptest.NewRecorder()
		c := ginContext(w, req)
		handler.Readiness(c)
	}
}

// BenchmarkReadiness_WithCheckers registers two checkers so CheckAll has
// goroutines to fan out and collect.
func BenchmarkReadiness_WithCheckers(b *testing.B) {
	registry := ports.NewHealthRegistry()
	_ = registry.Register(noopChecker{name: "pricing-tables"})
	_ = registry.Register(noopChecker{name: "id-generator"})

	handler := newHealthHandler(registry)
	req := httptest.NewRequest(http.MethodGet, "/-/ready", http.NoBody)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		w := httptest.NewRecorder()
		c := ginContext(w, req)
		handler.Readiness(c)
	}
}

// BenchmarkBuildInfo measures the static build metadata endpoint.
func BenchmarkBuildInfo(b *testing.B) {
	handler := newHealthHandler(ports.NewHealthRegistry())
	req := httptest.NewRequest(http.MethodGet, "/-/build", http.NoBody)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		w := httptest.NewRecorder()
		c := ginContext(w, req)
		handler.BuildInfoHandler(c)
	}
}

// BenchmarkMiddleware_CoreChain measures recovery plus request IDs, the
// part of the stack every route pays for.
func BenchmarkMiddleware_CoreChain(b *testing.B) {
	logger := discardLogger()

	router := gin.New()
	router.Use(
		middleware.Recovery(logger),
		middleware.RequestID(),
	)
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", http.NoBody)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
	}
}

// BenchmarkMiddleware_FullChain adds correlation IDs and request logging
// on top of the core chain, as the router wires them.
func BenchmarkMiddleware_FullChain(b *testing.B) {
	logger := discardLogger()

	router := gin.New()
	router.Use(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.CorrelationID(),
		middleware.Logging(logger),
	)
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", http.NoBody)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
	}
}
