package dto

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/quote-calculator/internal/app"
	"github.com/jsamuelsen/quote-calculator/internal/domain"
	"github.com/jsamuelsen/quote-calculator/internal/platform/logging"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// TestNewErrorResponse tests creating the flat error envelope.
func TestNewErrorResponse(t *testing.T) {
	tests := []struct {
		name     string
		category string
		message  string
		want     *ErrorResponse
	}{
		{
			name:     "missing fields",
			category: CategoryMissingFields,
			message:  "missing required fields: revenue",
			want: &ErrorResponse{
				Error:   CategoryMissingFields,
				Message: "missing required fields: revenue",
			},
		},
		{
			name:     "method not allowed",
			category: CategoryMethodNotAllowed,
			message:  "method GET is not allowed on /",
			want: &ErrorResponse{
				Error:   CategoryMethodNotAllowed,
				Message: "method GET is not allowed on /",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewErrorResponse(tt.category, tt.message)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestCategoryLiterals pins the category strings. Callers match on the
// exact text, so any drift here is a breaking change.
func TestCategoryLiterals(t *testing.T) {
	assert.Equal(t, "Missing required fields", CategoryMissingFields)
	assert.Equal(t, "Invalid revenue", CategoryInvalidRevenue)
	assert.Equal(t, "Invalid state", CategoryInvalidState)
	assert.Equal(t, "Invalid business type", CategoryInvalidBusinessType)
	assert.Equal(t, "Invalid JSON", CategoryMalformedPayload)
	assert.Equal(t, "Method not allowed", CategoryMethodNotAllowed)
}

// TestErrorResponseWireFormat tests the envelope's JSON field names.
func TestErrorResponseWireFormat(t *testing.T) {
	resp := NewErrorResponse(CategoryInvalidState, `invalid state "ZZ"`)

	body, err := json.Marshal(resp)
	require.NoError(t, err)

	assert.JSONEq(t, `{"error": "Invalid state", "message": "invalid state \"ZZ\""}`, string(body))
}

// TestHTTPStatusFromCategory tests the category to status mapping.
func TestHTTPStatusFromCategory(t *testing.T) {
	tests := []struct {
		name     string
		category string
		want     int
	}{
		{name: "missing fields", category: CategoryMissingFields, want: http.StatusBadRequest},
		{name: "invalid revenue", category: CategoryInvalidRevenue, want: http.StatusBadRequest},
		{name: "invalid state", category: CategoryInvalidState, want: http.StatusBadRequest},
		{name: "invalid business type", category: CategoryInvalidBusinessType, want: http.StatusBadRequest},
		{name: "malformed payload", category: CategoryMalformedPayload, want: http.StatusBadRequest},
		{name: "method not allowed", category: CategoryMethodNotAllowed, want: http.StatusMethodNotAllowed},
		{name: "not found", category: CategoryNotFound, want: http.StatusNotFound},
		{name: "timeout", category: CategoryTimeout, want: http.StatusServiceUnavailable},
		{name: "internal", category: CategoryInternal, want: http.StatusInternalServerError},
		{name: "unknown category", category: "no such category", want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HTTPStatusFromCategory(tt.category)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestClassifyRevenue tests raw revenue classification.
func TestClassifyRevenue(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want app.RevenueInput
	}{
		{name: "absent field", raw: "", want: app.RevenueMissing()},
		{name: "null literal", raw: "null", want: app.RevenueInvalid()},
		{name: "integer", raw: "50000", want: app.Revenue(50000)},
		{name: "zero", raw: "0", want: app.Revenue(0)},
		{name: "decimal", raw: "1234.56", want: app.Revenue(1234.56)},
		{name: "scientific notation", raw: "1.5e5", want: app.Revenue(150000)},
		// Negative numbers classify as numbers; the range check rejects
		// them later so the error reads "invalid revenue", not "missing".
		{name: "negative number", raw: "-100", want: app.Revenue(-100)},
		{name: "numeric string", raw: `"50000"`, want: app.RevenueInvalid()},
		{name: "boolean", raw: "true", want: app.RevenueInvalid()},
		{name: "object", raw: `{"amount": 1}`, want: app.RevenueInvalid()},
		{name: "array", raw: "[50000]", want: app.RevenueInvalid()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var raw json.RawMessage
			if tt.raw != "" {
				raw = json.RawMessage(tt.raw)
			}

			got := classifyRevenue(raw)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestQuoteRequestToSubmission tests conversion to the application input.
func TestQuoteRequestToSubmission(t *testing.T) {
	tests := []struct {
		name string
		req  *QuoteRequest
		want app.QuoteSubmission
	}{
		{
			name: "complete request",
			req: &QuoteRequest{
				Revenue:  json.RawMessage("250000"),
				State:    "TX",
				Business: "restaurant",
			},
			want: app.QuoteSubmission{
				Revenue:  app.Revenue(250000),
				State:    "TX",
				Business: "restaurant",
			},
		},
		{
			name: "empty request",
			req:  &QuoteRequest{},
			want: app.QuoteSubmission{Revenue: app.RevenueMissing()},
		},
		{
			name: "string revenue carried as invalid, casing untouched",
			req: &QuoteRequest{
				Revenue:  json.RawMessage(`"250000"`),
				State:    "tx",
				Business: "RESTAURANT",
			},
			want: app.QuoteSubmission{
				Revenue:  app.RevenueInvalid(),
				State:    "tx",
				Business: "RESTAURANT",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.req.ToSubmission()
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestMapDomainError tests mapping domain errors to status and envelope.
func TestMapDomainError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantError   string
		wantMessage string
	}{
		{
			name:       "nil error",
			err:        nil,
			wantStatus: http.StatusOK,
		},
		{
			name:        "missing fields",
			err:         domain.NewMissingFieldsError("revenue", "state"),
			wantStatus:  http.StatusBadRequest,
			wantError:   CategoryMissingFields,
			wantMessage: "missing required fields: revenue, state",
		},
		{
			name:        "invalid revenue",
			err:         domain.NewInvalidRevenueError("must be a number"),
			wantStatus:  http.StatusBadRequest,
			wantError:   CategoryInvalidRevenue,
			wantMessage: "invalid revenue: must be a number",
		},
		{
			name:        "invalid state",
			err:         domain.NewInvalidStateError("ZZ"),
			wantStatus:  http.StatusBadRequest,
			wantError:   CategoryInvalidState,
			wantMessage: `invalid state "ZZ"`,
		},
		{
			name:        "invalid business type",
			err:         domain.NewInvalidBusinessTypeError("tech"),
			wantStatus:  http.StatusBadRequest,
			wantError:   CategoryInvalidBusinessType,
			wantMessage: `invalid business type "tech"`,
		},
		{
			name:        "wrapped domain error still maps by category",
			err:         fmt.Errorf("calculating quote: %w", domain.NewInvalidStateError("XX")),
			wantStatus:  http.StatusBadRequest,
			wantError:   CategoryInvalidState,
			wantMessage: `calculating quote: invalid state "XX"`,
		},
		{
			name:        "unknown error stays generic",
			err:         errors.New("pricing table corrupted"),
			wantStatus:  http.StatusInternalServerError,
			wantError:   CategoryInternal,
			wantMessage: "an internal error occurred",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, resp := MapDomainError(tt.err)

			assert.Equal(t, tt.wantStatus, status)

			if tt.err == nil {
				assert.Nil(t, resp)
				return
			}

			require.NotNil(t, resp)
			assert.Equal(t, tt.wantError, resp.Error)
			assert.Equal(t, tt.wantMessage, resp.Message)
		})
	}
}

// TestHandleError tests writing mapped errors to the response.
func TestHandleError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantError   string
		wantMessage string
	}{
		{
			name:        "domain error writes category envelope",
			err:         domain.NewInvalidRevenueError("must be non-negative"),
			wantStatus:  http.StatusBadRequest,
			wantError:   CategoryInvalidRevenue,
			wantMessage: "invalid revenue: must be non-negative",
		},
		{
			name:        "unknown error writes generic envelope",
			err:         errors.New("downstream exploded"),
			wantStatus:  http.StatusInternalServerError,
			wantError:   CategoryInternal,
			wantMessage: "an internal error occurred",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			logger := slog.New(slog.NewTextHandler(io.Discard, nil))
			req := httptest.NewRequest(http.MethodPost, "/", nil)
			c.Request = req.WithContext(logging.WithContext(req.Context(), logger))

			HandleError(c, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)

			var resp ErrorResponse
			err := json.Unmarshal(w.Body.Bytes(), &resp)
			require.NoError(t, err)

			assert.Equal(t, tt.wantError, resp.Error)
			assert.Equal(t, tt.wantMessage, resp.Message)
		})
	}
}

// TestGetTraceID tests trace ID extraction from the request context.
func TestGetTraceID(t *testing.T) {
	t.Run("no active span", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

		assert.Empty(t, GetTraceID(c))
	})

	t.Run("span in request context", func(t *testing.T) {
		traceID, err := trace.TraceIDFromHex("0af7651916cd43dd8448eb211c80319c")
		require.NoError(t, err)
		spanID, err := trace.SpanIDFromHex("b7ad6b7169203331")
		require.NoError(t, err)

		sc := trace.NewSpanContext(trace.SpanContextConfig{
			TraceID:    traceID,
			SpanID:     spanID,
			TraceFlags: trace.FlagsSampled,
		})

		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		c.Request = req.WithContext(trace.ContextWithSpanContext(req.Context(), sc))

		assert.Equal(t, "0af7651916cd43dd8448eb211c80319c", GetTraceID(c))
	})
}

// TestBindQuoteRequest tests JSON body binding behavior.
func TestBindQuoteRequest(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantErr     bool
		wantRequest *QuoteRequest
	}{
		{
			name: "well-formed body",
			body: `{"revenue": 50000, "state": "CA", "business": "retail"}`,
			wantRequest: &QuoteRequest{
				Revenue:  json.RawMessage("50000"),
				State:    "CA",
				Business: "retail",
			},
		},
		{
			name: "unknown fields are ignored",
			body: `{"revenue": 1, "state": "CA", "business": "retail", "channel": "web"}`,
			wantRequest: &QuoteRequest{
				Revenue:  json.RawMessage("1"),
				State:    "CA",
				Business: "retail",
			},
		},
		{
			name:        "empty body binds as empty request",
			body:        "",
			wantRequest: &QuoteRequest{},
		},
		{
			name:    "truncated JSON",
			body:    `{"revenue":`,
			wantErr: true,
		},
		{
			name:    "not JSON at all",
			body:    "revenue=50000&state=CA",
			wantErr: true,
		},
		{
			name:    "array body",
			body:    `[50000, "CA", "retail"]`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			c.Request.Header.Set("Content-Type", "application/json")

			req, err := BindQuoteRequest(c)

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, IsBindingError(err))
				assert.Nil(t, req)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantRequest, req)
		})
	}
}

// TestIsBindingError tests binding error detection.
func TestIsBindingError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "direct binding error", err: ErrBinding, want: true},
		{name: "wrapped binding error", err: fmt.Errorf("%w: unexpected EOF", ErrBinding), want: true},
		{name: "unrelated error", err: errors.New("boom"), want: false},
		{name: "nil error", err: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsBindingError(tt.err))
		})
	}
}

// TestNewQuoteResponse tests conversion of a domain quote to the wire form.
func TestNewQuoteResponse(t *testing.T) {
	quote := &domain.Quote{
		ID:           "Q-1743499800000-AB12C",
		Premium:      1500.00,
		CalculatedAt: time.Date(2025, 4, 1, 9, 30, 0, 0, time.UTC),
	}

	resp := NewQuoteResponse(quote)

	assert.Equal(t, "Q-1743499800000-AB12C", resp.QuoteID)
	assert.InDelta(t, 1500.00, resp.Premium, 0)
	assert.Equal(t, "2025-04-01T09:30:00Z", resp.CalculatedAt)

	parsed, err := time.Parse(time.RFC3339, resp.CalculatedAt)
	require.NoError(t, err)
	assert.True(t, parsed.Equal(quote.CalculatedAt))
}

// TestQuoteResponseWireFormat tests the success payload's JSON field names.
func TestQuoteResponseWireFormat(t *testing.T) {
	resp := &QuoteResponse{
		Premium:      3250.13,
		QuoteID:      "Q-1743499800000-AB12C",
		CalculatedAt: "2025-04-01T09:30:00Z",
	}

	body, err := json.Marshal(resp)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"premium": 3250.13,
		"quoteId": "Q-1743499800000-AB12C",
		"calculatedAt": "2025-04-01T09:30:00Z"
	}`, string(body))
}
