package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quote-calculator/internal/adapters/http/dto"
	"github.com/jsamuelsen/quote-calculator/internal/app"
)

// QuoteHandler handles premium quote HTTP endpoints.
type QuoteHandler struct {
	service *app.QuoteService
}

// NewQuoteHandler creates a new quote handler.
func NewQuoteHandler(service *app.QuoteService) *QuoteHandler {
	return &QuoteHandler{
		service: service,
	}
}

// CreateQuote handles POST /
// Prices a submission and returns the quote, or rejects it with the
// first failed validation check.
//
// @Summary Calculate a premium quote
// @Description Computes an insurance premium from annual revenue, state, and business type
// @Tags quotes
// @Accept json
// @Produce json
// @Param request body dto.QuoteRequest true "Quote submission"
// @Success 200 {object} dto.QuoteResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router / [post]
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	req, err := dto.BindQuoteRequest(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.CategoryMalformedPayload,
			"request body must be valid JSON",
		))

		return
	}

	quote, err := h.service.CalculateQuote(c.Request.Context(), req.ToSubmission())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuoteResponse(quote))
}

// RegisterQuoteRoutes registers quote routes on the given router group.
func (h *QuoteHandler) RegisterQuoteRoutes(rg *gin.RouterGroup) {
	rg.POST("", h.CreateQuote)
}
