package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"

	"github.com/logenix/freightquote/app/dto"
	businessflow "github.com/logenix/freightquote/business_flow"
)

// QuoteHandlerInterface defines the contract for quoting handlers
type QuoteHandlerInterface interface {
	FindQuotes(c fiber.Ctx) error
	SubmitQuote(c fiber.Ctx) error
}

// QuoteHandler handles quote search and submission HTTP requests
type QuoteHandler struct {
	quoteFlow      businessflow.QuoteFlow
	submissionFlow businessflow.SubmissionFlow
	validator      *validator.Validate
}

// NewQuoteHandler creates a new quote handler
func NewQuoteHandler(quoteFlow businessflow.QuoteFlow, submissionFlow businessflow.SubmissionFlow) *QuoteHandler {
	return &QuoteHandler{
		quoteFlow:      quoteFlow,
		submissionFlow: submissionFlow,
		validator:      validator.New(),
	}
}

// FindQuotes searches the price catalog
// @Summary Find Quotes
// @Description Search the rates table for a lane and commodity and rank the matches
// @Tags Quotes
// @Accept json
// @Produce json
// @Param request body dto.FindQuotesRequest true "Quote search"
// @Success 200 {object} dto.APIResponse{data=dto.FindQuotesResponse} "Ranked quote candidates"
// @Failure 400 {object} dto.APIResponse "Validation error"
// @Router /api/v1/quotes/find [post]
func (h *QuoteHandler) FindQuotes(c fiber.Ctx) error {
	var req dto.FindQuotesRequest
	if err := c.Bind().JSON(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", err.Error())
	}

	if err := h.validator.Struct(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", validationMessages(err))
	}

	result, err := h.quoteFlow.FindQuotes(createRequestContext(c, "/api/v1/quotes/find"), &req)
	if err != nil {
		return businessErrorResponse(c, err)
	}

	return successResponse(c, fiber.StatusOK, "Quote candidates retrieved", result)
}

// SubmitQuote records a quote form and returns the result page payload
// @Summary Submit Quote
// @Description Record a completed quote form and return the ranked rate candidates
// @Tags Quotes
// @Accept json
// @Produce json
// @Param request body dto.SubmitQuoteRequest true "Quote form"
// @Success 200 {object} dto.APIResponse{data=dto.SubmitQuoteResponse} "Quote recorded"
// @Failure 400 {object} dto.APIResponse "Validation error"
// @Failure 409 {object} dto.APIResponse "Closed route requires confirmation"
// @Router /api/v1/quotes/submit [post]
func (h *QuoteHandler) SubmitQuote(c fiber.Ctx) error {
	var req dto.SubmitQuoteRequest
	if err := c.Bind().JSON(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", err.Error())
	}

	if err := h.validator.Struct(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", validationMessages(err))
	}

	result, err := h.submissionFlow.SubmitQuote(createRequestContext(c, "/api/v1/quotes/submit"), &req)
	if err != nil {
		return businessErrorResponse(c, err)
	}

	return successResponse(c, fiber.StatusOK, "Quote submitted", result)
}
