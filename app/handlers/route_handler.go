package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"

	"github.com/logenix/freightquote/app/dto"
	businessflow "github.com/logenix/freightquote/business_flow"
)

// RouteHandlerInterface defines the contract for route suggestion handlers
type RouteHandlerInterface interface {
	FindRoutes(c fiber.Ctx) error
	AcceptCustomRoute(c fiber.Ctx) error
}

// RouteHandler handles route suggestion HTTP requests
type RouteHandler struct {
	routeFlow businessflow.RouteFlow
	validator *validator.Validate
}

// NewRouteHandler creates a new route handler
func NewRouteHandler(routeFlow businessflow.RouteFlow) *RouteHandler {
	return &RouteHandler{
		routeFlow: routeFlow,
		validator: validator.New(),
	}
}

// FindRoutes suggests routes for an origin/destination pair
// @Summary Find Routes
// @Description Suggest route candidates between a pick up point and a point of delivery
// @Tags Routes
// @Accept json
// @Produce json
// @Param request body dto.FindRoutesRequest true "Route search"
// @Success 200 {object} dto.APIResponse{data=dto.FindRoutesResponse} "Route candidates"
// @Failure 400 {object} dto.APIResponse "Validation error"
// @Router /api/v1/routes/find [post]
func (h *RouteHandler) FindRoutes(c fiber.Ctx) error {
	var req dto.FindRoutesRequest
	if err := c.Bind().JSON(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", err.Error())
	}

	if err := h.validator.Struct(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", validationMessages(err))
	}

	result, err := h.routeFlow.FindRoutes(createRequestContext(c, "/api/v1/routes/find"), &req)
	if err != nil {
		return businessErrorResponse(c, err)
	}

	return successResponse(c, fiber.StatusOK, "Route candidates retrieved", result)
}

// AcceptCustomRoute records a user-typed route
// @Summary Accept Custom Route
// @Description Validate and remember a user-typed route for later recall
// @Tags Routes
// @Accept json
// @Produce json
// @Param request body dto.AcceptCustomRouteRequest true "Custom route"
// @Success 200 {object} dto.APIResponse{data=dto.AcceptCustomRouteResponse} "Custom route accepted"
// @Failure 400 {object} dto.APIResponse "Validation error"
// @Router /api/v1/routes/custom [post]
func (h *RouteHandler) AcceptCustomRoute(c fiber.Ctx) error {
	var req dto.AcceptCustomRouteRequest
	if err := c.Bind().JSON(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", err.Error())
	}

	if err := h.validator.Struct(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", validationMessages(err))
	}

	result, err := h.routeFlow.AcceptCustomRoute(createRequestContext(c, "/api/v1/routes/custom"), &req)
	if err != nil {
		return businessErrorResponse(c, err)
	}

	return successResponse(c, fiber.StatusOK, "Custom route accepted", result)
}
