package handlers

import (
	"github.com/gofiber/fiber/v3"

	businessflow "github.com/logenix/freightquote/business_flow"
)

// ListsHandlerInterface defines the contract for form option handlers
type ListsHandlerInterface interface {
	Options(c fiber.Ctx) error
}

// ListsHandler serves the dropdown and autocomplete option lists
type ListsHandler struct {
	listsFlow businessflow.ListsFlow
}

// NewListsHandler creates a new lists handler
func NewListsHandler(listsFlow businessflow.ListsFlow) *ListsHandler {
	return &ListsHandler{listsFlow: listsFlow}
}

// Options returns the quote form option lists
// @Summary Form Options
// @Description Dropdown and autocomplete values for the quote form
// @Tags Lists
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.FormOptionsResponse} "Form options"
// @Router /api/v1/lists/options [get]
func (h *ListsHandler) Options(c fiber.Ctx) error {
	result, err := h.listsFlow.Options(createRequestContext(c, "/api/v1/lists/options"))
	if err != nil {
		return businessErrorResponse(c, err)
	}

	return successResponse(c, fiber.StatusOK, "Form options retrieved", result)
}
