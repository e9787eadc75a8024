// Package handlers contains HTTP request handlers and presentation layer logic for the API endpoints
package handlers

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"

	"github.com/logenix/freightquote/app/dto"
	businessflow "github.com/logenix/freightquote/business_flow"
)

const requestTimeout = 30 * time.Second

type ctxKey string

func errorResponse(c fiber.Ctx, statusCode int, message, errorCode string, details any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: false,
		Message: message,
		Error: &dto.ErrorDetail{
			Code:    errorCode,
			Details: details,
		},
	})
}

func successResponse(c fiber.Ctx, statusCode int, message string, data any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// createRequestContext builds a request-scoped context carrying
// observability values for the business layer.
func createRequestContext(c fiber.Ctx, endpoint string) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)

	ctx = context.WithValue(ctx, ctxKey("request_id"), c.Get("X-Request-ID"))
	ctx = context.WithValue(ctx, ctxKey("user_agent"), c.Get("User-Agent"))
	ctx = context.WithValue(ctx, ctxKey("ip_address"), c.IP())
	ctx = context.WithValue(ctx, ctxKey("endpoint"), endpoint)
	ctx = context.WithValue(ctx, ctxKey("cancel_func"), cancel)

	return ctx
}

func validationMessages(err error) []string {
	var validationErrors []string
	var fieldErrors validator.ValidationErrors
	if errors.As(err, &fieldErrors) {
		for _, fe := range fieldErrors {
			validationErrors = append(validationErrors, getValidationErrorMessage(fe))
		}
	}
	return validationErrors
}

func getValidationErrorMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return err.Field() + " is required"
	case "min":
		return err.Field() + " must have at least " + err.Param() + " entries"
	case "max":
		return err.Field() + " must be at most " + err.Param() + " characters"
	case "gte":
		return err.Field() + " must be at least " + err.Param()
	case "lte":
		return err.Field() + " must be at most " + err.Param()
	default:
		return err.Field() + " is invalid"
	}
}

// businessErrorResponse maps business error codes onto HTTP statuses.
func businessErrorResponse(c fiber.Ctx, err error) error {
	var bizErr *businessflow.BusinessError
	if errors.As(err, &bizErr) {
		switch {
		case businessflow.IsValidationError(err):
			return errorResponse(c, fiber.StatusBadRequest, bizErr.Message, bizErr.Code, nil)
		case bizErr.Code == "ROUTE_CLOSED_UNCONFIRMED":
			return errorResponse(c, fiber.StatusConflict, bizErr.Message, bizErr.Code, nil)
		default:
			return errorResponse(c, fiber.StatusInternalServerError, bizErr.Message, bizErr.Code, nil)
		}
	}
	return errorResponse(c, fiber.StatusInternalServerError, "Internal server error", "INTERNAL_ERROR", nil)
}
