// Package businessflow contains the core business logic and use cases for freight quoting workflows
package businessflow

import (
	"errors"
	"fmt"
)

// Business flow error constants
var (
	// Route-related errors
	ErrRouteSelectionRequired = errors.New("no route selected")
	ErrOwnRouteTextRequired   = errors.New("own route text is required")
	ErrRouteEndpointsMissing  = errors.New("custom route must contain both origin and destination")
	ErrSelectedRouteNotFound  = errors.New("selected route not found")
	ErrRouteClosedUnconfirmed = errors.New("closed route requires explicit confirmation")

	// Quote search errors
	ErrPriceCatalogUnavailable = errors.New("price catalog unavailable")
	ErrRequiredColumnMissing   = errors.New("required catalog column missing")

	// Shipment detail errors
	ErrDimensionsRequired  = errors.New("width and height are required for open top / flat rack containers")
	ErrTemperatureRequired = errors.New("temperature is required for reefer containers")
)

type BusinessError struct {
	Code    string
	Message string
	Err     error
}

func (e *BusinessError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *BusinessError) Unwrap() error {
	return e.Err
}

func NewBusinessError(code, message string, err error) *BusinessError {
	return &BusinessError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsValidationError reports whether err is a user-actionable validation
// failure rather than an internal fault.
func IsValidationError(err error) bool {
	var be *BusinessError
	if errors.As(err, &be) {
		return be.Code == "VALIDATION_ERROR"
	}
	return false
}
