package dto

// APIResponse is the envelope every quoting endpoint returns. Data carries
// the endpoint-specific payload on success; Error is set only on failure.
type APIResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Data    any          `json:"data,omitempty"`
	Error   *ErrorDetail `json:"error,omitempty"`
}

// ErrorDetail carries a stable machine-readable code plus optional
// human-oriented details such as validation messages.
type ErrorDetail struct {
	Code    string `json:"code"`
	Details any    `json:"details,omitempty"`
}
