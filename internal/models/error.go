package models

// ErrorResponse is the body returned when a single resource cannot be served
type ErrorResponse struct {
	Error string `json:"error"`
}

// ErrorsResponse is the body returned when a write request is rejected
type ErrorsResponse struct {
	Errors []string `json:"errors"`
}

// Error message constants
const (
	MsgRestaurantNotFound  = "Restaurant not found"
	MsgMissingFields       = "Missing data for required field(s)."
	MsgValidationErrors    = "validation errors"
	MsgInvalidRequestBody  = "Invalid request body"
	MsgInternalServerError = "Internal server error"
)

// NewErrorResponse creates a single-message error body
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}

// NewErrorsResponse creates a multi-message error body
func NewErrorsResponse(messages ...string) ErrorsResponse {
	if messages == nil {
		messages = []string{}
	}
	return ErrorsResponse{Errors: messages}
}
