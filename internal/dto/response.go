package dto

// Response is the envelope wrapping every API response.
type Response struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Data    any      `json:"data,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

// SuccessResponse builds a success envelope.
func SuccessResponse(data any, message string) Response {
	return Response{
		Success: true,
		Message: message,
		Data:    data,
	}
}

// ErrorResponse builds a failure envelope with optional per-field messages.
func ErrorResponse(message string, errs ...string) Response {
	return Response{
		Success: false,
		Message: message,
		Errors:  errs,
	}
}
