package common

// ErrorResponse is the error envelope returned to external callers.
// It never carries provider error bodies or stack traces; those are logged
// server-side only.
type ErrorResponse struct {
	Error string `json:"error"`
}

// NewErrorResponse creates a new error response with the given message
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}

// HealthResponse is returned by the health check endpoint
type HealthResponse struct {
	Status      string `json:"status"`
	Environment string `json:"environment"`
	Channels    struct {
		Email bool `json:"email"`
		SMS   bool `json:"sms"`
	} `json:"channels"`
}
