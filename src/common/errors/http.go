package errors

// Response represents a standard error response for HTTP APIs
type Response struct {
	// Error contains the error code (domain.code format)
	Error string `json:"error"`

	// Message contains a human-readable error message
	Message string `json:"message"`
}

// ToResponse converts an Error to an HTTP response structure
func (e *Error) ToResponse() Response {
	return Response{
		Error:   string(e.Domain) + "." + string(e.Code),
		Message: e.Message,
	}
}

// NewResponse creates a new error response from an error.
// If the error is an *Error, it uses its domain and code.
// Otherwise, it creates a generic internal error response.
//
// Server-side failures expose the underlying error text in the message
// field. This is part of the API contract, not an accident.
func NewResponse(err error) Response {
	if e, ok := err.(*Error); ok {
		resp := e.ToResponse()
		if e.HTTPStatus >= 500 && e.cause != nil {
			resp.Message = e.cause.Error()
		}
		return resp
	}

	// For non-Error types, return a generic internal error
	return Response{
		Error:   string(DomainInternal) + "." + string(CodeInternal),
		Message: "Internal server error",
	}
}
