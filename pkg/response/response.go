package response

// Response represents a standard API response format
type Response struct {
	Status     string      `json:"status"`      // "success" or "error"
	StatusCode int         `json:"status_code"` // HTTP status code
	Data       interface{} `json:"data,omitempty"`
	Error      string      `json:"error,omitempty"`
	Valid      *bool       `json:"valid,omitempty"`  // set only on validation failures
	Errors     []string    `json:"errors,omitempty"` // every violated rule
}

// Success returns a standard success response wrapping the data
func Success(statusCode int, data interface{}) Response {
	return Response{
		Status:     "success",
		StatusCode: statusCode,
		Data:       data,
	}
}

// Error returns a standard error response wrapping the error message
func Error(statusCode int, err string) Response {
	return Response{
		Status:     "error",
		StatusCode: statusCode,
		Error:      err,
	}
}

// Invalid returns an error response listing every validation failure.
func Invalid(statusCode int, errs []string) Response {
	valid := false
	return Response{
		Status:     "error",
		StatusCode: statusCode,
		Error:      "validation failed",
		Valid:      &valid,
		Errors:     errs,
	}
}
