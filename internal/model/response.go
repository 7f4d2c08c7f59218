package model

// ErrorResponse is the standard envelope for admin API error responses.
// The public admission and portal endpoints keep their original flat wire
// formats instead; see the handler package.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains the structured error information returned by the
// admin API.
type ErrorDetail struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
