package model

// Error codes returned in API error responses.
const (
	ErrCodeTokenInvalid  = "TOKEN_INVALID"
	ErrCodeTokenExpired  = "TOKEN_EXPIRED"
	ErrCodeForbidden     = "FORBIDDEN"
	ErrCodeNotFound      = "NOT_FOUND"
	ErrCodeInvalidInput  = "INVALID_INPUT"
	ErrCodeInternalError = "INTERNAL_ERROR"
)

// ErrorResponse is the JSON body returned for any API error.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
