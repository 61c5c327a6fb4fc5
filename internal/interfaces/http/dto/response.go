package dto

import "github.com/erp/backoffice/internal/domain/shared/query"

// Response is the envelope of every API response
type Response struct {
	Success   bool        `json:"success"`
	Data      any         `json:"data,omitempty"`
	Meta      *query.Meta `json:"meta,omitempty"`
	Error     *ErrorInfo  `json:"error,omitempty"`
	RequestID string      `json:"request_id,omitempty"`
}

// ErrorInfo represents error details
type ErrorInfo struct {
	Code    string             `json:"code"`
	Message string             `json:"message"`
	Details []ValidationDetail `json:"details,omitempty"`
}

// ValidationDetail names one invalid field by its JSON name
type ValidationDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// NewSuccessResponse creates a success response
func NewSuccessResponse(data any) Response {
	return Response{Success: true, Data: data}
}

// NewPageResponse carries page.Data as data and page.Meta as meta
func NewPageResponse[T any](page query.Page[T]) Response {
	meta := page.Meta
	data := page.Data
	if data == nil {
		data = []T{}
	}
	return Response{Success: true, Data: data, Meta: &meta}
}

// NewErrorResponse creates an error response. Domain codes are normalized to API codes.
func NewErrorResponse(code, message, requestID string) Response {
	return Response{
		Success:   false,
		Error:     &ErrorInfo{Code: NormalizeErrorCode(code), Message: message},
		RequestID: requestID,
	}
}

// NewValidationErrorResponse creates an ERR_VALIDATION response listing the invalid fields
func NewValidationErrorResponse(message, requestID string, details []ValidationDetail) Response {
	return Response{
		Success: false,
		Error: &ErrorInfo{
			Code:    ErrCodeValidation,
			Message: message,
			Details: details,
		},
		RequestID: requestID,
	}
}
