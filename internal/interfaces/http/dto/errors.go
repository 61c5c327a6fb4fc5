package dto

import (
	"net/http"

	"github.com/erp/backoffice/internal/domain/shared"
)

// Error codes. Format: ERR_<DESCRIPTION>
const (
	ErrCodeInternal               = "ERR_INTERNAL"
	ErrCodeValidation             = "ERR_VALIDATION"
	ErrCodeBadRequest             = "ERR_BAD_REQUEST"
	ErrCodeInvalidInput           = "ERR_INVALID_INPUT"
	ErrCodeInvalidJSON            = "ERR_INVALID_JSON"
	ErrCodeNotFound               = "ERR_NOT_FOUND"
	ErrCodeAlreadyExists          = "ERR_ALREADY_EXISTS"
	ErrCodeConflict               = "ERR_CONFLICT"
	ErrCodeCreationOrUpdateFailed = "ERR_CREATION_OR_UPDATE_FAILED"
	ErrCodeInvalidSequenceState   = "ERR_INVALID_SEQUENCE_STATE"
	ErrCodeRequestTooLarge        = "ERR_REQUEST_TOO_LARGE"
	ErrCodeTimeout                = "ERR_TIMEOUT"
	ErrCodeUnavailable            = "ERR_UNAVAILABLE"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeInternal:               http.StatusInternalServerError,
	ErrCodeValidation:             http.StatusBadRequest,
	ErrCodeBadRequest:             http.StatusBadRequest,
	ErrCodeInvalidInput:           http.StatusBadRequest,
	ErrCodeInvalidJSON:            http.StatusBadRequest,
	ErrCodeNotFound:               http.StatusNotFound,
	ErrCodeAlreadyExists:          http.StatusConflict,
	ErrCodeConflict:               http.StatusConflict,
	ErrCodeCreationOrUpdateFailed: http.StatusBadRequest,
	ErrCodeInvalidSequenceState:   http.StatusUnprocessableEntity,
	ErrCodeRequestTooLarge:        http.StatusRequestEntityTooLarge,
	ErrCodeTimeout:                http.StatusGatewayTimeout,
	ErrCodeUnavailable:            http.StatusServiceUnavailable,
}

// GetHTTPStatus returns the HTTP status for an error code, 500 when unknown
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// domainCodes maps domain error codes to API error codes
var domainCodes = map[string]string{
	shared.CodeNotFound:               ErrCodeNotFound,
	shared.CodeConflict:               ErrCodeConflict,
	shared.CodeCreationOrUpdateFailed: ErrCodeCreationOrUpdateFailed,
	shared.CodeInvalidSequenceState:   ErrCodeInvalidSequenceState,
	shared.CodeInvalidInput:           ErrCodeInvalidInput,
}

// NormalizeErrorCode converts a domain error code to its API code.
// Codes that are already API codes, or unknown, are returned as-is.
func NormalizeErrorCode(code string) string {
	if apiCode, ok := domainCodes[code]; ok {
		return apiCode
	}
	return code
}
