package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/erp/backoffice/internal/application/crud"
	"github.com/erp/backoffice/internal/domain/shared"
	"github.com/erp/backoffice/internal/infrastructure/logger"
	"github.com/erp/backoffice/internal/interfaces/http/dto"
	"github.com/erp/backoffice/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BaseHandler provides common handler utilities
type BaseHandler struct{}

// getRequestID returns the id set by the RequestID middleware
func getRequestID(c *gin.Context) string {
	return c.GetString(logger.GinRequestIDKey)
}

// Success sends a success response
func (h *BaseHandler) Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(data))
}

// Created sends a 201 created response
func (h *BaseHandler) Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(data))
}

// Error sends an error response, deriving the status from the code
func (h *BaseHandler) Error(c *gin.Context, code, message string) {
	code = dto.NormalizeErrorCode(code)
	c.JSON(dto.GetHTTPStatus(code), dto.NewErrorResponse(code, message, getRequestID(c)))
}

// BadRequest sends a 400 bad request response
func (h *BaseHandler) BadRequest(c *gin.Context, message string) {
	h.Error(c, dto.ErrCodeBadRequest, message)
}

// ValidationError sends a 400 validation error response with details
func (h *BaseHandler) ValidationError(c *gin.Context, details []dto.ValidationDetail) {
	c.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(
		"Request validation failed",
		getRequestID(c),
		details,
	))
}

// parseID reads the :id path parameter. It answers 400 and returns false when
// the parameter is not a UUID.
func (h *BaseHandler) parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, dto.ErrCodeInvalidInput, "Invalid id: "+c.Param("id"))
		return uuid.Nil, false
	}
	return id, true
}

// BindError answers a failed request body binding
func (h *BaseHandler) BindError(c *gin.Context, err error) {
	if details, ok := middleware.ValidationDetails(err); ok {
		h.ValidationError(c, details)
		return
	}
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		h.Error(c, dto.ErrCodeRequestTooLarge, "Request body exceeds maximum allowed size")
		return
	}
	if errors.Is(err, io.EOF) {
		h.Error(c, dto.ErrCodeInvalidJSON, "Request body is empty")
		return
	}
	h.Error(c, dto.ErrCodeInvalidJSON, "Invalid request body: "+err.Error())
}

// HandleError converts service errors to HTTP responses. Unknown errors are
// logged and answered with a generic 500.
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		h.Error(c, domainErr.Code, domainErr.Message)
		return
	}
	if details, ok := middleware.ValidationDetails(err); ok {
		h.ValidationError(c, details)
		return
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.Is(err, crud.ErrDuplicateKey):
		h.Error(c, dto.ErrCodeAlreadyExists, "A record with the same unique value already exists")
	case errors.As(err, &syntaxErr), errors.As(err, &typeErr):
		h.Error(c, dto.ErrCodeInvalidJSON, "Invalid request body: "+err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		_ = c.Error(err)
		h.Error(c, dto.ErrCodeTimeout, "The request took too long")
	default:
		_ = c.Error(err)
		logger.L(c.Request.Context()).Error("Unexpected error",
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
		h.Error(c, dto.ErrCodeInternal, "An unexpected error occurred")
	}
}
