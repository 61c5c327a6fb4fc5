package handler

import (
	"net/http"

	"github.com/erp/backoffice/internal/application/crud"
	"github.com/erp/backoffice/internal/domain/shared/query"
	"github.com/erp/backoffice/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// ResourceHandler serves create, list, get, update and delete of one record kind
type ResourceHandler[T any] struct {
	BaseHandler
	service *crud.Service[T]
	filter  query.FilterConfig
}

// NewResourceHandler creates a handler over service
func NewResourceHandler[T any](service *crud.Service[T]) *ResourceHandler[T] {
	return &ResourceHandler[T]{
		service: service,
		filter:  service.Kind().Schema.FilterConfig(),
	}
}

// Create handles POST /
func (h *ResourceHandler[T]) Create(c *gin.Context) {
	var record T
	if err := c.ShouldBindJSON(&record); err != nil {
		h.BindError(c, err)
		return
	}

	created, err := h.service.Create(c.Request.Context(), &record)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, created)
}

// List handles GET / with filter and pagination query keys
func (h *ResourceHandler[T]) List(c *gin.Context) {
	raw := query.RawPagination{
		Page:      c.Query("page"),
		Limit:     c.Query("limit"),
		SortBy:    c.Query("sortBy"),
		SortOrder: c.Query("sortOrder"),
	}

	page, err := h.service.List(c.Request.Context(), h.filter.Select(c.Query), raw)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPageResponse(page))
}

// Get handles GET /:id
func (h *ResourceHandler[T]) Get(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	record, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, record)
}

// Update handles PATCH /:id. Unknown and read-only keys are ignored.
func (h *ResourceHandler[T]) Update(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var patch crud.Patch
	if err := c.ShouldBindJSON(&patch); err != nil {
		h.BindError(c, err)
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, patch)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, updated)
}

// Delete handles DELETE /:id and answers with the removed record
func (h *ResourceHandler[T]) Delete(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	removed, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, removed)
}
