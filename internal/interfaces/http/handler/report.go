package handler

import (
	"github.com/erp/backoffice/internal/application/report"
	"github.com/gin-gonic/gin"
)

// ReportHandler serves the aggregated reports. Every report accepts optional
// startDate and endDate query keys narrowing the summed records.
type ReportHandler struct {
	BaseHandler
	service *report.Service
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(service *report.Service) *ReportHandler {
	return &ReportHandler{service: service}
}

func (h *ReportHandler) bindRange(c *gin.Context) (report.DateRange, bool) {
	var r report.DateRange
	if err := c.ShouldBindQuery(&r); err != nil {
		h.BadRequest(c, err.Error())
		return r, false
	}
	return r, true
}

// PaymentSourceBalances handles GET /reports/payment-sources/balance
func (h *ReportHandler) PaymentSourceBalances(c *gin.Context) {
	r, ok := h.bindRange(c)
	if !ok {
		return
	}

	out, err := h.service.PaymentSourceBalances(c.Request.Context(), r)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, out)
}

// VehicleExpenses handles GET /reports/vehicles/expenses
func (h *ReportHandler) VehicleExpenses(c *gin.Context) {
	r, ok := h.bindRange(c)
	if !ok {
		return
	}

	out, err := h.service.VehicleExpenses(c.Request.Context(), r)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, out)
}

// ExpenseHeadExpenses handles GET /reports/expense-heads/expenses
func (h *ReportHandler) ExpenseHeadExpenses(c *gin.Context) {
	r, ok := h.bindRange(c)
	if !ok {
		return
	}

	out, err := h.service.ExpenseHeadExpenses(c.Request.Context(), r)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, out)
}
