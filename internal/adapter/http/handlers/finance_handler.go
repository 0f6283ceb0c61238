package handlers

import (
	"net/http"
	"time"

	request "atelie_crm/internal/adapter/http/dto/request"
	response "atelie_crm/internal/adapter/http/dto/response"
	"atelie_crm/internal/usecase"

	"github.com/gin-gonic/gin"
)

// FinanceHandler exposes receivable/payable entries over HTTP, including the
// settle operation that pairs an entry with its cash movement.
type FinanceHandler struct {
	session usecase.ICRMSession
}

func NewFinanceHandler(session usecase.ICRMSession) *FinanceHandler {
	return &FinanceHandler{session: session}
}

// ListEntries returns all entries, latest due date first.
func (h *FinanceHandler) ListEntries(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromFinancialEntries(h.session.Entries()))
}

func (h *FinanceHandler) CreateEntry(c *gin.Context) {
	var payload request.EntryCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	entry, err := h.session.AddEntry(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromFinancialEntry(entry))
}

func (h *FinanceHandler) UpdateEntry(c *gin.Context) {
	var payload request.EntryUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	entry, err := h.session.UpdateEntry(c.Request.Context(), c.Param("id"), payload.ToPatch())
	if err != nil {
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromFinancialEntry(entry))
}

func (h *FinanceHandler) DeleteEntry(c *gin.Context) {
	if err := h.session.RemoveEntry(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// PayEntry settles a pending entry and returns it together with the cash
// movement recorded in the same operation. The body is optional; when
// present it carries the raw payment-provider payload.
func (h *FinanceHandler) PayEntry(c *gin.Context) {
	var payload request.EntryPayRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
			return
		}
	}

	entry, movement, err := h.session.MarkEntryPaid(c.Request.Context(), c.Param("id"), payload.GatewayPayload)
	if err != nil {
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.EntryPaidResponse{
		Entry:    response.FromFinancialEntry(entry),
		Movement: response.FromCashMovement(movement),
	})
}

// ListOverdue returns pending entries whose due date already passed.
func (h *FinanceHandler) ListOverdue(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromFinancialEntries(h.session.OverdueEntries(time.Now().UTC())))
}

// PendingSummary returns the outstanding receivable and payable totals.
func (h *FinanceHandler) PendingSummary(c *gin.Context) {
	totals := h.session.PendingTotals()
	c.JSON(http.StatusOK, response.PendingTotalsResponse{
		Receivable: totals.Receivable.StringFixed(2),
		Payable:    totals.Payable.StringFixed(2),
	})
}
