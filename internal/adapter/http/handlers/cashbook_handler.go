package handlers

import (
	"net/http"
	"time"

	request "atelie_crm/internal/adapter/http/dto/request"
	response "atelie_crm/internal/adapter/http/dto/response"
	"atelie_crm/internal/domain/aggregate"
	"atelie_crm/internal/domain/entities"
	"atelie_crm/internal/usecase"

	"github.com/gin-gonic/gin"
)

// CashbookHandler exposes the append-only cash register over HTTP.
type CashbookHandler struct {
	session usecase.ICRMSession
}

func NewCashbookHandler(session usecase.ICRMSession) *CashbookHandler {
	return &CashbookHandler{session: session}
}

// ListMovements returns all movements, most recent first.
func (h *CashbookHandler) ListMovements(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromCashMovements(h.session.Movements()))
}

func (h *CashbookHandler) CreateMovement(c *gin.Context) {
	var payload request.MovementCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	movement, err := h.session.AddMovement(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromCashMovement(movement))
}

func (h *CashbookHandler) GetBalance(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromCashBalance(h.session.CashBalance()))
}

// GetSummary reports inflow/outflow/net for the requested period
// (today, this_week, this_month, this_year).
func (h *CashbookHandler) GetSummary(c *gin.Context) {
	period := aggregate.Period(c.Query("period"))

	summary, err := h.session.CashSummary(period, time.Now().UTC())
	if err != nil {
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCashSummary(string(period), summary))
}

func (h *CashbookHandler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, response.CashCategoriesResponse{Categories: entities.CashCategories})
}
