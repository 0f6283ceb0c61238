package handlers

import (
	"net/http"

	request "atelie_crm/internal/adapter/http/dto/request"
	response "atelie_crm/internal/adapter/http/dto/response"
	"atelie_crm/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ServiceOrderHandler exposes service orders over HTTP. Totals are derived
// server-side from the line items; clients never send a total.
type ServiceOrderHandler struct {
	session usecase.ICRMSession
}

func NewServiceOrderHandler(session usecase.ICRMSession) *ServiceOrderHandler {
	return &ServiceOrderHandler{session: session}
}

// ListOrders returns all orders, most recently opened first.
func (h *ServiceOrderHandler) ListOrders(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromServiceOrders(h.session.Orders()))
}

func (h *ServiceOrderHandler) CreateOrder(c *gin.Context) {
	var payload request.OrderCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	order, err := h.session.AddOrder(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromServiceOrder(order))
}

func (h *ServiceOrderHandler) UpdateOrder(c *gin.Context) {
	var payload request.OrderUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	order, err := h.session.UpdateOrder(c.Request.Context(), c.Param("id"), payload.ToPatch())
	if err != nil {
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceOrder(order))
}

func (h *ServiceOrderHandler) DeleteOrder(c *gin.Context) {
	if err := h.session.RemoveOrder(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}
