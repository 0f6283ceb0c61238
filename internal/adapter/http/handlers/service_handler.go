package handlers

import (
	"net/http"

	request "atelie_crm/internal/adapter/http/dto/request"
	response "atelie_crm/internal/adapter/http/dto/response"
	"atelie_crm/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ServiceHandler exposes the service catalog over HTTP.
type ServiceHandler struct {
	session usecase.ICRMSession
}

func NewServiceHandler(session usecase.ICRMSession) *ServiceHandler {
	return &ServiceHandler{session: session}
}

func (h *ServiceHandler) ListServices(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromServices(h.session.Services()))
}

func (h *ServiceHandler) CreateService(c *gin.Context) {
	var payload request.ServiceCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	svc, err := h.session.AddService(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromService(svc))
}

// UpdateService edits the catalog record. Existing order lines keep the
// price snapshotted when they were added.
func (h *ServiceHandler) UpdateService(c *gin.Context) {
	var payload request.ServiceUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	svc, err := h.session.UpdateService(c.Request.Context(), c.Param("id"), payload.ToPatch())
	if err != nil {
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromService(svc))
}

func (h *ServiceHandler) DeleteService(c *gin.Context) {
	if err := h.session.RemoveService(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}
