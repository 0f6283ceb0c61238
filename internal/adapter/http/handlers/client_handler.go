package handlers

import (
	"net/http"

	request "atelie_crm/internal/adapter/http/dto/request"
	response "atelie_crm/internal/adapter/http/dto/response"
	"atelie_crm/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ClientHandler exposes the client book over HTTP.
type ClientHandler struct {
	session usecase.ICRMSession
}

func NewClientHandler(session usecase.ICRMSession) *ClientHandler {
	return &ClientHandler{session: session}
}

// ListClients returns the client book sorted by name.
func (h *ClientHandler) ListClients(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromClients(h.session.Clients()))
}

func (h *ClientHandler) CreateClient(c *gin.Context) {
	var payload request.ClientCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	client, err := h.session.AddClient(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromClient(client))
}

func (h *ClientHandler) UpdateClient(c *gin.Context) {
	var payload request.ClientUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	client, err := h.session.UpdateClient(c.Request.Context(), c.Param("id"), payload.ToPatch())
	if err != nil {
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromClient(client))
}

// DeleteClient removes the client. Orders referencing it keep their
// client_id; deletes never cascade.
func (h *ClientHandler) DeleteClient(c *gin.Context) {
	if err := h.session.RemoveClient(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}
