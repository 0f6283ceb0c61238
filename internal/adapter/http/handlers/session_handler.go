package handlers

import (
	"net/http"

	response "atelie_crm/internal/adapter/http/dto/response"
	"atelie_crm/internal/usecase"

	"github.com/gin-gonic/gin"
)

// SessionHandler covers the session-wide operations: reconciling the
// in-memory collections with the record store and the dashboard figures.
type SessionHandler struct {
	session usecase.ICRMSession
}

func NewSessionHandler(session usecase.ICRMSession) *SessionHandler {
	return &SessionHandler{session: session}
}

// Refresh re-fetches every collection from the record store. A refresh that
// raced with a mutation is silently discarded; the response is 204 either
// way.
func (h *SessionHandler) Refresh(c *gin.Context) {
	if err := h.session.Refresh(c.Request.Context()); err != nil {
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// Dashboard returns the home-screen figures: order counts, completed
// revenue, outstanding totals and the cash balance.
func (h *SessionHandler) Dashboard(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromDashboard(
		h.session.OrderStats(),
		h.session.PendingTotals(),
		h.session.CashBalance(),
	))
}
