package notification

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gomun/internal/apperr"
	"gomun/internal/gateway"
	"gomun/internal/metrics"
)

// Handler handles notification HTTP requests. All routes require a session;
// every operation is scoped to the caller's own mailbox except Create, which
// delivers into the recipient's.
type Handler struct {
	mailbox *Mailbox
}

// NewHandler creates a new notification handler
func NewHandler(mailbox *Mailbox) *Handler {
	return &Handler{mailbox: mailbox}
}

// List handles GET /api/notifications
func (h *Handler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.mailbox.List(gateway.CallerEmail(c)))
}

// Create handles POST /api/notifications
func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.Abort(c, apperr.Validation("invalid notification payload: "+err.Error()))
		return
	}

	note, err := h.mailbox.Create(gateway.CallerEmail(c), req)
	if err != nil {
		apperr.Abort(c, err)
		return
	}

	metrics.NotificationsCreatedTotal.Inc()

	c.JSON(http.StatusOK, note)
}

// Update handles PATCH /api/notifications/:id
func (h *Handler) Update(c *gin.Context) {
	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.Abort(c, apperr.Validation("invalid notification payload: "+err.Error()))
		return
	}

	note, err := h.mailbox.Mark(gateway.CallerEmail(c), c.Param("id"), *req.Read)
	if err != nil {
		apperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, note)
}
