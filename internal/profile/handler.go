package profile

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gomun/internal/apperr"
)

// Handler handles profile HTTP requests. Routes are mounted behind
// SessionAuth and RequireSelf, so by the time a handler runs the caller is
// the profile owner.
type Handler struct {
	store *Store
}

// NewHandler creates a new profile handler
func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

// Get handles GET /api/profile/:email
func (h *Handler) Get(c *gin.Context) {
	p, err := h.store.Get(c.Param("email"))
	if err != nil {
		apperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, p)
}

// Update handles PATCH /api/profile/:email
func (h *Handler) Update(c *gin.Context) {
	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.Abort(c, apperr.Validation("invalid profile payload: "+err.Error()))
		return
	}

	p, err := h.store.Update(c.Param("email"), req)
	if err != nil {
		apperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, p)
}
