package account

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"gomun/internal/apperr"
	"gomun/internal/metrics"
	"gomun/internal/profile"
	"gomun/internal/session"
)

// Handler handles registration and login HTTP requests
type Handler struct {
	store    *Store
	profiles *profile.Store
	sessions session.Manager
}

// NewHandler creates a new account handler
func NewHandler(store *Store, profiles *profile.Store, sessions session.Manager) *Handler {
	return &Handler{
		store:    store,
		profiles: profiles,
		sessions: sessions,
	}
}

// Register handles POST /api/register. A successful registration immediately
// issues a session, so clients never log in twice.
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.Abort(c, apperr.Validation("invalid register payload: "+err.Error()))
		return
	}

	acct, err := h.store.Register(req)
	if err != nil {
		apperr.Abort(c, err)
		return
	}

	// Experts get their public profile projection seeded right away.
	// This is a collaborator write; it completes before the response.
	if acct.Role == RoleExpert {
		h.profiles.Seed(acct.Email, acct.Name, acct.Specialty)
	}

	slog.Info("Account registered", "email", acct.Email, "role", acct.Role)

	h.respondWithSession(c, acct)
}

// Login handles POST /api/login
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.Abort(c, apperr.Validation("invalid login payload: "+err.Error()))
		return
	}

	acct, err := h.store.Authenticate(req.Role, req.Email, req.Password)
	if err != nil {
		apperr.Abort(c, err)
		return
	}

	h.respondWithSession(c, acct)
}

func (h *Handler) respondWithSession(c *gin.Context, acct *Account) {
	token, expiresIn, err := h.sessions.Issue(c.Request.Context(), acct.Email)
	if err != nil {
		apperr.Abort(c, apperr.Internal("failed to create session", err))
		return
	}

	metrics.SessionsIssuedTotal.Inc()

	c.JSON(http.StatusOK, AuthResponse{
		Token:     token,
		Role:      acct.Role,
		Name:      acct.Name,
		Email:     acct.Email,
		ExpiresIn: expiresIn,
	})
}
