package server

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"gomun/internal/account"
	"gomun/internal/expert"
	"gomun/internal/gateway"
	"gomun/internal/metrics"
	"gomun/internal/notification"
	"gomun/internal/profile"
)

// RegisterRoutes builds the gin engine with the full middleware chain and
// every API route.
func (s *Server) RegisterRoutes() http.Handler {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(gateway.RequestID())
	r.Use(gateway.Logging())
	r.Use(metrics.Middleware())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     s.cfg.CORSAllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	r.GET("/health", s.healthHandler)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	accountHandler := account.NewHandler(s.accounts, s.profiles, s.sessions)
	profileHandler := profile.NewHandler(s.profiles)
	notificationHandler := notification.NewHandler(s.mailbox)
	expertHandler := expert.NewHandler(s.experts)

	api := r.Group("/api")
	{
		api.POST("/register", accountHandler.Register)
		api.POST("/login", accountHandler.Login)
		api.GET("/experts", expertHandler.List)
	}

	authed := api.Group("", gateway.SessionAuth(s.sessions))
	{
		authed.GET("/profile/:email", gateway.RequireSelf("email"), profileHandler.Get)
		authed.PATCH("/profile/:email", gateway.RequireSelf("email"), profileHandler.Update)

		authed.GET("/notifications", notificationHandler.List)
		authed.POST("/notifications", notificationHandler.Create)
		authed.PATCH("/notifications/:id", notificationHandler.Update)
	}

	return r
}

// healthHandler reports liveness plus store sizes
func (s *Server) healthHandler(c *gin.Context) {
	activeSessions, err := s.sessions.Active(c.Request.Context())
	if err != nil {
		activeSessions = -1
	}

	c.JSON(http.StatusOK, gin.H{
		"status":        "healthy",
		"accounts":      s.accounts.Count(),
		"sessions":      activeSessions,
		"notifications": s.mailbox.Count(),
	})
}
