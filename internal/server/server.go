// Package server wires the stores, handlers, and middleware into one HTTP
// server.
package server

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jonboulle/clockwork"

	"gomun/internal/account"
	"gomun/internal/config"
	"gomun/internal/expert"
	"gomun/internal/notification"
	"gomun/internal/profile"
	"gomun/internal/session"
)

// Server holds the dependencies for the HTTP server
type Server struct {
	cfg *config.Config

	accounts *account.Store
	profiles *profile.Store
	sessions session.Manager
	mailbox  *notification.Mailbox
	experts  *expert.Service
}

// New constructs the server and all of its stores. Every store is owned here
// and torn down with the process; nothing survives a restart.
func New(cfg *config.Config) *Server {
	clock := clockwork.NewRealClock()

	accounts := account.NewStore()
	profiles := profile.NewStore()
	sessions := session.NewManager(session.NewMemoryStore(), cfg.SessionTTL, clock)
	mailbox := notification.NewMailbox(accounts, clock)
	experts := expert.NewService(accounts, profiles)

	slog.Info("Stores initialized", "session_ttl", cfg.SessionTTL.String())

	return &Server{
		cfg:      cfg,
		accounts: accounts,
		profiles: profiles,
		sessions: sessions,
		mailbox:  mailbox,
		experts:  experts,
	}
}

// HTTPServer builds the http.Server with the configured timeout envelope
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:              fmt.Sprintf(":%d", s.cfg.Port),
		Handler:           s.RegisterRoutes(),
		ReadTimeout:       s.cfg.ReadTimeout,
		WriteTimeout:      s.cfg.WriteTimeout,
		IdleTimeout:       s.cfg.IdleTimeout,
		ReadHeaderTimeout: 5 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}
}
