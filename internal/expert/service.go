// Package expert derives the public expert directory from accounts and
// profiles. It is a read model only; it owns no state of its own.
package expert

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gomun/internal/account"
	"gomun/internal/profile"
)

// Directory card fallbacks shown when an expert has not filled in a field yet.
const (
	defaultTitle        = "Expert"
	defaultRegion       = "Nationwide"
	defaultAvailability = "Negotiable"
	defaultResponseTime = "Within 24 hours"
	defaultAvatar       = "/images/av1.svg"
	defaultRating       = 4.5
)

// Card is one entry in the public expert directory.
type Card struct {
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Title        string  `json:"title"`
	Region       string  `json:"region"`
	Focus        string  `json:"focus"`
	Availability string  `json:"availability"`
	ResponseTime string  `json:"responseTime"`
	Avatar       string  `json:"avatar"`
	Rating       float64 `json:"rating"`
}

// Service builds directory cards from the account and profile stores.
type Service struct {
	accounts *account.Store
	profiles *profile.Store
}

// NewService creates a new expert directory service
func NewService(accounts *account.Store, profiles *profile.Store) *Service {
	return &Service{
		accounts: accounts,
		profiles: profiles,
	}
}

// List returns one card per registered expert.
func (s *Service) List() []Card {
	experts := s.accounts.Experts()

	cards := make([]Card, 0, len(experts))
	for _, acct := range experts {
		p, err := s.profiles.Get(acct.Email)
		if err != nil {
			// A freshly registered expert always has a profile, but the
			// directory tolerates a missing one and falls back everywhere.
			p = profile.Profile{}
		}

		cards = append(cards, Card{
			Name:         acct.Name,
			Email:        acct.Email,
			Title:        firstNonEmpty(p.Title, acct.Specialty, defaultTitle),
			Region:       firstNonEmpty(p.Region, defaultRegion),
			Focus:        firstNonEmpty(p.Focus, acct.Specialty),
			Availability: firstNonEmpty(p.Availability, defaultAvailability),
			ResponseTime: firstNonEmpty(p.ResponseTime, defaultResponseTime),
			Avatar:       defaultAvatar,
			Rating:       defaultRating,
		})
	}
	return cards
}

// Handler handles GET /api/experts
type Handler struct {
	service *Service
}

// NewHandler creates a new expert directory handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// List handles GET /api/experts; the directory is public.
func (h *Handler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.List())
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
