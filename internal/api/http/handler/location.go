package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/talentgate/careers_backend/internal/service/location"
)

type LocationHandler struct {
	svc location.Service
}

func NewLocationHandler(svc location.Service) *LocationHandler {
	return &LocationHandler{svc: svc}
}

// Get reports the visitor's apparent location. The forwarded-for header
// takes precedence so the result reflects the original client behind a
// proxy; the service sanitizes whatever arrives.
func (h *LocationHandler) Get(c fiber.Ctx) error {
	raw := c.Get("X-Forwarded-For")
	if raw == "" {
		raw = c.IP()
	}
	return ok(c, h.svc.Resolve(raw))
}
