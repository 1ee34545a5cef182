package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/talentgate/careers_backend/internal/service/contact"
	"github.com/talentgate/careers_backend/internal/validate"
)

type ContactHandler struct {
	svc contact.Service
}

func NewContactHandler(svc contact.Service) *ContactHandler {
	return &ContactHandler{svc: svc}
}

type submitContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (h *ContactHandler) Submit(c fiber.Ctx) error {
	var req submitContactRequest
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	id, err := h.svc.Submit(c.Context(), validate.ContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		var verr *validate.ValidationError
		if errors.As(err, &verr) {
			return badRequest(c, verr.Error())
		}
		return internalError(c, "Error sending message")
	}

	return created(c, "Message sent successfully", id)
}
