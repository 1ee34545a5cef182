package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/talentgate/careers_backend/internal/service/application"
	"github.com/talentgate/careers_backend/internal/validate"
)

type ApplicationHandler struct {
	svc application.Service
}

func NewApplicationHandler(svc application.Service) *ApplicationHandler {
	return &ApplicationHandler{svc: svc}
}

type submitApplicationRequest struct {
	JobID        int    `json:"jobId"`
	FullName     string `json:"fullName"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	PortfolioURL string `json:"portfolioUrl"`
	CoverLetter  string `json:"coverLetter"`
}

func (h *ApplicationHandler) Submit(c fiber.Ctx) error {
	var req submitApplicationRequest
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	id, err := h.svc.Submit(c.Context(), validate.ApplicationInput{
		JobID:        req.JobID,
		FullName:     req.FullName,
		Email:        req.Email,
		Phone:        req.Phone,
		PortfolioURL: req.PortfolioURL,
		CoverLetter:  req.CoverLetter,
	})
	if err != nil {
		var verr *validate.ValidationError
		if errors.As(err, &verr) {
			return badRequest(c, verr.Error())
		}
		return internalError(c, "Error submitting application")
	}

	return created(c, "Application submitted successfully", id)
}
