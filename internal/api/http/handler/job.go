package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v3"

	"github.com/talentgate/careers_backend/internal/service/job"
)

type JobHandler struct {
	svc job.Service
}

func NewJobHandler(svc job.Service) *JobHandler {
	return &JobHandler{svc: svc}
}

// List returns the full catalog as a bare array.
func (h *JobHandler) List(c fiber.Ctx) error {
	jobs, err := h.svc.List(c.Context())
	if err != nil {
		return internalError(c, "Error fetching jobs")
	}
	return ok(c, jobs)
}

// Get returns a single job. A non-numeric id cannot match any job and is
// reported the same way as an absent one.
func (h *JobHandler) Get(c fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return notFound(c, "Job not found")
	}

	j, err := h.svc.Get(c.Context(), id)
	if err != nil {
		return notFound(c, "Job not found")
	}
	return ok(c, j)
}
