package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/talentgate/careers_backend/internal/service/notify"
	"github.com/talentgate/careers_backend/internal/store"
	"github.com/talentgate/careers_backend/internal/validate"
)

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	// Submit validates and persists an application, returning the new id.
	// A *validate.ValidationError is returned for payloads violating the
	// schema; nothing is persisted in that case.
	Submit(ctx context.Context, in validate.ApplicationInput) (int, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type applicationService struct {
	st         store.Storage
	dispatcher notify.Dispatcher
	logger     *slog.Logger
}

func New(st store.Storage, dispatcher notify.Dispatcher, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &applicationService{st: st, dispatcher: dispatcher, logger: logger}
}

func (s *applicationService) Submit(ctx context.Context, in validate.ApplicationInput) (int, error) {
	if verr := validate.Application(in); verr != nil {
		return 0, verr
	}

	id := s.st.CreateApplication(store.Application{
		JobID:        in.JobID,
		FullName:     in.FullName,
		Email:        in.Email,
		Phone:        in.Phone,
		PortfolioURL: in.PortfolioURL,
		CoverLetter:  in.CoverLetter,
	})

	s.logger.Info("application submitted", "id", id, "job_id", in.JobID)

	// Notification is fired only after the authoritative write and is
	// observed for logging alone; the submission result never depends on
	// it. WithoutCancel keeps the dispatch alive past the request.
	go s.dispatcher.NotifyApplication(context.WithoutCancel(ctx), notify.ApplicationNotice{
		JobID:        in.JobID,
		JobTitle:     s.jobTitle(in.JobID),
		FullName:     in.FullName,
		Email:        in.Email,
		Phone:        in.Phone,
		PortfolioURL: in.PortfolioURL,
		CoverLetter:  in.CoverLetter,
	})

	return id, nil
}

// jobTitle resolves the title for the notification. Applications may
// reference a job the catalog no longer has; a placeholder embedding the
// id stands in.
func (s *applicationService) jobTitle(jobID int) string {
	if j, ok := s.st.GetJob(jobID); ok {
		return j.Title
	}
	return fmt.Sprintf("Position ID: %d", jobID)
}
