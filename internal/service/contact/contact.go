package contact

import (
	"context"
	"log/slog"

	"github.com/talentgate/careers_backend/internal/service/notify"
	"github.com/talentgate/careers_backend/internal/store"
	"github.com/talentgate/careers_backend/internal/validate"
)

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	// Submit validates and persists a contact message, returning the new
	// id. Schema violations come back as *validate.ValidationError.
	Submit(ctx context.Context, in validate.ContactInput) (int, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type contactService struct {
	st         store.Storage
	dispatcher notify.Dispatcher
	logger     *slog.Logger
}

func New(st store.Storage, dispatcher notify.Dispatcher, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &contactService{st: st, dispatcher: dispatcher, logger: logger}
}

func (s *contactService) Submit(ctx context.Context, in validate.ContactInput) (int, error) {
	if verr := validate.Contact(in); verr != nil {
		return 0, verr
	}

	id := s.st.CreateContactMessage(store.ContactMessage{
		Name:    in.Name,
		Email:   in.Email,
		Subject: in.Subject,
		Message: in.Message,
	})

	s.logger.Info("contact message submitted", "id", id)

	go s.dispatcher.NotifyContact(context.WithoutCancel(ctx), notify.ContactNotice{
		Name:    in.Name,
		Email:   in.Email,
		Subject: in.Subject,
		Message: in.Message,
	})

	return id, nil
}
