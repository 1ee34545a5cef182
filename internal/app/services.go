package app

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/talentgate/careers_backend/config"
	"github.com/talentgate/careers_backend/internal/service/application"
	"github.com/talentgate/careers_backend/internal/service/contact"
	"github.com/talentgate/careers_backend/internal/service/job"
	"github.com/talentgate/careers_backend/internal/service/location"
	"github.com/talentgate/careers_backend/internal/service/notify"
	"github.com/talentgate/careers_backend/internal/store"
	"github.com/talentgate/careers_backend/pkg/email"
	"github.com/talentgate/careers_backend/pkg/emailjs"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideStorage,
		ProvideDispatcher,
		ProvideJobService,
		ProvideApplicationService,
		ProvideContactService,
		ProvideLocationService,
	),
)

// ProvideStorage backs the whole app with one in-memory store. Contents
// reset on restart; that is the contract, not a limitation to paper over.
func ProvideStorage() store.Storage {
	return store.NewMemStorage()
}

func ProvideDispatcher(cfg *config.Config, ejs *emailjs.Client, mailer *email.Client) notify.Dispatcher {
	return notify.New(cfg.Notification, ejs, mailer, slog.Default())
}

func ProvideJobService(st store.Storage) job.Service {
	return job.New(st)
}

func ProvideApplicationService(st store.Storage, dispatcher notify.Dispatcher) application.Service {
	return application.New(st, dispatcher, slog.Default())
}

func ProvideContactService(st store.Storage, dispatcher notify.Dispatcher) contact.Service {
	return contact.New(st, dispatcher, slog.Default())
}

func ProvideLocationService(cfg *config.Config) location.Service {
	return location.New(cfg.Location)
}
