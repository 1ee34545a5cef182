package router

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"

	"github.com/talentgate/careers_backend/config"
	"github.com/talentgate/careers_backend/internal/api/http/handler"
	"github.com/talentgate/careers_backend/internal/service/application"
	"github.com/talentgate/careers_backend/internal/service/contact"
	"github.com/talentgate/careers_backend/internal/service/job"
	"github.com/talentgate/careers_backend/internal/service/location"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg            *config.Config
	JobSvc         job.Service
	ApplicationSvc application.Service
	ContactSvc     contact.Service
	LocationSvc    location.Service
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

func (r *Router) Register(app *fiber.App) {
	r.registerSystemRoutes(app)

	jobH := handler.NewJobHandler(r.p.JobSvc)
	applicationH := handler.NewApplicationHandler(r.p.ApplicationSvc)
	contactH := handler.NewContactHandler(r.p.ContactSvc)
	locationH := handler.NewLocationHandler(r.p.LocationSvc)

	api := app.Group("/api")

	api.Get("/jobs", jobH.List)
	api.Get("/jobs/:id", jobH.Get)
	api.Post("/applications", applicationH.Submit)
	api.Post("/contact", contactH.Submit)
	api.Get("/location", locationH.Get)
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New())
	app.Get(healthcheck.StartupEndpoint, healthcheck.New())

	if r.p.Cfg.Observability.Metrics.Enabled {
		path := r.p.Cfg.Observability.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(promhttp.Handler()))
	}
}
