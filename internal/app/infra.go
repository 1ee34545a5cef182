package app

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/talentgate/careers_backend/config"
	"github.com/talentgate/careers_backend/pkg/email"
	"github.com/talentgate/careers_backend/pkg/emailjs"
	"github.com/talentgate/careers_backend/pkg/geoip"
	redispkg "github.com/talentgate/careers_backend/pkg/redis"
)

// InfraModule provides all infrastructure dependencies.
var InfraModule = fx.Module("infra",
	fx.Provide(ProvideRedis),
	fx.Provide(ProvideEmailClient),
	fx.Provide(ProvideEmailJSClient),
	fx.Provide(ProvideGeoIPClient),
)

// ProvideRedis connects to Redis when an address is configured. Redis
// only backs the production rate limiter, so a blank address yields a
// nil client rather than a startup failure.
func ProvideRedis(lc fx.Lifecycle, cfg *config.Config) (*redis.Client, error) {
	if cfg.Redis.Addr == "" {
		return nil, nil
	}
	rdb, err := redispkg.NewRedisFromCentral(cfg.Redis)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			slog.Debug("closing Redis connection")
			return rdb.Close()
		},
	})
	return rdb, nil
}

func ProvideEmailClient(cfg *config.Config) (*email.Client, error) {
	return email.NewFromCentral(cfg.Email)
}

func ProvideEmailJSClient(cfg *config.Config) *emailjs.Client {
	return emailjs.NewFromConfig(cfg.Notification.EmailJS)
}

func ProvideGeoIPClient(cfg *config.Config) *geoip.Client {
	return geoip.NewFromConfig(cfg.GeoIP)
}
