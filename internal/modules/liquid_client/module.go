package liquid_client

import (
	"context"

	"go.uber.org/fx"

	"liquid_relay/internal/modules/config"
	"liquid_relay/internal/modules/liquid_client/service"
	"liquid_relay/pkg/logger"
	"liquid_relay/pkg/tracing"
)

// Module поднимает клиента торгового API. Логгер и (опционально) трейсер
// инициализируются до того, как хост затребует *service.Client.
func Module() fx.Option {
	return fx.Module("liquid_client",
		fx.Invoke(func(lc fx.Lifecycle, cfg *config.Config) error {
			if err := logger.Init(cfg.LogLevel); err != nil {
				return err
			}
			if cfg.Jaeger.Host == "" {
				return nil
			}
			_, closeTracer, err := tracing.InitTracer(tracing.Config{
				Host: cfg.Jaeger.Host,
				Port: cfg.Jaeger.Port,
			})
			if err != nil {
				return err
			}
			lc.Append(fx.Hook{
				OnStop: func(ctx context.Context) error {
					closeTracer()
					return nil
				},
			})
			return nil
		}),
		fx.Provide(
			service.NewClient,
		),
	)
}
