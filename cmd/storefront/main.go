package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"storefront/config"
	"storefront/internal/delivery"
	"storefront/internal/delivery/api"
	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/router/handler"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/domain/store"
	"storefront/internal/infra/auth"
	logs "storefront/internal/infra/log"
	"storefront/internal/infra/orders"
	"storefront/internal/infra/persistence"
	"storefront/internal/infra/pubsub"
	"storefront/internal/infra/qrcode"
	"storefront/internal/infra/validation"
	"storefront/internal/usecase/impl"
	"storefront/internal/util"

	"go.uber.org/fx"
)

const sessionEvictionInterval = time.Minute

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			validation.New,
		),
		persistence.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			newSessionRegistry,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			newQRCodeService,
		),
		orders.Module,
		pubsub.Module,
	)
}

// newSessionRegistry creates the live session registry and evicts idle sessions in the background
func newSessionRegistry(lc fx.Lifecycle, kv repository.KeyValueStore, cfg *config.Config, logger *slog.Logger) *store.Registry {
	registry := store.NewRegistry(kv, cfg.Storage.KeyPrefix, logger)

	evictCtx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			logger.Info("Starting idle session eviction",
				slog.String("max_idle", util.FormatDuration(cfg.Session.TTL)),
			)
			go registry.RunEviction(evictCtx, sessionEvictionInterval, cfg.Session.TTL)

			return nil
		},
		OnStop: func(context.Context) error {
			cancel()

			return nil
		},
	})

	return registry
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSessionService,
			impl.NewCatalogService,
			impl.NewCartService,
			impl.NewCheckoutService,
			impl.NewNavigationService,
			impl.NewPreferenceService,
			impl.NewShareService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewSessionMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewSessionHandler,
			handler.NewCatalogHandler,
			handler.NewCartHandler,
			handler.NewCheckoutHandler,
			handler.NewViewHandler,
			handler.NewShareHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
