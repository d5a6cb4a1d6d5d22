package orders

import (
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/service"
	"storefront/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// RecorderParams holds dependencies for OrderRecorder, injected by Fx
type RecorderParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	DB     *gorm.DB `optional:"true"`
}

// NewOrderRecorder creates an OrderRecorder based on configuration
func NewOrderRecorder(params RecorderParams) (service.OrderRecorder, error) {
	cfg := params.Config.Orders
	logger := params.Logger

	switch cfg.Provider {
	case constants.OrderProviderMemory, "":
		logger.Info("Using in-memory order recorder")

		return NewMemoryRecorder(logger), nil

	case constants.OrderProviderHTTP:
		if cfg.BaseURL == "" {
			return nil, errors.New("base URL is required for http order provider")
		}
		logger.Info("Using HTTP order recorder", slog.String("base_url", cfg.BaseURL))

		return NewHTTPRecorder(cfg.BaseURL, cfg.Timeout, logger), nil

	case constants.OrderProviderPostgres:
		if params.DB == nil {
			return nil, errors.New("postgres configuration is required for postgres order provider")
		}
		logger.Info("Using postgres order recorder")

		return NewPostgresRecorder(
			postgres.NewTransactionManager(params.DB),
			postgres.NewOrderRepository(params.DB),
			logger,
		), nil

	default:
		return nil, errors.Errorf("unknown order provider: %s", cfg.Provider)
	}
}

// Module provides the order recorder FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewOrderRecorder),
)
