package service

import (
	"context"

	"github.com/benbjohnson/clock"

	"github.com/aidcore/go-aid-registry/internal/config"
	"github.com/aidcore/go-aid-registry/internal/logger"
	"github.com/aidcore/go-aid-registry/internal/metrics"
	"github.com/aidcore/go-aid-registry/internal/store"
	"github.com/aidcore/go-aid-registry/internal/utils"
)

type Services struct {
	AuthService    AuthService
	CitizenService CitizenService
	AidService     AidService
}

// NewServices wires the domain operations layer. clk drives every timestamp
// the layer stamps (registration dates, row timestamps); m may be nil to
// disable metrics.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, clk clock.Clock, m *metrics.Metrics, logger *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(storages, cfg.App, clk, m, logger),
		CitizenService: NewCitizenService(storages.CitizenRepository, m, logger),
		AidService:     NewAidService(storages, clk, m, logger),
	}
}

// withOperation tags the context logger with the operation name and a fresh
// operation id, so repository and row-store logs can be correlated with the
// domain call that triggered them.
func withOperation(ctx context.Context, name string) (context.Context, *logger.Logger) {
	opLog := &logger.Logger{Logger: logger.FromContext(ctx).With().
		Str("op", name).
		Str("op_id", utils.NewOperationID()).
		Logger()}

	return opLog.WithContext(ctx), opLog
}
