package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/gyd-platform/department-api/internal/dto"
	"github.com/gyd-platform/department-api/pkg/config"
)

type diagnosticStore interface {
	Available() bool
	Ping(ctx context.Context) error
	CollectionNames(ctx context.Context) ([]string, error)
}

// DiagnosticService reports store configuration and connectivity. Every
// degradation is expressed in the report body; Report never fails.
type DiagnosticService struct {
	store  diagnosticStore
	dbCfg  config.DatabaseConfig
	logger *zap.Logger
}

// NewDiagnosticService constructs a DiagnosticService.
func NewDiagnosticService(store diagnosticStore, dbCfg config.DatabaseConfig, logger *zap.Logger) *DiagnosticService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DiagnosticService{store: store, dbCfg: dbCfg, logger: logger}
}

// Report inspects configuration presence and live connectivity.
func (s *DiagnosticService) Report(ctx context.Context) dto.DiagnosticReport {
	report := dto.DiagnosticReport{
		Backend:          "running",
		Database:         "not available",
		DatabaseURLSet:   s.dbCfg.URL != "",
		DatabaseNameSet:  s.dbCfg.Name != "",
		ConnectionStatus: "not_connected",
		Collections:      []string{},
	}

	if s.store == nil || !s.store.Available() {
		if !report.DatabaseURLSet || !report.DatabaseNameSet {
			report.Database = "not configured, set DATABASE_URL and DATABASE_NAME"
		}
		return report
	}

	pingCtx, cancel := context.WithTimeout(ctx, s.dbCfg.PingTimeout)
	defer cancel()

	if err := s.store.Ping(pingCtx); err != nil {
		s.logger.Warn("store ping failed", zap.Error(err))
		report.Database = "unreachable"
		return report
	}

	report.ConnectionStatus = "connected"
	report.Database = "connected"

	names, err := s.store.CollectionNames(ctx)
	if err != nil {
		s.logger.Warn("listing collections failed", zap.Error(err))
		return report
	}
	report.Collections = names
	return report
}
