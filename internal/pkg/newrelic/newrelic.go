package newrelic

import (
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/piresc/ledger/internal/pkg/logger"
	"github.com/piresc/ledger/internal/pkg/models"
)

// InitNewRelic returns nil when New Relic is disabled or cannot start
func InitNewRelic(cfg *models.Config) *newrelic.Application {
	if !cfg.NewRelic.Enabled || cfg.NewRelic.LicenseKey == "" {
		logger.Info("New Relic is disabled or license key not provided")
		return nil
	}

	nrApp, err := newrelic.NewApplication(
		newrelic.ConfigAppName(cfg.NewRelic.AppName),
		newrelic.ConfigLicense(cfg.NewRelic.LicenseKey),
		newrelic.ConfigDistributedTracerEnabled(true),
		newrelic.ConfigAppLogForwardingEnabled(cfg.NewRelic.ForwardLogs),
		newrelic.ConfigAppLogDecoratingEnabled(true),
	)
	if err != nil {
		logger.Warn("Failed to initialize New Relic, continuing without it", logger.Err(err))
		return nil
	}

	logger.Info("New Relic enabled", logger.String("app_name", cfg.NewRelic.AppName))
	return nrApp
}
