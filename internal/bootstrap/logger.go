package bootstrap

import (
	"io"
	"log/slog"

	"github.com/osse101/FichasBot_Go/internal/config"
	"github.com/osse101/FichasBot_Go/internal/logger"
)

// SetupLogger installs the default slog logger from cfg. Source locations
// are only added in development.
func SetupLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	l := logger.InitLoggerWithWriter(logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		cfg.IsDevelopment(),
	), w)

	l.Info(LogMsgStarting,
		"environment", cfg.Environment,
		"version", cfg.Version,
		"storage_backend", cfg.StorageBackend)
	l.Debug(LogMsgConfigurationLoaded,
		"port", cfg.Port,
		"redis_addr", cfg.RedisAddr,
		"db_host", cfg.DBHost,
		"db_name", cfg.DBName,
		"chip_value", cfg.ChipValue,
		"exchange_fee", cfg.ExchangeFee)
	return l
}
