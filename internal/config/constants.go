package config

import "time"

// Storage backends
const (
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

// Defaults
const (
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultEnvironment = "dev"
	DefaultServiceName = "fichas-bot"
	DefaultVersion     = "dev"

	DefaultRedisAddr     = "localhost:6379"
	DefaultRedisPoolSize = 10

	DefaultDBMaxConns        = 20
	DefaultDBMaxConnIdleTime = 5 * time.Minute
	DefaultDBMaxConnLifetime = 30 * time.Minute

	DefaultChipValue      int64 = 10
	DefaultExchangeFee          = 0.10
	DefaultStatsCacheSize       = 1024
	DefaultStatsCacheTTL        = 30 * time.Second

	DefaultFlavorModel    = "gpt-4o-mini"
	DefaultFlavorTimeout  = 5 * time.Second
	DefaultFlavorLocale   = "pt-BR"
	DefaultCurrencySymbol = "R$"
)
