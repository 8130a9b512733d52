package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	APIKey      string // API key for authentication
	LogLevel    string
	LogFormat   string
	Environment string
	ServiceName string
	Version     string

	// TrustedProxies lists proxy IPs whose X-Forwarded-For header is honored
	TrustedProxies []string

	// Storage
	StorageBackend string
	RedisAddr      string
	RedisPassword  string
	RedisDB        int
	RedisPoolSize  int

	DBUser            string
	DBPassword        string
	DBHost            string
	DBPort            string
	DBName            string
	DBMaxConns        int
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration

	// Item catalog override; empty uses the embedded catalog
	CatalogPath string

	// Casino economy
	ChipValue      int64
	ExchangeFee    float64
	StatsCacheSize int
	StatsCacheTTL  time.Duration

	// Flavor text
	FlavorAPIKey   string
	FlavorBaseURL  string
	FlavorModel    string
	FlavorTimeout  time.Duration
	FlavorLocale   string
	CurrencySymbol string

	// DevMode bypasses item cooldowns
	DevMode bool
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		APIKey:      getEnv("API_KEY", ""),
		LogLevel:    strings.ToLower(getEnv("LOG_LEVEL", DefaultLogLevel)),
		LogFormat:   strings.ToLower(getEnv("LOG_FORMAT", DefaultLogFormat)),
		Environment: getEnv("ENVIRONMENT", DefaultEnvironment),
		ServiceName: getEnv("SERVICE_NAME", DefaultServiceName),
		Version:     getEnv("VERSION", DefaultVersion),

		TrustedProxies: getEnvAsList("TRUSTED_PROXIES"),

		StorageBackend: strings.ToLower(getEnv("STORAGE_BACKEND", BackendRedis)),
		RedisAddr:      getEnv("REDIS_ADDR", DefaultRedisAddr),
		RedisPassword:  getEnv("REDIS_PASSWORD", ""),
		RedisDB:        getEnvAsInt("REDIS_DB", 0),
		RedisPoolSize:  getEnvAsInt("REDIS_POOL_SIZE", DefaultRedisPoolSize),

		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", "postgres"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBName:            getEnv("DB_NAME", "fichasbot"),
		DBMaxConns:        getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		DBMaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", DefaultDBMaxConnIdleTime),
		DBMaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", DefaultDBMaxConnLifetime),

		CatalogPath: getEnv("CATALOG_PATH", ""),

		ChipValue:      getEnvAsInt64("CHIP_VALUE", DefaultChipValue),
		ExchangeFee:    getEnvAsFloat("EXCHANGE_FEE", DefaultExchangeFee),
		StatsCacheSize: getEnvAsInt("STATS_CACHE_SIZE", DefaultStatsCacheSize),
		StatsCacheTTL:  getEnvAsDuration("STATS_CACHE_TTL", DefaultStatsCacheTTL),

		FlavorAPIKey:   getEnv("FLAVOR_API_KEY", ""),
		FlavorBaseURL:  getEnv("FLAVOR_BASE_URL", ""),
		FlavorModel:    getEnv("FLAVOR_MODEL", DefaultFlavorModel),
		FlavorTimeout:  getEnvAsDuration("FLAVOR_TIMEOUT", DefaultFlavorTimeout),
		FlavorLocale:   getEnv("FLAVOR_LOCALE", DefaultFlavorLocale),
		CurrencySymbol: getEnv("CURRENCY_SYMBOL", DefaultCurrencySymbol),

		DevMode: getEnvAsBool("DEV_MODE", false),
	}

	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API_KEY environment variable must be set for security")
	}

	if cfg.StorageBackend != BackendRedis && cfg.StorageBackend != BackendPostgres {
		return nil, fmt.Errorf("invalid STORAGE_BACKEND %q: expected %s or %s", cfg.StorageBackend, BackendRedis, BackendPostgres)
	}

	if cfg.ChipValue <= 0 {
		return nil, fmt.Errorf("invalid CHIP_VALUE %d: must be positive", cfg.ChipValue)
	}

	if cfg.ExchangeFee < 0 || cfg.ExchangeFee >= 1 {
		return nil, fmt.Errorf("invalid EXCHANGE_FEE %v: must be in [0, 1)", cfg.ExchangeFee)
	}

	return cfg, nil
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}

// IsDevelopment reports whether the app runs in a development environment
func (c *Config) IsDevelopment() bool {
	return c.Environment == DefaultEnvironment || c.Environment == "development"
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if v, err := strconv.Atoi(getEnv(key, "")); err == nil {
		return v
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if v, err := strconv.ParseInt(getEnv(key, ""), 10, 64); err == nil {
		return v
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if v, err := strconv.ParseFloat(getEnv(key, ""), 64); err == nil {
		return v
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if v, err := strconv.ParseBool(getEnv(key, "")); err == nil {
		return v
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if v, err := time.ParseDuration(getEnv(key, "")); err == nil {
		return v
	}
	return defaultValue
}

func getEnvAsList(key string) []string {
	raw := getEnv(key, "")
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
