package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/FichasBot_Go/internal/config"
	"github.com/osse101/FichasBot_Go/internal/database"
	"github.com/osse101/FichasBot_Go/internal/database/postgres"
	"github.com/osse101/FichasBot_Go/internal/database/redis"
	"github.com/osse101/FichasBot_Go/internal/repository"
)

// Store is the ledger plus currency wallet every backend provides
type Store interface {
	repository.Ledger
	repository.Wallet
}

// Storage is an opened backend and its release function
type Storage struct {
	Store   Store
	Backend string
	close   func() error
}

// Close releases the backend's connections
func (s *Storage) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

// OpenStorage connects the configured backend and verifies it answers.
// PostgreSQL migrations are applied on open.
func OpenStorage(ctx context.Context, cfg *config.Config) (*Storage, error) {
	var (
		s   *Storage
		err error
	)
	switch cfg.StorageBackend {
	case config.BackendRedis:
		s, err = openRedis(cfg)
	case config.BackendPostgres:
		s, err = openPostgres(ctx, cfg)
	default:
		return nil, fmt.Errorf("%s: %q", ErrMsgUnknownBackend, cfg.StorageBackend)
	}
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, StartupPingTimeout)
	defer cancel()
	if err := s.Store.Ping(pingCtx); err != nil {
		_ = s.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedStorePing, err)
	}

	slog.Default().Info(LogMsgStorageReady, "backend", s.Backend)
	return s, nil
}

func openRedis(cfg *config.Config) (*Storage, error) {
	client, err := redis.NewClient(cfg.RedisAddr, &redis.Options{
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
		PoolSize: cfg.RedisPoolSize,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedRedisClient, err)
	}

	store, err := redis.NewStore(&redis.Config{Client: client})
	if err != nil {
		_ = client.Close()
		return nil, err
	}

	return &Storage{Store: store, Backend: config.BackendRedis, close: client.Close}, nil
}

func openPostgres(ctx context.Context, cfg *config.Config) (*Storage, error) {
	pool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedPostgresPool, err)
	}

	if err := database.RunMigrations(ctx, pool, database.MigrateUp); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrations, err)
	}

	store, err := postgres.NewLedgerRepository(pool)
	if err != nil {
		pool.Close()
		return nil, err
	}

	return &Storage{
		Store:   store,
		Backend: config.BackendPostgres,
		close: func() error {
			pool.Close()
			return nil
		},
	}, nil
}
