// Package testutils provides shared test helpers
package testutils

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"github.com/osse101/FichasBot_Go/internal/database/redis"
)

// CreateTestRedisClient creates an in-memory Redis client closed with the test
func CreateTestRedisClient(t *testing.T) (redis.Client, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)

	client, err := redis.NewClient(mr.Addr(), nil)
	require.NoError(t, err, "failed to create redis client")
	t.Cleanup(func() { _ = client.Close() })

	return client, mr
}

// CreateTestStore creates a Redis ledger over a fresh miniredis instance
func CreateTestStore(t *testing.T) (redis.Store, *miniredis.Miniredis) {
	t.Helper()

	client, mr := CreateTestRedisClient(t)
	store, err := redis.NewStore(&redis.Config{Client: client})
	require.NoError(t, err)

	return store, mr
}
