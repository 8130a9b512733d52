package concurrency

import (
	"strings"
	"sync"
)

// LockManager hands out named in-process mutexes. Entries are never evicted,
// so keys should come from a bounded space such as user+item pairs.
type LockManager struct {
	locks sync.Map
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{}
}

// GetLock returns the mutex for the given key
func (lm *LockManager) GetLock(key string) *sync.Mutex {
	lock, _ := lm.locks.LoadOrStore(key, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

// WithLock runs fn while holding the lock for key
func (lm *LockManager) WithLock(key string, fn func() error) error {
	mu := lm.GetLock(key)
	mu.Lock()
	defer mu.Unlock()
	return fn()
}

// Key joins parts into a lock key
func Key(parts ...string) string {
	return strings.Join(parts, ":")
}
