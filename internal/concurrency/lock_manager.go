package concurrency

import (
	"sync"
)

// LockManager handles named locks
type LockManager struct {
	locks sync.Map
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{}
}

// GetLock returns a mutex for the given key
func (lm *LockManager) GetLock(key string) *sync.Mutex {
	lock, _ := lm.locks.LoadOrStore(key, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

// TryLock acquires the named lock without waiting.
// It returns false when another holder already has it.
func (lm *LockManager) TryLock(key string) bool {
	return lm.GetLock(key).TryLock()
}

// Unlock releases the named lock
func (lm *LockManager) Unlock(key string) {
	lm.GetLock(key).Unlock()
}
