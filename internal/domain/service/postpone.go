// Package service holds domain services shared by the use cases.
package service

import (
	"sort"
	"sync"

	"github.com/bnema/duskd/internal/domain/entity"
)

// callbackWrapper wraps a callback function to enable pointer comparison for removal.
type callbackWrapper struct {
	fn func(keys []entity.PostponeKey)
}

// PostponeManager tracks the active reasons for suppressing theme switches.
// Switching is suppressed while at least one key is present.
// It is safe for concurrent use.
type PostponeManager struct {
	mu        sync.RWMutex
	keys      map[entity.PostponeKey]struct{}
	callbacks []*callbackWrapper
}

// NewPostponeManager creates an empty postponement registry.
func NewPostponeManager() *PostponeManager {
	return &PostponeManager{
		keys: make(map[entity.PostponeKey]struct{}),
	}
}

// Add inserts key. Adding a present key is a no-op.
// Returns true if the set changed.
func (m *PostponeManager) Add(key entity.PostponeKey) bool {
	m.mu.Lock()
	if _, ok := m.keys[key]; ok {
		m.mu.Unlock()
		return false
	}
	m.keys[key] = struct{}{}
	m.notifyLocked()
	return true
}

// Remove deletes key. Removing an absent key is a no-op.
// Returns true if the set changed.
func (m *PostponeManager) Remove(key entity.PostponeKey) bool {
	m.mu.Lock()
	if _, ok := m.keys[key]; !ok {
		m.mu.Unlock()
		return false
	}
	delete(m.keys, key)
	m.notifyLocked()
	return true
}

// Contains reports whether key is active.
func (m *PostponeManager) Contains(key entity.PostponeKey) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.keys[key]
	return ok
}

// IsPostponed reports whether any key is active.
func (m *PostponeManager) IsPostponed() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.keys) > 0
}

// Keys returns a sorted snapshot of the active keys.
func (m *PostponeManager) Keys() []entity.PostponeKey {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.snapshotLocked()
}

// OnChange registers a callback invoked with the new key set after every change.
// Returns a function to unregister the callback.
func (m *PostponeManager) OnChange(callback func(keys []entity.PostponeKey)) func() {
	m.mu.Lock()
	defer m.mu.Unlock()

	wrapper := &callbackWrapper{fn: callback}
	m.callbacks = append(m.callbacks, wrapper)

	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		for i, cb := range m.callbacks {
			if cb == wrapper {
				m.callbacks = append(m.callbacks[:i], m.callbacks[i+1:]...)
				return
			}
		}
	}
}

func (m *PostponeManager) snapshotLocked() []entity.PostponeKey {
	keys := make([]entity.PostponeKey, 0, len(m.keys))
	for k := range m.keys {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// notifyLocked must be called with m.mu held for write. It releases the lock
// before invoking callbacks.
func (m *PostponeManager) notifyLocked() {
	keys := m.snapshotLocked()
	callbacks := make([]*callbackWrapper, len(m.callbacks))
	copy(callbacks, m.callbacks)
	m.mu.Unlock()

	for _, cb := range callbacks {
		cb.fn(keys)
	}
}
