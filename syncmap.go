package filament

import (
	"sync"
)

// SyncMap is a synchronized map that can be accessed concurrently.
//
// It provides thread-safe methods for setting, getting, deleting, and iterating over key-value pairs.
// The Application uses it as the command registry, where gateway callbacks read it while
// setup code may still be mutating it.
type SyncMap[K comparable, V any] struct {
	sync.RWMutex
	M map[K]V
}

// Set adds or updates a key-value pair in the SyncMap.
//
// Args:
//   - key: The key to add or update.
//   - val: The value to associate with the key.
func (sm *SyncMap[K, V]) Set(key K, val V) {
	sm.Lock()
	defer sm.Unlock()
	sm.M[key] = val
}

// Get retrieves the value associated with the specified key from the SyncMap.
//
// Args:
//   - key: The key to retrieve the value for.
//
// Returns:
//   - V: The value associated with the key.
//   - bool: True if the key exists in the map, false otherwise.
func (sm *SyncMap[K, V]) Get(key K) (val V, ok bool) {
	sm.RLock()
	defer sm.RUnlock()

	val, ok = sm.M[key]

	return
}

// Del removes the key-value pair with the specified key from the SyncMap.
//
// Args:
//   - key: The key to remove.
func (sm *SyncMap[K, V]) Del(key K) {
	sm.Lock()
	defer sm.Unlock()

	delete(sm.M, key)
}

// Len returns the number of key-value pairs in the SyncMap.
//
// Returns:
//   - int: The number of key-value pairs in the map.
func (sm *SyncMap[K, V]) Len() int {
	sm.RLock()
	defer sm.RUnlock()

	return len(sm.M)
}

// Keys returns a slice containing the keys currently present in the SyncMap.
//
// Returns:
//   - []K: The keys of the map, in no particular order.
func (sm *SyncMap[K, V]) Keys() []K {
	sm.RLock()
	defer sm.RUnlock()

	keys := make([]K, 0, len(sm.M))
	for key := range sm.M {
		keys = append(keys, key)
	}

	return keys
}

// Range iterates over each key-value pair in the SyncMap and calls the specified function.
//
// Iteration stops early when the callback returns false.
//
// Args:
//   - cb: The function invoked with each key-value pair.
func (sm *SyncMap[K, V]) Range(cb func(K, V) bool) {
	sm.RLock()
	defer sm.RUnlock()

	for key, val := range sm.M {
		if !cb(key, val) {
			break
		}
	}
}

// NewSyncMap returns a new initialized [SyncMap].
func NewSyncMap[K comparable, V any]() SyncMap[K, V] {
	return SyncMap[K, V]{M: map[K]V{}}
}
