// Package keystore holds the session's derived encryption key in process
// memory. Nothing here is ever persisted: the key exists from a successful
// derivation until Clear (logout) or process exit.
package keystore

import (
	"sync"

	"github.com/quietpage/quietpage/internal/crypto"
)

// Store is the in-memory custodian of the active derived key and the salt it
// was derived from. It is an explicit object rather than a package global so
// tests can run independent stores in parallel; production code holds one
// Store per session.
//
// The store is written from exactly two call sites — login-time derivation
// and the rotation commit — with last-write-wins semantics, and read by every
// encrypt/decrypt call.
type Store struct {
	mu   sync.RWMutex
	key  crypto.Key
	salt []byte
}

// New returns an empty Store: no key, no salt.
func New() *Store {
	return &Store{}
}

// Set overwrites any existing key and salt unconditionally. Used at login and
// as the final commit step of password rotation.
func (s *Store) Set(key crypto.Key, salt []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.key = key
	s.salt = salt
}

// Key returns the active derived key, or nil when no key is set.
func (s *Store) Key() crypto.Key {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.key
}

// Salt returns the salt the active key was derived from, or nil.
func (s *Store) Salt() []byte {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.salt
}

// Has reports whether a key is currently available. Guard check before any
// crypto operation.
func (s *Store) Has() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.key != nil
}

// Clear resets the store to empty. Idempotent; must be invoked on logout —
// it is the only way key material leaves scope before process exit.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.key = nil
	s.salt = nil
}
