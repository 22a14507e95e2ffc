// Package store persists small key-value snapshots (high score, settings,
// score history). Values are encoded individually so a damaged entry does not
// take the others down with it.
package store

import (
	"github.com/pkg/errors"
)

// ErrNotFound is returned (possibly wrapped) when a key has never been saved
var ErrNotFound = errors.New("store: key not found")

// ErrCorrupt is returned (possibly wrapped) when saved data cannot be decoded
var ErrCorrupt = errors.New("store: corrupt data")

// Store is the persistence collaborator used by the game state
type Store interface {
	// Load decodes the value saved under key into v
	Load(key string, v any) error
	// Save encodes v under key
	Save(key string, v any) error
}

// IsNotFound reports whether err means the key is absent
func IsNotFound(err error) bool {
	return errors.Cause(err) == ErrNotFound
}
