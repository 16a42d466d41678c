// Package store provides durable storage for visitor theme preferences.
package store

import (
	"errors"
	"strings"
	"sync"
	"time"
)

// ErrNotFound is returned when no preference is stored for a visitor.
var ErrNotFound = errors.New("preference not found")

// Preference is a stored theme choice for a single visitor.
type Preference struct {
	Visitor   string    `db:"visitor"`
	Theme     string    `db:"theme"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// NormalizeVisitor trims and lowercases a visitor id so lookups are stable.
func NormalizeVisitor(visitor string) string {
	return strings.ToLower(strings.TrimSpace(visitor))
}

// RWLocker is the subset of sync.RWMutex used by Store.
type RWLocker interface {
	sync.Locker
	RLock()
	RUnlock()
}

// noopLocker is used for postgres, which handles concurrent writers itself.
type noopLocker struct{}

func (noopLocker) Lock()    {}
func (noopLocker) Unlock()  {}
func (noopLocker) RLock()   {}
func (noopLocker) RUnlock() {}
