// Package unit implements the interner for context-independent phonetic
// units. Every (name, filler) pair resolves to exactly one *domain.Unit for
// the lifetime of the manager, so unit comparison throughout the lexicon is
// pointer identity.
package unit

import (
	"sync"

	"github.com/klattlab/pronlex/internal/domain"
)

// SilenceName is the canonical name of the silence unit.
const SilenceName = "SIL"

type key struct {
	name   string
	filler bool
}

// Manager interns units. The zero value is not usable; construct with
// NewManager. Safe for concurrent use: the server interns lazily while
// handling requests.
type Manager struct {
	mu      sync.Mutex
	units   map[key]*domain.Unit
	silence *domain.Unit
}

// NewManager creates a Manager with the silence unit pre-registered.
func NewManager() *Manager {
	m := &Manager{units: make(map[key]*domain.Unit)}
	m.silence = m.Unit(SilenceName, true)
	return m
}

// Unit returns the canonical instance for the given name and filler
// classification, creating it on first use. The context is always
// domain.EmptyContext for units produced by this manager.
func (m *Manager) Unit(name string, filler bool) *domain.Unit {
	k := key{name: name, filler: filler}

	m.mu.Lock()
	defer m.mu.Unlock()

	if u, ok := m.units[k]; ok {
		return u
	}
	u := &domain.Unit{Name: name, Filler: filler, Context: domain.EmptyContext}
	m.units[k] = u
	return u
}

// Silence returns the interned silence unit.
func (m *Manager) Silence() *domain.Unit {
	return m.silence
}

// Size returns the number of distinct interned units.
func (m *Manager) Size() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.units)
}
