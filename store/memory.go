package store

import (
	"context"
	"sync"
)

// Memory is an in-process [Store]. It is the default backend when no other
// store is injected and the workhorse for tests.
type Memory struct {
	mu    sync.RWMutex
	entry Entry
	set   bool
}

// NewMemory returns an empty in-process store.
func NewMemory() *Memory {
	return &Memory{}
}

// Load implements [Store].
func (m *Memory) Load(_ context.Context) (Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if !m.set {
		return Entry{}, nil
	}
	return cloneEntry(m.entry), nil
}

// Save implements [Store].
func (m *Memory) Save(_ context.Context, entry Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entry = cloneEntry(entry)
	m.set = true
	return nil
}

// Clear implements [Store].
func (m *Memory) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entry = Entry{}
	m.set = false
	return nil
}

func cloneEntry(e Entry) Entry {
	out := Entry{Token: e.Token}
	if len(e.User) > 0 {
		out.User = append([]byte(nil), e.User...)
	}
	return out
}
