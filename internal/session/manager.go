package session

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// Manager keeps one state machine per client session id, creating them
// on demand. New sessions start logged out with the persisted theme
// preference restored.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	deps     Deps
}

// NewManager builds a registry around shared dependencies.
func NewManager(deps Deps) *Manager {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	return &Manager{
		sessions: make(map[string]*Session),
		deps:     deps,
	}
}

// Get returns the session for the id, creating it if needed.
func (m *Manager) Get(ctx context.Context, id string) *Session {
	m.mu.RLock()
	existing, ok := m.sessions[id]
	m.mu.RUnlock()
	if ok {
		return existing
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.sessions[id]; ok {
		return existing
	}

	sess := New(id, m.deps)
	if m.deps.Prefs != nil {
		dark, err := m.deps.Prefs.ThemeDark(ctx, id)
		if err != nil {
			m.deps.Logger.Warn("failed to load theme preference", zap.String("session", id), zap.Error(err))
		} else {
			sess.SetThemeDark(dark)
		}
	}
	m.sessions[id] = sess
	return sess
}

// Len reports the number of live sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
