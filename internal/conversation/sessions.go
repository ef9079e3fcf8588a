package conversation

import (
	"sync"

	"github.com/ivkram/neuroguide-bot/internal/models"
)

type session struct {
	mu    sync.Mutex
	state models.State
	conv  Context
}

// Manager owns all per-user conversation state. State lives in process
// memory only; a restart puts everyone back at the main menu.
//
// Each session carries its own mutex, held for the whole handling of one
// event including any provider calls, so events for one user apply in
// arrival order while different users proceed in parallel.
type Manager struct {
	mu       sync.Mutex
	sessions map[int64]*session
}

func NewManager() *Manager {
	return &Manager{
		sessions: make(map[int64]*session),
	}
}

func (m *Manager) session(userID int64) *session {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, exists := m.sessions[userID]
	if !exists {
		s = &session{state: models.StateMainMenu}
		m.sessions[userID] = s
	}
	return s
}

// Do runs fn under the user's session lock, passing the current state and
// context, and commits whatever fn returns. First contact starts at
// MainMenu with an empty context.
func (m *Manager) Do(userID int64, fn func(state models.State, conv Context) (models.State, Context)) {
	s := m.session(userID)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state, s.conv = fn(s.state, s.conv)
}

// StateOf reports the user's current state, creating the session if the
// user is new.
func (m *Manager) StateOf(userID int64) models.State {
	s := m.session(userID)

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}
