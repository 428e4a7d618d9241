package game

import (
	"sync"

	"github.com/google/uuid"
)

// Session is one live playthrough: a sequencer plus the bookkeeping the
// transport layer needs. All engine-facing state is guarded by Mu; the
// dialogue core itself is single-owner and lock-free.
type Session struct {
	ID    string
	Now   float64
	Seq   *Sequencer
	Mu    sync.Mutex
	Conns int
	// IdleSince is the session time at which the last connection left.
	IdleSince float64
}

// Tick advances the session clock and the dialogue simulation by one
// fixed step.
func (s *Session) Tick() {
	s.Mu.Lock()
	defer s.Mu.Unlock()
	s.Now += Dt
	s.Seq.Tick(Dt)
}

// Hub tracks live sessions and builds new ones on demand.
type Hub struct {
	Sessions map[string]*Session
	Mu       sync.Mutex

	scenes []*Scene
	assets *Catalog
}

// NewHub creates a hub that spawns sessions over the given story content
// and asset catalog.
func NewHub(scenes []*Scene, assets *Catalog) *Hub {
	return &Hub{
		Sessions: map[string]*Session{},
		scenes:   scenes,
		assets:   assets,
	}
}

// GetSession returns the named session, creating it if needed. An empty
// id asks for a fresh playthrough.
func (h *Hub) GetSession(id string) *Session {
	h.Mu.Lock()
	defer h.Mu.Unlock()
	if id == "" {
		id = uuid.NewString()
	}
	s, ok := h.Sessions[id]
	if !ok {
		s = h.newSession(id)
		h.Sessions[id] = s
	}
	return s
}

func (h *Hub) newSession(id string) *Session {
	rel := NewRelationship()
	audio := NewVoiceChannel(h.assets)
	return &Session{
		ID:  id,
		Seq: NewSequencer(h.scenes, rel, audio, h.assets),
	}
}

// TickAll advances every live session by one fixed step. Driven by the
// app layer's simulation ticker.
func (h *Hub) TickAll() {
	h.Mu.Lock()
	sessions := make([]*Session, 0, len(h.Sessions))
	for _, s := range h.Sessions {
		sessions = append(sessions, s)
	}
	h.Mu.Unlock()

	for _, s := range sessions {
		s.Tick()
	}
}

// CleanupIdleSessions drops finished or long-abandoned sessions. Called
// periodically by the app layer.
func (h *Hub) CleanupIdleSessions() {
	h.Mu.Lock()
	defer h.Mu.Unlock()
	for id, s := range h.Sessions {
		s.Mu.Lock()
		idle := s.Conns == 0 && (!s.Seq.Active() || s.Now-s.IdleSince > SessionIdleReapS)
		s.Mu.Unlock()
		if idle {
			delete(h.Sessions, id)
		}
	}
}
