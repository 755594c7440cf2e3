package session

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/Anshulmehra001/plantpal/backend/internal/analysis/sentiment"
	"github.com/Anshulmehra001/plantpal/backend/internal/model/chat"
)

// ErrSessionNotFound reports lookups of unknown or evicted sessions.
var ErrSessionNotFound = errors.New("session not found")

// Config bounds retention for the in-memory store.
type Config struct {
	// Timeout evicts sessions idle longer than this.
	Timeout time.Duration
	// MaxSessions caps the store; the least-recently-active sessions
	// beyond the cap are evicted on sweep.
	MaxSessions int
	// MaxMessages caps the per-session message log.
	MaxMessages int
	// HistoryCap caps the per-session sentiment history.
	HistoryCap int
	// ActiveWindow defines "recently active" for Stats.
	ActiveWindow time.Duration
}

// DefaultConfig mirrors the production retention policy.
func DefaultConfig() Config {
	return Config{
		Timeout:      24 * time.Hour,
		MaxSessions:  1000,
		MaxMessages:  20,
		HistoryCap:   50,
		ActiveWindow: 5 * time.Minute,
	}
}

type entry struct {
	session chat.Session
	history *sentiment.History
}

// Store keeps every live conversation in memory. All mutation happens
// under one lock so a fetch-mutate-store sequence is atomic per call;
// nothing here spans a network round trip. State is lost on restart.
type Store struct {
	mu       sync.RWMutex
	cfg      Config
	sessions map[string]*entry
	now      func() time.Time
}

// NewStore builds an empty store with the supplied bounds. Zero-valued
// bounds fall back to defaults.
func NewStore(cfg Config) *Store {
	def := DefaultConfig()
	if cfg.Timeout <= 0 {
		cfg.Timeout = def.Timeout
	}
	if cfg.MaxSessions <= 0 {
		cfg.MaxSessions = def.MaxSessions
	}
	if cfg.MaxMessages <= 0 {
		cfg.MaxMessages = def.MaxMessages
	}
	if cfg.HistoryCap <= 0 {
		cfg.HistoryCap = def.HistoryCap
	}
	if cfg.ActiveWindow <= 0 {
		cfg.ActiveWindow = def.ActiveWindow
	}

	return &Store{
		cfg:      cfg,
		sessions: make(map[string]*entry),
		now:      time.Now,
	}
}

// RecordUserMessage appends a classified user turn to the session,
// creating the session on first contact. The sentiment record joins
// the per-conversation history and the crisis flag sticks once set.
// Returns a snapshot of the session after the append.
func (s *Store) RecordUserMessage(sessionID string, msg chat.Message, rec sentiment.Record) chat.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.sessions[sessionID]
	if !ok {
		now := s.now().UTC()
		e = &entry{
			session: chat.Session{
				ID:        sessionID,
				Messages:  make([]chat.Message, 0, s.cfg.MaxMessages),
				CreatedAt: now,
			},
			history: sentiment.NewHistory(s.cfg.HistoryCap),
		}
		s.sessions[sessionID] = e
	}

	e.session.LastActivity = s.now().UTC()
	e.session.Analytics.TotalMessages++
	if rec.CrisisDetected {
		e.session.Analytics.CrisisDetected = true
	}

	e.appendMessage(msg, s.cfg.MaxMessages)
	e.history.Add(rec)

	return e.snapshot()
}

// RecordAssistantMessage appends the assistant turn produced for the
// preceding user message. Unknown sessions are ignored; the session
// may have been evicted while the model call was in flight, which is
// an accepted race (lost session, never corrupted state).
func (s *Store) RecordAssistantMessage(sessionID string, msg chat.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.sessions[sessionID]
	if !ok {
		return
	}

	e.session.LastActivity = s.now().UTC()
	if msg.Resources {
		e.session.Analytics.ResourcesAccessed = true
	}
	e.appendMessage(msg, s.cfg.MaxMessages)
}

func (e *entry) appendMessage(msg chat.Message, maxMessages int) {
	if msg.Timestamp.IsZero() {
		msg.Timestamp = time.Now().UTC()
	}
	e.session.Messages = append(e.session.Messages, msg)
	if len(e.session.Messages) > maxMessages {
		e.session.Messages = e.session.Messages[len(e.session.Messages)-maxMessages:]
	}
}

func (e *entry) snapshot() chat.Session {
	copied := e.session
	copied.Messages = append([]chat.Message(nil), e.session.Messages...)
	return copied
}

// Get returns a copy of the session.
func (s *Store) Get(sessionID string) (chat.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.sessions[sessionID]
	if !ok {
		return chat.Session{}, ErrSessionNotFound
	}
	return e.snapshot(), nil
}

// Pattern returns the sentiment pattern for a session, or nil when the
// session is unknown or has too little history.
func (s *Store) Pattern(sessionID string) *sentiment.Pattern {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.sessions[sessionID]
	if !ok {
		return nil
	}
	return e.history.Pattern()
}

// CrisisCount counts crisis records for the session within the window.
func (s *Store) CrisisCount(sessionID string, window time.Duration) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.sessions[sessionID]
	if !ok {
		return 0
	}
	return e.history.CrisisCountSince(window)
}

// Delete removes a session. Reports ErrSessionNotFound when absent so
// callers can distinguish the idempotent no-op from a real deletion.
func (s *Store) Delete(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[sessionID]; !ok {
		return ErrSessionNotFound
	}
	delete(s.sessions, sessionID)
	return nil
}

// Len reports the number of live sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Cleanup evicts idle sessions past the timeout, then trims the store
// down to MaxSessions by dropping the least-recently-active sessions.
// Safe to run concurrently with request traffic; deletions are
// idempotent. Returns the number of evicted sessions.
func (s *Store) Cleanup() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	evicted := 0

	for id, e := range s.sessions {
		if now.Sub(e.session.LastActivity) > s.cfg.Timeout {
			delete(s.sessions, id)
			evicted++
		}
	}

	if len(s.sessions) > s.cfg.MaxSessions {
		type aged struct {
			id           string
			lastActivity time.Time
		}
		remaining := make([]aged, 0, len(s.sessions))
		for id, e := range s.sessions {
			remaining = append(remaining, aged{id: id, lastActivity: e.session.LastActivity})
		}
		sort.Slice(remaining, func(i, j int) bool {
			return remaining[i].lastActivity.Before(remaining[j].lastActivity)
		})
		for _, victim := range remaining[:len(remaining)-s.cfg.MaxSessions] {
			delete(s.sessions, victim.id)
			evicted++
		}
	}

	return evicted
}

// Stats describes the live store for the admin endpoints.
type Stats struct {
	TotalSessions             int `json:"totalSessions"`
	ActiveSessions            int `json:"activeSessions"`
	TotalMessages             int `json:"totalMessages"`
	AverageMessagesPerSession int `json:"averageMessagesPerSession"`
	OldestSessionAgeMinutes   int `json:"oldestSessionAge"`
	NewestSessionAgeMinutes   int `json:"newestSessionAge"`
}

// Stats summarizes the store: session counts, recent activity within
// the configured window, and session age extremes in minutes.
func (s *Store) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := s.now()
	stats := Stats{TotalSessions: len(s.sessions)}
	if len(s.sessions) == 0 {
		return stats
	}

	oldest := now
	var newest time.Time
	for _, e := range s.sessions {
		if now.Sub(e.session.LastActivity) < s.cfg.ActiveWindow {
			stats.ActiveSessions++
		}
		stats.TotalMessages += len(e.session.Messages)
		if e.session.CreatedAt.Before(oldest) {
			oldest = e.session.CreatedAt
		}
		if e.session.LastActivity.After(newest) {
			newest = e.session.LastActivity
		}
	}

	stats.AverageMessagesPerSession = stats.TotalMessages / len(s.sessions)
	stats.OldestSessionAgeMinutes = int(now.Sub(oldest).Minutes())
	stats.NewestSessionAgeMinutes = int(now.Sub(newest).Minutes())
	return stats
}
