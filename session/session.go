// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"encoding/json"
	"time"

	"github.com/danielhkuo/spot-the-bot/identity"
	"github.com/danielhkuo/spot-the-bot/kv"
	"github.com/danielhkuo/spot-the-bot/models"
)

// TTL is how long a session id stays valid after it is minted. The expiry is
// checked on read, never refreshed.
const TTL = 30 * time.Minute

// Storage keys, inherited from the browser build
const (
	keyClientID    = "spotTheBotClientId"
	keySession     = "spotTheBotSession"
	statsKeyPrefix = "spotTheBotSessionStats:"
)

// Tally is the per-session guess counter set.
type Tally struct {
	Total   int `json:"total"`
	Correct int `json:"correct"`
	Human   int `json:"human"`
	Bot     int `json:"bot"`
}

type storedSession struct {
	ID        string `json:"id"`
	ExpiresAt int64  `json:"expires_at"` // epoch millis
}

// Manager owns client identity and session-local statistics on top of a
// kv.Store. Storage failures degrade to fresh values — the same behavior a
// browser with blocked localStorage gives — so no method returns an error.
type Manager struct {
	store kv.Store
	now   func() time.Time
}

func NewManager(store kv.Store) *Manager {
	return &Manager{store: store, now: time.Now}
}

// ClientID returns the stable long-lived client identity, minting and
// persisting one on first use.
func (m *Manager) ClientID() string {
	if id, err := m.store.Get(keyClientID); err == nil && id != "" {
		return id
	}
	id := identity.NewClientID()
	_ = m.store.Set(keyClientID, id)
	return id
}

// SessionID returns the current session id, minting a new one when the
// stored session is missing, malformed, or past its expiry.
func (m *Manager) SessionID() string {
	nowMs := m.now().UnixMilli()

	if raw, err := m.store.Get(keySession); err == nil {
		var s storedSession
		if json.Unmarshal([]byte(raw), &s) == nil && s.ID != "" && nowMs < s.ExpiresAt {
			return s.ID
		}
	}

	s := storedSession{
		ID:        identity.NewSessionID(),
		ExpiresAt: nowMs + TTL.Milliseconds(),
	}
	raw, _ := json.Marshal(s)
	_ = m.store.Set(keySession, string(raw))
	return s.ID
}

// Stats returns the tally for the current session, zeroed when absent.
func (m *Manager) Stats() Tally {
	raw, err := m.store.Get(statsKeyPrefix + m.SessionID())
	if err != nil {
		return Tally{}
	}
	var t Tally
	if json.Unmarshal([]byte(raw), &t) != nil {
		return Tally{}
	}
	return t
}

// RecordGuess updates and persists the tally for one reveal and returns it.
func (m *Manager) RecordGuess(guess string, correct bool) Tally {
	t := m.Stats()
	t.Total++
	if correct {
		t.Correct++
	}
	switch guess {
	case models.GuessHuman:
		t.Human++
	case models.GuessBot:
		t.Bot++
	}

	raw, _ := json.Marshal(t)
	_ = m.store.Set(statsKeyPrefix+m.SessionID(), string(raw))
	return t
}

// Reset rotates the session: the current session record and its tally are
// removed, so the next read mints a fresh id with a zero tally. The client
// id and all server-side data are untouched.
func (m *Manager) Reset() {
	id := m.SessionID()
	_ = m.store.Remove(keySession)
	_ = m.store.Remove(statsKeyPrefix + id)
}
