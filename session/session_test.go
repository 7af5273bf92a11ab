package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/spot-the-bot/kv"
)

func newTestManager(t *testing.T) (*Manager, *time.Time) {
	t.Helper()

	now := time.Now()
	m := NewManager(kv.NewMemStore())
	m.now = func() time.Time { return now }
	return m, &now
}

func TestClientID_Stable(t *testing.T) {
	m, _ := newTestManager(t)

	id := m.ClientID()
	require.NotEmpty(t, id)
	require.Equal(t, id, m.ClientID(), "client id must be stable across reads")
}

func TestClientID_PersistsAcrossManagers(t *testing.T) {
	store := kv.NewMemStore()

	first := NewManager(store).ClientID()
	second := NewManager(store).ClientID()
	require.Equal(t, first, second)
}

func TestSessionID_StableWithinTTL(t *testing.T) {
	m, now := newTestManager(t)

	id := m.SessionID()
	require.NotEmpty(t, id)

	*now = now.Add(29 * time.Minute)
	require.Equal(t, id, m.SessionID())
}

func TestSessionID_RotatesAfterExpiry(t *testing.T) {
	m, now := newTestManager(t)

	id := m.SessionID()

	*now = now.Add(31 * time.Minute)
	rotated := m.SessionID()
	require.NotEqual(t, id, rotated)

	// The new session starts with a zero tally
	require.Equal(t, Tally{}, m.Stats())
}

func TestRecordGuess(t *testing.T) {
	m, _ := newTestManager(t)

	m.RecordGuess("bot", true)
	m.RecordGuess("human", false)
	tally := m.RecordGuess("bot", true)

	require.Equal(t, Tally{Total: 3, Correct: 2, Human: 1, Bot: 2}, tally)
	require.Equal(t, tally, m.Stats(), "tally must persist")

	// Invariants: total == human + bot, correct <= total
	require.Equal(t, tally.Total, tally.Human+tally.Bot)
	require.LessOrEqual(t, tally.Correct, tally.Total)
}

func TestReset(t *testing.T) {
	m, _ := newTestManager(t)

	clientID := m.ClientID()
	sessionID := m.SessionID()
	m.RecordGuess("bot", true)

	m.Reset()

	require.NotEqual(t, sessionID, m.SessionID(), "reset must rotate the session id")
	require.Equal(t, Tally{}, m.Stats(), "reset must zero the tally")
	require.Equal(t, clientID, m.ClientID(), "reset must not touch the client id")
}

func TestStats_MalformedStoredTally(t *testing.T) {
	store := kv.NewMemStore()
	m := NewManager(store)

	id := m.SessionID()
	require.NoError(t, store.Set("spotTheBotSessionStats:"+id, "not json"))

	require.Equal(t, Tally{}, m.Stats())
}
