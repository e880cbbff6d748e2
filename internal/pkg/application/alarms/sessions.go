package alarms

import (
	"sync"
	"time"

	"github.com/thequyenle/alarm-mgmt/pkg/types"
)

// sessionRegistry holds the in flight ringing session per alarm id.
// Sessions are created on fire and torn down on resolve; there is never
// more than one per alarm id.
type sessionRegistry struct {
	mu       sync.RWMutex
	sessions map[int64]types.RingingSession
}

func newSessionRegistry() *sessionRegistry {
	return &sessionRegistry{
		sessions: map[int64]types.RingingSession{},
	}
}

// Open creates a fresh session in the ringing state, replacing any
// session left over from an earlier firing.
func (r *sessionRegistry) Open(alarmID int64, firedAt time.Time, payload types.TriggerPayload) types.RingingSession {
	r.mu.Lock()
	defer r.mu.Unlock()

	session := types.RingingSession{
		AlarmID: alarmID,
		FiredAt: firedAt,
		State:   types.SessionRinging,
		Payload: payload,
	}
	r.sessions[alarmID] = session

	return session
}

func (r *sessionRegistry) Get(alarmID int64) (types.RingingSession, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[alarmID]
	return session, ok
}

func (r *sessionRegistry) Snooze(alarmID int64, deadline time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[alarmID]
	if !ok {
		return
	}

	session.State = types.SessionSnoozed
	session.SnoozeDeadline = deadline
	r.sessions[alarmID] = session
}

// Resolve is terminal: the session is removed and a later fire event
// opens a brand new one.
func (r *sessionRegistry) Resolve(alarmID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, alarmID)
}

// alarmLocks serializes schedule mutating operations per alarm id.
// Operations on different alarm ids proceed independently.
type alarmLocks struct {
	mu   sync.Mutex
	held map[int64]*alarmLock
}

type alarmLock struct {
	mu   sync.Mutex
	refs int
}

func newAlarmLocks() *alarmLocks {
	return &alarmLocks{
		held: map[int64]*alarmLock{},
	}
}

func (l *alarmLocks) Lock(alarmID int64) func() {
	l.mu.Lock()
	e, ok := l.held[alarmID]
	if !ok {
		e = &alarmLock{}
		l.held[alarmID] = e
	}
	e.refs++
	l.mu.Unlock()

	e.mu.Lock()

	return func() {
		e.mu.Unlock()

		l.mu.Lock()
		e.refs--
		if e.refs == 0 {
			delete(l.held, alarmID)
		}
		l.mu.Unlock()
	}
}
