package engine

import (
	"sync"

	"gorm.io/gorm"

	"github.com/granaflow/granaflow/gateway"
	"github.com/granaflow/granaflow/models"
	"github.com/granaflow/granaflow/store"
	"github.com/granaflow/granaflow/syncer"
	"github.com/granaflow/granaflow/types"
)

// Session binds one member's store, sync adapter and mutation gateway.
// Created on login, torn down on logout; the store is session-scoped,
// never process-wide.
type Session struct {
	Member  *models.Member
	Store   *store.Store
	Adapter *syncer.Adapter
	Gateway *gateway.Gateway
}

type SessionRegistry struct {
	mu sync.Mutex

	db       *gorm.DB
	sessions map[string]*Session
}

func NewSessionRegistry(db *gorm.DB) *SessionRegistry {
	return &SessionRegistry{
		db:       db,
		sessions: make(map[string]*Session),
	}
}

// Attach builds the session for a member, replacing (and first tearing
// down) any previous one for the same uid so the realtime channel is
// never subscribed twice.
func (r *SessionRegistry) Attach(member *models.Member) (*Session, error) {
	if member == nil || member.ID == 0 {
		return nil, &types.AuthError{Reason: "no active session"}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if previous, found := r.sessions[member.UID]; found {
		previous.Adapter.Stop()
		delete(r.sessions, member.UID)
	}

	st := store.New(member.Location())
	adapter := syncer.NewAdapter(r.db, member, st)

	if err := adapter.Refresh(); err != nil {
		return nil, err
	}

	if err := adapter.Start(); err != nil {
		return nil, err
	}

	session := &Session{
		Member:  member,
		Store:   st,
		Adapter: adapter,
		Gateway: gateway.New(r.db, member, st),
	}

	r.sessions[member.UID] = session

	return session, nil
}

// Get returns the live session for uid, or nil.
func (r *SessionRegistry) Get(uid string) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.sessions[uid]
}

// Ensure returns the existing session or attaches a new one.
func (r *SessionRegistry) Ensure(member *models.Member) (*Session, error) {
	if member != nil {
		if session := r.Get(member.UID); session != nil {
			return session, nil
		}
	}

	return r.Attach(member)
}

// Detach tears the member's session down. Late results from in-flight
// refetches land on the dropped store and are simply never observed.
func (r *SessionRegistry) Detach(uid string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if session, found := r.sessions[uid]; found {
		session.Adapter.Stop()
		delete(r.sessions, uid)
	}
}
