package session

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/imarchenko/stockroom/internal/client/repositories/state"
	"github.com/imarchenko/stockroom/internal/client/token"
	"github.com/imarchenko/stockroom/internal/logging"
)

// slotKey is the named slot in the state repository holding the
// JSON-serialized session. Absence of the slot means "no session".
const slotKey = "currentUser"

// Backend performs the credential exchange with the server. Implemented by
// the auth service; substitutable in tests.
type Backend interface {
	SignIn(ctx context.Context, username, password string) (*Session, error)
}

// Store holds the current session in memory, mirrors it to the durable
// slot, and multicasts change notifications to subscribers.
type Store struct {
	repo    state.Repository
	backend Backend
	log     logging.Logger

	current *Session
	subs    []subscription
	nextSub int

	// expired is a seam over the token inspector.
	expired func(tok string) bool
}

type subscription struct {
	id int
	fn func(*Session)
}

// NewStore constructs a Store over the given slot repository and backend.
// Call Refresh to rehydrate state saved by a prior run.
func NewStore(repo state.Repository, backend Backend, log logging.Logger) *Store {
	return &Store{
		repo:    repo,
		backend: backend,
		log:     log.With("component", "session"),
		expired: token.Expired,
	}
}

// Subscribe registers fn to be called synchronously, in subscription order,
// after every session mutation. The returned function removes the
// subscription. A subscriber added after a mutation does not retroactively
// receive it.
func (s *Store) Subscribe(fn func(*Session)) (unsubscribe func()) {
	id := s.nextSub
	s.nextSub++
	s.subs = append(s.subs, subscription{id: id, fn: fn})

	return func() {
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

func (s *Store) notify() {
	// Deliver against a snapshot: a subscriber that unsubscribes itself
	// mid-delivery splices s.subs, which would otherwise shift the list
	// under this loop.
	for _, sub := range slices.Clone(s.subs) {
		sub.fn(s.current)
	}
}

// Login exchanges credentials with the backend and, on success, stores the
// returned session into the durable slot and memory, then notifies
// subscribers. On failure the prior session, if any, is left untouched.
func (s *Store) Login(ctx context.Context, username, password string) (*Session, error) {
	sess, err := s.backend.SignIn(ctx, username, password)
	if err != nil {
		return nil, err
	}
	if sess == nil || sess.AccessToken == "" {
		return nil, fmt.Errorf("signin response carries no access token")
	}

	data, err := json.Marshal(sess)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize session: %w", err)
	}
	if err := s.repo.Set(ctx, slotKey, data); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}

	s.current = sess
	s.log.Info(ctx, "logged in", "username", sess.Username, "roles", sess.Roles)
	s.notify()
	return sess, nil
}

// Logout removes the session from the durable slot and memory and notifies
// subscribers with "no session". The in-memory value is cleared even when
// the slot delete fails, so a stale identity is never kept live.
func (s *Store) Logout(ctx context.Context) error {
	err := s.repo.Delete(ctx, slotKey)
	if err != nil {
		// The slot must not outlive the logout. The repository holds
		// nothing but the session, so wiping it is a safe second try.
		if cerr := s.repo.Clear(ctx); cerr == nil {
			err = nil
		} else {
			err = fmt.Errorf("failed to clear session slot: %w", err)
		}
	}

	s.current = nil
	s.log.Info(ctx, "logged out")
	s.notify()
	return err
}

// Refresh re-reads the durable slot into memory and notifies subscribers.
// Used at process start to rehydrate state saved by a prior run. A corrupt
// slot counts as "no session".
func (s *Store) Refresh(ctx context.Context) error {
	data, err := s.repo.Get(ctx, slotKey)
	if err != nil {
		return fmt.Errorf("failed to read session slot: %w", err)
	}

	if data == nil {
		s.current = nil
		s.notify()
		return nil
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		s.current = nil
		s.notify()
		return fmt.Errorf("corrupt session slot: %w", err)
	}

	s.current = &sess
	s.log.Debug(ctx, "session restored", "username", sess.Username)
	s.notify()
	return nil
}

// Current returns the in-memory session, or nil when none exists.
func (s *Store) Current() *Session {
	return s.current
}

// IsLoggedIn reports whether a session exists and carries a non-empty token.
func (s *Store) IsLoggedIn() bool {
	return s.current != nil && s.current.AccessToken != ""
}

// Token returns the current bearer token, or "" when none exists.
func (s *Store) Token() string {
	if s.current == nil {
		return ""
	}
	return s.current.AccessToken
}

// IsTokenExpired reports whether the current token has expired. True when no
// token exists.
func (s *Store) IsTokenExpired() bool {
	tok := s.Token()
	if tok == "" {
		return true
	}
	return s.expired(tok)
}

// HasRole reports whether the current session carries the given role.
// False when no session exists.
func (s *Store) HasRole(role string) bool {
	return s.current.HasRole(role)
}

// HasAnyRole reports whether the current session carries at least one of the
// given roles. False when no session exists.
func (s *Store) HasAnyRole(roles ...string) bool {
	return s.current.HasAnyRole(roles...)
}
