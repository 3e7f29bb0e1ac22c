package cart

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Session is one live cart plus the mutex that serializes access to it.
// The domain cart carries no locking of its own; all HTTP access to a
// cart goes through Do.
type Session struct {
	ID string

	mu   sync.Mutex
	cart *ShoppingCart
}

// Do runs fn with exclusive access to the session's cart.
func (s *Session) Do(fn func(c *ShoppingCart) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.cart)
}

// Store keeps live cart sessions in memory. Carts are never persisted;
// they live for the duration of the process.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	limit    int
}

// NewStore returns an empty session store. A limit of zero means
// unbounded.
func NewStore(limit int) *Store {
	return &Store{sessions: make(map[string]*Session), limit: limit}
}

// Create opens a new cart session bound to the given inventory.
func (st *Store) Create(inventory Inventory) (*Session, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.limit > 0 && len(st.sessions) >= st.limit {
		return nil, fmt.Errorf("%d live carts: %w", len(st.sessions), ErrTooManyCarts)
	}
	session := &Session{ID: uuid.NewString(), cart: New(inventory)}
	st.sessions[session.ID] = session
	return session, nil
}

// Get returns the session for id.
func (st *Store) Get(id string) (*Session, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	session, ok := st.sessions[id]
	if !ok {
		return nil, fmt.Errorf("cart %q: %w", id, ErrCartNotFound)
	}
	return session, nil
}

// Len reports the number of live sessions.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}
