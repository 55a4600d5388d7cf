package intake

import (
	"crypto/rand"
	"encoding/hex"
	"sync"
	"time"
)

// Registry holds the live wizard controllers keyed by session ID. There
// is no persistence: a restart loses in-progress drafts, which matches
// the product behavior of losing a draft on page reload.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*session
	ttl      time.Duration
	api      RemoteAPI

	stop chan struct{}
	wg   sync.WaitGroup
}

type session struct {
	controller *Controller
	expiresAt  time.Time
}

func NewRegistry(api RemoteAPI, ttl time.Duration) *Registry {
	r := &Registry{
		sessions: make(map[string]*session),
		ttl:      ttl,
		api:      api,
		stop:     make(chan struct{}),
	}
	r.wg.Add(1)
	go r.janitor()
	return r
}

// Create allocates a new controller and returns its session ID.
func (r *Registry) Create(visitorID string) (string, *Controller) {
	id := newSessionID()
	ctrl := NewController(r.api, visitorID)

	r.mu.Lock()
	r.sessions[id] = &session{
		controller: ctrl,
		expiresAt:  time.Now().Add(r.ttl),
	}
	r.mu.Unlock()

	return id, ctrl
}

// Get returns the controller for a session and extends its lifetime.
func (r *Registry) Get(id string) (*Controller, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if !ok {
		return nil, false
	}
	if time.Now().After(s.expiresAt) {
		delete(r.sessions, id)
		s.controller.Close()
		return nil, false
	}
	s.expiresAt = time.Now().Add(r.ttl)
	return s.controller, true
}

// Close stops the janitor and closes every live controller, cancelling
// any in-flight remote calls.
func (r *Registry) Close() {
	close(r.stop)
	r.wg.Wait()

	r.mu.Lock()
	defer r.mu.Unlock()
	for id, s := range r.sessions {
		s.controller.Close()
		delete(r.sessions, id)
	}
}

func (r *Registry) janitor() {
	defer r.wg.Done()

	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.sweep()
		case <-r.stop:
			return
		}
	}
}

func (r *Registry) sweep() {
	now := time.Now()
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, s := range r.sessions {
		if now.After(s.expiresAt) {
			delete(r.sessions, id)
			s.controller.Close()
		}
	}
}

func newSessionID() string {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand never fails on supported platforms
		panic(err)
	}
	return hex.EncodeToString(buf)
}
