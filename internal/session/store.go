// Package session holds the authenticated identity for the current process
// and persists its credential across restarts. The Store is the single
// shared piece of mutable session state; both front-end surfaces and the
// HTTP adapter read it.
package session

import (
	"context"
	"log/slog"
	"net/http"
	"sync"

	"hrboard/internal/apiclient"
	"hrboard/internal/hr"
)

// State is the session lifecycle state.
type State int

const (
	// StateUnresolved means the initial credential check has not started.
	StateUnresolved State = iota
	// StateResolving means a persisted credential is being verified.
	StateResolving
	// StateAuthenticated means an identity is established.
	StateAuthenticated
	// StateAnonymous means no valid credential is held.
	StateAnonymous
)

func (s State) String() string {
	switch s {
	case StateUnresolved:
		return "unresolved"
	case StateResolving:
		return "resolving"
	case StateAuthenticated:
		return "authenticated"
	case StateAnonymous:
		return "anonymous"
	default:
		return "unknown"
	}
}

// LoginRequest is the credential payload for the login endpoint.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the payload for the registration endpoint. The server
// returns a fresh credential and identity on success, so registration
// doubles as login.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string  `json:"token"`
	User  hr.User `json:"user"`
}

// Store is the process-wide session. It implements apiclient.TokenSource so
// the HTTP adapter can attach the credential and tear it down on a 401.
type Store struct {
	client  *apiclient.Client
	persist Persistence
	logger  *slog.Logger

	mu       sync.Mutex
	state    State
	token    string
	user     *hr.User
	resolved bool
}

// NewStore creates a Store in the Unresolved state.
func NewStore(client *apiclient.Client, persist Persistence, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		client:  client,
		persist: persist,
		logger:  logger,
		state:   StateUnresolved,
	}
}

// State returns the current lifecycle state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Resolved reports whether the initial credential check has completed. It
// flips true exactly once per process, inside Initialize.
func (s *Store) Resolved() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.resolved
}

// User returns the authenticated identity, or nil.
func (s *Store) User() *hr.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// Token returns the current bearer credential, or "".
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// Invalidate drops the credential and identity without a server call. The
// HTTP adapter calls it when any response comes back 401.
func (s *Store) Invalidate() {
	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.state = StateAnonymous
	s.mu.Unlock()

	if err := s.persist.Clear(); err != nil {
		s.logger.Warn("clear persisted session", "error", err)
	}
}

// Initialize restores a persisted session. With a stored credential it
// transitions to Resolving and verifies it against the profile endpoint; any
// failure clears the stored credential and leaves the session Anonymous.
// Without one it goes straight to Anonymous, no network call. Either way the
// store is Resolved afterwards.
func (s *Store) Initialize(ctx context.Context) error {
	creds, err := s.persist.Load()
	if err != nil {
		s.logger.Warn("load persisted session", "error", err)
		creds = nil
	}

	s.mu.Lock()
	if creds == nil {
		s.state = StateAnonymous
		s.resolved = true
		s.mu.Unlock()
		return nil
	}
	s.state = StateResolving
	s.token = creds.Token
	s.mu.Unlock()

	var out struct {
		User hr.User `json:"user"`
	}
	err = s.client.JSON(ctx, http.MethodGet, "/auth/profile", nil, nil, &out)

	if err != nil {
		// A 401 already cleared everything through Invalidate; Invalidate
		// again for any other failure so a bad credential does not linger.
		s.Invalidate()
		s.mu.Lock()
		s.resolved = true
		s.mu.Unlock()
		return nil
	}

	s.mu.Lock()
	s.resolved = true
	s.user = &out.User
	s.state = StateAuthenticated
	s.mu.Unlock()
	return nil
}

// Login authenticates with the server and persists the returned credential
// and identity. Failures leave the session Anonymous and propagate the
// server error untouched.
func (s *Store) Login(ctx context.Context, email, password string) (*hr.User, error) {
	return s.authenticate(ctx, "/auth/login", LoginRequest{Email: email, Password: password})
}

// Register creates an account and signs in with the credential the server
// returns.
func (s *Store) Register(ctx context.Context, req RegisterRequest) (*hr.User, error) {
	return s.authenticate(ctx, "/auth/register", req)
}

func (s *Store) authenticate(ctx context.Context, path string, body interface{}) (*hr.User, error) {
	var out authResponse
	if err := s.client.JSON(ctx, http.MethodPost, path, nil, body, &out); err != nil {
		s.mu.Lock()
		if s.state != StateAuthenticated {
			s.state = StateAnonymous
		}
		s.mu.Unlock()
		return nil, err
	}

	user := out.User
	s.mu.Lock()
	s.token = out.Token
	s.user = &user
	s.state = StateAuthenticated
	s.mu.Unlock()

	if err := s.persist.Save(&Credentials{Token: out.Token, User: user}); err != nil {
		s.logger.Warn("persist session", "error", err)
	}
	return &user, nil
}

// Logout notifies the server on a best-effort basis, then unconditionally
// clears the local session. A failed server call is logged and swallowed;
// local termination always succeeds.
func (s *Store) Logout(ctx context.Context) {
	if s.Token() != "" {
		if err := s.client.JSON(ctx, http.MethodPost, "/auth/logout", nil, nil, nil); err != nil {
			s.logger.Warn("logout request failed", "error", err)
		}
	}
	s.Invalidate()
}
