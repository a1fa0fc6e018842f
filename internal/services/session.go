package services

import (
	"crypto/subtle"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Session is the explicit capability object an editor login grants. Handlers
// read IsAuthenticated off the session resolved for the request rather than
// any process-global state.
type Session struct {
	Token           string
	IsAuthenticated bool
	CreatedAt       time.Time
}

// SessionService gates editor access behind the configured shared-secret
// password. Tokens are opaque and expire after the configured TTL.
type SessionService interface {
	Login(password string) (*Session, error)
	Resolve(token string) *Session
	Logout(token string)
	PasswordConfigured() bool
}

type sessionService struct {
	password string
	ttl      time.Duration

	mu       sync.Mutex
	sessions map[string]*Session
}

func NewSessionService(password string, ttl time.Duration) SessionService {
	return &sessionService{
		password: password,
		ttl:      ttl,
		sessions: make(map[string]*Session),
	}
}

func (s *sessionService) PasswordConfigured() bool {
	return s.password != ""
}

// Login checks the password in constant time and mints a session token.
func (s *sessionService) Login(password string) (*Session, error) {
	if !s.PasswordConfigured() {
		return nil, fmt.Errorf("editor password is not configured")
	}
	if subtle.ConstantTimeCompare([]byte(password), []byte(s.password)) != 1 {
		return nil, fmt.Errorf("invalid password")
	}

	session := &Session{
		Token:           uuid.NewString(),
		IsAuthenticated: true,
		CreatedAt:       time.Now(),
	}

	s.mu.Lock()
	s.sessions[session.Token] = session
	s.mu.Unlock()
	return session, nil
}

// Resolve returns the live session for a token, or nil for unknown or expired
// tokens. Expired sessions are dropped on resolution.
func (s *sessionService) Resolve(token string) *Session {
	if token == "" {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[token]
	if !ok {
		return nil
	}
	if s.ttl > 0 && time.Since(session.CreatedAt) > s.ttl {
		delete(s.sessions, token)
		return nil
	}
	return session
}

func (s *sessionService) Logout(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}
