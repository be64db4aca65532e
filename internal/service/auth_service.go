package service

import (
	"context"
	"sync"

	"spice-palace/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// authService implements AuthService over the static account list. Passwords
// are matched in plaintext by design; this surface is out of the ordering
// core and carries no security guarantees.
type authService struct {
	mu       sync.RWMutex
	users    map[string]model.User
	sessions map[string]model.User
	logger   zerolog.Logger
}

// NewAuthService creates an auth service seeded with the given accounts.
func NewAuthService(users []model.User, logger zerolog.Logger) AuthService {
	byName := make(map[string]model.User, len(users))
	for _, user := range users {
		byName[user.Username] = user
	}
	return &authService{
		users:    byName,
		sessions: make(map[string]model.User),
		logger:   logger.With().Str("service", "auth").Logger(),
	}
}

// Login checks the credentials and issues a session token.
func (s *authService) Login(ctx context.Context, username, password string) (*model.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[username]
	if !ok || user.Password != password {
		s.logger.Warn().Str("username", username).Msg("login rejected")
		return nil, model.ErrInvalidCredentials
	}

	token := uuid.NewString()
	s.sessions[token] = user

	s.logger.Info().
		Str("username", username).
		Str("role", string(user.Role)).
		Msg("login succeeded")
	return &model.Session{Token: token, User: user}, nil
}

// Logout revokes a session token. Unknown tokens are a no-op.
func (s *authService) Logout(ctx context.Context, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
}

// Resolve returns the user behind a session token.
func (s *authService) Resolve(token string) (*model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.sessions[token]
	if !ok {
		return nil, false
	}
	return &user, true
}
