package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"pneutrack/backend/internal/apperrors"
	"pneutrack/backend/internal/auth"
	"pneutrack/backend/internal/cache"
	"pneutrack/backend/internal/constants"
	"pneutrack/backend/internal/db/repositories"
	"pneutrack/backend/internal/logging"
)

const sessionTTL = 7 * 24 * time.Hour

// SessionData is the JSON payload stored in the cache per session.
type SessionData struct {
	SessionID string         `json:"session_id"`
	Email     string         `json:"email"`
	Name      string         `json:"name"`
	Role      constants.Role `json:"role"`
	CreatedAt time.Time      `json:"created_at"`
	ExpiresAt time.Time      `json:"expires_at"`
}

// SessionService handles login, logout and session resolution. Sessions
// live in the cache backend (Redis in production, in-memory otherwise) and
// are referenced from the signed token handed to the client.
type SessionService struct {
	users  *repositories.UserRepository
	cache  cache.CacheInterface
	secret []byte
}

func NewSessionService(users *repositories.UserRepository, c cache.CacheInterface, secret []byte) *SessionService {
	return &SessionService{users: users, cache: c, secret: secret}
}

// Login checks credentials and returns a signed session token
func (s *SessionService) Login(ctx context.Context, email, password string) (string, *SessionData, error) {
	if email == "" || password == "" {
		return "", nil, apperrors.NewValidation("credentials", "email and password are required")
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", nil, fmt.Errorf("invalid credentials: %w", apperrors.ErrUnauthorized)
		}
		return "", nil, err
	}
	// demo credentials, stored in the clear like the rest of the demo data
	if user.Password != password {
		return "", nil, fmt.Errorf("invalid credentials: %w", apperrors.ErrUnauthorized)
	}

	now := time.Now()
	session := SessionData{
		SessionID: uuid.New().String(),
		Email:     user.Email,
		Name:      user.Name,
		Role:      user.Role,
		CreatedAt: now,
		ExpiresAt: now.Add(sessionTTL),
	}

	data, err := json.Marshal(session)
	if err != nil {
		return "", nil, fmt.Errorf("failed to marshal session: %w", err)
	}
	s.cache.Set("session:"+session.SessionID, string(data), sessionTTL)

	token, err := auth.SignSessionToken(s.secret, session.SessionID, user.Email, user.Role, sessionTTL)
	if err != nil {
		return "", nil, err
	}

	logging.Info("user logged in", "email", user.Email, "role", user.Role.String())
	return token, &session, nil
}

// Resolve validates a token and loads its session into claims
func (s *SessionService) Resolve(ctx context.Context, token string) (auth.UserClaims, error) {
	claims, err := auth.ParseSessionToken(s.secret, token)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, apperrors.ErrUnauthorized)
	}

	session, err := s.getSession(claims.SessionID)
	if err != nil {
		return nil, err
	}

	return &auth.SessionClaims{
		UserEmail: session.Email,
		UserRole:  session.Role,
		SessionID: session.SessionID,
	}, nil
}

// Logout deletes the session behind a token. Invalid tokens are a no-op.
func (s *SessionService) Logout(ctx context.Context, token string) {
	claims, err := auth.ParseSessionToken(s.secret, token)
	if err != nil {
		return
	}
	s.cache.Delete("session:" + claims.SessionID)
}

func (s *SessionService) getSession(sessionID string) (*SessionData, error) {
	val, found := s.cache.Get("session:" + sessionID)
	if !found {
		return nil, fmt.Errorf("session not found: %w", apperrors.ErrUnauthorized)
	}

	var raw []byte
	switch v := val.(type) {
	case string:
		raw = []byte(v)
	case []byte:
		raw = v
	default:
		return nil, fmt.Errorf("unexpected session payload type %T: %w", val, apperrors.ErrUnauthorized)
	}

	var session SessionData
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	if time.Now().After(session.ExpiresAt) {
		s.cache.Delete("session:" + sessionID)
		return nil, fmt.Errorf("session expired: %w", apperrors.ErrUnauthorized)
	}
	return &session, nil
}
