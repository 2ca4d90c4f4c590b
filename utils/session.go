// File: studyspace/utils/session.go
package utils

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"

	"studyspace/models"
)

const SessionPrefix = "session:"

// DefaultSessionTTL applies when the upstream token carries no usable expiry.
const DefaultSessionTTL = 24 * time.Hour

// ErrSessionNotFound is returned for unknown or expired session IDs.
var ErrSessionNotFound = errors.New("session not found")

// SessionStore keeps authenticated sessions in Redis, keyed by opaque UUID.
// The TTL mirrors the upstream token's expiry so a session can never outlive
// the token it wraps.
type SessionStore struct {
	Client *redis.Client
}

func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{Client: client}
}

// Create mints a new session for the given token and user.
func (s *SessionStore) Create(ctx context.Context, token string, user models.User) (*models.Session, error) {
	now := time.Now()
	expires := now.Add(DefaultSessionTTL)
	if exp, ok := TokenExpiry(token); ok && exp.After(now) {
		expires = exp
	}

	session := &models.Session{
		ID:        uuid.New().String(),
		Token:     token,
		User:      user,
		CreatedAt: now,
		ExpiresAt: expires,
	}

	data, err := json.Marshal(session)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := s.Client.Set(ctx, SessionPrefix+session.ID, data, time.Until(expires)).Err(); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}
	return session, nil
}

// Get retrieves a session by ID.
func (s *SessionStore) Get(ctx context.Context, sessionID string) (*models.Session, error) {
	data, err := s.Client.Get(ctx, SessionPrefix+sessionID).Result()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	var session models.Session
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &session, nil
}

// Update rewrites a session in place, preserving its remaining TTL.
func (s *SessionStore) Update(ctx context.Context, session *models.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return ErrSessionNotFound
	}
	if err := s.Client.Set(ctx, SessionPrefix+session.ID, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to update session: %w", err)
	}
	return nil
}

// Delete removes a session. Used by logout and by upstream auth failures.
func (s *SessionStore) Delete(ctx context.Context, sessionID string) error {
	return s.Client.Del(ctx, SessionPrefix+sessionID).Err()
}

// TokenExpiry reads the exp claim from the upstream bearer token without
// verifying its signature. The remote API is the signing authority; this app
// only needs the expiry to size the session TTL.
func TokenExpiry(tokenString string) (time.Time, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := new(jwt.Parser).ParseUnverified(tokenString, claims); err != nil {
		return time.Time{}, false
	}
	exp, ok := claims["exp"].(float64)
	if !ok || exp <= 0 {
		return time.Time{}, false
	}
	return time.Unix(int64(exp), 0), true
}
