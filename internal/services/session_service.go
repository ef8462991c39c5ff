package services

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/LeonardoBai12/PokemonSimplifiedAPI/domain"
)

// sessionCookie is the client-visible cookie payload
type sessionCookie struct {
	ClientID  string `json:"clientId"`
	SessionID string `json:"sessionId"`
}

// EncodeSessionCookie serializes the cookie payload for a session
func EncodeSessionCookie(session *domain.Session) string {
	data, _ := json.Marshal(sessionCookie{
		ClientID:  session.ClientID,
		SessionID: session.SessionID,
	})
	return base64.RawURLEncoding.EncodeToString(data)
}

func decodeSessionCookie(value string) (*sessionCookie, error) {
	data, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil {
		return nil, fmt.Errorf("malformed session cookie: %w", err)
	}
	var cookie sessionCookie
	if err := json.Unmarshal(data, &cookie); err != nil {
		return nil, fmt.Errorf("malformed session cookie: %w", err)
	}
	return &cookie, nil
}

// SessionServiceImpl implements domain.SessionService. Sessions are held
// server-side; the cookie only references them, so a tampered clientId fails
// against the stored record rather than being trusted.
type SessionServiceImpl struct {
	sessions domain.SessionRepository
	ttl      time.Duration
}

// NewSessionService creates a new session service
func NewSessionService(sessions domain.SessionRepository, ttl time.Duration) domain.SessionService {
	return &SessionServiceImpl{
		sessions: sessions,
		ttl:      ttl,
	}
}

// Establish implements domain.SessionService. The session id is a fresh
// random nonce bound to the user id.
func (s *SessionServiceImpl) Establish(ctx context.Context, userID string) (*domain.Session, error) {
	now := time.Now()
	session := &domain.Session{
		ClientID:  userID,
		SessionID: uuid.NewString(),
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	return session, nil
}

// Authorize implements domain.SessionService. A request is authorized only
// when the cookie decodes, the referenced session exists, and both the stored
// and claimed client ids equal the target user id. Any miss is a plain false;
// lookup faults also deny rather than authorize.
func (s *SessionServiceImpl) Authorize(ctx context.Context, cookie, targetUserID string) bool {
	payload, err := decodeSessionCookie(cookie)
	if err != nil || payload.ClientID != targetUserID {
		return false
	}

	session, err := s.sessions.FindByID(ctx, payload.SessionID)
	if err != nil || session == nil {
		return false
	}

	return session.ClientID == targetUserID
}

// Active implements domain.SessionService
func (s *SessionServiceImpl) Active(ctx context.Context, cookie string) bool {
	payload, err := decodeSessionCookie(cookie)
	if err != nil {
		return false
	}
	session, err := s.sessions.FindByID(ctx, payload.SessionID)
	return err == nil && session != nil
}

// Clear implements domain.SessionService. Clearing an unknown session is a
// no-op.
func (s *SessionServiceImpl) Clear(ctx context.Context, cookie string) error {
	payload, err := decodeSessionCookie(cookie)
	if err != nil {
		return nil
	}
	return s.sessions.Delete(ctx, payload.SessionID)
}
