package services

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"testing"
	"time"

	"github.com/LeonardoBai12/PokemonSimplifiedAPI/domain"
	"github.com/LeonardoBai12/PokemonSimplifiedAPI/internal/mocks"
)

func newSessionServiceForTest() (domain.SessionService, *mocks.MockSessionRepository) {
	repo := mocks.NewMockSessionRepository()
	return NewSessionService(repo, time.Hour), repo
}

func TestSessionServiceImpl_Establish(t *testing.T) {
	svc, repo := newSessionServiceForTest()

	var stored *domain.Session
	repo.CreateFunc = func(ctx context.Context, session *domain.Session) error {
		stored = session
		return nil
	}

	first, err := svc.Establish(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.ClientID != "user-1" {
		t.Errorf("session bound to %q, want user-1", first.ClientID)
	}
	if first.SessionID == "" {
		t.Error("session id must not be empty")
	}
	if stored == nil || stored.SessionID != first.SessionID {
		t.Error("the session returned must be the session stored")
	}
	if !stored.ExpiresAt.After(stored.CreatedAt) {
		t.Error("session must expire after it is created")
	}

	second, err := svc.Establish(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.SessionID == first.SessionID {
		t.Error("each established session must carry a fresh nonce")
	}
}

func TestEncodeSessionCookie(t *testing.T) {
	cookie := EncodeSessionCookie(&domain.Session{
		ClientID:  "user-1",
		SessionID: "nonce-1",
	})

	raw, err := base64.RawURLEncoding.DecodeString(cookie)
	if err != nil {
		t.Fatalf("cookie is not base64url: %v", err)
	}
	var payload map[string]string
	if err := json.Unmarshal(raw, &payload); err != nil {
		t.Fatalf("cookie payload is not JSON: %v", err)
	}
	if payload["clientId"] != "user-1" || payload["sessionId"] != "nonce-1" {
		t.Errorf("unexpected payload %v", payload)
	}
}

func TestSessionServiceImpl_Authorize(t *testing.T) {
	session := &domain.Session{ClientID: "user-1", SessionID: "nonce-1"}

	tests := []struct {
		name       string
		cookie     string
		targetUser string
		stored     *domain.Session
		authorized bool
	}{
		{
			name:       "matching session",
			cookie:     EncodeSessionCookie(session),
			targetUser: "user-1",
			stored:     session,
			authorized: true,
		},
		{
			name:       "cookie for another user",
			cookie:     EncodeSessionCookie(session),
			targetUser: "user-2",
			stored:     session,
			authorized: false,
		},
		{
			name: "tampered clientId fails against the stored record",
			cookie: EncodeSessionCookie(&domain.Session{
				ClientID:  "user-2",
				SessionID: "nonce-1",
			}),
			targetUser: "user-2",
			stored:     session,
			authorized: false,
		},
		{
			name:       "session expired out of the store",
			cookie:     EncodeSessionCookie(session),
			targetUser: "user-1",
			stored:     nil,
			authorized: false,
		},
		{
			name:       "garbage cookie",
			cookie:     "not a cookie",
			targetUser: "user-1",
			stored:     session,
			authorized: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newSessionServiceForTest()
			repo.FindByIDFunc = func(ctx context.Context, sessionID string) (*domain.Session, error) {
				if tt.stored != nil && sessionID == tt.stored.SessionID {
					return tt.stored, nil
				}
				return nil, nil
			}

			if got := svc.Authorize(context.Background(), tt.cookie, tt.targetUser); got != tt.authorized {
				t.Errorf("Authorize() = %v, want %v", got, tt.authorized)
			}
		})
	}
}

func TestSessionServiceImpl_Active(t *testing.T) {
	session := &domain.Session{ClientID: "user-1", SessionID: "nonce-1"}
	svc, repo := newSessionServiceForTest()
	repo.FindByIDFunc = func(ctx context.Context, sessionID string) (*domain.Session, error) {
		if sessionID == "nonce-1" {
			return session, nil
		}
		return nil, nil
	}

	if !svc.Active(context.Background(), EncodeSessionCookie(session)) {
		t.Error("a stored session must be active")
	}
	gone := EncodeSessionCookie(&domain.Session{ClientID: "user-1", SessionID: "nonce-2"})
	if svc.Active(context.Background(), gone) {
		t.Error("a missing session must not be active")
	}
	if svc.Active(context.Background(), "garbage") {
		t.Error("a malformed cookie must not be active")
	}
}

func TestSessionServiceImpl_Clear(t *testing.T) {
	svc, repo := newSessionServiceForTest()

	var deleted string
	repo.DeleteFunc = func(ctx context.Context, sessionID string) error {
		deleted = sessionID
		return nil
	}

	session := &domain.Session{ClientID: "user-1", SessionID: "nonce-1"}
	if err := svc.Clear(context.Background(), EncodeSessionCookie(session)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted != "nonce-1" {
		t.Errorf("cleared %q, want nonce-1", deleted)
	}

	deleted = ""
	if err := svc.Clear(context.Background(), "garbage"); err != nil {
		t.Fatalf("clearing a malformed cookie must be a no-op, got %v", err)
	}
	if deleted != "" {
		t.Error("no delete may happen for a malformed cookie")
	}
}
