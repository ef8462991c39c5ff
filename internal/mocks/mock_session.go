package mocks

import (
	"context"

	"github.com/LeonardoBai12/PokemonSimplifiedAPI/domain"
)

// MockSessionRepository implements domain.SessionRepository for testing
type MockSessionRepository struct {
	CreateFunc   func(ctx context.Context, session *domain.Session) error
	FindByIDFunc func(ctx context.Context, sessionID string) (*domain.Session, error)
	DeleteFunc   func(ctx context.Context, sessionID string) error
}

// NewMockSessionRepository creates a new MockSessionRepository
func NewMockSessionRepository() *MockSessionRepository {
	return &MockSessionRepository{}
}

// Create stores a session
func (m *MockSessionRepository) Create(ctx context.Context, session *domain.Session) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, session)
	}
	return nil
}

// FindByID looks up a session by its nonce
func (m *MockSessionRepository) FindByID(ctx context.Context, sessionID string) (*domain.Session, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, sessionID)
	}
	return nil, nil
}

// Delete removes a session
func (m *MockSessionRepository) Delete(ctx context.Context, sessionID string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, sessionID)
	}
	return nil
}

// MockSessionService implements domain.SessionService for testing
type MockSessionService struct {
	EstablishFunc func(ctx context.Context, userID string) (*domain.Session, error)
	AuthorizeFunc func(ctx context.Context, cookie, targetUserID string) bool
	ActiveFunc    func(ctx context.Context, cookie string) bool
	ClearFunc     func(ctx context.Context, cookie string) error
}

// NewMockSessionService creates a new MockSessionService
func NewMockSessionService() *MockSessionService {
	return &MockSessionService{}
}

// Establish creates a session for a user
func (m *MockSessionService) Establish(ctx context.Context, userID string) (*domain.Session, error) {
	if m.EstablishFunc != nil {
		return m.EstablishFunc(ctx, userID)
	}
	return &domain.Session{ClientID: userID, SessionID: "session-1"}, nil
}

// Authorize checks a session cookie against a target user id
func (m *MockSessionService) Authorize(ctx context.Context, cookie, targetUserID string) bool {
	if m.AuthorizeFunc != nil {
		return m.AuthorizeFunc(ctx, cookie, targetUserID)
	}
	return false
}

// Active reports whether the cookie references a live session
func (m *MockSessionService) Active(ctx context.Context, cookie string) bool {
	if m.ActiveFunc != nil {
		return m.ActiveFunc(ctx, cookie)
	}
	return false
}

// Clear removes the session referenced by the cookie
func (m *MockSessionService) Clear(ctx context.Context, cookie string) error {
	if m.ClearFunc != nil {
		return m.ClearFunc(ctx, cookie)
	}
	return nil
}

// Compile-time interface compliance verification
var (
	_ domain.SessionRepository = (*MockSessionRepository)(nil)
	_ domain.SessionService    = (*MockSessionService)(nil)
)
