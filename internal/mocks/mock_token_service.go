package mocks

import "github.com/LeonardoBai12/PokemonSimplifiedAPI/domain"

// MockTokenService implements domain.TokenService for testing
type MockTokenService struct {
	IssueFunc    func(userID string) (string, error)
	ValidateFunc func(token string) (*domain.TokenClaims, error)
}

// NewMockTokenService creates a new MockTokenService
func NewMockTokenService() *MockTokenService {
	return &MockTokenService{}
}

// Issue issues a bearer token for a user id
func (m *MockTokenService) Issue(userID string) (string, error) {
	if m.IssueFunc != nil {
		return m.IssueFunc(userID)
	}
	return "token_" + userID, nil
}

// Validate verifies a bearer token
func (m *MockTokenService) Validate(token string) (*domain.TokenClaims, error) {
	if m.ValidateFunc != nil {
		return m.ValidateFunc(token)
	}
	return nil, domain.Unauthorized("invalid token")
}

// Compile-time interface compliance verification
var _ domain.TokenService = (*MockTokenService)(nil)
