package mocks

import "github.com/LeonardoBai12/PokemonSimplifiedAPI/domain"

// MockPasswordService implements domain.PasswordService for testing
type MockPasswordService struct {
	HashFunc   func(password string) (string, error)
	VerifyFunc func(passwordHash, password string) bool
}

// NewMockPasswordService creates a new MockPasswordService
func NewMockPasswordService() *MockPasswordService {
	return &MockPasswordService{}
}

// Hash hashes a password
func (m *MockPasswordService) Hash(password string) (string, error) {
	if m.HashFunc != nil {
		return m.HashFunc(password)
	}
	// Default behavior: recognizable fake hash
	return "hashed_" + password, nil
}

// Verify checks a password against a stored hash
func (m *MockPasswordService) Verify(passwordHash, password string) bool {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(passwordHash, password)
	}
	// Default behavior: match against the fake hash scheme
	return passwordHash == "hashed_"+password
}

// Compile-time interface compliance verification
var _ domain.PasswordService = (*MockPasswordService)(nil)
