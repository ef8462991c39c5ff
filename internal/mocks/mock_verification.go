package mocks

import (
	"context"

	"github.com/LeonardoBai12/PokemonSimplifiedAPI/domain"
)

// MockVerificationRepository implements domain.VerificationRepository for testing
type MockVerificationRepository struct {
	InsertFunc  func(ctx context.Context, phone, code string) error
	ConsumeFunc func(ctx context.Context, phone, code string) (bool, error)
}

// NewMockVerificationRepository creates a new MockVerificationRepository
func NewMockVerificationRepository() *MockVerificationRepository {
	return &MockVerificationRepository{}
}

// Insert stores a pending code for a phone number
func (m *MockVerificationRepository) Insert(ctx context.Context, phone, code string) error {
	if m.InsertFunc != nil {
		return m.InsertFunc(ctx, phone, code)
	}
	return nil
}

// Consume atomically deletes a matching code record
func (m *MockVerificationRepository) Consume(ctx context.Context, phone, code string) (bool, error) {
	if m.ConsumeFunc != nil {
		return m.ConsumeFunc(ctx, phone, code)
	}
	return false, nil
}

// MockVerificationService implements domain.VerificationService for testing
type MockVerificationService struct {
	RequestFunc func(ctx context.Context, phone string) error
	ConsumeFunc func(ctx context.Context, phone, code string) (bool, error)
}

// NewMockVerificationService creates a new MockVerificationService
func NewMockVerificationService() *MockVerificationService {
	return &MockVerificationService{}
}

// Request generates, stores and sends a verification code
func (m *MockVerificationService) Request(ctx context.Context, phone string) error {
	if m.RequestFunc != nil {
		return m.RequestFunc(ctx, phone)
	}
	return nil
}

// Consume validates and consumes a submitted code
func (m *MockVerificationService) Consume(ctx context.Context, phone, code string) (bool, error) {
	if m.ConsumeFunc != nil {
		return m.ConsumeFunc(ctx, phone, code)
	}
	return false, nil
}

// Compile-time interface compliance verification
var (
	_ domain.VerificationRepository = (*MockVerificationRepository)(nil)
	_ domain.VerificationService    = (*MockVerificationService)(nil)
)
