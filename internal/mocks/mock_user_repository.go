package mocks

import (
	"context"

	"github.com/LeonardoBai12/PokemonSimplifiedAPI/domain"
)

// MockUserRepository implements domain.UserRepository for testing
type MockUserRepository struct {
	CreateFunc         func(ctx context.Context, user *domain.User) error
	FindByIDFunc       func(ctx context.Context, id string) (*domain.User, error)
	FindByEmailFunc    func(ctx context.Context, email string) (*domain.User, error)
	FindByPhoneFunc    func(ctx context.Context, phone string) (*domain.User, error)
	UpdateFunc         func(ctx context.Context, user *domain.User) (int64, error)
	UpdatePasswordFunc func(ctx context.Context, id, passwordHash string) (int64, error)
	DeleteFunc         func(ctx context.Context, id string) (int64, error)
	EmailInUseFunc     func(ctx context.Context, email string) (bool, error)
	PhoneInUseFunc     func(ctx context.Context, phone string) (bool, error)
}

// NewMockUserRepository creates a new MockUserRepository with default behaviors
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{}
}

// Create creates a new user
func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	// Default behavior: assign an id and succeed
	if user.ID == "" {
		user.ID = "user-1"
	}
	return nil
}

// FindByID finds a user by id
func (m *MockUserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

// FindByEmail finds a user by email
func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, nil
}

// FindByPhone finds a user by phone number
func (m *MockUserRepository) FindByPhone(ctx context.Context, phone string) (*domain.User, error) {
	if m.FindByPhoneFunc != nil {
		return m.FindByPhoneFunc(ctx, phone)
	}
	return nil, nil
}

// Update updates the profile fields of a user
func (m *MockUserRepository) Update(ctx context.Context, user *domain.User) (int64, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, user)
	}
	return 1, nil
}

// UpdatePassword updates the stored password hash of a user
func (m *MockUserRepository) UpdatePassword(ctx context.Context, id, passwordHash string) (int64, error) {
	if m.UpdatePasswordFunc != nil {
		return m.UpdatePasswordFunc(ctx, id, passwordHash)
	}
	return 1, nil
}

// Delete removes a user
func (m *MockUserRepository) Delete(ctx context.Context, id string) (int64, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return 1, nil
}

// EmailInUse reports whether any account holds the email
func (m *MockUserRepository) EmailInUse(ctx context.Context, email string) (bool, error) {
	if m.EmailInUseFunc != nil {
		return m.EmailInUseFunc(ctx, email)
	}
	return false, nil
}

// PhoneInUse reports whether any account holds the phone number
func (m *MockUserRepository) PhoneInUse(ctx context.Context, phone string) (bool, error) {
	if m.PhoneInUseFunc != nil {
		return m.PhoneInUseFunc(ctx, phone)
	}
	return false, nil
}

// Compile-time interface compliance verification
var _ domain.UserRepository = (*MockUserRepository)(nil)
