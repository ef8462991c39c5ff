package mocks

import (
	"context"

	"github.com/LeonardoBai12/PokemonSimplifiedAPI/domain"
)

// MockAccountService implements domain.AccountService for testing
type MockAccountService struct {
	SignUpFunc           func(ctx context.Context, data domain.SignUpData) (string, error)
	LoginFunc            func(ctx context.Context, email, password string) (*domain.AuthResult, error)
	RequestPhoneCodeFunc func(ctx context.Context, phone string) error
	LoginByPhoneFunc     func(ctx context.Context, phone, code string) (*domain.AuthResult, error)
	GetUserFunc          func(ctx context.Context, id string) (*domain.User, error)
	UpdateUserFunc       func(ctx context.Context, id string, update domain.UserUpdate) error
	UpdatePasswordFunc   func(ctx context.Context, id, password, newPassword string) error
	DeleteUserFunc       func(ctx context.Context, id, password string) error
}

// NewMockAccountService creates a new MockAccountService
func NewMockAccountService() *MockAccountService {
	return &MockAccountService{}
}

func (m *MockAccountService) SignUp(ctx context.Context, data domain.SignUpData) (string, error) {
	if m.SignUpFunc != nil {
		return m.SignUpFunc(ctx, data)
	}
	return "user-1", nil
}

func (m *MockAccountService) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	return nil, domain.NotFound("There is no user with such email")
}

func (m *MockAccountService) RequestPhoneCode(ctx context.Context, phone string) error {
	if m.RequestPhoneCodeFunc != nil {
		return m.RequestPhoneCodeFunc(ctx, phone)
	}
	return nil
}

func (m *MockAccountService) LoginByPhone(ctx context.Context, phone, code string) (*domain.AuthResult, error) {
	if m.LoginByPhoneFunc != nil {
		return m.LoginByPhoneFunc(ctx, phone, code)
	}
	return nil, domain.Unauthorized("Invalid verification code")
}

func (m *MockAccountService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	if m.GetUserFunc != nil {
		return m.GetUserFunc(ctx, id)
	}
	return nil, domain.NotFound("There is no user with such ID")
}

func (m *MockAccountService) UpdateUser(ctx context.Context, id string, update domain.UserUpdate) error {
	if m.UpdateUserFunc != nil {
		return m.UpdateUserFunc(ctx, id, update)
	}
	return nil
}

func (m *MockAccountService) UpdatePassword(ctx context.Context, id, password, newPassword string) error {
	if m.UpdatePasswordFunc != nil {
		return m.UpdatePasswordFunc(ctx, id, password, newPassword)
	}
	return nil
}

func (m *MockAccountService) DeleteUser(ctx context.Context, id, password string) error {
	if m.DeleteUserFunc != nil {
		return m.DeleteUserFunc(ctx, id, password)
	}
	return nil
}

// Compile-time interface compliance verification
var _ domain.AccountService = (*MockAccountService)(nil)
