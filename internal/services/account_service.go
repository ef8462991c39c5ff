package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/LeonardoBai12/PokemonSimplifiedAPI/domain"
)

var (
	emailPattern = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,3})+$`)
	phonePattern = regexp.MustCompile(`^\+[1-9]\d{1,14}$`)
)

// AccountServiceImpl implements domain.AccountService. Use-cases validate
// locally and in order, then perform a single persistence call; no record is
// ever left half-updated behind a failed check.
type AccountServiceImpl struct {
	users        domain.UserRepository
	verification domain.VerificationService
	sessions     domain.SessionService
	passwords    domain.PasswordService
	tokens       domain.TokenService
}

// NewAccountService creates a new account service
func NewAccountService(
	users domain.UserRepository,
	verification domain.VerificationService,
	sessions domain.SessionService,
	passwords domain.PasswordService,
	tokens domain.TokenService,
) domain.AccountService {
	return &AccountServiceImpl{
		users:        users,
		verification: verification,
		sessions:     sessions,
		passwords:    passwords,
		tokens:       tokens,
	}
}

// SignUp implements domain.AccountService. Checks run in a fixed order and
// the first failing one wins.
func (s *AccountServiceImpl) SignUp(ctx context.Context, data domain.SignUpData) (string, error) {
	emailInUse, err := s.users.EmailInUse(ctx, data.Email)
	if err != nil {
		return "", fmt.Errorf("failed to check email: %w", err)
	}
	if emailInUse {
		return "", domain.Conflict("Email already in use by another user.")
	}

	if strings.TrimSpace(data.UserName) == "" {
		return "", domain.Conflict("User must have a name.")
	}

	if !emailPattern.MatchString(data.Email) {
		return "", domain.Conflict("Invalid email.")
	}

	if !phonePattern.MatchString(data.Phone) {
		return "", domain.Conflict("Invalid phone number.")
	}

	phoneInUse, err := s.users.PhoneInUse(ctx, data.Phone)
	if err != nil {
		return "", fmt.Errorf("failed to check phone: %w", err)
	}
	if phoneInUse {
		return "", domain.Conflict("Phone number already in use by another user.")
	}

	if len(data.Password) < 8 {
		return "", domain.Conflict("Password must have more than 8 characters.")
	}

	passwordHash, err := s.passwords.Hash(data.Password)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		UserName:          data.UserName,
		Phone:             data.Phone,
		Email:             data.Email,
		PasswordHash:      passwordHash,
		ProfilePictureURL: data.ProfilePictureURL,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return "", err
	}

	return user.ID, nil
}

// Login implements domain.AccountService
func (s *AccountServiceImpl) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	if user == nil {
		return nil, domain.NotFound("There is no user with such email")
	}

	if password == "" || !s.passwords.Verify(user.PasswordHash, password) {
		return nil, domain.Unauthorized("Invalid password")
	}

	return s.authenticate(ctx, user)
}

// RequestPhoneCode implements domain.AccountService. The SMS transport is
// invoked synchronously by the verification service.
func (s *AccountServiceImpl) RequestPhoneCode(ctx context.Context, phone string) error {
	user, err := s.users.FindByPhone(ctx, phone)
	if err != nil {
		return fmt.Errorf("failed to find user: %w", err)
	}
	if user == nil {
		return domain.NotFound("There is no user with such phone number")
	}

	return s.verification.Request(ctx, phone)
}

// LoginByPhone implements domain.AccountService. A failed consume yields a
// generic authorization failure that does not distinguish wrong from expired
// or already-consumed codes.
func (s *AccountServiceImpl) LoginByPhone(ctx context.Context, phone, code string) (*domain.AuthResult, error) {
	ok, err := s.verification.Consume(ctx, phone, code)
	if err != nil {
		return nil, fmt.Errorf("failed to validate verification code: %w", err)
	}
	if !ok {
		return nil, domain.Unauthorized("Invalid verification code")
	}

	user, err := s.users.FindByPhone(ctx, phone)
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	if user == nil {
		return nil, domain.NotFound("There is no user with such phone number")
	}

	return s.authenticate(ctx, user)
}

// GetUser implements domain.AccountService
func (s *AccountServiceImpl) GetUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	if user == nil {
		return nil, domain.NotFound("There is no user with such ID")
	}
	return user, nil
}

// UpdateUser implements domain.AccountService. Non-nil fields are merged over
// the stored record after the current password re-validates.
func (s *AccountServiceImpl) UpdateUser(ctx context.Context, id string, update domain.UserUpdate) error {
	if update.Email != nil {
		owner, err := s.users.FindByEmail(ctx, *update.Email)
		if err != nil {
			return fmt.Errorf("failed to check email: %w", err)
		}
		if owner != nil && owner.ID != id {
			return domain.Conflict("Email already in use by another user.")
		}
	}

	stored, err := s.validatePassword(ctx, id, update.Password)
	if err != nil {
		return err
	}

	if update.UserName != nil && strings.TrimSpace(*update.UserName) == "" {
		return domain.Conflict("User must have a name.")
	}

	if update.Email != nil && !emailPattern.MatchString(*update.Email) {
		return domain.Conflict("Invalid email.")
	}

	if update.UserName != nil {
		stored.UserName = *update.UserName
	}
	if update.Email != nil {
		stored.Email = *update.Email
	}
	if update.ProfilePictureURL != nil {
		stored.ProfilePictureURL = *update.ProfilePictureURL
	}

	if _, err := s.users.Update(ctx, stored); err != nil {
		return err
	}
	return nil
}

// UpdatePassword implements domain.AccountService
func (s *AccountServiceImpl) UpdatePassword(ctx context.Context, id, password, newPassword string) error {
	if _, err := s.validatePassword(ctx, id, password); err != nil {
		return err
	}

	if len(newPassword) < 8 {
		return domain.Conflict("Password must have more than 8 characters.")
	}

	passwordHash, err := s.passwords.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if _, err := s.users.UpdatePassword(ctx, id, passwordHash); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}

// DeleteUser implements domain.AccountService
func (s *AccountServiceImpl) DeleteUser(ctx context.Context, id, password string) error {
	if _, err := s.validatePassword(ctx, id, password); err != nil {
		return err
	}

	if _, err := s.users.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

// authenticate issues a bearer token and establishes a session for user
func (s *AccountServiceImpl) authenticate(ctx context.Context, user *domain.User) (*domain.AuthResult, error) {
	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	session, err := s.sessions.Establish(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return &domain.AuthResult{
		User:    user,
		Token:   token,
		Session: session,
	}, nil
}

// validatePassword re-validates the current password of the account owner
func (s *AccountServiceImpl) validatePassword(ctx context.Context, id, password string) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	if user == nil {
		return nil, domain.NotFound("There is no user with such ID")
	}

	if password == "" || !s.passwords.Verify(user.PasswordHash, password) {
		return nil, domain.Unauthorized("Invalid password")
	}

	return user, nil
}
