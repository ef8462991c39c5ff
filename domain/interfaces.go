package domain

import "context"

// UserRepository defines account data access operations. Lookup methods
// return (nil, nil) when no record matches; they never fail on absence.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByID(ctx context.Context, id string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByPhone(ctx context.Context, phone string) (*User, error)
	Update(ctx context.Context, user *User) (int64, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
	EmailInUse(ctx context.Context, email string) (bool, error)
	PhoneInUse(ctx context.Context, phone string) (bool, error)
}

// VerificationRepository stores pending SMS codes. Insert replaces any
// pending code for the phone. Consume atomically deletes a matching record
// and reports whether one existed.
type VerificationRepository interface {
	Insert(ctx context.Context, phone, code string) error
	Consume(ctx context.Context, phone, code string) (bool, error)
}

// SessionRepository defines session data access operations. FindByID returns
// (nil, nil) for unknown or expired sessions.
type SessionRepository interface {
	Create(ctx context.Context, session *Session) error
	FindByID(ctx context.Context, sessionID string) (*Session, error)
	Delete(ctx context.Context, sessionID string) error
}

// CardRepository provides read access to the card collection
type CardRepository interface {
	Random(ctx context.Context, amount int) ([]PokemonCard, error)
}

// PasswordService defines one-way password hashing operations
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(passwordHash, password string) bool
}

// TokenService issues and verifies bearer tokens carrying a user id claim
type TokenService interface {
	Issue(userID string) (string, error)
	Validate(token string) (*TokenClaims, error)
}

// VerificationService drives the SMS one-time-code lifecycle
type VerificationService interface {
	Request(ctx context.Context, phone string) error
	Consume(ctx context.Context, phone, code string) (bool, error)
}

// SessionService manages login sessions and authorizes mutating requests
type SessionService interface {
	Establish(ctx context.Context, userID string) (*Session, error)
	Authorize(ctx context.Context, cookie, targetUserID string) bool
	Active(ctx context.Context, cookie string) bool
	Clear(ctx context.Context, cookie string) error
}

// SmsService defines the outbound SMS transport
type SmsService interface {
	SendSMS(to, message string) error
}

// AccountService defines the account use-cases
type AccountService interface {
	SignUp(ctx context.Context, data SignUpData) (string, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	RequestPhoneCode(ctx context.Context, phone string) error
	LoginByPhone(ctx context.Context, phone, code string) (*AuthResult, error)
	GetUser(ctx context.Context, id string) (*User, error)
	UpdateUser(ctx context.Context, id string, update UserUpdate) error
	UpdatePassword(ctx context.Context, id, password, newPassword string) error
	DeleteUser(ctx context.Context, id, password string) error
}
