package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/LeonardoBai12/PokemonSimplifiedAPI/domain"
)

// bcryptCost is the fixed work factor for stored password hashes.
const bcryptCost = 12

// PasswordServiceImpl implements domain.PasswordService
type PasswordServiceImpl struct {
	cost int
}

// NewPasswordService creates a new password service
func NewPasswordService() domain.PasswordService {
	return &PasswordServiceImpl{cost: bcryptCost}
}

// Hash implements domain.PasswordService
func (p *PasswordServiceImpl) Hash(password string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), p.cost)
	if err != nil {
		return "", err
	}
	return string(hashedBytes), nil
}

// Verify implements domain.PasswordService. An empty or malformed stored hash
// verifies false rather than failing.
func (p *PasswordServiceImpl) Verify(passwordHash, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))
	return err == nil
}
