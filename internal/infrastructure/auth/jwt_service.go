package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/LeonardoBai12/PokemonSimplifiedAPI/domain"
)

// JWTServiceImpl implements domain.TokenService
type JWTServiceImpl struct {
	secretKey []byte
	issuer    string
	audience  string
	tokenTTL  time.Duration
}

// NewJWTService creates a new JWT token service
func NewJWTService(secretKey, issuer, audience string, ttl time.Duration) domain.TokenService {
	return &JWTServiceImpl{
		secretKey: []byte(secretKey),
		issuer:    issuer,
		audience:  audience,
		tokenTTL:  ttl,
	}
}

// Issue implements domain.TokenService. The token asserts the user id under
// a symmetric signature with standard issuer/audience/expiry fields.
func (j *JWTServiceImpl) Issue(userID string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"userId": userID,
		"iss":    j.issuer,
		"aud":    j.audience,
		"iat":    now.Unix(),
		"exp":    now.Add(j.tokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.secretKey)
}

// Validate implements domain.TokenService
func (j *JWTServiceImpl) Validate(tokenString string) (*domain.TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.Unauthorized("unexpected token signing method")
		}
		return j.secretKey, nil
	})

	if err != nil || !token.Valid {
		return nil, domain.Unauthorized("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domain.Unauthorized("malformed token")
	}

	userID, ok := claims["userId"].(string)
	if !ok || userID == "" {
		return nil, domain.Unauthorized("malformed token")
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		return nil, domain.Unauthorized("malformed token")
	}
	if time.Unix(int64(exp), 0).Before(time.Now()) {
		return nil, domain.Unauthorized("token expired")
	}

	iat, _ := claims["iat"].(float64)

	return &domain.TokenClaims{
		UserID:    userID,
		IssuedAt:  int64(iat),
		ExpiresAt: int64(exp),
	}, nil
}
