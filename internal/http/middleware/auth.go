package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/LeonardoBai12/PokemonSimplifiedAPI/domain"
)

// AuthMW wraps the token service for middleware construction
type AuthMW struct {
	tokenSvc domain.TokenService
}

// NewAuthMW creates new auth middleware wrapper
func NewAuthMW(tokenSvc domain.TokenService) *AuthMW {
	return &AuthMW{tokenSvc: tokenSvc}
}

// WithJWT returns the bearer-token middleware function
func (mw *AuthMW) WithJWT() gin.HandlerFunc {
	return AuthMiddleware(mw.tokenSvc)
}
