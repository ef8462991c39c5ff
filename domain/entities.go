package domain

import "time"

// User represents a registered account
type User struct {
	ID                string
	UserName          string
	Phone             string
	Email             string
	PasswordHash      string
	ProfilePictureURL string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// SignUpData carries the fields required to create an account
type SignUpData struct {
	UserName          string
	Phone             string
	Email             string
	Password          string
	ProfilePictureURL string
}

// UserUpdate carries a partial profile update; nil fields are left untouched.
// Password is the current password and is always required.
type UserUpdate struct {
	UserName          *string
	Email             *string
	Password          string
	ProfilePictureURL *string
}

// AuthResult represents a successful login outcome
type AuthResult struct {
	User    *User
	Token   string
	Session *Session
}

// VerificationRecord is a pending SMS one-time code for a phone number
type VerificationRecord struct {
	Phone     string
	Code      string
	CreatedAt time.Time
}

// Session is a server-held login session referenced by the client cookie
type Session struct {
	ClientID  string    `json:"clientId"`
	SessionID string    `json:"sessionId"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// TokenClaims represents the verified content of a bearer token
type TokenClaims struct {
	UserID    string `json:"userId"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
}

// PokemonCard is a card available to authenticated clients
type PokemonCard struct {
	ID        string `json:"id"`
	PokemonID int    `json:"pokemonId"`
	Name      string `json:"name"`
	ImageURL  string `json:"imageUrl"`
	ImageData []byte `json:"imageData,omitempty"`
}
