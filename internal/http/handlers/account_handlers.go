package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/LeonardoBai12/PokemonSimplifiedAPI/domain"
	"github.com/LeonardoBai12/PokemonSimplifiedAPI/internal/services"
)

// SessionCookieName is the cookie carrying the session payload
const SessionCookieName = "PokemonSessions"

// AccountHandlers handles account HTTP requests
type AccountHandlers struct {
	accounts   domain.AccountService
	sessions   domain.SessionService
	sessionTTL int
}

// NewAccountHandlers creates new account handlers. sessionTTLSeconds bounds
// the cookie max-age.
func NewAccountHandlers(accounts domain.AccountService, sessions domain.SessionService, sessionTTLSeconds int) *AccountHandlers {
	return &AccountHandlers{
		accounts:   accounts,
		sessions:   sessions,
		sessionTTL: sessionTTLSeconds,
	}
}

// SignUpRequest represents the account creation payload
type SignUpRequest struct {
	UserName          string `json:"userName"`
	Phone             string `json:"phone"`
	Password          string `json:"password"`
	Email             string `json:"email"`
	ProfilePictureURL string `json:"profilePictureUrl"`
}

// LoginRequest represents the password login payload
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RequestSmsRequest represents step 1 of the phone login flow
type RequestSmsRequest struct {
	Phone string `json:"phone"`
}

// LoginBySmsRequest represents step 2 of the phone login flow
type LoginBySmsRequest struct {
	Phone            string `json:"phone"`
	VerificationCode string `json:"verificationCode"`
}

// UpdateUserRequest represents the profile update payload; nil fields are
// left untouched
type UpdateUserRequest struct {
	UserName          *string `json:"userName"`
	Email             *string `json:"email"`
	Password          string  `json:"password"`
	ProfilePictureURL *string `json:"profilePictureUrl"`
}

// UpdatePasswordRequest represents the password change payload
type UpdatePasswordRequest struct {
	Password    string `json:"password"`
	NewPassword string `json:"newPassword"`
}

// ProtectedRequest carries the password re-validation for destructive calls
type ProtectedRequest struct {
	Password string `json:"password"`
}

// UserResponse is the outward account shape; the password hash never leaves
// the service
type UserResponse struct {
	UserID            string `json:"userId"`
	UserName          string `json:"userName"`
	Phone             string `json:"phone"`
	Email             string `json:"email"`
	ProfilePictureURL string `json:"profilePictureUrl,omitempty"`
}

// SignUp handles account creation
func (h *AccountHandlers) SignUp(c *gin.Context) {
	if h.loggedIn(c) {
		c.JSON(http.StatusConflict, gin.H{"error": "There is already an user logged in."})
		return
	}

	var req SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, err := h.accounts.SignUp(c.Request.Context(), domain.SignUpData{
		UserName:          req.UserName,
		Phone:             req.Phone,
		Email:             req.Email,
		Password:          req.Password,
		ProfilePictureURL: req.ProfilePictureURL,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"userId": userID})
}

// Login handles password login
func (h *AccountHandlers) Login(c *gin.Context) {
	if h.loggedIn(c) {
		c.JSON(http.StatusConflict, gin.H{"error": "There is already an user logged in."})
		return
	}

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.accounts.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	h.setSessionCookie(c, result.Session)
	c.JSON(http.StatusOK, gin.H{"token": result.Token})
}

// RequestSmsLogin handles step 1 of the phone login flow
func (h *AccountHandlers) RequestSmsLogin(c *gin.Context) {
	if h.loggedIn(c) {
		c.JSON(http.StatusConflict, gin.H{"error": "There is already an user logged in."})
		return
	}

	var req RequestSmsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.accounts.RequestPhoneCode(c.Request.Context(), req.Phone); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusOK)
}

// LoginBySms handles step 2 of the phone login flow
func (h *AccountHandlers) LoginBySms(c *gin.Context) {
	if h.loggedIn(c) {
		c.JSON(http.StatusConflict, gin.H{"error": "There is already an user logged in."})
		return
	}

	var req LoginBySmsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.accounts.LoginByPhone(c.Request.Context(), req.Phone, req.VerificationCode)
	if err != nil {
		respondError(c, err)
		return
	}

	h.setSessionCookie(c, result.Session)
	c.JSON(http.StatusOK, gin.H{"token": result.Token})
}

// GetUser handles reading an account by id
func (h *AccountHandlers) GetUser(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		c.Status(http.StatusBadRequest)
		return
	}

	user, err := h.accounts.GetUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, UserResponse{
		UserID:            user.ID,
		UserName:          user.UserName,
		Phone:             user.Phone,
		Email:             user.Email,
		ProfilePictureURL: user.ProfilePictureURL,
	})
}

// UpdateUser handles profile mutation
func (h *AccountHandlers) UpdateUser(c *gin.Context) {
	userID, ok := h.authorizeMutation(c)
	if !ok {
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.accounts.UpdateUser(c.Request.Context(), userID, domain.UserUpdate{
		UserName:          req.UserName,
		Email:             req.Email,
		Password:          req.Password,
		ProfilePictureURL: req.ProfilePictureURL,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"userId": userID})
}

// UpdatePassword handles password change
func (h *AccountHandlers) UpdatePassword(c *gin.Context) {
	userID, ok := h.authorizeMutation(c)
	if !ok {
		return
	}

	var req UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.accounts.UpdatePassword(c.Request.Context(), userID, req.Password, req.NewPassword); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusOK)
}

// DeleteUser handles account deletion
func (h *AccountHandlers) DeleteUser(c *gin.Context) {
	userID, ok := h.authorizeMutation(c)
	if !ok {
		return
	}

	var req ProtectedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.accounts.DeleteUser(c.Request.Context(), userID, req.Password); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusOK)
}

// Logout clears the session server-side and expires the cookie
func (h *AccountHandlers) Logout(c *gin.Context) {
	if cookie, err := c.Cookie(SessionCookieName); err == nil {
		if err := h.sessions.Clear(c.Request.Context(), cookie); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Logout failed"})
			return
		}
	}
	c.SetCookie(SessionCookieName, "", -1, "/", "", false, true)
	c.Status(http.StatusOK)
}

// authorizeMutation enforces the session gate for mutating endpoints: the
// session's client id must match the target userId before any store access.
func (h *AccountHandlers) authorizeMutation(c *gin.Context) (string, bool) {
	userID := c.Query("userId")
	if userID == "" {
		c.Status(http.StatusBadRequest)
		return "", false
	}

	cookie, err := c.Cookie(SessionCookieName)
	if err != nil || !h.sessions.Authorize(c.Request.Context(), cookie, userID) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "You are not authorized to update this user."})
		return "", false
	}

	return userID, true
}

func (h *AccountHandlers) loggedIn(c *gin.Context) bool {
	cookie, err := c.Cookie(SessionCookieName)
	if err != nil {
		return false
	}
	return h.sessions.Active(c.Request.Context(), cookie)
}

func (h *AccountHandlers) setSessionCookie(c *gin.Context, session *domain.Session) {
	c.SetCookie(SessionCookieName, services.EncodeSessionCookie(session), h.sessionTTL, "/", "", false, true)
}

// respondError maps a tagged failure to its transport status; untagged
// errors are reported as a server error without detail.
func respondError(c *gin.Context, err error) {
	if status, ok := domain.StatusOf(err); ok {
		c.JSON(httpStatus(status), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}

func httpStatus(status domain.Status) int {
	switch status {
	case domain.StatusBadRequest:
		return http.StatusBadRequest
	case domain.StatusUnauthorized:
		return http.StatusUnauthorized
	case domain.StatusForbidden:
		return http.StatusForbidden
	case domain.StatusNotFound:
		return http.StatusNotFound
	case domain.StatusConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
