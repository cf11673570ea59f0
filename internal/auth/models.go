package auth

import "time"

// User is a registered account. The password is only ever held as a bcrypt hash.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash []byte    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// CredentialsRequest is the payload of /register and /login.
// Values bind from a JSON body or, for older clients, from query/form parameters.
type CredentialsRequest struct {
	Username string `json:"username" form:"username" binding:"required,max=64"`
	Password string `json:"password" form:"password" binding:"required,max=72"`
}

// MessageResponse is the body of a successful registration
type MessageResponse struct {
	Message string `json:"message"`
}

// TokenResponse is the body of a successful login
type TokenResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Detail string `json:"detail"`
}
