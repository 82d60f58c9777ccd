package model

import (
	"time"
)

// User model
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	// PasswordHash is a base64 encoded bcrypt hash, never the plaintext.
	PasswordHash string    `json:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
}

// RegisterForm is bound from the registration form
type RegisterForm struct {
	Username string `form:"username" validate:"required,username"`
	Email    string `form:"email" validate:"required,email,max=254"`
	Password string `form:"password" validate:"required,min=6,bcryptlen"`
}

// LoginForm is bound from the login form
type LoginForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
}
