package models

import "time"

// User is an account as returned by the API.
type User struct {
	ID              int64      `json:"id"`
	Name            string     `json:"name"`
	Email           string     `json:"email"`
	EmailVerifiedAt *time.Time `json:"email_verified_at"`
	Role            Role       `json:"role"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// Author is a user together with the quotes attributed to them.
type Author struct {
	User
	Quotes []Quote `json:"quotes"`
}

// AuthorQuotes is the body of GET /authors/{id}.
type AuthorQuotes struct {
	Author string  `json:"author"`
	Quotes []Quote `json:"quotes"`
}

// LoginResult is the body of POST /login.
type LoginResult struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// RegisterForm is the body of POST /register.
type RegisterForm struct {
	Name                 string `json:"name" validate:"required,max=255"`
	Email                string `json:"email" validate:"required,email"`
	Password             string `json:"password" validate:"required,min=8"`
	PasswordConfirmation string `json:"password_confirmation" validate:"required"`
}

// LoginForm is the body of POST /login.
type LoginForm struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RoleChange is the body of PATCH /admin/users/{id}/role.
type RoleChange struct {
	Role Role `json:"role" validate:"required,oneof=user moderator admin"`
}
