// Package services contains the application services of the YouQuote
// console: authentication, public browsing and the moderation command
// executor. Services own no state of their own; they drive the session
// store and the registries.
package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/youquote/internal/client/capability"
	"github.com/dmitrijs2005/youquote/internal/client/client"
	"github.com/dmitrijs2005/youquote/internal/client/session"
	"github.com/dmitrijs2005/youquote/internal/logging"
	"github.com/dmitrijs2005/youquote/internal/models"
	"github.com/dmitrijs2005/youquote/internal/validation"
)

// PostRegistration selects what happens after a successful sign-up.
type PostRegistration string

const (
	// PostRegistrationVerifyEmail navigates to the check-your-inbox screen.
	PostRegistrationVerifyEmail PostRegistration = "verify-email"
	// PostRegistrationAlert stays on the form and shows an inline notice.
	PostRegistrationAlert PostRegistration = "alert"
)

func ParsePostRegistration(s string) (PostRegistration, error) {
	switch p := PostRegistration(s); p {
	case PostRegistrationVerifyEmail, PostRegistrationAlert:
		return p, nil
	}
	return "", fmt.Errorf("unknown post-registration behavior %q (want %q or %q)",
		s, PostRegistrationVerifyEmail, PostRegistrationAlert)
}

const (
	RegistrationSuccessMessage = "Registration successful!"
	VerifyEmailMessage         = "We've sent you a verification email. Please check your inbox and click " +
		"the verification link to activate your account. If you don't see the email, please check your " +
		"spam folder. The verification link will expire in 24 hours."
	PasswordMismatchMessage = "Passwords do not match!"
)

// RegistrationOutcome tells the console where to go after sign-up.
type RegistrationOutcome struct {
	User    models.User
	Next    capability.Route
	Message string
}

// SessionWriter is the mutating side of the session store.
type SessionWriter interface {
	session.Reader
	SetSession(ctx context.Context, credential string, role models.Role) error
	Clear(ctx context.Context) error
}

// AuthService defines authentication operations for the console.
//
// Contract:
//   - Login: validate the form, authenticate, then store credential and role.
//   - Register: validate the form, create the account, report the next screen.
//   - Logout: drop the session; gating demotes on the next read.
type AuthService interface {
	Login(ctx context.Context, email string, password []byte) (*models.User, error)
	Register(ctx context.Context, form models.RegisterForm) (*RegistrationOutcome, error)
	Logout(ctx context.Context) error
}

type authService struct {
	client   client.Client
	session  SessionWriter
	validate *validation.Validator
	after    PostRegistration
	log      logging.Logger
}

func NewAuthService(c client.Client, s SessionWriter, after PostRegistration, log logging.Logger) AuthService {
	if after == "" {
		after = PostRegistrationVerifyEmail
	}
	return &authService{client: c, session: s, validate: validation.New(), after: after, log: log}
}

func (a *authService) Login(ctx context.Context, email string, password []byte) (*models.User, error) {
	form := models.LoginForm{Email: email, Password: string(password)}
	if err := a.validate.Validate(form); err != nil {
		return nil, err
	}

	res, err := a.client.Login(ctx, form)
	if err != nil {
		a.log.Warn(ctx, "login rejected", "email", email, "error", err)
		return nil, fmt.Errorf("login: %w", err)
	}

	role := res.User.Role
	if !role.Valid() {
		a.log.Warn(ctx, "login returned unknown role, treating as user", "role", role)
		role = models.RoleUser
	}
	if err := a.session.SetSession(ctx, res.Token, role); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	a.log.Info(ctx, "logged in", "user_id", res.User.ID, "role", role)
	user := res.User
	user.Role = role
	return &user, nil
}

func (a *authService) Register(ctx context.Context, form models.RegisterForm) (*RegistrationOutcome, error) {
	if form.Password != form.PasswordConfirmation {
		return nil, validation.NewError(PasswordMismatchMessage)
	}
	if err := a.validate.Validate(form); err != nil {
		return nil, err
	}

	user, err := a.client.Register(ctx, form)
	if err != nil {
		a.log.Warn(ctx, "registration rejected", "email", form.Email, "error", err)
		return nil, fmt.Errorf("register: %w", err)
	}
	a.log.Info(ctx, "registered", "user_id", user.ID, "behavior", a.after)

	if a.after == PostRegistrationAlert {
		return &RegistrationOutcome{User: *user, Next: capability.RouteRegister, Message: RegistrationSuccessMessage}, nil
	}
	return &RegistrationOutcome{User: *user, Next: capability.RouteVerifyEmail, Message: VerifyEmailMessage}, nil
}

func (a *authService) Logout(ctx context.Context) error {
	if err := a.session.Clear(ctx); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	a.log.Info(ctx, "logged out")
	return nil
}
