package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/youquote/internal/client/capability"
	"github.com/dmitrijs2005/youquote/internal/common"
	"github.com/dmitrijs2005/youquote/internal/models"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for name, email, password and its confirmation, then
// follows the configured post-registration behavior.
func (a *App) Register(ctx context.Context) error {
	if err := a.navigate(capability.RouteRegister); err != nil {
		return err
	}

	name, err := getSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, "Enter password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	confirmation, err := getPassword(a.reader, "Confirm password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirmation)

	out, err := a.auth.Register(ctx, models.RegisterForm{
		Name:                 name,
		Email:                email,
		Password:             string(password),
		PasswordConfirmation: string(confirmation),
	})
	if err != nil {
		return err
	}

	if out.Next == capability.RouteVerifyEmail {
		if err := a.navigate(capability.RouteVerifyEmail); err != nil {
			return err
		}
	}
	fmt.Fprintln(a.out, out.Message)
	return nil
}

// Login prompts for credentials and starts a session.
func (a *App) Login(ctx context.Context) error {
	if err := a.navigate(capability.RouteLogin); err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, "Enter password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.auth.Login(ctx, email, password)
	if err != nil {
		return err
	}

	a.route = capability.RouteHome
	fmt.Fprintf(a.out, "Logged in as %s (%s).\n", user.Name, user.Role)
	return nil
}

// Logout drops the session and returns to the home screen.
func (a *App) Logout(ctx context.Context) error {
	if !a.capabilities().Authenticated() {
		return userError("You are not logged in.")
	}
	if err := a.auth.Logout(ctx); err != nil {
		return err
	}
	a.route = capability.RouteHome
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}
