package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/diegorighi/yukam-front/internal/client/auth"
	"github.com/diegorighi/yukam-front/internal/client/client"
	"github.com/diegorighi/yukam-front/internal/client/models"
	"github.com/diegorighi/yukam-front/internal/client/router"
	"github.com/diegorighi/yukam-front/internal/common"
)

// Login prompts for credentials and signs in. After a successful login a
// command that was refused for lack of a session is resumed.
func (a *App) Login(ctx context.Context) error {
	login, err := getSimpleText(a.reader, "Enter login", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout, "Enter password")
	if err != nil {
		return err
	}
	defer clear(password)

	if login == "" || len(password) == 0 {
		return fmt.Errorf("%w: login and password are required", common.ErrInvalidInput)
	}

	user, err := a.auth.Login(ctx, models.Credentials{Login: login, Password: string(password)})
	if err != nil {
		printlnFn(loginFailureMessage(err))
		return err
	}

	printlnFn(fmt.Sprintf("Welcome, %s (%s)", user.Login, strings.Join(user.Roles, ", ")))
	return a.resume(ctx)
}

func loginFailureMessage(err error) string {
	switch {
	case errors.Is(err, client.ErrUnauthorized):
		return "Invalid login or password."
	case errors.Is(err, client.ErrUnavailable):
		return "The identity service is unavailable, try again later."
	case errors.Is(err, auth.ErrInvalidIdentity):
		return "The identity service returned an incomplete account."
	case errors.Is(err, auth.ErrLoginSuperseded):
		return "Login was cancelled."
	default:
		return "Login failed."
	}
}

// Logout ends the session. A command waiting for a login is dropped.
func (a *App) Logout(ctx context.Context) error {
	a.takePending()
	a.auth.Logout(ctx)
	return nil
}

// WhoAmI prints the signed-in identity and the capabilities it grants.
func (a *App) WhoAmI(ctx context.Context) error {
	return a.guarded(ctx, router.To(router.ProfilePath), func(ctx context.Context) error {
		u := a.auth.State().Current()
		if u == nil {
			return fmt.Errorf("%w: signed out", common.ErrNotPermitted)
		}

		printlnFn("Login:    ", u.Login)
		printlnFn("PublicId: ", u.PublicID)
		if u.Email != nil {
			printlnFn("E-mail:   ", *u.Email)
		}
		printlnFn("Roles:    ", strings.Join(u.Roles, ", "))

		var caps []string
		for _, c := range auth.Capabilities() {
			if a.policy.Can(c) {
				caps = append(caps, string(c))
			}
		}
		printlnFn("Can:      ", strings.Join(caps, ", "))
		return nil
	})
}

// Can answers whether the current session holds a capability.
func (a *App) Can(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: usage: can <capability>", common.ErrInvalidInput)
	}
	c, ok := auth.ParseCapability(args[0])
	if !ok {
		var names []string
		for _, c := range auth.Capabilities() {
			names = append(names, string(c))
		}
		return fmt.Errorf("%w: unknown capability %q (known: %s)", common.ErrInvalidInput, args[0], strings.Join(names, ", "))
	}

	if a.policy.Can(c) {
		printlnFn("yes")
	} else {
		printlnFn("no")
	}
	return nil
}
