package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/diegorighi/yukam-front/internal/client/router"
	"github.com/diegorighi/yukam-front/internal/client/services"
	"github.com/diegorighi/yukam-front/internal/common"
)

// ResetPassword sends a reset link to a user, or with "manual" sets a new
// password typed twice by the operator.
func (a *App) ResetPassword(ctx context.Context, args []string) error {
	if len(args) < 1 || len(args) > 2 || (len(args) == 2 && args[1] != "manual") {
		return fmt.Errorf("%w: usage: reset-password <publicId> [manual]", common.ErrInvalidInput)
	}
	publicID := args[0]
	manual := len(args) == 2

	return a.guarded(ctx, router.To(router.PasswordResetPath), func(ctx context.Context) error {
		u, err := a.users.Get(ctx, publicID)
		if err != nil {
			return err
		}

		if !manual {
			if err := a.users.SendResetLink(ctx, publicID); err != nil {
				return err
			}
			printlnFn("Reset link sent to", u.Login, "(valid for 15 minutes)")
			return nil
		}

		pw, err := getPassword(os.Stdout, "New password for "+u.Login)
		if err != nil {
			return err
		}
		defer clear(pw)
		if len(pw) < services.MinPasswordLength {
			return fmt.Errorf("%w: password must have at least %d characters", common.ErrInvalidInput, services.MinPasswordLength)
		}

		confirm, err := getPassword(os.Stdout, "Repeat password")
		if err != nil {
			return err
		}
		defer clear(confirm)
		if !bytes.Equal(pw, confirm) {
			return fmt.Errorf("%w: passwords do not match", common.ErrInvalidInput)
		}

		if err := a.users.SetPassword(ctx, publicID, string(pw)); err != nil {
			return err
		}
		printlnFn("Password changed for", u.Login)
		return nil
	})
}
