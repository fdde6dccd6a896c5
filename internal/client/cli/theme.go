package cli

import (
	"context"
	"fmt"

	"github.com/diegorighi/yukam-front/internal/client/services"
	"github.com/diegorighi/yukam-front/internal/common"
)

// Theme shows the display theme, toggles it, or sets it by name.
func (a *App) Theme(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Theme:", a.theme.Current(ctx))
		return nil
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: usage: theme [toggle|light|dark]", common.ErrInvalidInput)
	}

	if args[0] == "toggle" {
		t, err := a.theme.Toggle(ctx)
		if err != nil {
			return err
		}
		printlnFn("Theme:", t)
		return nil
	}

	t, ok := services.ParseTheme(args[0])
	if !ok {
		return fmt.Errorf("%w: unknown theme %q", common.ErrInvalidInput, args[0])
	}
	if err := a.theme.Set(ctx, t); err != nil {
		return err
	}
	printlnFn("Theme:", t)
	return nil
}
