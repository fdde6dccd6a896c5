package cli

import (
	"context"
	"fmt"

	"github.com/diegorighi/yukam-front/internal/client/router"
	"github.com/diegorighi/yukam-front/internal/common"
)

// pendingCommand is a command refused for lack of a session. It runs
// after the next successful login if its destination is then admitted.
type pendingCommand struct {
	dest router.Destination
	run  func(ctx context.Context) error
}

// guarded navigates to dest and runs the command only when the router
// admits it. A refusal is reported to the operator and returned as
// common.ErrNotPermitted.
func (a *App) guarded(ctx context.Context, dest router.Destination, run func(ctx context.Context) error) error {
	d := a.router.Navigate(ctx, dest)
	if d.Allow {
		return run(ctx)
	}

	switch d.Reason {
	case router.ReasonUnauthenticated:
		resume := dest
		if d.Redirect != nil {
			if ret := d.Redirect.Query.Get(router.ReturnURLParam); ret != "" {
				resume = router.ParseDestination(ret)
			}
		}
		a.setPending(&pendingCommand{dest: resume, run: run})
		printlnFn("Please sign in first (type 'login'); the command will run afterwards.")
	case router.ReasonForbidden:
		printlnFn("Access denied: your roles do not allow", dest.Path)
	case router.ReasonNoRoles:
		printlnFn("Your account has no roles assigned.")
	default:
		printlnFn("Unknown destination:", dest.Path)
	}
	if d.Redirect != nil {
		a.log.Debug(ctx, "navigation redirected", "from", dest.String(), "to", d.Redirect.String())
	}

	return fmt.Errorf("%w: %s (%s)", common.ErrNotPermitted, dest.Path, d.Reason)
}

func (a *App) setPending(p *pendingCommand) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.pending = p
}

func (a *App) takePending() *pendingCommand {
	a.mu.Lock()
	defer a.mu.Unlock()
	p := a.pending
	a.pending = nil
	return p
}

// resume runs the command that was waiting for a login, if any.
func (a *App) resume(ctx context.Context) error {
	p := a.takePending()
	if p == nil {
		return nil
	}
	printlnFn("Resuming", p.dest.String())
	return a.guarded(ctx, p.dest, p.run)
}
