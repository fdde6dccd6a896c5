package auth

import (
	"context"
	"fmt"
)

// ValidateSessionOnStartup checks the identity restored from the previous
// run and clears it when publicId, login, or roles are missing. It always
// completes: a panic inside the check also clears the session.
func ValidateSessionOnStartup(ctx context.Context, svc *Service) {
	defer func() {
		if r := recover(); r != nil {
			svc.log.Error(ctx, "session validation failed, clearing session", "error", fmt.Sprint(r))
			svc.reset(ctx, ResetStartupError)
		}
	}()

	user := svc.state.snapshot()
	if user == nil {
		return
	}

	switch {
	case len(user.Roles) == 0:
		svc.log.Warn(ctx, "stored session has no roles, clearing session", "login", user.Login)
		svc.reset(ctx, ResetStartupCorrupt)
	case user.PublicID == "" || user.Login == "":
		svc.log.Warn(ctx, "stored session is missing publicId or login, clearing session")
		svc.reset(ctx, ResetStartupCorrupt)
	default:
		svc.log.Debug(ctx, "stored session is valid", "login", user.Login)
	}
}
