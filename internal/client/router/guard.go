package router

import (
	"context"

	"github.com/diegorighi/yukam-front/internal/client/models"
	"github.com/diegorighi/yukam-front/internal/logging"
)

// Reasons attached to decisions that do not allow.
const (
	ReasonUnauthenticated = "unauthenticated"
	ReasonNoRoles         = "no_roles"
	ReasonForbidden       = "forbidden"
	ReasonUnknownRoute    = "unknown_route"
)

// Decision is the outcome of one admission check. When Allow is false,
// Redirect, if set, is where the user should be sent instead.
type Decision struct {
	Allow    bool
	Redirect *Destination
	Reason   string
}

func allow() Decision { return Decision{Allow: true} }

func deny(reason string, redirect *Destination) Decision {
	return Decision{Reason: reason, Redirect: redirect}
}

// Guard admits or refuses one navigation.
type Guard interface {
	Admit(ctx context.Context, dest Destination) Decision
}

// GuardFunc adapts a function to Guard.
type GuardFunc func(ctx context.Context, dest Destination) Decision

func (f GuardFunc) Admit(ctx context.Context, dest Destination) Decision { return f(ctx, dest) }

// Session is the part of the authentication service the guards use.
// *auth.Service implements it.
type Session interface {
	VerifyAuthenticated(ctx context.Context) bool
	Roles() []string
	Logout(ctx context.Context)
}

// RoleChecker is implemented by *auth.Policy.
type RoleChecker interface {
	HasAnyRole(roles []string) bool
}

func loginRedirect(dest Destination) *Destination {
	d := To(LoginPath).With(ReturnURLParam, dest.String())
	return &d
}

// AuthGuard admits only authenticated sessions.
type AuthGuard struct {
	session Session
	log     logging.Logger
}

func NewAuthGuard(session Session, log logging.Logger) *AuthGuard {
	return &AuthGuard{session: session, log: log}
}

func (g *AuthGuard) Admit(ctx context.Context, dest Destination) Decision {
	if g.session.VerifyAuthenticated(ctx) {
		return allow()
	}
	g.log.Debug(ctx, "not authenticated, redirecting to login", "destination", dest.String())
	return deny(ReasonUnauthenticated, loginRedirect(dest))
}

// RoleGuard admits authenticated sessions holding at least one of the
// required roles. It checks authentication itself, so it is safe to use
// without an AuthGuard in front of it.
type RoleGuard struct {
	session  Session
	policy   RoleChecker
	required []string
	fallback Destination
	log      logging.Logger
}

func NewRoleGuard(session Session, policy RoleChecker, required []string, fallback Destination, log logging.Logger) *RoleGuard {
	return &RoleGuard{
		session:  session,
		policy:   policy,
		required: append([]string(nil), required...),
		fallback: fallback,
		log:      log,
	}
}

func (g *RoleGuard) Admit(ctx context.Context, dest Destination) Decision {
	if !g.session.VerifyAuthenticated(ctx) {
		g.log.Debug(ctx, "not authenticated, redirecting to login", "destination", dest.String())
		return deny(ReasonUnauthenticated, loginRedirect(dest))
	}

	roles := g.session.Roles()
	if len(roles) == 0 {
		// Logout sends its own redirect signal.
		g.log.Error(ctx, "authenticated session without roles, logging out")
		g.session.Logout(ctx)
		return deny(ReasonNoRoles, nil)
	}

	if g.policy.HasAnyRole(g.required) {
		return allow()
	}

	g.log.Warn(ctx, "access denied",
		"destination", dest.String(),
		"required", g.required,
		"roles", roles)
	fb := g.fallback.With(ErrorParam, ErrorForbidden)
	return deny(ReasonForbidden, &fb)
}

var (
	adminRoles   = []string{models.RoleAdmin}
	staffRoles   = []string{models.RoleAdmin, models.RoleAnalyst, models.RoleStaff}
	analystRoles = []string{models.RoleAdmin, models.RoleAnalyst}
)

// AdminGuard requires ROLE_ADMIN.
func AdminGuard(s Session, p RoleChecker, log logging.Logger) *RoleGuard {
	return NewRoleGuard(s, p, adminRoles, To(HomePath), log)
}

// StaffGuard requires any back-office role, which excludes ROLE_CLIENTE.
func StaffGuard(s Session, p RoleChecker, log logging.Logger) *RoleGuard {
	return NewRoleGuard(s, p, staffRoles, To(HomePath), log)
}

// AnalystGuard requires ROLE_ADMIN or ROLE_ANALISTA.
func AnalystGuard(s Session, p RoleChecker, log logging.Logger) *RoleGuard {
	return NewRoleGuard(s, p, analystRoles, To(HomePath), log)
}
