package router

import (
	"context"

	"github.com/diegorighi/yukam-front/internal/logging"
	"github.com/diegorighi/yukam-front/internal/metrics"
)

// Destination paths known to the client.
const (
	DashboardPath      = "/dashboard"
	CustomersPath      = "/clientes"
	BlockCustomerPath  = "/clientes/bloqueio"
	DeleteCustomerPath = "/clientes/exclusao"
	ReportsPath        = "/relatorios"
	PasswordResetPath  = "/usuarios/senha"
	ProfilePath        = "/perfil"
)

// Route binds a path to the guards that must all allow it, in order.
// A route with no guards is public.
type Route struct {
	Path   string
	Guards []Guard
}

type Router struct {
	routes  map[string][]Guard
	log     logging.Logger
	metrics *metrics.Metrics
}

func New(log logging.Logger, m *metrics.Metrics, routes ...Route) *Router {
	r := &Router{
		routes:  make(map[string][]Guard, len(routes)),
		log:     log.With("component", "router"),
		metrics: m,
	}
	for _, rt := range routes {
		r.routes[cleanPath(rt.Path)] = rt.Guards
	}
	return r
}

// DefaultRoutes is the client's route table.
func DefaultRoutes(s Session, p RoleChecker, log logging.Logger) []Route {
	auth := NewAuthGuard(s, log)
	staff := StaffGuard(s, p, log)
	admin := AdminGuard(s, p, log)
	analyst := AnalystGuard(s, p, log)

	return []Route{
		{Path: HomePath},
		{Path: LoginPath},
		{Path: DashboardPath, Guards: []Guard{auth, staff}},
		{Path: CustomersPath, Guards: []Guard{auth, staff}},
		{Path: BlockCustomerPath, Guards: []Guard{auth, admin}},
		{Path: DeleteCustomerPath, Guards: []Guard{auth, admin}},
		{Path: ReportsPath, Guards: []Guard{auth, analyst}},
		{Path: PasswordResetPath, Guards: []Guard{auth, staff}},
		{Path: ProfilePath, Guards: []Guard{auth}},
	}
}

// Navigate runs the guards of dest.Path in order and returns the first
// decision that does not allow, or an allowing one.
func (r *Router) Navigate(ctx context.Context, dest Destination) Decision {
	dest.Path = cleanPath(dest.Path)

	guards, ok := r.routes[dest.Path]
	if !ok {
		r.log.Debug(ctx, "unknown destination", "destination", dest.String())
		home := To(HomePath)
		return r.record(dest, deny(ReasonUnknownRoute, &home))
	}

	for _, g := range guards {
		if d := g.Admit(ctx, dest); !d.Allow {
			return r.record(dest, d)
		}
	}
	return r.record(dest, allow())
}

func (r *Router) record(dest Destination, d Decision) Decision {
	switch {
	case d.Allow:
		r.metrics.ObserveAdmission(dest.Path, metrics.DecisionAllow)
	case d.Redirect != nil:
		r.metrics.ObserveAdmission(dest.Path, metrics.DecisionRedirect)
	default:
		r.metrics.ObserveAdmission(dest.Path, metrics.DecisionDeny)
	}
	return d
}
