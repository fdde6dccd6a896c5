package auth

import (
	"slices"

	"github.com/diegorighi/yukam-front/internal/client/models"
)

// Capability is a business-level permission derived from roles.
type Capability string

const (
	CapFullDashboard    Capability = "full_dashboard"
	CapAdminOperations  Capability = "admin_operations"
	CapPasswordReset    Capability = "password_reset"
	CapChartsAndReports Capability = "charts_and_reports"
	CapFullClientView   Capability = "full_client_view"
	CapBasicClientView  Capability = "basic_client_view"
	CapEditOwnProfile   Capability = "edit_own_profile"
)

// Match says how a rule's roles are combined.
type Match int

const (
	MatchAny Match = iota
	MatchAll
)

// Rule grants a capability to holders of Roles, combined per Match.
type Rule struct {
	Roles []string
	Match Match
}

var (
	staffRoles   = []string{models.RoleAdmin, models.RoleAnalyst, models.RoleStaff}
	analystRoles = []string{models.RoleAdmin, models.RoleAnalyst}
)

var capabilities = map[Capability]Rule{
	CapFullDashboard:    {Roles: staffRoles, Match: MatchAny},
	CapAdminOperations:  {Roles: []string{models.RoleAdmin}, Match: MatchAny},
	CapPasswordReset:    {Roles: staffRoles, Match: MatchAny},
	CapChartsAndReports: {Roles: analystRoles, Match: MatchAny},
	CapFullClientView:   {Roles: analystRoles, Match: MatchAny},
	CapBasicClientView:  {Roles: []string{models.RoleStaff}, Match: MatchAny},
	CapEditOwnProfile:   {Roles: []string{models.RoleCustomer}, Match: MatchAny},
}

// Capabilities lists every known capability in name order.
func Capabilities() []Capability {
	out := make([]Capability, 0, len(capabilities))
	for c := range capabilities {
		out = append(out, c)
	}
	slices.Sort(out)
	return out
}

// ParseCapability accepts a capability name as listed by Capabilities.
func ParseCapability(name string) (Capability, bool) {
	c := Capability(name)
	_, ok := capabilities[c]
	return c, ok
}

// Policy answers role questions about the identity held in State. Every
// predicate is false when nobody is logged in.
type Policy struct {
	state *State
}

func NewPolicy(state *State) *Policy {
	return &Policy{state: state}
}

func (p *Policy) HasRole(role string) bool {
	u := p.state.snapshot()
	return u != nil && slices.Contains(u.Roles, role)
}

// HasAnyRole is false for an empty roles list.
func (p *Policy) HasAnyRole(roles []string) bool {
	u := p.state.snapshot()
	if u == nil {
		return false
	}
	return slices.ContainsFunc(roles, func(r string) bool {
		return slices.Contains(u.Roles, r)
	})
}

// HasAllRoles is true for an empty roles list when someone is logged in.
func (p *Policy) HasAllRoles(roles []string) bool {
	u := p.state.snapshot()
	if u == nil {
		return false
	}
	for _, r := range roles {
		if !slices.Contains(u.Roles, r) {
			return false
		}
	}
	return true
}

// Can evaluates a capability from the static table. Unknown capabilities
// are never granted.
func (p *Policy) Can(c Capability) bool {
	rule, ok := capabilities[c]
	if !ok {
		return false
	}
	return p.Satisfies(rule)
}

// Satisfies evaluates an arbitrary rule against the current identity.
func (p *Policy) Satisfies(rule Rule) bool {
	if rule.Match == MatchAll {
		return p.HasAllRoles(rule.Roles)
	}
	return p.HasAnyRole(rule.Roles)
}
