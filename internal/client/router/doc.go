// Package router decides whether a navigation to a destination may
// proceed.
//
// Every destination has a chain of guards. AuthGuard requires a valid
// session and sends anonymous users to the login screen with the original
// destination as returnUrl. RoleGuard additionally requires one of a set
// of roles; users without any of them are sent to a fallback destination
// with error=forbidden. Router runs the chain for a path and stops at the
// first guard that does not allow.
package router
