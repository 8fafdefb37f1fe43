// Package authz decides, per request, whether page logic may run.
package authz

import "strings"

const (
	LoginPath     = "/login"
	DashboardPath = "/dashboard"
)

// Decision is the outcome of the gate for one request.
type Decision int

const (
	// Allow lets the request through to page logic.
	Allow Decision = iota
	// RedirectToLogin denies access; the caller redirects to the login page.
	RedirectToLogin
	// RedirectToDashboard sends already-authenticated users to the dashboard.
	RedirectToDashboard
)

// Decide maps authentication state and the requested path to a gate
// decision. It holds no state and must run before any page-specific logic.
func Decide(isAuthenticated bool, requestedPath string) Decision {
	onDashboard := strings.HasPrefix(requestedPath, DashboardPath)

	switch {
	case onDashboard && isAuthenticated:
		return Allow
	case onDashboard:
		return RedirectToLogin
	case isAuthenticated:
		return RedirectToDashboard
	default:
		return Allow
	}
}
