package authz

import "net/http"

// SessionCookie carries the signed session token.
const SessionCookie = "session"

// TokenVerifier reports whether a session token is valid. The gate never
// looks at token contents beyond that.
type TokenVerifier interface {
	Verify(token string) bool
}

// Middleware evaluates the gate on every incoming request.
func Middleware(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch Decide(isAuthenticated(r, verifier), r.URL.Path) {
			case RedirectToLogin:
				http.Redirect(w, r, LoginPath, http.StatusSeeOther)
			case RedirectToDashboard:
				http.Redirect(w, r, DashboardPath, http.StatusSeeOther)
			default:
				next.ServeHTTP(w, r)
			}
		})
	}
}

func isAuthenticated(r *http.Request, verifier TokenVerifier) bool {
	c, err := r.Cookie(SessionCookie)
	if err != nil {
		return false
	}

	return verifier.Verify(c.Value)
}
