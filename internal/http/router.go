package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/acme/dashboard/internal/authz"
	"github.com/acme/dashboard/internal/http/dashboard"
	"github.com/acme/dashboard/internal/http/invoices"
	"github.com/acme/dashboard/internal/http/login"
)

func New(
	verifier authz.TokenVerifier,
	loginH *login.Handler,
	dashboardH *dashboard.Handler,
	invoicesH *invoices.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	// The gate runs before any page logic, on every request.
	router.Use(authz.Middleware(verifier))

	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, authz.LoginPath, http.StatusSeeOther)
	})

	router.Route("/login", loginH.Routes)
	router.Post("/logout", loginH.Logout)

	router.Route("/dashboard", func(r chi.Router) {
		r.Get("/", dashboardH.Home)
		r.Route("/invoices", invoicesH.Routes)
	})

	return router
}
