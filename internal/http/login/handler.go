package login

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/acme/dashboard/internal/auth"
	"github.com/acme/dashboard/internal/authz"
	"github.com/acme/dashboard/internal/http/views"
)

type Handler struct {
	svc      *auth.Service
	renderer *views.Renderer
}

func NewHandler(svc *auth.Service, renderer *views.Renderer) *Handler {
	return &Handler{svc: svc, renderer: renderer}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.show)
	r.Post("/", h.submit)
}

type loginPage struct {
	Message string
}

func (h *Handler) show(w http.ResponseWriter, r *http.Request) {
	h.render(w, loginPage{})
}

// submit runs the credential exchange. Categorized failures re-render the
// form with a fixed message; infrastructure faults bubble up as a 500 so
// they stay visible.
func (h *Handler) submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	session, msg, err := h.svc.Authenticate(r.Context(), auth.Credentials{
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
	})
	if err != nil {
		slog.Error("authenticating", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	if msg != "" {
		w.WriteHeader(http.StatusUnauthorized)
		h.render(w, loginPage{Message: msg})

		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     authz.SessionCookie,
		Value:    session.Token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, authz.DashboardPath, http.StatusSeeOther)
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     authz.SessionCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, authz.LoginPath, http.StatusSeeOther)
}

func (h *Handler) render(w http.ResponseWriter, page loginPage) {
	if err := h.renderer.Render(w, "login.html", page); err != nil {
		slog.Error("rendering login page", "error", err)
	}
}
