package dashboard

import (
	"log/slog"
	"net/http"

	"github.com/acme/dashboard/internal/http/views"
)

type Handler struct {
	renderer *views.Renderer
}

func NewHandler(renderer *views.Renderer) *Handler {
	return &Handler{renderer: renderer}
}

func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	if err := h.renderer.Render(w, "dashboard.html", nil); err != nil {
		slog.Error("rendering dashboard", "error", err)
	}
}
