package invoices

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/acme/dashboard/internal/http/views"
	"github.com/acme/dashboard/internal/invoice"
)

// PageCache serves and stores rendered pages keyed by view path.
type PageCache interface {
	Get(ctx context.Context, viewPath string) ([]byte, bool)
	Set(ctx context.Context, viewPath string, body []byte)
}

type Handler struct {
	svc      *invoice.Service
	pages    PageCache
	renderer *views.Renderer
}

func NewHandler(svc *invoice.Service, pages PageCache, renderer *views.Renderer) *Handler {
	return &Handler{svc: svc, pages: pages, renderer: renderer}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Get("/create", h.createForm)
	r.Get("/{id}/edit", h.editForm)
	r.Post("/{id}", h.update)
	r.Post("/{id}/delete", h.delete)
}

type listPage struct {
	Invoices []*invoice.Invoice
}

type formPage struct {
	Title   string
	Action  string
	Submit  string
	Values  map[string]string
	Errors  map[string][]string
	Message string
}

// list serves the invoice table, preferring the cached rendering. A fresh
// rendering is cached before being written out.
func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	if body, ok := h.pages.Get(r.Context(), invoice.ListPath); ok {
		w.Write(body)
		return
	}

	invs, err := h.svc.List(r.Context())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := h.renderer.Render(&buf, "invoices.html", listPage{Invoices: invs}); err != nil {
		slog.Error("rendering invoice list", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	h.pages.Set(r.Context(), invoice.ListPath, buf.Bytes())

	w.Write(buf.Bytes())
}

func (h *Handler) createForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, formPage{
		Title:  "Create Invoice",
		Action: "/dashboard/invoices",
		Submit: "Create Invoice",
		Values: map[string]string{},
	})
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	form, err := formValues(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	page := formPage{
		Title:  "Create Invoice",
		Action: "/dashboard/invoices",
		Submit: "Create Invoice",
		Values: form,
	}

	h.finish(w, r, h.svc.Create(r.Context(), form), page)
}

func (h *Handler) editForm(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	inv, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, invoice.ErrNotFound) {
			http.Error(w, "invoice not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	h.render(w, formPage{
		Title:  "Edit Invoice",
		Action: "/dashboard/invoices/" + inv.ID.String(),
		Submit: "Edit Invoice",
		Values: map[string]string{
			"customerId": inv.CustomerID.String(),
			"amount":     decimal.NewFromInt(inv.Amount).Div(decimal.NewFromInt(100)).String(),
			"status":     string(inv.Status),
		},
	})
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	form, err := formValues(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	page := formPage{
		Title:  "Edit Invoice",
		Action: "/dashboard/invoices/" + id.String(),
		Submit: "Edit Invoice",
		Values: form,
	}

	h.finish(w, r, h.svc.Update(r.Context(), id, form), page)
}

// delete surfaces the pipeline's unconditional failure; there is no
// success path here today.
func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, invoice.ListPath, http.StatusSeeOther)
}

// finish maps a pipeline result onto the response: redirect on success,
// otherwise re-render the form with the reported errors.
func (h *Handler) finish(w http.ResponseWriter, r *http.Request, res invoice.Result, page formPage) {
	switch v := res.(type) {
	case invoice.Redirect:
		http.Redirect(w, r, v.Path, http.StatusSeeOther)
	case invoice.ValidationFailed:
		page.Errors = v.FieldErrors
		page.Message = v.Message

		w.WriteHeader(http.StatusUnprocessableEntity)
		h.render(w, page)
	case invoice.WriteFailed:
		page.Message = v.Message

		w.WriteHeader(http.StatusInternalServerError)
		h.render(w, page)
	}
}

func (h *Handler) render(w http.ResponseWriter, page formPage) {
	if err := h.renderer.Render(w, "invoice_form.html", page); err != nil {
		slog.Error("rendering invoice form", "error", err)
	}
}

func formValues(r *http.Request) (map[string]string, error) {
	if err := r.ParseForm(); err != nil {
		return nil, err
	}

	return map[string]string{
		"customerId": r.PostFormValue("customerId"),
		"amount":     r.PostFormValue("amount"),
		"status":     r.PostFormValue("status"),
	}, nil
}
