package invoice

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ListPath is the view whose cached rendering is invalidated after writes
// and where successful mutations redirect to.
const ListPath = "/dashboard/invoices"

//go:generate mockgen -source=service.go -destination=service_mock.go -package=invoice
type Repository interface {
	CreateInvoice(ctx context.Context, inv *Invoice) error
	GetInvoice(ctx context.Context, id uuid.UUID) (*Invoice, error)
	ListInvoices(ctx context.Context) ([]*Invoice, error)
	UpdateInvoice(ctx context.Context, inv *Invoice) error
	DeleteInvoice(ctx context.Context, id uuid.UUID) error
}

// Revalidator drops any cached rendering of a view. Invalidation is
// fire-and-forget: the pipeline does not wait for readers to observe it.
type Revalidator interface {
	Invalidate(ctx context.Context, viewPath string) error
}

// ErrDeleteDisabled is the unconditional outcome of Delete.
var ErrDeleteDisabled = errors.New("Failed to Delete Invoice")

var cents = decimal.NewFromInt(100)

type Service struct {
	repo      Repository
	cache     Revalidator
	validator *Validator
	now       func() time.Time
}

type Option func(*Service)

// WithClock overrides the creation-date clock.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func NewService(repo Repository, cache Revalidator, opts ...Option) *Service {
	s := &Service{
		repo:      repo,
		cache:     cache,
		validator: NewValidator(),
		now:       time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Create validates the raw form, converts the amount to cents, stamps the
// creation date and issues a single insert. Storage is never touched when
// validation fails, and no write is retried.
func (s *Service) Create(ctx context.Context, form map[string]string) Result {
	fields, fieldErrors := s.validator.Parse(form)
	if fieldErrors != nil {
		return ValidationFailed{
			FieldErrors: fieldErrors,
			Message:     "Missing Fields. Failed to Create Invoice.",
		}
	}

	customerID, err := uuid.Parse(fields.CustomerID)
	if err != nil {
		slog.Error("parsing customer id", "error", err)
		return WriteFailed{Message: "Database Error: Failed to Create Invoice"}
	}

	inv := &Invoice{
		CustomerID: customerID,
		Amount:     toCents(fields.Amount),
		Status:     fields.Status,
		Date:       today(s.now()),
	}

	if err := s.repo.CreateInvoice(ctx, inv); err != nil {
		slog.Error("creating invoice", "error", err)
		return WriteFailed{Message: "Database Error: Failed to Create Invoice"}
	}

	s.revalidate(ctx)

	return Redirect{Path: ListPath}
}

// Update revalidates the form and rewrites customer, amount and status for
// the given row. The id and creation date are immutable and never touched.
func (s *Service) Update(ctx context.Context, id uuid.UUID, form map[string]string) Result {
	fields, fieldErrors := s.validator.Parse(form)
	if fieldErrors != nil {
		return ValidationFailed{
			FieldErrors: fieldErrors,
			Message:     "Missing Fields. Failed to Update Invoice.",
		}
	}

	customerID, err := uuid.Parse(fields.CustomerID)
	if err != nil {
		slog.Error("parsing customer id", "error", err)
		return WriteFailed{Message: "Database Error: Failed to Update Invoice"}
	}

	inv := &Invoice{
		ID:         id,
		CustomerID: customerID,
		Amount:     toCents(fields.Amount),
		Status:     fields.Status,
	}

	if err := s.repo.UpdateInvoice(ctx, inv); err != nil {
		slog.Error("updating invoice", "error", err)
		return WriteFailed{Message: "Database Error: Failed to Update Invoice"}
	}

	s.revalidate(ctx)

	return Redirect{Path: ListPath}
}

// Delete fails unconditionally before reaching the delete statement or the
// cache invalidation. This matches the current upstream contract, which
// looks like a placeholder left in on purpose.
// TODO: once deletion is cleared to go live, drop the guard and call
// repo.DeleteInvoice followed by revalidate.
func (s *Service) Delete(_ context.Context, _ uuid.UUID) error {
	return ErrDeleteDisabled
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Invoice, error) {
	return s.repo.GetInvoice(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Invoice, error) {
	return s.repo.ListInvoices(ctx)
}

// revalidate drops the cached list view. Failures are logged, not
// propagated: the write has already committed.
func (s *Service) revalidate(ctx context.Context) {
	if err := s.cache.Invalidate(ctx, ListPath); err != nil {
		slog.Warn("invalidating invoice list view", "error", err)
	}
}

// toCents converts a major-unit amount to integer cents, rounding halves
// away from zero.
func toCents(amount decimal.Decimal) int64 {
	return amount.Mul(cents).Round(0).IntPart()
}

// today truncates the clock to a UTC calendar date.
func today(now time.Time) time.Time {
	y, m, d := now.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
