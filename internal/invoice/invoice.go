package invoice

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Status represents the payment state of an invoice.
type Status string

const (
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
)

// Invoice represents a customer invoice.
type Invoice struct {
	ID         uuid.UUID
	CustomerID uuid.UUID
	Amount     int64 // Amount in cents
	Status     Status
	Date       time.Time // Calendar date, stamped at creation and never updated
}

var ErrNotFound = errors.New("invoice not found")
