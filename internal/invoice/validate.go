package invoice

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Fields holds the normalized output of a successful validation.
// Amount stays in major units; conversion to cents happens in the pipeline.
type Fields struct {
	CustomerID string
	Amount     decimal.Decimal
	Status     Status
}

// formInput is the untrusted shape of a create/update form submission.
// The id and date are server-assigned and never read from the form.
type formInput struct {
	CustomerID string          `form:"customerId" validate:"required"`
	Amount     decimal.Decimal `form:"amount" validate:"gt=0"`
	Status     string          `form:"status" validate:"oneof=pending paid"`
}

var fieldMessages = map[string]string{
	"customerId": "Please select a customer",
	"amount":     "Please enter an amount greater than $0.",
	"status":     "Please select an invoice status",
}

// Validator checks raw form submissions against the invoice schema.
type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New()

	// Report violations under the form field names, not the Go field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	// Let numeric rules (gt=0) apply to decimal amounts.
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		d, ok := field.Interface().(decimal.Decimal)
		if !ok {
			return nil
		}

		f, _ := d.Float64()

		return f
	}, decimal.Decimal{})

	return &Validator{validate: v}
}

// Parse validates a raw form submission. All rules are applied
// independently and every violation is collected; on success the returned
// error map is nil and fields holds the normalized values.
func (v *Validator) Parse(raw map[string]string) (*Fields, map[string][]string) {
	in := formInput{
		CustomerID: raw["customerId"],
		Amount:     coerceAmount(raw["amount"]),
		Status:     raw["status"],
	}

	if err := v.validate.Struct(in); err != nil {
		fieldErrors := make(map[string][]string)

		for _, fe := range err.(validator.ValidationErrors) {
			name := fe.Field()
			fieldErrors[name] = append(fieldErrors[name], fieldMessages[name])
		}

		return nil, fieldErrors
	}

	return &Fields{
		CustomerID: in.CustomerID,
		Amount:     in.Amount,
		Status:     Status(in.Status),
	}, nil
}

// coerceAmount mirrors form number coercion: empty or unparseable input
// becomes zero, which then fails the gt=0 rule.
func coerceAmount(raw string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero
	}

	return d
}
