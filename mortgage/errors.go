/*
errors.go - Centralized error types for the mortgage engine

PURPOSE:
  All rejection reasons in one place. The API layer dispatches on these with
  errors.Is and owns the client-facing wording; the domain package states
  reasons in its own terms.

ERROR CATEGORIES:
  1. Shape errors - Missing, non-numeric, or mistyped fields
  2. Eligibility errors - Inputs that parse but violate the lending rules

USAGE:
  terms, err := rules.Parse(app)
  if errors.Is(err, mortgage.ErrInsufficientDownPayment) { ... }

SEE ALSO:
  - rules.go: Returns these from the validation pipeline
*/
package mortgage

import "errors"

// Sentinel errors, use with errors.Is().
var (
	// ErrMissingField is returned when any of the five request fields is
	// absent or empty.
	ErrMissingField = errors.New("missing required field")

	// ErrInvalidNumber is returned when a numeric field is non-numeric,
	// negative, or zero.
	ErrInvalidNumber = errors.New("numeric field must be a positive number")

	// ErrScheduleNotString is returned when the payment schedule field is
	// present but not a string.
	ErrScheduleNotString = errors.New("payment schedule must be a string")

	// ErrDownPaymentExceedsPrice is returned when the down payment equals or
	// exceeds the property price.
	ErrDownPaymentExceedsPrice = errors.New("down payment must be less than property price")

	// ErrInvalidAmortization is returned when the amortization period is not
	// one of {5,10,15,20,25,30} years, or exceeds 25 years without at least
	// a 20% down payment.
	ErrInvalidAmortization = errors.New("invalid amortization period")

	// ErrInsufficientDownPayment is returned when the down payment is below
	// the regulatory minimum for the property price.
	ErrInsufficientDownPayment = errors.New("down payment below required minimum")

	// ErrUnrecognizedSchedule is returned when the payment schedule string
	// matches none of the supported schedules.
	ErrUnrecognizedSchedule = errors.New("unrecognized payment schedule")
)
