/*
types.go - Core types for the mortgage quote engine

PURPOSE:
  Defines the domain types shared across the package:
  - Application: raw, untrusted request fields as they arrive off the wire
  - Terms: the validated value object produced by Rules.Parse
  - Schedule: closed enumeration of supported payment schedules
  - Quote: the computed result (per-schedule payment + CMHC premium)

DESIGN DECISIONS:
  1. Parse-don't-validate: Application is the ONLY loosely typed structure.
     Everything downstream (insurance, payment math) takes Terms, which is
     valid by construction. There is no way to obtain a Terms value that
     violates the eligibility rules short of building one by hand.
  2. Precision: Quote carries decimal.Decimal so the premium arithmetic is
     exact and presentation rounding happens once, at the API edge.
  3. Schedule is a closed type. Unrecognized strings are rejected by
     ParseSchedule at the boundary instead of flowing through the
     calculators as a zero sentinel.

SEE ALSO:
  - rules.go: Validation pipeline producing Terms
  - insurance.go: CMHC premium tiers
  - payment.go: Annuity formula and schedule conversion
*/
package mortgage

import (
	"strings"

	"github.com/shopspring/decimal"
)

// =============================================================================
// PAYMENT SCHEDULE - Closed enumeration
// =============================================================================

// Schedule identifies how often payments are made and which per-payment
// convention applies.
type Schedule string

const (
	ScheduleMonthly             Schedule = "monthly"
	ScheduleBiWeekly            Schedule = "bi-weekly"
	ScheduleAcceleratedBiWeekly Schedule = "accelerated bi-weekly"
)

// ParseSchedule converts a raw schedule string into a Schedule. Matching is
// case-insensitive but otherwise exact. Unknown strings return
// ErrUnrecognizedSchedule.
func ParseSchedule(s string) (Schedule, error) {
	switch Schedule(strings.ToLower(s)) {
	case ScheduleMonthly:
		return ScheduleMonthly, nil
	case ScheduleBiWeekly:
		return ScheduleBiWeekly, nil
	case ScheduleAcceleratedBiWeekly:
		return ScheduleAcceleratedBiWeekly, nil
	}
	return "", ErrUnrecognizedSchedule
}

// FromMonthly converts a monthly payment amount to this schedule's
// per-payment amount.
//
// Bi-weekly spreads the annual total over 26 payments; accelerated bi-weekly
// pays half the monthly amount every two weeks (26 half-payments a year, so
// slightly more principal per year than bi-weekly).
// Reference: https://wowa.ca/accelerated-bi-weekly-mortgage-payments
func (s Schedule) FromMonthly(monthly float64) float64 {
	switch s {
	case ScheduleBiWeekly:
		return monthly * 12 / 26
	case ScheduleAcceleratedBiWeekly:
		return monthly / 2
	default:
		return monthly
	}
}

// =============================================================================
// APPLICATION - Raw request fields
// =============================================================================

// Application holds the five request fields exactly as they arrived, before
// any validation. Numeric fields may be JSON numbers or numeric strings;
// nothing is trusted until Rules.Parse has run. Decoders should use
// json.Decoder.UseNumber so numbers keep their literal form.
type Application struct {
	PropertyPrice      any
	DownPayment        any
	AnnualInterestRate any
	AmortizationPeriod any
	PaymentSchedule    any
}

// =============================================================================
// TERMS - Validated loan terms
// =============================================================================

// Terms is a fully validated set of loan terms. Produced only by Rules.Parse;
// every invariant of the eligibility rules holds for a Terms value obtained
// that way.
type Terms struct {
	PropertyPrice      float64
	DownPayment        float64
	AnnualInterestRate float64 // nominal percent, compounded semi-annually
	AmortizationYears  int
	Schedule           Schedule
}

// DownPaymentPercent returns the down payment as a percentage of the
// property price.
func (t Terms) DownPaymentPercent() float64 {
	return t.DownPayment * 100 / t.PropertyPrice
}

// BaseLoan returns the loan amount before the insurance premium is financed
// in: price minus down payment.
func (t Terms) BaseLoan() float64 {
	return t.PropertyPrice - t.DownPayment
}

// =============================================================================
// QUOTE - Computed result
// =============================================================================

// Quote is the result of quoting validated terms: the per-payment amount for
// the requested schedule and the CMHC insurance premium financed into the
// loan. Both are currency amounts; callers format them to two decimals.
type Quote struct {
	Payment       decimal.Decimal
	CMHCInsurance decimal.Decimal
}
