/*
rules.go - Eligibility rules and the validation pipeline

PURPOSE:
  Holds the regulatory thresholds as one immutable Rules structure and
  implements Rules.Parse, the ordered validation pipeline that turns a raw
  Application into validated Terms.

CHECK ORDER (first failure wins, nothing else runs):
  1. Presence        - all five fields present and non-empty
  2. Positive number - the four numeric fields match a positive-decimal
                       pattern and are > 0
  3. Schedule type   - paymentSchedule is a string, not a number
  4. Down < price    - down payment strictly below property price
  5. Amortization    - multiple of 5 in [5,30]; over 25 years needs >= 20% down
  6. Minimum down    - 5% floor, 1M insurance cut-off, 500k tiered minimum
  7. Schedule value  - string is one of the three supported schedules

  The pipeline is a pure function: no I/O, no logging, no partial results.

RULE SET:
  DefaultRules models the BC requirements (CMHC high-ratio insurance only;
  no non-traditional down payment or self-employed non-verified income
  variants).

SEE ALSO:
  - errors.go: The rejection reasons returned here
  - insurance.go: Premium tiers, also driven by Rules
*/
package mortgage

import (
	"encoding/json"
	"math"
	"regexp"
	"strconv"
)

// =============================================================================
// RULES - Immutable regulatory thresholds
// =============================================================================

// Rules gathers every threshold the validator and insurance calculator need.
// A Rules value is immutable for the process lifetime and safe to share
// across concurrent requests.
type Rules struct {
	// InsuranceExemptPrice is the property price above which CMHC insurance
	// is unavailable, so buyers must put at least 20% down.
	InsuranceExemptPrice float64

	// TierPriceThreshold is the price above which the minimum down payment
	// is tiered: MinimumDownPercent of the threshold plus UpperTierPercent
	// of the remainder.
	TierPriceThreshold float64

	// MinimumDownPercent is the absolute floor on the down payment
	// percentage.
	MinimumDownPercent float64

	// UpperTierPercent applies to the portion of the price above
	// TierPriceThreshold when computing the tiered minimum.
	UpperTierPercent float64
}

// DefaultRules returns the BC rule set.
func DefaultRules() Rules {
	return Rules{
		InsuranceExemptPrice: 1_000_000,
		TierPriceThreshold:   500_000,
		MinimumDownPercent:   5,
		UpperTierPercent:     10,
	}
}

// MinimumDownPayment returns the smallest acceptable down payment for the
// given property price under the tiered rule.
func (r Rules) MinimumDownPayment(price float64) float64 {
	if price <= r.TierPriceThreshold {
		return price * r.MinimumDownPercent / 100
	}
	return r.TierPriceThreshold*r.MinimumDownPercent/100 +
		(price-r.TierPriceThreshold)*r.UpperTierPercent/100
}

// =============================================================================
// VALIDATION PIPELINE
// =============================================================================

// positiveDecimal matches an unsigned integer or decimal literal. No sign,
// no exponent, no separators.
var positiveDecimal = regexp.MustCompile(`^[0-9]+(\.[0-9]+)?$`)

// Parse runs the full validation pipeline over a raw Application and returns
// validated Terms. The first failing check determines the error; later
// checks do not run.
func (r Rules) Parse(app Application) (Terms, error) {
	raw := []any{
		app.PropertyPrice,
		app.DownPayment,
		app.AnnualInterestRate,
		app.AmortizationPeriod,
		app.PaymentSchedule,
	}
	for _, v := range raw {
		if isMissing(v) {
			return Terms{}, ErrMissingField
		}
	}

	price, okPrice := positiveNumber(app.PropertyPrice)
	down, okDown := positiveNumber(app.DownPayment)
	rate, okRate := positiveNumber(app.AnnualInterestRate)
	years, okYears := positiveNumber(app.AmortizationPeriod)
	if !okPrice || !okDown || !okRate || !okYears {
		return Terms{}, ErrInvalidNumber
	}

	scheduleRaw, ok := app.PaymentSchedule.(string)
	if !ok {
		return Terms{}, ErrScheduleNotString
	}

	if down >= price {
		return Terms{}, ErrDownPaymentExceedsPrice
	}

	percent := down * 100 / price
	if years < 5 || years > 30 || math.Mod(years, 5) != 0 {
		return Terms{}, ErrInvalidAmortization
	}
	if years > 25 && percent < 20 {
		return Terms{}, ErrInvalidAmortization
	}

	if percent < r.MinimumDownPercent {
		return Terms{}, ErrInsufficientDownPayment
	}
	if price > r.InsuranceExemptPrice && percent <= 20 {
		return Terms{}, ErrInsufficientDownPayment
	}
	if price > r.TierPriceThreshold && down < r.MinimumDownPayment(price) {
		return Terms{}, ErrInsufficientDownPayment
	}

	schedule, err := ParseSchedule(scheduleRaw)
	if err != nil {
		return Terms{}, err
	}

	return Terms{
		PropertyPrice:      price,
		DownPayment:        down,
		AnnualInterestRate: rate,
		AmortizationYears:  int(years),
		Schedule:           schedule,
	}, nil
}

// isMissing reports whether a raw field should be treated as absent: nil,
// an empty string, false, or a literal numeric zero.
func isMissing(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return x == ""
	case bool:
		return !x
	case json.Number:
		f, err := x.Float64()
		return err == nil && f == 0
	case float64:
		return x == 0
	case int:
		return x == 0
	}
	return false
}

// positiveNumber normalizes a raw field to its literal string form, requires
// it to match the positive-decimal pattern, and parses it. Returns false for
// anything non-numeric, signed, in scientific notation, or <= 0.
func positiveNumber(v any) (float64, bool) {
	var s string
	switch x := v.(type) {
	case string:
		s = x
	case json.Number:
		s = x.String()
	case float64:
		s = strconv.FormatFloat(x, 'f', -1, 64)
	case int:
		s = strconv.Itoa(x)
	default:
		return 0, false
	}
	if !positiveDecimal.MatchString(s) {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f <= 0 {
		return 0, false
	}
	return f, true
}
