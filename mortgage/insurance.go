/*
insurance.go - CMHC default-insurance premium tiers

PURPOSE:
  Derives the mandatory mortgage default-insurance premium from the
  down-payment percentage. The rate is a step function of the percentage;
  the premium applies to the base loan (price minus down payment), before
  the premium itself is financed into the principal.

TIERS (down-payment percentage):
  [5, 10)   4.0%
  [10, 15)  3.1%
  [15, 20)  2.8%
  >= 20     exempt (0), likewise any price above the exemption ceiling

  Boundary comparisons are intentionally asymmetric (>= on the lower edge,
  < on the upper) to match the regulation.

SEE ALSO:
  - rules.go: Thresholds and the validation that guarantees percent >= 5
*/
package mortgage

import "github.com/shopspring/decimal"

var (
	insuranceRateLow  = decimal.NewFromFloat(4.0)
	insuranceRateMid  = decimal.NewFromFloat(3.1)
	insuranceRateHigh = decimal.NewFromFloat(2.8)

	oneHundred = decimal.NewFromInt(100)
)

// InsuranceRate returns the CMHC premium rate in percent for the given
// terms. Zero when the down payment reaches 20% or the property price is
// above the insurance ceiling.
func (r Rules) InsuranceRate(t Terms) decimal.Decimal {
	percent := t.DownPaymentPercent()
	if percent >= 20 || t.PropertyPrice > r.InsuranceExemptPrice {
		return decimal.Zero
	}
	switch {
	case percent >= 15:
		return insuranceRateHigh
	case percent >= 10:
		return insuranceRateMid
	default:
		return insuranceRateLow
	}
}

// InsurancePremium returns the premium as a currency amount:
// rate * baseLoan / 100, computed in exact decimal arithmetic.
func (r Rules) InsurancePremium(t Terms) decimal.Decimal {
	base := decimal.NewFromFloat(t.BaseLoan())
	return r.InsuranceRate(t).Mul(base).Div(oneHundred)
}
