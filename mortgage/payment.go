/*
payment.go - Amortizing payment math and quoting

PURPOSE:
  Implements the level-payment annuity formula under the Canadian
  semi-annual compounding convention, and Rules.Quote, which stitches the
  premium, principal adjustment, payment formula, and schedule conversion
  together.

RATE CONVENTION:
  The posted annual rate is nominal, compounded semi-annually. The
  effective monthly rate is therefore

    i = (1 + rate/200)^(1/6) - 1

  and the monthly payment over n = 12*years periods is

    P * i * (1+i)^n / ((1+i)^n - 1)

  The fractional exponent forces float64 here; results are carried as
  decimal.Decimal afterwards so rounding happens exactly once, at the edge.
  The formula is numerically stable for i > 0, which validation guarantees
  (annual rate must be positive).

  Values cross-checked against the RBC mortgage payment calculator.

SEE ALSO:
  - types.go: Schedule.FromMonthly conversion factors
  - insurance.go: Premium financed into the principal
*/
package mortgage

import (
	"math"

	"github.com/shopspring/decimal"
)

// MonthlyPayment computes the level monthly payment for a principal at the
// given nominal annual rate (percent, semi-annually compounded) over the
// given amortization in years.
func MonthlyPayment(principal, annualRatePercent float64, years int) float64 {
	semiAnnual := annualRatePercent / 200
	monthly := math.Pow(1+semiAnnual, 1.0/6.0) - 1
	n := float64(12 * years)

	factor := math.Pow(1+monthly, n)
	return principal * monthly * factor / (factor - 1)
}

// Quote computes the full result for validated terms: the CMHC premium, the
// financed principal (base loan plus premium), the monthly payment, and the
// conversion to the requested schedule.
func (r Rules) Quote(t Terms) Quote {
	premium := r.InsurancePremium(t)
	principal := decimal.NewFromFloat(t.BaseLoan()).Add(premium)

	monthly := MonthlyPayment(principal.InexactFloat64(), t.AnnualInterestRate, t.AmortizationYears)
	perPayment := t.Schedule.FromMonthly(monthly)

	return Quote{
		Payment:       decimal.NewFromFloat(perPayment),
		CMHCInsurance: premium,
	}
}
