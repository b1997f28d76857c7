/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication, decoupling the domain
  types from the wire contract.

TYPES:
  CalculateMortgageRequest: the five form fields, loosely typed because the
  client may send numbers or numeric strings and validation owns the
  distinction (decode with UseNumber so numeric literals are preserved).

  QuoteDTO: both amounts as strings with exactly two decimal places.

  ErrorResponse: {"error": "<reason>"} with one of the fixed reason strings.

VALIDATION:
  None here. DTOs are pure data carriers; the mortgage package validates.

SEE ALSO:
  - handlers.go: Uses these types
  - mortgage/rules.go: The validation pipeline
*/
package api

import "github.com/cascadia/mortgage-engine/mortgage"

// CalculateMortgageRequest is the request body for POST /api/calculate-mortgage.
type CalculateMortgageRequest struct {
	PropertyPrice      any `json:"propertyPrice"`
	DownPayment        any `json:"downPayment"`
	AnnualInterestRate any `json:"annualInterestRate"`
	AmortizationPeriod any `json:"amortizationPeriod"`
	PaymentSchedule    any `json:"paymentSchedule"`
}

// application converts the wire request into the domain's raw input type.
func (r CalculateMortgageRequest) application() mortgage.Application {
	return mortgage.Application{
		PropertyPrice:      r.PropertyPrice,
		DownPayment:        r.DownPayment,
		AnnualInterestRate: r.AnnualInterestRate,
		AmortizationPeriod: r.AmortizationPeriod,
		PaymentSchedule:    r.PaymentSchedule,
	}
}

// QuoteDTO is the success response. Both values are currency amounts
// formatted to exactly two decimal places.
type QuoteDTO struct {
	PaymentPerPaymentSchedule string `json:"paymentPerPaymentSchedule"`
	CMHCInsurance             string `json:"cmhcInsurance"`
}

// ErrorResponse is the failure response shape.
type ErrorResponse struct {
	Error string `json:"error"`
}
