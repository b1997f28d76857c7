/*
handlers.go - HTTP API handlers for the mortgage quote engine

PURPOSE:
  Exposes the calculation pipeline via REST. Handles HTTP request/response,
  JSON serialization, and delegates everything else to the mortgage package.

ENDPOINTS:
  POST /api/calculate-mortgage   Validate eligibility and compute the quote
  GET  /api                      Welcome message
  GET  /                         Static form client (see server.go)

REQUEST FLOW:
  1. Decode JSON body (UseNumber, so numeric literals keep their form)
  2. mortgage.Rules.Parse: ordered eligibility checks, fail fast
  3. mortgage.Rules.Quote: premium, financed principal, schedule payment
  4. Format both amounts to two-decimal strings

ERROR HANDLING:
  Every rejection maps to HTTP 400 with a fixed reason string; the mapping
  lives in clientReason so the domain package never carries wire wording.
  Unexpected panics inside the pipeline are logged and answered with a
  generic "Internal error" - internal messages are never sent to clients.

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
  - mortgage/: The validation and calculation pipeline
*/
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/cascadia/mortgage-engine/mortgage"
)

// Client-facing rejection reasons. Fixed strings, part of the API contract.
const (
	reasonMissingFields = "All fields are required"
	reasonNotPositive   = "Property price, down payment, amortization period and annual interest rate must be positive numbers"
	reasonScheduleType  = "Payment schedule must be string"
	reasonInvalidInputs = "Invalid inputs"
	reasonAmortization  = "Invalid Amortization Period!"
	reasonDownTooLow    = "Downpayment is too low!"
	reasonBadSchedule   = "Payment schedule is invalid!"
	reasonBadBody       = "Invalid request body"
	reasonInternal      = "Internal error"
)

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Rules  mortgage.Rules
	logger *zap.Logger
}

// NewHandler creates a new handler with the given rule set.
func NewHandler(logger *zap.Logger, rules mortgage.Rules) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{Rules: rules, logger: logger}
}

// CalculateMortgage validates a mortgage application and returns the
// per-schedule payment and CMHC premium.
// POST /api/calculate-mortgage
func (h *Handler) CalculateMortgage(w http.ResponseWriter, r *http.Request) {
	defer func() {
		if rec := recover(); rec != nil {
			h.logger.Error("panic during mortgage calculation", zap.Any("panic", rec))
			writeError(w, http.StatusBadRequest, reasonInternal)
		}
	}()

	dec := json.NewDecoder(r.Body)
	dec.UseNumber()

	var req CalculateMortgageRequest
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, reasonBadBody)
		return
	}

	terms, err := h.Rules.Parse(req.application())
	if err != nil {
		h.logger.Debug("application rejected",
			zap.String("reason", err.Error()),
			zap.String("request_id", requestID(r)))
		writeError(w, http.StatusBadRequest, clientReason(h.logger, err))
		return
	}

	quote := h.Rules.Quote(terms)

	writeJSON(w, http.StatusOK, QuoteDTO{
		PaymentPerPaymentSchedule: quote.Payment.StringFixed(2),
		CMHCInsurance:             quote.CMHCInsurance.StringFixed(2),
	})
}

// Welcome returns the API greeting.
// GET /api
func (h *Handler) Welcome(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("Welcome to BC Mortgage Calculator API!"))
}

// clientReason maps a domain rejection to its fixed client-facing string.
// Anything unrecognized is reported generically and logged, never leaked.
func clientReason(logger *zap.Logger, err error) string {
	switch {
	case errors.Is(err, mortgage.ErrMissingField):
		return reasonMissingFields
	case errors.Is(err, mortgage.ErrInvalidNumber):
		return reasonNotPositive
	case errors.Is(err, mortgage.ErrScheduleNotString):
		return reasonScheduleType
	case errors.Is(err, mortgage.ErrDownPaymentExceedsPrice):
		return reasonInvalidInputs
	case errors.Is(err, mortgage.ErrInvalidAmortization):
		return reasonAmortization
	case errors.Is(err, mortgage.ErrInsufficientDownPayment):
		return reasonDownTooLow
	case errors.Is(err, mortgage.ErrUnrecognizedSchedule):
		return reasonBadSchedule
	}
	logger.Error("unmapped rejection", zap.Error(err))
	return reasonInternal
}

// =============================================================================
// RESPONSE HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}
