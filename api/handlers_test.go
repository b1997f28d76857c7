/*
handlers_test.go - HTTP tests for POST /api/calculate-mortgage

Exercises the full router: middleware, JSON decoding, validation reasons,
and response formatting.
*/
package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/cascadia/mortgage-engine/mortgage"
)

// =============================================================================
// TEST SETUP
// =============================================================================

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	h := NewHandler(zap.NewNop(), mortgage.DefaultRules())
	return NewRouter(h, RouterOptions{
		AllowedOrigins: []string{"*"},
		StaticDir:      t.TempDir(), // no client assets in tests
	})
}

func postCalculate(t *testing.T, router http.Handler, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/calculate-mortgage", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func validBody() map[string]any {
	return map[string]any{
		"propertyPrice":      500000,
		"downPayment":        50000,
		"annualInterestRate": 3,
		"amortizationPeriod": 25,
		"paymentSchedule":    "monthly",
	}
}

var twoDecimals = regexp.MustCompile(`^[0-9]+\.[0-9]{2}$`)

// =============================================================================
// SUCCESS PATH
// =============================================================================

func TestCalculateMortgage_ValidInputs(t *testing.T) {
	router := newTestRouter(t)

	rec := postCalculate(t, router, validBody())
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Regexp(t, twoDecimals, body["paymentPerPaymentSchedule"])
	// 10% down: 3.1% of the 450k base loan.
	assert.Equal(t, "13950.00", body["cmhcInsurance"])
}

func TestCalculateMortgage_NumericStringsAccepted(t *testing.T) {
	router := newTestRouter(t)

	body := validBody()
	body["propertyPrice"] = "500000"
	body["downPayment"] = "50000"

	rec := postCalculate(t, router, body)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "13950.00", decodeBody(t, rec)["cmhcInsurance"])
}

func TestCalculateMortgage_TwentyPercentDown_NoInsurance(t *testing.T) {
	router := newTestRouter(t)

	rec := postCalculate(t, router, map[string]any{
		"propertyPrice":      300000,
		"downPayment":        60000,
		"annualInterestRate": 3,
		"amortizationPeriod": 25,
		"paymentSchedule":    "monthly",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "0.00", decodeBody(t, rec)["cmhcInsurance"])
}

func TestCalculateMortgage_AboveMillion_NoInsurance(t *testing.T) {
	// Above the 1M ceiling insurance never applies; 25% down clears the
	// minimum-down-payment rules.
	router := newTestRouter(t)

	rec := postCalculate(t, router, map[string]any{
		"propertyPrice":      1100000,
		"downPayment":        275000,
		"annualInterestRate": 3,
		"amortizationPeriod": 25,
		"paymentSchedule":    "monthly",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "0.00", decodeBody(t, rec)["cmhcInsurance"])
}

func TestCalculateMortgage_ScheduleCaseInsensitive(t *testing.T) {
	router := newTestRouter(t)

	lower := validBody()
	lower["paymentSchedule"] = "bi-weekly"
	mixed := validBody()
	mixed["paymentSchedule"] = "Bi-Weekly"

	recLower := postCalculate(t, router, lower)
	recMixed := postCalculate(t, router, mixed)
	require.Equal(t, http.StatusOK, recLower.Code)
	require.Equal(t, http.StatusOK, recMixed.Code)

	assert.Equal(t,
		decodeBody(t, recLower)["paymentPerPaymentSchedule"],
		decodeBody(t, recMixed)["paymentPerPaymentSchedule"])
}

// =============================================================================
// REJECTIONS
// =============================================================================

func TestCalculateMortgage_Rejections(t *testing.T) {
	router := newTestRouter(t)

	cases := []struct {
		name   string
		mutate func(map[string]any)
		want   string
	}{
		{
			name:   "missing field",
			mutate: func(b map[string]any) { delete(b, "amortizationPeriod") },
			want:   "All fields are required",
		},
		{
			name:   "negative interest rate",
			mutate: func(b map[string]any) { b["annualInterestRate"] = -3 },
			want:   "Property price, down payment, amortization period and annual interest rate must be positive numbers",
		},
		{
			name:   "non-numeric price",
			mutate: func(b map[string]any) { b["propertyPrice"] = "qwerty" },
			want:   "Property price, down payment, amortization period and annual interest rate must be positive numbers",
		},
		{
			name:   "schedule is a number",
			mutate: func(b map[string]any) { b["paymentSchedule"] = 1 },
			want:   "Payment schedule must be string",
		},
		{
			name:   "down payment equals price",
			mutate: func(b map[string]any) { b["downPayment"] = 500000 },
			want:   "Invalid inputs",
		},
		{
			name:   "amortization not a multiple of five",
			mutate: func(b map[string]any) { b["amortizationPeriod"] = 12 },
			want:   "Invalid Amortization Period!",
		},
		{
			name: "thirty years without twenty percent down",
			mutate: func(b map[string]any) {
				b["amortizationPeriod"] = 30
			},
			want: "Invalid Amortization Period!",
		},
		{
			name:   "down payment below five percent",
			mutate: func(b map[string]any) { b["downPayment"] = 1000 },
			want:   "Downpayment is too low!",
		},
		{
			name: "twenty percent down on a property above one million",
			mutate: func(b map[string]any) {
				b["propertyPrice"] = 1100000
				b["downPayment"] = 220000
			},
			want: "Downpayment is too low!",
		},
		{
			name:   "unknown payment schedule",
			mutate: func(b map[string]any) { b["paymentSchedule"] = "weekly" },
			want:   "Payment schedule is invalid!",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			body := validBody()
			c.mutate(body)

			rec := postCalculate(t, router, body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, c.want, decodeBody(t, rec)["error"])
		})
	}
}

func TestCalculateMortgage_MalformedBody(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/calculate-mortgage",
		strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid request body", decodeBody(t, rec)["error"])
}

// =============================================================================
// TRANSPORT CONCERNS
// =============================================================================

func TestWelcome(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Welcome")
}

func TestRateLimit_BlocksAfterBurst(t *testing.T) {
	h := NewHandler(zap.NewNop(), mortgage.DefaultRules())
	router := NewRouter(h, RouterOptions{
		AllowedOrigins: []string{"*"},
		StaticDir:      t.TempDir(),
		RateLimit:      rate.Every(time.Hour),
		RateBurst:      2,
	})

	var last int
	for i := 0; i < 3; i++ {
		rec := postCalculate(t, router, validBody())
		last = rec.Code
	}
	assert.Equal(t, http.StatusTooManyRequests, last)
}
