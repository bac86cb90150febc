package pay

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAmountInCents(t *testing.T) {
	assert.Equal(t, int64(500), amountInCents(5))
	assert.Equal(t, int64(1050), amountInCents(10.5))
	assert.Equal(t, int64(1099), amountInCents(10.999), "fractional cents truncate")
	// 19.99 has no exact float64 form; truncation lands on 1998, not 1999
	assert.Equal(t, int64(1998), amountInCents(19.99))
	assert.Equal(t, int64(0), amountInCents(0))
}

func TestCreatePaymentIntentRejectsBadJSON(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/create-payment-intent", strings.NewReader("{"))

	CreatePaymentIntent(w, r, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
