package pay

import (
	"encoding/json"
	"net/http"
	"os"

	"dinesmart/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/paymentintent"
)

// Init sets the Stripe API key. Called from main after the environment
// is loaded.
func Init() {
	stripe.Key = os.Getenv("STRIPE_SECRET_KEY")
}

// amountInCents converts a major-unit price to minor units, truncating
// fractional cents.
func amountInCents(price float64) int64 {
	return int64(price * 100)
}

// CreatePaymentIntent handles POST /create-payment-intent: one card-only
// usd intent per call, relaying the client secret. No retry and no
// idempotency key.
func CreatePaymentIntent(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var body struct {
		Price float64 `json:"price"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amountInCents(body.Price)),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = r.Context()

	intent, err := paymentintent.New(params)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to create payment intent")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"clientSecret": intent.ClientSecret})
}
