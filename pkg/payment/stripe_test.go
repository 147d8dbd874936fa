package payment

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v76"
)

func newTestGateway(t *testing.T, handler http.HandlerFunc) *StripeGateway {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	backend := stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
		URL:               stripe.String(srv.URL),
		HTTPClient:        srv.Client(),
		MaxNetworkRetries: stripe.Int64(0),
	})
	return NewStripeGateway("sk_test_123", "usd", &stripe.Backends{API: backend, Connect: backend, Uploads: backend})
}

func formValues(r *http.Request, prefix string) []string {
	var values []string
	for key, v := range r.PostForm {
		if strings.HasPrefix(key, prefix) {
			values = append(values, v...)
		}
	}
	return values
}

func TestCreatePaymentIntent(t *testing.T) {
	var (
		amount, currency, idemKey string
		methods                   []string
	)
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/payment_intents", r.URL.Path)
		require.NoError(t, r.ParseForm())
		amount = r.PostForm.Get("amount")
		currency = r.PostForm.Get("currency")
		methods = formValues(r, "payment_method_types")
		idemKey = r.Header.Get("Idempotency-Key")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"pi_123","object":"payment_intent","amount":4999,"currency":"usd","client_secret":"pi_123_secret_abc"}`))
	})

	intent, err := gw.CreatePaymentIntent(context.Background(), 4999, "key-1")
	require.NoError(t, err)
	assert.Equal(t, "4999", amount)
	assert.Equal(t, "usd", currency)
	assert.Equal(t, []string{"card"}, methods)
	assert.Equal(t, "key-1", idemKey)
	assert.Equal(t, "pi_123_secret_abc", intent.ClientSecret)
	assert.Equal(t, int64(4999), intent.Amount)
}

func TestCreatePaymentIntentProcessorError(t *testing.T) {
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"type":"invalid_request_error","message":"Amount must be at least 50 cents"}}`))
	})

	_, err := gw.CreatePaymentIntent(context.Background(), 10, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "create payment intent")
}
