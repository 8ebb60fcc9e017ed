package payments

import (
	"errors"
	"fmt"
	"strings"

	"focusdash-app/config"

	"github.com/stripe/stripe-go/v75"
	"github.com/stripe/stripe-go/v75/client"
)

// ErrNotConfigured is returned when no usable Stripe secret key is present.
// Callers must treat the unconfigured state explicitly instead of assuming a
// process-wide client exists.
var ErrNotConfigured = errors.New("stripe is not configured")

type CheckoutParams struct {
	CustomerID string
	PriceID    string
	SuccessURL string
	CancelURL  string
	Metadata   map[string]string
}

// Client is the thin surface of the payment processor this app needs.
type Client interface {
	// CreateCustomer registers a payer with Stripe and returns its id.
	CreateCustomer(email string, metadata map[string]string) (string, error)
	// CreateCheckoutSession opens a subscription-mode hosted checkout and
	// returns the opaque session id.
	CreateCheckoutSession(p CheckoutParams) (string, error)
}

type stripeClient struct {
	api *client.API
}

// NewFromEnv builds a Stripe-backed Client from configuration. It returns
// ErrNotConfigured when the secret key is absent or does not look like a
// Stripe secret key.
func NewFromEnv() (Client, error) {
	key := config.STRIPE_SECRET_KEY
	if key == "" || !strings.HasPrefix(key, "sk_") {
		return nil, ErrNotConfigured
	}

	api := &client.API{}
	api.Init(key, nil)

	return &stripeClient{api: api}, nil
}

func (s *stripeClient) CreateCustomer(email string, metadata map[string]string) (string, error) {
	params := &stripe.CustomerParams{
		Email: stripe.String(email),
	}
	for k, v := range metadata {
		params.AddMetadata(k, v)
	}

	cus, err := s.api.Customers.New(params)
	if err != nil {
		return "", fmt.Errorf("create stripe customer: %w", err)
	}
	return cus.ID, nil
}

func (s *stripeClient) CreateCheckoutSession(p CheckoutParams) (string, error) {
	params := &stripe.CheckoutSessionParams{
		Customer:           stripe.String(p.CustomerID),
		Mode:               stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		SuccessURL:         stripe.String(p.SuccessURL),
		CancelURL:          stripe.String(p.CancelURL),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{Price: stripe.String(p.PriceID), Quantity: stripe.Int64(1)},
		},
	}
	for k, v := range p.Metadata {
		params.AddMetadata(k, v)
	}

	sess, err := s.api.CheckoutSessions.New(params)
	if err != nil {
		return "", fmt.Errorf("create checkout session: %w", err)
	}
	return sess.ID, nil
}
