package billing

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"focusdash-app/config"
	"focusdash-app/internal/domain/users"
	"focusdash-app/internal/infra/payments"
	"focusdash-app/internal/testutil"

	"github.com/gin-gonic/gin"
)

// fakePayments counts calls so tests can assert the customer is only
// created once per user.
type fakePayments struct {
	customerCalls int
	sessionCalls  int
	failCustomer  bool
	failSession   bool
	lastCheckout  payments.CheckoutParams
}

func (f *fakePayments) CreateCustomer(email string, metadata map[string]string) (string, error) {
	f.customerCalls++
	if f.failCustomer {
		return "", errors.New("stripe unavailable")
	}
	return fmt.Sprintf("cus_fake_%d", f.customerCalls), nil
}

func (f *fakePayments) CreateCheckoutSession(p payments.CheckoutParams) (string, error) {
	f.sessionCalls++
	f.lastCheckout = p
	if f.failSession {
		return "", errors.New("stripe unavailable")
	}
	return fmt.Sprintf("cs_fake_%d", f.sessionCalls), nil
}

func checkoutRouter(pc payments.Client) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/create-checkout-session", NewHandler(pc).CreateCheckoutSession)
	return r
}

func postCheckout(t *testing.T, r *gin.Engine, body map[string]interface{}) *httptest.ResponseRecorder {
	t.Helper()

	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/create-checkout-session", bytes.NewBuffer(raw))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Origin", "http://localhost:3000")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateCheckoutSession_MissingFields(t *testing.T) {
	testutil.SetupDB(t)
	config.STRIPE_PRICE_ID = "price_test"
	r := checkoutRouter(&fakePayments{})

	tests := []struct {
		name string
		body map[string]interface{}
	}{
		{"no userId", map[string]interface{}{"email": "a@b.com"}},
		{"no email", map[string]interface{}{"userId": 1}},
		{"empty body", map[string]interface{}{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postCheckout(t, r, tt.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("Expected 400, got %d", w.Code)
			}
		})
	}
}

func TestCreateCheckoutSession_CreatesCustomerOnce(t *testing.T) {
	db := testutil.SetupDB(t)
	config.STRIPE_PRICE_ID = "price_test"

	fake := &fakePayments{}
	r := checkoutRouter(fake)

	user := testutil.CreateTestUser(t, db, "Ada", "a@b.com")
	body := map[string]interface{}{"userId": user.ID, "email": "a@b.com"}

	w := postCheckout(t, r, body)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp map[string]string
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["sessionId"] == "" {
		t.Errorf("Expected a session id")
	}

	// Second call reuses the persisted customer link.
	w = postCheckout(t, r, body)
	if w.Code != http.StatusOK {
		t.Fatalf("Second call: expected 200, got %d", w.Code)
	}

	if fake.customerCalls != 1 {
		t.Errorf("Expected exactly 1 customer creation, got %d", fake.customerCalls)
	}
	if fake.sessionCalls != 2 {
		t.Errorf("Expected 2 checkout sessions, got %d", fake.sessionCalls)
	}

	var stored users.User
	if err := db.First(&stored, user.ID).Error; err != nil {
		t.Fatalf("load user: %v", err)
	}
	if stored.StripeCustomerID == nil || *stored.StripeCustomerID != "cus_fake_1" {
		t.Errorf("Expected cached customer id cus_fake_1, got %v", stored.StripeCustomerID)
	}
}

func TestCreateCheckoutSession_UsesOriginForRedirects(t *testing.T) {
	db := testutil.SetupDB(t)
	config.STRIPE_PRICE_ID = "price_test"

	fake := &fakePayments{}
	r := checkoutRouter(fake)

	user := testutil.CreateTestUser(t, db, "Ada", "a@b.com")
	w := postCheckout(t, r, map[string]interface{}{"userId": user.ID, "email": "a@b.com"})
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}

	if fake.lastCheckout.SuccessURL != "http://localhost:3000/subscription?success=true" {
		t.Errorf("Unexpected success url: %s", fake.lastCheckout.SuccessURL)
	}
	if fake.lastCheckout.CancelURL != "http://localhost:3000/subscription?canceled=true" {
		t.Errorf("Unexpected cancel url: %s", fake.lastCheckout.CancelURL)
	}
	if fake.lastCheckout.PriceID != "price_test" {
		t.Errorf("Unexpected price id: %s", fake.lastCheckout.PriceID)
	}
}

func TestCreateCheckoutSession_UpstreamFailure(t *testing.T) {
	db := testutil.SetupDB(t)
	config.STRIPE_PRICE_ID = "price_test"

	user := testutil.CreateTestUser(t, db, "Ada", "a@b.com")

	t.Run("customer creation fails", func(t *testing.T) {
		r := checkoutRouter(&fakePayments{failCustomer: true})
		w := postCheckout(t, r, map[string]interface{}{"userId": user.ID, "email": "a@b.com"})
		if w.Code != http.StatusInternalServerError {
			t.Errorf("Expected 500, got %d", w.Code)
		}
	})

	t.Run("session creation fails", func(t *testing.T) {
		r := checkoutRouter(&fakePayments{failSession: true})
		w := postCheckout(t, r, map[string]interface{}{"userId": user.ID, "email": "a@b.com"})
		if w.Code != http.StatusInternalServerError {
			t.Errorf("Expected 500, got %d", w.Code)
		}
	})
}

func TestCreateCheckoutSession_NotConfigured(t *testing.T) {
	db := testutil.SetupDB(t)
	config.STRIPE_PRICE_ID = "price_test"

	user := testutil.CreateTestUser(t, db, "Ada", "a@b.com")

	r := checkoutRouter(nil)
	w := postCheckout(t, r, map[string]interface{}{"userId": user.ID, "email": "a@b.com"})
	if w.Code != http.StatusInternalServerError {
		t.Errorf("Expected 500 when Stripe is not configured, got %d", w.Code)
	}
}
