package billing

import (
	"fmt"
	"log"
	"net/http"

	"focusdash-app/config"
	"focusdash-app/database"
	"focusdash-app/internal/domain/users"
	"focusdash-app/internal/infra/payments"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Payments payments.Client
}

func NewHandler(pc payments.Client) *Handler {
	return &Handler{Payments: pc}
}

// CreateCheckoutSession ensures the user has a Stripe customer, then opens a
// hosted checkout for the single premium price. Subscription state is never
// written here; that only happens on the webhook path.
func (h *Handler) CreateCheckoutSession(c *gin.Context) {
	var body struct {
		UserID uint   `json:"userId"`
		Email  string `json:"email"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.UserID == 0 || body.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	if h.Payments == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Stripe is not configured"})
		return
	}
	if config.STRIPE_PRICE_ID == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "STRIPE_PRICE_ID not configured"})
		return
	}

	var user users.User
	if err := database.DB.Where("id = ?", body.UserID).First(&user).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User not found"})
		return
	}

	// Create the Stripe customer lazily, once. The cached id short-circuits
	// every later call, so at most one customer is created per user; if
	// persisting the id fails the remote customer is orphaned and a retry
	// may create a duplicate, which Stripe tolerates.
	if user.StripeCustomerID == nil || *user.StripeCustomerID == "" {
		customerID, err := h.Payments.CreateCustomer(body.Email, map[string]string{
			"userId": fmt.Sprint(user.ID),
		})
		if err != nil {
			log.Println("stripe customer creation failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Stripe customer"})
			return
		}

		if err := database.DB.Model(&users.User{}).
			Where("id = ?", user.ID).
			Update("stripe_customer_id", customerID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store Stripe customer"})
			return
		}

		user.StripeCustomerID = &customerID
	}

	origin := c.GetHeader("Origin")
	if origin == "" {
		origin = config.APP_URL
	}

	sessionID, err := h.Payments.CreateCheckoutSession(payments.CheckoutParams{
		CustomerID: *user.StripeCustomerID,
		PriceID:    config.STRIPE_PRICE_ID,
		SuccessURL: origin + "/subscription?success=true",
		CancelURL:  origin + "/subscription?canceled=true",
		Metadata:   map[string]string{"userId": fmt.Sprint(user.ID)},
	})
	if err != nil {
		log.Println("checkout session creation failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create checkout session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"sessionId": sessionID})
}
