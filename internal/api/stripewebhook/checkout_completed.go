package stripewebhooks

import (
	"fmt"
	"log"

	"focusdash-app/database"
	"focusdash-app/internal/domain/billing"

	"github.com/stripe/stripe-go/v75"
	"gorm.io/gorm/clause"
)

// handleCheckoutSessionCompleted upserts the subscription record for the
// paying email, keyed by email so a re-purchase after cancellation reuses
// the same row. Sessions without an email are acknowledged without action.
func handleCheckoutSessionCompleted(session *stripe.CheckoutSession) error {
	email := session.CustomerEmail
	if email == "" && session.CustomerDetails != nil {
		email = session.CustomerDetails.Email
	}
	if email == "" {
		log.Printf("checkout session %s has no customer email, skipping", session.ID)
		return nil
	}

	var customerID string
	if session.Customer != nil {
		customerID = session.Customer.ID
	}
	var subscriptionID string
	if session.Subscription != nil {
		subscriptionID = session.Subscription.ID
	}

	rec := billing.SubscriptionRecord{
		Email:                email,
		StripeCustomerID:     customerID,
		StripeSubscriptionID: subscriptionID,
		Status:               billing.StatusActive,
	}

	err := database.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"stripe_customer_id", "stripe_subscription_id", "status", "updated_at",
		}),
	}).Create(&rec).Error
	if err != nil {
		return fmt.Errorf("failed to upsert subscription record: %w", err)
	}

	return nil
}
