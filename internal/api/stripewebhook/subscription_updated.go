package stripewebhooks

import (
	"fmt"

	"focusdash-app/database"
	"focusdash-app/internal/domain/billing"

	"github.com/stripe/stripe-go/v75"
)

// handleSubscriptionUpdated mirrors the Stripe-reported status verbatim onto
// the matching record. A missing record is not an error: the completion
// event may simply not have arrived yet.
func handleSubscriptionUpdated(sub *stripe.Subscription) error {
	if sub.ID == "" {
		return nil
	}

	res := database.DB.Model(&billing.SubscriptionRecord{}).
		Where("stripe_subscription_id = ?", sub.ID).
		Update("status", string(sub.Status))
	if res.Error != nil {
		return fmt.Errorf("failed to update subscription %s: %w", sub.ID, res.Error)
	}

	return nil
}
