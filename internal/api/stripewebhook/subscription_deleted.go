package stripewebhooks

import (
	"fmt"

	"focusdash-app/database"
	"focusdash-app/internal/domain/billing"

	"github.com/stripe/stripe-go/v75"
)

// handleSubscriptionDeleted marks the record cancelled. The row stays; a
// later checkout or update event can reactivate it.
func handleSubscriptionDeleted(sub *stripe.Subscription) error {
	if sub.ID == "" {
		return nil
	}

	res := database.DB.Model(&billing.SubscriptionRecord{}).
		Where("stripe_subscription_id = ?", sub.ID).
		Update("status", billing.StatusCancelled)
	if res.Error != nil {
		return fmt.Errorf("failed to cancel subscription %s: %w", sub.ID, res.Error)
	}

	return nil
}
