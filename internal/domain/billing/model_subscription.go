package billing

import (
	"time"
)

// Subscription status values. Anything else is the Stripe-reported status
// mirrored verbatim by the webhook reconciler.
const (
	StatusActive    = "active"
	StatusCancelled = "cancelled"
)

// SubscriptionRecord is the stored entitlement state for an email address.
// Webhook payloads identify payers by email (checkout completion) or by
// subscription id (later lifecycle events), so both are indexed. Rows are
// never hard-deleted; cancellation is a status value.
type SubscriptionRecord struct {
	ID                   uint      `gorm:"primaryKey" json:"id"`
	Email                string    `gorm:"not null;uniqueIndex:idx_subscription_records_email" json:"email"`
	StripeCustomerID     string    `gorm:"column:stripe_customer_id" json:"-"`
	StripeSubscriptionID string    `gorm:"column:stripe_subscription_id;uniqueIndex:idx_subscription_records_stripe_subscription_id" json:"-"`
	Status               string    `gorm:"not null" json:"status"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}
