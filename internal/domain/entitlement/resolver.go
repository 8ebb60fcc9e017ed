package entitlement

import (
	"errors"

	"focusdash-app/internal/domain/billing"
	"focusdash-app/internal/domain/users"

	"gorm.io/gorm"
)

// StatusNone is reported when no subscription record exists for a user.
const StatusNone = "none"

// Premium says whether a stored subscription status unlocks premium
// features. Only an exactly "active" status does; "cancelled", any other
// Stripe-reported status, or no record at all resolve to free tier.
func Premium(status string) bool {
	return status == billing.StatusActive
}

// ResolveByEmail reads the subscription record for an email and returns the
// premium flag plus the stored status. A missing record is not an error.
func ResolveByEmail(db *gorm.DB, email string) (bool, string, error) {
	var rec billing.SubscriptionRecord
	err := db.Where("email = ?", email).First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, StatusNone, nil
		}
		return false, StatusNone, err
	}
	return Premium(rec.Status), rec.Status, nil
}

// ResolveForUser resolves entitlement for a user id by way of the user's
// email, since webhook-written records are keyed by email.
func ResolveForUser(db *gorm.DB, userID uint) (bool, string, error) {
	var user users.User
	if err := db.Where("id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, StatusNone, nil
		}
		return false, StatusNone, err
	}
	return ResolveByEmail(db, user.Email)
}
