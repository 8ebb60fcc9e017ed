package entitlement_test

import (
	"testing"

	"focusdash-app/internal/domain/billing"
	"focusdash-app/internal/domain/entitlement"
	"focusdash-app/internal/testutil"
)

func TestPremium(t *testing.T) {
	tests := []struct {
		status   string
		expected bool
	}{
		{billing.StatusActive, true},
		{billing.StatusCancelled, false},
		{"past_due", false},
		{"trialing", false},
		{"incomplete", false},
		{"", false},
		{"ACTIVE", false},
	}

	for _, tt := range tests {
		if got := entitlement.Premium(tt.status); got != tt.expected {
			t.Errorf("Premium(%q) = %v, want %v", tt.status, got, tt.expected)
		}
	}
}

func TestResolveByEmail_NoRecord(t *testing.T) {
	db := testutil.SetupDB(t)

	premium, status, err := entitlement.ResolveByEmail(db, "nobody@example.com")
	if err != nil {
		t.Fatalf("ResolveByEmail: %v", err)
	}
	if premium {
		t.Errorf("Expected premium=false without a record")
	}
	if status != entitlement.StatusNone {
		t.Errorf("Expected status %q, got %q", entitlement.StatusNone, status)
	}
}

func TestResolveByEmail_Statuses(t *testing.T) {
	db := testutil.SetupDB(t)

	rec := billing.SubscriptionRecord{
		Email:                "a@b.com",
		StripeSubscriptionID: "sub_1",
		Status:               billing.StatusActive,
	}
	if err := db.Create(&rec).Error; err != nil {
		t.Fatalf("create record: %v", err)
	}

	premium, status, err := entitlement.ResolveByEmail(db, "a@b.com")
	if err != nil {
		t.Fatalf("ResolveByEmail: %v", err)
	}
	if !premium || status != billing.StatusActive {
		t.Errorf("Expected active premium, got premium=%v status=%q", premium, status)
	}

	if err := db.Model(&rec).Update("status", billing.StatusCancelled).Error; err != nil {
		t.Fatalf("update record: %v", err)
	}

	premium, status, err = entitlement.ResolveByEmail(db, "a@b.com")
	if err != nil {
		t.Fatalf("ResolveByEmail: %v", err)
	}
	if premium {
		t.Errorf("Expected premium=false for cancelled record")
	}
	if status != billing.StatusCancelled {
		t.Errorf("Expected status %q, got %q", billing.StatusCancelled, status)
	}
}

func TestResolveForUser(t *testing.T) {
	db := testutil.SetupDB(t)

	user := testutil.CreateTestUser(t, db, "Ada", "ada@example.com")
	testutil.ActivateSubscription(t, db, "ada@example.com", "cus_1", "sub_1")

	premium, _, err := entitlement.ResolveForUser(db, user.ID)
	if err != nil {
		t.Fatalf("ResolveForUser: %v", err)
	}
	if !premium {
		t.Errorf("Expected premium=true for user with active record")
	}

	// Unknown user resolves to free tier, not an error.
	premium, status, err := entitlement.ResolveForUser(db, 9999)
	if err != nil {
		t.Fatalf("ResolveForUser unknown user: %v", err)
	}
	if premium || status != entitlement.StatusNone {
		t.Errorf("Expected free tier for unknown user, got premium=%v status=%q", premium, status)
	}
}
