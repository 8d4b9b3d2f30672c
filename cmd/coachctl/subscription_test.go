package main

import (
	"strings"
	"testing"
	"time"
)

func TestBuildSubscription(t *testing.T) {
	t.Parallel()

	sub, err := buildSubscription("  Coach@Example.com ", "active", "", "2026-12-31T00:00:00+02:00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sub.Email != "coach@example.com" {
		t.Errorf("email = %q, want normalized", sub.Email)
	}
	if sub.Status != "ACTIVE" {
		t.Errorf("status = %q, want ACTIVE", sub.Status)
	}
	if sub.TrialEndsAt != nil {
		t.Errorf("trial end should be unset, got %v", sub.TrialEndsAt)
	}
	want := time.Date(2026, 12, 30, 22, 0, 0, 0, time.UTC)
	if sub.CurrentPeriodEnd == nil || !sub.CurrentPeriodEnd.Equal(want) {
		t.Errorf("period end = %v, want %v", sub.CurrentPeriodEnd, want)
	}
	if sub.CurrentPeriodEnd.Location() != time.UTC {
		t.Errorf("period end should be UTC, got %v", sub.CurrentPeriodEnd.Location())
	}
}

func TestBuildSubscription_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		email     string
		status    string
		trialEnds string
		wantSub   string
	}{
		{"missing email", "", "ACTIVE", "", "--email"},
		{"unknown status", "a@b.c", "GOLD", "", "--status"},
		{"bad trial end", "a@b.c", "TRIAL", "tomorrow", "--trial-ends"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := buildSubscription(tt.email, tt.status, tt.trialEnds, "")
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("error %q should mention %q", err.Error(), tt.wantSub)
			}
		})
	}
}
