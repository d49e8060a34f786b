package domain

import "testing"

func TestShowingStatus_Terminal(t *testing.T) {
	cases := []struct {
		status ShowingStatus
		want   bool
	}{
		{ShowingStatusScheduled, false},
		{ShowingStatusConfirmed, false},
		{ShowingStatusCompleted, true},
		{ShowingStatusCanceled, true},
	}
	for _, tc := range cases {
		if got := tc.status.Terminal(); got != tc.want {
			t.Fatalf("Terminal(%s) = %v, want %v", tc.status, got, tc.want)
		}
	}
}

func TestShowingStatus_CanTransitionTo(t *testing.T) {
	cases := []struct {
		from ShowingStatus
		to   ShowingStatus
		want bool
	}{
		{ShowingStatusScheduled, ShowingStatusConfirmed, true},
		{ShowingStatusScheduled, ShowingStatusCompleted, true},
		{ShowingStatusScheduled, ShowingStatusCanceled, true},
		{ShowingStatusConfirmed, ShowingStatusCompleted, true},
		{ShowingStatusConfirmed, ShowingStatusCanceled, true},
		{ShowingStatusConfirmed, ShowingStatusConfirmed, false},
		{ShowingStatusCompleted, ShowingStatusCanceled, false},
		{ShowingStatusCanceled, ShowingStatusScheduled, false},
		{ShowingStatusCanceled, ShowingStatusConfirmed, false},
		{ShowingStatusCompleted, ShowingStatusScheduled, false},
	}
	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.want {
			t.Fatalf("CanTransitionTo(%s -> %s) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestParseShowingStatus_RejectsUnknown(t *testing.T) {
	if _, err := ParseShowingStatus("scheduled"); err == nil {
		t.Fatalf("expected error for lowercase status")
	}
	if _, err := ParseShowingStatus("DELETED"); err == nil {
		t.Fatalf("expected error for unknown status")
	}
	got, err := ParseShowingStatus("CONFIRMED")
	if err != nil {
		t.Fatalf("ParseShowingStatus error: %v", err)
	}
	if got != ShowingStatusConfirmed {
		t.Fatalf("status = %q, want %q", got, ShowingStatusConfirmed)
	}
}
