package calendar

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestFreeBusy_ParsesPerCalendarBusy(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/freeBusy" || r.Method != http.MethodPost {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"calendars": {
				"a@example.com": {"busy": [{"start": "2024-01-01T10:00:00Z", "end": "2024-01-01T10:30:00Z"}]},
				"b@example.com": {"busy": [{"start": "2024-01-01T11:00:00Z", "end": "2024-01-01T11:15:00Z"}]}
			}
		}`))
	}))
	defer srv.Close()

	client := NewClient("tok").WithBaseURL(srv.URL)
	busy, err := client.FreeBusy(context.Background(),
		[]string{"a@example.com", "b@example.com"},
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
	)
	if err != nil {
		t.Fatalf("FreeBusy error: %v", err)
	}
	if len(busy) != 2 {
		t.Fatalf("calendars = %d, want 2", len(busy))
	}
	if len(busy["a@example.com"]) != 1 || len(busy["b@example.com"]) != 1 {
		t.Fatalf("unexpected busy spans: %v", busy)
	}
	if !busy["a@example.com"][0].Start.Equal(time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)) {
		t.Fatalf("start = %v", busy["a@example.com"][0].Start)
	}
}

func TestEventCalls_MapGoneStatuses(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewClient("tok").WithBaseURL(srv.URL)
	if err := client.DeleteEvent(context.Background(), "primary", "ev1"); !errors.Is(err, ErrEventGone) {
		t.Fatalf("DeleteEvent err = %v, want ErrEventGone", err)
	}
	if _, err := client.GetEvent(context.Background(), "primary", "ev1"); !errors.Is(err, ErrEventGone) {
		t.Fatalf("GetEvent err = %v, want ErrEventGone", err)
	}
	if _, err := client.PatchEvent(context.Background(), "primary", "ev1", Event{}); !errors.Is(err, ErrEventGone) {
		t.Fatalf("PatchEvent err = %v, want ErrEventGone", err)
	}
}

func TestNonEventCalls_KeepNotFoundShape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error": {"message": "Not Found", "errors": [{"reason": "notFound"}]}}`))
	}))
	defer srv.Close()

	client := NewClient("tok").WithBaseURL(srv.URL)
	_, err := client.ListCalendars(context.Background())
	if errors.Is(err, ErrEventGone) {
		t.Fatalf("ListCalendars 404 must not read as a deleted event")
	}
	var perr *ProviderError
	if !errors.As(err, &perr) || perr.StatusCode != http.StatusNotFound {
		t.Fatalf("err = %v, want *ProviderError with status 404", err)
	}

	_, err = client.FreeBusy(context.Background(), []string{"primary"},
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
	)
	if errors.Is(err, ErrEventGone) {
		t.Fatalf("FreeBusy 404 must not read as a deleted event")
	}
}

func TestResponseError_ConflictReason(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"error": {"message": "The requested identifier already exists.", "errors": [{"reason": "duplicate"}]}}`))
	}))
	defer srv.Close()

	client := NewClient("tok").WithBaseURL(srv.URL)
	_, err := client.InsertEvent(context.Background(), "primary", Event{Summary: "x"})
	if err == nil {
		t.Fatalf("expected error")
	}
	if !IsConflict(err) {
		t.Fatalf("err = %v, want conflict", err)
	}

	var perr *ProviderError
	if !errors.As(err, &perr) {
		t.Fatalf("error type = %T, want *ProviderError", err)
	}
	if perr.Class() != ClassPermanent {
		t.Fatalf("conflict classified %v, want permanent", perr.Class())
	}
}

func TestProviderError_Classification(t *testing.T) {
	cases := []struct {
		err  *ProviderError
		want ErrorClass
	}{
		{&ProviderError{StatusCode: 500}, ClassTransient},
		{&ProviderError{StatusCode: 503}, ClassTransient},
		{&ProviderError{StatusCode: 400}, ClassPermanent},
		{&ProviderError{StatusCode: 403}, ClassPermanent},
		{&ProviderError{transport: true}, ClassTransient},
		{&ProviderError{}, ClassTransient},
	}
	for _, tc := range cases {
		if got := tc.err.Class(); got != tc.want {
			t.Fatalf("Class(%v) = %v, want %v", tc.err, got, tc.want)
		}
	}
}

func TestIsTransient(t *testing.T) {
	if !IsTransient(&ProviderError{StatusCode: 502}) {
		t.Fatalf("502 should be transient")
	}
	if IsTransient(&ProviderError{StatusCode: 409}) {
		t.Fatalf("409 should not be transient")
	}
	if IsTransient(errors.New("plain")) {
		t.Fatalf("plain errors are not provider errors")
	}
}

func TestListEvents_SendsBearerAndWindow(t *testing.T) {
	var gotAuth, gotTimeMin string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotTimeMin = r.URL.Query().Get("timeMin")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"items": [{"id": "ev1", "summary": "x", "start": {"dateTime": "2024-01-01T10:00:00Z"}, "end": {"dateTime": "2024-01-01T10:30:00Z"}}]}`))
	}))
	defer srv.Close()

	client := NewClient("tok-123").WithBaseURL(srv.URL)
	events, err := client.ListEvents(context.Background(), "primary",
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
	)
	if err != nil {
		t.Fatalf("ListEvents error: %v", err)
	}
	if gotAuth != "Bearer tok-123" {
		t.Fatalf("auth header = %q", gotAuth)
	}
	if gotTimeMin != "2024-01-01T00:00:00Z" {
		t.Fatalf("timeMin = %q", gotTimeMin)
	}
	if len(events) != 1 || events[0].ID != "ev1" {
		t.Fatalf("events = %v", events)
	}

	start, ok := events[0].StartTime()
	if !ok || !start.Equal(time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)) {
		t.Fatalf("start = %v ok=%v", start, ok)
	}
}

func TestEventTime_AllDayHasNoInstant(t *testing.T) {
	ev := Event{Start: EventDateTime{Date: "2024-01-01"}, End: EventDateTime{Date: "2024-01-02"}}
	if _, ok := ev.StartTime(); ok {
		t.Fatalf("all-day start must not parse to an instant")
	}
	if _, ok := ev.EndTime(); ok {
		t.Fatalf("all-day end must not parse to an instant")
	}
}
