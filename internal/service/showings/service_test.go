package showings

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"parkpilot/internal/calendar"
	"parkpilot/internal/domain"
	"parkpilot/internal/store"
)

type memShowingRepo struct {
	mu      sync.Mutex
	rows    map[uuid.UUID]domain.Showing
	creates int
	deletes int
}

func newMemShowingRepo() *memShowingRepo {
	return &memShowingRepo{rows: make(map[uuid.UUID]domain.Showing)}
}

func (r *memShowingRepo) Create(ctx context.Context, showing domain.Showing) (domain.Showing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.creates++
	if showing.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return domain.Showing{}, err
		}
		showing.ID = id
	}
	if showing.Status == "" {
		showing.Status = domain.ShowingStatusScheduled
	}
	r.rows[showing.ID] = showing
	return showing, nil
}

func (r *memShowingRepo) Get(ctx context.Context, id uuid.UUID) (domain.Showing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[id]
	if !ok {
		return domain.Showing{}, store.ErrNotFound
	}
	return row, nil
}

func (r *memShowingRepo) Update(ctx context.Context, showing domain.Showing) (domain.Showing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[showing.ID]; !ok {
		return domain.Showing{}, store.ErrNotFound
	}
	r.rows[showing.ID] = showing
	return showing, nil
}

func (r *memShowingRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[id]; !ok {
		return store.ErrNotFound
	}
	r.deletes++
	delete(r.rows, id)
	return nil
}

func (r *memShowingRepo) ListForManager(ctx context.Context, managerID string, windowStart, windowEnd time.Time) ([]domain.Showing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Showing
	for _, row := range r.rows {
		if row.ManagerID != managerID {
			continue
		}
		if !row.StartTime.Before(windowEnd) || !windowStart.Before(row.EndTime) {
			continue
		}
		out = append(out, row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
	return out, nil
}

type memParkRepo struct {
	lots        map[uuid.UUID]domain.Lot
	assignments map[uuid.UUID][]domain.ManagerAssignment
}

func (r *memParkRepo) GetLot(ctx context.Context, lotID uuid.UUID) (domain.Lot, error) {
	lot, ok := r.lots[lotID]
	if !ok {
		return domain.Lot{}, store.ErrNotFound
	}
	return lot, nil
}

func (r *memParkRepo) ListManagerAssignments(ctx context.Context, parkID uuid.UUID) ([]domain.ManagerAssignment, error) {
	return r.assignments[parkID], nil
}

type fakeTokens struct {
	connected map[string]bool
	tokens    map[string]string
	tokenErr  error
}

func (f *fakeTokens) AccessToken(ctx context.Context, userID string) (string, error) {
	if f.tokenErr != nil {
		return "", f.tokenErr
	}
	return f.tokens[userID], nil
}

func (f *fakeTokens) IsConnected(ctx context.Context, userID string) (bool, error) {
	return f.connected[userID], nil
}

type fakeChecker struct {
	conflict bool
	err      error
	calls    int
}

func (f *fakeChecker) CheckConflict(ctx context.Context, userID string, start, end time.Time) (bool, error) {
	f.calls++
	return f.conflict, f.err
}

type fixture struct {
	svc      *Service
	showings *memShowingRepo
	parks    *memParkRepo
	tokens   *fakeTokens
	checker  *fakeChecker
	lotID    uuid.UUID
	parkID   uuid.UUID
}

const testManagerID = "mgr-1"

func newFixture(t *testing.T, handler http.Handler, connected bool) *fixture {
	t.Helper()

	baseURL := ""
	if handler != nil {
		srv := httptest.NewServer(handler)
		t.Cleanup(srv.Close)
		baseURL = srv.URL
	}

	parkID := uuid.New()
	lotID := uuid.New()
	parks := &memParkRepo{
		lots: map[uuid.UUID]domain.Lot{
			lotID: {ID: lotID, ParkID: parkID, Label: "14B", ParkName: "Shady Grove"},
		},
		assignments: map[uuid.UUID][]domain.ManagerAssignment{
			parkID: {{ID: uuid.New(), ParkID: parkID, ManagerID: testManagerID}},
		},
	}
	tokens := &fakeTokens{
		connected: map[string]bool{testManagerID: connected},
		tokens:    map[string]string{testManagerID: "tok"},
	}
	showings := newMemShowingRepo()
	checker := &fakeChecker{}

	return &fixture{
		svc:      NewServiceWithBaseURL(showings, parks, tokens, checker, slog.New(slog.NewTextHandler(io.Discard, nil)), baseURL),
		showings: showings,
		parks:    parks,
		tokens:   tokens,
		checker:  checker,
		lotID:    lotID,
		parkID:   parkID,
	}
}

func bookInput(f *fixture) BookInput {
	return BookInput{
		LotID:       f.lotID,
		ClientName:  "Dana Whitfield",
		ClientEmail: "dana@example.com",
		ClientPhone: "(555) 123-4567",
		StartTime:   time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC),
		EndTime:     time.Date(2024, 3, 4, 10, 30, 0, 0, time.UTC),
	}
}

func eventJSON(t *testing.T, w http.ResponseWriter, ev calendar.Event) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(ev); err != nil {
		t.Fatalf("encode event: %v", err)
	}
}

func TestBook_PreCheckConflictCreatesNoRow(t *testing.T) {
	f := newFixture(t, nil, true)
	f.checker.conflict = true

	_, err := f.svc.Book(context.Background(), bookInput(f))
	if !errors.Is(err, ErrSlotConflict) {
		t.Fatalf("err = %v, want ErrSlotConflict", err)
	}
	if f.showings.creates != 0 {
		t.Fatalf("row created despite pre-check conflict")
	}
}

func TestBook_ProviderConflictRollsBack(t *testing.T) {
	f := newFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"error": {"message": "conflict", "errors": [{"reason": "duplicate"}]}}`))
	}), true)

	_, err := f.svc.Book(context.Background(), bookInput(f))
	if !errors.Is(err, ErrSlotConflict) {
		t.Fatalf("err = %v, want ErrSlotConflict", err)
	}
	if f.showings.creates != 1 || f.showings.deletes != 1 {
		t.Fatalf("creates=%d deletes=%d, want row created then rolled back", f.showings.creates, f.showings.deletes)
	}
	if len(f.showings.rows) != 0 {
		t.Fatalf("orphan row remains after rollback")
	}
}

func TestBook_DisconnectedManagerSkipsCalendar(t *testing.T) {
	f := newFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("calendar must not be called for a disconnected manager")
	}), false)

	showing, err := f.svc.Book(context.Background(), bookInput(f))
	if err != nil {
		t.Fatalf("Book error: %v", err)
	}
	if f.checker.calls != 0 {
		t.Fatalf("conflict check ran with no connected calendar")
	}
	if showing.Status != domain.ShowingStatusScheduled {
		t.Fatalf("status = %v, want SCHEDULED", showing.Status)
	}
	if showing.CalendarEventID != "" || showing.CalendarSyncError {
		t.Fatalf("disconnected booking must carry no mirror state: %+v", showing)
	}
}

func TestBook_MirrorFailureKeepsBooking(t *testing.T) {
	f := newFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}), true)

	showing, err := f.svc.Book(context.Background(), bookInput(f))
	if err != nil {
		t.Fatalf("Book error: %v", err)
	}
	if !showing.CalendarSyncError {
		t.Fatalf("sync error flag not set after mirror failure")
	}
	if showing.CalendarEventID != "" {
		t.Fatalf("event id set despite failed mirror write")
	}
	if len(f.showings.rows) != 1 {
		t.Fatalf("booking lost after mirror failure")
	}
}

func TestBook_MirrorsEvent(t *testing.T) {
	var inserted calendar.Event
	f := newFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("unexpected %s %s", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&inserted); err != nil {
			t.Fatalf("decode insert body: %v", err)
		}
		inserted.ID = "ev-1"
		inserted.HTMLLink = "https://calendar.example/ev-1"
		eventJSON(t, w, inserted)
	}), true)

	showing, err := f.svc.Book(context.Background(), bookInput(f))
	if err != nil {
		t.Fatalf("Book error: %v", err)
	}
	if showing.CalendarEventID != "ev-1" {
		t.Fatalf("event id = %q", showing.CalendarEventID)
	}
	if showing.CalendarHTMLLink != "https://calendar.example/ev-1" {
		t.Fatalf("html link = %q", showing.CalendarHTMLLink)
	}

	if !calendar.IsShowingSummary(inserted.Summary) {
		t.Fatalf("summary %q lacks the showing marker", inserted.Summary)
	}
	lotLabel, parkName := calendar.DecodeSummary(inserted.Summary)
	if lotLabel != "14B" || parkName != "Shady Grove" {
		t.Fatalf("summary decoded to %q/%q", lotLabel, parkName)
	}
	if len(inserted.Attendees) != 1 || inserted.Attendees[0].Email != "dana@example.com" {
		t.Fatalf("attendees = %v", inserted.Attendees)
	}
}

func TestBook_Validation(t *testing.T) {
	f := newFixture(t, nil, false)

	cases := []struct {
		name string
		mut  func(*BookInput)
	}{
		{"empty client name", func(in *BookInput) { in.ClientName = "  " }},
		{"missing lot", func(in *BookInput) { in.LotID = uuid.Nil }},
		{"inverted window", func(in *BookInput) { in.StartTime, in.EndTime = in.EndTime, in.StartTime }},
		{"zero-length window", func(in *BookInput) { in.EndTime = in.StartTime }},
		{"too long", func(in *BookInput) { in.EndTime = in.StartTime.Add(25 * time.Hour) }},
	}
	for _, tc := range cases {
		in := bookInput(f)
		tc.mut(&in)
		_, err := f.svc.Book(context.Background(), in)
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("%s: err = %v, want ValidationError", tc.name, err)
		}
	}
}

func TestConfirm(t *testing.T) {
	f := newFixture(t, nil, false)

	booked, err := f.svc.Book(context.Background(), bookInput(f))
	if err != nil {
		t.Fatalf("Book error: %v", err)
	}

	confirmed, err := f.svc.Confirm(context.Background(), booked.ID)
	if err != nil {
		t.Fatalf("Confirm error: %v", err)
	}
	if confirmed.Status != domain.ShowingStatusConfirmed {
		t.Fatalf("status = %v, want CONFIRMED", confirmed.Status)
	}

	again, err := f.svc.Confirm(context.Background(), booked.ID)
	if err != nil {
		t.Fatalf("repeat Confirm error: %v", err)
	}
	if again.Status != domain.ShowingStatusConfirmed {
		t.Fatalf("repeat Confirm status = %v", again.Status)
	}

	if _, err := f.svc.Cancel(context.Background(), booked.ID); err != nil {
		t.Fatalf("Cancel error: %v", err)
	}
	if _, err := f.svc.Confirm(context.Background(), booked.ID); !errors.Is(err, ErrTerminalStatus) {
		t.Fatalf("Confirm after Cancel = %v, want ErrTerminalStatus", err)
	}
}

func TestCancel_ToleratesDeletedEvent(t *testing.T) {
	f := newFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}), true)

	booked, err := f.showings.Create(context.Background(), domain.Showing{
		LotID:           f.lotID,
		ManagerID:       testManagerID,
		ClientName:      "Dana Whitfield",
		StartTime:       time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC),
		EndTime:         time.Date(2024, 3, 4, 10, 30, 0, 0, time.UTC),
		Status:          domain.ShowingStatusScheduled,
		CalendarEventID: "ev-gone",
	})
	if err != nil {
		t.Fatalf("seed showing: %v", err)
	}

	canceled, err := f.svc.Cancel(context.Background(), booked.ID)
	if err != nil {
		t.Fatalf("Cancel error: %v", err)
	}
	if canceled.Status != domain.ShowingStatusCanceled {
		t.Fatalf("status = %v, want CANCELED", canceled.Status)
	}
	if canceled.CalendarSyncError {
		t.Fatalf("an already-deleted event is not a sync failure")
	}
}

func TestCancel_FlagsFailedEventDelete(t *testing.T) {
	f := newFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}), true)

	booked, err := f.showings.Create(context.Background(), domain.Showing{
		LotID:           f.lotID,
		ManagerID:       testManagerID,
		ClientName:      "Dana Whitfield",
		StartTime:       time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC),
		EndTime:         time.Date(2024, 3, 4, 10, 30, 0, 0, time.UTC),
		Status:          domain.ShowingStatusScheduled,
		CalendarEventID: "ev-1",
	})
	if err != nil {
		t.Fatalf("seed showing: %v", err)
	}

	canceled, err := f.svc.Cancel(context.Background(), booked.ID)
	if err != nil {
		t.Fatalf("Cancel error: %v", err)
	}
	if canceled.Status != domain.ShowingStatusCanceled {
		t.Fatalf("local cancel must win over a failed mirror delete, status = %v", canceled.Status)
	}
	if !canceled.CalendarSyncError {
		t.Fatalf("sync error flag not set after failed mirror delete")
	}
}

func TestComplete_MarksEventOnce(t *testing.T) {
	summary := calendar.EncodeSummary(calendar.ShowingDetails{LotLabel: "14B", ParkName: "Shady Grove"})
	var patches int
	var patched calendar.Event
	f := newFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			eventJSON(t, w, calendar.Event{ID: "ev-1", Summary: summary})
		case http.MethodPatch:
			patches++
			if err := json.NewDecoder(r.Body).Decode(&patched); err != nil {
				t.Fatalf("decode patch: %v", err)
			}
			summary = patched.Summary
			eventJSON(t, w, patched)
		default:
			t.Fatalf("unexpected %s %s", r.Method, r.URL.Path)
		}
	}), true)

	booked, err := f.showings.Create(context.Background(), domain.Showing{
		LotID:           f.lotID,
		ManagerID:       testManagerID,
		ClientName:      "Dana Whitfield",
		StartTime:       time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC),
		EndTime:         time.Date(2024, 3, 4, 10, 30, 0, 0, time.UTC),
		Status:          domain.ShowingStatusScheduled,
		CalendarEventID: "ev-1",
	})
	if err != nil {
		t.Fatalf("seed showing: %v", err)
	}

	completed, err := f.svc.Complete(context.Background(), booked.ID)
	if err != nil {
		t.Fatalf("Complete error: %v", err)
	}
	if completed.Status != domain.ShowingStatusCompleted {
		t.Fatalf("status = %v, want COMPLETED", completed.Status)
	}
	if patches != 1 {
		t.Fatalf("patches = %d, want 1", patches)
	}
	if !calendar.IsCompleted(patched.Summary) {
		t.Fatalf("patched summary %q lacks completion marker", patched.Summary)
	}

	// A second Complete is a no-op both locally and against the calendar.
	if _, err := f.svc.Complete(context.Background(), booked.ID); err != nil {
		t.Fatalf("repeat Complete error: %v", err)
	}
	if patches != 1 {
		t.Fatalf("repeat Complete re-patched the event")
	}
}

func TestComplete_SkipsAlreadyMarkedEvent(t *testing.T) {
	summary := calendar.MarkCompleted(calendar.EncodeSummary(calendar.ShowingDetails{LotLabel: "14B"}))
	f := newFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Fatalf("unexpected %s %s", r.Method, r.URL.Path)
		}
		eventJSON(t, w, calendar.Event{ID: "ev-1", Summary: summary})
	}), true)

	booked, err := f.showings.Create(context.Background(), domain.Showing{
		LotID:           f.lotID,
		ManagerID:       testManagerID,
		ClientName:      "Dana Whitfield",
		StartTime:       time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC),
		EndTime:         time.Date(2024, 3, 4, 10, 30, 0, 0, time.UTC),
		Status:          domain.ShowingStatusScheduled,
		CalendarEventID: "ev-1",
	})
	if err != nil {
		t.Fatalf("seed showing: %v", err)
	}

	completed, err := f.svc.Complete(context.Background(), booked.ID)
	if err != nil {
		t.Fatalf("Complete error: %v", err)
	}
	if completed.Status != domain.ShowingStatusCompleted {
		t.Fatalf("status = %v, want COMPLETED", completed.Status)
	}
}

func TestListWindow_CalendarAuthoritative(t *testing.T) {
	windowStart := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	windowEnd := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)

	mirrored := calendar.Event{
		ID: "ev-mirrored",
		Summary: calendar.MarkCompleted(calendar.EncodeSummary(calendar.ShowingDetails{
			LotLabel: "14B", ParkName: "Shady Grove",
		})),
		Description: calendar.EncodeDescription(calendar.ShowingDetails{
			ClientName: "Dana Whitfield", ClientEmail: "dana@example.com",
		}),
		Start: calendar.EventDateTime{DateTime: "2024-03-04T10:00:00Z"},
		End:   calendar.EventDateTime{DateTime: "2024-03-04T10:30:00Z"},
	}
	orphan := calendar.Event{
		ID:      "ev-orphan",
		Summary: calendar.EncodeSummary(calendar.ShowingDetails{LotLabel: "7A", ParkName: "Riverbend"}),
		Description: calendar.EncodeDescription(calendar.ShowingDetails{
			ClientName: "Lee Okafor", ClientEmail: "lee@example.com",
		}),
		Start: calendar.EventDateTime{DateTime: "2024-03-04T12:00:00Z"},
		End:   calendar.EventDateTime{DateTime: "2024-03-04T12:30:00Z"},
	}
	unrelated := calendar.Event{
		ID:      "ev-unrelated",
		Summary: "Dentist",
		Start:   calendar.EventDateTime{DateTime: "2024-03-04T09:00:00Z"},
		End:     calendar.EventDateTime{DateTime: "2024-03-04T09:30:00Z"},
	}

	f := newFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string]any{
			"items": []calendar.Event{unrelated, mirrored, orphan},
		}); err != nil {
			t.Fatalf("encode events: %v", err)
		}
	}), true)

	seed := func(s domain.Showing) domain.Showing {
		t.Helper()
		row, err := f.showings.Create(context.Background(), s)
		if err != nil {
			t.Fatalf("seed showing: %v", err)
		}
		return row
	}

	mirroredRow := seed(domain.Showing{
		LotID: f.lotID, ManagerID: testManagerID, ClientName: "Dana Whitfield",
		StartTime: time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2024, 3, 4, 10, 30, 0, 0, time.UTC),
		Status:    domain.ShowingStatusConfirmed, CalendarEventID: "ev-mirrored",
	})
	localOnly := seed(domain.Showing{
		LotID: f.lotID, ManagerID: testManagerID, ClientName: "Sam Ruiz",
		StartTime: time.Date(2024, 3, 4, 15, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2024, 3, 4, 15, 30, 0, 0, time.UTC),
		Status:    domain.ShowingStatusScheduled,
	})
	seed(domain.Showing{
		LotID: f.lotID, ManagerID: testManagerID, ClientName: "Gone Upstream",
		StartTime: time.Date(2024, 3, 4, 16, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2024, 3, 4, 16, 30, 0, 0, time.UTC),
		Status:    domain.ShowingStatusScheduled, CalendarEventID: "ev-deleted-upstream",
	})

	items, err := f.svc.ListWindow(context.Background(), testManagerID, windowStart, windowEnd)
	if err != nil {
		t.Fatalf("ListWindow error: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("items = %d, want 3 (mirrored, orphan, local-only)", len(items))
	}

	for i := 1; i < len(items); i++ {
		if items[i].Showing.StartTime.Before(items[i-1].Showing.StartTime) {
			t.Fatalf("items not sorted ascending by start time")
		}
	}

	first := items[0]
	if first.Showing.ID != mirroredRow.ID || first.CalendarOnly {
		t.Fatalf("first item should be the joined local row: %+v", first)
	}
	if first.Showing.Status != domain.ShowingStatusCompleted {
		t.Fatalf("completion marker must drive status, got %v", first.Showing.Status)
	}
	if first.LotLabel != "14B" || first.ParkName != "Shady Grove" {
		t.Fatalf("lot data = %q/%q", first.LotLabel, first.ParkName)
	}

	second := items[1]
	if !second.CalendarOnly {
		t.Fatalf("orphan event should render as calendar-only: %+v", second)
	}
	if second.Showing.ID != uuid.Nil {
		t.Fatalf("calendar-only item carries a row id")
	}
	if second.LotLabel != "7A" || second.ParkName != "Riverbend" {
		t.Fatalf("placeholder lot data = %q/%q", second.LotLabel, second.ParkName)
	}
	if second.Showing.ClientEmail != "lee@example.com" {
		t.Fatalf("client email = %q", second.Showing.ClientEmail)
	}

	third := items[2]
	if third.Showing.ID != localOnly.ID {
		t.Fatalf("unmirrored local row missing from the window")
	}

	for _, item := range items {
		if item.Showing.CalendarEventID == "ev-deleted-upstream" {
			t.Fatalf("row with an upstream-deleted event must not resurface")
		}
	}
}

func TestListWindow_DisconnectedListsLocal(t *testing.T) {
	f := newFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("calendar must not be called when disconnected")
	}), false)

	row, err := f.showings.Create(context.Background(), domain.Showing{
		LotID: f.lotID, ManagerID: testManagerID, ClientName: "Dana Whitfield",
		StartTime: time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2024, 3, 4, 10, 30, 0, 0, time.UTC),
		Status:    domain.ShowingStatusScheduled,
	})
	if err != nil {
		t.Fatalf("seed showing: %v", err)
	}

	items, err := f.svc.ListWindow(context.Background(), testManagerID,
		time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
	)
	if err != nil {
		t.Fatalf("ListWindow error: %v", err)
	}
	if len(items) != 1 || items[0].Showing.ID != row.ID {
		t.Fatalf("items = %+v, want the stored row", items)
	}
	if items[0].LotLabel != "14B" {
		t.Fatalf("lot label = %q", items[0].LotLabel)
	}
}

func TestListWindow_TokenOutageFallsBackToLocal(t *testing.T) {
	f := newFixture(t, nil, true)
	f.tokens.tokenErr = errors.New("token refresh unavailable")

	row, err := f.showings.Create(context.Background(), domain.Showing{
		LotID: f.lotID, ManagerID: testManagerID, ClientName: "Dana Whitfield",
		StartTime: time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2024, 3, 4, 10, 30, 0, 0, time.UTC),
		Status:    domain.ShowingStatusScheduled, CalendarEventID: "ev-1",
	})
	if err != nil {
		t.Fatalf("seed showing: %v", err)
	}

	items, err := f.svc.ListWindow(context.Background(), testManagerID,
		time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
	)
	if err != nil {
		t.Fatalf("ListWindow error: %v", err)
	}
	if len(items) != 1 || items[0].Showing.ID != row.ID {
		t.Fatalf("degraded listing should fall back to stored rows: %+v", items)
	}
}
