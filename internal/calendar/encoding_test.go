package calendar

import "testing"

func TestEncodeDecodeSummary_RoundTrip(t *testing.T) {
	summary := EncodeSummary(ShowingDetails{LotLabel: "14B", ParkName: "Shady Grove"})
	if summary != "Property Showing - Lot 14B (Shady Grove)" {
		t.Fatalf("summary = %q", summary)
	}
	if !IsShowingSummary(summary) {
		t.Fatalf("summary not recognized as showing")
	}

	lot, park := DecodeSummary(summary)
	if lot != "14B" || park != "Shady Grove" {
		t.Fatalf("decoded (%q, %q), want (14B, Shady Grove)", lot, park)
	}
}

func TestDecodeSummary_WithoutPark(t *testing.T) {
	lot, park := DecodeSummary("Property Showing - Lot 7")
	if lot != "7" || park != "" {
		t.Fatalf("decoded (%q, %q), want (7, \"\")", lot, park)
	}
}

func TestDecodeSummary_NoLotReference(t *testing.T) {
	lot, park := DecodeSummary("Property Showing")
	if lot != "" || park != "" {
		t.Fatalf("decoded (%q, %q), want empty", lot, park)
	}
}

func TestMarkCompleted_Idempotent(t *testing.T) {
	summary := EncodeSummary(ShowingDetails{LotLabel: "3"})

	once := MarkCompleted(summary)
	twice := MarkCompleted(once)
	if once != twice {
		t.Fatalf("MarkCompleted not idempotent: %q vs %q", once, twice)
	}
	if !IsCompleted(once) {
		t.Fatalf("expected completed marker on %q", once)
	}
	if IsCompleted(summary) {
		t.Fatalf("unmarked summary reported completed")
	}

	lot, _ := DecodeSummary(once)
	if lot != "3" {
		t.Fatalf("lot after completion = %q, want 3", lot)
	}
}

func TestEncodeDecodeDescription_RoundTrip(t *testing.T) {
	in := ShowingDetails{
		ClientName:  "Dana Whitfield",
		ClientEmail: "dana@example.com",
		ClientPhone: "(555) 123-4567",
		Notes:       "second visit",
	}
	out := DecodeDescription(EncodeDescription(in))

	if out.ClientName != in.ClientName {
		t.Fatalf("name = %q, want %q", out.ClientName, in.ClientName)
	}
	if out.ClientEmail != in.ClientEmail {
		t.Fatalf("email = %q, want %q", out.ClientEmail, in.ClientEmail)
	}
	if out.ClientPhone == "" {
		t.Fatalf("phone not recovered from %q", EncodeDescription(in))
	}
	if out.Notes != in.Notes {
		t.Fatalf("notes = %q, want %q", out.Notes, in.Notes)
	}
}

func TestEncodeDecodeDescription_NoPhoneFabrication(t *testing.T) {
	// A digit run inside an email local part or a date inside the notes
	// must not come back as a phone number.
	in := ShowingDetails{
		ClientName:  "Dana Whitfield",
		ClientEmail: "dana.1234567890@example.com",
		Notes:       "re-show on 2024-01-01 10:00, gate code 4417",
	}
	out := DecodeDescription(EncodeDescription(in))

	if out.ClientPhone != "" {
		t.Fatalf("phone fabricated from %q: %q", EncodeDescription(in), out.ClientPhone)
	}
	if out.ClientEmail != in.ClientEmail {
		t.Fatalf("email = %q, want %q", out.ClientEmail, in.ClientEmail)
	}
	if out.Notes != in.Notes {
		t.Fatalf("notes = %q, want %q", out.Notes, in.Notes)
	}
}

func TestDecodeDescription_LabeledPhoneWins(t *testing.T) {
	desc := "Phone: 555-123-4567\ncallback also fine at 555.987.6543"
	out := DecodeDescription(desc)
	if out.ClientPhone != "555-123-4567" {
		t.Fatalf("phone = %q, want the labeled line", out.ClientPhone)
	}
}

func TestDecodeDescription_HandEditedBody(t *testing.T) {
	// Managers edit event bodies directly; extraction must not depend on
	// the labeled-line format.
	desc := "call dana.whitfield@example.org before, cell 555.987.6543 ok after 5pm"
	out := DecodeDescription(desc)
	if out.ClientEmail != "dana.whitfield@example.org" {
		t.Fatalf("email = %q", out.ClientEmail)
	}
	if out.ClientPhone == "" {
		t.Fatalf("phone not found in %q", desc)
	}
}

func TestExtractPhone_DelimiterVariants(t *testing.T) {
	cases := []string{
		"555-123-4567",
		"(555) 123 4567",
		"+1 555.123.4567",
		"5551234567",
	}
	for _, c := range cases {
		if got := ExtractPhone("Phone: " + c); got == "" {
			t.Fatalf("no phone extracted from %q", c)
		}
	}
	if got := ExtractPhone("suite 12, floor 3"); got != "" {
		t.Fatalf("short digit runs must not match, got %q", got)
	}
}

func TestAttendeeEmail_SkipsOrganizerAndDeclined(t *testing.T) {
	ev := Event{Attendees: []EventAttendee{
		{Email: "manager@example.com", Organizer: true},
		{Email: "gone@example.com", ResponseStatus: "declined"},
		{Email: "client@example.com", ResponseStatus: "needsAction"},
	}}
	if got := AttendeeEmail(ev); got != "client@example.com" {
		t.Fatalf("attendee email = %q, want client@example.com", got)
	}

	if got := AttendeeEmail(Event{}); got != "" {
		t.Fatalf("expected empty for no attendees, got %q", got)
	}
}
