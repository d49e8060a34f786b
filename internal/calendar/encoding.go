package calendar

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/mcnijman/go-emailaddress"
)

// Showing metadata travels inside the event summary and description
// because the provider has no custom per-event fields. Everything that
// writes or reads that convention lives in this file.

const (
	// SummaryMarker tags an event as a property showing.
	SummaryMarker = "Property Showing"

	// CompletedPrefix marks a held showing on the event summary.
	CompletedPrefix = "COMPLETED - "
)

// ShowingDetails is the structured payload round-tripped through the
// summary/description shim.
type ShowingDetails struct {
	LotLabel    string
	ParkName    string
	ClientName  string
	ClientEmail string
	ClientPhone string
	Notes       string
}

// EncodeSummary renders the human-readable event title carrying the
// showing marker and the lot reference.
func EncodeSummary(d ShowingDetails) string {
	summary := SummaryMarker
	if lot := strings.TrimSpace(d.LotLabel); lot != "" {
		summary += " - Lot " + lot
	}
	if park := strings.TrimSpace(d.ParkName); park != "" {
		summary += " (" + park + ")"
	}
	return summary
}

// EncodeDescription renders the free-text body with labeled client
// contact lines that DecodeDescription can pick back out.
func EncodeDescription(d ShowingDetails) string {
	var b strings.Builder
	if name := strings.TrimSpace(d.ClientName); name != "" {
		fmt.Fprintf(&b, "Client: %s\n", name)
	}
	if email := strings.TrimSpace(d.ClientEmail); email != "" {
		fmt.Fprintf(&b, "Email: %s\n", email)
	}
	if phone := strings.TrimSpace(d.ClientPhone); phone != "" {
		fmt.Fprintf(&b, "Phone: %s\n", phone)
	}
	if notes := strings.TrimSpace(d.Notes); notes != "" {
		fmt.Fprintf(&b, "Notes: %s\n", notes)
	}
	return strings.TrimRight(b.String(), "\n")
}

// IsShowingSummary reports whether an event summary follows the showing
// naming convention.
func IsShowingSummary(summary string) bool {
	return strings.Contains(summary, SummaryMarker) || strings.HasPrefix(summary, CompletedPrefix)
}

// IsCompleted reports whether the summary carries the completion marker.
func IsCompleted(summary string) bool {
	return strings.HasPrefix(summary, CompletedPrefix)
}

// MarkCompleted prefixes the completion marker. Calling it on an already
// marked summary returns it unchanged.
func MarkCompleted(summary string) string {
	if IsCompleted(summary) {
		return summary
	}
	return CompletedPrefix + summary
}

// StripCompleted removes the completion marker if present.
func StripCompleted(summary string) string {
	return strings.TrimPrefix(summary, CompletedPrefix)
}

var summaryLotPattern = regexp.MustCompile(`Lot\s+([^()]+?)(?:\s*\(([^)]+)\))?\s*$`)

// DecodeSummary extracts the lot label and park name encoded by
// EncodeSummary. Both come back empty when the summary does not carry a
// lot reference.
func DecodeSummary(summary string) (lotLabel, parkName string) {
	s := StripCompleted(strings.TrimSpace(summary))
	m := summaryLotPattern.FindStringSubmatch(s)
	if m == nil {
		return "", ""
	}
	return strings.TrimSpace(m[1]), strings.TrimSpace(m[2])
}

// DecodeDescription extracts client contact fields from an event body.
// The labeled-line format produced by EncodeDescription is preferred;
// email and phone fall back to pattern matches over the unlabeled text
// since managers edit these bodies by hand. Labeled lines never feed the
// fallbacks, so a date inside Notes or a digit-bearing email address
// cannot be mistaken for a phone number.
func DecodeDescription(description string) ShowingDetails {
	var d ShowingDetails
	var unlabeled []string
	for _, line := range strings.Split(description, "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(trimmed, "Client:"):
			d.ClientName = strings.TrimSpace(strings.TrimPrefix(trimmed, "Client:"))
		case strings.HasPrefix(trimmed, "Email:"):
			d.ClientEmail = ExtractEmail(trimmed)
		case strings.HasPrefix(trimmed, "Phone:"):
			d.ClientPhone = ExtractPhone(trimmed)
		case strings.HasPrefix(trimmed, "Notes:"):
			d.Notes = strings.TrimSpace(strings.TrimPrefix(trimmed, "Notes:"))
		default:
			unlabeled = append(unlabeled, line)
		}
	}

	free := strings.Join(unlabeled, "\n")
	if d.ClientEmail == "" {
		d.ClientEmail = ExtractEmail(free)
	}
	if d.ClientPhone == "" {
		d.ClientPhone = ExtractPhone(stripEmails(free))
	}
	return d
}

// ExtractEmail returns the first email-shaped substring in text.
func ExtractEmail(text string) string {
	found := emailaddress.Find([]byte(text), false)
	if len(found) == 0 {
		return ""
	}
	return found[0].String()
}

// stripEmails blanks every email address in text so digit runs inside an
// address local part are never offered to the phone matcher.
func stripEmails(text string) string {
	for _, e := range emailaddress.Find([]byte(text), false) {
		text = strings.ReplaceAll(text, e.String(), "")
	}
	return text
}

var phonePattern = regexp.MustCompile(`\+?\d[\d\s().-]{5,}\d`)

// ExtractPhone returns the first delimiter-tolerant group of at least
// seven digits in text.
func ExtractPhone(text string) string {
	for _, candidate := range phonePattern.FindAllString(text, -1) {
		digits := 0
		for _, r := range candidate {
			if r >= '0' && r <= '9' {
				digits++
			}
		}
		if digits >= 7 {
			return strings.TrimSpace(candidate)
		}
	}
	return ""
}

// AttendeeEmail returns the first attendee who is plausibly the client:
// not the organizer, not the calendar owner, and not declined.
func AttendeeEmail(ev Event) string {
	for _, a := range ev.Attendees {
		if a.Organizer || a.Self {
			continue
		}
		if a.ResponseStatus == "declined" {
			continue
		}
		if a.Email != "" {
			return a.Email
		}
	}
	return ""
}
