// Package calendar talks to the Google Calendar v3 REST surface. A Client
// is a value built from a freshly resolved access token and is meant to
// live for a single call chain; nothing in here is shared across requests.
package calendar

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/oauth2"

	"parkpilot/internal/domain"
)

const (
	defaultBaseURL = "https://www.googleapis.com/calendar/v3"

	// PrimaryCalendarID is the provider alias for the user's own calendar.
	PrimaryCalendarID = "primary"
)

type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient builds a single-use client around a bearer token.
func NewClient(accessToken string) Client {
	hc := oauth2.NewClient(context.Background(), oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken}))
	hc.Timeout = 15 * time.Second
	return Client{
		httpClient: hc,
		baseURL:    defaultBaseURL,
	}
}

// WithBaseURL points the client at a different endpoint, used by tests.
func (c Client) WithBaseURL(baseURL string) Client {
	if baseURL != "" {
		c.baseURL = baseURL
	}
	return c
}

// CalendarListEntry is one calendar the user can see, with their access
// role on it.
type CalendarListEntry struct {
	ID         string `json:"id"`
	Summary    string `json:"summary"`
	AccessRole string `json:"accessRole"`
	Primary    bool   `json:"primary"`
}

type EventDateTime struct {
	DateTime string `json:"dateTime,omitempty"`
	Date     string `json:"date,omitempty"`
	TimeZone string `json:"timeZone,omitempty"`
}

type EventAttendee struct {
	Email          string `json:"email,omitempty"`
	Organizer      bool   `json:"organizer,omitempty"`
	Self           bool   `json:"self,omitempty"`
	ResponseStatus string `json:"responseStatus,omitempty"`
}

type Event struct {
	ID           string          `json:"id,omitempty"`
	Status       string          `json:"status,omitempty"`
	Summary      string          `json:"summary,omitempty"`
	Description  string          `json:"description,omitempty"`
	HTMLLink     string          `json:"htmlLink,omitempty"`
	Transparency string          `json:"transparency,omitempty"`
	Start        EventDateTime   `json:"start,omitempty"`
	End          EventDateTime   `json:"end,omitempty"`
	Attendees    []EventAttendee `json:"attendees,omitempty"`
}

// StartTime returns the concrete start instant, or false for all-day
// placeholders that only carry a date.
func (e Event) StartTime() (time.Time, bool) {
	return parseEventTime(e.Start)
}

func (e Event) EndTime() (time.Time, bool) {
	return parseEventTime(e.End)
}

func parseEventTime(dt EventDateTime) (time.Time, bool) {
	if dt.DateTime == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, dt.DateTime)
	if err != nil {
		return time.Time{}, false
	}
	return t.UTC(), true
}

func (c Client) ListCalendars(ctx context.Context) ([]CalendarListEntry, error) {
	var out struct {
		Items []CalendarListEntry `json:"items"`
	}
	if err := c.do(ctx, http.MethodGet, "/users/me/calendarList", nil, &out); err != nil {
		return nil, err
	}
	return out.Items, nil
}

func (c Client) ListEvents(ctx context.Context, calendarID string, windowStart, windowEnd time.Time) ([]Event, error) {
	q := url.Values{}
	q.Set("timeMin", windowStart.UTC().Format(time.RFC3339))
	q.Set("timeMax", windowEnd.UTC().Format(time.RFC3339))
	q.Set("singleEvents", "true")
	q.Set("orderBy", "startTime")
	q.Set("maxResults", "250")

	path := fmt.Sprintf("/calendars/%s/events?%s", url.PathEscape(calendarID), q.Encode())
	var out struct {
		Items []Event `json:"items"`
	}
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out.Items, nil
}

func (c Client) GetEvent(ctx context.Context, calendarID, eventID string) (Event, error) {
	path := fmt.Sprintf("/calendars/%s/events/%s", url.PathEscape(calendarID), url.PathEscape(eventID))
	var out Event
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return Event{}, goneAsSentinel(err)
	}
	return out, nil
}

func (c Client) InsertEvent(ctx context.Context, calendarID string, event Event) (Event, error) {
	path := fmt.Sprintf("/calendars/%s/events", url.PathEscape(calendarID))
	var out Event
	if err := c.do(ctx, http.MethodPost, path, event, &out); err != nil {
		return Event{}, err
	}
	return out, nil
}

func (c Client) PatchEvent(ctx context.Context, calendarID, eventID string, patch Event) (Event, error) {
	path := fmt.Sprintf("/calendars/%s/events/%s", url.PathEscape(calendarID), url.PathEscape(eventID))
	var out Event
	if err := c.do(ctx, http.MethodPatch, path, patch, &out); err != nil {
		return Event{}, goneAsSentinel(err)
	}
	return out, nil
}

func (c Client) DeleteEvent(ctx context.Context, calendarID, eventID string) error {
	path := fmt.Sprintf("/calendars/%s/events/%s", url.PathEscape(calendarID), url.PathEscape(eventID))
	return goneAsSentinel(c.do(ctx, http.MethodDelete, path, nil, nil))
}

// goneAsSentinel folds 404 and 410 responses into ErrEventGone. It is only
// applied to calls addressing a single event; a 404 from any other endpoint
// means something else (an unknown calendar, a bad route) and keeps its
// ProviderError shape.
func goneAsSentinel(err error) error {
	var perr *ProviderError
	if errors.As(err, &perr) {
		if perr.StatusCode == http.StatusNotFound || perr.StatusCode == http.StatusGone {
			return ErrEventGone
		}
	}
	return err
}

// FreeBusy issues one aggregated query across calendarIDs and returns the
// busy spans reported per calendar.
func (c Client) FreeBusy(ctx context.Context, calendarIDs []string, windowStart, windowEnd time.Time) (map[string][]domain.Interval, error) {
	type item struct {
		ID string `json:"id"`
	}
	req := struct {
		TimeMin string `json:"timeMin"`
		TimeMax string `json:"timeMax"`
		Items   []item `json:"items"`
	}{
		TimeMin: windowStart.UTC().Format(time.RFC3339),
		TimeMax: windowEnd.UTC().Format(time.RFC3339),
	}
	for _, id := range calendarIDs {
		req.Items = append(req.Items, item{ID: id})
	}

	var out struct {
		Calendars map[string]struct {
			Busy []struct {
				Start string `json:"start"`
				End   string `json:"end"`
			} `json:"busy"`
			Errors []struct {
				Reason string `json:"reason"`
			} `json:"errors"`
		} `json:"calendars"`
	}
	if err := c.do(ctx, http.MethodPost, "/freeBusy", req, &out); err != nil {
		return nil, err
	}

	result := make(map[string][]domain.Interval, len(out.Calendars))
	for id, cal := range out.Calendars {
		for _, b := range cal.Busy {
			start, err := time.Parse(time.RFC3339, b.Start)
			if err != nil {
				continue
			}
			end, err := time.Parse(time.RFC3339, b.End)
			if err != nil {
				continue
			}
			result[id] = append(result[id], domain.Interval{Start: start.UTC(), End: end.UTC()})
		}
	}
	return result, nil
}

func (c Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &ProviderError{Message: err.Error(), transport: true}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return responseError(resp)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func responseError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))

	perr := &ProviderError{StatusCode: resp.StatusCode}
	var body struct {
		Error struct {
			Message string `json:"message"`
			Errors  []struct {
				Reason string `json:"reason"`
			} `json:"errors"`
		} `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err == nil {
		perr.Message = body.Error.Message
		if len(body.Error.Errors) > 0 {
			perr.Reason = body.Error.Errors[0].Reason
		}
	}
	if perr.Message == "" {
		perr.Message = string(raw)
	}
	return perr
}
