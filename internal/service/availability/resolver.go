// Package availability computes manager busy time from the external
// calendar, which is the sole authority on real commitments, including
// ones this system never recorded.
package availability

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"parkpilot/internal/calendar"
	"parkpilot/internal/domain"
)

// TokenSource resolves a usable access token for a user.
type TokenSource interface {
	AccessToken(ctx context.Context, userID string) (string, error)
}

type Resolver struct {
	tokens  TokenSource
	log     *slog.Logger
	baseURL string
}

func NewResolver(tokens TokenSource, log *slog.Logger) *Resolver {
	return NewResolverWithBaseURL(tokens, log, "")
}

// NewResolverWithBaseURL builds a resolver against a custom provider
// endpoint, used by tests.
func NewResolverWithBaseURL(tokens TokenSource, log *slog.Logger, baseURL string) *Resolver {
	if log == nil {
		log = slog.Default()
	}
	return &Resolver{
		tokens:  tokens,
		log:     log.With(slog.String("component", "availability")),
		baseURL: baseURL,
	}
}

// BusySlots aggregates busy intervals across every calendar the user can
// read. One free/busy query spanning all calendars is the primary
// strategy; per-calendar event listing is the fallback when that query
// fails. The merged result is sorted ascending.
func (r *Resolver) BusySlots(ctx context.Context, userID string, windowStart, windowEnd time.Time) ([]domain.Interval, error) {
	token, err := r.tokens.AccessToken(ctx, userID)
	if err != nil {
		return nil, err
	}
	client := calendar.NewClient(token).WithBaseURL(r.baseURL)

	calendarIDs := []string{calendar.PrimaryCalendarID}
	entries, err := client.ListCalendars(ctx)
	if err != nil {
		r.log.Warn("calendar list failed; using primary only", slog.String("user_id", userID), slog.Any("err", err))
	} else {
		calendarIDs = readableCalendarIDs(entries)
	}

	busy, err := client.FreeBusy(ctx, calendarIDs, windowStart, windowEnd)
	if err == nil {
		var flat []domain.Interval
		for _, intervals := range busy {
			flat = append(flat, intervals...)
		}
		return domain.MergeIntervals(flat), nil
	}
	r.log.Warn("freebusy query failed; falling back to event listing", slog.String("user_id", userID), slog.Any("err", err))

	return r.busyFromEvents(ctx, client, userID, calendarIDs, windowStart, windowEnd)
}

// busyFromEvents lists each calendar's events in the window and keeps
// only entries that actually block time: confirmed or tentative, not
// transparent, and time-bound (all-day placeholders excluded). A single
// unreadable calendar is skipped; when every listing fails there is no
// data at all and the error propagates, so a full outage never reads as
// a free schedule.
func (r *Resolver) busyFromEvents(ctx context.Context, client calendar.Client, userID string, calendarIDs []string, windowStart, windowEnd time.Time) ([]domain.Interval, error) {
	var flat []domain.Interval
	var listed int
	var lastErr error
	for _, id := range calendarIDs {
		events, err := client.ListEvents(ctx, id, windowStart, windowEnd)
		if err != nil {
			r.log.Warn("event listing failed; skipping calendar",
				slog.String("user_id", userID),
				slog.String("calendar_id", id),
				slog.Any("err", err),
			)
			lastErr = err
			continue
		}
		listed++
		for _, ev := range events {
			if !eventBlocksTime(ev) {
				continue
			}
			start, ok := ev.StartTime()
			if !ok {
				continue
			}
			end, ok := ev.EndTime()
			if !ok {
				continue
			}
			flat = append(flat, domain.Interval{Start: start, End: end})
		}
	}
	if listed == 0 && lastErr != nil {
		return nil, fmt.Errorf("no calendar could be listed: %w", lastErr)
	}
	return domain.MergeIntervals(flat), nil
}

// CheckConflict reports whether any event on the primary calendar
// overlaps the requested window. It is a guard, not a guarantee: an event
// created upstream after this check and before the booking write is not
// caught here.
func (r *Resolver) CheckConflict(ctx context.Context, userID string, start, end time.Time) (bool, error) {
	token, err := r.tokens.AccessToken(ctx, userID)
	if err != nil {
		return false, err
	}
	client := calendar.NewClient(token).WithBaseURL(r.baseURL)

	events, err := client.ListEvents(ctx, calendar.PrimaryCalendarID, start, end)
	if err != nil {
		return false, err
	}

	window := domain.Interval{Start: start.UTC(), End: end.UTC()}
	for _, ev := range events {
		if ev.Status == "cancelled" || ev.Transparency == "transparent" {
			continue
		}
		evStart, okStart := ev.StartTime()
		evEnd, okEnd := ev.EndTime()
		if okStart && okEnd {
			if window.Overlaps(domain.Interval{Start: evStart, End: evEnd}) {
				return true, nil
			}
			continue
		}
		// All-day events come back without concrete instants; the list
		// window already bounds them, so they count as overlapping.
		return true, nil
	}
	return false, nil
}

func readableCalendarIDs(entries []calendar.CalendarListEntry) []string {
	ids := make([]string, 0, len(entries))
	for _, entry := range entries {
		switch entry.AccessRole {
		case "owner", "writer", "reader":
			ids = append(ids, entry.ID)
		}
	}
	if len(ids) == 0 {
		ids = append(ids, calendar.PrimaryCalendarID)
	}
	return ids
}

func eventBlocksTime(ev calendar.Event) bool {
	switch ev.Status {
	case "", "confirmed", "tentative":
	default:
		return false
	}
	return ev.Transparency != "transparent"
}
