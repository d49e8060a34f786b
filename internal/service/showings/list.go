package showings

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"time"

	"parkpilot/internal/calendar"
	"parkpilot/internal/domain"
	"parkpilot/internal/store"
)

// WindowItem is one showing rendered for a listing window. When the
// calendar event had no matching local row, Showing carries a zero ID and
// the lot fields hold placeholder data recovered from the event summary.
type WindowItem struct {
	Showing  domain.Showing
	LotLabel string
	ParkName string

	// CalendarOnly marks entries synthesized purely from a calendar
	// event with no local row behind them.
	CalendarOnly bool
}

// ListWindow returns the manager's showings in [windowStart, windowEnd),
// ascending by start time. With a connected calendar the calendar is
// authoritative: events following the showing naming convention drive
// status and client contact data, joined back to local rows by event id.
// Without one, the local rows are returned as stored.
func (s *Service) ListWindow(ctx context.Context, managerID string, windowStart, windowEnd time.Time) ([]WindowItem, error) {
	if managerID == "" {
		return nil, validationError("manager_id is required")
	}
	start, end, err := validateWindow(windowStart, windowEnd)
	if err != nil {
		return nil, err
	}

	local, err := s.showings.ListForManager(ctx, managerID, start, end)
	if err != nil {
		return nil, err
	}

	connected, err := s.tokens.IsConnected(ctx, managerID)
	if err != nil {
		s.log.Warn("connectivity check failed", slog.String("manager_id", managerID), slog.Any("err", err))
		connected = false
	}
	if !connected {
		return s.localItems(ctx, local), nil
	}

	token, err := s.tokens.AccessToken(ctx, managerID)
	if err != nil {
		s.log.Warn("calendar token unavailable; listing from store", slog.String("manager_id", managerID), slog.Any("err", err))
		return s.localItems(ctx, local), nil
	}

	events, err := calendar.NewClient(token).WithBaseURL(s.baseURL).
		ListEvents(ctx, calendar.PrimaryCalendarID, start, end)
	if err != nil {
		s.log.Warn("calendar listing failed; listing from store", slog.String("manager_id", managerID), slog.Any("err", err))
		return s.localItems(ctx, local), nil
	}

	byEventID := make(map[string]domain.Showing, len(local))
	for _, row := range local {
		if row.CalendarEventID != "" {
			byEventID[row.CalendarEventID] = row
		}
	}

	items := make([]WindowItem, 0, len(events))
	for _, ev := range events {
		if !calendar.IsShowingSummary(ev.Summary) || ev.Status == "cancelled" {
			continue
		}
		evStart, okStart := ev.StartTime()
		evEnd, okEnd := ev.EndTime()
		if !okStart || !okEnd {
			continue
		}

		row, hasLocal := byEventID[ev.ID]
		delete(byEventID, ev.ID)

		item := s.deriveItem(ctx, ev, row, hasLocal, managerID)
		item.Showing.StartTime = evStart
		item.Showing.EndTime = evEnd
		items = append(items, item)
	}

	// Local bookings with no mirror (calendar never connected at booking
	// time, or the event write failed) still belong in the window; a row
	// whose event was deleted upstream does not resurface here.
	for _, row := range local {
		if row.CalendarEventID == "" {
			items = append(items, s.localItem(ctx, row))
		}
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].Showing.StartTime.Before(items[j].Showing.StartTime)
	})
	return items, nil
}

// deriveItem builds the rendered entry for one kept event. Status comes
// from the completion marker; client contact comes from the description
// with the attendee list as the email fallback; the lot reference comes
// from the joined local row, or from the summary when no row matches.
func (s *Service) deriveItem(ctx context.Context, ev calendar.Event, row domain.Showing, hasLocal bool, managerID string) WindowItem {
	details := calendar.DecodeDescription(ev.Description)
	if details.ClientEmail == "" {
		details.ClientEmail = calendar.AttendeeEmail(ev)
	}
	lotLabel, parkName := calendar.DecodeSummary(ev.Summary)

	if !hasLocal {
		status := domain.ShowingStatusScheduled
		if calendar.IsCompleted(ev.Summary) {
			status = domain.ShowingStatusCompleted
		}
		return WindowItem{
			Showing: domain.Showing{
				ManagerID:        managerID,
				ClientName:       details.ClientName,
				ClientEmail:      details.ClientEmail,
				ClientPhone:      details.ClientPhone,
				Notes:            details.Notes,
				Status:           status,
				CalendarEventID:  ev.ID,
				CalendarHTMLLink: ev.HTMLLink,
			},
			LotLabel:     lotLabel,
			ParkName:     parkName,
			CalendarOnly: true,
		}
	}

	if calendar.IsCompleted(ev.Summary) {
		row.Status = domain.ShowingStatusCompleted
	}
	if details.ClientEmail != "" {
		row.ClientEmail = details.ClientEmail
	}
	if details.ClientPhone != "" {
		row.ClientPhone = details.ClientPhone
	}

	item := s.localItem(ctx, row)
	if item.LotLabel == "" {
		item.LotLabel = lotLabel
	}
	if item.ParkName == "" {
		item.ParkName = parkName
	}
	return item
}

func (s *Service) localItems(ctx context.Context, rows []domain.Showing) []WindowItem {
	items := make([]WindowItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, s.localItem(ctx, row))
	}
	return items
}

// localItem resolves display lot data for a stored row. A missing lot is
// a tolerated integrity gap, not a failure; the row renders without it.
func (s *Service) localItem(ctx context.Context, row domain.Showing) WindowItem {
	item := WindowItem{Showing: row}
	lot, err := s.parks.GetLot(ctx, row.LotID)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			s.log.Warn("lot lookup failed", slog.String("lot_id", row.LotID.String()), slog.Any("err", err))
		}
		return item
	}
	item.LotLabel = lot.Label
	item.ParkName = lot.ParkName
	return item
}
