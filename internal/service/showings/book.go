package showings

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"parkpilot/internal/calendar"
	"parkpilot/internal/domain"
)

type BookInput struct {
	LotID       uuid.UUID
	ClientName  string
	ClientEmail string
	ClientPhone string
	Notes       string
	StartTime   time.Time
	EndTime     time.Time
}

// Book runs the booking protocol: resolve the assigned manager, guard the
// slot against their calendar when one is connected, persist the showing,
// then mirror it as a calendar event. A provider-reported conflict on the
// mirror write is the pre-check race losing; the just-created row is
// rolled back so no orphan remains. Any other mirror failure keeps the
// booking and flags it for a later sync.
//
// When the manager has no connected calendar the booking proceeds with no
// availability guard at all; callers relying on conflict rejection must
// treat that path as reduced-guarantee.
func (s *Service) Book(ctx context.Context, in BookInput) (domain.Showing, error) {
	name := strings.TrimSpace(in.ClientName)
	if name == "" {
		return domain.Showing{}, validationError("client_name is required")
	}
	if in.LotID == uuid.Nil {
		return domain.Showing{}, validationError("lot_id is required")
	}
	start, end, err := validateWindow(in.StartTime, in.EndTime)
	if err != nil {
		return domain.Showing{}, err
	}
	if end.Sub(start) > 24*time.Hour {
		return domain.Showing{}, validationError("duration too long")
	}

	lot, err := s.parks.GetLot(ctx, in.LotID)
	if err != nil {
		return domain.Showing{}, err
	}

	managerID, connected, err := s.resolveManager(ctx, lot.ParkID)
	if err != nil {
		return domain.Showing{}, err
	}

	log := s.log.With(
		slog.String("manager_id", managerID),
		slog.String("lot_id", lot.ID.String()),
	)

	if connected {
		conflict, err := s.checker.CheckConflict(ctx, managerID, start, end)
		if err != nil {
			// The guard is advisory; only a confirmed conflict aborts.
			log.Warn("availability pre-check unavailable", slog.Any("err", err))
		} else if conflict {
			log.Info("booking rejected by pre-check", slog.Time("start_time", start), slog.Time("end_time", end))
			return domain.Showing{}, ErrSlotConflict
		}
	}

	showing, err := s.showings.Create(ctx, domain.Showing{
		LotID:       lot.ID,
		ManagerID:   managerID,
		ClientName:  name,
		ClientEmail: strings.TrimSpace(in.ClientEmail),
		ClientPhone: strings.TrimSpace(in.ClientPhone),
		Notes:       in.Notes,
		StartTime:   start,
		EndTime:     end,
		Status:      domain.ShowingStatusScheduled,
	})
	if err != nil {
		return domain.Showing{}, err
	}

	if !connected {
		log.Info("showing booked without calendar guard", slog.String("showing_id", showing.ID.String()))
		return showing, nil
	}

	return s.mirrorBooking(ctx, log, showing, lot)
}

// mirrorBooking creates the calendar event for a freshly persisted
// showing and reconciles the row with the outcome.
func (s *Service) mirrorBooking(ctx context.Context, log *slog.Logger, showing domain.Showing, lot domain.Lot) (domain.Showing, error) {
	token, err := s.tokens.AccessToken(ctx, showing.ManagerID)
	if err != nil {
		log.Warn("calendar token unavailable; keeping local booking", slog.Any("err", err))
		return s.markSyncError(ctx, showing), nil
	}

	event := showingEvent(showing, lot)
	created, err := calendar.NewClient(token).WithBaseURL(s.baseURL).InsertEvent(ctx, calendar.PrimaryCalendarID, event)
	if err != nil {
		if calendar.IsConflict(err) {
			// The race window between the pre-check and this write: the
			// provider won. Roll the local row back so no orphan remains.
			log.Info("provider-side conflict; rolling back booking",
				slog.String("showing_id", showing.ID.String()),
				slog.Any("err", err),
			)
			if delErr := s.showings.Delete(ctx, showing.ID); delErr != nil {
				log.Error("booking rollback failed", slog.String("showing_id", showing.ID.String()), slog.Any("err", delErr))
			}
			return domain.Showing{}, ErrSlotConflict
		}
		log.Warn("calendar event create failed; keeping local booking",
			slog.String("showing_id", showing.ID.String()),
			slog.Any("err", err),
		)
		return s.markSyncError(ctx, showing), nil
	}

	showing.CalendarEventID = created.ID
	showing.CalendarHTMLLink = created.HTMLLink
	updated, err := s.showings.Update(ctx, showing)
	if err != nil {
		return domain.Showing{}, err
	}

	log.Info("showing booked",
		slog.String("showing_id", updated.ID.String()),
		slog.String("calendar_event_id", updated.CalendarEventID),
	)
	return updated, nil
}

// resolveManager picks the manager for a park, preferring one with a
// connected calendar so bookings keep their availability guard.
func (s *Service) resolveManager(ctx context.Context, parkID uuid.UUID) (string, bool, error) {
	assignments, err := s.parks.ListManagerAssignments(ctx, parkID)
	if err != nil {
		return "", false, err
	}
	if len(assignments) == 0 {
		return "", false, validationError("no manager assigned to this park")
	}

	for _, a := range assignments {
		connected, err := s.tokens.IsConnected(ctx, a.ManagerID)
		if err != nil {
			s.log.Warn("connectivity check failed", slog.String("manager_id", a.ManagerID), slog.Any("err", err))
			continue
		}
		if connected {
			return a.ManagerID, true, nil
		}
	}
	return assignments[0].ManagerID, false, nil
}

func (s *Service) markSyncError(ctx context.Context, showing domain.Showing) domain.Showing {
	showing.CalendarSyncError = true
	updated, err := s.showings.Update(ctx, showing)
	if err != nil {
		s.log.Error("sync error flag update failed", slog.String("showing_id", showing.ID.String()), slog.Any("err", err))
		return showing
	}
	return updated
}

func showingEvent(showing domain.Showing, lot domain.Lot) calendar.Event {
	details := calendar.ShowingDetails{
		LotLabel:    lot.Label,
		ParkName:    lot.ParkName,
		ClientName:  showing.ClientName,
		ClientEmail: showing.ClientEmail,
		ClientPhone: showing.ClientPhone,
		Notes:       showing.Notes,
	}
	event := calendar.Event{
		Summary:     calendar.EncodeSummary(details),
		Description: calendar.EncodeDescription(details),
		Start:       calendar.EventDateTime{DateTime: showing.StartTime.UTC().Format(time.RFC3339)},
		End:         calendar.EventDateTime{DateTime: showing.EndTime.UTC().Format(time.RFC3339)},
	}
	if showing.ClientEmail != "" {
		event.Attendees = []calendar.EventAttendee{{Email: showing.ClientEmail}}
	}
	return event
}
