package showings

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"parkpilot/internal/calendar"
	"parkpilot/internal/domain"
)

// Confirm moves a scheduled showing to CONFIRMED. Confirming twice is a
// no-op; finalized showings cannot be confirmed.
func (s *Service) Confirm(ctx context.Context, id uuid.UUID) (domain.Showing, error) {
	showing, err := s.showings.Get(ctx, id)
	if err != nil {
		return domain.Showing{}, err
	}
	if showing.Status == domain.ShowingStatusConfirmed {
		return showing, nil
	}
	if !showing.Status.CanTransitionTo(domain.ShowingStatusConfirmed) {
		return domain.Showing{}, ErrTerminalStatus
	}

	showing.Status = domain.ShowingStatusConfirmed
	return s.showings.Update(ctx, showing)
}

// Cancel finalizes the showing locally and removes the calendar mirror on
// a best-effort basis. The local CANCELED state wins even when the event
// deletion fails or the event is already gone.
func (s *Service) Cancel(ctx context.Context, id uuid.UUID) (domain.Showing, error) {
	showing, err := s.showings.Get(ctx, id)
	if err != nil {
		return domain.Showing{}, err
	}
	if showing.Status == domain.ShowingStatusCanceled {
		return showing, nil
	}
	if showing.Status.Terminal() {
		return domain.Showing{}, ErrTerminalStatus
	}

	log := s.log.With(slog.String("showing_id", showing.ID.String()))

	if showing.CalendarEventID != "" {
		if token, err := s.managerToken(ctx, showing.ManagerID); err == nil {
			err := calendar.NewClient(token).WithBaseURL(s.baseURL).
				DeleteEvent(ctx, calendar.PrimaryCalendarID, showing.CalendarEventID)
			switch {
			case err == nil, errors.Is(err, calendar.ErrEventGone):
			default:
				log.Warn("calendar event delete failed", slog.Any("err", err))
				showing.CalendarSyncError = true
			}
		}
	}

	showing.Status = domain.ShowingStatusCanceled
	updated, err := s.showings.Update(ctx, showing)
	if err != nil {
		return domain.Showing{}, err
	}
	log.Info("showing canceled")
	return updated, nil
}

// Complete finalizes the showing and rewrites the event summary with the
// completion marker. The marker is checked before writing, so completing
// twice never double-prefixes and never re-mutates the local row.
func (s *Service) Complete(ctx context.Context, id uuid.UUID) (domain.Showing, error) {
	showing, err := s.showings.Get(ctx, id)
	if err != nil {
		return domain.Showing{}, err
	}
	if showing.Status == domain.ShowingStatusCompleted {
		return showing, nil
	}
	if showing.Status.Terminal() {
		return domain.Showing{}, ErrTerminalStatus
	}

	log := s.log.With(slog.String("showing_id", showing.ID.String()))

	if showing.CalendarEventID != "" {
		if token, err := s.managerToken(ctx, showing.ManagerID); err == nil {
			if err := s.markEventCompleted(ctx, token, showing.CalendarEventID); err != nil {
				if !errors.Is(err, calendar.ErrEventGone) {
					log.Warn("calendar completion rewrite failed", slog.Any("err", err))
					showing.CalendarSyncError = true
				}
			}
		}
	}

	showing.Status = domain.ShowingStatusCompleted
	updated, err := s.showings.Update(ctx, showing)
	if err != nil {
		return domain.Showing{}, err
	}
	log.Info("showing completed")
	return updated, nil
}

func (s *Service) markEventCompleted(ctx context.Context, token, eventID string) error {
	client := calendar.NewClient(token).WithBaseURL(s.baseURL)

	event, err := client.GetEvent(ctx, calendar.PrimaryCalendarID, eventID)
	if err != nil {
		return err
	}
	if calendar.IsCompleted(event.Summary) {
		return nil
	}

	_, err = client.PatchEvent(ctx, calendar.PrimaryCalendarID, eventID, calendar.Event{
		Summary: calendar.MarkCompleted(event.Summary),
	})
	return err
}

// errNoCalendar tells callers to skip the calendar side of an operation.
var errNoCalendar = errors.New("no usable calendar")

// managerToken resolves an access token for best-effort mirror writes.
// Absence of a token is not an error here; the caller simply skips the
// calendar side.
func (s *Service) managerToken(ctx context.Context, managerID string) (string, error) {
	connected, err := s.tokens.IsConnected(ctx, managerID)
	if err != nil || !connected {
		if err != nil {
			s.log.Warn("connectivity check failed", slog.String("manager_id", managerID), slog.Any("err", err))
		}
		return "", errNoCalendar
	}
	token, err := s.tokens.AccessToken(ctx, managerID)
	if err != nil {
		s.log.Warn("calendar token unavailable", slog.String("manager_id", managerID), slog.Any("err", err))
		return "", err
	}
	return token, nil
}
