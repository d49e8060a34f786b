package domain

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// ShowingStatus is the closed set of states a showing can be in.
// SCHEDULED may move to CONFIRMED, CANCELED, or COMPLETED; CONFIRMED may
// move to CANCELED or COMPLETED; COMPLETED and CANCELED are terminal.
type ShowingStatus string

const (
	ShowingStatusScheduled ShowingStatus = "SCHEDULED"
	ShowingStatusConfirmed ShowingStatus = "CONFIRMED"
	ShowingStatusCompleted ShowingStatus = "COMPLETED"
	ShowingStatusCanceled  ShowingStatus = "CANCELED"
)

func (s ShowingStatus) Valid() bool {
	switch s {
	case ShowingStatusScheduled, ShowingStatusConfirmed, ShowingStatusCompleted, ShowingStatusCanceled:
		return true
	}
	return false
}

// Terminal reports whether no further transition is allowed from s.
func (s ShowingStatus) Terminal() bool {
	switch s {
	case ShowingStatusCompleted, ShowingStatusCanceled:
		return true
	case ShowingStatusScheduled, ShowingStatusConfirmed:
		return false
	}
	return false
}

// CanTransitionTo reports whether the state machine permits s -> next.
func (s ShowingStatus) CanTransitionTo(next ShowingStatus) bool {
	if !s.Valid() || !next.Valid() {
		return false
	}
	if s.Terminal() {
		return false
	}
	switch next {
	case ShowingStatusScheduled:
		return false
	case ShowingStatusConfirmed:
		return s == ShowingStatusScheduled
	case ShowingStatusCompleted, ShowingStatusCanceled:
		return true
	}
	return false
}

func ParseShowingStatus(raw string) (ShowingStatus, error) {
	s := ShowingStatus(raw)
	if !s.Valid() {
		return "", fmt.Errorf("unknown showing status %q", raw)
	}
	return s, nil
}

// Showing is the canonical local record of a booked viewing appointment.
// CalendarEventID may reference an event that was deleted upstream by the
// manager; consumers must tolerate the dangling reference.
type Showing struct {
	bun.BaseModel `bun:"table:showings"`

	ID                uuid.UUID     `bun:"id,pk,type:uuid"`
	LotID             uuid.UUID     `bun:"lot_id,notnull,type:uuid"`
	ManagerID         string        `bun:"manager_id,notnull"`
	ClientName        string        `bun:"client_name,notnull"`
	ClientEmail       string        `bun:"client_email"`
	ClientPhone       string        `bun:"client_phone"`
	Notes             string        `bun:"notes"`
	StartTime         time.Time     `bun:"start_time,notnull"`
	EndTime           time.Time     `bun:"end_time,notnull"`
	Status            ShowingStatus `bun:"status,notnull"`
	CalendarEventID   string        `bun:"calendar_event_id"`
	CalendarHTMLLink  string        `bun:"calendar_html_link"`
	CalendarSyncError bool          `bun:"calendar_sync_error,notnull,default:false"`
	CreatedAt         time.Time     `bun:"created_at,notnull"`
	UpdatedAt         time.Time     `bun:"updated_at,notnull"`
}

func (s *Showing) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	now := time.Now().UTC()
	switch query.(type) {
	case *bun.InsertQuery:
		if s.ID == uuid.Nil {
			id, err := uuid.NewV7()
			if err != nil {
				return err
			}
			s.ID = id
		}
		if s.Status == "" {
			s.Status = ShowingStatusScheduled
		}
		if s.CreatedAt.IsZero() {
			s.CreatedAt = now
		}
		if s.UpdatedAt.IsZero() {
			s.UpdatedAt = now
		}
	case *bun.UpdateQuery:
		s.UpdatedAt = now
	}
	return nil
}
