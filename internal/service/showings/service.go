// Package showings implements the booking protocol against the external
// calendar and keeps the local showing rows and their calendar mirror
// consistent. The local row is the durable record of the business
// relationship; the calendar mirror is best-effort except for the one
// hard rejection a client can see, a slot conflict.
package showings

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"parkpilot/internal/store"
)

var (
	// ErrSlotConflict is the only error surfaced to the end user as a
	// hard booking rejection.
	ErrSlotConflict = errors.New("slot conflict")

	// ErrTerminalStatus rejects transitions out of COMPLETED or CANCELED.
	ErrTerminalStatus = errors.New("showing already finalized")
)

type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func validationError(msg string) error {
	return &ValidationError{msg: msg}
}

// TokenManager is the slice of the token lifecycle this service needs.
// IsConnected is a storage-level check; AccessToken may hit the provider.
type TokenManager interface {
	AccessToken(ctx context.Context, userID string) (string, error)
	IsConnected(ctx context.Context, userID string) (bool, error)
}

// ConflictChecker guards a window against the manager's primary calendar.
type ConflictChecker interface {
	CheckConflict(ctx context.Context, userID string, start, end time.Time) (bool, error)
}

type Service struct {
	showings store.ShowingRepository
	parks    store.ParkRepository
	tokens   TokenManager
	checker  ConflictChecker
	log      *slog.Logger
	baseURL  string
}

func NewService(showings store.ShowingRepository, parks store.ParkRepository, tokens TokenManager, checker ConflictChecker, log *slog.Logger) *Service {
	return NewServiceWithBaseURL(showings, parks, tokens, checker, log, "")
}

// NewServiceWithBaseURL points provider calls at a custom endpoint, used
// by tests.
func NewServiceWithBaseURL(showings store.ShowingRepository, parks store.ParkRepository, tokens TokenManager, checker ConflictChecker, log *slog.Logger, baseURL string) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		showings: showings,
		parks:    parks,
		tokens:   tokens,
		checker:  checker,
		log:      log.With(slog.String("component", "showings")),
		baseURL:  baseURL,
	}
}

func validateWindow(start, end time.Time) (time.Time, time.Time, error) {
	s := start.UTC()
	e := end.UTC()
	if e.Equal(s) || e.Before(s) {
		return time.Time{}, time.Time{}, validationError("end_time must be after start_time")
	}
	return s, e, nil
}
