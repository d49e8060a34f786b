package calendar

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrEventGone marks a provider 404/410: the referenced resource no longer
// exists. A showing pointing at a deleted event is expected, not corrupt.
var ErrEventGone = errors.New("calendar resource gone")

// ErrorClass is the two-valued retry classification for provider failures.
type ErrorClass int

const (
	// ClassTransient covers network errors, 5xx, and anything ambiguous.
	ClassTransient ErrorClass = iota
	// ClassPermanent covers provider-reported client errors that a retry
	// cannot fix.
	ClassPermanent
)

// ProviderError is a failed provider call with enough detail to classify
// it without substring matching on messages.
type ProviderError struct {
	StatusCode int
	Reason     string
	Message    string

	transport bool
}

func (e *ProviderError) Error() string {
	if e.transport {
		return fmt.Sprintf("calendar provider unreachable: %s", e.Message)
	}
	return fmt.Sprintf("calendar provider error: status=%d reason=%q %s", e.StatusCode, e.Reason, e.Message)
}

// Class maps the failure onto {Permanent, Transient}. Unknown shapes
// default to Transient so a flaky provider never burns stored state.
func (e *ProviderError) Class() ErrorClass {
	if e.transport {
		return ClassTransient
	}
	if e.StatusCode >= 500 {
		return ClassTransient
	}
	if e.StatusCode >= 400 {
		return ClassPermanent
	}
	return ClassTransient
}

// Conflict reports whether the provider rejected a write because the slot
// is already taken.
func (e *ProviderError) Conflict() bool {
	return e.StatusCode == http.StatusConflict || e.Reason == "conflict" || e.Reason == "duplicate"
}

// IsConflict reports whether err is a provider-reported booking conflict.
func IsConflict(err error) bool {
	var perr *ProviderError
	return errors.As(err, &perr) && perr.Conflict()
}

// IsTransient reports whether err is worth retrying later.
func IsTransient(err error) bool {
	var perr *ProviderError
	if errors.As(err, &perr) {
		return perr.Class() == ClassTransient
	}
	return false
}
