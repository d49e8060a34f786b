package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"parkpilot/internal/domain"
)

// ShowingRepository owns the canonical showing rows. Delete exists only as
// rollback compensation for a booking race detected against the provider.
type ShowingRepository interface {
	Create(ctx context.Context, showing domain.Showing) (domain.Showing, error)
	Get(ctx context.Context, id uuid.UUID) (domain.Showing, error)
	Update(ctx context.Context, showing domain.Showing) (domain.Showing, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListForManager(ctx context.Context, managerID string, windowStart, windowEnd time.Time) ([]domain.Showing, error)
}

// CredentialRepository stores OAuth token pairs keyed by user and provider.
type CredentialRepository interface {
	Get(ctx context.Context, userID, provider string) (domain.CalendarCredential, error)
	Upsert(ctx context.Context, cred domain.CalendarCredential) (domain.CalendarCredential, error)
	Delete(ctx context.Context, userID, provider string) error
}

// ParkRepository is the read surface onto park/lot data maintained by the
// rest of the platform.
type ParkRepository interface {
	GetLot(ctx context.Context, lotID uuid.UUID) (domain.Lot, error)
	ListManagerAssignments(ctx context.Context, parkID uuid.UUID) ([]domain.ManagerAssignment, error)
}
