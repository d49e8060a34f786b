package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Lot is the minimal read model of a rental unit needed to book a showing.
// Lot CRUD lives elsewhere; this engine only resolves a lot to its park.
type Lot struct {
	bun.BaseModel `bun:"table:lots"`

	ID       uuid.UUID `bun:"id,pk,type:uuid"`
	ParkID   uuid.UUID `bun:"park_id,notnull,type:uuid"`
	Label    string    `bun:"label,notnull"`
	ParkName string    `bun:"park_name,scanonly"`
}

// ManagerAssignment links a manager account to a park.
type ManagerAssignment struct {
	bun.BaseModel `bun:"table:manager_assignments"`

	ID        uuid.UUID `bun:"id,pk,type:uuid"`
	ParkID    uuid.UUID `bun:"park_id,notnull,type:uuid"`
	ManagerID string    `bun:"manager_id,notnull"`
	CreatedAt time.Time `bun:"created_at,notnull"`
}
