package domain

import (
	"context"
	"strings"
	"time"

	"github.com/uptrace/bun"
)

const CalendarProviderGoogle = "google"

// CalendarCredential is the stored OAuth token pair for one user and
// provider. A row without a refresh token cannot be renewed and is treated
// as not connected.
type CalendarCredential struct {
	bun.BaseModel `bun:"table:calendar_credentials"`

	UserID       string    `bun:"user_id,pk"`
	Provider     string    `bun:"provider,pk"`
	AccessToken  string    `bun:"access_token,notnull"`
	RefreshToken string    `bun:"refresh_token"`
	TokenType    string    `bun:"token_type"`
	Scope        string    `bun:"scope"`
	ExpiresAt    time.Time `bun:"expires_at,notnull"`
	CreatedAt    time.Time `bun:"created_at,notnull"`
	UpdatedAt    time.Time `bun:"updated_at,notnull"`
}

func (c *CalendarCredential) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	now := time.Now().UTC()
	switch query.(type) {
	case *bun.InsertQuery:
		if c.CreatedAt.IsZero() {
			c.CreatedAt = now
		}
		if c.UpdatedAt.IsZero() {
			c.UpdatedAt = now
		}
	case *bun.UpdateQuery:
		c.UpdatedAt = now
	}
	return nil
}

// Usable reports whether the credential can ever produce a valid access
// token, now or after a refresh.
func (c *CalendarCredential) Usable() bool {
	return c != nil && strings.TrimSpace(c.RefreshToken) != ""
}

// Fresh reports whether the stored access token is still valid at t,
// with a safety margin so a token about to lapse mid-request is refreshed
// up front.
func (c *CalendarCredential) Fresh(t time.Time, margin time.Duration) bool {
	if c == nil || c.AccessToken == "" {
		return false
	}
	if c.ExpiresAt.IsZero() {
		return false
	}
	return t.Add(margin).Before(c.ExpiresAt)
}
