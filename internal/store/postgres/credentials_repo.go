package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/uptrace/bun"

	"parkpilot/internal/domain"
	"parkpilot/internal/store"
)

type CredentialRepo struct {
	db bun.IDB
}

func NewCredentialRepo(db bun.IDB) *CredentialRepo {
	return &CredentialRepo{db: db}
}

func (r *CredentialRepo) Get(ctx context.Context, userID, provider string) (domain.CalendarCredential, error) {
	var row domain.CalendarCredential
	err := r.db.NewSelect().
		Model(&row).
		Where("user_id = ?", userID).
		Where("provider = ?", provider).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.CalendarCredential{}, store.ErrNotFound
		}
		return domain.CalendarCredential{}, err
	}
	return row, nil
}

// Upsert writes a credential, keeping the previously stored refresh token
// when the provider omitted one on a plain access-token renewal.
func (r *CredentialRepo) Upsert(ctx context.Context, cred domain.CalendarCredential) (domain.CalendarCredential, error) {
	m := cred
	_, err := r.db.NewInsert().
		Model(&m).
		On("CONFLICT (user_id, provider) DO UPDATE").
		Set("access_token = EXCLUDED.access_token").
		Set("refresh_token = CASE WHEN EXCLUDED.refresh_token = '' THEN calendar_credential.refresh_token ELSE EXCLUDED.refresh_token END").
		Set("token_type = EXCLUDED.token_type").
		Set("scope = EXCLUDED.scope").
		Set("expires_at = EXCLUDED.expires_at").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		return domain.CalendarCredential{}, err
	}
	return m, nil
}

func (r *CredentialRepo) Delete(ctx context.Context, userID, provider string) error {
	_, err := r.db.NewDelete().
		Model((*domain.CalendarCredential)(nil)).
		Where("user_id = ?", userID).
		Where("provider = ?", provider).
		Exec(ctx)
	return err
}
