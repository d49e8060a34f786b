package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/uptrace/bun"

	"parkpilot/internal/domain"
	"parkpilot/internal/store"
)

type ShowingRepo struct {
	db bun.IDB
}

func NewShowingRepo(db bun.IDB) *ShowingRepo {
	return &ShowingRepo{db: db}
}

func (r *ShowingRepo) Create(ctx context.Context, showing domain.Showing) (domain.Showing, error) {
	m := showing
	_, err := r.db.NewInsert().Model(&m).Exec(ctx)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.Showing{}, store.ErrConflict
		}
		return domain.Showing{}, err
	}
	return m, nil
}

func (r *ShowingRepo) Get(ctx context.Context, id uuid.UUID) (domain.Showing, error) {
	var row domain.Showing
	err := r.db.NewSelect().
		Model(&row).
		Where("id = ?", id).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Showing{}, store.ErrNotFound
		}
		return domain.Showing{}, err
	}
	return row, nil
}

func (r *ShowingRepo) Update(ctx context.Context, showing domain.Showing) (domain.Showing, error) {
	m := showing
	res, err := r.db.NewUpdate().
		Model(&m).
		WherePK().
		Exec(ctx)
	if err != nil {
		return domain.Showing{}, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return domain.Showing{}, err
	}
	if affected == 0 {
		return domain.Showing{}, store.ErrNotFound
	}
	return m, nil
}

func (r *ShowingRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.NewDelete().
		Model((*domain.Showing)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *ShowingRepo) ListForManager(ctx context.Context, managerID string, windowStart, windowEnd time.Time) ([]domain.Showing, error) {
	var rows []domain.Showing
	err := r.db.NewSelect().
		Model(&rows).
		Where("manager_id = ?", managerID).
		Where("start_time < ?", windowEnd).
		Where("end_time > ?", windowStart).
		OrderExpr("start_time ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return rows, nil
}
