package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"parkpilot/internal/domain"
	"parkpilot/internal/store"
)

type ParkRepo struct {
	db bun.IDB
}

func NewParkRepo(db bun.IDB) *ParkRepo {
	return &ParkRepo{db: db}
}

func (r *ParkRepo) GetLot(ctx context.Context, lotID uuid.UUID) (domain.Lot, error) {
	var row domain.Lot
	err := r.db.NewSelect().
		Model(&row).
		ColumnExpr("lot.*").
		ColumnExpr("park.name AS park_name").
		Join("JOIN parks AS park ON park.id = lot.park_id").
		Where("lot.id = ?", lotID).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Lot{}, store.ErrNotFound
		}
		return domain.Lot{}, err
	}
	return row, nil
}

func (r *ParkRepo) ListManagerAssignments(ctx context.Context, parkID uuid.UUID) ([]domain.ManagerAssignment, error) {
	var rows []domain.ManagerAssignment
	err := r.db.NewSelect().
		Model(&rows).
		Where("park_id = ?", parkID).
		OrderExpr("created_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return rows, nil
}
