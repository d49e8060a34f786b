package postgres

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"parkpilot/internal/domain"
	"parkpilot/internal/store"
)

func TestPostgresIntegration_ShowingsAndCredentials(t *testing.T) {
	databaseURL := strings.TrimSpace(os.Getenv("PARKPILOT_TEST_DATABASE_URL"))
	if databaseURL == "" {
		t.Skip("PARKPILOT_TEST_DATABASE_URL not set")
	}

	db, err := Open(databaseURL, PoolConfig{MaxOpenConns: 1})
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	t.Cleanup(func() {
		_ = Close(db)
	})

	schema := "parkpilot_test_" + randomHex(t, 8)
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_, _ = db.NewRaw("DROP SCHEMA IF EXISTS " + schema + " CASCADE").Exec(ctx)
	})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	err = db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewRaw("CREATE SCHEMA " + schema).Exec(ctx); err != nil {
			return err
		}
		if _, err := tx.NewRaw("SET LOCAL search_path TO " + schema).Exec(ctx); err != nil {
			return err
		}
		if err := applyMigrations(ctx, tx); err != nil {
			return err
		}

		parkID := uuid.MustParse("00000000-0000-0000-0000-000000000101")
		lotID := uuid.MustParse("00000000-0000-0000-0000-000000000102")
		if _, err := tx.NewRaw("INSERT INTO parks (id, name) VALUES (?, ?)", parkID, "Shady Grove").Exec(ctx); err != nil {
			return err
		}
		if _, err := tx.NewRaw("INSERT INTO lots (id, park_id, label) VALUES (?, ?, ?)", lotID, parkID, "14B").Exec(ctx); err != nil {
			return err
		}
		if _, err := tx.NewRaw(
			"INSERT INTO manager_assignments (id, park_id, manager_id) VALUES (?, ?, ?)",
			uuid.MustParse("00000000-0000-0000-0000-000000000103"), parkID, "mgr-1",
		).Exec(ctx); err != nil {
			return err
		}

		if err := exerciseParks(ctx, NewParkRepo(tx), parkID, lotID); err != nil {
			return err
		}
		if err := exerciseShowings(ctx, NewShowingRepo(tx), lotID); err != nil {
			return err
		}
		return exerciseCredentials(ctx, NewCredentialRepo(tx))
	})
	if err != nil {
		t.Fatalf("tx error: %v", err)
	}
}

func exerciseParks(ctx context.Context, repo *ParkRepo, parkID, lotID uuid.UUID) error {
	lot, err := repo.GetLot(ctx, lotID)
	if err != nil {
		return err
	}
	if lot.Label != "14B" || lot.ParkName != "Shady Grove" {
		return fmt.Errorf("lot = %q in %q, want 14B in Shady Grove", lot.Label, lot.ParkName)
	}
	if _, err := repo.GetLot(ctx, uuid.New()); !errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("missing lot err = %v, want ErrNotFound", err)
	}

	assignments, err := repo.ListManagerAssignments(ctx, parkID)
	if err != nil {
		return err
	}
	if len(assignments) != 1 || assignments[0].ManagerID != "mgr-1" {
		return fmt.Errorf("assignments = %v", assignments)
	}
	return nil
}

func exerciseShowings(ctx context.Context, repo *ShowingRepo, lotID uuid.UUID) error {
	start := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)

	created, err := repo.Create(ctx, domain.Showing{
		LotID:      lotID,
		ManagerID:  "mgr-1",
		ClientName: "Dana Whitfield",
		StartTime:  start,
		EndTime:    start.Add(30 * time.Minute),
	})
	if err != nil {
		return err
	}
	if created.ID == uuid.Nil {
		return fmt.Errorf("created showing has no id")
	}
	if created.Status != domain.ShowingStatusScheduled {
		return fmt.Errorf("default status = %v, want SCHEDULED", created.Status)
	}

	got, err := repo.Get(ctx, created.ID)
	if err != nil {
		return err
	}
	if got.ClientName != "Dana Whitfield" {
		return fmt.Errorf("got client name %q", got.ClientName)
	}

	got.Status = domain.ShowingStatusConfirmed
	got.CalendarEventID = "ev-1"
	updated, err := repo.Update(ctx, got)
	if err != nil {
		return err
	}
	if updated.Status != domain.ShowingStatusConfirmed || updated.CalendarEventID != "ev-1" {
		return fmt.Errorf("update not applied: %+v", updated)
	}

	missing := got
	missing.ID = uuid.New()
	if _, err := repo.Update(ctx, missing); !errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("update of missing row err = %v, want ErrNotFound", err)
	}

	later, err := repo.Create(ctx, domain.Showing{
		LotID:      lotID,
		ManagerID:  "mgr-1",
		ClientName: "Sam Ruiz",
		StartTime:  start.Add(2 * time.Hour),
		EndTime:    start.Add(3 * time.Hour),
	})
	if err != nil {
		return err
	}
	if _, err := repo.Create(ctx, domain.Showing{
		LotID:      lotID,
		ManagerID:  "mgr-other",
		ClientName: "Outside Window",
		StartTime:  start,
		EndTime:    start.Add(time.Hour),
	}); err != nil {
		return err
	}

	// Window overlap is half-open: a row ending exactly at windowStart is
	// excluded, one starting inside is included.
	rows, err := repo.ListForManager(ctx, "mgr-1", start.Add(30*time.Minute), start.Add(4*time.Hour))
	if err != nil {
		return err
	}
	if len(rows) != 1 || rows[0].ID != later.ID {
		return fmt.Errorf("windowed rows = %v, want only the later showing", rows)
	}

	rows, err = repo.ListForManager(ctx, "mgr-1", start.Add(-time.Hour), start.Add(4*time.Hour))
	if err != nil {
		return err
	}
	if len(rows) != 2 {
		return fmt.Errorf("len(rows) = %d, want 2", len(rows))
	}
	if !rows[0].StartTime.Before(rows[1].StartTime) {
		return fmt.Errorf("rows not ordered by start_time")
	}

	if err := repo.Delete(ctx, created.ID); err != nil {
		return err
	}
	if _, err := repo.Get(ctx, created.ID); !errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("get after delete err = %v, want ErrNotFound", err)
	}
	if err := repo.Delete(ctx, created.ID); !errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("repeat delete err = %v, want ErrNotFound", err)
	}
	return nil
}

func exerciseCredentials(ctx context.Context, repo *CredentialRepo) error {
	expires := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	if _, err := repo.Upsert(ctx, domain.CalendarCredential{
		UserID:       "mgr-1",
		Provider:     domain.CalendarProviderGoogle,
		AccessToken:  "access-1",
		RefreshToken: "refresh-1",
		TokenType:    "Bearer",
		ExpiresAt:    expires,
	}); err != nil {
		return err
	}

	// A renewal without a refresh token must keep the stored one.
	if _, err := repo.Upsert(ctx, domain.CalendarCredential{
		UserID:      "mgr-1",
		Provider:    domain.CalendarProviderGoogle,
		AccessToken: "access-2",
		ExpiresAt:   expires.Add(time.Hour),
	}); err != nil {
		return err
	}

	cred, err := repo.Get(ctx, "mgr-1", domain.CalendarProviderGoogle)
	if err != nil {
		return err
	}
	if cred.AccessToken != "access-2" {
		return fmt.Errorf("access token = %q, want access-2", cred.AccessToken)
	}
	if cred.RefreshToken != "refresh-1" {
		return fmt.Errorf("refresh token = %q, want the stored one preserved", cred.RefreshToken)
	}

	if err := repo.Delete(ctx, "mgr-1", domain.CalendarProviderGoogle); err != nil {
		return err
	}
	if _, err := repo.Get(ctx, "mgr-1", domain.CalendarProviderGoogle); !errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("get after delete err = %v, want ErrNotFound", err)
	}
	if err := repo.Delete(ctx, "mgr-1", domain.CalendarProviderGoogle); err != nil {
		return fmt.Errorf("credential delete must tolerate missing rows: %v", err)
	}
	return nil
}

func randomHex(t *testing.T, bytesLen int) string {
	t.Helper()
	b := make([]byte, bytesLen)
	if _, err := rand.Read(b); err != nil {
		t.Fatalf("rand.Read error: %v", err)
	}
	return hex.EncodeToString(b)
}

type rawExecutor interface {
	NewRaw(query string, args ...any) *bun.RawQuery
}

func applyMigrations(ctx context.Context, exec rawExecutor) error {
	dir, err := migrationsDir()
	if err != nil {
		return err
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}

	type mig struct {
		name string
		path string
	}
	migs := make([]mig, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if !strings.HasSuffix(e.Name(), ".sql") {
			continue
		}
		migs = append(migs, mig{name: e.Name(), path: filepath.Join(dir, e.Name())})
	}
	sort.Slice(migs, func(i, j int) bool { return migs[i].name < migs[j].name })

	for _, m := range migs {
		b, err := os.ReadFile(m.path)
		if err != nil {
			return err
		}
		upSQL, err := extractGooseUp(string(b))
		if err != nil {
			return err
		}
		for _, stmt := range splitSQLStatements(upSQL) {
			if _, err := exec.NewRaw(stmt).Exec(ctx); err != nil {
				return err
			}
		}
	}

	return nil
}

func migrationsDir() (string, error) {
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		return "", fmt.Errorf("runtime.Caller failed")
	}
	base := filepath.Dir(file)
	return filepath.Clean(filepath.Join(base, "..", "..", "..", "migrations")), nil
}

func extractGooseUp(sql string) (string, error) {
	upMarker := "-- +goose Up"
	downMarker := "-- +goose Down"

	upIdx := strings.Index(sql, upMarker)
	if upIdx < 0 {
		return "", fmt.Errorf("missing goose up marker")
	}
	afterUp := sql[upIdx+len(upMarker):]
	afterUp = strings.TrimLeft(afterUp, "\r\n")

	downIdx := strings.Index(afterUp, downMarker)
	if downIdx < 0 {
		return strings.TrimSpace(afterUp), nil
	}
	return strings.TrimSpace(afterUp[:downIdx]), nil
}

func splitSQLStatements(sql string) []string {
	parts := strings.Split(sql, ";")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		s := strings.TrimSpace(p)
		if s == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}
