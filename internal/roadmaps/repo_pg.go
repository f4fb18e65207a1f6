package roadmaps

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

type PGRepo struct {
	DB *sql.DB
}

// execer is satisfied by *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (r *PGRepo) Save(ctx context.Context, rec Record) error {
	return saveRecord(ctx, r.DB, rec)
}

// SaveTx writes rec inside tx so it commits together with the assessment.
func SaveTx(ctx context.Context, tx *sql.Tx, rec Record) error {
	return saveRecord(ctx, tx, rec)
}

func saveRecord(ctx context.Context, db execer, rec Record) error {
	payload, err := json.Marshal(rec.Roadmap)
	if err != nil {
		return fmt.Errorf("encode roadmap: %w", err)
	}
	const query = `
INSERT INTO roadmaps (user_id, payload, catalog_version, generated_at)
VALUES ($1, $2, $3, $4)
ON CONFLICT (user_id) DO UPDATE SET
  payload = EXCLUDED.payload,
  catalog_version = EXCLUDED.catalog_version,
  generated_at = EXCLUDED.generated_at`
	_, err = db.ExecContext(ctx, query, rec.UserID, payload, rec.CatalogVersion, rec.GeneratedAt)
	return err
}

func (r *PGRepo) GetByUser(ctx context.Context, userID string) (Record, error) {
	const query = `
SELECT user_id, payload, catalog_version, generated_at
FROM roadmaps
WHERE user_id = $1
LIMIT 1`
	var rec Record
	var payload []byte
	err := r.DB.QueryRowContext(ctx, query, userID).Scan(&rec.UserID, &payload, &rec.CatalogVersion, &rec.GeneratedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Record{}, ErrNotFound
		}
		return Record{}, err
	}
	if err := json.Unmarshal(payload, &rec.Roadmap); err != nil {
		return Record{}, fmt.Errorf("decode roadmap: %w", err)
	}
	return rec, nil
}

func (r *PGRepo) ClaimGuest(ctx context.Context, guestUserID, authedUserID string) (int, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()
	n, err := ClaimGuestTx(ctx, tx, guestUserID, authedUserID)
	if err != nil {
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return n, nil
}

// ClaimGuestTx runs the roadmap claim inside tx so callers can combine it
// with other tables.
func ClaimGuestTx(ctx context.Context, tx *sql.Tx, guestUserID, authedUserID string) (int, error) {
	if _, err := tx.ExecContext(ctx, `
DELETE FROM roadmaps a
USING roadmaps g
WHERE a.user_id = $1 AND g.user_id = $2 AND g.generated_at >= a.generated_at`, authedUserID, guestUserID); err != nil {
		return 0, err
	}
	res, err := tx.ExecContext(ctx, `
UPDATE roadmaps SET user_id = $1
WHERE user_id = $2 AND NOT EXISTS (SELECT 1 FROM roadmaps WHERE user_id = $1)`, authedUserID, guestUserID)
	if err != nil {
		return 0, err
	}
	moved, _ := res.RowsAffected()
	if _, err := tx.ExecContext(ctx, `DELETE FROM roadmaps WHERE user_id = $1`, guestUserID); err != nil {
		return 0, err
	}
	return int(moved), nil
}
