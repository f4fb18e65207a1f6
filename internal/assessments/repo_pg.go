package assessments

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

// queryer is satisfied by *sql.DB and *sql.Tx.
type queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (r *PGRepo) Upsert(ctx context.Context, a Assessment) (Assessment, error) {
	return upsert(ctx, r.DB, a)
}

// UpsertTx stores a inside tx so it commits together with the roadmap.
func UpsertTx(ctx context.Context, tx *sql.Tx, a Assessment) (Assessment, error) {
	return upsert(ctx, tx, a)
}

func upsert(ctx context.Context, db queryer, a Assessment) (Assessment, error) {
	answers, err := json.Marshal(a.Answers)
	if err != nil {
		return Assessment{}, fmt.Errorf("encode answers: %w", err)
	}
	const query = `
INSERT INTO assessments (user_id, answers, created_at, updated_at)
VALUES ($1, $2, now(), now())
ON CONFLICT (user_id) DO UPDATE SET
  answers = EXCLUDED.answers,
  updated_at = now()
RETURNING created_at, updated_at`
	if err := db.QueryRowContext(ctx, query, a.UserID, answers).Scan(&a.CreatedAt, &a.UpdatedAt); err != nil {
		return Assessment{}, err
	}
	return a, nil
}

func (r *PGRepo) GetByUser(ctx context.Context, userID string) (Assessment, error) {
	const query = `
SELECT user_id, answers, created_at, updated_at
FROM assessments
WHERE user_id = $1
LIMIT 1`
	var a Assessment
	var answers []byte
	err := r.DB.QueryRowContext(ctx, query, userID).Scan(&a.UserID, &answers, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Assessment{}, ErrNotFound
		}
		return Assessment{}, err
	}
	if err := json.Unmarshal(answers, &a.Answers); err != nil {
		return Assessment{}, fmt.Errorf("decode answers: %w", err)
	}
	return a, nil
}

func (r *PGRepo) Delete(ctx context.Context, userID string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM assessments WHERE user_id = $1`, userID)
	return err
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

// ClaimGuestTx runs the assessment claim inside tx so callers can combine it
// with other tables.
func ClaimGuestTx(ctx context.Context, tx *sql.Tx, guestUserID, authedUserID string) (int, error) {
	if _, err := tx.ExecContext(ctx, `
DELETE FROM assessments a
USING assessments g
WHERE a.user_id = $1 AND g.user_id = $2 AND g.updated_at >= a.updated_at`, authedUserID, guestUserID); err != nil {
		return 0, err
	}
	res, err := tx.ExecContext(ctx, `
UPDATE assessments SET user_id = $1
WHERE user_id = $2 AND NOT EXISTS (SELECT 1 FROM assessments WHERE user_id = $1)`, authedUserID, guestUserID)
	if err != nil {
		return 0, err
	}
	moved, _ := res.RowsAffected()
	if _, err := tx.ExecContext(ctx, `DELETE FROM assessments WHERE user_id = $1`, guestUserID); err != nil {
		return 0, err
	}
	return int(moved), nil
}
