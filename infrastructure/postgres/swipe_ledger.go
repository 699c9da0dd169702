package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"swipe-lab/domain"
	errs "swipe-lab/errors"
)

// SwipeLedger is the likes table plus the matches it produced.
// Record serializes the two directions of a pair with a transaction-scoped
// advisory lock, so the reciprocal read always sees a committed decision.
type SwipeLedger struct {
	db  *sql.DB
	log *slog.Logger
}

func NewSwipeLedger(db *sql.DB, log *slog.Logger) *SwipeLedger {
	return &SwipeLedger{db: db, log: log}
}

func (l *SwipeLedger) Record(ctx context.Context, d domain.SwipeDecision) (domain.SwipeRecord, error) {
	lo, hi := domain.PairKey(d.From, d.To)
	var rec domain.SwipeRecord

	err := withTx(ctx, l.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, lo+":"+hi); err != nil {
			return fmt.Errorf("failed to lock pair: %w", err)
		}

		prev, err := getDecision(ctx, tx, d.From, d.To)
		if err != nil {
			return err
		}
		rec.Previous = prev

		_, err = tx.ExecContext(ctx, `
			INSERT INTO likes (from_user_id, to_user_id, is_like, created_at)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (from_user_id, to_user_id)
			DO UPDATE SET is_like = EXCLUDED.is_like, created_at = EXCLUDED.created_at`,
			d.From, d.To, d.Liked, d.At)
		if err != nil {
			return fmt.Errorf("failed to upsert like: %w", err)
		}

		reciprocal, err := getDecision(ctx, tx, d.To, d.From)
		if err != nil {
			return err
		}
		rec.Reciprocal = reciprocal
		rec.Mutual = d.Liked && reciprocal != nil && reciprocal.Liked

		if !rec.Mutual {
			_, err = tx.ExecContext(ctx, `DELETE FROM matches WHERE user_lo = $1 AND user_hi = $2`, lo, hi)
			return err
		}

		if _, err = tx.ExecContext(ctx, `
			INSERT INTO matches (user_lo, user_hi, created_at) VALUES ($1, $2, $3)
			ON CONFLICT (user_lo, user_hi) DO NOTHING`, lo, hi, d.At); err != nil {
			return fmt.Errorf("failed to insert match: %w", err)
		}
		var notified bool
		if err := tx.QueryRowContext(ctx,
			`SELECT notified FROM matches WHERE user_lo = $1 AND user_hi = $2`, lo, hi,
		).Scan(&notified); err != nil {
			return err
		}
		rec.PendingNotification = !notified
		return nil
	})
	if err != nil {
		return domain.SwipeRecord{}, fmt.Errorf("failed to record swipe %s->%s: %w", d.From, d.To, err)
	}
	return rec, nil
}

func (l *SwipeLedger) Get(ctx context.Context, fromID, toID string) (domain.SwipeDecision, error) {
	var d domain.SwipeDecision
	err := l.db.QueryRowContext(ctx, `
		SELECT is_like, created_at FROM likes WHERE from_user_id = $1 AND to_user_id = $2`,
		fromID, toID).Scan(&d.Liked, &d.At)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.SwipeDecision{}, fmt.Errorf("%w: %s->%s", errs.ErrSwipeNotFound, fromID, toID)
	}
	if err != nil {
		return domain.SwipeDecision{}, err
	}
	d.From, d.To = fromID, toID
	return d, nil
}

func (l *SwipeLedger) MarkMatchNotified(ctx context.Context, a, b string) error {
	lo, hi := domain.PairKey(a, b)
	_, err := l.db.ExecContext(ctx,
		`UPDATE matches SET notified = TRUE WHERE user_lo = $1 AND user_hi = $2`, lo, hi)
	return err
}

func getDecision(ctx context.Context, tx *sql.Tx, from, to string) (*domain.SwipeDecision, error) {
	d := domain.SwipeDecision{From: from, To: to}
	err := tx.QueryRowContext(ctx, `
		SELECT is_like, created_at FROM likes WHERE from_user_id = $1 AND to_user_id = $2`,
		from, to).Scan(&d.Liked, &d.At)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read like %s->%s: %w", from, to, err)
	}
	return &d, nil
}
