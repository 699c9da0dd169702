package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"swipe-lab/domain"
	errs "swipe-lab/errors"
	"swipe-lab/infrastructure/codec"

	"github.com/dgraph-io/badger/v4"
)

// SwipeRepository is the swipe ledger on BadgerDB.
//
// swipe:{from}:{to} holds the current decision of a directed pair and
// match:{lo}:{hi} exists while both directions are liked. Record writes the
// decision and inspects the reverse one in a single serializable transaction,
// so two crossing likes can never both miss, or both claim, the match.
type SwipeRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewSwipeRepository(db *badger.DB, log *slog.Logger) *SwipeRepository {
	return &SwipeRepository{db: db, log: log}
}

func (s *SwipeRepository) Record(ctx context.Context, d domain.SwipeDecision) (domain.SwipeRecord, error) {
	data, err := codec.EncodeSwipe(d)
	if err != nil {
		return domain.SwipeRecord{}, err
	}

	var rec domain.SwipeRecord
	err = update(ctx, s.db, func(txn *badger.Txn) error {
		rec = domain.SwipeRecord{}

		prev, err := getSwipe(txn, d.From, d.To)
		if err != nil {
			return err
		}
		rec.Previous = prev

		if err := txn.Set(swipeKey(d.From, d.To), data); err != nil {
			return err
		}

		reciprocal, err := getSwipe(txn, d.To, d.From)
		if err != nil {
			return err
		}
		rec.Reciprocal = reciprocal
		rec.Mutual = d.Liked && reciprocal != nil && reciprocal.Liked

		key := matchKey(d.From, d.To)
		marker, found, err := getMatch(txn, key)
		if err != nil {
			return err
		}
		switch {
		case rec.Mutual && !found:
			marker = codec.MatchMarker{CreatedAt: d.At}
			raw, err := codec.EncodeMatch(marker)
			if err != nil {
				return err
			}
			if err := txn.Set(key, raw); err != nil {
				return err
			}
			rec.PendingNotification = true
		case rec.Mutual:
			rec.PendingNotification = !marker.Notified
		case found:
			// the pair is broken, a later like completes it again
			return txn.Delete(key)
		}
		return nil
	})
	if err != nil {
		return domain.SwipeRecord{}, fmt.Errorf("failed to record swipe %s->%s: %w", d.From, d.To, err)
	}
	return rec, nil
}

func (s *SwipeRepository) Get(ctx context.Context, fromID, toID string) (domain.SwipeDecision, error) {
	if err := ctx.Err(); err != nil {
		return domain.SwipeDecision{}, err
	}
	var d *domain.SwipeDecision
	err := s.db.View(func(txn *badger.Txn) error {
		var err error
		d, err = getSwipe(txn, fromID, toID)
		return err
	})
	if err != nil {
		return domain.SwipeDecision{}, err
	}
	if d == nil {
		return domain.SwipeDecision{}, fmt.Errorf("%w: %s->%s", errs.ErrSwipeNotFound, fromID, toID)
	}
	return *d, nil
}

// MarkMatchNotified flags the pair so that no later call notifies it again.
func (s *SwipeRepository) MarkMatchNotified(ctx context.Context, a, b string) error {
	key := matchKey(a, b)
	return update(ctx, s.db, func(txn *badger.Txn) error {
		marker, found, err := getMatch(txn, key)
		if err != nil {
			return err
		}
		if !found {
			return nil
		}
		marker.Notified = true
		raw, err := codec.EncodeMatch(marker)
		if err != nil {
			return err
		}
		return txn.Set(key, raw)
	})
}

func getSwipe(txn *badger.Txn, from, to string) (*domain.SwipeDecision, error) {
	item, err := txn.Get(swipeKey(from, to))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var d domain.SwipeDecision
	err = item.Value(func(v []byte) error {
		d, err = codec.DecodeSwipe(v)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func getMatch(txn *badger.Txn, key []byte) (codec.MatchMarker, bool, error) {
	item, err := txn.Get(key)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return codec.MatchMarker{}, false, nil
	}
	if err != nil {
		return codec.MatchMarker{}, false, err
	}
	var m codec.MatchMarker
	err = item.Value(func(v []byte) error {
		m, err = codec.DecodeMatch(v)
		return err
	})
	return m, err == nil, err
}

func swipeKey(from, to string) []byte {
	return []byte("swipe:" + from + ":" + to)
}

func matchKey(a, b string) []byte {
	lo, hi := domain.PairKey(a, b)
	return []byte("match:" + lo + ":" + hi)
}
