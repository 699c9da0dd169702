package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"swipe-lab/domain"
	"swipe-lab/infrastructure/codec"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

const notifyPrefix = "notify:"

// NotificationRepository is the outbox of user notifications.
// Keys are notify:{unix nano, zero padded}:{id} so that iteration is chronological.
type NotificationRepository struct {
	db  *badger.DB
	log *slog.Logger
	now func() time.Time
}

func NewNotificationRepository(db *badger.DB, log *slog.Logger) *NotificationRepository {
	return &NotificationRepository{db: db, log: log, now: time.Now}
}

func (r *NotificationRepository) Enqueue(ctx context.Context, n domain.Notification) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if n.ID == "" {
		n.ID = fmt.Sprintf("%020d:%s", r.now().UnixNano(), uuid.NewString())
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = r.now().UTC()
	}
	data, err := codec.EncodeNotification(n)
	if err != nil {
		return err
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(notifyKey(n.ID), data)
	})
}

// Pending returns the oldest notifications still waiting for delivery.
func (r *NotificationRepository) Pending(ctx context.Context, limit int) ([]domain.Notification, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if limit <= 0 {
		return nil, nil
	}
	prefix := []byte(notifyPrefix)
	var out []domain.Notification
	var corrupt [][]byte

	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchSize = limit
		opts.Prefix = prefix

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix) && len(out) < limit; it.Next() {
			item := it.Item()
			err := item.Value(func(v []byte) error {
				n, err := codec.DecodeNotification(v)
				if err != nil {
					r.log.Error("Corrupt outbox record, dropping", "key", string(item.Key()), "error", err)
					corrupt = append(corrupt, item.KeyCopy(nil))
					return nil
				}
				out = append(out, n)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error during outbox fetch: %w", err)
	}
	if len(corrupt) > 0 {
		// A failed purge is retried by the next fetch, the batch is still served.
		if err := r.purge(corrupt); err != nil {
			r.log.Warn("Failed to purge corrupt outbox records", "count", len(corrupt), "error", err)
		}
	}
	return out, nil
}

func (r *NotificationRepository) purge(keys [][]byte) error {
	return r.db.Update(func(txn *badger.Txn) error {
		for _, k := range keys {
			if err := txn.Delete(k); err != nil {
				return err
			}
		}
		return nil
	})
}

// Done removes a delivered, or abandoned, notification.
func (r *NotificationRepository) Done(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(notifyKey(id))
	})
}

// Retry records a failed attempt, the notification keeps its place.
func (r *NotificationRepository) Retry(ctx context.Context, id string, attempts int) error {
	return update(ctx, r.db, func(txn *badger.Txn) error {
		item, err := txn.Get(notifyKey(id))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		var n domain.Notification
		err = item.Value(func(v []byte) error {
			n, err = codec.DecodeNotification(v)
			return err
		})
		if err != nil {
			return err
		}
		n.Attempts = attempts
		data, err := codec.EncodeNotification(n)
		if err != nil {
			return err
		}
		return txn.Set(notifyKey(id), data)
	})
}

func notifyKey(id string) []byte {
	return []byte(notifyPrefix + id)
}
