package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"swipe-lab/domain"
	errs "swipe-lab/errors"
	"swipe-lab/infrastructure/codec"

	"github.com/dgraph-io/badger/v4"
)

// ProfileRepository stores the live profile of each user under profile:{id}.
type ProfileRepository struct {
	db  *badger.DB
	log *slog.Logger
	now func() time.Time
}

func NewProfileRepository(db *badger.DB, log *slog.Logger) *ProfileRepository {
	return &ProfileRepository{db: db, log: log, now: time.Now}
}

func (r *ProfileRepository) GetProfile(ctx context.Context, userID string) (domain.Profile, error) {
	if err := ctx.Err(); err != nil {
		return domain.Profile{}, err
	}
	var p domain.Profile
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(profileKey(userID))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			p, err = codec.DecodeProfile(val)
			return err
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return domain.Profile{}, fmt.Errorf("%w: %s", errs.ErrProfileNotFound, userID)
	}
	if err != nil {
		return domain.Profile{}, err
	}
	return p, nil
}

// UpsertProfile replaces the profile and bumps its version in one transaction.
// The caller's Version and UpdatedAt are ignored.
func (r *ProfileRepository) UpsertProfile(ctx context.Context, p domain.Profile) (domain.Profile, error) {
	var saved domain.Profile
	err := update(ctx, r.db, func(txn *badger.Txn) error {
		var version uint64
		item, err := txn.Get(profileKey(p.ID))
		switch {
		case err == nil:
			err = item.Value(func(val []byte) error {
				current, err := codec.DecodeProfile(val)
				version = current.Version
				return err
			})
			if err != nil {
				return err
			}
		case !errors.Is(err, badger.ErrKeyNotFound):
			return err
		}

		saved = p
		saved.Version = version + 1
		saved.UpdatedAt = r.now().UTC()
		data, err := codec.EncodeProfile(saved)
		if err != nil {
			return err
		}
		return txn.Set(profileKey(p.ID), data)
	})
	if err != nil {
		return domain.Profile{}, fmt.Errorf("failed to upsert profile %s: %w", p.ID, err)
	}
	r.log.Debug("Profile saved", "user_id", saved.ID, "version", saved.Version)
	return saved, nil
}

// ListProfiles returns up to limit profiles ordered by id, for inspection tools.
func (r *ProfileRepository) ListProfiles(ctx context.Context, limit int) ([]domain.Profile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	prefix := []byte("profile:")
	var out []domain.Profile
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix) && len(out) < limit; it.Next() {
			err := it.Item().Value(func(val []byte) error {
				p, err := codec.DecodeProfile(val)
				if err != nil {
					return err
				}
				out = append(out, p)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	return out, err
}

func profileKey(userID string) []byte {
	return []byte("profile:" + userID)
}
