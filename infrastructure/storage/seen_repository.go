package storage

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
)

// SeenRepository keeps, per viewer, the owners already shown to them.
// Keys are seen:{viewer}:{owner}, the value is the time it was shown.
type SeenRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewSeenRepository(db *badger.DB, log *slog.Logger) *SeenRepository {
	return &SeenRepository{db: db, log: log}
}

func (s *SeenRepository) MarkSeen(ctx context.Context, viewerID, ownerID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	at := []byte(time.Now().UTC().Format(time.RFC3339Nano))
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(seenKey(viewerID, ownerID), at)
	})
}

func (s *SeenRepository) IsSeen(ctx context.Context, viewerID, ownerID string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	err := s.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get(seenKey(viewerID, ownerID))
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return false, nil
	}
	return err == nil, err
}

// Reset starts a new epoch for the viewer: everybody becomes showable again.
func (s *SeenRepository) Reset(ctx context.Context, viewerID string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	var keys [][]byte
	err := s.db.View(func(txn *badger.Txn) error {
		keys = scanKeys(txn, []byte("seen:"+viewerID+":"))
		return nil
	})
	if err != nil {
		return 0, err
	}

	wb := s.db.NewWriteBatch()
	defer wb.Cancel()
	for _, k := range keys {
		if err := wb.Delete(k); err != nil {
			return 0, err
		}
	}
	if err := wb.Flush(); err != nil {
		return 0, err
	}
	s.log.Debug("Seen set reset", "viewer", viewerID, "removed", len(keys))
	return len(keys), nil
}

func seenKey(viewerID, ownerID string) []byte {
	return []byte("seen:" + viewerID + ":" + ownerID)
}
