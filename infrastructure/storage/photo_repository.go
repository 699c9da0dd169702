package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"swipe-lab/domain/mimetypes"
	errs "swipe-lab/errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

// PhotoRepository keeps photo bytes in BadgerDB, keyed by their reference.
// References look like user_photos/{uuid}.{ext}, the same shape the object
// storage backend produces.
type PhotoRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewPhotoRepository(db *badger.DB, log *slog.Logger) *PhotoRepository {
	return &PhotoRepository{db: db, log: log}
}

func (r *PhotoRepository) Fetch(ctx context.Context, ref string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var data []byte
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(photoKey(ref))
		if err != nil {
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, fmt.Errorf("%w: %s", errs.ErrPhotoNotFound, ref)
	}
	return data, err
}

// Put stores an image and returns its reference. Anything that is not an image is refused.
func (r *PhotoRepository) Put(ctx context.Context, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	_, ext, err := mimetypes.DetectPhoto(data)
	if err != nil {
		return "", err
	}
	ref := PhotoRef(uuid.NewString(), ext)
	err = r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(photoKey(ref), data)
	})
	if err != nil {
		return "", fmt.Errorf("failed to store photo: %w", err)
	}
	r.log.Debug("Photo stored", "ref", ref, "size", len(data))
	return ref, nil
}

// PhotoRef builds the reference of a newly uploaded photo.
func PhotoRef(id, ext string) string {
	return "user_photos/" + id + ext
}

func photoKey(ref string) []byte {
	return []byte("photo:" + ref)
}
