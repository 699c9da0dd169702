package storage

import (
	"context"
	"errors"
	"fmt"

	errs "swipe-lab/errors"

	"github.com/dgraph-io/badger/v4"
)

// maxTxnRetries bounds optimistic retries when badger reports a write conflict.
const maxTxnRetries = 32

// update runs fn in a read-write transaction, retrying on conflicts.
func update(ctx context.Context, db *badger.DB, fn func(txn *badger.Txn) error) error {
	for attempt := 0; attempt < maxTxnRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		err := db.Update(fn)
		if errors.Is(err, badger.ErrConflict) {
			continue
		}
		return err
	}
	return fmt.Errorf("%w after %d attempts", errs.ErrTxnConflict, maxTxnRetries)
}

// scanKeys collects every key under prefix, values are not fetched.
func scanKeys(txn *badger.Txn, prefix []byte) [][]byte {
	opts := badger.DefaultIteratorOptions
	opts.PrefetchValues = false
	opts.Prefix = prefix

	it := txn.NewIterator(opts)
	defer it.Close()

	var keys [][]byte
	for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
		keys = append(keys, it.Item().KeyCopy(nil))
	}
	return keys
}
