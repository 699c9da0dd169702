package storage

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"swipe-lab/contract"
	errs "swipe-lab/errors"

	"github.com/dgraph-io/badger/v4"
)

const (
	readyPrefix    = "chan:"
	inflightPrefix = "inflight:"
	sequenceKey    = "seq:chan"
	sequenceLease  = 1000
	tagWidth       = 20
)

// ChannelRepository is a durable FIFO transport on top of BadgerDB.
//
// A ready message lives under chan:{channel}:{seq}. Popping moves it to
// inflight:{channel}:{seq} in the same transaction, so a crashed consumer
// never loses it: RecoverInflight puts it back at its original position.
type ChannelRepository struct {
	db  *badger.DB
	seq *badger.Sequence
	log *slog.Logger
	now func() time.Time
}

func NewChannelRepository(db *badger.DB, log *slog.Logger) (*ChannelRepository, error) {
	seq, err := db.GetSequence([]byte(sequenceKey), sequenceLease)
	if err != nil {
		return nil, fmt.Errorf("failed to lease channel sequence: %w", err)
	}
	return &ChannelRepository{db: db, seq: seq, log: log, now: time.Now}, nil
}

// Close hands the unused part of the sequence lease back to badger.
func (c *ChannelRepository) Close() error {
	return c.seq.Release()
}

func (c *ChannelRepository) Push(ctx context.Context, channel string, body []byte) error {
	if err := validateChannel(channel); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	n, err := c.seq.Next()
	if err != nil {
		return fmt.Errorf("failed to allocate sequence: %w", err)
	}
	key := readyKey(channel, formatTag(n))
	return c.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, body)
	})
}

// Pop takes the oldest ready message strictly after the cursor.
// An empty cursor starts at the head of the channel.
func (c *ChannelRepository) Pop(ctx context.Context, channel string, after string) (*contract.Delivery, error) {
	if err := validateChannel(channel); err != nil {
		return nil, err
	}
	prefix := []byte(readyPrefix + channel + ":")
	seek := prefix
	if after != "" {
		// the first key sorting after chan:{channel}:{after}
		seek = append(readyKey(channel, after), 0)
	}

	var delivery *contract.Delivery
	err := update(ctx, c.db, func(txn *badger.Txn) error {
		delivery = nil
		key, body, err := firstAt(txn, prefix, seek)
		if err != nil || key == nil {
			return err
		}
		tag := string(key[len(prefix):])
		if err := txn.Delete(key); err != nil {
			return err
		}
		if err := txn.Set(inflightKey(channel, tag), encodeInflight(c.now(), body)); err != nil {
			return err
		}
		delivery = &contract.Delivery{Channel: channel, Tag: tag, Body: body}
		return nil
	})
	if errors.Is(err, errs.ErrTxnConflict) {
		return nil, fmt.Errorf("%w: %s", errs.ErrTransportBusy, channel)
	}
	if err != nil {
		return nil, err
	}
	return delivery, nil
}

// Ack settles a delivery for good.
func (c *ChannelRepository) Ack(ctx context.Context, d *contract.Delivery) error {
	return c.settle(ctx, d, nil)
}

// Reject discards a delivery without putting it back.
func (c *ChannelRepository) Reject(ctx context.Context, d *contract.Delivery) error {
	if err := c.settle(ctx, d, nil); err != nil {
		return err
	}
	c.log.Debug("Delivery rejected", "channel", d.Channel, "tag", d.Tag)
	return nil
}

// Requeue puts a delivery back where it was popped from.
func (c *ChannelRepository) Requeue(ctx context.Context, d *contract.Delivery) error {
	return c.settle(ctx, d, readyKey(d.Channel, d.Tag))
}

func (c *ChannelRepository) settle(ctx context.Context, d *contract.Delivery, restoreTo []byte) error {
	if d == nil {
		return errs.ErrDeliveryNotFound
	}
	key := inflightKey(d.Channel, d.Tag)
	return update(ctx, c.db, func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("%w: %s/%s", errs.ErrDeliveryNotFound, d.Channel, d.Tag)
		}
		if err != nil {
			return err
		}
		if restoreTo != nil {
			raw, err := item.ValueCopy(nil)
			if err != nil {
				return err
			}
			_, body := decodeInflight(raw)
			if err := txn.Set(restoreTo, body); err != nil {
				return err
			}
		}
		return txn.Delete(key)
	})
}

// Purge removes every ready message whose body satisfies match.
func (c *ChannelRepository) Purge(ctx context.Context, channel string, match func(body []byte) bool) (int, error) {
	if err := validateChannel(channel); err != nil {
		return 0, err
	}
	prefix := []byte(readyPrefix + channel + ":")

	var removed int
	err := update(ctx, c.db, func(txn *badger.Txn) error {
		removed = 0
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		it := txn.NewIterator(opts)

		var doomed [][]byte
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			err := item.Value(func(v []byte) error {
				if match(v) {
					doomed = append(doomed, item.KeyCopy(nil))
				}
				return nil
			})
			if err != nil {
				it.Close()
				return err
			}
		}
		it.Close()

		for _, key := range doomed {
			if err := txn.Delete(key); err != nil {
				return err
			}
		}
		removed = len(doomed)
		return nil
	})
	return removed, err
}

// Depth counts the ready messages of a channel, in-flight ones excluded.
func (c *ChannelRepository) Depth(ctx context.Context, channel string) (int, error) {
	if err := validateChannel(channel); err != nil {
		return 0, err
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	var n int
	err := c.db.View(func(txn *badger.Txn) error {
		n = len(scanKeys(txn, []byte(readyPrefix+channel+":")))
		return nil
	})
	return n, err
}

// RecoverInflight requeues every delivery popped more than olderThan ago.
func (c *ChannelRepository) RecoverInflight(ctx context.Context, olderThan time.Duration) (int, error) {
	deadline := c.now().Add(-olderThan)
	prefix := []byte(inflightPrefix)

	var recovered int
	err := update(ctx, c.db, func(txn *badger.Txn) error {
		recovered = 0
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		it := txn.NewIterator(opts)

		type stale struct {
			key, ready, body []byte
		}
		var found []stale
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			channel, tag, ok := splitInflightKey(item.Key())
			if !ok {
				continue
			}
			raw, err := item.ValueCopy(nil)
			if err != nil {
				it.Close()
				return err
			}
			poppedAt, body := decodeInflight(raw)
			if poppedAt.After(deadline) {
				continue
			}
			found = append(found, stale{key: item.KeyCopy(nil), ready: readyKey(channel, tag), body: body})
		}
		it.Close()

		for _, s := range found {
			if err := txn.Set(s.ready, s.body); err != nil {
				return err
			}
			if err := txn.Delete(s.key); err != nil {
				return err
			}
		}
		recovered = len(found)
		return nil
	})
	return recovered, err
}

func firstAt(txn *badger.Txn, prefix, seek []byte) ([]byte, []byte, error) {
	opts := badger.DefaultIteratorOptions
	opts.PrefetchValues = false
	opts.Prefix = prefix
	it := txn.NewIterator(opts)
	defer it.Close()

	it.Seek(seek)
	if !it.ValidForPrefix(prefix) {
		return nil, nil, nil
	}
	item := it.Item()
	body, err := item.ValueCopy(nil)
	if err != nil {
		return nil, nil, err
	}
	return item.KeyCopy(nil), body, nil
}

func validateChannel(channel string) error {
	if channel == "" || strings.ContainsAny(channel, ": \x00") {
		return fmt.Errorf("%w: %q", errs.ErrInvalidChannel, channel)
	}
	return nil
}

func formatTag(n uint64) string {
	return fmt.Sprintf("%0*d", tagWidth, n)
}

func readyKey(channel, tag string) []byte {
	return []byte(readyPrefix + channel + ":" + tag)
}

func inflightKey(channel, tag string) []byte {
	return []byte(inflightPrefix + channel + ":" + tag)
}

func splitInflightKey(key []byte) (channel, tag string, ok bool) {
	rest := bytes.TrimPrefix(key, []byte(inflightPrefix))
	i := bytes.LastIndexByte(rest, ':')
	if i <= 0 {
		return "", "", false
	}
	return string(rest[:i]), string(rest[i+1:]), true
}

// An in-flight value is the pop time in unix nanoseconds followed by the body.
func encodeInflight(at time.Time, body []byte) []byte {
	out := make([]byte, 8+len(body))
	binary.BigEndian.PutUint64(out, uint64(at.UnixNano()))
	copy(out[8:], body)
	return out
}

func decodeInflight(raw []byte) (time.Time, []byte) {
	if len(raw) < 8 {
		return time.Time{}, raw
	}
	return time.Unix(0, int64(binary.BigEndian.Uint64(raw))), raw[8:]
}
