// Package inbox stores contact-form submissions: metadata in Redis for fast
// listing, message bodies in Badger. Submissions are the one durable part of
// the service; the content store itself resets on restart.
package inbox

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"folio/internal/model"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var ErrNotFound = errors.New("submission not found")

// recentCap bounds the recency list in Redis.
const recentCap = 200

// Inbox combines Redis (metadata + recency list) and Badger (message bodies).
type Inbox struct {
	rdb *redis.Client
	db  *badger.DB
}

// New initializes the inbox. Pass badgerPath="" to run in metadata-only mode
// (for client tooling that never writes bodies).
func New(rdb *redis.Client, badgerPath string) (*Inbox, error) {
	var db *badger.DB
	var err error

	if badgerPath != "" {
		opts := badger.DefaultOptions(badgerPath)
		opts.Logger = nil // Silence default logger
		db, err = badger.Open(opts)
		if err != nil {
			return nil, fmt.Errorf("failed to open badger: %w", err)
		}
	}

	return &Inbox{rdb: rdb, db: db}, nil
}

// Close releases the Badger handle. The Redis client is owned by the caller.
func (i *Inbox) Close() {
	if i.db != nil {
		i.db.Close()
	}
}

// Save splits the submission: metadata to Redis, message body to Badger.
func (i *Inbox) Save(ctx context.Context, sub *model.Submission) error {
	meta := *sub
	meta.Message = ""

	data, err := json.Marshal(meta)
	if err != nil {
		return err
	}

	key := fmt.Sprintf("contact:%s", sub.ID)
	pipe := i.rdb.Pipeline()
	pipe.Set(ctx, key, data, 0)
	if sub.Status == model.SubmissionReceived {
		pipe.LPush(ctx, "list:contact", sub.ID.String())
		pipe.LTrim(ctx, "list:contact", 0, recentCap-1)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return err
	}

	if sub.Message != "" {
		if i.db == nil {
			return fmt.Errorf("cannot save message body: badgerdb is not initialized")
		}
		err = i.db.Update(func(txn *badger.Txn) error {
			return txn.Set([]byte(sub.ID.String()), []byte(sub.Message))
		})
		if err != nil {
			return err
		}
	}

	return nil
}

// Get combines metadata from Redis with the body from Badger.
func (i *Inbox) Get(ctx context.Context, id uuid.UUID) (*model.Submission, error) {
	val, err := i.rdb.Get(ctx, fmt.Sprintf("contact:%s", id)).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}

	var sub model.Submission
	if err := json.Unmarshal(val, &sub); err != nil {
		return nil, err
	}

	if i.db != nil {
		err = i.db.View(func(txn *badger.Txn) error {
			item, err := txn.Get([]byte(id.String()))
			if err != nil {
				return err
			}
			return item.Value(func(val []byte) error {
				sub.Message = string(val)
				return nil
			})
		})
		if err != nil && err != badger.ErrKeyNotFound {
			return nil, err
		}
	}

	return &sub, nil
}

// List fetches the most recent submissions (metadata only).
func (i *Inbox) List(ctx context.Context, limit int) ([]model.Submission, error) {
	ids, err := i.rdb.LRange(ctx, "list:contact", 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	var subs []model.Submission
	for _, idStr := range ids {
		val, err := i.rdb.Get(ctx, fmt.Sprintf("contact:%s", idStr)).Bytes()
		if err == redis.Nil {
			continue
		}

		var s model.Submission
		if err := json.Unmarshal(val, &s); err == nil {
			subs = append(subs, s)
		}
	}

	return subs, nil
}

// MarkReviewed flips the status flag in Redis.
func (i *Inbox) MarkReviewed(ctx context.Context, id uuid.UUID) error {
	sub, err := i.Get(ctx, id)
	if err != nil {
		return err
	}
	sub.Status = model.SubmissionReviewed
	return i.Save(ctx, sub)
}
