// Package queue is a thin Redis-list job queue carrying content ids.
package queue

import (
	"context"

	"github.com/redis/go-redis/v9"
)

const enrichKey = "queue:enrich"

type Queue struct {
	rdb *redis.Client
	key string
}

// NewEnrich returns the enrichment queue on the given client.
func NewEnrich(rdb *redis.Client) *Queue {
	return &Queue{rdb: rdb, key: enrichKey}
}

// Push appends a content id to the queue.
func (q *Queue) Push(ctx context.Context, id string) error {
	return q.rdb.LPush(ctx, q.key, id).Err()
}

// Pop blocks until an id is available (or the context is cancelled).
func (q *Queue) Pop(ctx context.Context) (string, error) {
	// 0 means wait forever until an item arrives
	result, err := q.rdb.BRPop(ctx, 0, q.key).Result()
	if err != nil {
		return "", err
	}
	return result[1], nil
}

// Len reports how many jobs are waiting.
func (q *Queue) Len(ctx context.Context) (int64, error) {
	return q.rdb.LLen(ctx, q.key).Result()
}
