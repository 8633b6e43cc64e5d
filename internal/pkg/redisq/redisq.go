package redisq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Client wraps go-redis for the application.
type Client struct {
	rdb *redis.Client
}

// Connect creates a Redis client and verifies connectivity.
func Connect(url string) (*Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}

	rdb := redis.NewClient(opts)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return &Client{rdb: rdb}, nil
}

// Raw returns the underlying redis.Client for advanced usage.
func (c *Client) Raw() *redis.Client { return c.rdb }

// Close releases the client's connections.
func (c *Client) Close() error { return c.rdb.Close() }

// Queue is a FIFO event queue backed by a Redis list. Events are JSON
// payloads; consumers that fail to process an event drop it, there is no
// redelivery.
type Queue struct {
	rc  *Client
	key string
}

// NewQueue returns a queue stored under the given list key.
func NewQueue(rc *Client, key string) *Queue {
	return &Queue{rc: rc, key: key}
}

// Push marshals the event and appends it to the queue.
func (q *Queue) Push(ctx context.Context, event interface{}) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return q.rc.rdb.LPush(ctx, q.key, data).Err()
}

// Pop blocks up to timeout for the next event and unmarshals it into dest.
// Returns false when the queue stayed empty for the whole timeout.
func (q *Queue) Pop(ctx context.Context, timeout time.Duration, dest interface{}) (bool, error) {
	vals, err := q.rc.rdb.BRPop(ctx, timeout, q.key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	// BRPOP returns [key, value].
	if len(vals) != 2 {
		return false, fmt.Errorf("unexpected brpop reply of %d values", len(vals))
	}
	return true, json.Unmarshal([]byte(vals[1]), dest)
}

// Len returns the current queue depth.
func (q *Queue) Len(ctx context.Context) (int64, error) {
	return q.rc.rdb.LLen(ctx, q.key).Result()
}
