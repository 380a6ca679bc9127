// SPDX-License-Identifier: MIT

package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gomodule/redigo/redis"
)

// Redis key layout.
const (
	redisKeyPrefix = "bellmanford:session:"
	redisIndexKey  = "bellmanford:sessions" // sorted set, score = updated_at in ms
)

// RedisStore keeps each session under its own string key and indexes ids in
// a sorted set ordered by update time.
type RedisStore struct {
	pool *redis.Pool
	now  func() time.Time
}

// NewRedisStore dials addr ("host:port") through a connection pool and
// checks it with PING.
func NewRedisStore(ctx context.Context, addr string) (*RedisStore, error) {
	pool := &redis.Pool{
		MaxIdle:     10,
		MaxActive:   20,
		IdleTimeout: 240 * time.Second,
		DialContext: func(ctx context.Context) (redis.Conn, error) {
			return redis.DialContext(ctx, "tcp", addr)
		},
	}
	s := NewRedisStoreFromPool(pool)

	conn, err := pool.GetContext(ctx)
	if err != nil {
		_ = pool.Close()
		return nil, fmt.Errorf("store: redis %s: %w", addr, err)
	}
	defer conn.Close()
	if _, err := conn.Do("PING"); err != nil {
		_ = pool.Close()
		return nil, fmt.Errorf("store: ping redis %s: %w", addr, err)
	}

	return s, nil
}

// NewRedisStoreFromPool wraps an existing pool.
func NewRedisStoreFromPool(pool *redis.Pool) *RedisStore {
	return &RedisStore{pool: pool, now: time.Now}
}

// Close implements Store.
func (s *RedisStore) Close() error { return s.pool.Close() }

// Save implements Store. The value and its index entry are written in one
// MULTI/EXEC transaction.
func (s *RedisStore) Save(ctx context.Context, sess *Session) error {
	staged, err := prepare(sess, s.now())
	if err != nil {
		return err
	}
	data, err := encodeEnvelope(staged)
	if err != nil {
		return err
	}

	conn, err := s.pool.GetContext(ctx)
	if err != nil {
		return fmt.Errorf("store: save %s: %w", staged.ID, err)
	}
	defer conn.Close()

	_ = conn.Send("MULTI")
	_ = conn.Send("SET", redisKeyPrefix+staged.ID, data)
	_ = conn.Send("ZADD", redisIndexKey, staged.UpdatedAt.UnixMilli(), staged.ID)
	if _, err := conn.Do("EXEC"); err != nil {
		return fmt.Errorf("store: save %s: %w", staged.ID, err)
	}

	commit(sess, staged)

	return nil
}

// Load implements Store.
func (s *RedisStore) Load(ctx context.Context, id string) (*Session, error) {
	if err := CheckID(id); err != nil {
		return nil, err
	}
	conn, err := s.pool.GetContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("store: load %s: %w", id, err)
	}
	defer conn.Close()

	data, err := redis.Bytes(conn.Do("GET", redisKeyPrefix+id))
	if errors.Is(err, redis.ErrNil) {
		return nil, notFound(id)
	}
	if err != nil {
		return nil, fmt.Errorf("store: load %s: %w", id, err)
	}

	return decodeEnvelope(data, id)
}

// List implements Store. Index entries whose value has vanished are skipped.
func (s *RedisStore) List(ctx context.Context) ([]Summary, error) {
	conn, err := s.pool.GetContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("store: list: %w", err)
	}
	defer conn.Close()

	ids, err := redis.Strings(conn.Do("ZREVRANGE", redisIndexKey, 0, -1))
	if err != nil {
		return nil, fmt.Errorf("store: list: %w", err)
	}
	if len(ids) == 0 {
		return nil, nil
	}
	keys := make([]any, len(ids))
	for i, id := range ids {
		keys[i] = redisKeyPrefix + id
	}
	values, err := redis.ByteSlices(conn.Do("MGET", keys...))
	if err != nil {
		return nil, fmt.Errorf("store: list: %w", err)
	}

	out := make([]Summary, 0, len(values))
	for i, v := range values {
		if v == nil {
			continue
		}
		sum, err := decodeHeader(v)
		if err != nil {
			return nil, fmt.Errorf("store: list %s: %w", ids[i], err)
		}
		out = append(out, sum)
	}
	sortSummaries(out)

	return out, nil
}

// Delete implements Store.
func (s *RedisStore) Delete(ctx context.Context, id string) error {
	if err := CheckID(id); err != nil {
		return err
	}
	conn, err := s.pool.GetContext(ctx)
	if err != nil {
		return fmt.Errorf("store: delete %s: %w", id, err)
	}
	defer conn.Close()

	_ = conn.Send("MULTI")
	_ = conn.Send("DEL", redisKeyPrefix+id)
	_ = conn.Send("ZREM", redisIndexKey, id)
	res, err := redis.Ints(conn.Do("EXEC"))
	if err != nil {
		return fmt.Errorf("store: delete %s: %w", id, err)
	}
	if len(res) == 0 || res[0] == 0 {
		return notFound(id)
	}

	return nil
}
