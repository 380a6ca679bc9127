// SPDX-License-Identifier: MIT
package store

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/gomodule/redigo/redis"
)

// fakeRedis is an in-memory server understanding the commands RedisStore sends.
type fakeRedis struct {
	mu      sync.Mutex
	strings map[string][]byte
	zsets   map[string]map[string]int64
}

func newFakeRedisPool() *redis.Pool {
	srv := &fakeRedis{strings: map[string][]byte{}, zsets: map[string]map[string]int64{}}
	return &redis.Pool{
		MaxIdle: 2,
		Dial:    func() (redis.Conn, error) { return &fakeConn{srv: srv}, nil },
	}
}

func (f *fakeRedis) exec(cmd string, args []any) (any, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	str := func(i int) string { return fmt.Sprint(args[i]) }
	switch strings.ToUpper(cmd) {
	case "", "PING", "DISCARD", "UNWATCH":
		return "OK", nil
	case "SET":
		f.strings[str(0)] = append([]byte(nil), args[1].([]byte)...)
		return "OK", nil
	case "GET":
		if v, ok := f.strings[str(0)]; ok {
			return v, nil
		}
		return nil, nil
	case "MGET":
		out := make([]any, len(args))
		for i := range args {
			if v, ok := f.strings[str(i)]; ok {
				out[i] = v
			}
		}
		return out, nil
	case "DEL":
		n := int64(0)
		for i := range args {
			if _, ok := f.strings[str(i)]; ok {
				delete(f.strings, str(i))
				n++
			}
		}
		return n, nil
	case "ZADD":
		z := f.zsets[str(0)]
		if z == nil {
			z = map[string]int64{}
			f.zsets[str(0)] = z
		}
		_, existed := z[str(2)]
		z[str(2)] = args[1].(int64)
		if existed {
			return int64(0), nil
		}
		return int64(1), nil
	case "ZREM":
		z := f.zsets[str(0)]
		if _, ok := z[str(1)]; !ok {
			return int64(0), nil
		}
		delete(z, str(1))
		return int64(1), nil
	case "ZREVRANGE":
		z := f.zsets[str(0)]
		members := make([]string, 0, len(z))
		for m := range z {
			members = append(members, m)
		}
		sort.Slice(members, func(i, j int) bool {
			if z[members[i]] != z[members[j]] {
				return z[members[i]] > z[members[j]]
			}
			return members[i] > members[j]
		})
		out := make([]any, len(members))
		for i, m := range members {
			out[i] = []byte(m)
		}
		return out, nil
	}

	return nil, fmt.Errorf("fake redis: unsupported command %s", cmd)
}

// fakeConn queues commands between MULTI and EXEC like a real connection.
type fakeConn struct {
	srv    *fakeRedis
	multi  bool
	queued [][]any
}

func (c *fakeConn) Close() error { return nil }
func (c *fakeConn) Err() error   { return nil }
func (c *fakeConn) Flush() error { return nil }

func (c *fakeConn) Receive() (any, error) {
	return nil, fmt.Errorf("fake redis: pipelined receive not supported")
}

func (c *fakeConn) Send(cmd string, args ...any) error {
	switch {
	case strings.EqualFold(cmd, "MULTI"):
		c.multi, c.queued = true, nil
	case strings.EqualFold(cmd, "DISCARD"):
		c.multi, c.queued = false, nil
	case c.multi:
		c.queued = append(c.queued, append([]any{cmd}, args...))
	default:
		_, err := c.srv.exec(cmd, args)
		return err
	}

	return nil
}

func (c *fakeConn) Do(cmd string, args ...any) (any, error) {
	if !strings.EqualFold(cmd, "EXEC") {
		return c.srv.exec(cmd, args)
	}
	if !c.multi {
		return nil, fmt.Errorf("fake redis: EXEC without MULTI")
	}
	replies := make([]any, 0, len(c.queued))
	for _, q := range c.queued {
		r, err := c.srv.exec(q[0].(string), q[1:])
		if err != nil {
			return nil, err
		}
		replies = append(replies, r)
	}
	c.multi, c.queued = false, nil

	return replies, nil
}
