// SPDX-License-Identifier: MIT

package store

import (
	"context"
	"fmt"
)

// Backend names accepted by Open.
const (
	BackendFile   = "file"
	BackendLibSQL = "libsql"
	BackendMySQL  = "mysql"
	BackendRedis  = "redis"
)

// Config selects and addresses a backend.
type Config struct {
	Backend   string
	Dir       string // file
	DBPath    string // libsql, file URI
	MySQLDSN  string // mysql
	RedisAddr string // redis, host:port
}

// Open returns the Store described by cfg. An empty Backend means file.
func Open(ctx context.Context, cfg Config) (Store, error) {
	var (
		s   Store
		err error
	)
	switch cfg.Backend {
	case BackendFile, "":
		s, err = NewFileStore(cfg.Dir)
	case BackendLibSQL:
		s, err = NewLibSQLStore(ctx, cfg.DBPath)
	case BackendMySQL:
		s, err = NewMySQLStore(ctx, cfg.MySQLDSN)
	case BackendRedis:
		s, err = NewRedisStore(ctx, cfg.RedisAddr)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}
	if err != nil {
		return nil, err
	}

	return s, nil
}
