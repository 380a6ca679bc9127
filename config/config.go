// SPDX-License-Identifier: MIT

// Package config loads bellmanford settings.
//
// Priority: BELLMANFORD_* environment variables > config file > defaults.
// The file is TOML when its name ends in ".toml" and YAML otherwise.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/bellmanford/logging"
	"github.com/katalvlaran/bellmanford/store"
)

// ErrInvalid wraps every configuration error.
var ErrInvalid = errors.New("config: invalid")

// EnvPrefix prefixes every environment override.
const EnvPrefix = "BELLMANFORD_"

// Config holds every setting of the CLI.
type Config struct {
	Delay    time.Duration `yaml:"delay" toml:"delay"`         // pause between animated steps
	MaxNodes int           `yaml:"max_nodes" toml:"max_nodes"` // 0 = unlimited
	Log      Log           `yaml:"log" toml:"log"`
	Store    Store         `yaml:"store" toml:"store"`
	Check    Check         `yaml:"check" toml:"check"`
}

// Log configures logging.Init.
type Log struct {
	Level  string `yaml:"level" toml:"level"`
	Format string `yaml:"format" toml:"format"` // text | json
}

// Store selects the session backend.
type Store struct {
	Backend   string `yaml:"backend" toml:"backend"` // file | libsql | mysql | redis
	Dir       string `yaml:"dir" toml:"dir"`
	DBPath    string `yaml:"db_path" toml:"db_path"`
	MySQLDSN  string `yaml:"mysql_dsn" toml:"mysql_dsn"`
	RedisAddr string `yaml:"redis_addr" toml:"redis_addr"`
}

// Check sizes the cross-check worker pool.
type Check struct {
	Workers int `yaml:"workers" toml:"workers"`
}

// Default returns the built-in settings.
func Default() Config {
	home := dataDir()
	return Config{
		Delay: time.Second,
		Log:   Log{Level: "info", Format: "text"},
		Store: Store{
			Backend:   store.BackendFile,
			Dir:       filepath.Join(home, "sessions"),
			DBPath:    "file:" + filepath.Join(home, "sessions.db"),
			RedisAddr: "localhost:6379",
		},
		Check: Check{Workers: runtime.NumCPU()},
	}
}

func dataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".bellmanford"
	}

	return filepath.Join(home, ".bellmanford")
}

// Load layers defaults, the file at path (skipped when path is empty) and
// the environment, then validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := decode(path, data, &cfg); err != nil {
			return Config{}, err
		}
	}
	if err := applyEnv(&cfg, os.LookupEnv); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func decode(path string, data []byte, cfg *Config) error {
	var err error
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		_, err = toml.NewDecoder(bytes.NewReader(data)).Decode(cfg)
	} else {
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err = dec.Decode(cfg); errors.Is(err, io.EOF) {
			err = nil // empty file
		}
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalid, path, err)
	}

	return nil
}

// applyEnv overrides cfg from BELLMANFORD_* variables.
func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	str := func(name string, dst *string) {
		if v, ok := lookup(EnvPrefix + name); ok && v != "" {
			*dst = v
		}
	}
	num := func(name string, dst *int) error {
		v, ok := lookup(EnvPrefix + name)
		if !ok || v == "" {
			return nil
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s%s=%q", ErrInvalid, EnvPrefix, name, v)
		}
		*dst = n
		return nil
	}

	if v, ok := lookup(EnvPrefix + "DELAY"); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%w: %sDELAY=%q", ErrInvalid, EnvPrefix, v)
		}
		cfg.Delay = d
	}
	str("LOG_LEVEL", &cfg.Log.Level)
	str("LOG_FORMAT", &cfg.Log.Format)
	str("STORE_BACKEND", &cfg.Store.Backend)
	str("STORE_DIR", &cfg.Store.Dir)
	str("DB_PATH", &cfg.Store.DBPath)
	str("MYSQL_DSN", &cfg.Store.MySQLDSN)
	str("REDIS_ADDR", &cfg.Store.RedisAddr)
	if err := num("MAX_NODES", &cfg.MaxNodes); err != nil {
		return err
	}

	return num("CHECK_WORKERS", &cfg.Check.Workers)
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.Delay < 0 {
		return fmt.Errorf("%w: delay %v is negative", ErrInvalid, c.Delay)
	}
	if c.MaxNodes < 0 {
		return fmt.Errorf("%w: max_nodes %d is negative", ErrInvalid, c.MaxNodes)
	}
	if c.Check.Workers < 1 {
		return fmt.Errorf("%w: check.workers must be at least 1", ErrInvalid)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return fmt.Errorf("%w: log.format %q (want text or json)", ErrInvalid, c.Log.Format)
	}

	switch c.Store.Backend {
	case store.BackendFile:
		if c.Store.Dir == "" {
			return fmt.Errorf("%w: store.dir is required for the file backend", ErrInvalid)
		}
	case store.BackendLibSQL:
		if c.Store.DBPath == "" {
			return fmt.Errorf("%w: store.db_path is required for the libsql backend", ErrInvalid)
		}
	case store.BackendMySQL:
		if c.Store.MySQLDSN == "" {
			return fmt.Errorf("%w: store.mysql_dsn is required for the mysql backend", ErrInvalid)
		}
	case store.BackendRedis:
		if c.Store.RedisAddr == "" {
			return fmt.Errorf("%w: store.redis_addr is required for the redis backend", ErrInvalid)
		}
	default:
		return fmt.Errorf("%w: store.backend %q", ErrInvalid, c.Store.Backend)
	}

	return nil
}

// StoreConfig converts the store section for store.Open.
func (c Config) StoreConfig() store.Config {
	return store.Config{
		Backend:   c.Store.Backend,
		Dir:       c.Store.Dir,
		DBPath:    c.Store.DBPath,
		MySQLDSN:  c.Store.MySQLDSN,
		RedisAddr: c.Store.RedisAddr,
	}
}
