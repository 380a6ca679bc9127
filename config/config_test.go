// SPDX-License-Identifier: MIT
package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bellmanford/config"
	"github.com/katalvlaran/bellmanford/store"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

func TestDefaultsAreValid(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	require.Equal(t, time.Second, cfg.Delay)
	require.Equal(t, store.BackendFile, cfg.Store.Backend)
	require.GreaterOrEqual(t, cfg.Check.Workers, 1)
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "bf.yaml", `
delay: 250ms
max_nodes: 8
log:
  level: debug
  format: json
store:
  backend: libsql
  db_path: file:/tmp/bf.db
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, 250*time.Millisecond, cfg.Delay)
	require.Equal(t, 8, cfg.MaxNodes)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, "json", cfg.Log.Format)
	require.Equal(t, store.Config{
		Backend:   store.BackendLibSQL,
		Dir:       cfg.Store.Dir,
		DBPath:    "file:/tmp/bf.db",
		RedisAddr: "localhost:6379",
	}, cfg.StoreConfig())
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "bf.toml", `
delay = "2s"

[store]
backend = "redis"
redis_addr = "cache:6379"

[check]
workers = 3
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, 2*time.Second, cfg.Delay)
	require.Equal(t, "redis", cfg.Store.Backend)
	require.Equal(t, "cache:6379", cfg.Store.RedisAddr)
	require.Equal(t, 3, cfg.Check.Workers)
	require.Equal(t, "info", cfg.Log.Level)
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeFile(t, "bf.yaml", "delay: 3s\nmax_nodes: 4\n")
	t.Setenv("BELLMANFORD_DELAY", "10ms")
	t.Setenv("BELLMANFORD_MAX_NODES", "6")
	t.Setenv("BELLMANFORD_STORE_BACKEND", "mysql")
	t.Setenv("BELLMANFORD_MYSQL_DSN", "bf:secret@tcp(db:3306)/bf")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, 10*time.Millisecond, cfg.Delay)
	require.Equal(t, 6, cfg.MaxNodes)
	require.Equal(t, "mysql", cfg.Store.Backend)
	require.Equal(t, "bf:secret@tcp(db:3306)/bf", cfg.Store.MySQLDSN)
}

func TestEmptyFileKeepsDefaults(t *testing.T) {
	cfg, err := config.Load(writeFile(t, "empty.yaml", ""))
	require.NoError(t, err)
	require.Equal(t, config.Default().Delay, cfg.Delay)
}

func TestLoadRejects(t *testing.T) {
	cases := map[string]struct {
		file string
		body string
		env  map[string]string
	}{
		"unknown yaml field":     {file: "a.yaml", body: "speed: fast\n"},
		"malformed toml":         {file: "a.toml", body: "delay = \n"},
		"negative delay":         {file: "a.yaml", body: "delay: -1s\n"},
		"unknown backend":        {file: "a.yaml", body: "store:\n  backend: etcd\n"},
		"mysql without dsn":      {file: "a.yaml", body: "store:\n  backend: mysql\n"},
		"bad log format":         {file: "a.yaml", body: "log:\n  format: xml\n"},
		"bad log level":          {file: "a.yaml", body: "log:\n  level: loud\n"},
		"zero workers":           {file: "a.yaml", body: "check:\n  workers: 0\n"},
		"non-numeric env":        {file: "a.yaml", env: map[string]string{"BELLMANFORD_MAX_NODES": "many"}},
		"unparseable env delay":  {file: "a.yaml", env: map[string]string{"BELLMANFORD_DELAY": "soon"}},
		"negative max nodes env": {file: "a.yaml", env: map[string]string{"BELLMANFORD_MAX_NODES": "-2"}},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			_, err := config.Load(writeFile(t, tc.file, tc.body))
			require.ErrorIs(t, err, config.ErrInvalid)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
