// SPDX-License-Identifier: MIT

package config_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/katalvlaran/linalg/config"
	"github.com/katalvlaran/linalg/errs"
	"github.com/katalvlaran/linalg/kernel"
	"github.com/katalvlaran/linalg/ops"
)

func TestParseConfig(t *testing.T) {
	t.Parallel()

	cfg, err := config.ParseConfig([]byte(`{
		"log_level": "warning",
		"implementation": "native",
		"max_tasks": 3,
		"archive": {"compress": true},
		"database": {"postgres": "host=a", "postgres_readonly": ["host=b", "host=c"]}
	}`))
	require.NoError(t, err)

	assert.Equal(t, zap.WarnLevel, cfg.LogLevel.Zap().Level())
	assert.Equal(t, config.DSNList{"host=a"}, cfg.Database.Postgres)
	assert.Len(t, cfg.Database.Replicas, 2)
	assert.True(t, cfg.Database.Enabled())

	impl, err := cfg.KernelImplementation()
	require.NoError(t, err)
	assert.Equal(t, kernel.Native, impl)

	opts, err := cfg.EngineOptions()
	require.NoError(t, err)
	assert.Equal(t, kernel.Native, ops.New[float64](opts...).Implementation())

	conns, err := cfg.Database.Connect()
	require.NoError(t, err)
	assert.Len(t, conns.Sources, 1)
	assert.Len(t, conns.Replicas, 2)
	assert.True(t, conns.Routed())
	assert.Len(t, cfg.ArchiveOptions(), 1)
}

func TestParseConfigErrors(t *testing.T) {
	t.Parallel()

	_, err := config.ParseConfig([]byte(`{"max_tasks": "many"}`))
	require.Error(t, err)

	cfg := config.Config{Implementation: "gpu"}
	_, err = cfg.EngineOptions()
	require.ErrorIs(t, err, errs.ErrBadStringFormat)

	cfg = config.Config{MaxTasks: -1}
	_, err = cfg.EngineOptions()
	require.Error(t, err)
}

func TestDefaults(t *testing.T) {
	t.Parallel()

	var cfg config.Config
	impl, err := cfg.KernelImplementation()
	require.NoError(t, err)
	assert.Equal(t, ops.DefaultImplementation, impl)
	assert.Equal(t, zap.ErrorLevel, cfg.LogLevel.Zap().Level())
	assert.False(t, cfg.Database.Enabled())

	_, err = cfg.Database.Connect()
	require.ErrorIs(t, err, errs.ErrNotInitialized)
}

func TestDatabaseValidate(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name string
		db   config.Database
		err  error
	}{
		{"sqlite", config.Database{Sqlite: "x.db"}, nil},
		{"postgres", config.Database{Postgres: config.DSNList{"host=a"}}, nil},
		{"postgres with replicas", config.Database{Postgres: config.DSNList{"host=a"}, Replicas: config.DSNList{"host=b"}}, nil},
		{"nothing", config.Database{}, errs.ErrNotInitialized},
		{"sqlite and postgres", config.Database{Sqlite: "x.db", Postgres: config.DSNList{"host=a"}}, errs.ErrInvalidArgument},
		{"sqlite and replicas", config.Database{Sqlite: "x.db", Replicas: config.DSNList{"host=b"}}, errs.ErrInvalidArgument},
		{"replicas only", config.Database{Replicas: config.DSNList{"host=b"}}, errs.ErrInvalidArgument},
		{"negative timeout", config.Database{Sqlite: "x.db", BusyTimeoutMS: -1}, errs.ErrInvalidArgument},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := tc.db.Validate()
			if tc.err == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.err)
		})
	}
}

func TestConnectSqlite(t *testing.T) {
	t.Parallel()

	conns, err := config.Database{Sqlite: "x.db"}.Connect()
	require.NoError(t, err)
	require.Len(t, conns.Sources, 1)
	assert.Equal(t, "sqlite", conns.Sources[0].Name())
	assert.Empty(t, conns.Replicas)
	assert.False(t, conns.Routed())
}

func TestDSNListJSON(t *testing.T) {
	t.Parallel()

	raw, err := json.Marshal(config.DSNList{"a"})
	require.NoError(t, err)
	assert.JSONEq(t, `"a"`, string(raw))

	raw, err = json.Marshal(config.DSNList{"a", "b"})
	require.NoError(t, err)
	assert.JSONEq(t, `["a","b"]`, string(raw))

	var list config.DSNList
	require.NoError(t, json.Unmarshal([]byte(`[" host=a ", "host=b"]`), &list))
	assert.Equal(t, config.DSNList{"host=a", "host=b"}, list)

	require.NoError(t, json.Unmarshal([]byte(`null`), &list))
	assert.Nil(t, list)

	err = json.Unmarshal([]byte(`["host=a", "  "]`), &list)
	require.ErrorIs(t, err, errs.ErrInvalidArgument)

	require.Error(t, json.Unmarshal([]byte(`42`), &list))
}

func TestArchiveLevel(t *testing.T) {
	t.Parallel()

	cfg, err := config.ParseConfig([]byte(`{"archive": {"compress": true, "compression_level": 19}}`))
	require.NoError(t, err)
	assert.Equal(t, 19, cfg.Archive.Level)
	assert.Len(t, cfg.ArchiveOptions(), 1)
}

func TestCreateSample(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, config.CreateSample(path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	cfg, err := config.ParseConfig(raw)
	require.NoError(t, err)
	assert.Equal(t, config.Sample(), cfg)
}
