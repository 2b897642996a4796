package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envMap(m map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := m[key]

		return v, ok
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, "src/countrycode.org", cfg.SourceDir)
	assert.Equal(t, "lib/countrycodes", cfg.LibraryDir)
	assert.Equal(t, 1, cfg.Workers)
	assert.Zero(t, cfg.Timeout)
	assert.Equal(t, BackendFile, cfg.Cache.Backend)
	require.NoError(t, cfg.Validate())
}

func TestParse(t *testing.T) {
	yaml := `
library_dir: out/lib
workers: 4
timeout: 30s
cache:
  memo_size: 64
log:
  level: debug
  format: json
`

	cfg, err := Parse([]byte(yaml))
	require.NoError(t, err)

	assert.Equal(t, "out/lib", cfg.LibraryDir)
	assert.Equal(t, DefaultSourceDir, cfg.SourceDir)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, 64, cfg.Cache.MemoSize)
	assert.Equal(t, BackendFile, cfg.Cache.Backend)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, FormatJSON, cfg.Log.Format)
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte("workers: [1, 2"))
	require.Error(t, err)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestApplyEnv(t *testing.T) {
	cfg := Default()

	err := cfg.ApplyEnv(envMap(map[string]string{
		"COUNTRYCODES_SOURCE_DIR":    " cache/src ",
		"COUNTRYCODES_WORKERS":       "8",
		"COUNTRYCODES_TIMEOUT":       "1m",
		"COUNTRYCODES_CACHE_BACKEND": "s3",
		"COUNTRYCODES_S3_ENDPOINT":   "localhost:9000",
		"COUNTRYCODES_S3_USE_SSL":    "false",
		"MINIO_ROOT_USER":            "minio",
		"MINIO_ROOT_PASSWORD":        "secret",
	}))
	require.NoError(t, err)

	assert.Equal(t, "cache/src", cfg.SourceDir)
	assert.Equal(t, DefaultLibraryDir, cfg.LibraryDir)
	assert.Equal(t, 8, cfg.Workers)
	assert.Equal(t, time.Minute, cfg.Timeout)
	assert.Equal(t, BackendS3, cfg.Cache.Backend)
	assert.Equal(t, "localhost:9000", cfg.Cache.S3.Endpoint)
	assert.False(t, cfg.Cache.S3.UseSSL)
	assert.Equal(t, "minio", cfg.Cache.S3.AccessKey)
	assert.Equal(t, "secret", cfg.Cache.S3.SecretKey)
	require.NoError(t, cfg.Validate())
}

func TestApplyEnv_ExplicitKeyWinsOverMinio(t *testing.T) {
	cfg := Default()

	require.NoError(t, cfg.ApplyEnv(envMap(map[string]string{
		"COUNTRYCODES_S3_ACCESS_KEY": "app",
		"MINIO_ROOT_USER":            "minio",
	})))

	assert.Equal(t, "app", cfg.Cache.S3.AccessKey)
}

func TestApplyEnv_BadValues(t *testing.T) {
	for _, key := range []string{
		"COUNTRYCODES_WORKERS",
		"COUNTRYCODES_TIMEOUT",
		"COUNTRYCODES_CACHE_MEMO_SIZE",
		"COUNTRYCODES_S3_USE_SSL",
	} {
		err := Default().ApplyEnv(envMap(map[string]string{key: "many"}))
		require.ErrorIs(t, err, ErrInvalid, key)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty base url", func(c *Config) { c.BaseURL = "" }},
		{"empty source dir", func(c *Config) { c.SourceDir = "" }},
		{"empty library dir", func(c *Config) { c.LibraryDir = "" }},
		{"zero workers", func(c *Config) { c.Workers = 0 }},
		{"too many workers", func(c *Config) { c.Workers = MaxWorkers + 1 }},
		{"negative timeout", func(c *Config) { c.Timeout = -time.Second }},
		{"negative memo", func(c *Config) { c.Cache.MemoSize = -1 }},
		{"unknown backend", func(c *Config) { c.Cache.Backend = "redis" }},
		{"s3 without endpoint", func(c *Config) { c.Cache.Backend = BackendS3 }},
		{"unknown log format", func(c *Config) { c.Log.Format = "xml" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			require.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}

func TestLoad_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "countrycodes.yaml")
	require.NoError(t, os.WriteFile(path, []byte("workers: 3\nlibrary_dir: dist\n"), 0o600))

	t.Setenv("COUNTRYCODES_LIBRARY_DIR", "build/lib")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Workers)
	assert.Equal(t, "build/lib", cfg.LibraryDir)
}

func TestMarshal_RoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Timeout = 5 * time.Second

	data, err := Marshal(cfg)
	require.NoError(t, err)
	assert.Contains(t, string(data), "timeout: 5s")

	back, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, cfg, back)
}
