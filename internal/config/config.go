package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"countrycodes-generator/internal/common"
)

// Defaults.
const (
	DefaultBaseURL    = "https://countrycode.org/customer/countryCode"
	DefaultSourceDir  = "src/countrycode.org"
	DefaultLibraryDir = "lib/countrycodes"
	DefaultS3Region   = "us-east-1"
	DefaultS3Bucket   = "countrycodes-cache"

	// MaxWorkers caps concurrent downloads against countrycode.org.
	MaxWorkers = 32
)

// Cache backends.
const (
	BackendFile = "file"
	BackendS3   = "s3"
)

// Log formats.
const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Config holds all generator settings.
type Config struct {
	// BaseURL is the countrycode.org export root.
	BaseURL string `yaml:"base_url"`
	// SourceDir holds raw downloads and the merged dataset.
	SourceDir string `yaml:"source_dir"`
	// LibraryDir receives the generated modules.
	LibraryDir string `yaml:"library_dir"`
	// Workers bounds concurrent per-country downloads. 1 is sequential.
	Workers int `yaml:"workers"`
	// Timeout applies to each HTTP request. Zero means none.
	Timeout time.Duration `yaml:"timeout"`

	Cache CacheConfig `yaml:"cache"`
	Log   LogConfig   `yaml:"log"`
}

// CacheConfig selects where downloads are memoized.
type CacheConfig struct {
	Backend string `yaml:"backend"`
	// MemoSize is the number of entries kept in memory in front of the
	// backend. Zero disables the memo.
	MemoSize int      `yaml:"memo_size"`
	S3       S3Config `yaml:"s3"`
}

// S3Config addresses an S3-compatible bucket.
type S3Config struct {
	Endpoint  string `yaml:"endpoint"`
	Region    string `yaml:"region"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	Bucket    string `yaml:"bucket"`
	Prefix    string `yaml:"prefix"`
	UseSSL    bool   `yaml:"use_ssl"`
}

// LogConfig configures the logger.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		BaseURL:    DefaultBaseURL,
		SourceDir:  DefaultSourceDir,
		LibraryDir: DefaultLibraryDir,
		Workers:    1,
		Cache: CacheConfig{
			Backend: BackendFile,
			S3: S3Config{
				Region: DefaultS3Region,
				Bucket: DefaultS3Bucket,
				UseSSL: true,
			},
		},
		Log: LogConfig{
			Level:  "info",
			Format: FormatConsole,
		},
	}
}

// Load builds the effective configuration from defaults, the YAML file at
// path (skipped when empty), .env and the process environment.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()

	if path != "" {
		var err error

		cfg, err = LoadFile(path)
		if err != nil {
			return nil, err
		}
	}

	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFile loads and parses a YAML configuration file from the given path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data over the defaults.
func Parse(data []byte) (*Config, error) {
	cfg := Default()

	err := yaml.Unmarshal(data, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	return cfg, nil
}

// Marshal serializes a Config to YAML.
func Marshal(cfg *Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// LookupFunc reads one environment variable.
type LookupFunc func(key string) (string, bool)

// ApplyEnv overrides settings from COUNTRYCODES_* variables. S3 credentials
// fall back to MINIO_ROOT_USER and MINIO_ROOT_PASSWORD.
func (c *Config) ApplyEnv(lookup LookupFunc) error {
	env := func(key string) string {
		v, _ := lookup(key)

		return strings.TrimSpace(v)
	}

	c.BaseURL = common.FirstNonEmpty(env("COUNTRYCODES_BASE_URL"), c.BaseURL)
	c.SourceDir = common.FirstNonEmpty(env("COUNTRYCODES_SOURCE_DIR"), c.SourceDir)
	c.LibraryDir = common.FirstNonEmpty(env("COUNTRYCODES_LIBRARY_DIR"), c.LibraryDir)
	c.Log.Level = common.FirstNonEmpty(env("COUNTRYCODES_LOG_LEVEL"), c.Log.Level)
	c.Log.Format = common.FirstNonEmpty(env("COUNTRYCODES_LOG_FORMAT"), c.Log.Format)
	c.Cache.Backend = common.FirstNonEmpty(env("COUNTRYCODES_CACHE_BACKEND"), c.Cache.Backend)

	s3 := &c.Cache.S3
	s3.Endpoint = common.FirstNonEmpty(env("COUNTRYCODES_S3_ENDPOINT"), s3.Endpoint)
	s3.Region = common.FirstNonEmpty(env("COUNTRYCODES_S3_REGION"), s3.Region)
	s3.AccessKey = common.FirstNonEmpty(env("COUNTRYCODES_S3_ACCESS_KEY"), s3.AccessKey, env("MINIO_ROOT_USER"))
	s3.SecretKey = common.FirstNonEmpty(env("COUNTRYCODES_S3_SECRET_KEY"), s3.SecretKey, env("MINIO_ROOT_PASSWORD"))
	s3.Bucket = common.FirstNonEmpty(env("COUNTRYCODES_S3_BUCKET"), s3.Bucket)
	s3.Prefix = common.FirstNonEmpty(env("COUNTRYCODES_S3_PREFIX"), s3.Prefix)

	if raw := env("COUNTRYCODES_S3_USE_SSL"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("%w: COUNTRYCODES_S3_USE_SSL: %w", ErrInvalid, err)
		}

		s3.UseSSL = v
	}

	if raw := env("COUNTRYCODES_WORKERS"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("%w: COUNTRYCODES_WORKERS: %w", ErrInvalid, err)
		}

		c.Workers = v
	}

	if raw := env("COUNTRYCODES_CACHE_MEMO_SIZE"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("%w: COUNTRYCODES_CACHE_MEMO_SIZE: %w", ErrInvalid, err)
		}

		c.Cache.MemoSize = v
	}

	if raw := env("COUNTRYCODES_TIMEOUT"); raw != "" {
		v, err := time.ParseDuration(raw)
		if err != nil {
			return fmt.Errorf("%w: COUNTRYCODES_TIMEOUT: %w", ErrInvalid, err)
		}

		c.Timeout = v
	}

	return nil
}

// Validate reports the first setting that cannot work.
func (c *Config) Validate() error {
	switch {
	case c.BaseURL == "":
		return fmt.Errorf("%w: base_url is empty", ErrInvalid)
	case c.SourceDir == "":
		return fmt.Errorf("%w: source_dir is empty", ErrInvalid)
	case c.LibraryDir == "":
		return fmt.Errorf("%w: library_dir is empty", ErrInvalid)
	case !common.IsInRange(1, c.Workers, MaxWorkers):
		return fmt.Errorf("%w: workers must be between 1 and %d, got %d", ErrInvalid, MaxWorkers, c.Workers)
	case c.Timeout < 0:
		return fmt.Errorf("%w: timeout must not be negative", ErrInvalid)
	case c.Cache.MemoSize < 0:
		return fmt.Errorf("%w: cache.memo_size must not be negative", ErrInvalid)
	}

	switch c.Cache.Backend {
	case BackendFile:
	case BackendS3:
		if c.Cache.S3.Endpoint == "" || c.Cache.S3.Bucket == "" {
			return fmt.Errorf("%w: s3 cache needs endpoint and bucket", ErrInvalid)
		}
	default:
		return fmt.Errorf("%w: unknown cache backend %q", ErrInvalid, c.Cache.Backend)
	}

	switch c.Log.Format {
	case FormatJSON, FormatConsole:
	default:
		return fmt.Errorf("%w: unknown log format %q", ErrInvalid, c.Log.Format)
	}

	return nil
}
