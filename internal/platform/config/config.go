// Package config builds runtime configuration from the environment plus an
// optional YAML options file, so main stays lean.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the full runtime configuration.
type Config struct {
	Addr        string
	LogLevel    string
	CORSOrigins []string

	Redis  RedisConfig
	Bucket BucketConfig
	Notes  NotesConfig
	Report ReportConfig
}

// RedisConfig configures the optional Redis note source.
type RedisConfig struct {
	URL          string
	KeyPrefix    string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// BucketConfig configures the optional S3-compatible note source.
type BucketConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// NotesConfig configures the local-file note source.
type NotesConfig struct {
	Dir string
}

// ReportConfig holds composition options loaded from the YAML options file.
type ReportConfig struct {
	// CombineNormalSentence merges the metal and mineral normal sentences in
	// the opening paragraph when both panels are clean.
	CombineNormalSentence bool `yaml:"combine_normal_sentence"`
}

// FromEnv builds a Config from environment variables. When
// HAIRNOTE_REPORT_OPTIONS points at a YAML file, report options are read from
// it; otherwise defaults apply.
func FromEnv() (Config, error) {
	cfg := Config{
		Addr:        envOr("HAIRNOTE_ADDR", ":8080"),
		LogLevel:    envOr("LOG_LEVEL", "info"),
		CORSOrigins: splitList(envOr("CORS_ORIGINS", "*")),
		Redis: RedisConfig{
			URL:          os.Getenv("REDIS_URL"),
			KeyPrefix:    envOr("REDIS_KEY_PREFIX", "notes:"),
			PoolSize:     envInt("REDIS_POOL_SIZE", 10),
			MinIdleConns: envInt("REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  envDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  envDuration("REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: envDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		},
		Bucket: BucketConfig{
			Endpoint:  os.Getenv("NOTES_BUCKET_ENDPOINT"),
			AccessKey: os.Getenv("NOTES_BUCKET_ACCESS_KEY"),
			SecretKey: os.Getenv("NOTES_BUCKET_SECRET_KEY"),
			Bucket:    envOr("NOTES_BUCKET", "hairnote"),
			UseSSL:    envBool("NOTES_BUCKET_SSL", true),
		},
		Notes: NotesConfig{
			Dir: envOr("NOTES_DIR", "."),
		},
		Report: ReportConfig{
			CombineNormalSentence: true,
		},
	}

	if path := os.Getenv("HAIRNOTE_REPORT_OPTIONS"); path != "" {
		if err := loadReportOptions(path, &cfg.Report); err != nil {
			return Config{}, err
		}
	}

	return cfg, nil
}

func loadReportOptions(path string, out *ReportConfig) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read report options: %w", err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parse report options %s: %w", path, err)
	}
	return nil
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
