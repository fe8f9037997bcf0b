package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvDefaults(t *testing.T) {
	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Equal(t, "notes:", cfg.Redis.KeyPrefix)
	assert.Equal(t, 5*time.Second, cfg.Redis.DialTimeout)
	assert.Equal(t, ".", cfg.Notes.Dir)
	assert.True(t, cfg.Report.CombineNormalSentence)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("HAIRNOTE_ADDR", ":9090")
	t.Setenv("CORS_ORIGINS", "https://app.example.com, https://admin.example.com")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("REDIS_POOL_SIZE", "25")
	t.Setenv("NOTES_BUCKET_SSL", "false")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, []string{"https://app.example.com", "https://admin.example.com"}, cfg.CORSOrigins)
	assert.Equal(t, "redis://localhost:6379/0", cfg.Redis.URL)
	assert.Equal(t, 25, cfg.Redis.PoolSize)
	assert.False(t, cfg.Bucket.UseSSL)
}

func TestReportOptionsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "options.yaml")
	require.NoError(t, os.WriteFile(path, []byte("combine_normal_sentence: false\n"), 0o600))
	t.Setenv("HAIRNOTE_REPORT_OPTIONS", path)

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.False(t, cfg.Report.CombineNormalSentence)
}

func TestReportOptionsFileMissing(t *testing.T) {
	t.Setenv("HAIRNOTE_REPORT_OPTIONS", filepath.Join(t.TempDir(), "absent.yaml"))

	_, err := FromEnv()
	assert.Error(t, err)
}
