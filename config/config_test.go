package config

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv sets every variable Load reads to empty and skips the .env file.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "CATALOG_BACKEND", "CATALOG_SLOT", "DATA_DIR", "SQLITE_PATH", "DATABASE_URL",
		"S3_BUCKET", "S3_REGION", "S3_ENDPOINT", "AWS_ACCESS_KEY_ID", "AWS_SECRET_ACCESS_KEY",
		"MEDIA_DIR", "MEDIA_ALLOW_REMOTE", "CATALOG_AUTOSAVE", "CORS_ALLOWED_ORIGINS",
		"CONTEXT_TIMEOUT", "API_TOKEN_SECRET",
	} {
		t.Setenv(key, "")
	}
	t.Setenv("GO_ENV", "production")
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, BackendFile, cfg.Backend)
	assert.Equal(t, "albums", cfg.Slot)
	assert.Equal(t, "./data", cfg.DataDir)
	assert.Equal(t, filepath.Join("./data", "catalog.db"), cfg.SQLitePath)
	assert.Equal(t, filepath.Join("./data", "media"), cfg.MediaDir)
	assert.Equal(t, "us-east-1", cfg.S3.Region)
	assert.True(t, cfg.Autosave)
	assert.False(t, cfg.MediaAllowRemote)
	assert.Equal(t, 5*time.Second, cfg.ContextTimeout)
	assert.Empty(t, cfg.CORSAllowedOrigins)
	assert.Empty(t, cfg.APITokenSecret)
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("CATALOG_BACKEND", "S3")
	t.Setenv("S3_BUCKET", "photos")
	t.Setenv("S3_ENDPOINT", "http://localhost:9000")
	t.Setenv("DATA_DIR", "/var/lib/photos")
	t.Setenv("CATALOG_AUTOSAVE", "false")
	t.Setenv("MEDIA_ALLOW_REMOTE", "1")
	t.Setenv("CONTEXT_TIMEOUT", "250ms")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.example, ,http://b.example")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, BackendS3, cfg.Backend)
	assert.Equal(t, "photos", cfg.S3.Bucket)
	assert.Equal(t, "http://localhost:9000", cfg.S3.Endpoint)
	assert.Equal(t, "/var/lib/photos/media", cfg.MediaDir)
	assert.False(t, cfg.Autosave)
	assert.True(t, cfg.MediaAllowRemote)
	assert.Equal(t, 250*time.Millisecond, cfg.ContextTimeout)
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, cfg.CORSAllowedOrigins)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		env    map[string]string
		substr string
	}{
		{"unknown backend", map[string]string{"CATALOG_BACKEND": "mongo"}, "unknown CATALOG_BACKEND"},
		{"s3 without bucket", map[string]string{"CATALOG_BACKEND": "s3"}, "S3_BUCKET"},
		{"bad timeout", map[string]string{"CONTEXT_TIMEOUT": "soon"}, "CONTEXT_TIMEOUT"},
		{"negative timeout", map[string]string{"CONTEXT_TIMEOUT": "-1s"}, "CONTEXT_TIMEOUT"},
		{"bad autosave", map[string]string{"CATALOG_AUTOSAVE": "maybe"}, "CATALOG_AUTOSAVE"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.substr)
		})
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, "production", "warn")
	logger.Info("hidden")
	logger.Warn("shown", "slot", "albums")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "shown", record["msg"])
	assert.Equal(t, "albums", record["slot"])

	assert.Equal(t, slog.LevelDebug, parseLevel("DEBUG"))
	assert.Equal(t, slog.LevelInfo, parseLevel("verbose"))
}
