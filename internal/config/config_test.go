package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, 10<<20, cfg.MaxUploadBytes)
	assert.Equal(t, 300, cfg.AnalysisTimeoutSeconds)
	assert.Empty(t, cfg.APIKey)
}

func TestLoadConfig_ValidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"port": 9090,
		"model": "gemini-2.5-pro",
		"analysis_timeout_seconds": 120
	}`), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "gemini-2.5-pro", cfg.Model)
	assert.Equal(t, 120, cfg.AnalysisTimeoutSeconds)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestFromEnv(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "env-key")
	t.Setenv("PORT", "7070")

	cfg := Config{APIKey: "file-key", Port: 8080}
	cfg.FromEnv()

	assert.Equal(t, "env-key", cfg.APIKey)
	assert.Equal(t, 7070, cfg.Port)
}

func TestFromEnv_IgnoresInvalidPort(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("PORT", "not-a-number")

	cfg := Config{Port: 8080}
	cfg.FromEnv()

	assert.Equal(t, 8080, cfg.Port)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"defaults valid", Defaults(), false},
		{"negative port", Config{Port: -1}, true},
		{"port too high", Config{Port: 70000}, true},
		{"negative upload limit", Config{MaxUploadBytes: -1}, true},
		{"negative timeout", Config{AnalysisTimeoutSeconds: -1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{Port: 9090}
	merged := cfg.MergeWithDefaults(Defaults())

	assert.Equal(t, 9090, merged.Port)
	assert.Equal(t, 10<<20, merged.MaxUploadBytes)
	assert.Equal(t, 300, merged.AnalysisTimeoutSeconds)
}

func TestAnalysisTimeout(t *testing.T) {
	cfg := Config{AnalysisTimeoutSeconds: 300}
	assert.Equal(t, 300*time.Second, cfg.AnalysisTimeout())
}
