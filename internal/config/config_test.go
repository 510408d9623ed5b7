package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, 90, cfg.Analysis.ScoreThresholds.Excellent)
	assert.Equal(t, 50, cfg.Analysis.ScoreThresholds.Fair)
	assert.Equal(t, "console", cfg.Output.Format)
	assert.Equal(t, 5000, cfg.Server.Port)
	assert.Contains(t, cfg.Files.IncludePatterns, "**/*.java")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "valid default",
			mutate:  func(c *Config) {},
			wantErr: "",
		},
		{
			name:    "thresholds out of order",
			mutate:  func(c *Config) { c.Analysis.ScoreThresholds.Good = 95 },
			wantErr: "score thresholds",
		},
		{
			name:    "unknown output format",
			mutate:  func(c *Config) { c.Output.Format = "xml" },
			wantErr: "invalid output format",
		},
		{
			name:    "port out of range",
			mutate:  func(c *Config) { c.Server.Port = 70000 },
			wantErr: "server port",
		},
		{
			name:    "zero max file size",
			mutate:  func(c *Config) { c.Files.MaxFileSize = 0 },
			wantErr: "max_file_size",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Error(t, err)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "javacheck.yml")

	cfg := DefaultConfig()
	cfg.Output.Format = "json"
	cfg.Server.Port = 8080
	require.NoError(t, cfg.SaveConfig(path))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "json", loaded.Output.Format)
	assert.Equal(t, 8080, loaded.Server.Port)
	assert.Equal(t, cfg.Analysis.ScoreThresholds, loaded.Analysis.ScoreThresholds)
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yml")
	require.NoError(t, os.WriteFile(path, []byte("output:\n  format: [unclosed"), 0644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestGenerateConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gen", "javacheck.yml")
	require.NoError(t, GenerateConfig(path))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.NoError(t, loaded.Validate())
}
