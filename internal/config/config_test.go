package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultFile)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.hcl"))
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 1, cfg.Deal.Hands)
	assert.Equal(t, 100000, cfg.Tally.Hands)
	assert.Equal(t, 4, cfg.Tally.Workers)
	assert.True(t, cfg.ColorEnabled())
	require.NoError(t, cfg.Validate())
}

func TestLoadDocumentedSample(t *testing.T) {
	path := writeConfig(t, `log_level = "info"
color     = true
deal {
  seed  = 42
  hands = 5
}
tally {
  hands   = 100000
  workers = 4
  report  = "tally.json"
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "info", cfg.LogLevel)
	assert.True(t, cfg.ColorEnabled())
	assert.Equal(t, int64(42), cfg.Deal.Seed)
	assert.Equal(t, 5, cfg.Deal.Hands)
	assert.Equal(t, 100000, cfg.Tally.Hands)
	assert.Equal(t, 4, cfg.Tally.Workers)
	assert.Equal(t, "tally.json", cfg.Tally.Report)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
log_level = "debug"
color     = false

deal {
  seed  = 42
  hands = 6
}

tally {
  hands   = 5000
  workers = 8
  report  = "tally.json"
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.False(t, cfg.ColorEnabled())
	assert.Equal(t, int64(42), cfg.Deal.Seed)
	assert.Equal(t, 6, cfg.Deal.Hands)
	assert.Equal(t, 5000, cfg.Tally.Hands)
	assert.Equal(t, 8, cfg.Tally.Workers)
	assert.Equal(t, "tally.json", cfg.Tally.Report)
}

func TestLoadPartialFileAppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
tally {
  workers = 2
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 1, cfg.Deal.Hands)
	assert.Equal(t, 100000, cfg.Tally.Hands)
	assert.Equal(t, 2, cfg.Tally.Workers)
}

func TestLoadRejectsBadSyntax(t *testing.T) {
	path := writeConfig(t, `deal {`)
	_, err := Load(path)
	assert.ErrorContains(t, err, "failed to parse HCL file")
}

func TestLoadRejectsUnknownAttribute(t *testing.T) {
	path := writeConfig(t, `colour = "red"`)
	_, err := Load(path)
	assert.ErrorContains(t, err, "failed to decode HCL")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "bad log level", mutate: func(c *Config) { c.LogLevel = "trace" }, wantErr: "LogLevel"},
		{name: "negative deal hands", mutate: func(c *Config) { c.Deal.Hands = -1 }, wantErr: "Hands"},
		{name: "too many deal hands", mutate: func(c *Config) { c.Deal.Hands = 11 }, wantErr: "exceeds"},
		{name: "full deck of hands", mutate: func(c *Config) { c.Deal.Hands = 10 }},
		{name: "too many workers", mutate: func(c *Config) { c.Tally.Workers = 1000 }, wantErr: "Workers"},
		{name: "missing tally block", mutate: func(c *Config) { c.Tally = nil }, wantErr: "Tally"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
