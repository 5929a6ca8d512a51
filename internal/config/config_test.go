package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), DefaultFileName))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	p := filepath.Join(t.TempDir(), DefaultFileName)
	raw := `theme: neon
allow_drag: false
data_file: /tmp/board.json
seed:
  - title: Only
`
	require.NoError(t, os.WriteFile(p, []byte(raw), 0o644))

	cfg, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, "neon", cfg.Theme)
	assert.False(t, cfg.AllowDrag)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "/tmp/board.json", cfg.DataPath(p))
	require.Len(t, cfg.SeedCards(), 1)
	assert.Equal(t, "Only", cfg.SeedCards()[0].Title)
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := map[string]string{
		"theme":     "theme: sparkly\n",
		"log level": "log_level: loud\n",
		"seed":      "seed:\n  - title: \"  \"\n",
		"yaml":      "theme: [unterminated\n",
	}
	for name, raw := range tests {
		t.Run(name, func(t *testing.T) {
			p := filepath.Join(t.TempDir(), DefaultFileName)
			require.NoError(t, os.WriteFile(p, []byte(raw), 0o644))
			_, err := Load(p)
			assert.Error(t, err)
		})
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	p := filepath.Join(t.TempDir(), DefaultFileName)
	want := Default()
	want.Theme = "mono"
	require.NoError(t, Save(p, want))

	got, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestDataPathRelativeToConfig(t *testing.T) {
	cfg := Default()
	assert.Equal(t, filepath.Join("/etc/cards", "cards.json"), cfg.DataPath("/etc/cards/cards.yaml"))
}
