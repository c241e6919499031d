package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/careminder/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_PartialFileIsNormalized(t *testing.T) {
	path := writeConfig(t, `
timezone: Europe/Berlin
end_date_caps:
  day_months: 6
actions:
  - name: Water plants
    category: home
    suggested:
      every: 3
      unit: day
  - name: Call mum
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Europe/Berlin", cfg.Timezone)
	assert.Equal(t, 60, cfg.SlotMinutes)
	assert.Equal(t, 6, cfg.Caps().DayMonths)
	assert.Equal(t, 12, cfg.Caps().WeekMonths)

	actions := cfg.DomainActions()
	require.Len(t, actions, 2)
	assert.Equal(t, &domain.Suggestion{Unit: domain.UnitDay, Interval: 3}, actions[0].Suggested)
	assert.Nil(t, actions[1].Suggested)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("CAREMINDER_TIMEZONE", "UTC")
	t.Setenv("CAREMINDER_SLOT_MINUTES", "30")
	t.Setenv("CAREMINDER_LOG_CALLS", "true")

	cfg, err := Load(writeConfig(t, "timezone: Asia/Seoul\n"))
	require.NoError(t, err)
	assert.Equal(t, "UTC", cfg.Timezone)
	assert.Equal(t, 30, cfg.SlotMinutes)
	assert.True(t, cfg.LogCalls)
}

func TestLoad_IgnoresBadEnvValues(t *testing.T) {
	t.Setenv("CAREMINDER_SLOT_MINUTES", "often")
	t.Setenv("CAREMINDER_LOG_CALLS", "maybe")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 60, cfg.SlotMinutes)
	assert.False(t, cfg.LogCalls)
}

func TestLoad_Rejects(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bad timezone", "timezone: Mars/Olympus\n"},
		{"uneven slots", "slot_minutes: 7\n"},
		{"bad suggested unit", "actions:\n  - name: x\n    suggested:\n      unit: hour\n"},
		{"nameless action", "actions:\n  - category: home\n"},
		{"not yaml", "timezone: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}
