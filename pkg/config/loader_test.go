package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anggasct/trafficsim"
)

func writeTempFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return p
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 5, cfg.Rounds)
	assert.Equal(t, Duration(5*time.Second), cfg.Delay)
	assert.Equal(t, []string{"Tesla", "Toyota", "Ford"}, cfg.Vehicles)
	assert.NoError(t, cfg.Validate())
}

func TestLoadYAML(t *testing.T) {
	d := t.TempDir()
	p := writeTempFile(t, d, "cfg.yaml", "rounds: 3\ndelay: 250ms\nvehicles: [Bus, Taxi]\nlog_level: debug\nlog_format: json\nmetrics_file: /tmp/m.prom\n")

	cfg, err := Load(p)
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Rounds)
	assert.Equal(t, Duration(250*time.Millisecond), cfg.Delay)
	assert.Equal(t, []string{"Bus", "Taxi"}, cfg.Vehicles)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "/tmp/m.prom", cfg.MetricsFile)
	assert.Equal(t, trafficsim.DefaultSeparator, cfg.Separator, "unset fields keep defaults")
}

func TestLoadJSON(t *testing.T) {
	d := t.TempDir()
	p := writeTempFile(t, d, "cfg.json", `{"rounds":7,"delay":"1s","vehicles":["Van"],"separator":"==="}`)

	cfg, err := Load(p)
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.Rounds)
	assert.Equal(t, Duration(time.Second), cfg.Delay)
	assert.Equal(t, []string{"Van"}, cfg.Vehicles)
	assert.Equal(t, "===", cfg.Separator)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadTOML(t *testing.T) {
	d := t.TempDir()
	p := writeTempFile(t, d, "cfg.toml", "rounds=2\ndelay=\"10s\"\nvehicles=[\"Truck\",\"Bike\"]\nlog_format=\"console\"\n")

	cfg, err := Load(p)
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.Rounds)
	assert.Equal(t, Duration(10*time.Second), cfg.Delay)
	assert.Equal(t, []string{"Truck", "Bike"}, cfg.Vehicles)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load("")
	assert.Error(t, err, "expected error on empty path")

	d := t.TempDir()
	_, err = Load(writeTempFile(t, d, "cfg.txt", "not supported"))
	assert.Error(t, err, "expected unsupported extension error")

	_, err = Load(writeTempFile(t, d, "bad.yaml", "delay: soon\n"))
	assert.Error(t, err, "expected invalid duration error")

	_, err = Load(filepath.Join(d, "missing.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative rounds", func(c *Config) { c.Rounds = -2 }},
		{"duplicate vehicles", func(c *Config) { c.Vehicles = []string{"A", "A"} }},
		{"bad level", func(c *Config) { c.LogLevel = "loud" }},
		{"bad format", func(c *Config) { c.LogFormat = "xml" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, trafficsim.IsConfigurationError(err))
		})
	}
}

func TestToSimulation(t *testing.T) {
	cfg := Default()
	cfg.Separator = ""
	cfg.Delay = Duration(time.Minute)

	sim := cfg.ToSimulation()

	assert.Equal(t, time.Minute, sim.Delay)
	assert.Equal(t, trafficsim.DefaultSeparator, sim.Separator)
	sim.Vehicles[0] = "Changed"
	assert.Equal(t, "Tesla", cfg.Vehicles[0])
}

func TestDurationText(t *testing.T) {
	b, err := Duration(90 * time.Second).MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "1m30s", string(b))
}
