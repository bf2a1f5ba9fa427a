package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, CurrentConfigVersion, cfg.Version)
	assert.Equal(t, DefaultServer, cfg.Server)
	assert.Equal(t, 2*time.Second, cfg.PollInterval)
	assert.NotNil(t, cfg.Experience)
	assert.NoError(t, cfg.Validate())
}

func TestConfigMarshalYAML(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PollInterval = 500 * time.Millisecond
	cfg.Experience["intern"] = 2

	data, err := yaml.Marshal(cfg)
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, "poll_interval: 500ms", "durations are written human-readable")
	assert.Contains(t, out, "server: "+DefaultServer)
	assert.Contains(t, out, "intern: 2")
}
