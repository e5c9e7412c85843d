package grpy

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestConfig_SetDefaults(t *testing.T) {
	cfg := Config{}
	cfg.SetDefaults()

	require.Equal(t, "RD", cfg.DefaultPolicy)
}

func TestConfig_SetDefaults_KeepsExplicit(t *testing.T) {
	cfg := Config{DefaultPolicy: "P2"}
	cfg.SetDefaults()

	require.Equal(t, "P2", cfg.DefaultPolicy)
}

func TestConfig_Validate(t *testing.T) {
	t.Run("valid after defaults", func(t *testing.T) {
		cfg := Config{}
		cfg.SetDefaults()
		require.NoError(t, cfg.Validate())
	})

	t.Run("empty default policy rejected", func(t *testing.T) {
		cfg := Config{}
		require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
	})
}

func TestConfig_YAML(t *testing.T) {
	yamlConfig := `
defaultPolicy: P3
`
	var cfg Config
	require.NoError(t, yaml.Unmarshal([]byte(yamlConfig), &cfg))
	require.Equal(t, "P3", cfg.DefaultPolicy)

	cfg.SetDefaults()
	require.NoError(t, cfg.Validate())
	require.Equal(t, "P3", cfg.DefaultPolicy)
}
