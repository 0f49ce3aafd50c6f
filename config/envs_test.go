package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvWithDefault(t *testing.T) {
	t.Run("returns the variable when set", func(t *testing.T) {
		t.Setenv("MAZEFORGE_TEST_STR", "value")
		assert.Equal(t, "value", getEnvWithDefault("MAZEFORGE_TEST_STR", "fallback"))
	})

	t.Run("falls back when unset", func(t *testing.T) {
		assert.Equal(t, "fallback", getEnvWithDefault("MAZEFORGE_TEST_UNSET", "fallback"))
	})
}

func TestGetEnvAsIntWithDefault(t *testing.T) {
	t.Run("parses the variable when set", func(t *testing.T) {
		t.Setenv("MAZEFORGE_TEST_INT", "17")
		assert.Equal(t, 17, getEnvAsIntWithDefault("MAZEFORGE_TEST_INT", 5))
	})

	t.Run("falls back when unset", func(t *testing.T) {
		assert.Equal(t, 5, getEnvAsIntWithDefault("MAZEFORGE_TEST_INT_UNSET", 5))
	})
}

func TestInitConfig(t *testing.T) {
	t.Setenv("GIN_MODE", "debug")
	t.Setenv("REST_PORT", "9090")
	t.Setenv("DEMO_MODE", "true")
	t.Setenv("MAZE_GENERATOR", "wilson")
	t.Setenv("MAZE_SEED", "7")

	cfg := initConfig()
	assert.Equal(t, "debug", cfg.GinMode)
	assert.Equal(t, 9090, cfg.RESTPort)
	assert.True(t, cfg.DemoMode)
	assert.Equal(t, "wilson", cfg.Generator)
	assert.Equal(t, int64(7), cfg.MazeSeed)
}
