package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvHelpers(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		assert.Equal(t, "fallback", getEnvWithDefault("VINOM_TEST_UNSET", "fallback"))
		assert.Equal(t, 7, getEnvAsIntWithDefault("VINOM_TEST_UNSET", 7))
		assert.Equal(t, 1.5, getEnvAsFloatWithDefault("VINOM_TEST_UNSET", 1.5))
		assert.True(t, getEnvAsBoolWithDefault("VINOM_TEST_UNSET", true))
	})

	t.Run("Set", func(t *testing.T) {
		t.Setenv("VINOM_TEST_INT", "42")
		t.Setenv("VINOM_TEST_FLOAT", "1.25")
		t.Setenv("VINOM_TEST_BOOL", "false")
		t.Setenv("VINOM_TEST_STR", "value")

		assert.Equal(t, 42, getEnvAsIntWithDefault("VINOM_TEST_INT", 0))
		assert.Equal(t, 1.25, getEnvAsFloatWithDefault("VINOM_TEST_FLOAT", 0))
		assert.False(t, getEnvAsBoolWithDefault("VINOM_TEST_BOOL", true))
		assert.Equal(t, "value", getEnvWithDefault("VINOM_TEST_STR", ""))
	})
}
