package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvDefaults(t *testing.T) {
	assert.Equal(t, "fallback", GetEnv("SALESDASH_TEST_UNSET", "fallback"))

	t.Setenv("SALESDASH_TEST_STR", "value")
	assert.Equal(t, "value", GetEnv("SALESDASH_TEST_STR", "fallback"))
}

func TestGetEnvAsInt(t *testing.T) {
	assert.Equal(t, 42, GetEnvAsInt("SALESDASH_TEST_UNSET", 42))

	t.Setenv("SALESDASH_TEST_INT", "7")
	assert.Equal(t, 7, GetEnvAsInt("SALESDASH_TEST_INT", 42))

	t.Setenv("SALESDASH_TEST_INT", "not-a-number")
	assert.Equal(t, 42, GetEnvAsInt("SALESDASH_TEST_INT", 42))
}

func TestGetEnvAsBool(t *testing.T) {
	assert.True(t, GetEnvAsBool("SALESDASH_TEST_UNSET", true))

	t.Setenv("SALESDASH_TEST_BOOL", "false")
	assert.False(t, GetEnvAsBool("SALESDASH_TEST_BOOL", true))

	t.Setenv("SALESDASH_TEST_BOOL", "maybe")
	assert.True(t, GetEnvAsBool("SALESDASH_TEST_BOOL", true))
}

func TestLoadConfigFromEnvDefaults(t *testing.T) {
	configs := loadConfigFromEnv()

	assert.Equal(t, "salesdash", configs.App.Name)
	assert.Equal(t, 8080, configs.Server.Port)
	assert.Equal(t, "localhost", configs.Database.Host)
	assert.Equal(t, 5432, configs.Database.Port)
	assert.Equal(t, 10, configs.Database.MaxConns)
	assert.Equal(t, DefaultDatasetURL, configs.Dataset.URL)
}
