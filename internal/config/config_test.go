package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRequiresAccountServiceSettings(t *testing.T) {
	t.Setenv("ACCOUNT_SERVICE_URL", "")
	t.Setenv("ACCOUNT_SERVICE_ANON_KEY", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ACCOUNT_SERVICE_URL")

	t.Setenv("ACCOUNT_SERVICE_URL", "https://account.example.com")
	_, err = Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ACCOUNT_SERVICE_ANON_KEY")
}

func TestLoadAppliesDefaults(t *testing.T) {
	t.Setenv("ACCOUNT_SERVICE_URL", "https://account.example.com")
	t.Setenv("ACCOUNT_SERVICE_ANON_KEY", "anon-key")
	t.Setenv("HTTP_ADDR", "")
	t.Setenv("REDIS_ADDR", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8000", cfg.HTTPAddr)
	assert.Equal(t, "user_profiles", cfg.ProfileTable)
	assert.Equal(t, "https://viacep.com.br", cfg.ViaCEPBaseURL)
	assert.Equal(t, "Brasília DF", cfg.DefaultLocation)
	assert.Empty(t, cfg.RedisAddr)
}

func TestLoadHonorsOverrides(t *testing.T) {
	t.Setenv("ACCOUNT_SERVICE_URL", "https://account.example.com")
	t.Setenv("ACCOUNT_SERVICE_ANON_KEY", "anon-key")
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("ACCOUNT_PROFILE_TABLE", "profiles")
	t.Setenv("DEFAULT_LOCATION", "São Paulo SP")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "profiles", cfg.ProfileTable)
	assert.Equal(t, "São Paulo SP", cfg.DefaultLocation)
}
