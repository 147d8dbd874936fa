package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	chdirTemp(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 5000, cfg.Port)
	assert.Equal(t, "artspiresDB", cfg.Mongo.Database)
	assert.Equal(t, time.Hour, cfg.JWT.Expiration)
	assert.Equal(t, "usd", cfg.Payment.Currency)
	assert.True(t, cfg.Guards.RoleElevation)
	assert.False(t, cfg.Guards.ClassWrites)
	assert.True(t, cfg.Mongo.UseTransactions)
}

func TestLoadFromEnvironment(t *testing.T) {
	chdirTemp(t)
	t.Setenv("PORT", "7000")
	t.Setenv("ACCESS_TOKEN_SECRET", "s3cret")
	t.Setenv("PAYMENT_CURRENCY", "EUR")
	t.Setenv("ALLOWED_ORIGINS", "http://a.test, http://b.test")
	t.Setenv("GUARD_ROLE_ELEVATION", "false")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 7000, cfg.Port)
	assert.Equal(t, "s3cret", cfg.JWT.Secret)
	assert.Equal(t, "eur", cfg.Payment.Currency)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORS.AllowedOrigins)
	assert.False(t, cfg.Guards.RoleElevation)
}

func TestConnectionURI(t *testing.T) {
	cfg := MongoConfig{User: "u", Password: "p", Cluster: "cluster0.example.net"}
	assert.Equal(t, "mongodb+srv://u:p@cluster0.example.net/?retryWrites=true&w=majority", cfg.ConnectionURI())

	cfg.URI = "mongodb://localhost:27017"
	assert.Equal(t, "mongodb://localhost:27017", cfg.ConnectionURI())
}

func chdirTemp(t *testing.T) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}
