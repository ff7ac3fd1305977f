package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/als344572-ai/Rahal-store/internal/models"
)

func TestLoadConfigDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	unsetEnv(t, "MONGO_URI", "MONGO_DB", "PORT", "TAX_RATE", "MAX_PRICE", "DEFAULT_LOCALE", "CACHE_TTL", "FETCH_TIMEOUT", "MEDIA_BUCKET")

	cfg := LoadConfig()

	assert.False(t, cfg.HasBackend())
	assert.Equal(t, "rahalStore", cfg.MongoDB)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "0.1", cfg.TaxRate.String())
	assert.Equal(t, "500", cfg.MaxPrice.String())
	assert.Equal(t, models.LocaleAR, cfg.DefaultLocale)
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
	assert.Equal(t, 10*time.Second, cfg.FetchTimeout)
	assert.Equal(t, "products", cfg.MediaBucket)
}

func TestLoadConfigOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("TAX_RATE", "0.15")
	t.Setenv("DEFAULT_LOCALE", "EN")
	t.Setenv("CACHE_TTL", "30s")

	cfg := LoadConfig()

	assert.True(t, cfg.HasBackend())
	assert.Equal(t, "0.15", cfg.TaxRate.String())
	assert.Equal(t, models.LocaleEN, cfg.DefaultLocale)
	assert.Equal(t, 30*time.Second, cfg.CacheTTL)
}

func TestLoadConfigInvalidValuesFallBack(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("TAX_RATE", "ten percent")
	t.Setenv("MAX_PRICE", "-5")
	t.Setenv("DEFAULT_LOCALE", "fr")
	t.Setenv("FETCH_TIMEOUT", "soon")

	cfg := LoadConfig()

	assert.Equal(t, "0.1", cfg.TaxRate.String())
	assert.Equal(t, "500", cfg.MaxPrice.String())
	assert.Equal(t, models.LocaleAR, cfg.DefaultLocale)
	assert.Equal(t, 10*time.Second, cfg.FetchTimeout)
}

func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		if err := os.Unsetenv(k); err != nil {
			t.Fatal(err)
		}
	}
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}
