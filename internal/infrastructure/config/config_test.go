package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	// Save original env vars and restore after tests
	originalEnv := map[string]string{
		"DASH_APP_NAME":         os.Getenv("DASH_APP_NAME"),
		"DASH_APP_ENV":          os.Getenv("DASH_APP_ENV"),
		"DASH_APP_PORT":         os.Getenv("DASH_APP_PORT"),
		"DASH_ODOO_URL":         os.Getenv("DASH_ODOO_URL"),
		"DASH_ODOO_DATABASE":    os.Getenv("DASH_ODOO_DATABASE"),
		"DASH_ODOO_LOGIN":       os.Getenv("DASH_ODOO_LOGIN"),
		"DASH_ODOO_PASSWORD":    os.Getenv("DASH_ODOO_PASSWORD"),
		"DASH_ODOO_TIMEOUT":     os.Getenv("DASH_ODOO_TIMEOUT"),
		"DASH_ODOO_MAX_RETRIES": os.Getenv("DASH_ODOO_MAX_RETRIES"),
		"DASH_ODOO_RECORD_CAP":  os.Getenv("DASH_ODOO_RECORD_CAP"),
		"DASH_CACHE_BACKEND":    os.Getenv("DASH_CACHE_BACKEND"),
		"DASH_REDIS_HOST":       os.Getenv("DASH_REDIS_HOST"),
		"DASH_LOG_LEVEL":        os.Getenv("DASH_LOG_LEVEL"),
	}

	defer func() {
		for k, v := range originalEnv {
			if v == "" {
				os.Unsetenv(k)
			} else {
				os.Setenv(k, v)
			}
		}
	}()

	clearEnv := func() {
		for k := range originalEnv {
			os.Unsetenv(k)
		}
	}

	t.Run("loads default values when env vars not set", func(t *testing.T) {
		clearEnv()
		os.Setenv("DASH_ODOO_URL", "https://erp.example.com")
		os.Setenv("DASH_ODOO_DATABASE", "erp_prod")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "odoo-dashboard", cfg.App.Name)
		assert.Equal(t, "development", cfg.App.Env)
		assert.Equal(t, "3001", cfg.App.Port)
		assert.Equal(t, 30*time.Second, cfg.Odoo.Timeout)
		assert.Equal(t, 2, cfg.Odoo.MaxRetries)
		assert.Equal(t, 1000, cfg.Odoo.RecordCap)
		assert.Equal(t, "America/Mexico_City", cfg.Odoo.Timezone)
		assert.Equal(t, "es_MX", cfg.Odoo.Language)
		assert.Equal(t, "memory", cfg.Cache.Backend)
		assert.Equal(t, 5*time.Minute, cfg.Cache.TTL)
		assert.Equal(t, "info", cfg.Log.Level)
	})

	t.Run("loads values from environment variables with DASH prefix", func(t *testing.T) {
		clearEnv()
		os.Setenv("DASH_APP_NAME", "test-dashboard")
		os.Setenv("DASH_APP_PORT", "9000")
		os.Setenv("DASH_ODOO_URL", "https://erp.test.local")
		os.Setenv("DASH_ODOO_DATABASE", "erp_test")
		os.Setenv("DASH_ODOO_LOGIN", "reporter")
		os.Setenv("DASH_ODOO_PASSWORD", "secret")
		os.Setenv("DASH_ODOO_MAX_RETRIES", "5")
		os.Setenv("DASH_ODOO_RECORD_CAP", "500")
		os.Setenv("DASH_LOG_LEVEL", "debug")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "test-dashboard", cfg.App.Name)
		assert.Equal(t, "9000", cfg.App.Port)
		assert.Equal(t, "https://erp.test.local", cfg.Odoo.URL)
		assert.Equal(t, "erp_test", cfg.Odoo.Database)
		assert.Equal(t, "reporter", cfg.Odoo.Login)
		assert.Equal(t, "secret", cfg.Odoo.Password)
		assert.Equal(t, 5, cfg.Odoo.MaxRetries)
		assert.Equal(t, 500, cfg.Odoo.RecordCap)
		assert.Equal(t, "debug", cfg.Log.Level)
	})

	t.Run("rejects missing odoo url", func(t *testing.T) {
		clearEnv()
		os.Setenv("DASH_ODOO_DATABASE", "erp_test")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "odoo.url")
	})

	t.Run("rejects relative odoo url", func(t *testing.T) {
		clearEnv()
		os.Setenv("DASH_ODOO_URL", "erp.example.com/path")
		os.Setenv("DASH_ODOO_DATABASE", "erp_test")

		_, err := Load()
		require.Error(t, err)
	})

	t.Run("rejects unknown cache backend", func(t *testing.T) {
		clearEnv()
		os.Setenv("DASH_ODOO_URL", "https://erp.example.com")
		os.Setenv("DASH_ODOO_DATABASE", "erp_test")
		os.Setenv("DASH_CACHE_BACKEND", "memcached")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cache.backend")
	})

	t.Run("production requires service credentials", func(t *testing.T) {
		clearEnv()
		os.Setenv("DASH_APP_ENV", "production")
		os.Setenv("DASH_ODOO_URL", "https://erp.example.com")
		os.Setenv("DASH_ODOO_DATABASE", "erp_prod")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "odoo.login")
	})
}

func TestRedisConfigAddr(t *testing.T) {
	r := RedisConfig{Host: "redis.local", Port: 6380}
	assert.Equal(t, "redis.local:6380", r.Addr())
}
