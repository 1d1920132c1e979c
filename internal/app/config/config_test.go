package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewInternalConfigDurations(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg := NewInternalConfig()

		assert.Equal(t, 10*time.Second, cfg.LabAPI.RequestTimeout())
		assert.Equal(t, time.Hour, cfg.Session.DefaultTTL())
	})

	t.Run("read from env", func(t *testing.T) {
		t.Setenv("LAB_API_REQUEST_TIMEOUT", "2500ms")
		t.Setenv("SESSION_DEFAULT_TTL", "45m")

		cfg := NewInternalConfig()

		assert.Equal(t, 2500*time.Millisecond, cfg.LabAPI.RequestTimeout())
		assert.Equal(t, 45*time.Minute, cfg.Session.DefaultTTL())
	})

	t.Run("unparsable value keeps default", func(t *testing.T) {
		t.Setenv("LAB_API_REQUEST_TIMEOUT", "ten seconds")

		cfg := NewInternalConfig()

		assert.Equal(t, 10*time.Second, cfg.LabAPI.RequestTimeout())
	})

	t.Run("non positive values fall back", func(t *testing.T) {
		cfg := InternalConfig{
			LabAPI:  AppLabAPI{Timeout: -time.Second},
			Session: AppSession{TokenTTL: 0},
		}

		assert.Equal(t, defaultLabAPITimeout, cfg.LabAPI.RequestTimeout())
		assert.Equal(t, defaultSessionTTL, cfg.Session.DefaultTTL())
	})
}

func TestNewInternalConfigAllowedOrigins(t *testing.T) {
	t.Run("empty by default", func(t *testing.T) {
		assert.Empty(t, NewInternalConfig().App.AllowedOrigins)
	})

	t.Run("comma separated", func(t *testing.T) {
		t.Setenv("APP_ALLOWED_ORIGINS", "https://lab.example.com, ,https://admin.example.com")

		assert.Equal(t, []string{"https://lab.example.com", "https://admin.example.com"}, NewInternalConfig().App.AllowedOrigins)
	})
}
